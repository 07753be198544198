package console

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	titleBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			Bold(true)

	sectionStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("8")).
			PaddingLeft(1)
)

// LayoutTitleBox renders a title inside a rounded border sized to the given
// width.
func LayoutTitleBox(title string, width int) string {
	if width > 4 {
		return titleBoxStyle.Width(width - 2).Align(lipgloss.Center).Render(title)
	}
	return titleBoxStyle.Render(title)
}

// LayoutSection renders multi-line content with a left border rule, used for
// grouped informational output.
func LayoutSection(content string) string {
	return sectionStyle.Render(content)
}

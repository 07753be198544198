package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/docutil/helptrans/pkg/console"
	"github.com/docutil/helptrans/pkg/logger"
	"github.com/docutil/helptrans/pkg/translate"
)

var listLog = logger.New("cli:list")

// NewListCommand creates the list command, which shows what a compile pass
// would enumerate without requiring the merge tool to be installed.
func NewListCommand() *cobra.Command {
	var linguas []string
	var descriptorPath string

	cmd := &cobra.Command{
		Use:   "list [dir]",
		Short: "Show the languages and pages a help tree would translate",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			helpDir := "."
			if len(args) == 1 {
				helpDir = args[0]
			}
			cfg, err := buildConfig(helpDir, toolOptions{})
			if err != nil {
				return err
			}
			source := selectSource(linguas, descriptorPath)
			return listEnumeration(cfg, source)
		},
	}

	cmd.Flags().StringSliceVar(&linguas, "linguas", nil, "Comma-separated language codes (static mode)")
	cmd.Flags().StringVar(&descriptorPath, "descriptor", "", "Path to the descriptor file (default <dir>/HELPFILE)")

	return cmd
}

func listEnumeration(cfg translate.Config, source translate.Source) error {
	enum, err := source.Enumerate(cfg)
	if err != nil {
		return err
	}
	for _, diag := range enum.Diagnostics {
		fmt.Fprintln(os.Stderr, console.FormatWarningMessage(diag))
	}

	title := "Help Translation"
	if enum.DocID != "" {
		title = "Help Translation: " + enum.DocID
	}
	fmt.Fprintln(os.Stderr, console.LayoutTitleBox(title, 60))

	langRows := make([][]string, 0, len(enum.Languages))
	for _, lang := range enum.Languages {
		langRows = append(langRows, []string{lang, lang + "/" + lang + cfg.TableExt})
	}
	printSection(console.RenderTable(console.TableConfig{
		Headers: []string{"Language", "Phrase Table"},
		Rows:    langRows,
	}))

	pageRows := make([][]string, 0, len(enum.Pages))
	for _, page := range enum.Pages {
		pageRows = append(pageRows, []string{page, cfg.CanonicalDir + "/" + page})
	}
	printSection(console.RenderTable(console.TableConfig{
		Headers: []string{"Page", "Canonical Source"},
		Rows:    pageRows,
	}))

	fmt.Fprintln(os.Stderr)
	total := len(enum.Languages) * len(enum.Pages)
	listLog.Printf("Enumerated %d languages, %d pages", len(enum.Languages), len(enum.Pages))
	fmt.Fprintln(os.Stderr, console.FormatInfoMessage(
		strconv.Itoa(total)+" translation tasks would be generated"))
	return nil
}

// printSection writes one table to stderr grouped under a left border rule.
func printSection(table string) {
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, console.LayoutSection(strings.TrimRight(table, "\n")))
}

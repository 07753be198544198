// Package translate materializes documentation translation tasks: for every
// (language, page) pair in a help tree it declares one invocation of an
// external translation-merge tool plus the install mappings for the outputs,
// the canonical pages, and the shared legal file.
//
// The package is a single-pass, stateless transformation. Nothing is cached
// between runs; identical configuration yields a structurally identical task
// set.
package translate

// Defaults for the help tree layout and the external merge tool.
const (
	DefaultTool         = "xml2po"
	DefaultCanonicalDir = "C"
	DefaultPageExt      = ".page"
	DefaultTableExt     = ".po"
	DefaultLegalFile    = "legal.xml"
	DefaultInstallRoot  = "${PREFIX}/share/help"
)

// DefaultToolFlags are the flags passed to the merge tool before the input
// files.
var DefaultToolFlags = []string{"-e", "-p"}

// Config carries the configure-time state of the translation feature. It is
// passed explicitly into Initialize; the feature holds no ambient state.
type Config struct {
	// HelpDir is the root of the help tree. Task inputs and outputs are
	// recorded relative to it.
	HelpDir string

	// Tool is the translation-merge tool, either a bare name resolved on
	// PATH or an absolute path.
	Tool string

	// ToolFlags are passed to the tool before the phrase table and source
	// page arguments.
	ToolFlags []string

	// InstallRoot is the install destination template. Placeholders such as
	// ${PREFIX} are kept verbatim; only language and doc-id segments are
	// appended per artifact.
	InstallRoot string

	// CanonicalDir is the subdirectory holding the canonical-language pages.
	CanonicalDir string

	// PageExt is the extension of page files inside CanonicalDir.
	PageExt string

	// TableExt is the extension of per-language phrase tables.
	TableExt string

	// LegalFile is the shared ancillary file installed alongside the pages
	// of every language.
	LegalFile string
}

// DefaultConfig returns a Config for the given help tree with every knob at
// its default.
func DefaultConfig(helpDir string) Config {
	return Config{
		HelpDir:      helpDir,
		Tool:         DefaultTool,
		ToolFlags:    DefaultToolFlags,
		InstallRoot:  DefaultInstallRoot,
		CanonicalDir: DefaultCanonicalDir,
		PageExt:      DefaultPageExt,
		TableExt:     DefaultTableExt,
		LegalFile:    DefaultLegalFile,
	}
}

// withDefaults fills zero-valued fields so partially populated configs
// behave like DefaultConfig.
func (c Config) withDefaults() Config {
	if c.Tool == "" {
		c.Tool = DefaultTool
	}
	if c.ToolFlags == nil {
		c.ToolFlags = DefaultToolFlags
	}
	if c.InstallRoot == "" {
		c.InstallRoot = DefaultInstallRoot
	}
	if c.CanonicalDir == "" {
		c.CanonicalDir = DefaultCanonicalDir
	}
	if c.PageExt == "" {
		c.PageExt = DefaultPageExt
	}
	if c.TableExt == "" {
		c.TableExt = DefaultTableExt
	}
	if c.LegalFile == "" {
		c.LegalFile = DefaultLegalFile
	}
	return c
}

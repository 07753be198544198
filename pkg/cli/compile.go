package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/docutil/helptrans/pkg/console"
	"github.com/docutil/helptrans/pkg/logger"
	"github.com/docutil/helptrans/pkg/translate"
)

var compileLog = logger.New("cli:compile")

type compileOptions struct {
	helpDir    string
	output     string
	linguas    []string
	descriptor string
	verbose    bool
	watch      bool
	toolOptions
}

// NewCompileCommand creates the compile command, which materializes the
// translation tasks for a help tree and writes the task manifest.
func NewCompileCommand() *cobra.Command {
	var opts compileOptions

	cmd := &cobra.Command{
		Use:   "compile [dir]",
		Short: "Generate the translation task manifest for a help tree",
		Long: `Generate the translation task manifest for a help tree.

For every (language, page) pair one merge task is declared, combining the
language's phrase table (<lang>/<lang>.po) with the canonical page
(C/<page>) into the translated page (<lang>/<page>). Install mappings for
the outputs, the canonical pages, and the shared legal file are included.

Languages and pages come from the HELPFILE descriptor by default; pass
--linguas to use a literal language list instead (pages are then discovered
by scanning C/).

If the merge tool is not installed the translation feature is skipped for
this build: no tasks are emitted and the command succeeds.

Examples:
  helptrans compile                  # descriptor mode, current directory
  helptrans compile help/            # descriptor mode, explicit tree
  helptrans compile --linguas de,fr  # static mode
  helptrans compile --watch          # recompile on changes`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.helpDir = "."
			if len(args) == 1 {
				opts.helpDir = args[0]
			}
			cfg, err := buildConfig(opts.helpDir, opts.toolOptions)
			if err != nil {
				return err
			}
			source := selectSource(opts.linguas, opts.descriptor)
			if opts.watch {
				return watchAndCompile(cmd.Context(), cfg, source, opts)
			}
			return compileOnce(cfg, source, opts)
		},
	}

	cmd.Flags().StringSliceVar(&opts.linguas, "linguas", nil, "Comma-separated language codes (static mode)")
	cmd.Flags().StringVar(&opts.descriptor, "descriptor", "", "Path to the descriptor file (default <dir>/HELPFILE)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Manifest output path (default <dir>/"+translate.ManifestFilename+")")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Show a per-language task table")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "Recompile whenever the help tree changes")
	addToolFlags(cmd, &opts.toolOptions)

	return cmd
}

// addToolFlags registers the config-shaping flags shared by compile and run.
func addToolFlags(cmd *cobra.Command, opts *toolOptions) {
	cmd.Flags().StringVar(&opts.tool, "tool", "", "Translation-merge tool (default "+translate.DefaultTool+")")
	cmd.Flags().StringVar(&opts.toolFlags, "tool-flags", "", "Flags passed to the merge tool")
	cmd.Flags().StringVar(&opts.installRoot, "install-root", "", "Install destination template (default "+translate.DefaultInstallRoot+")")
}

// compileOnce runs one configure+apply pass and writes the manifest.
// Diagnostics print as warnings and never fail the command.
func compileOnce(cfg translate.Config, source translate.Source, opts compileOptions) error {
	var feature translate.Feature = translate.NewMergeFeature(source)
	if err := feature.Initialize(cfg); err != nil {
		return err
	}
	if !feature.Enabled() {
		compileLog.Printf("Merge tool %q unavailable, translation feature skipped", cfg.Tool)
		return nil
	}

	ts, err := feature.Apply()
	if err != nil {
		return err
	}
	for _, diag := range ts.Diagnostics {
		fmt.Fprintln(os.Stderr, console.FormatWarningMessage(diag))
	}

	output := opts.output
	if output == "" {
		output = filepath.Join(cfg.HelpDir, translate.ManifestFilename)
	}
	if err := translate.WriteManifest(ts, output); err != nil {
		return err
	}

	fmt.Fprintln(os.Stderr, console.FormatSuccessMessage(
		fmt.Sprintf("Compiled %d translation tasks (%d languages, %d pages)",
			len(ts.Tasks), len(ts.Languages), len(ts.Pages))))
	fmt.Fprintln(os.Stderr, console.FormatLocationMessage("Manifest: "+console.ToRelativePath(output)))

	if opts.verbose {
		displayTaskTable(ts)
	}
	return nil
}

// displayTaskTable renders a per-language summary of the task set.
func displayTaskTable(ts *translate.TaskSet) {
	tables := make(map[string]string, len(ts.Languages))
	counts := make(map[string]int, len(ts.Languages))
	for _, task := range ts.Tasks {
		counts[task.Language]++
		if len(task.Inputs) > 0 {
			tables[task.Language] = task.Inputs[0]
		}
	}
	rows := make([][]string, 0, len(ts.Languages))
	for _, lang := range ts.Languages {
		rows = append(rows, []string{lang, tables[lang], strconv.Itoa(counts[lang])})
	}
	table := console.RenderTable(console.TableConfig{
		Title:     "Translation Tasks",
		Headers:   []string{"Language", "Phrase Table", "Tasks"},
		Rows:      rows,
		ShowTotal: true,
		TotalRow:  []string{"TOTAL", "", strconv.Itoa(len(ts.Tasks))},
	})
	fmt.Fprint(os.Stderr, table)
}

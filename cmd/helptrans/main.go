// Command helptrans generates and executes documentation translation tasks
// for a help tree: one merge-tool invocation per (language, page) pair, plus
// install mappings consumable by an outer build system.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/docutil/helptrans/pkg/cli"
	"github.com/docutil/helptrans/pkg/console"
	"github.com/docutil/helptrans/pkg/translate"
)

// version is overridden at build time via -ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "helptrans",
	Short: "Translate documentation help trees with an external merge tool",
	Long: `helptrans turns a documentation help tree into translation tasks.

A help tree keeps its canonical pages under C/ and one phrase table per
target language at <lang>/<lang>.po. For every (language, page) pair,
helptrans declares one invocation of an external translation-merge tool
producing <lang>/<page>, together with install mappings for the outputs,
the canonical pages, and the shared legal file.

The resulting manifest (help.lock.yml) is meant for an outer build system;
"helptrans run" executes it directly instead.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the helptrans version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("helptrans " + version)
	},
}

// formatError renders a fatal command error. Missing task inputs get
// concrete recovery suggestions; everything else is a plain error line.
func formatError(err error) string {
	if errors.Is(err, translate.ErrMissingResource) {
		return console.FormatErrorWithSuggestions(err.Error(), []string{
			"create the missing file under the help tree",
			"update HELP_LINGUAS or HELP_FILES in the descriptor",
			"restrict the language set with --linguas",
		})
	}
	return console.FormatErrorMessage(err.Error())
}

func main() {
	rootCmd.AddCommand(
		cli.NewCompileCommand(),
		cli.NewListCommand(),
		cli.NewRunCommand(),
		versionCmd,
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, formatError(err))
		os.Exit(1)
	}
}

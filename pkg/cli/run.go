package cli

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/sourcegraph/conc/pool"
	"github.com/spf13/cobra"

	"github.com/docutil/helptrans/pkg/console"
	"github.com/docutil/helptrans/pkg/logger"
	"github.com/docutil/helptrans/pkg/translate"
)

var runLog = logger.New("cli:run")

type runOptions struct {
	helpDir    string
	linguas    []string
	descriptor string
	jobs       int
	toolOptions
}

// NewRunCommand creates the run command, which materializes the tasks and
// executes them directly instead of handing the manifest to a build
// framework. Task ordering beyond a bounded worker pool is not provided.
func NewRunCommand() *cobra.Command {
	var opts runOptions

	cmd := &cobra.Command{
		Use:   "run [dir]",
		Short: "Materialize and execute the translation tasks for a help tree",
		Long: `Materialize and execute the translation tasks for a help tree.

Each task invokes the merge tool with the language's phrase table and the
canonical page, writing the tool's stdout to <lang>/<page>. Tasks run on a
bounded worker pool; the first failure cancels the remaining work.

If the merge tool is not installed, nothing runs and the command succeeds.`,
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
			return runTasks(cmd.Context(), cfg, source, opts.jobs)
		},
	}

	cmd.Flags().StringSliceVar(&opts.linguas, "linguas", nil, "Comma-separated language codes (static mode)")
	cmd.Flags().StringVar(&opts.descriptor, "descriptor", "", "Path to the descriptor file (default <dir>/HELPFILE)")
	cmd.Flags().IntVarP(&opts.jobs, "jobs", "j", runtime.NumCPU(), "Maximum number of concurrent merge invocations")
	addToolFlags(cmd, &opts.toolOptions)

	return cmd
}

// runTasks materializes the task set and executes it.
func runTasks(ctx context.Context, cfg translate.Config, source translate.Source, jobs int) error {
	var feature translate.Feature = translate.NewMergeFeature(source)
	if err := feature.Initialize(cfg); err != nil {
		return err
	}
	if !feature.Enabled() {
		runLog.Printf("Merge tool %q unavailable, nothing to run", cfg.Tool)
		return nil
	}

	ts, err := feature.Apply()
	if err != nil {
		return err
	}
	for _, diag := range ts.Diagnostics {
		fmt.Fprintln(os.Stderr, console.FormatWarningMessage(diag))
	}
	if len(ts.Tasks) == 0 {
		fmt.Fprintln(os.Stderr, console.FormatInfoMessage("No translation tasks to run"))
		return nil
	}

	if jobs < 1 {
		jobs = 1
	}
	runLog.Printf("Executing %d tasks with %d workers", len(ts.Tasks), jobs)

	p := pool.New().
		WithContext(ctx).
		WithCancelOnError().
		WithFirstError().
		WithMaxGoroutines(jobs)
	for _, task := range ts.Tasks {
		task := task // per-iteration copy; the go directive predates Go 1.22 semantics
		p.Go(func(ctx context.Context) error {
			return executeTask(ctx, cfg.HelpDir, task)
		})
	}
	if err := p.Wait(); err != nil {
		return err
	}

	fmt.Fprintln(os.Stderr, console.FormatSuccessMessage(
		fmt.Sprintf("Merged %d pages into %d languages", len(ts.Tasks), len(ts.Languages))))
	return nil
}

// executeTask runs one merge invocation with the tool's stdout redirected to
// the task's output file. The tool runs with the help tree as working
// directory so the tree-relative task paths resolve.
func executeTask(ctx context.Context, helpDir string, task translate.Task) error {
	outPath := filepath.Join(helpDir, filepath.FromSlash(task.Output))
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory for %s: %w", task.Output, err)
	}
	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", task.Output, err)
	}
	defer out.Close()

	runLog.Printf("Merging %s + %s -> %s", task.Inputs[0], task.Inputs[1], task.Output)
	cmd := exec.CommandContext(ctx, task.Command[0], task.Command[1:]...)
	cmd.Dir = helpDir
	cmd.Stdout = out
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("merge of %s for %s failed: %w", task.Page, task.Language, err)
	}
	return nil
}

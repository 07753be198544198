package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/docutil/helptrans/pkg/console"
	"github.com/docutil/helptrans/pkg/logger"
	"github.com/docutil/helptrans/pkg/translate"
)

var watchLog = logger.New("cli:watch")

// debounceDelay coalesces bursts of filesystem events (editors typically
// fire several per save) into one recompilation.
const debounceDelay = 300 * time.Millisecond

// watchAndCompile recompiles the manifest whenever the help tree, a language
// directory, or the descriptor changes. It blocks until the context is
// cancelled. Compilation errors are reported and watching continues.
func watchAndCompile(ctx context.Context, cfg translate.Config, source translate.Source, opts compileOptions) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	for _, dir := range watchDirs(cfg) {
		if err := watcher.Add(dir); err != nil {
			watchLog.Printf("Cannot watch %s: %v", dir, err)
			continue
		}
		watchLog.Printf("Watching %s", dir)
	}

	manifest := opts.output
	if manifest == "" {
		manifest = filepath.Join(cfg.HelpDir, translate.ManifestFilename)
	}

	fmt.Fprintln(os.Stderr, console.FormatInfoMessage("Watching help tree, press Ctrl+C to stop"))
	recompile := func() {
		if err := compileOnce(cfg, source, opts); err != nil {
			fmt.Fprintln(os.Stderr, console.FormatErrorMessage(err.Error()))
		}
	}
	recompile()

	var debounce *time.Timer
	pending := make(chan struct{}, 1)
	statusShown := false
	for {
		select {
		case <-ctx.Done():
			watchLog.Print("Watch cancelled")
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if skipWatchEvent(event, manifest) {
				continue
			}
			watchLog.Printf("Change detected: %s (%s)", event.Name, event.Op)
			if console.IsTerminal(os.Stderr) {
				// Overwrite the previous status line instead of scrolling.
				if statusShown {
					console.MoveCursorUp(1)
					console.ClearLine()
				}
				fmt.Fprintln(os.Stderr, console.FormatInfoMessage(
					"Change detected: "+console.ToRelativePath(event.Name)))
				statusShown = true
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(debounceDelay, func() {
				select {
				case pending <- struct{}{}:
				default:
				}
			})
		case <-pending:
			statusShown = false
			recompile()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			watchLog.Printf("Watcher error: %v", err)
		}
	}
}

// watchDirs lists the directories worth watching: the tree root (descriptor
// edits), the canonical dir, and every existing language dir.
func watchDirs(cfg translate.Config) []string {
	dirs := []string{cfg.HelpDir}
	entries, err := os.ReadDir(cfg.HelpDir)
	if err != nil {
		return dirs
	}
	for _, entry := range entries {
		if entry.IsDir() {
			dirs = append(dirs, filepath.Join(cfg.HelpDir, entry.Name()))
		}
	}
	return dirs
}

// skipWatchEvent filters events that must not retrigger compilation: the
// manifest we write ourselves, hidden files, and pure chmod noise.
func skipWatchEvent(event fsnotify.Event, manifest string) bool {
	if event.Op == fsnotify.Chmod {
		return true
	}
	if event.Name == manifest {
		return true
	}
	base := filepath.Base(event.Name)
	return strings.HasPrefix(base, ".")
}

package translate

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path"
	"path/filepath"

	"github.com/docutil/helptrans/pkg/logger"
)

var featureLog = logger.New("translate:feature")

// ErrMissingResource marks a task input that does not exist on disk. Callers
// match it with errors.Is to offer recovery suggestions.
var ErrMissingResource = errors.New("required resource missing")

// Feature is the extension point a build step attaches to. Initialize runs
// once at configure time with an explicit Config; Enabled reports whether it
// resolved the merge tool; Apply materializes the task set for one build
// pass. Apply may be called repeatedly and must be idempotent.
type Feature interface {
	Initialize(cfg Config) error
	Enabled() bool
	Apply() (*TaskSet, error)
}

// MergeFeature implements Feature using an external translation-merge tool.
// When the tool cannot be resolved at Initialize time the whole feature is
// disabled: Apply yields an empty task set and no error.
type MergeFeature struct {
	source      Source
	cfg         Config
	toolPath    string
	enabled     bool
	initialized bool
}

var _ Feature = (*MergeFeature)(nil)

// NewMergeFeature creates a feature fed by the given enumeration source.
func NewMergeFeature(source Source) *MergeFeature {
	return &MergeFeature{source: source}
}

// Initialize resolves the merge tool and stores the normalized config. A
// missing tool is not an error; it disables the feature for this build.
func (f *MergeFeature) Initialize(cfg Config) error {
	f.cfg = cfg.withDefaults()
	f.initialized = true

	toolPath, err := exec.LookPath(f.cfg.Tool)
	if err != nil {
		featureLog.Printf("Merge tool %q not found, feature disabled: %v", f.cfg.Tool, err)
		f.enabled = false
		f.toolPath = ""
		return nil
	}
	f.enabled = true
	f.toolPath = toolPath
	featureLog.Printf("Merge tool resolved: %s", toolPath)
	return nil
}

// Enabled reports whether the merge tool was resolved at Initialize time.
func (f *MergeFeature) Enabled() bool {
	return f.enabled
}

// Apply materializes one task per (language, page) pair plus the install
// entries for canonical pages and legal files. A referenced phrase table or
// canonical page that does not exist is a hard error.
func (f *MergeFeature) Apply() (*TaskSet, error) {
	if !f.initialized {
		return nil, fmt.Errorf("feature not initialized")
	}
	if !f.enabled {
		featureLog.Print("Feature disabled, emitting no tasks")
		return &TaskSet{}, nil
	}

	enum, err := f.source.Enumerate(f.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate languages and pages: %w", err)
	}

	ts := &TaskSet{
		DocID:       enum.DocID,
		Tool:        f.toolPath,
		Languages:   enum.Languages,
		Pages:       enum.Pages,
		Diagnostics: enum.Diagnostics,
	}

	for _, lang := range enum.Languages {
		table := path.Join(lang, lang+f.cfg.TableExt)
		if err := f.requireFile(table); err != nil {
			return nil, err
		}
		for _, page := range enum.Pages {
			source := path.Join(f.cfg.CanonicalDir, page)
			if err := f.requireFile(source); err != nil {
				return nil, err
			}

			command := make([]string, 0, len(f.cfg.ToolFlags)+3)
			command = append(command, f.toolPath)
			command = append(command, f.cfg.ToolFlags...)
			command = append(command, table, source)

			ts.Tasks = append(ts.Tasks, Task{
				Language:   lang,
				Page:       page,
				Inputs:     []string{table, source},
				Output:     path.Join(lang, page),
				Command:    command,
				InstallDir: f.installDir(lang, enum.DocID),
			})
		}
	}

	f.appendInstalls(ts, enum)
	featureLog.Printf("Materialized %d tasks, %d install entries", len(ts.Tasks), len(ts.Installs))
	return ts, nil
}

// appendInstalls registers the unconditional install entries: every
// canonical page under the canonical destination, and the shared legal file
// once per language directory plus once for canonical. These are
// declarations only; the legal file's existence is not checked here.
func (f *MergeFeature) appendInstalls(ts *TaskSet, enum *Enumeration) {
	canonicalDest := f.installDir(f.cfg.CanonicalDir, enum.DocID)
	for _, page := range enum.Pages {
		ts.Installs = append(ts.Installs, InstallEntry{
			Source: path.Join(f.cfg.CanonicalDir, page),
			Dest:   canonicalDest,
		})
	}

	legal := path.Join(f.cfg.CanonicalDir, f.cfg.LegalFile)
	ts.Installs = append(ts.Installs, InstallEntry{Source: legal, Dest: canonicalDest})
	for _, lang := range enum.Languages {
		ts.Installs = append(ts.Installs, InstallEntry{
			Source: legal,
			Dest:   f.installDir(lang, enum.DocID),
		})
	}
}

// installDir builds the install destination for one language (or the
// canonical pseudo-language). The doc-id segment is present only in
// descriptor mode, where the enumeration carries an identifier.
func (f *MergeFeature) installDir(lang, docID string) string {
	if docID == "" {
		return path.Join(f.cfg.InstallRoot, lang)
	}
	return path.Join(f.cfg.InstallRoot, lang, docID)
}

// requireFile turns a missing task input into a hard error at
// task-construction time, naming the tree-relative resource.
func (f *MergeFeature) requireFile(rel string) error {
	abs := filepath.Join(f.cfg.HelpDir, filepath.FromSlash(rel))
	if _, err := os.Stat(abs); err != nil {
		return fmt.Errorf("%w: %s not found under %s", ErrMissingResource, rel, f.cfg.HelpDir)
	}
	return nil
}

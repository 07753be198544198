package translate

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/docutil/helptrans/pkg/logger"
)

var manifestLog = logger.New("translate:manifest")

// ManifestFilename is the default name of the generated task manifest,
// written next to the help tree.
const ManifestFilename = "help.lock.yml"

const manifestHeader = `# This file was generated by helptrans. DO NOT EDIT.
# It declares the translation-merge tasks and install mappings for one
# help tree. Regenerate it with "helptrans compile".
`

// MarshalManifest serializes a task set as YAML with a generated-file
// comment header.
func MarshalManifest(ts *TaskSet) ([]byte, error) {
	body, err := yaml.Marshal(ts)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal task set: %w", err)
	}
	return append([]byte(manifestHeader), body...), nil
}

// WriteManifest writes the task set manifest to path.
func WriteManifest(ts *TaskSet, path string) error {
	data, err := MarshalManifest(ts)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	manifestLog.Printf("Manifest written: path=%s, tasks=%d, installs=%d",
		path, len(ts.Tasks), len(ts.Installs))
	return nil
}

// LoadManifest reads a previously written manifest back into a task set.
func LoadManifest(path string) (*TaskSet, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	var ts TaskSet
	if err := yaml.Unmarshal(content, &ts); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	manifestLog.Printf("Manifest loaded: path=%s, tasks=%d", path, len(ts.Tasks))
	return &ts, nil
}

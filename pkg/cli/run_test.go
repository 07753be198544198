//go:build !integration

package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docutil/helptrans/pkg/translate"
)

func TestRunTasksProducesOutputs(t *testing.T) {
	dir := writeFixtureTree(t, []string{"de", "fr"}, []string{"index.page", "usage.page"}, `HELP_ID = myapp-help
HELP_LINGUAS = de fr
HELP_FILES = index.page usage.page
`)
	// Stand-in merge tool: emits a fixed marker on stdout.
	tool := writeFixtureTool(t, "#!/bin/sh\necho translated\n")

	cfg, err := buildConfig(dir, toolOptions{tool: tool})
	require.NoError(t, err)

	require.NoError(t, runTasks(context.Background(), cfg, selectSource(nil, ""), 2))

	for _, lang := range []string{"de", "fr"} {
		for _, page := range []string{"index.page", "usage.page"} {
			out := filepath.Join(dir, lang, page)
			content, err := os.ReadFile(out)
			require.NoError(t, err, "output %s/%s should exist", lang, page)
			assert.Equal(t, "translated\n", string(content))
		}
	}
}

func TestRunTasksToolMissing(t *testing.T) {
	dir := writeFixtureTree(t, []string{"de"}, []string{"index.page"}, "")

	cfg, err := buildConfig(dir, toolOptions{tool: filepath.Join(dir, "no-such-tool")})
	require.NoError(t, err)

	require.NoError(t, runTasks(context.Background(), cfg, selectSource([]string{"de"}, ""), 1),
		"a missing tool runs nothing and succeeds")

	_, statErr := os.Stat(filepath.Join(dir, "de", "index.page"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestRunTasksFailingToolPropagates(t *testing.T) {
	dir := writeFixtureTree(t, []string{"de"}, []string{"index.page"}, "")
	tool := writeFixtureTool(t, "#!/bin/sh\nexit 3\n")

	cfg, err := buildConfig(dir, toolOptions{tool: tool})
	require.NoError(t, err)

	err = runTasks(context.Background(), cfg, selectSource([]string{"de"}, ""), 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "index.page")
}

func TestExecuteTaskRedirectsStdout(t *testing.T) {
	dir := writeFixtureTree(t, []string{"de"}, []string{"index.page"}, "")
	tool := writeFixtureTool(t, "#!/bin/sh\ncat \"$4\"\n")

	task := translate.Task{
		Language: "de",
		Page:     "index.page",
		Inputs:   []string{"de/de.po", "C/index.page"},
		Output:   "de/index.page",
		Command:  []string{tool, "-e", "-p", "de/de.po", "C/index.page"},
	}
	require.NoError(t, executeTask(context.Background(), dir, task))

	content, err := os.ReadFile(filepath.Join(dir, "de", "index.page"))
	require.NoError(t, err)
	assert.Equal(t, "<page/>\n", string(content))
}

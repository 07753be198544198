// Package cli implements the helptrans commands: compile, list, and run.
package cli

import (
	"fmt"
	"strings"

	env "github.com/caarlos0/env/v11"

	"github.com/docutil/helptrans/pkg/logger"
	"github.com/docutil/helptrans/pkg/translate"
)

var configLog = logger.New("cli:config")

// envOverrides are configure-time settings taken from the environment. A
// command-line flag always wins over its environment counterpart.
type envOverrides struct {
	Tool        string `env:"HELPTRANS_TOOL"`
	ToolFlags   string `env:"HELPTRANS_TOOL_FLAGS"`
	InstallRoot string `env:"HELPTRANS_INSTALL_ROOT"`
}

// toolOptions are the config-shaping flags shared by every command.
type toolOptions struct {
	tool        string
	toolFlags   string
	installRoot string
}

// buildConfig layers defaults, environment overrides, and flags into the
// explicit feature config. The config is the only state handed to the build
// step; nothing here is ambient.
func buildConfig(helpDir string, opts toolOptions) (translate.Config, error) {
	cfg := translate.DefaultConfig(helpDir)

	var ov envOverrides
	if err := env.Parse(&ov); err != nil {
		return cfg, fmt.Errorf("failed to parse environment overrides: %w", err)
	}
	if ov.Tool != "" {
		cfg.Tool = ov.Tool
	}
	if ov.ToolFlags != "" {
		cfg.ToolFlags = strings.Fields(ov.ToolFlags)
	}
	if ov.InstallRoot != "" {
		cfg.InstallRoot = ov.InstallRoot
	}

	if opts.tool != "" {
		cfg.Tool = opts.tool
	}
	if opts.toolFlags != "" {
		cfg.ToolFlags = strings.Fields(opts.toolFlags)
	}
	if opts.installRoot != "" {
		cfg.InstallRoot = opts.installRoot
	}

	configLog.Printf("Config built: helpDir=%s, tool=%s, installRoot=%s",
		cfg.HelpDir, cfg.Tool, cfg.InstallRoot)
	return cfg, nil
}

// selectSource picks the enumeration mode. An explicit language list forces
// static mode; otherwise the descriptor file (default or given path) drives
// the build.
func selectSource(linguas []string, descriptorPath string) translate.Source {
	if len(linguas) > 0 {
		configLog.Printf("Static mode: %d languages", len(linguas))
		return translate.StaticSource{Languages: linguas}
	}
	configLog.Printf("Descriptor mode: path=%q", descriptorPath)
	return translate.DescriptorSource{Path: descriptorPath}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/midscene-shared/internal/config"
	"github.com/MKhiriev/midscene-shared/internal/env"
	"github.com/MKhiriev/midscene-shared/internal/logger"
	"github.com/MKhiriev/midscene-shared/models"
)

// cli holds the persistent flags and the dependencies shared by subcommands.
type cli struct {
	configPaths []string
	envFiles    []string
	sets        []string
	verbose     bool

	provider env.Provider
	info     models.AppBuildInfo
	log      *logger.Logger
}

// newRootCmd wires every subcommand. A nil provider reads the process
// environment.
func newRootCmd(info models.AppBuildInfo, provider env.Provider) *cobra.Command {
	c := &cli{provider: provider, info: info, log: logger.Nop()}

	rootCmd := &cobra.Command{
		Use:   "midscene-env",
		Short: "Inspect midscene configuration, run directories and debug logs",
		Long: `midscene-env resolves configuration the same way the library does:
environment variables, overridden by JSON config files, overridden by
explicit --set values.

Examples:
  midscene-env get MIDSCENE_RUN_DIR
  midscene-env -c midscene.json dump --format yaml
  midscene-env --set MIDSCENE_RUN_DIR=/tmp/run rundir log
  midscene-env log ai:call "request {0} took {1}ms" 42 180`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := zerolog.WarnLevel
			if c.verbose {
				level = zerolog.DebugLevel
			}
			c.log = logger.NewLogger("midscene-env", level, cmd.ErrOrStderr())
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringArrayVarP(&c.configPaths, "config", "c", nil, "JSON or JSONC config file (repeatable, later files win)")
	flags.StringArrayVar(&c.envFiles, "env-file", nil, ".env file layered over the environment (repeatable, first file wins)")
	flags.StringArrayVar(&c.sets, "set", nil, "explicit KEY=VALUE override (repeatable)")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "debug-level diagnostics on stderr")

	rootCmd.AddCommand(
		c.newGetCmd(),
		c.newDumpCmd(),
		c.newSettingsCmd(),
		c.newRundirCmd(),
		c.newLogCmd(),
		c.newWatchCmd(),
		c.newVersionCmd(),
	)

	return rootCmd
}

// manager builds a [config.Manager] from the persistent flags.
func (c *cli) manager() (*config.Manager, error) {
	overrides, err := parseSets(c.sets)
	if err != nil {
		return nil, err
	}

	m, err := config.NewBuilder(env.NewAccessor(c.provider), nil, c.log).
		WithEnvFiles(c.envFiles...).
		WithJSON(c.configPaths...).
		WithOverrides(overrides).
		Build()
	if err != nil {
		return nil, err
	}

	c.log.Debug().
		Strs("config", c.configPaths).
		Strs("env_files", c.envFiles).
		Int("overrides", len(overrides)).
		Msg("configuration resolved")

	return m, nil
}

func parseSets(sets []string) (map[string]string, error) {
	values := make(map[string]string, len(sets))
	for _, s := range sets {
		key, value, ok := strings.Cut(s, "=")
		if !ok || strings.TrimSpace(key) == "" {
			return nil, fmt.Errorf("%w: --set expects KEY=VALUE, got %q", config.ErrInvalidArgument, s)
		}
		values[strings.TrimSpace(key)] = value
	}
	return values, nil
}

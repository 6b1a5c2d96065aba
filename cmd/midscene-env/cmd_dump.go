// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"github.com/spf13/cobra"
)

func (c *cli) newDumpCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print the configuration store",
		Long: `Print every value held by the configuration store: basic environment
keys, flattened config files and --set overrides. Environment-only keys
are not listed; use 'get' for those.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := c.manager()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if format == "" {
				format = defaultFormat(out)
			}
			return writeValues(out, format, m.Snapshot())
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: json, yaml or table (default table on a terminal, json otherwise)")
	return cmd
}

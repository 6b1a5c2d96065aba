// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"github.com/spf13/cobra"
)

func (c *cli) newSettingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "settings",
		Short: "Print the typed, validated settings as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := c.manager()
			if err != nil {
				return err
			}

			s, err := m.Settings()
			if err != nil {
				return err
			}

			return writeYAML(cmd.OutOrStdout(), s)
		},
	}
}

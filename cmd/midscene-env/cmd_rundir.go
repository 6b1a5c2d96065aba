// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/midscene-shared/internal/rundir"
)

func (c *cli) newRundirCmd() *cobra.Command {
	names := make([]string, 0, len(rundir.SubDirs()))
	for _, d := range rundir.SubDirs() {
		names = append(names, d.String())
	}

	return &cobra.Command{
		Use:       "rundir [SUBDIR]",
		Short:     "Create and print the run directory or one of its sub directories",
		Long:      "Create and print the run directory, or SUBDIR inside it. SUBDIR is one of: " + strings.Join(names, ", ") + ".",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: names,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := c.manager()
			if err != nil {
				return err
			}

			resolver := rundir.NewResolver(m, nil)

			var dir string
			if len(args) == 0 {
				dir, err = resolver.BaseDir()
			} else {
				dir, err = resolver.SubDirByName(args[0])
			}
			if err != nil {
				return err
			}

			c.log.Debug().Str("dir", dir).Msg("run directory resolved")
			fmt.Fprintln(cmd.OutOrStdout(), dir)
			return nil
		},
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/midscene-shared/internal/debuglog"
	"github.com/MKhiriev/midscene-shared/internal/rundir"
)

func (c *cli) newLogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "log TOPIC [ARGS...]",
		Short: "Append a line to a topic's debug log",
		Long: `Append one line to the debug log of TOPIC and print the log file path.

When the first argument contains {0}, {1}, ... placeholders they are
replaced by the remaining arguments; otherwise all arguments are joined
with a space. With no arguments nothing is written.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			m, err := c.manager()
			if err != nil {
				return err
			}

			registry := debuglog.NewRegistry(rundir.NewResolver(m, nil), nil)
			defer func() {
				err = errors.Join(err, registry.Cleanup())
			}()

			topic := args[0]
			debug, err := registry.Get(topic)
			if err != nil {
				return err
			}

			values := make([]any, 0, len(args)-1)
			for _, a := range args[1:] {
				values = append(values, a)
			}
			debug(values...)

			path, err := registry.LogPath(topic)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}

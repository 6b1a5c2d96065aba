// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/midscene-shared/internal/config"
)

func (c *cli) newWatchCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Reload the first config file on change and print the store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			if len(c.configPaths) == 0 {
				return fmt.Errorf("%w: watch needs at least one --config file", config.ErrInvalidArgument)
			}

			m, err := c.manager()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if format == "" {
				format = defaultFormat(out)
			}
			if err = writeValues(out, format, m.Snapshot()); err != nil {
				return err
			}

			w, err := config.NewWatcher(m, c.configPaths[0], func(snapshot map[string]string, reloadErr error) {
				if reloadErr != nil {
					fmt.Fprintln(cmd.ErrOrStderr(), "reload failed:", reloadErr)
					return
				}
				if writeErr := writeValues(out, format, snapshot); writeErr != nil {
					c.log.Error().Err(writeErr).Msg("error printing snapshot")
				}
			})
			if err != nil {
				return err
			}
			defer func() {
				err = errors.Join(err, w.Stop())
			}()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			w.Start(ctx)
			<-ctx.Done()
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: json, yaml or table")
	return cmd
}

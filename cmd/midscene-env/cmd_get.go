// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var errKeyNotSet = errors.New("key is not set")

func (c *cli) newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get KEY",
		Short: "Print the resolved value of a key",
		Long: `Print the value of KEY as the library resolves it: explicit values and
config files first, then the live environment. Nested JSON keys are
dot-delimited (e.g. custom.nested). Exits non-zero when the key is unset.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := c.manager()
			if err != nil {
				return err
			}

			v, ok := m.Get(args[0])
			if !ok {
				return fmt.Errorf("%w: %s", errKeyNotSet, args[0])
			}

			fmt.Fprintln(cmd.OutOrStdout(), v)
			return nil
		},
	}
}

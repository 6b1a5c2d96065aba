// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/midscene-shared/internal/config"
)

// Output formats accepted by --format.
const (
	formatJSON  = "json"
	formatYAML  = "yaml"
	formatTable = "table"
)

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// defaultFormat is a table for people and JSON for pipes.
func defaultFormat(w io.Writer) string {
	if isTerminal(w) {
		return formatTable
	}
	return formatJSON
}

func writeValues(w io.Writer, format string, values map[string]string) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(values)
	case formatYAML:
		return writeYAML(w, values)
	case formatTable:
		return writeTable(w, values)
	default:
		return fmt.Errorf("%w: unknown format %q (want json, yaml or table)", config.ErrInvalidArgument, format)
	}
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("error encoding yaml: %w", err)
	}
	return enc.Close()
}

func writeTable(w io.Writer, values map[string]string) error {
	key := color.New(color.FgCyan, color.Bold)
	if !isTerminal(w) {
		key.DisableColor()
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "KEY\tVALUE")
	for _, k := range keys {
		fmt.Fprintf(tw, "%s\t%s\n", key.Sprint(k), values[k])
	}
	return tw.Flush()
}

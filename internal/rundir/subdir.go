// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package rundir

import (
	"fmt"
	"strings"
)

// SubDir names one of the fixed directories under the run directory.
type SubDir string

const (
	Dump   SubDir = "dump"
	Cache  SubDir = "cache"
	Report SubDir = "report"
	Tmp    SubDir = "tmp"
	Log    SubDir = "log"
	Output SubDir = "output"
)

// SubDirs lists every known sub directory.
func SubDirs() []SubDir {
	return []SubDir{Dump, Cache, Report, Tmp, Log, Output}
}

// ParseSubDir maps a name to a [SubDir], ignoring case. Unknown names fail
// with an error wrapping [ErrInvalidArgument].
func ParseSubDir(name string) (SubDir, error) {
	for _, d := range SubDirs() {
		if strings.EqualFold(string(d), name) {
			return d, nil
		}
	}

	return "", fmt.Errorf("%w: unknown sub directory: %s", ErrInvalidArgument, name)
}

func (d SubDir) String() string {
	return string(d)
}

func (d SubDir) valid() bool {
	_, err := ParseSubDir(string(d))
	return err == nil
}

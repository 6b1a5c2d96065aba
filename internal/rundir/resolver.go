// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package rundir

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/MKhiriev/midscene-shared/internal/env"
)

// DefaultDirName is used when MIDSCENE_RUN_DIR is unset or blank, and always
// for the temp-dir fallback.
const DefaultDirName = "midscene_run"

// NameSource resolves configuration keys. Both *config.Manager and
// *env.Accessor satisfy it.
type NameSource interface {
	Get(key string) (string, bool)
}

// Resolver computes and creates run directories.
type Resolver struct {
	// WorkDir replaces the process working directory when non-empty.
	WorkDir string
	// TempDir replaces os.TempDir() as the fallback root when non-empty.
	TempDir string

	names NameSource
	fs    afero.Fs
}

// NewResolver returns a Resolver reading the run dir name from names and
// creating directories on fs. A nil fs means the OS filesystem; a nil names
// always yields [DefaultDirName].
func NewResolver(names NameSource, fs afero.Fs) *Resolver {
	if fs == nil {
		fs = afero.NewOsFs()
	}

	return &Resolver{names: names, fs: fs}
}

// DirName returns the configured run dir name, or [DefaultDirName] when it is
// unset or blank.
func (r *Resolver) DirName() string {
	if r.names == nil {
		return DefaultDirName
	}

	name, ok := r.names.Get(env.MidsceneRunDir)
	if !ok || strings.TrimSpace(name) == "" {
		return DefaultDirName
	}

	return name
}

// BaseDir returns <workdir>/<DirName()>, creating it if needed. An absolute
// run dir name is used as is. If the directory cannot be created (for
// example because a file occupies the path), <tempdir>/<DefaultDirName> is
// created and returned instead.
func (r *Resolver) BaseDir() (string, error) {
	candidate, err := r.candidate()
	if err == nil {
		if err = r.ensureDir(candidate); err == nil {
			return candidate, nil
		}
	}

	fallback := filepath.Join(r.tempDir(), DefaultDirName)
	if fallbackErr := r.ensureDir(fallback); fallbackErr != nil {
		return "", fmt.Errorf("%w at %s: %w", ErrCreateDir, fallback, errors.Join(err, fallbackErr))
	}

	return fallback, nil
}

// SubDir returns <BaseDir()>/<d>, creating it if needed.
func (r *Resolver) SubDir(d SubDir) (string, error) {
	if !d.valid() {
		return "", fmt.Errorf("%w: unknown sub directory: %s", ErrInvalidArgument, d)
	}

	base, err := r.BaseDir()
	if err != nil {
		return "", err
	}

	sub := filepath.Join(base, string(d))
	if err = r.ensureDir(sub); err != nil {
		return "", fmt.Errorf("%w: sub directory %s: %w", ErrCreateDir, d, err)
	}

	return sub, nil
}

// SubDirByName is [Resolver.SubDir] for a case-insensitive name.
func (r *Resolver) SubDirByName(name string) (string, error) {
	d, err := ParseSubDir(name)
	if err != nil {
		return "", err
	}
	return r.SubDir(d)
}

func (r *Resolver) candidate() (string, error) {
	name := r.DirName()
	if filepath.IsAbs(name) {
		return name, nil
	}

	workDir := r.WorkDir
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("error getting working directory: %w", err)
		}
		workDir = wd
	}

	return filepath.Join(workDir, name), nil
}

func (r *Resolver) tempDir() string {
	if r.TempDir != "" {
		return r.TempDir
	}
	return os.TempDir()
}

// ensureDir creates path and its parents. An existing directory is success,
// so concurrent callers racing on the same path all succeed.
func (r *Resolver) ensureDir(path string) error {
	if err := r.fs.MkdirAll(path, 0o755); err != nil {
		return err
	}

	info, err := r.fs.Stat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotDirectory, path)
	}

	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package debuglog

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/midscene-shared/internal/rundir"
)

// ── helpers ───────────────────────────────────────────────────────────────────

var fixedTime = time.Date(2026, time.March, 4, 5, 6, 7, 8_000_000, time.FixedZone("UTC+2", 2*60*60))

const memLogDir = "/work/midscene_run/log"

func newMemRegistry(t *testing.T) (*Registry, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	dirs := rundir.NewResolver(nil, fs)
	dirs.WorkDir = "/work"
	dirs.TempDir = "/tmp"

	r := NewRegistry(dirs, fs)
	r.now = func() time.Time { return fixedTime }
	t.Cleanup(func() { _ = r.Cleanup() })
	return r, fs
}

func readLines(t *testing.T, fs afero.Fs, path string) []string {
	t.Helper()
	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	text := strings.TrimSuffix(string(data), "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

// staticDirs always resolves to dir.
type staticDirs string

func (s staticDirs) SubDir(rundir.SubDir) (string, error) { return string(s), nil }

// ── Get ───────────────────────────────────────────────────────────────────────

// TestRegistry_Get_WritesLine verifies file location, line format and the
// space-joined rendering of multiple arguments.
func TestRegistry_Get_WritesLine(t *testing.T) {
	r, fs := newMemRegistry(t)

	debug, err := r.Get("automation:test")
	require.NoError(t, err)
	debug("hello", "world")

	lines := readLines(t, fs, filepath.Join(memLogDir, "automation-test.log"))
	require.Len(t, lines, 1)
	assert.Equal(t, "[2026-03-04T05:06:07.008+0200] hello world", lines[0])
}

// TestRegistry_Get_Memoized verifies that the same topic shares one handle.
func TestRegistry_Get_Memoized(t *testing.T) {
	r, fs := newMemRegistry(t)

	first, err := r.Get("web")
	require.NoError(t, err)
	second, err := r.Get("web")
	require.NoError(t, err)

	first("one")
	second("two")

	assert.Len(t, r.handles, 1)
	assert.Len(t, r.funcs, 1)
	assert.Contains(t, r.funcs, TopicPrefix+":web")

	lines := readLines(t, fs, filepath.Join(memLogDir, "web.log"))
	require.Len(t, lines, 2)
	assert.True(t, strings.HasSuffix(lines[0], "] one"))
	assert.True(t, strings.HasSuffix(lines[1], "] two"))
}

// TestRegistry_Get_DistinctTopics verifies one file per topic.
func TestRegistry_Get_DistinctTopics(t *testing.T) {
	r, fs := newMemRegistry(t)

	a, err := r.Get("ai:call")
	require.NoError(t, err)
	b, err := r.Get("ai:Inspect")
	require.NoError(t, err)

	a("a")
	b("b")

	assert.Equal(t, []string{"[2026-03-04T05:06:07.008+0200] a"}, readLines(t, fs, filepath.Join(memLogDir, "ai-call.log")))
	assert.Equal(t, []string{"[2026-03-04T05:06:07.008+0200] b"}, readLines(t, fs, filepath.Join(memLogDir, "ai-inspect.log")))
}

// TestRegistry_Func_NoArgsIsNoop verifies that an empty call writes nothing.
func TestRegistry_Func_NoArgsIsNoop(t *testing.T) {
	r, fs := newMemRegistry(t)

	debug, err := r.Get("quiet")
	require.NoError(t, err)
	debug()

	assert.Empty(t, readLines(t, fs, filepath.Join(memLogDir, "quiet.log")))
}

// TestRegistry_Func_EmptyMessage verifies that an empty message still keeps
// the space after the timestamp.
func TestRegistry_Func_EmptyMessage(t *testing.T) {
	r, fs := newMemRegistry(t)

	debug, err := r.Get("blank")
	require.NoError(t, err)
	debug("")

	data, err := afero.ReadFile(fs, filepath.Join(memLogDir, "blank.log"))
	require.NoError(t, err)
	assert.Equal(t, "[2026-03-04T05:06:07.008+0200] \n", string(data))
}

// TestRegistry_Func_Template verifies positional substitution.
func TestRegistry_Func_Template(t *testing.T) {
	r, fs := newMemRegistry(t)

	debug, err := r.Get("tmpl")
	require.NoError(t, err)
	debug("loaded {0} keys from {1}", 3, "config.json")

	lines := readLines(t, fs, filepath.Join(memLogDir, "tmpl.log"))
	require.Len(t, lines, 1)
	assert.True(t, strings.HasSuffix(lines[0], "] loaded 3 keys from config.json"))
}

// TestRegistry_Get_OpenFailure verifies that an unwritable log location is
// reported at first use of the topic.
func TestRegistry_Get_OpenFailure(t *testing.T) {
	t.Run("log dir", func(t *testing.T) {
		fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
		dirs := rundir.NewResolver(nil, fs)
		dirs.WorkDir = "/work"
		dirs.TempDir = "/tmp"

		fn, err := NewRegistry(dirs, fs).Get("topic")
		require.Error(t, err)
		assert.Nil(t, fn)
		assert.ErrorIs(t, err, ErrOpenLog)
		assert.ErrorIs(t, err, rundir.ErrCreateDir)
	})

	t.Run("log file", func(t *testing.T) {
		fs := afero.NewReadOnlyFs(afero.NewMemMapFs())

		fn, err := NewRegistry(staticDirs("/logs"), fs).Get("topic")
		require.Error(t, err)
		assert.Nil(t, fn)
		assert.ErrorIs(t, err, ErrOpenLog)
		assert.Contains(t, err.Error(), "topic")
	})
}

// ── Cleanup ───────────────────────────────────────────────────────────────────

// TestRegistry_Cleanup verifies that handles are closed, stale functions
// become no-ops and a fresh Get appends to the existing file.
func TestRegistry_Cleanup(t *testing.T) {
	r, fs := newMemRegistry(t)
	path := filepath.Join(memLogDir, "cycle.log")

	stale, err := r.Get("cycle")
	require.NoError(t, err)
	stale("before")

	require.NoError(t, r.Cleanup())
	assert.Empty(t, r.handles)
	assert.Empty(t, r.funcs)

	stale("ignored")
	assert.Len(t, readLines(t, fs, path), 1)

	fresh, err := r.Get("cycle")
	require.NoError(t, err)
	fresh("after")

	lines := readLines(t, fs, path)
	require.Len(t, lines, 2)
	assert.True(t, strings.HasSuffix(lines[1], "] after"))
}

func TestRegistry_Cleanup_Empty(t *testing.T) {
	r, _ := newMemRegistry(t)
	assert.NoError(t, r.Cleanup())
}

// ── concurrency / OS ──────────────────────────────────────────────────────────

// TestRegistry_ConcurrentLogging verifies that concurrent callers never
// interleave partial lines.
func TestRegistry_ConcurrentLogging(t *testing.T) {
	r, fs := newMemRegistry(t)

	var wg sync.WaitGroup
	for i := range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			debug, err := r.Get("busy")
			if err != nil {
				t.Error(err)
				return
			}
			debug("worker", i)
		}()
	}
	wg.Wait()

	lines := readLines(t, fs, filepath.Join(memLogDir, "busy.log"))
	require.Len(t, lines, 32)
	for _, line := range lines {
		assert.Contains(t, line, "] worker ")
	}
}

// TestRegistry_OSFilesystem is the end-to-end case on a real directory with
// the default clock.
func TestRegistry_OSFilesystem(t *testing.T) {
	dirs := rundir.NewResolver(nil, nil)
	dirs.WorkDir = t.TempDir()

	r := NewRegistry(dirs, nil)
	t.Cleanup(func() { _ = r.Cleanup() })

	debug, err := r.Get("automation:test")
	require.NoError(t, err)
	debug("hello", "world")

	path, err := r.LogPath("automation:test")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dirs.WorkDir, rundir.DefaultDirName, "log", "automation-test.log"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "hello world")
	assert.Regexp(t, `^\[\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{3}[+-]\d{4}\] hello world$`, lines[0])
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package rundir locates and creates the run directory that holds dumps,
// caches, reports, temporary files, logs and outputs:
//
//	<workdir>/<run dir name>/{dump,cache,report,tmp,log,output}/
//
// The run dir name comes from MIDSCENE_RUN_DIR and defaults to
// [DefaultDirName]. When the preferred location cannot be created the
// resolver falls back to the same name under the system temp dir.
// Directories are created on every call; nothing is cached.
package rundir

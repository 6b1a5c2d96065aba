// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command midscene-env inspects the configuration, run directories and
// debug logs the way library callers see them.
package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/midscene-shared/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	if err := newRootCmd(info, nil).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

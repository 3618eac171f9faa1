// Copyright (c) 2017-2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

// Package build holds version information set at compile time using -ldflags -X
package build

import (
	"runtime/debug"
)

// Version the application version
var Version = "development"

// SHA is the git reference used to build this package
var SHA = "unknown"

// BuildDate is when it was build
var BuildDate = "unknown"

// License is the official Open Source Initiave license abbreciation
var License = "Apache-2.0"

func init() {
	if SHA != "unknown" {
		return
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			SHA = s.Value
		case "vcs.time":
			if BuildDate == "unknown" {
				BuildDate = s.Value
			}
		}
	}
}

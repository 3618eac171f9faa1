// Copyright (c) 2017-2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package build

import "encoding/json"

// Info exposes the build information, it marshals to JSON for the statistics endpoint
type Info struct{}

func (i *Info) Version() string   { return Version }
func (i *Info) SHA() string       { return SHA }
func (i *Info) BuildDate() string { return BuildDate }
func (i *Info) License() string   { return License }

// MarshalJSON renders the build information as a JSON object
func (i *Info) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]string{
		"version":    Version,
		"sha":        SHA,
		"build_date": BuildDate,
		"license":    License,
	})
}

// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package pdp

import (
	"fmt"
	"strings"
)

// Status is the standby status of a node as tracked by the service status port
type Status string

const (
	// UnknownStatus is a node whose status was never recorded
	UnknownStatus Status = "null"
	// ProvidingService is the active node
	ProvidingService Status = "providingservice"
	// HotStandby is a node ready to take over
	HotStandby Status = "hotstandby"
	// ColdStandby is a node not eligible to take over
	ColdStandby Status = "coldstandby"
)

// Statuses is the list of known standby statuses
var Statuses = []Status{UnknownStatus, ProvidingService, HotStandby, ColdStandby}

// ParseStatus parses a string into a Status, an empty string is UnknownStatus
func ParseStatus(s string) (Status, error) {
	clean := Status(strings.ToLower(strings.TrimSpace(s)))
	if clean == "" {
		return UnknownStatus, nil
	}

	for _, st := range Statuses {
		if st == clean {
			return st, nil
		}
	}

	return UnknownStatus, fmt.Errorf("invalid standby status %q", s)
}

// Effective is the status as seen by the election, unknown is treated as cold standby
func (s Status) Effective() Status {
	if s == UnknownStatus || s == "" {
		return ColdStandby
	}

	return s
}

// IsStandby is true for hot and cold standby
func (s Status) IsStandby() bool {
	return s == HotStandby || s == ColdStandby
}

func (s Status) String() string {
	return string(s)
}

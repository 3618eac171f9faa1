// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package lifecycle

import (
	"fmt"

	"github.com/onap/policy-drools-pdp-sub003/inter"
)

// DesignationEvent is a io.onap.pdp.designation.v1 event published when the
// local designation or the known active node changes
type DesignationEvent struct {
	basicEvent
	Designated    bool   `json:"designated"`
	CurrentActive string `json:"current_active"`
	LastActive    string `json:"last_active"`
}

func init() {
	eventTypes["designation"] = Designation

	eventJSONParsers[Designation] = func(j []byte) (Event, error) {
		event := &DesignationEvent{basicEvent: newBasicEvent("designation")}
		return event, parseEventJSON(j, event, "designation")
	}

	eventFactories[Designation] = func(opts ...Option) (Event, error) {
		event := &DesignationEvent{basicEvent: newBasicEvent("designation")}
		return event, applyOptions(event, opts)
	}
}

// SetDesignation sets the state described by the event
func (e *DesignationEvent) SetDesignation(change inter.DesignationChange) {
	if change.Identity != "" {
		e.Ident = change.Identity
	}

	e.Designated = change.Designated
	e.CurrentActive = change.CurrentActive
	e.LastActive = change.LastActive
}

func (e *DesignationEvent) String() string {
	switch {
	case e.Designated:
		return fmt.Sprintf("[designation] %s: designated as the active node", e.Ident)
	case e.CurrentActive != "":
		return fmt.Sprintf("[designation] %s: standing by for active node %s", e.Ident, e.CurrentActive)
	case e.LastActive != "":
		return fmt.Sprintf("[designation] %s: no active node, last active was %s", e.Ident, e.LastActive)
	default:
		return fmt.Sprintf("[designation] %s: no active node", e.Ident)
	}
}

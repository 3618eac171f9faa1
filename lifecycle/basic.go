// Copyright (c) 2020-2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package lifecycle

import (
	"fmt"
	"time"

	"github.com/onap/policy-drools-pdp-sub003/internal/util"
)

var (
	// clock and newEventID are replaced in tests for stable event contents
	clock      = time.Now
	newEventID = util.UniqueID
)

type basicEvent struct {
	EventProtocol string `json:"protocol"`
	EventID       string `json:"id"`
	Ident         string `json:"identity"`
	Comp          string `json:"component"`
	Timestamp     int64  `json:"timestamp"`

	etype  string
	format Format
}

func newBasicEvent(t string) basicEvent {
	return basicEvent{
		Timestamp:     clock().UTC().Unix(),
		EventID:       newEventID(),
		EventProtocol: protocolForType(t),
		etype:         t,
		format:        CloudEventV1Format,
	}
}

func protocolForType(t string) string {
	return fmt.Sprintf("io.onap.pdp.%s.v1", t)
}

func (e *basicEvent) Target(prefix string) (string, error) {
	if e.Ident == "" {
		return "", fmt.Errorf("event is not complete, identity has not been set")
	}

	if prefix == "" {
		return "", fmt.Errorf("a subject prefix is required")
	}

	return fmt.Sprintf("%s.%s", prefix, e.Ident), nil
}

func (e *basicEvent) SetIdentity(i string) {
	e.Ident = i
}

func (e *basicEvent) SetComponent(c string) {
	e.Comp = c
}

func (e *basicEvent) Component() string {
	return e.Comp
}

func (e *basicEvent) Identity() string {
	return e.Ident
}

func (e *basicEvent) ID() string {
	return e.EventID
}

func (e *basicEvent) Protocol() string {
	return e.EventProtocol
}

func (e *basicEvent) Format() Format {
	return e.format
}

func (e *basicEvent) SetFormat(f Format) {
	e.format = f
}

func (e *basicEvent) TimeStamp() time.Time {
	return time.Unix(e.Timestamp, 0)
}

func (e *basicEvent) Type() Type {
	return eventTypes[e.etype]
}

func (e *basicEvent) TypeString() string {
	return e.etype
}

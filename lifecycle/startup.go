// Copyright (c) 2020-2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package lifecycle

import (
	"encoding/json"
	"fmt"
)

// StartupEvent is a io.onap.pdp.startup.v1 event
type StartupEvent struct {
	basicEvent
	Version string `json:"version"`
}

// ShutdownEvent is a io.onap.pdp.shutdown.v1 event
type ShutdownEvent struct {
	basicEvent
}

func init() {
	eventTypes["startup"] = Startup
	eventTypes["shutdown"] = Shutdown

	eventJSONParsers[Startup] = func(j []byte) (Event, error) {
		event := &StartupEvent{basicEvent: newBasicEvent("startup")}
		return event, parseEventJSON(j, event, "startup")
	}

	eventJSONParsers[Shutdown] = func(j []byte) (Event, error) {
		event := &ShutdownEvent{basicEvent: newBasicEvent("shutdown")}
		return event, parseEventJSON(j, event, "shutdown")
	}

	eventFactories[Startup] = func(opts ...Option) (Event, error) {
		event := &StartupEvent{basicEvent: newBasicEvent("startup")}
		return event, applyOptions(event, opts)
	}

	eventFactories[Shutdown] = func(opts ...Option) (Event, error) {
		event := &ShutdownEvent{basicEvent: newBasicEvent("shutdown")}
		return event, applyOptions(event, opts)
	}
}

func (e *StartupEvent) SetVersion(v string) {
	e.Version = v
}

func (e *StartupEvent) String() string {
	return fmt.Sprintf("[startup] %s: %s version %s", e.Ident, e.Component(), e.Version)
}

func (e *ShutdownEvent) String() string {
	return fmt.Sprintf("[shutdown] %s: %s", e.Ident, e.Component())
}

// parseEventJSON unmarshals j into event and checks it has the protocol for t
func parseEventJSON(j []byte, event Event, t string) error {
	err := json.Unmarshal(j, event)
	if err != nil {
		return err
	}

	if event.Protocol() != protocolForType(t) {
		return fmt.Errorf("invalid protocol '%s'", event.Protocol())
	}

	return nil
}

// Copyright (c) 2020-2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

/*
Package lifecycle provides events that PDP nodes emit during startup,
shutdown and whenever their designation or the known active node changes.

Events are carried in version 1.0 CloudEvents and published over NATS to
a subject made of a configurable prefix and the node identity.
*/
package lifecycle

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	cloudevents "github.com/cloudevents/sdk-go/v2"
	"github.com/tidwall/gjson"
)

// Event is published by a node about itself, the identity is the node that
// emitted it and the subject it is published to
type Event interface {
	// Protocol is the versioned schema name, io.onap.pdp.<type>.v1
	Protocol() string
	// Target is the subject the event is published to below prefix
	Target(prefix string) (string, error)
	String() string
	Type() Type
	TypeString() string
	SetIdentity(string)
	Component() string
	Identity() string
	ID() string
	Format() Format
	SetFormat(Format)
	TimeStamp() time.Time
}

// Type is a type of event this system supports
type Type int

const (
	// Unknown is for when a Type string was passed in that doesn't match what was expected
	Unknown Type = iota - 1

	// Startup is an event nodes publish when they start
	Startup

	// Shutdown is an event nodes publish when they shutdown
	Shutdown

	// Designation is an event nodes publish when their designation changes
	Designation
)

func (t Type) String() string {
	switch t {
	case Startup:
		return "Startup"
	case Shutdown:
		return "Shutdown"
	case Designation:
		return "Designation"
	default:
		return "Unknown"
	}
}

// Format is the event format used for transporting events
type Format int

const (
	// UnknownFormat is an unknown format message
	UnknownFormat Format = iota

	// CloudEventV1Format is a lifecycle event carried within a version 1.0 CloudEvent
	CloudEventV1Format
)

func (f Format) String() string {
	switch f {
	case CloudEventV1Format:
		return "CloudEventV1Format"
	default:
		return "UnknownFormat"
	}
}

// EventSource is the CloudEvent source of all lifecycle events
const EventSource = "io.onap.pdp.lifecycle"

// Publisher publishes raw data to a subject, *nats.Conn implements it
type Publisher interface {
	Publish(subject string, data []byte) error
}

var eventTypes = make(map[string]Type)
var eventJSONParsers = make(map[Type]func([]byte) (Event, error))
var eventFactories = make(map[Type]func(...Option) (Event, error))

// New creates a new event
func New(t Type, opts ...Option) (Event, error) {
	factory, ok := eventFactories[t]
	if !ok {
		return nil, errors.New("unknown event type")
	}

	return factory(opts...)
}

// EventTypeNames produce a list of valid event type names
func EventTypeNames() []string {
	names := []string{}

	for k := range eventTypes {
		names = append(names, k)
	}

	sort.Strings(names)

	return names
}

// EventFormatFromJSON inspects the JSON data and tries to determine the format from it's content
func EventFormatFromJSON(j []byte) Format {
	specversion := gjson.GetBytes(j, "specversion")
	source := gjson.GetBytes(j, "source")

	if specversion.String() == "1.0" && source.String() == EventSource {
		return CloudEventV1Format
	}

	return UnknownFormat
}

// NewFromJSON creates an event from the event JSON
func NewFromJSON(j []byte) (event Event, err error) {
	switch EventFormatFromJSON(j) {
	case CloudEventV1Format:
		event, err = cloudeventV1FormatNewFromJSON(j)
	default:
		return nil, fmt.Errorf("unsupported event format")
	}

	if err != nil {
		return nil, err
	}

	event.SetFormat(CloudEventV1Format)

	return event, nil
}

func cloudeventV1FormatNewFromJSON(j []byte) (Event, error) {
	event := cloudevents.NewEvent("1.0")
	err := event.UnmarshalJSON(j)
	if err != nil {
		return nil, err
	}

	data := event.Data()
	protocol := gjson.GetBytes(data, "protocol").String()
	name := strings.TrimSuffix(strings.TrimPrefix(protocol, "io.onap.pdp."), ".v1")

	t, ok := eventTypes[name]
	if !ok {
		return nil, fmt.Errorf("unknown event protocol '%s'", protocol)
	}

	return eventJSONParsers[t](data)
}

// ToCloudEventV1 converts an event to a CloudEvent version 1
func ToCloudEventV1(e Event) cloudevents.Event {
	event := cloudevents.NewEvent("1.0")

	event.SetType(e.Protocol())
	event.SetSource(EventSource)
	event.SetSubject(e.Identity())
	event.SetID(e.ID())
	event.SetTime(e.TimeStamp())
	event.SetData(cloudevents.ApplicationJSON, e)

	return event
}

// PublishEvent publishes an event to the subject prefix.identity
func PublishEvent(e Event, prefix string, conn Publisher) error {
	var j []byte
	var err error

	switch e.Format() {
	case CloudEventV1Format:
		j, err = ToCloudEventV1(e).MarshalJSON()
	default:
		err = fmt.Errorf("do not know how to publish this format event")
	}
	if err != nil {
		return err
	}

	target, err := e.Target(prefix)
	if err != nil {
		return err
	}

	return conn.Publish(target, j)
}

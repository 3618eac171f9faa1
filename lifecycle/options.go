// Copyright (c) 2020-2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package lifecycle

import (
	"errors"

	"github.com/onap/policy-drools-pdp-sub003/inter"
)

// Option configures events
type Option func(e any) error

// VersionEvent is an event that has a version
type VersionEvent interface {
	SetVersion(string)
}

// ComponentEvent is an event that has a component
type ComponentEvent interface {
	SetComponent(string)
}

// DesignatedEvent is an event that describes the designation of a node
type DesignatedEvent interface {
	SetDesignation(inter.DesignationChange)
}

func applyOptions(e Event, opts []Option) error {
	for _, opt := range opts {
		err := opt(e)
		if err != nil {
			return err
		}
	}

	return nil
}

// Component set the component for events
func Component(component string) Option {
	return func(e any) error {
		event, ok := e.(ComponentEvent)
		if !ok {
			return errors.New("cannot set component, event does not implement ComponentEvent")
		}

		event.SetComponent(component)

		return nil
	}
}

// Version set the version for events
func Version(version string) Option {
	return func(e any) error {
		event, ok := e.(VersionEvent)
		if !ok {
			return errors.New("cannot set version, event does not implement VersionEvent")
		}

		event.SetVersion(version)

		return nil
	}
}

// Identity sets the identity for events
func Identity(identity string) Option {
	return func(e any) error {
		event, ok := e.(Event)
		if !ok {
			return errors.New("cannot set identity, event does not implement Event")
		}

		event.SetIdentity(identity)

		return nil
	}
}

// DesignationState sets the designation state for designation events
func DesignationState(change inter.DesignationChange) Option {
	return func(e any) error {
		event, ok := e.(DesignatedEvent)
		if !ok {
			return errors.New("cannot set designation, event is not a designation event")
		}

		event.SetDesignation(change)

		return nil
	}
}

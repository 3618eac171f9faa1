// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package lifecycle

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/onap/policy-drools-pdp-sub003/inter"
)

// Notifier publishes lifecycle events for a node, it implements inter.DesignationNotifier
type Notifier struct {
	conn      Publisher
	prefix    string
	identity  string
	component string
	log       *logrus.Entry
}

// NewNotifier creates a notifier publishing events for identity below prefix
func NewNotifier(conn Publisher, prefix string, identity string, component string, log *logrus.Entry) (*Notifier, error) {
	if conn == nil {
		return nil, fmt.Errorf("a connection is required")
	}

	if identity == "" {
		return nil, fmt.Errorf("identity is required")
	}

	return &Notifier{
		conn:      conn,
		prefix:    prefix,
		identity:  identity,
		component: component,
		log:       log.WithField("component", "lifecycle"),
	}, nil
}

// NotifyDesignation publishes a designation event
func (n *Notifier) NotifyDesignation(_ context.Context, change inter.DesignationChange) error {
	if change.Identity == "" {
		change.Identity = n.identity
	}

	return n.publish(Designation, DesignationState(change))
}

// Startup publishes a startup event
func (n *Notifier) Startup(version string) error {
	return n.publish(Startup, Version(version))
}

// Shutdown publishes a shutdown event
func (n *Notifier) Shutdown() error {
	return n.publish(Shutdown)
}

func (n *Notifier) publish(t Type, opts ...Option) error {
	opts = append([]Option{Identity(n.identity), Component(n.component)}, opts...)

	event, err := New(t, opts...)
	if err != nil {
		return err
	}

	n.log.Debugf("Publishing %s", event.String())

	err = PublishEvent(event, n.prefix, n.conn)
	if err != nil {
		return fmt.Errorf("could not publish %s event: %w", event.TypeString(), err)
	}

	return nil
}

// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

// Package status implements the service status port of a node as a finite
// state machine over the standby statuses, publishing every change to a
// cluster wide Store so peers can read it
package status

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/looplab/fsm"
	"github.com/onap/policy-drools-pdp-sub003/pdp"
	"github.com/sirupsen/logrus"
)

var (
	// ErrNotEligible indicates a node can not provide service while locked or disabled
	ErrNotEligible = errors.New("node is not eligible to provide service")
	// ErrInvalidStatus indicates an unknown standby status
	ErrInvalidStatus = errors.New("invalid standby status")
)

const (
	promoteEvent = "promote"
	demoteEvent  = "demote"
	disableEvent = "disable"
)

var allStates = []string{
	pdp.UnknownStatus.String(),
	pdp.ColdStandby.String(),
	pdp.HotStandby.String(),
	pdp.ProvidingService.String(),
}

// Manager is the status port of the local node
type Manager struct {
	id       string
	store    Store
	fsm      *fsm.FSM
	locked   bool
	disabled bool
	log      *logrus.Entry
	mu       sync.Mutex
}

// NewManager creates a manager for the node id publishing to store, the
// node starts with an unknown status
func NewManager(id string, store Store, log *logrus.Entry) (*Manager, error) {
	if id == "" {
		return nil, fmt.Errorf("identity is required")
	}

	if store == nil {
		return nil, fmt.Errorf("status store is required")
	}

	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}

	m := &Manager{
		id:    id,
		store: store,
		log:   log.WithField("component", "status"),
	}

	m.fsm = fsm.NewFSM(pdp.UnknownStatus.String(), fsm.Events{
		{Name: promoteEvent, Src: allStates, Dst: pdp.ProvidingService.String()},
		{Name: demoteEvent, Src: allStates, Dst: pdp.HotStandby.String()},
		{Name: disableEvent, Src: allStates, Dst: pdp.ColdStandby.String()},
	}, fsm.Callbacks{
		"enter_state": func(_ context.Context, e *fsm.Event) {
			m.log.Infof("Standby status changed from %s to %s on %s", e.Src, e.Dst, e.Event)
		},
	})

	return m, nil
}

// Identity is the node this manager manages
func (m *Manager) Identity() string {
	return m.id
}

// Current is the standby status of the local node
func (m *Manager) Current() pdp.Status {
	m.mu.Lock()
	defer m.mu.Unlock()

	return pdp.Status(m.fsm.Current())
}

// Status retrieves the status of id, the local node is answered from the
// state machine and other nodes from the store
func (m *Manager) Status(ctx context.Context, id string) (pdp.Status, error) {
	if id == m.id {
		return m.Current(), nil
	}

	return m.store.Get(ctx, id)
}

// Promote moves the node to providing service, a locked or disabled node is
// moved to cold standby and ErrNotEligible is returned
func (m *Manager) Promote(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.locked || m.disabled {
		err := m.transition(ctx, disableEvent)
		if err != nil {
			return err
		}

		return fmt.Errorf("%w: %s", ErrNotEligible, m.reasonLocked())
	}

	return m.transition(ctx, promoteEvent)
}

// Demote moves the node to hot standby, or cold standby when locked or disabled
func (m *Manager) Demote(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.locked || m.disabled {
		return m.transition(ctx, disableEvent)
	}

	return m.transition(ctx, demoteEvent)
}

// DisableFailed marks the node as failed, it stays cold standby until refreshed
func (m *Manager) DisableFailed(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.disabled = true

	return m.transition(ctx, disableEvent)
}

// DisableFailedByID marks another node as failed in the cluster view
func (m *Manager) DisableFailedByID(ctx context.Context, id string) error {
	if id == m.id {
		return m.DisableFailed(ctx)
	}

	return m.store.Put(ctx, id, pdp.ColdStandby)
}

// RefreshStatus clears a failure once liveness resumed, moving a cold or
// unknown node to hot standby, and republishes the local status
func (m *Manager) RefreshStatus(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.disabled {
		m.log.Infof("Liveness resumed, enabling node")
		m.disabled = false
	}

	current := pdp.Status(m.fsm.Current())
	if !m.locked && (current == pdp.UnknownStatus || current == pdp.ColdStandby) {
		return m.transition(ctx, demoteEvent)
	}

	return m.publish(ctx)
}

// Lock administratively locks the node, a locked node is cold standby
func (m *Manager) Lock(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.locked = true

	return m.transition(ctx, disableEvent)
}

// Unlock removes the administrative lock, the node becomes hot standby unless disabled
func (m *Manager) Unlock(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.locked = false
	if m.disabled {
		return m.publish(ctx)
	}

	return m.transition(ctx, demoteEvent)
}

// IsLocked determines if the node is administratively locked
func (m *Manager) IsLocked() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.locked
}

// IsDisabled determines if the node was marked as failed
func (m *Manager) IsDisabled() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.disabled
}

func (m *Manager) reasonLocked() string {
	switch {
	case m.locked && m.disabled:
		return "locked and disabled"
	case m.locked:
		return "locked"
	default:
		return "disabled"
	}
}

func (m *Manager) transition(ctx context.Context, event string) error {
	err := m.fsm.Event(ctx, event)
	if err != nil {
		var nte fsm.NoTransitionError
		if !errors.As(err, &nte) {
			return fmt.Errorf("could not %s %s: %w", event, m.id, err)
		}
	}

	return m.publish(ctx)
}

func (m *Manager) publish(ctx context.Context) error {
	err := m.store.Put(ctx, m.id, pdp.Status(m.fsm.Current()))
	if err != nil {
		return fmt.Errorf("could not publish status of %s: %w", m.id, err)
	}

	return nil
}

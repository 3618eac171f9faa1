// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package election

import (
	"fmt"
	"time"

	"github.com/onap/policy-drools-pdp-sub003/backoff"
	"github.com/onap/policy-drools-pdp-sub003/inter"
	"github.com/sirupsen/logrus"
)

const (
	// DefaultHeartbeatInterval is how often a node records its liveness
	DefaultHeartbeatInterval = 3 * time.Second
	// DefaultElectionInterval is how often a node runs an election round
	DefaultElectionInterval = 2 * time.Second
	// DefaultStaleTimeout is how long after its last heartbeat a node is considered failed
	DefaultStaleTimeout = 15 * time.Second

	heartbeatStartDelay       = 100 * time.Millisecond
	heartbeatStallGrace       = 2 * time.Second
	electionStallFactor       = 10
	minimumElectionStartDelay = 5 * time.Second
	maxRestartLockWait        = time.Second
	shutdownTimeout           = 5 * time.Second
)

// Config configures the election engine
type Config struct {
	// Identity is the unique id of the local node
	Identity string
	// Site is the deployment site of the local node
	Site string
	// Priority is the tie-break priority of the local node, lower wins
	Priority int
	// HeartbeatInterval is how often liveness is recorded
	HeartbeatInterval time.Duration
	// ElectionInterval is how often a round runs
	ElectionInterval time.Duration
	// StaleTimeout is the freshness window of records
	StaleTimeout time.Duration
}

func (c *Config) normalize() error {
	if c.Identity == "" {
		return fmt.Errorf("identity is required")
	}

	if c.HeartbeatInterval == 0 {
		c.HeartbeatInterval = DefaultHeartbeatInterval
	}

	if c.ElectionInterval == 0 {
		c.ElectionInterval = DefaultElectionInterval
	}

	if c.StaleTimeout == 0 {
		c.StaleTimeout = DefaultStaleTimeout
	}

	switch {
	case c.HeartbeatInterval < 0:
		return fmt.Errorf("heartbeat interval %v is invalid", c.HeartbeatInterval)
	case c.ElectionInterval < 0:
		return fmt.Errorf("election interval %v is invalid", c.ElectionInterval)
	case c.StaleTimeout <= c.HeartbeatInterval:
		return fmt.Errorf("stale timeout %v should be longer than the heartbeat interval %v", c.StaleTimeout, c.HeartbeatInterval)
	}

	return nil
}

// Option configures the Engine
type Option func(*Engine)

// WithLogger sets the logger to use
func WithLogger(log *logrus.Entry) Option {
	return func(e *Engine) { e.log = log }
}

// WithClock sets the time source, it should match the one used by the repository
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithNotifier receives designation changes
func WithNotifier(n inter.DesignationNotifier) Option {
	return func(e *Engine) { e.notifier = n }
}

// WithRegistrationBackoff sets the retry policy used while registering at startup
func WithRegistrationBackoff(p backoff.Policy) Option {
	return func(e *Engine) { e.registerBackoff = p }
}

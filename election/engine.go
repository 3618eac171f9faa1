// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

// Package election keeps exactly one node of a PDP fleet designated as the
// active node, all other fresh nodes are kept in hot standby.
//
// Every node runs two periodic tasks, a heartbeat that records liveness in
// the shared record store and an election round that reads every record and
// decides who should be active. Each task checks the other has not stalled
// and restarts it when it has.
package election

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/onap/policy-drools-pdp-sub003/backoff"
	"github.com/onap/policy-drools-pdp-sub003/inter"
	"github.com/onap/policy-drools-pdp-sub003/pdp"
	"github.com/sirupsen/logrus"
)

// Engine runs the heartbeat and election tasks for the local node
type Engine struct {
	cfg             Config
	repo            inter.PdpRepository
	status          inter.StatusPort
	notifier        inter.DesignationNotifier
	registerBackoff backoff.Policy
	log             *logrus.Entry
	now             func() time.Time

	// roundLock serializes election rounds and watchdog restarts of the election task
	roundLock  chan struct{}
	designated atomic.Bool

	heartbeat   *task
	election    *task
	heartbeatMu sync.Mutex

	diagMu        sync.RWMutex
	currentActive string
	lastActive    string

	ctx    context.Context
	cancel context.CancelFunc
	mu     sync.Mutex
}

// New creates a new election engine for the node described in cfg
func New(cfg Config, repo inter.PdpRepository, status inter.StatusPort, opts ...Option) (*Engine, error) {
	err := cfg.normalize()
	if err != nil {
		return nil, err
	}

	if repo == nil {
		return nil, fmt.Errorf("a record repository is required")
	}

	if status == nil {
		return nil, fmt.Errorf("a service status port is required")
	}

	e := &Engine{
		cfg:             cfg,
		repo:            repo,
		status:          status,
		registerBackoff: backoff.TwentySec,
		now:             time.Now,
		roundLock:       make(chan struct{}, 1),
	}

	for _, opt := range opts {
		opt(e)
	}

	if e.log == nil {
		e.log = logrus.NewEntry(logrus.New())
	}
	e.log = e.log.WithFields(logrus.Fields{"component": "election", "identity": cfg.Identity})

	e.heartbeat = newTask("heartbeat", cfg.HeartbeatInterval, e.now, e.log, func(ctx context.Context) {
		e.heartbeatOnce(ctx)
		e.checkElection()
	})

	e.election = newTask("election", cfg.ElectionInterval, e.now, e.log, func(ctx context.Context) {
		e.runRound(ctx)
		e.checkHeartbeat()
	})

	e.heartbeat.recovered = func(r any) { e.failed("heartbeat", fmt.Errorf("panic: %v", r)) }
	e.election.recovered = func(r any) { e.failed("election", fmt.Errorf("panic: %v", r)) }

	designatedGauge.WithLabelValues(cfg.Identity).Set(0)

	return e, nil
}

// Start registers the node and runs the tasks until ctx is cancelled or Stop is called,
// a designated node stands down before Start returns
func (e *Engine) Start(ctx context.Context) error {
	e.mu.Lock()
	if e.cancel != nil {
		e.mu.Unlock()
		return fmt.Errorf("election engine is already running")
	}
	e.ctx, e.cancel = context.WithCancel(ctx)
	runCtx := e.ctx
	e.mu.Unlock()

	defer func() {
		e.mu.Lock()
		e.cancel()
		e.cancel = nil
		e.mu.Unlock()
	}()

	err := e.register(runCtx)
	if err != nil {
		return fmt.Errorf("could not register %s: %w", e.cfg.Identity, err)
	}

	e.log.Infof("Starting election for %s in site %q with priority %d", e.cfg.Identity, e.cfg.Site, e.cfg.Priority)

	e.heartbeat.start(runCtx, heartbeatStartDelay)
	e.election.start(runCtx, electionStartDelay(e.now(), e.cfg.ElectionInterval))

	<-runCtx.Done()

	e.heartbeat.stop()
	e.election.stop()
	e.shutdown()

	return nil
}

// Stop stops a running engine
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.cancel != nil {
		e.cancel()
	}
}

// Identity is the id of the local node
func (e *Engine) Identity() string {
	return e.cfg.Identity
}

// IsDesignated indicates if the local node believes it is the active node
func (e *Engine) IsDesignated() bool {
	return e.designated.Load()
}

// CurrentActive is the id of the winner of the latest round, empty when there was none
func (e *Engine) CurrentActive() string {
	e.diagMu.RLock()
	defer e.diagMu.RUnlock()

	return e.currentActive
}

// LastActive is the id of the most recent primary as seen by the latest round with a winner
func (e *Engine) LastActive() string {
	e.diagMu.RLock()
	defer e.diagMu.RUnlock()

	return e.lastActive
}

// register upserts the local record, never designated, retrying until the store is reachable
func (e *Engine) register(ctx context.Context) error {
	return e.registerBackoff.For(ctx, func(try int) error {
		rec := pdp.New(e.cfg.Identity, e.cfg.Site, e.cfg.Priority)

		err := e.repo.Update(ctx, rec)
		if err == nil {
			err = e.repo.SetDesignated(ctx, rec, false)
		}

		if err != nil {
			e.log.Warnf("Could not register in the record store on try %d: %v", try+1, err)
			return err
		}

		return nil
	})
}

func (e *Engine) shutdown() {
	if !e.IsDesignated() {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if !e.lockRound(ctx) {
		e.log.Errorf("Could not stand down during shutdown: a round did not complete in %v", shutdownTimeout)
		return
	}
	defer e.unlockRound()

	e.log.Warnf("Standing down as the designated node during shutdown")

	before := e.snapshot()
	e.demoteSelf(ctx, &pdp.Record{ID: e.cfg.Identity, Designated: true})
	e.notifyChanges(ctx, before)
}

func (e *Engine) runContext() (context.Context, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.cancel == nil || e.ctx.Err() != nil {
		return nil, false
	}

	return e.ctx, true
}

func (e *Engine) lockRound(ctx context.Context) bool {
	select {
	case e.roundLock <- struct{}{}:
		return true
	case <-ctx.Done():
		return false
	}
}

func (e *Engine) tryLockRound(wait time.Duration) bool {
	timer := time.NewTimer(wait)
	defer timer.Stop()

	select {
	case e.roundLock <- struct{}{}:
		return true
	case <-timer.C:
		return false
	}
}

func (e *Engine) unlockRound() {
	<-e.roundLock
}

func (e *Engine) failed(op string, err error) {
	errorsCtr.WithLabelValues(e.cfg.Identity, op).Inc()
	e.log.Errorf("Election %s operation failed: %v", op, err)
}

type diagnostics struct {
	designated    bool
	currentActive string
	lastActive    string
}

func (e *Engine) snapshot() diagnostics {
	e.diagMu.RLock()
	defer e.diagMu.RUnlock()

	return diagnostics{designated: e.IsDesignated(), currentActive: e.currentActive, lastActive: e.lastActive}
}

func (e *Engine) setActive(current string, last string) {
	e.diagMu.Lock()
	defer e.diagMu.Unlock()

	e.currentActive = current
	e.lastActive = last
}

func (e *Engine) clearActive() {
	e.diagMu.Lock()
	defer e.diagMu.Unlock()

	e.currentActive = ""
}

func (e *Engine) setDesignated(designated bool) {
	if e.designated.Swap(designated) == designated {
		return
	}

	if designated {
		e.log.Infof("Became the designated node")
		designatedGauge.WithLabelValues(e.cfg.Identity).Set(1)
	} else {
		e.log.Infof("No longer the designated node")
		designatedGauge.WithLabelValues(e.cfg.Identity).Set(0)
	}

	designationChangeCtr.WithLabelValues(e.cfg.Identity).Inc()
}

func (e *Engine) notifyChanges(ctx context.Context, before diagnostics) {
	if e.notifier == nil {
		return
	}

	after := e.snapshot()
	if after == before {
		return
	}

	err := e.notifier.NotifyDesignation(ctx, inter.DesignationChange{
		Identity:      e.cfg.Identity,
		Designated:    after.designated,
		CurrentActive: after.currentActive,
		LastActive:    after.lastActive,
	})
	if err != nil {
		e.log.Warnf("Could not publish designation change: %v", err)
	}
}

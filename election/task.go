// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package election

import (
	"context"
	"sync"
	"time"

	"github.com/onap/policy-drools-pdp-sub003/internal/util"
	"github.com/sirupsen/logrus"
)

// task is a periodic job that records when it last completed so a watchdog can detect stalls
type task struct {
	name     string
	interval time.Duration
	fn       func(ctx context.Context)
	now      func() time.Time
	log      *logrus.Entry

	// recovered is called with the value of a panic in fn, the task keeps running
	recovered func(r any)

	// gen identifies the current incarnation, abandoned loops never stamp lastRun
	gen     uint64
	cancel  context.CancelFunc
	lastRun time.Time
	mu      sync.Mutex
}

func newTask(name string, interval time.Duration, now func() time.Time, log *logrus.Entry, fn func(ctx context.Context)) *task {
	return &task{
		name:     name,
		interval: interval,
		fn:       fn,
		now:      now,
		log:      log.WithField("task", name),
	}
}

// start (re)schedules the task, any previous incarnation is cancelled and abandoned
func (t *task) start(ctx context.Context, delay time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.cancel != nil {
		t.cancel()
	}

	t.gen++
	tctx, cancel := context.WithCancel(ctx)
	t.cancel = cancel
	t.lastRun = t.now().Add(delay)

	t.log.Debugf("Scheduling %s task every %v after %v", t.name, t.interval, delay)

	go t.loop(tctx, t.gen, delay)
}

func (t *task) stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}

	t.gen++
}

func (t *task) loop(ctx context.Context, gen uint64, delay time.Duration) {
	if util.InterruptibleSleep(ctx, delay) != nil {
		return
	}

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		t.runOnce(ctx)

		if ctx.Err() != nil {
			return
		}

		t.completed(gen)

		select {
		case <-ticker.C:
		case <-ctx.Done():
			return
		}
	}
}

func (t *task) runOnce(ctx context.Context) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		t.log.Errorf("The %s task panicked: %v", t.name, r)
		if t.recovered != nil {
			t.recovered(r)
		}
	}()

	t.fn(ctx)
}

func (t *task) completed(gen uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if gen != t.gen {
		return
	}

	t.lastRun = t.now()
}

// sinceLastRun is the time since the task last completed, false when the task is not scheduled
func (t *task) sinceLastRun() (time.Duration, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.cancel == nil {
		return 0, false
	}

	return t.now().Sub(t.lastRun), true
}

func (t *task) lastCompleted() time.Time {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.lastRun
}

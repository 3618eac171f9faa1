// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

// Package backoff provides jittered retry delays
package backoff

import (
	"context"
	"math/rand"
	"time"
)

// Policy implements a backoff policy, randomizing its delays
// and saturating at the final value in Millis.
type Policy struct {
	Millis []int
}

// FiveSec is a backoff policy ranging up to 5 seconds.
var FiveSec = Policy{
	Millis: []int{500, 750, 1000, 1500, 2000, 2500, 3000, 3500, 4000, 4500, 5000},
}

// TwentySec is a backoff policy ranging up to 20 seconds, used while a node
// waits for the record store to become reachable at startup
var TwentySec = Policy{
	Millis: []int{
		500, 750, 1000, 1500, 2000, 2500, 3000, 3500, 4000, 4500, 5000,
		6000, 7000, 8000, 9000, 10000, 12000, 14000, 16000, 18000, 20000,
	},
}

// Duration returns the time duration of the n'th wait cycle in a
// backoff policy. This is b.Millis[n], randomized to avoid thundering
// herds.
func (b Policy) Duration(n int) time.Duration {
	if len(b.Millis) == 0 {
		return 0
	}

	if n < 0 {
		n = 0
	}

	if n >= len(b.Millis) {
		n = len(b.Millis) - 1
	}

	return time.Duration(jitter(b.Millis[n])) * time.Millisecond
}

// Sleep sleeps for the duration of the n'th wait cycle, the context error is
// returned when interrupted
func (b Policy) Sleep(ctx context.Context, n int) error {
	timer := time.NewTimer(b.Duration(n))
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// For calls cb until it succeeds or ctx is done, sleeping between attempts
func (b Policy) For(ctx context.Context, cb func(try int) error) error {
	for try := 0; ; try++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		err := cb(try)
		if err == nil {
			return nil
		}

		if b.Sleep(ctx, try) != nil {
			return ctx.Err()
		}
	}
}

// jitter returns a random integer uniformly distributed in the range
// [0.5 * millis .. 1.5 * millis]
func jitter(millis int) int {
	if millis == 0 {
		return 0
	}

	return millis/2 + rand.Intn(millis)
}

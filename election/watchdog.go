// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package election

import (
	"errors"
	"fmt"
	"time"
)

// CheckHealth checks both tasks, restarting any that stalled, and reports what was restarted
func (e *Engine) CheckHealth() error {
	return errors.Join(e.checkHeartbeat(), e.checkElection())
}

// checkHeartbeat restarts the heartbeat task when it has not completed within its interval plus a grace period
func (e *Engine) checkHeartbeat() error {
	since, scheduled := e.heartbeat.sinceLastRun()
	if !scheduled {
		return nil
	}

	limit := e.cfg.HeartbeatInterval + heartbeatStallGrace
	if since <= limit {
		return nil
	}

	ctx, running := e.runContext()
	if !running {
		return nil
	}

	e.log.Errorf("Heartbeat task has not completed in %v, restarting it", since.Round(time.Millisecond))
	watchdogRestartCtr.WithLabelValues(e.cfg.Identity, "heartbeat").Inc()
	e.heartbeat.start(ctx, heartbeatStartDelay)

	return fmt.Errorf("heartbeat task stalled for %v", since.Round(time.Millisecond))
}

// checkElection restarts the election task when it has not completed within ten intervals
func (e *Engine) checkElection() error {
	since, scheduled := e.election.sinceLastRun()
	if !scheduled {
		return nil
	}

	limit := electionStallFactor * e.cfg.ElectionInterval
	if since <= limit {
		return nil
	}

	ctx, running := e.runContext()
	if !running {
		return nil
	}

	wait := e.cfg.ElectionInterval
	if wait > maxRestartLockWait {
		wait = maxRestartLockWait
	}

	if !e.tryLockRound(wait) {
		e.log.Errorf("Election task has not completed in %v but the round lock could not be obtained in %v", since.Round(time.Millisecond), wait)
		return fmt.Errorf("election task stalled for %v, restart skipped", since.Round(time.Millisecond))
	}
	defer e.unlockRound()

	e.log.Errorf("Election task has not completed in %v, restarting it", since.Round(time.Millisecond))
	watchdogRestartCtr.WithLabelValues(e.cfg.Identity, "election").Inc()
	e.election.start(ctx, electionStartDelay(e.now(), e.cfg.ElectionInterval))

	return fmt.Errorf("election task stalled for %v", since.Round(time.Millisecond))
}

// electionStartDelay aligns the first round to a multiple of interval on the wall clock
// so rounds across the fleet run at about the same time, never sooner than 5 seconds
func electionStartDelay(now time.Time, interval time.Duration) time.Duration {
	if interval <= 0 {
		return minimumElectionStartDelay
	}

	elapsed := time.Duration(now.UnixNano() % int64(interval))
	delay := 2*interval - elapsed

	for delay < minimumElectionStartDelay {
		delay += interval
	}

	return delay
}

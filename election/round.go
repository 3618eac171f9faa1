// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package election

import (
	"context"
	"time"

	"github.com/onap/policy-drools-pdp-sub003/pdp"
)

// recordCase is the combination of designation and freshness a record is in during a round
type recordCase int

const (
	designatedFresh recordCase = iota
	designatedStale
	standbyFresh
	standbyStale
)

func (c recordCase) String() string {
	switch c {
	case designatedFresh:
		return "designated/fresh"
	case designatedStale:
		return "designated/stale"
	case standbyFresh:
		return "standby/fresh"
	default:
		return "standby/stale"
	}
}

func classify(designated bool, fresh bool) recordCase {
	switch {
	case designated && fresh:
		return designatedFresh
	case designated:
		return designatedStale
	case fresh:
		return standbyFresh
	default:
		return standbyStale
	}
}

// runRound performs one complete election round under the round lock
func (e *Engine) runRound(ctx context.Context) {
	if !e.lockRound(ctx) {
		return
	}
	defer e.unlockRound()

	start := time.Now()
	defer func() {
		roundTime.WithLabelValues(e.cfg.Identity).Observe(time.Since(start).Seconds())
	}()
	roundsCtr.WithLabelValues(e.cfg.Identity).Inc()

	before := e.snapshot()
	defer e.notifyChanges(ctx, before)

	records, err := e.repo.List(ctx)
	if err != nil {
		e.failed("list", err)
		return
	}

	leaderFailed := e.repo.HasDesignatedFailed(ctx, records)

	var candidates []*pdp.Record
	for _, rec := range records {
		if e.reconcile(ctx, rec, leaderFailed) {
			candidates = append(candidates, rec)
		}
	}

	candidates = sanitizeCandidates(candidates)
	candidatesGauge.WithLabelValues(e.cfg.Identity).Set(float64(len(candidates)))

	recent := mostRecentPrimary(records, candidates)
	winner, losers := pickWinner(candidates, recent)

	for _, loser := range losers {
		if loser.ID != e.cfg.Identity {
			continue
		}

		e.log.Infof("Lost the election to %s, standing down", winner.ID)
		e.demoteSelf(ctx, loser)
	}

	e.apply(ctx, records, winner, recent)
}

// reconcile corrects inconsistencies between a record and the status of its node, it
// reports if the record is a candidate for this round
func (e *Engine) reconcile(ctx context.Context, rec *pdp.Record, leaderFailed bool) bool {
	local := rec.ID == e.cfg.Identity
	fresh := e.repo.IsFresh(ctx, rec)
	status := e.statusOf(ctx, rec.ID)
	kase := classify(rec.Designated, fresh)

	e.log.Debugf("Record %s is %s with status %s", rec.ID, kase, status)

	switch kase {
	case designatedFresh:
		if status != pdp.ProvidingService && local {
			e.log.Warnf("Designated but the service status is %s, standing down", status)
			e.demoteSelf(ctx, rec)
			status = e.statusOf(ctx, rec.ID)
		}

		return status == pdp.ProvidingService

	case designatedStale:
		e.log.Warnf("Designated node %s is stale, standing it down", rec.ID)
		e.standDown(ctx, rec)
		if local {
			e.setDesignated(false)
		}
		e.disableFailed(ctx, rec.ID)

	case standbyFresh:
		if status == pdp.ProvidingService && local {
			e.log.Warnf("Providing service without being designated, demoting")
			e.writeStandDown(ctx, rec)
			e.setDesignated(false)
			e.demote(ctx)
			status = e.statusOf(ctx, rec.ID)
		}

		return status == pdp.HotStandby && leaderFailed

	case standbyStale:
		if status != pdp.ColdStandby {
			e.log.Warnf("Stale node %s has status %s, disabling it", rec.ID, status)
			e.writeStandDown(ctx, rec)
			e.disableFailed(ctx, rec.ID)
		}
	}

	return false
}

// apply acts on the outcome of the round
func (e *Engine) apply(ctx context.Context, records []*pdp.Record, winner *pdp.Record, recent *pdp.Record) {
	switch {
	case winner == nil:
		self := findRecord(records, e.cfg.Identity)
		if self != nil && self.Designated {
			e.standDown(ctx, self)
		}
		e.setDesignated(false)
		e.clearActive()

	case winner.ID == e.cfg.Identity:
		e.becomeActive(ctx, winner, recent)

	default:
		e.setDesignated(false)
		e.setActive(winner.ID, recentID(recent))
	}
}

func (e *Engine) becomeActive(ctx context.Context, self *pdp.Record, recent *pdp.Record) {
	err := e.repo.SetDesignated(ctx, self, true)
	if err != nil {
		e.failed("designate", err)
	}
	e.setDesignated(true)

	if e.statusOf(ctx, self.ID) == pdp.ProvidingService {
		e.setActive(self.ID, recentID(recent))
		return
	}

	err = e.status.Promote(ctx)
	if err == nil {
		e.setActive(self.ID, recentID(recent))
		return
	}

	e.failed("promote", err)
	e.log.Warnf("Could not take over as the active node, standing down")

	err = e.repo.SetDesignated(ctx, self, false)
	if err != nil {
		e.failed("designate", err)
	}
	e.setDesignated(false)

	if !e.statusOf(ctx, self.ID).IsStandby() {
		e.demote(ctx)
	}

	e.setActive("", recentID(recent))
}

// demoteSelf stands the local node down in storage and the status port
func (e *Engine) demoteSelf(ctx context.Context, rec *pdp.Record) {
	e.standDown(ctx, rec)
	e.setDesignated(false)

	if !e.statusOf(ctx, e.cfg.Identity).IsStandby() {
		e.demote(ctx)
	}
}

// standDown clears the designation of rec in storage when the snapshot shows it designated
func (e *Engine) standDown(ctx context.Context, rec *pdp.Record) {
	if !rec.Designated {
		return
	}

	e.writeStandDown(ctx, rec)
}

// writeStandDown clears the stored designation even when the snapshot shows none, the
// stored record may have been designated since the snapshot was taken
func (e *Engine) writeStandDown(ctx context.Context, rec *pdp.Record) {
	err := e.repo.StandDown(ctx, rec.ID)
	if err != nil {
		e.failed("standdown", err)
		return
	}

	rec.Designated = false
}

func (e *Engine) demote(ctx context.Context) {
	err := e.status.Demote(ctx)
	if err != nil {
		e.failed("demote", err)
	}
}

func (e *Engine) disableFailed(ctx context.Context, id string) {
	var err error
	if id == e.cfg.Identity {
		err = e.status.DisableFailed(ctx)
	} else {
		err = e.status.DisableFailedByID(ctx, id)
	}

	if err != nil {
		e.failed("disable", err)
	}
}

// statusOf reads the effective status of a node, an unreadable status is treated as cold standby
func (e *Engine) statusOf(ctx context.Context, id string) pdp.Status {
	status, err := e.status.Status(ctx, id)
	if err != nil {
		e.failed("status", err)
		return pdp.ColdStandby
	}

	return status.Effective()
}

func recentID(recent *pdp.Record) string {
	if recent == nil {
		return ""
	}

	return recent.ID
}

func findRecord(records []*pdp.Record, id string) *pdp.Record {
	for _, rec := range records {
		if rec.ID == id {
			return rec
		}
	}

	return nil
}

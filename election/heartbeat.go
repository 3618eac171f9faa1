// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package election

import (
	"context"

	"github.com/onap/policy-drools-pdp-sub003/inter"
	"github.com/onap/policy-drools-pdp-sub003/pdp"
)

// heartbeatOnce records the liveness of the local node, it never changes the designation
func (e *Engine) heartbeatOnce(ctx context.Context) {
	e.heartbeatMu.Lock()
	defer e.heartbeatMu.Unlock()

	rec := pdp.New(e.cfg.Identity, e.cfg.Site, e.cfg.Priority)

	err := e.repo.Update(ctx, rec)
	if err != nil {
		heartbeatFailCtr.WithLabelValues(e.cfg.Identity).Inc()
		e.failed("heartbeat", err)
		return
	}

	heartbeatsCtr.WithLabelValues(e.cfg.Identity).Inc()

	refresher, ok := e.status.(inter.StatusRefresher)
	if !ok {
		return
	}

	err = refresher.RefreshStatus(ctx)
	if err != nil {
		e.failed("refresh", err)
	}
}

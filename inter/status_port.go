// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package inter

import (
	"context"

	"github.com/onap/policy-drools-pdp-sub003/pdp"
)

// StatusPort manages the promote, demote and fail state of the local node
// and the cluster wide view of every node status
type StatusPort interface {
	// Status retrieves the standby status for the node with id
	Status(ctx context.Context, id string) (pdp.Status, error)
	// Promote moves the local node to providing service
	Promote(ctx context.Context) error
	// Demote moves the local node to standby
	Demote(ctx context.Context) error
	// DisableFailed marks the local node as failed
	DisableFailed(ctx context.Context) error
	// DisableFailedByID marks a remote node as failed in the cluster view
	DisableFailedByID(ctx context.Context, id string) error
}

// StatusRefresher is implemented by status ports that can recover a node once
// its liveness resumed
type StatusRefresher interface {
	RefreshStatus(ctx context.Context) error
}

// DesignationChange describes a change in the local designation or the active node
type DesignationChange struct {
	Identity      string `json:"identity"`
	Designated    bool   `json:"designated"`
	CurrentActive string `json:"current_active,omitempty"`
	LastActive    string `json:"last_active,omitempty"`
}

// DesignationNotifier is notified about designation changes
type DesignationNotifier interface {
	NotifyDesignation(ctx context.Context, change DesignationChange) error
}

// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package inter

import (
	"context"

	"github.com/onap/policy-drools-pdp-sub003/pdp"
)

// PdpRepository is the shared store of node records the election reads and writes
type PdpRepository interface {
	// List is a snapshot of all records including our own, sorted by id
	List(ctx context.Context) ([]*pdp.Record, error)
	// Update upserts the liveness fields of a record, setting its updated date to now
	Update(ctx context.Context, record *pdp.Record) error
	// IsFresh checks if the record heart beat within the stale timeout, as a
	// side effect a designated but stale record is stood down in the store
	IsFresh(ctx context.Context, record *pdp.Record) bool
	// SetDesignated sets the designation flag, designated date is refreshed
	// when transitioning to designated
	SetDesignated(ctx context.Context, record *pdp.Record, designated bool) error
	// StandDown forces the record with id to not be designated
	StandDown(ctx context.Context, id string) error
	// HasDesignatedFailed is true when no record in records is designated and fresh
	HasDesignatedFailed(ctx context.Context, records []*pdp.Record) bool
}

// RecordAdmin are administrative operations on the record store used by tests and tools
type RecordAdmin interface {
	// Insert stores the record as is
	Insert(ctx context.Context, record *pdp.Record) error
	// Get retrieves a single record
	Get(ctx context.Context, id string) (*pdp.Record, error)
	// Delete removes a single record
	Delete(ctx context.Context, id string) error
	// DeleteAll removes all records
	DeleteAll(ctx context.Context) error
}

// PdpRecordStore is a repository that also supports administrative operations
type PdpRecordStore interface {
	PdpRepository
	RecordAdmin
}

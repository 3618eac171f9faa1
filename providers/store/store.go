// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

// Package store implements the election record repository on top of
// interchangeable storage backends
package store

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/onap/policy-drools-pdp-sub003/pdp"
	"github.com/sirupsen/logrus"
)

// ErrNotFound indicates a record does not exist
var ErrNotFound = errors.New("record not found")

// DefaultStaleTimeout is the freshness window used when none is configured
const DefaultStaleTimeout = 15 * time.Second

// Mutator modifies current, the stored record or nil when it does not exist,
// returning the record to store or nil to leave the store unchanged
type Mutator func(current *pdp.Record) (*pdp.Record, error)

// Backend is the storage specific part of a repository
type Backend interface {
	// Get loads a record, ErrNotFound when it does not exist
	Get(ctx context.Context, id string) (*pdp.Record, error)
	// List loads all records in any order
	List(ctx context.Context) ([]*pdp.Record, error)
	// Put stores a record unconditionally
	Put(ctx context.Context, record *pdp.Record) error
	// Modify performs an atomic read-modify-write of the record with id, it
	// returns the stored record or the unchanged current one when mutate
	// returned nil
	Modify(ctx context.Context, id string, mutate Mutator) (*pdp.Record, error)
	// Delete removes a record
	Delete(ctx context.Context, id string) error
	// DeleteAll removes all records
	DeleteAll(ctx context.Context) error
	// Close releases any resources held by the backend
	Close() error
}

// Option configures a Repository
type Option func(*Repository)

// WithClock sets the time source used for freshness and record dates
func WithClock(now func() time.Time) Option {
	return func(r *Repository) { r.now = now }
}

// WithStaleTimeout sets the freshness window
func WithStaleTimeout(d time.Duration) Option {
	return func(r *Repository) { r.stale = d }
}

// WithLogger sets the logger to use
func WithLogger(log *logrus.Entry) Option {
	return func(r *Repository) { r.log = log }
}

// Repository implements inter.PdpRecordStore using a Backend
type Repository struct {
	backend Backend
	stale   time.Duration
	now     func() time.Time
	log     *logrus.Entry
}

// New creates a repository using backend for storage
func New(backend Backend, opts ...Option) (*Repository, error) {
	if backend == nil {
		return nil, fmt.Errorf("backend is required")
	}

	r := &Repository{
		backend: backend,
		stale:   DefaultStaleTimeout,
		now:     time.Now,
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.stale <= 0 {
		return nil, fmt.Errorf("stale timeout %v is invalid", r.stale)
	}

	if r.log == nil {
		r.log = logrus.NewEntry(logrus.StandardLogger()).WithField("component", "store")
	}

	return r, nil
}

// StaleTimeout is the freshness window of the repository
func (r *Repository) StaleTimeout() time.Duration {
	return r.stale
}

// Backend is the underlying storage
func (r *Repository) Backend() Backend {
	return r.backend
}

// Close closes the underlying storage
func (r *Repository) Close() error {
	return r.backend.Close()
}

// List retrieves all records sorted by id
func (r *Repository) List(ctx context.Context) ([]*pdp.Record, error) {
	records, err := r.backend.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list records: %w", err)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].ID < records[j].ID
	})

	return records, nil
}

// Update upserts the liveness fields of record, the designation of an
// existing record is left untouched
func (r *Repository) Update(ctx context.Context, record *pdp.Record) error {
	now := r.now()

	_, err := r.backend.Modify(ctx, record.ID, func(current *pdp.Record) (*pdp.Record, error) {
		if current == nil {
			current = pdp.New(record.ID, record.Site, record.Priority)
			current.Designated = record.Designated
			current.DesignatedDate = record.DesignatedDate
		}

		current.UpdatedDate = now
		current.Site = record.Site
		current.Priority = record.Priority

		return current, nil
	})
	if err != nil {
		return fmt.Errorf("could not update record %s: %w", record.ID, err)
	}

	record.UpdatedDate = now

	return nil
}

// IsFresh checks the freshness of record and stands down designated records that went stale
func (r *Repository) IsFresh(ctx context.Context, record *pdp.Record) bool {
	fresh := record.IsFresh(r.now(), r.stale)

	if !fresh && record.Designated {
		r.log.Warnf("Record %s is designated but last updated %v ago, standing it down", record.ID, r.now().Sub(record.UpdatedDate).Round(time.Millisecond))
		err := r.StandDown(ctx, record.ID)
		if err != nil {
			r.log.Errorf("Could not stand down stale record %s: %v", record.ID, err)
		}
	}

	return fresh
}

// SetDesignated sets the designation of record, the designated date is set when transitioning to designated
func (r *Repository) SetDesignated(ctx context.Context, record *pdp.Record, designated bool) error {
	now := r.now()

	updated, err := r.backend.Modify(ctx, record.ID, func(current *pdp.Record) (*pdp.Record, error) {
		if current == nil {
			return nil, ErrNotFound
		}

		if designated && !current.Designated {
			current.DesignatedDate = now
		}
		current.Designated = designated

		return current, nil
	})
	if err != nil {
		return fmt.Errorf("could not set designation of %s: %w", record.ID, err)
	}

	record.Designated = updated.Designated
	record.DesignatedDate = updated.DesignatedDate

	return nil
}

// StandDown forces the record with id to not be designated
func (r *Repository) StandDown(ctx context.Context, id string) error {
	_, err := r.backend.Modify(ctx, id, func(current *pdp.Record) (*pdp.Record, error) {
		if current == nil {
			return nil, ErrNotFound
		}

		if !current.Designated {
			return nil, nil
		}

		current.Designated = false

		return current, nil
	})
	if err != nil {
		return fmt.Errorf("could not stand down %s: %w", id, err)
	}

	return nil
}

// HasDesignatedFailed is true when no record in records is designated and fresh
func (r *Repository) HasDesignatedFailed(_ context.Context, records []*pdp.Record) bool {
	return pdp.HasDesignatedFailed(records, r.now(), r.stale)
}

// Insert stores record as is
func (r *Repository) Insert(ctx context.Context, record *pdp.Record) error {
	if record.ID == "" {
		return fmt.Errorf("record id is required")
	}

	return r.backend.Put(ctx, record.Copy())
}

// Get retrieves the record with id
func (r *Repository) Get(ctx context.Context, id string) (*pdp.Record, error) {
	return r.backend.Get(ctx, id)
}

// Delete removes the record with id
func (r *Repository) Delete(ctx context.Context, id string) error {
	return r.backend.Delete(ctx, id)
}

// DeleteAll removes all records
func (r *Repository) DeleteAll(ctx context.Context) error {
	return r.backend.DeleteAll(ctx)
}

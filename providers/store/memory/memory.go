// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

// Package memory is an in process record backend shared by engines running in the same process
package memory

import (
	"context"
	"sync"

	"github.com/onap/policy-drools-pdp-sub003/pdp"
	"github.com/onap/policy-drools-pdp-sub003/providers/store"
)

// Backend keeps records in memory
type Backend struct {
	records map[string]*pdp.Record
	mu      sync.Mutex
}

// New creates an empty memory backend
func New() *Backend {
	return &Backend{records: make(map[string]*pdp.Record)}
}

func (b *Backend) Get(_ context.Context, id string) (*pdp.Record, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	rec, ok := b.records[id]
	if !ok {
		return nil, store.ErrNotFound
	}

	return rec.Copy(), nil
}

func (b *Backend) List(_ context.Context) ([]*pdp.Record, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	res := make([]*pdp.Record, 0, len(b.records))
	for _, rec := range b.records {
		res = append(res, rec.Copy())
	}

	return res, nil
}

func (b *Backend) Put(_ context.Context, record *pdp.Record) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.records[record.ID] = record.Copy()

	return nil
}

func (b *Backend) Modify(_ context.Context, id string, mutate store.Mutator) (*pdp.Record, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	current := b.records[id].Copy()

	updated, err := mutate(current.Copy())
	if err != nil {
		return nil, err
	}

	if updated == nil {
		return current, nil
	}

	updated.ID = id
	b.records[id] = updated.Copy()

	return updated, nil
}

func (b *Backend) Delete(_ context.Context, id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.records, id)

	return nil
}

func (b *Backend) DeleteAll(_ context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.records = make(map[string]*pdp.Record)

	return nil
}

func (b *Backend) Close() error {
	return nil
}

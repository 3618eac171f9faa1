// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package status

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/nats-io/nats.go"
	"github.com/onap/policy-drools-pdp-sub003/pdp"
)

// Store is the cluster wide view of node statuses
type Store interface {
	// Get retrieves the status for id, UnknownStatus when never recorded
	Get(ctx context.Context, id string) (pdp.Status, error)
	// Put records the status for id
	Put(ctx context.Context, id string, status pdp.Status) error
}

// MemoryStore is a Store shared by managers in the same process
type MemoryStore struct {
	statuses map[string]pdp.Status
	mu       sync.Mutex
}

// NewMemoryStore creates an empty memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{statuses: make(map[string]pdp.Status)}
}

func (s *MemoryStore) Get(_ context.Context, id string) (pdp.Status, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.statuses[id]
	if !ok {
		return pdp.UnknownStatus, nil
	}

	return st, nil
}

func (s *MemoryStore) Put(_ context.Context, id string, status pdp.Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.statuses[id] = status

	return nil
}

// KVStore keeps statuses in a NATS Key-Value bucket, one key per node
type KVStore struct {
	kv nats.KeyValue
}

// NewKVStore creates a store in bucket
func NewKVStore(bucket nats.KeyValue) (*KVStore, error) {
	if bucket == nil {
		return nil, fmt.Errorf("bucket is required")
	}

	return &KVStore{kv: bucket}, nil
}

func (s *KVStore) Get(_ context.Context, id string) (pdp.Status, error) {
	entry, err := s.kv.Get(id)
	if err != nil {
		if errors.Is(err, nats.ErrKeyNotFound) {
			return pdp.UnknownStatus, nil
		}

		return pdp.UnknownStatus, err
	}

	st, err := pdp.ParseStatus(string(entry.Value()))
	if err != nil {
		return pdp.UnknownStatus, fmt.Errorf("%w for %s: %v", ErrInvalidStatus, id, err)
	}

	return st, nil
}

func (s *KVStore) Put(_ context.Context, id string, status pdp.Status) error {
	_, err := s.kv.PutString(id, status.String())

	return err
}

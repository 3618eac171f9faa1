// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

// Package kv stores election records in a NATS JetStream Key-Value bucket
//
// Every modification is a compare-and-swap against the revision that was
// read, concurrent writers from other nodes cause a retry rather than a lost
// update
package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"

	"github.com/nats-io/nats.go"
	"github.com/onap/policy-drools-pdp-sub003/backoff"
	"github.com/onap/policy-drools-pdp-sub003/pdp"
	"github.com/onap/policy-drools-pdp-sub003/providers/store"
	"github.com/sirupsen/logrus"
)

// DefaultBucket is the bucket used when none is configured
const DefaultBucket = "PDP_ELECTION"

const maxModifyTries = 5

var (
	validKeyRe = regexp.MustCompile(`\A[-/_=\.a-zA-Z0-9]+\z`)
	casBackoff = backoff.Policy{Millis: []int{10, 25, 50, 100, 200}}
)

// Backend stores records in a NATS KV bucket
type Backend struct {
	kv  nats.KeyValue
	log *logrus.Entry
}

// New creates a backend using bucket
func New(bucket nats.KeyValue, log *logrus.Entry) (*Backend, error) {
	if bucket == nil {
		return nil, fmt.Errorf("bucket is required")
	}

	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}

	return &Backend{
		kv:  bucket,
		log: log.WithField("bucket", bucket.Bucket()),
	}, nil
}

// ValidKey determines if id can be used as a key in the bucket
func ValidKey(id string) bool {
	return validKeyRe.MatchString(id)
}

func (b *Backend) checkKey(id string) error {
	if !ValidKey(id) {
		return fmt.Errorf("invalid record id %q", id)
	}

	return nil
}

func (b *Backend) load(id string) (*pdp.Record, uint64, error) {
	entry, err := b.kv.Get(id)
	if err != nil {
		if errors.Is(err, nats.ErrKeyNotFound) {
			return nil, 0, store.ErrNotFound
		}

		return nil, 0, err
	}

	rec := &pdp.Record{}
	err = json.Unmarshal(entry.Value(), rec)
	if err != nil {
		return nil, 0, fmt.Errorf("invalid record %s: %w", id, err)
	}

	return rec, entry.Revision(), nil
}

func (b *Backend) Get(_ context.Context, id string) (*pdp.Record, error) {
	err := b.checkKey(id)
	if err != nil {
		return nil, err
	}

	rec, _, err := b.load(id)

	return rec, err
}

func (b *Backend) List(_ context.Context) ([]*pdp.Record, error) {
	keys, err := b.kv.Keys()
	if err != nil {
		if errors.Is(err, nats.ErrNoKeysFound) {
			return []*pdp.Record{}, nil
		}

		return nil, err
	}

	res := make([]*pdp.Record, 0, len(keys))
	for _, key := range keys {
		rec, _, err := b.load(key)
		switch {
		case errors.Is(err, store.ErrNotFound):
			// deleted between listing and loading
			continue
		case err != nil:
			return nil, err
		}

		res = append(res, rec)
	}

	return res, nil
}

func (b *Backend) Put(_ context.Context, record *pdp.Record) error {
	err := b.checkKey(record.ID)
	if err != nil {
		return err
	}

	data, err := json.Marshal(record)
	if err != nil {
		return err
	}

	_, err = b.kv.Put(record.ID, data)

	return err
}

func (b *Backend) Modify(ctx context.Context, id string, mutate store.Mutator) (*pdp.Record, error) {
	err := b.checkKey(id)
	if err != nil {
		return nil, err
	}

	for try := 0; try < maxModifyTries; try++ {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		current, rev, err := b.load(id)
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			return nil, err
		}

		updated, err := mutate(current.Copy())
		if err != nil {
			return nil, err
		}

		if updated == nil {
			return current, nil
		}

		updated.ID = id
		data, err := json.Marshal(updated)
		if err != nil {
			return nil, err
		}

		if current == nil {
			_, err = b.kv.Create(id, data)
		} else {
			_, err = b.kv.Update(id, data, rev)
		}
		if err == nil {
			return updated, nil
		}

		b.log.Debugf("Concurrent modification of %s on try %d: %v", id, try+1, err)
		casBackoff.Sleep(ctx, try)
	}

	return nil, fmt.Errorf("could not modify %s after %d attempts", id, maxModifyTries)
}

func (b *Backend) Delete(_ context.Context, id string) error {
	err := b.checkKey(id)
	if err != nil {
		return err
	}

	return b.kv.Delete(id)
}

func (b *Backend) DeleteAll(_ context.Context) error {
	keys, err := b.kv.Keys()
	if err != nil {
		if errors.Is(err, nats.ErrNoKeysFound) {
			return nil
		}

		return err
	}

	for _, key := range keys {
		err = b.kv.Purge(key)
		if err != nil {
			return err
		}
	}

	return nil
}

// Close does nothing, the connection belongs to the caller
func (b *Backend) Close() error {
	return nil
}

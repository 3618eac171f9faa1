// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

// Package bolt stores election records in a single bbolt database file,
// suitable for several engines hosted by one process on one host
package bolt

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/onap/policy-drools-pdp-sub003/pdp"
	"github.com/onap/policy-drools-pdp-sub003/providers/store"
	bolt "go.etcd.io/bbolt"
)

var recordsBucket = []byte("pdp_records")

// Backend stores records in a bbolt database
type Backend struct {
	db *bolt.DB
}

// Open opens or creates the database in file
func Open(file string) (*Backend, error) {
	if file == "" {
		return nil, fmt.Errorf("a database file is required")
	}

	err := os.MkdirAll(filepath.Dir(file), 0700)
	if err != nil {
		return nil, err
	}

	db, err := bolt.Open(file, 0600, &bolt.Options{Timeout: 5 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", file, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(recordsBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Backend{db: db}, nil
}

func decode(data []byte) (*pdp.Record, error) {
	rec := &pdp.Record{}
	err := json.Unmarshal(data, rec)
	if err != nil {
		return nil, err
	}

	return rec, nil
}

func put(b *bolt.Bucket, rec *pdp.Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	return b.Put([]byte(rec.ID), data)
}

func (b *Backend) Get(_ context.Context, id string) (*pdp.Record, error) {
	var rec *pdp.Record

	err := b.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(recordsBucket).Get([]byte(id))
		if data == nil {
			return store.ErrNotFound
		}

		var err error
		rec, err = decode(data)

		return err
	})
	if err != nil {
		return nil, err
	}

	return rec, nil
}

func (b *Backend) List(_ context.Context) ([]*pdp.Record, error) {
	var res []*pdp.Record

	err := b.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(recordsBucket).ForEach(func(k, v []byte) error {
			rec, err := decode(v)
			if err != nil {
				return fmt.Errorf("invalid record %s: %w", k, err)
			}
			res = append(res, rec)

			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}

func (b *Backend) Put(_ context.Context, record *pdp.Record) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		return put(tx.Bucket(recordsBucket), record)
	})
}

func (b *Backend) Modify(_ context.Context, id string, mutate store.Mutator) (*pdp.Record, error) {
	var result *pdp.Record

	err := b.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(recordsBucket)

		var current *pdp.Record
		data := bucket.Get([]byte(id))
		if data != nil {
			var err error
			current, err = decode(data)
			if err != nil {
				return err
			}
		}

		updated, err := mutate(current.Copy())
		if err != nil {
			return err
		}

		if updated == nil {
			result = current
			return nil
		}

		updated.ID = id
		result = updated

		return put(bucket, updated)
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (b *Backend) Delete(_ context.Context, id string) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(recordsBucket).Delete([]byte(id))
	})
}

func (b *Backend) DeleteAll(_ context.Context) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		err := tx.DeleteBucket(recordsBucket)
		if err != nil {
			return err
		}

		_, err = tx.CreateBucket(recordsBucket)

		return err
	})
}

func (b *Backend) Close() error {
	return b.db.Close()
}

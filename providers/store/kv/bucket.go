// Copyright (c) 2021-2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package kv

import (
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/jsm.go"
	"github.com/nats-io/jsm.go/api"
	"github.com/nats-io/nats.go"
)

// BucketOption configures a KV bucket
type BucketOption func(*bucketOptions)

type bucketOptions struct {
	description string
	replicas    int
	memory      bool
}

// WithReplicas sets the number of replicas when creating the bucket
func WithReplicas(r int) BucketOption {
	return func(o *bucketOptions) { o.replicas = r }
}

// WithDescription sets the bucket description
func WithDescription(d string) BucketOption {
	return func(o *bucketOptions) { o.description = d }
}

// WithMemoryStorage creates the bucket in memory rather than on disk
func WithMemoryStorage() BucketOption {
	return func(o *bucketOptions) { o.memory = true }
}

// LoadBucket loads an existing bucket
func LoadBucket(nc *nats.Conn, name string) (nats.KeyValue, error) {
	js, err := nc.JetStream()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to JetStream: %w", err)
	}

	return js.KeyValue(name)
}

// NewBucket loads a bucket creating it when it does not exist and create is true
//
// Records are only ever read at their latest revision so the bucket keeps one
// value per key and does not expire values, stale records are a concern of
// the election and not of the storage
func NewBucket(nc *nats.Conn, name string, create bool, opts ...BucketOption) (nats.KeyValue, error) {
	opt := &bucketOptions{
		replicas:    1,
		description: "PDP Election Records",
	}

	for _, o := range opts {
		o(opt)
	}

	kv, err := LoadBucket(nc, name)
	if err == nil {
		return kv, nil
	}

	if !errors.Is(err, nats.ErrBucketNotFound) {
		return nil, err
	}

	if !create {
		return nil, fmt.Errorf("failed to load Key-Value bucket %s: %w", name, err)
	}

	mgr, err := jsm.New(nc)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to JetStream: %w", err)
	}

	storage := api.FileStorage
	if opt.memory {
		storage = api.MemoryStorage
	}

	cfg := api.StreamConfig{
		Name:          fmt.Sprintf("KV_%s", name),
		Description:   opt.description,
		Subjects:      []string{fmt.Sprintf("$KV.%s.>", name)},
		Retention:     api.LimitsPolicy,
		MaxMsgsPer:    1,
		MaxBytes:      -1,
		Replicas:      opt.replicas,
		AllowDirect:   true,
		MaxConsumers:  -1,
		MaxMsgs:       -1,
		MaxMsgSize:    -1,
		Storage:       storage,
		Discard:       api.DiscardNew,
		Duplicates:    2 * time.Minute,
		RollupAllowed: true,
		DenyDelete:    true,
	}

	_, err = mgr.NewStreamFromDefault(cfg.Name, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create key-value bucket %s: %w", name, err)
	}

	return LoadBucket(nc, name)
}

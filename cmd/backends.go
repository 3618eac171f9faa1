// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/sirupsen/logrus"

	"github.com/onap/policy-drools-pdp-sub003/backoff"
	"github.com/onap/policy-drools-pdp-sub003/providers/status"
	"github.com/onap/policy-drools-pdp-sub003/providers/store"
	"github.com/onap/policy-drools-pdp-sub003/providers/store/bolt"
	"github.com/onap/policy-drools-pdp-sub003/providers/store/kv"
	"github.com/onap/policy-drools-pdp-sub003/providers/store/memory"
	"github.com/onap/policy-drools-pdp-sub003/providers/store/sql"
)

// the shared status view lives in NATS for every store except memory
func needsNATS() bool {
	return cfg.Store != "memory" || cfg.LifecycleEvents
}

// connectNATS connects to the configured servers retrying until ctx is done
func connectNATS(ctx context.Context, name string, log *logrus.Entry) (*nats.Conn, error) {
	var nc *nats.Conn

	servers := strings.Join(cfg.NATSServers, ",")

	err := backoff.FiveSec.For(ctx, func(try int) (err error) {
		nc, err = nats.Connect(servers,
			nats.Name(fmt.Sprintf("%s %s", name, cfg.Identity)),
			nats.MaxReconnects(-1),
			nats.CustomReconnectDelay(func(n int) time.Duration { return backoff.FiveSec.Duration(n) }),
			nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
				if err != nil {
					log.Warnf("Disconnected from NATS: %v", err)
				}
			}),
			nats.ReconnectHandler(func(nc *nats.Conn) {
				log.Infof("Reconnected to NATS server %s", nc.ConnectedUrlRedacted())
			}),
		)
		if err != nil {
			log.Warnf("Could not connect to NATS servers %s on try %d: %v", servers, try+1, err)
		}

		return err
	})
	if err != nil {
		return nil, fmt.Errorf("could not connect to NATS: %w", err)
	}

	log.Infof("Connected to NATS server %s", nc.ConnectedUrlRedacted())

	return nc, nil
}

// newBackend creates the storage for election records, nc is only used by the kv store
func newBackend(nc *nats.Conn, create bool, log *logrus.Entry) (store.Backend, error) {
	switch cfg.Store {
	case "memory":
		return memory.New(), nil

	case "kv":
		if nc == nil {
			return nil, fmt.Errorf("the kv store requires a NATS connection")
		}

		bucket, err := kv.NewBucket(nc, cfg.StoreKVBucket, create, kv.WithReplicas(cfg.StoreKVReplicas))
		if err != nil {
			return nil, fmt.Errorf("could not load bucket %s: %w", cfg.StoreKVBucket, err)
		}

		return kv.New(bucket, log)

	case "sql":
		return sql.Open(cfg.StoreSQLDSN)

	case "bolt":
		return bolt.Open(cfg.StoreBoltFile)

	default:
		return nil, fmt.Errorf("unknown store %q", cfg.Store)
	}
}

// newRepository creates the record repository for the configured store
func newRepository(nc *nats.Conn, create bool, log *logrus.Entry) (*store.Repository, error) {
	backend, err := newBackend(nc, create, log)
	if err != nil {
		return nil, err
	}

	repo, err := store.New(backend, store.WithStaleTimeout(cfg.StaleTimeout), store.WithLogger(log.WithField("component", "store")))
	if err != nil {
		backend.Close()
		return nil, err
	}

	return repo, nil
}

// newStatusStore creates the shared view of node statuses
func newStatusStore(nc *nats.Conn) (status.Store, error) {
	if nc == nil {
		return status.NewMemoryStore(), nil
	}

	bucket, err := kv.NewBucket(nc, cfg.StatusKVBucket, true, kv.WithReplicas(cfg.StoreKVReplicas), kv.WithDescription("PDP Standby Status"))
	if err != nil {
		return nil, fmt.Errorf("could not load bucket %s: %w", cfg.StatusKVBucket, err)
	}

	return status.NewKVStore(bucket)
}

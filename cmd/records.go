// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"sync"

	"github.com/nats-io/nats.go"
	"github.com/sirupsen/logrus"

	"github.com/onap/policy-drools-pdp-sub003/providers/store"
)

type recordsCommand struct {
	command
}

func (r *recordsCommand) Setup() (err error) {
	r.cmd = cli.app.Command("records", "Inspect and manage election records").Alias("rec")

	return nil
}

func (r *recordsCommand) Configure() error {
	return nil
}

func (r *recordsCommand) Run(wg *sync.WaitGroup) (err error) {
	defer wg.Done()

	return nil
}

// openRecords opens the configured record store without creating missing buckets,
// the returned function closes all connections
func openRecords() (*store.Repository, func(), error) {
	log := logrus.NewEntry(logrus.StandardLogger()).WithField("identity", cfg.Identity)

	var nc *nats.Conn
	var err error

	if cfg.Store == "kv" {
		nc, err = connectNATS(ctx, "pdpha records", log)
		if err != nil {
			return nil, nil, err
		}
	}

	repo, err := newRepository(nc, false, log)
	if err != nil {
		if nc != nil {
			nc.Close()
		}

		return nil, nil, err
	}

	return repo, func() {
		repo.Close()
		if nc != nil {
			nc.Close()
		}
	}, nil
}

func init() {
	cli.commands = append(cli.commands, &recordsCommand{})
}

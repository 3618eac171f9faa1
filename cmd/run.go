// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/nats-io/nats.go"
	"github.com/sirupsen/logrus"

	"github.com/onap/policy-drools-pdp-sub003/build"
	"github.com/onap/policy-drools-pdp-sub003/election"
	"github.com/onap/policy-drools-pdp-sub003/lifecycle"
	"github.com/onap/policy-drools-pdp-sub003/providers/status"
	"github.com/onap/policy-drools-pdp-sub003/statistics"
)

type runCommand struct {
	command

	locked bool
}

func (r *runCommand) Setup() (err error) {
	r.cmd = cli.app.Command("run", "Runs the election for the local node").Default()
	r.cmd.Flag("locked", "Start the node locked, it will not become active until unlocked").UnNegatableBoolVar(&r.locked)

	return nil
}

func (r *runCommand) Configure() error {
	return commonConfigure()
}

func (r *runCommand) Run(wg *sync.WaitGroup) (err error) {
	defer wg.Done()

	log := logrus.NewEntry(logrus.StandardLogger()).WithField("identity", cfg.Identity)

	log.Infof("Starting pdpha %s using the %s store", build.Version, cfg.Store)

	var nc *nats.Conn
	if needsNATS() {
		nc, err = connectNATS(ctx, "pdpha", log)
		if err != nil {
			return err
		}
		defer nc.Close()
	}

	repo, err := newRepository(nc, true, log)
	if err != nil {
		return fmt.Errorf("could not open the record store: %w", err)
	}
	defer repo.Close()

	sstore, err := newStatusStore(nc)
	if err != nil {
		return err
	}

	mgr, err := status.NewManager(cfg.Identity, sstore, log)
	if err != nil {
		return err
	}

	if r.locked {
		err = mgr.Lock(ctx)
		if err != nil {
			return err
		}
	}

	go r.lockWatcher(mgr, log)

	opts := []election.Option{election.WithLogger(log)}

	var notifier *lifecycle.Notifier
	if cfg.LifecycleEvents {
		notifier, err = lifecycle.NewNotifier(nc, cfg.LifecycleSubject, cfg.Identity, "pdpha", log)
		if err != nil {
			return err
		}

		opts = append(opts, election.WithNotifier(notifier))
	}

	engine, err := election.New(cfg.ElectionConfig(), repo, mgr, opts...)
	if err != nil {
		return err
	}

	swg := &sync.WaitGroup{}
	swg.Add(1)
	go statistics.New(cfg, engine, log).Start(ctx, swg)

	if notifier != nil {
		err = notifier.Startup(build.Version)
		if err != nil {
			log.Warnf("Could not publish startup event: %v", err)
		}
	}

	err = engine.Start(ctx)

	if notifier != nil {
		perr := notifier.Shutdown()
		if perr != nil {
			log.Warnf("Could not publish shutdown event: %v", perr)
		}
		nc.Flush()
	}

	cancel()
	swg.Wait()

	return err
}

// SIGUSR1 unlocks the node and SIGUSR2 locks it
func (r *runCommand) lockWatcher(mgr *status.Manager, log *logrus.Entry) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGUSR1, syscall.SIGUSR2)
	defer signal.Stop(sigs)

	for {
		select {
		case sig := <-sigs:
			var err error

			switch sig {
			case syscall.SIGUSR1:
				log.Infof("Unlocking on %s", sig)
				err = mgr.Unlock(ctx)
			case syscall.SIGUSR2:
				log.Infof("Locking on %s", sig)
				err = mgr.Lock(ctx)
			}

			if err != nil {
				log.Errorf("Could not change the lock on %s: %v", sig, err)
			}

		case <-ctx.Done():
			return
		}
	}
}

func init() {
	cli.commands = append(cli.commands, &runCommand{})
}

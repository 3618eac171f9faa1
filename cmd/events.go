// Copyright (c) 2020-2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"sync"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/sirupsen/logrus"

	"github.com/onap/policy-drools-pdp-sub003/lifecycle"
)

type eventsCommand struct {
	command

	identity string
	types    []string
	raw      bool
}

func (e *eventsCommand) Setup() (err error) {
	e.cmd = cli.app.Command("events", "Views lifecycle events published by nodes")
	e.cmd.Flag("identity", "Only show events from a specific node").StringVar(&e.identity)
	e.cmd.Flag("type", "Only show events of a certain type").EnumsVar(&e.types, lifecycle.EventTypeNames()...)
	e.cmd.Flag("raw", "Show the raw CloudEvents").UnNegatableBoolVar(&e.raw)

	return nil
}

func (e *eventsCommand) Configure() error {
	return commonConfigure()
}

func (e *eventsCommand) matches(event lifecycle.Event) bool {
	if len(e.types) == 0 {
		return true
	}

	for _, t := range e.types {
		if t == event.TypeString() {
			return true
		}
	}

	return false
}

func (e *eventsCommand) Run(wg *sync.WaitGroup) (err error) {
	defer wg.Done()

	log := logrus.NewEntry(logrus.StandardLogger())

	nc, err := connectNATS(ctx, "pdpha events", log)
	if err != nil {
		return err
	}
	defer nc.Close()

	subject := fmt.Sprintf("%s.>", cfg.LifecycleSubject)
	if e.identity != "" {
		subject = fmt.Sprintf("%s.%s", cfg.LifecycleSubject, e.identity)
	}

	events := make(chan *nats.Msg, 100)
	sub, err := nc.ChanSubscribe(subject, events)
	if err != nil {
		return err
	}
	defer sub.Unsubscribe()

	log.Infof("Waiting for events on %s", subject)

	for {
		select {
		case msg := <-events:
			if e.raw {
				fmt.Println(string(msg.Data))
				continue
			}

			event, err := lifecycle.NewFromJSON(msg.Data)
			if err != nil {
				log.Errorf("Invalid event received on %s: %v", msg.Subject, err)
				continue
			}

			if !e.matches(event) {
				continue
			}

			fmt.Printf("%s %s\n", event.TimeStamp().Format(time.TimeOnly), event.String())

		case <-ctx.Done():
			return nil
		}
	}
}

func init() {
	cli.commands = append(cli.commands, &eventsCommand{})
}

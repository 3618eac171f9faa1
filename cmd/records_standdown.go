// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"sync"
)

type recordsStandDownCommand struct {
	command

	id string
}

func (s *recordsStandDownCommand) Setup() (err error) {
	if rec, ok := cmdWithFullCommand("records"); ok {
		s.cmd = rec.Cmd().Command("standdown", "Clears the designation of a record").Alias("sd")
		s.cmd.Arg("id", "The record to stand down").Required().StringVar(&s.id)
	}

	return nil
}

func (s *recordsStandDownCommand) Configure() error {
	return commonConfigure()
}

func (s *recordsStandDownCommand) Run(wg *sync.WaitGroup) (err error) {
	defer wg.Done()

	repo, done, err := openRecords()
	if err != nil {
		return err
	}
	defer done()

	err = repo.StandDown(ctx, s.id)
	if err != nil {
		return err
	}

	fmt.Printf("Record %s is no longer designated\n", s.id)

	return nil
}

func init() {
	cli.commands = append(cli.commands, &recordsStandDownCommand{})
}

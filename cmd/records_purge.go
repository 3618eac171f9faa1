// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"sync"

	"github.com/onap/policy-drools-pdp-sub003/internal/util"
)

type recordsPurgeCommand struct {
	command

	force bool
}

func (p *recordsPurgeCommand) Setup() (err error) {
	if rec, ok := cmdWithFullCommand("records"); ok {
		p.cmd = rec.Cmd().Command("purge", "Removes all election records")
		p.cmd.Flag("force", "Do not prompt for confirmation").Short('f').UnNegatableBoolVar(&p.force)
	}

	return nil
}

func (p *recordsPurgeCommand) Configure() error {
	return commonConfigure()
}

func (p *recordsPurgeCommand) Run(wg *sync.WaitGroup) (err error) {
	defer wg.Done()

	repo, done, err := openRecords()
	if err != nil {
		return err
	}
	defer done()

	records, err := repo.List(ctx)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Println("No election records found")
		return nil
	}

	if !p.force {
		ok, err := util.PromptForConfirmation("Really remove all %d election records, running nodes will re-register on their next heartbeat", len(records))
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}

	err = repo.DeleteAll(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Removed %d records\n", len(records))

	return nil
}

func init() {
	cli.commands = append(cli.commands, &recordsPurgeCommand{})
}

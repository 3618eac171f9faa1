// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"sync"

	"github.com/onap/policy-drools-pdp-sub003/internal/util"
)

type recordsDeleteCommand struct {
	command

	id    string
	force bool
}

func (d *recordsDeleteCommand) Setup() (err error) {
	if rec, ok := cmdWithFullCommand("records"); ok {
		d.cmd = rec.Cmd().Command("delete", "Removes a single record").Alias("rm")
		d.cmd.Arg("id", "The record to remove").Required().StringVar(&d.id)
		d.cmd.Flag("force", "Do not prompt for confirmation").Short('f').UnNegatableBoolVar(&d.force)
	}

	return nil
}

func (d *recordsDeleteCommand) Configure() error {
	return commonConfigure()
}

func (d *recordsDeleteCommand) Run(wg *sync.WaitGroup) (err error) {
	defer wg.Done()

	repo, done, err := openRecords()
	if err != nil {
		return err
	}
	defer done()

	rec, err := repo.Get(ctx, d.id)
	if err != nil {
		return fmt.Errorf("could not load record %s: %w", d.id, err)
	}

	if !d.force {
		prompt := "Really delete record %s"
		if rec.Designated {
			prompt = "Record %s is designated, really delete it"
		}

		ok, err := util.PromptForConfirmation(prompt, d.id)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}

	err = repo.Delete(ctx, d.id)
	if err != nil {
		return err
	}

	fmt.Printf("Deleted record %s\n", d.id)

	return nil
}

func init() {
	cli.commands = append(cli.commands, &recordsDeleteCommand{})
}

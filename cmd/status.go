// Copyright (c) 2019-2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/fatih/color"

	"github.com/onap/policy-drools-pdp-sub003/statistics"
)

type statusCommand struct {
	command

	statusFile string
	maxAge     time.Duration
	active     bool
	healthy    bool
}

func (s *statusCommand) Setup() (err error) {
	s.cmd = cli.app.Command("status", "Checks the status of a running node using its status file")
	s.cmd.Flag("status-file", "The status file to check").PlaceHolder("FILE").StringVar(&s.statusFile)
	s.cmd.Flag("max-age", "Maximum age of the status file").Default("1m").DurationVar(&s.maxAge)
	s.cmd.Flag("active", "Checks that an active node is known").Default("true").BoolVar(&s.active)
	s.cmd.Flag("healthy", "Checks that the node tasks are healthy").Default("true").BoolVar(&s.healthy)

	return nil
}

func (s *statusCommand) Configure() error {
	err := commonConfigure()
	if err != nil {
		return err
	}

	if s.statusFile == "" {
		s.statusFile = cfg.StatusFile
	}

	if s.statusFile == "" {
		return fmt.Errorf("no status file configured, set pdp.status_file or pass --status-file")
	}

	return nil
}

func (s *statusCommand) exit(format string, a ...any) {
	fmt.Printf("%s %s\n", color.RedString("CRITICAL"), fmt.Sprintf(format, a...))
	os.Exit(1)
}

func (s *statusCommand) Run(wg *sync.WaitGroup) (err error) {
	defer wg.Done()

	status, err := statistics.LoadNodeStatus(s.statusFile)
	if err != nil {
		s.exit("%s could not be read: %v", s.statusFile, err)
	}

	err = status.CheckFileAge(s.maxAge)
	if err != nil {
		s.exit("%s: %v", s.statusFile, err)
	}

	if s.healthy {
		err = status.CheckHealthy()
		if err != nil {
			s.exit("%s: %v", status.Identity, err)
		}
	}

	if s.active {
		err = status.CheckActive()
		if err != nil {
			s.exit("%s: %v", status.Identity, err)
		}
	}

	role := "standby"
	if status.Designated {
		role = "active"
	}

	fmt.Printf("%s %s is %s, active node %s, last active %s\n", color.GreenString("OK"), status.Identity, role, status.CurrentActive, status.LastActive)

	return nil
}

func init() {
	cli.commands = append(cli.commands, &statusCommand{})
}

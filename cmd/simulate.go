// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"

	"github.com/onap/policy-drools-pdp-sub003/election"
	"github.com/onap/policy-drools-pdp-sub003/providers/status"
	"github.com/onap/policy-drools-pdp-sub003/providers/store"
	"github.com/onap/policy-drools-pdp-sub003/providers/store/memory"
)

type simulateCommand struct {
	command

	nodes     int
	sites     []string
	heartbeat time.Duration
	election  time.Duration
	stale     time.Duration
	failEvery time.Duration
	duration  time.Duration
}

type simNode struct {
	engine *election.Engine
	cancel context.CancelFunc
	done   chan struct{}
}

func (s *simulateCommand) Setup() (err error) {
	s.cmd = cli.app.Command("simulate", "Runs an in-process fleet of nodes to observe elections and failover").Alias("sim")
	s.cmd.Flag("nodes", "Number of nodes to run").Default("3").IntVar(&s.nodes)
	s.cmd.Flag("site", "Sites to spread nodes over, repeat for multiple sites").Default("site1").StringsVar(&s.sites)
	s.cmd.Flag("heartbeat", "Heartbeat interval").Default("500ms").DurationVar(&s.heartbeat)
	s.cmd.Flag("election", "Election interval").Default("1s").DurationVar(&s.election)
	s.cmd.Flag("stale", "Stale timeout").Default("3s").DurationVar(&s.stale)
	s.cmd.Flag("fail-every", "Stop the active node at this interval, 0 disables").Default("20s").DurationVar(&s.failEvery)
	s.cmd.Flag("duration", "How long to run the simulation, 0 runs until interrupted").Default("0s").DurationVar(&s.duration)

	return nil
}

func (s *simulateCommand) Configure() error {
	err := commonConfigure()
	if err != nil {
		return err
	}

	if s.nodes < 1 {
		return fmt.Errorf("at least one node is required")
	}

	return nil
}

func (s *simulateCommand) Run(wg *sync.WaitGroup) (err error) {
	defer wg.Done()

	log := logrus.NewEntry(logrus.StandardLogger()).WithField("component", "simulate")

	repo, err := store.New(memory.New(), store.WithStaleTimeout(s.stale), store.WithLogger(log))
	if err != nil {
		return err
	}
	defer repo.Close()

	sstore := status.NewMemoryStore()
	nodes := make(map[string]*simNode)
	order := []string{}

	for i := 0; i < s.nodes; i++ {
		id := fmt.Sprintf("pdp%d.example.net", i+1)
		ecfg := election.Config{
			Identity:          id,
			Site:              s.sites[i%len(s.sites)],
			Priority:          i,
			HeartbeatInterval: s.heartbeat,
			ElectionInterval:  s.election,
			StaleTimeout:      s.stale,
		}

		node, err := s.startNode(ecfg, repo, sstore, log)
		if err != nil {
			return err
		}

		nodes[id] = node
		order = append(order, id)
	}

	defer func() {
		for _, node := range nodes {
			node.cancel()
			<-node.done
		}
	}()

	sctx := ctx
	if s.duration > 0 {
		var scancel context.CancelFunc
		sctx, scancel = context.WithTimeout(ctx, s.duration)
		defer scancel()
	}

	fmt.Printf("Simulating %d nodes, elections start after about 5 seconds\n\n", s.nodes)

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	var failTick <-chan time.Time
	if s.failEvery > 0 {
		ft := time.NewTicker(s.failEvery)
		defer ft.Stop()
		failTick = ft.C
	}

	for {
		select {
		case <-ticker.C:
			s.show(order, nodes)

		case <-failTick:
			for _, id := range order {
				node, ok := nodes[id]
				if !ok || !node.engine.IsDesignated() {
					continue
				}

				fmt.Printf("%s stopping active node %s\n", color.RedString(">>>"), id)
				node.cancel()
				<-node.done
				delete(nodes, id)

				break
			}

		case <-sctx.Done():
			records, err := repo.List(context.Background())
			if err != nil {
				return err
			}

			fmt.Println()
			return renderRecords(os.Stdout, records, time.Now(), s.stale)
		}
	}
}

func (s *simulateCommand) startNode(ecfg election.Config, repo *store.Repository, sstore status.Store, log *logrus.Entry) (*simNode, error) {
	nlog := log.WithField("identity", ecfg.Identity)

	mgr, err := status.NewManager(ecfg.Identity, sstore, nlog)
	if err != nil {
		return nil, err
	}

	engine, err := election.New(ecfg, repo, mgr, election.WithLogger(nlog))
	if err != nil {
		return nil, err
	}

	nctx, ncancel := context.WithCancel(ctx)
	node := &simNode{engine: engine, cancel: ncancel, done: make(chan struct{})}

	go func() {
		defer close(node.done)

		err := engine.Start(nctx)
		if err != nil {
			nlog.Errorf("Node failed: %v", err)
		}
	}()

	return node, nil
}

func (s *simulateCommand) show(order []string, nodes map[string]*simNode) {
	line := time.Now().Format(time.TimeOnly)

	for _, id := range order {
		node, ok := nodes[id]
		switch {
		case !ok:
			line += " " + color.New(color.Faint).Sprint(id)
		case node.engine.IsDesignated():
			line += " " + color.GreenString(id)
		default:
			line += " " + color.YellowString(id)
		}
	}

	fmt.Println(line)
}

func init() {
	cli.commands = append(cli.commands, &simulateCommand{})
}

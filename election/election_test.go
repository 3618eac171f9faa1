// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package election

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/onap/policy-drools-pdp-sub003/backoff"
	"github.com/onap/policy-drools-pdp-sub003/inter"
	"github.com/onap/policy-drools-pdp-sub003/pdp"
	"github.com/onap/policy-drools-pdp-sub003/providers/status"
	"github.com/onap/policy-drools-pdp-sub003/providers/store"
	"github.com/onap/policy-drools-pdp-sub003/providers/store/memory"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sirupsen/logrus"
)

func TestElection(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Election")
}

type fakeClock struct {
	now time.Time
	mu  sync.Mutex
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)
}

type recordingNotifier struct {
	changes []inter.DesignationChange
	mu      sync.Mutex
}

func (n *recordingNotifier) NotifyDesignation(_ context.Context, change inter.DesignationChange) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.changes = append(n.changes, change)

	return nil
}

func (n *recordingNotifier) Changes() []inter.DesignationChange {
	n.mu.Lock()
	defer n.mu.Unlock()

	return append([]inter.DesignationChange{}, n.changes...)
}

func testLogger() *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(GinkgoWriter)
	logger.SetLevel(logrus.DebugLevel)

	return logrus.NewEntry(logger)
}

type testNode struct {
	engine *Engine
	status *status.Manager
}

type cluster struct {
	clock    *fakeClock
	repo     *store.Repository
	statuses *status.MemoryStore
	log      *logrus.Entry
}

func newCluster() *cluster {
	c := &cluster{
		clock:    newFakeClock(),
		statuses: status.NewMemoryStore(),
		log:      testLogger(),
	}

	repo, err := store.New(memory.New(), store.WithClock(c.clock.Now), store.WithLogger(c.log))
	Expect(err).ToNot(HaveOccurred())
	c.repo = repo

	return c
}

func (c *cluster) node(id string, site string, priority int, opts ...Option) *testNode {
	mgr, err := status.NewManager(id, c.statuses, c.log)
	Expect(err).ToNot(HaveOccurred())

	opts = append([]Option{
		WithClock(c.clock.Now),
		WithLogger(c.log),
		WithRegistrationBackoff(backoff.Policy{Millis: []int{1}}),
	}, opts...)

	engine, err := New(Config{Identity: id, Site: site, Priority: priority}, c.repo, mgr, opts...)
	Expect(err).ToNot(HaveOccurred())

	return &testNode{engine: engine, status: mgr}
}

func (c *cluster) designated(ctx context.Context) []string {
	records, err := c.repo.List(ctx)
	Expect(err).ToNot(HaveOccurred())

	var ids []string
	for _, rec := range records {
		if rec.Designated {
			ids = append(ids, rec.ID)
		}
	}

	return ids
}

var _ = Describe("Engine", func() {
	var (
		ctx    context.Context
		cancel context.CancelFunc
		c      *cluster
	)

	BeforeEach(func() {
		ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
		c = newCluster()
	})

	AfterEach(func() {
		cancel()
	})

	Describe("New", func() {
		It("Should validate the configuration", func() {
			mgr, err := status.NewManager("pdp1", c.statuses, c.log)
			Expect(err).ToNot(HaveOccurred())

			_, err = New(Config{}, c.repo, mgr)
			Expect(err).To(MatchError("identity is required"))

			_, err = New(Config{Identity: "pdp1", StaleTimeout: time.Second}, c.repo, mgr)
			Expect(err).To(MatchError(ContainSubstring("should be longer than the heartbeat interval")))

			_, err = New(Config{Identity: "pdp1"}, nil, mgr)
			Expect(err).To(MatchError("a record repository is required"))

			_, err = New(Config{Identity: "pdp1"}, c.repo, nil)
			Expect(err).To(MatchError("a service status port is required"))
		})

		It("Should apply defaults", func() {
			n := c.node("pdp1", "", 1)
			Expect(n.engine.cfg.HeartbeatInterval).To(Equal(DefaultHeartbeatInterval))
			Expect(n.engine.cfg.ElectionInterval).To(Equal(DefaultElectionInterval))
			Expect(n.engine.cfg.StaleTimeout).To(Equal(DefaultStaleTimeout))
			Expect(n.engine.Identity()).To(Equal("pdp1"))
		})
	})

	Describe("register", func() {
		It("Should register a non designated record", func() {
			Expect(c.repo.Insert(ctx, &pdp.Record{ID: "pdp1", Designated: true})).To(Succeed())

			n := c.node("pdp1", "site1", 3)
			Expect(n.engine.register(ctx)).To(Succeed())

			rec, err := c.repo.Get(ctx, "pdp1")
			Expect(err).ToNot(HaveOccurred())
			Expect(rec.Designated).To(BeFalse())
			Expect(rec.Site).To(Equal("site1"))
			Expect(rec.Priority).To(Equal(3))
			Expect(rec.UpdatedDate).To(Equal(c.clock.Now()))
		})
	})

	Describe("heartbeatOnce", func() {
		It("Should record liveness and refresh the status", func() {
			n := c.node("pdp1", "site1", 1)
			Expect(n.engine.register(ctx)).To(Succeed())

			c.clock.Advance(time.Minute)
			n.engine.heartbeatOnce(ctx)

			rec, err := c.repo.Get(ctx, "pdp1")
			Expect(err).ToNot(HaveOccurred())
			Expect(rec.UpdatedDate).To(Equal(c.clock.Now()))
			Expect(rec.Designated).To(BeFalse())
			Expect(n.status.Current()).To(Equal(pdp.HotStandby))
		})

		It("Should not change the designation", func() {
			n := c.node("pdp1", "site1", 1)
			Expect(n.engine.register(ctx)).To(Succeed())
			rec, err := c.repo.Get(ctx, "pdp1")
			Expect(err).ToNot(HaveOccurred())
			Expect(c.repo.SetDesignated(ctx, rec, true)).To(Succeed())

			n.engine.heartbeatOnce(ctx)

			rec, err = c.repo.Get(ctx, "pdp1")
			Expect(err).ToNot(HaveOccurred())
			Expect(rec.Designated).To(BeTrue())
		})
	})

	Describe("runRound", func() {
		var nodes []*testNode

		BeforeEach(func() {
			nodes = nil
			for _, id := range []string{"pdp1", "pdp2", "pdp3", "pdp4"} {
				n := c.node(id, "", 1)
				Expect(n.engine.register(ctx)).To(Succeed())
				nodes = append(nodes, n)
			}
		})

		It("Should not pick a winner when there are no hot standby nodes", func() {
			nodes[0].engine.runRound(ctx)

			Expect(c.designated(ctx)).To(BeEmpty())
			Expect(nodes[0].engine.IsDesignated()).To(BeFalse())
			Expect(nodes[0].engine.CurrentActive()).To(BeEmpty())
			Expect(nodes[0].engine.LastActive()).To(BeEmpty())
		})

		It("Should elect a single node once nodes are in hot standby", func() {
			for _, n := range nodes {
				n.engine.heartbeatOnce(ctx)
			}

			nodes[2].engine.runRound(ctx)
			Expect(c.designated(ctx)).To(BeEmpty())
			Expect(nodes[2].engine.IsDesignated()).To(BeFalse())
			Expect(nodes[2].engine.CurrentActive()).To(Equal("pdp1"))

			nodes[0].engine.runRound(ctx)
			Expect(c.designated(ctx)).To(Equal([]string{"pdp1"}))
			Expect(nodes[0].engine.IsDesignated()).To(BeTrue())
			Expect(nodes[0].engine.CurrentActive()).To(Equal("pdp1"))
			Expect(nodes[0].status.Current()).To(Equal(pdp.ProvidingService))

			for _, n := range nodes[1:] {
				n.engine.runRound(ctx)
				Expect(n.engine.IsDesignated()).To(BeFalse())
				Expect(n.engine.CurrentActive()).To(Equal("pdp1"))
				Expect(n.status.Current()).To(Equal(pdp.HotStandby))
			}

			Expect(c.designated(ctx)).To(Equal([]string{"pdp1"}))
		})

		It("Should prefer a lower priority", func() {
			n5 := c.node("pdp5", "", 0)
			Expect(n5.engine.register(ctx)).To(Succeed())
			n5.engine.heartbeatOnce(ctx)
			for _, n := range nodes {
				n.engine.heartbeatOnce(ctx)
			}

			n5.engine.runRound(ctx)
			Expect(c.designated(ctx)).To(Equal([]string{"pdp5"}))

			nodes[0].engine.runRound(ctx)
			Expect(nodes[0].engine.IsDesignated()).To(BeFalse())
			Expect(nodes[0].engine.CurrentActive()).To(Equal("pdp5"))
		})

		It("Should correct a designated node that is not providing service", func() {
			for _, n := range nodes {
				n.engine.heartbeatOnce(ctx)
			}

			rec, err := c.repo.Get(ctx, "pdp1")
			Expect(err).ToNot(HaveOccurred())
			Expect(c.repo.SetDesignated(ctx, rec, true)).To(Succeed())

			nodes[0].engine.runRound(ctx)

			rec, err = c.repo.Get(ctx, "pdp1")
			Expect(err).ToNot(HaveOccurred())
			Expect(rec.Designated).To(BeFalse())
			Expect(nodes[0].engine.IsDesignated()).To(BeFalse())
			Expect(nodes[0].engine.CurrentActive()).To(BeEmpty())
			Expect(nodes[0].status.Current()).To(Equal(pdp.HotStandby))
		})

		It("Should leave remote inconsistencies for the remote node to correct", func() {
			for _, n := range nodes {
				n.engine.heartbeatOnce(ctx)
			}

			rec, err := c.repo.Get(ctx, "pdp2")
			Expect(err).ToNot(HaveOccurred())
			Expect(c.repo.SetDesignated(ctx, rec, true)).To(Succeed())

			nodes[0].engine.runRound(ctx)
			Expect(c.designated(ctx)).To(Equal([]string{"pdp2"}))
			Expect(nodes[0].engine.CurrentActive()).To(BeEmpty())

			nodes[1].engine.runRound(ctx)
			Expect(c.designated(ctx)).To(BeEmpty())
		})

		It("Should demote a node providing service without being designated", func() {
			for _, n := range nodes {
				n.engine.heartbeatOnce(ctx)
			}
			Expect(nodes[1].status.Promote(ctx)).To(Succeed())

			nodes[1].engine.runRound(ctx)
			Expect(nodes[1].status.Current()).To(Equal(pdp.HotStandby))
			Expect(nodes[1].engine.IsDesignated()).To(BeFalse())
			Expect(nodes[1].engine.CurrentActive()).To(Equal("pdp1"))
		})

		It("Should stand down and disable a stale designated node", func() {
			Expect(c.repo.Insert(ctx, &pdp.Record{
				ID:             "pdp9",
				Designated:     true,
				UpdatedDate:    c.clock.Now().Add(-20 * time.Second),
				DesignatedDate: c.clock.Now().Add(-30 * time.Second),
			})).To(Succeed())
			Expect(c.statuses.Put(ctx, "pdp9", pdp.ProvidingService)).To(Succeed())

			for _, n := range nodes {
				n.engine.heartbeatOnce(ctx)
			}

			nodes[0].engine.runRound(ctx)

			rec, err := c.repo.Get(ctx, "pdp9")
			Expect(err).ToNot(HaveOccurred())
			Expect(rec.Designated).To(BeFalse())
			Expect(c.statuses.Get(ctx, "pdp9")).To(Equal(pdp.ColdStandby))

			Expect(c.designated(ctx)).To(Equal([]string{"pdp1"}))
			Expect(nodes[0].engine.CurrentActive()).To(Equal("pdp1"))
			Expect(nodes[0].engine.LastActive()).To(Equal("pdp9"))
		})

		It("Should disable stale standby nodes", func() {
			for _, n := range nodes {
				n.engine.heartbeatOnce(ctx)
			}

			c.clock.Advance(20 * time.Second)
			nodes[0].engine.heartbeatOnce(ctx)
			nodes[0].engine.runRound(ctx)

			for _, id := range []string{"pdp2", "pdp3", "pdp4"} {
				Expect(c.statuses.Get(ctx, id)).To(Equal(pdp.ColdStandby))
			}

			Expect(c.designated(ctx)).To(Equal([]string{"pdp1"}))
		})

		It("Should fail over when the designated node goes stale", func() {
			for _, n := range nodes {
				n.engine.heartbeatOnce(ctx)
			}

			nodes[0].engine.runRound(ctx)
			Expect(c.designated(ctx)).To(Equal([]string{"pdp1"}))

			c.clock.Advance(20 * time.Second)
			for _, n := range nodes[1:] {
				n.engine.heartbeatOnce(ctx)
			}

			nodes[1].engine.runRound(ctx)
			Expect(c.designated(ctx)).To(Equal([]string{"pdp2"}))
			Expect(nodes[1].engine.LastActive()).To(Equal("pdp1"))
			Expect(c.statuses.Get(ctx, "pdp1")).To(Equal(pdp.ColdStandby))

			nodes[0].engine.heartbeatOnce(ctx)
			nodes[0].engine.runRound(ctx)
			Expect(nodes[0].status.Current()).To(Equal(pdp.HotStandby))
			Expect(nodes[0].engine.IsDesignated()).To(BeFalse())
			Expect(nodes[0].engine.CurrentActive()).To(Equal("pdp2"))
			Expect(c.designated(ctx)).To(Equal([]string{"pdp2"}))
		})

		It("Should not promote a locked node", func() {
			for _, n := range nodes {
				n.engine.heartbeatOnce(ctx)
			}
			Expect(nodes[0].status.Lock(ctx)).To(Succeed())

			nodes[0].engine.runRound(ctx)
			Expect(nodes[0].engine.IsDesignated()).To(BeFalse())
			Expect(nodes[0].engine.CurrentActive()).To(Equal("pdp2"))
			Expect(nodes[0].status.Current()).To(Equal(pdp.ColdStandby))
			Expect(c.designated(ctx)).To(BeEmpty())

			nodes[1].engine.runRound(ctx)
			Expect(c.designated(ctx)).To(Equal([]string{"pdp2"}))
		})

		It("Should notify designation changes", func() {
			notifier := &recordingNotifier{}
			n := c.node("pdp0", "", 1, WithNotifier(notifier))
			Expect(n.engine.register(ctx)).To(Succeed())
			n.engine.heartbeatOnce(ctx)
			for _, n := range nodes {
				n.engine.heartbeatOnce(ctx)
			}

			n.engine.runRound(ctx)
			n.engine.runRound(ctx)

			Expect(notifier.Changes()).To(Equal([]inter.DesignationChange{
				{Identity: "pdp0", Designated: true, CurrentActive: "pdp0", LastActive: "pdp0"},
			}))
		})
	})

	Describe("Racing designated nodes", func() {
		var n1, n2 *testNode

		BeforeEach(func() {
			n1 = c.node("pdp1", "site1", 4)
			n2 = c.node("pdp2", "site2", 4)

			for _, n := range []*testNode{n1, n2} {
				Expect(n.engine.register(ctx)).To(Succeed())
				n.engine.heartbeatOnce(ctx)
				Expect(n.status.Promote(ctx)).To(Succeed())
			}
		})

		designate := func(id string, at time.Time) {
			rec, err := c.repo.Get(ctx, id)
			Expect(err).ToNot(HaveOccurred())
			rec.Designated = true
			rec.DesignatedDate = at
			Expect(c.repo.Insert(ctx, rec)).To(Succeed())
		}

		It("Should keep the earliest claimant when its round runs first", func() {
			designate("pdp1", c.clock.Now().Add(-10*time.Second))
			designate("pdp2", c.clock.Now().Add(-5*time.Second))

			n1.engine.runRound(ctx)
			n2.engine.runRound(ctx)

			Expect(c.designated(ctx)).To(Equal([]string{"pdp1"}))
			Expect(n2.status.Current()).To(Equal(pdp.HotStandby))
			Expect(n2.engine.CurrentActive()).To(Equal("pdp1"))
			Expect(n1.engine.IsDesignated()).To(BeTrue())
			Expect(n2.engine.IsDesignated()).To(BeFalse())
		})

		It("Should keep the earliest claimant when the loser round runs first", func() {
			designate("pdp1", c.clock.Now().Add(-10*time.Second))
			designate("pdp2", c.clock.Now().Add(-5*time.Second))

			n2.engine.runRound(ctx)
			n1.engine.runRound(ctx)

			Expect(c.designated(ctx)).To(Equal([]string{"pdp1"}))
			Expect(n2.engine.LastActive()).To(Equal("pdp1"))
		})

		It("Should prefer the site of the earliest claimant over the id", func() {
			designate("pdp1", c.clock.Now().Add(-5*time.Second))
			designate("pdp2", c.clock.Now().Add(-10*time.Second))

			n1.engine.runRound(ctx)
			n2.engine.runRound(ctx)

			Expect(c.designated(ctx)).To(Equal([]string{"pdp2"}))
			Expect(n1.status.Current()).To(Equal(pdp.HotStandby))
			Expect(n1.engine.IsDesignated()).To(BeFalse())
		})
	})

	Describe("shutdown", func() {
		It("Should stand down a designated node", func() {
			n := c.node("pdp1", "", 1)
			Expect(n.engine.register(ctx)).To(Succeed())
			n.engine.heartbeatOnce(ctx)
			n.engine.runRound(ctx)
			Expect(n.engine.IsDesignated()).To(BeTrue())

			n.engine.shutdown()

			Expect(n.engine.IsDesignated()).To(BeFalse())
			Expect(c.designated(ctx)).To(BeEmpty())
			Expect(n.status.Current()).To(Equal(pdp.HotStandby))
		})
	})

	Describe("Start", func() {
		It("Should register, heartbeat and stand down on stop", func() {
			n := c.node("pdp1", "", 1)

			errc := make(chan error, 1)
			go func() { errc <- n.engine.Start(ctx) }()

			Eventually(func() pdp.Status { return n.status.Current() }).Should(Equal(pdp.HotStandby))
			rec, err := c.repo.Get(ctx, "pdp1")
			Expect(err).ToNot(HaveOccurred())
			Expect(rec.Designated).To(BeFalse())

			Expect(n.engine.Start(ctx)).To(MatchError("election engine is already running"))

			n.engine.Stop()
			Eventually(errc).Should(Receive(BeNil()))
		})

		It("Should give up registering when the context is cancelled", func() {
			n := c.node("pdp1", "", 1)
			cctx, ccancel := context.WithCancel(ctx)
			ccancel()

			Expect(n.engine.Start(cctx)).To(MatchError(ContainSubstring("could not register pdp1")))
		})
	})
})

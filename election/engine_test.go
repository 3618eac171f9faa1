// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package election

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	imock "github.com/onap/policy-drools-pdp-sub003/inter/imocks"
	"github.com/onap/policy-drools-pdp-sub003/pdp"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/mock/gomock"
)

var _ = Describe("Engine with mocks", func() {
	var (
		mockctl *gomock.Controller
		repo    *imock.MockPdpRepository
		port    *imock.MockStatusPort
		clock   *fakeClock
		engine  *Engine
		ctx     context.Context
		cancel  context.CancelFunc
		err     error
	)

	BeforeEach(func() {
		mockctl = gomock.NewController(GinkgoT())
		repo = imock.NewMockPdpRepository(mockctl)
		port = imock.NewMockStatusPort(mockctl)
		clock = newFakeClock()
		ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)

		engine, err = New(Config{Identity: "pdp1", Site: "site1", Priority: 1}, repo, port, WithClock(clock.Now), WithLogger(testLogger()))
		Expect(err).ToNot(HaveOccurred())
	})

	AfterEach(func() {
		cancel()
		mockctl.Finish()
	})

	Describe("runRound", func() {
		It("Should abort the round when records cannot be listed", func() {
			before := testutil.ToFloat64(errorsCtr.WithLabelValues("pdp1", "list"))
			repo.EXPECT().List(gomock.Any()).Return(nil, errors.New("store offline"))

			engine.runRound(ctx)

			Expect(testutil.ToFloat64(errorsCtr.WithLabelValues("pdp1", "list"))).To(Equal(before + 1))
			Expect(engine.IsDesignated()).To(BeFalse())
		})

		It("Should stand down when promotion fails", func() {
			self := &pdp.Record{ID: "pdp1", Site: "site1", Priority: 1, UpdatedDate: clock.Now()}

			repo.EXPECT().List(gomock.Any()).Return([]*pdp.Record{self}, nil)
			repo.EXPECT().HasDesignatedFailed(gomock.Any(), gomock.Any()).Return(true)
			repo.EXPECT().IsFresh(gomock.Any(), self).Return(true)
			port.EXPECT().Status(gomock.Any(), "pdp1").Return(pdp.HotStandby, nil).AnyTimes()

			gomock.InOrder(
				repo.EXPECT().SetDesignated(gomock.Any(), self, true).Return(nil),
				port.EXPECT().Promote(gomock.Any()).Return(errors.New("not eligible")),
				repo.EXPECT().SetDesignated(gomock.Any(), self, false).Return(nil),
			)

			engine.runRound(ctx)

			Expect(engine.IsDesignated()).To(BeFalse())
			Expect(engine.CurrentActive()).To(BeEmpty())
			Expect(engine.LastActive()).To(Equal("pdp1"))
		})

		It("Should demote after a failed promotion left the node providing service", func() {
			self := &pdp.Record{ID: "pdp1", Site: "site1", Priority: 1, UpdatedDate: clock.Now()}

			repo.EXPECT().List(gomock.Any()).Return([]*pdp.Record{self}, nil)
			repo.EXPECT().HasDesignatedFailed(gomock.Any(), gomock.Any()).Return(true)
			repo.EXPECT().IsFresh(gomock.Any(), self).Return(true)
			repo.EXPECT().SetDesignated(gomock.Any(), self, gomock.Any()).Return(nil).Times(2)

			gomock.InOrder(
				port.EXPECT().Status(gomock.Any(), "pdp1").Return(pdp.HotStandby, nil).Times(2),
				port.EXPECT().Promote(gomock.Any()).Return(errors.New("failed")),
				port.EXPECT().Status(gomock.Any(), "pdp1").Return(pdp.ProvidingService, nil),
				port.EXPECT().Demote(gomock.Any()).Return(nil),
			)

			engine.runRound(ctx)
			Expect(engine.IsDesignated()).To(BeFalse())
		})

		It("Should treat unreadable statuses as cold standby", func() {
			self := &pdp.Record{ID: "pdp1", UpdatedDate: clock.Now()}
			other := &pdp.Record{ID: "pdp2", UpdatedDate: clock.Now().Add(-time.Minute)}

			repo.EXPECT().List(gomock.Any()).Return([]*pdp.Record{self, other}, nil)
			repo.EXPECT().HasDesignatedFailed(gomock.Any(), gomock.Any()).Return(true)
			repo.EXPECT().IsFresh(gomock.Any(), self).Return(true)
			repo.EXPECT().IsFresh(gomock.Any(), other).Return(false)
			port.EXPECT().Status(gomock.Any(), "pdp1").Return(pdp.UnknownStatus, errors.New("timeout"))
			port.EXPECT().Status(gomock.Any(), "pdp2").Return(pdp.Status(""), errors.New("timeout"))

			engine.runRound(ctx)

			Expect(engine.IsDesignated()).To(BeFalse())
			Expect(engine.CurrentActive()).To(BeEmpty())
		})

		It("Should continue the round when storage writes fail", func() {
			self := &pdp.Record{ID: "pdp1", UpdatedDate: clock.Now()}
			stale := &pdp.Record{ID: "pdp2", Designated: true, UpdatedDate: clock.Now().Add(-time.Minute)}

			repo.EXPECT().List(gomock.Any()).Return([]*pdp.Record{self, stale}, nil)
			repo.EXPECT().HasDesignatedFailed(gomock.Any(), gomock.Any()).Return(true)
			repo.EXPECT().IsFresh(gomock.Any(), self).Return(true)
			repo.EXPECT().IsFresh(gomock.Any(), stale).Return(false)
			repo.EXPECT().StandDown(gomock.Any(), "pdp2").Return(errors.New("store offline"))
			port.EXPECT().Status(gomock.Any(), "pdp1").Return(pdp.HotStandby, nil).AnyTimes()
			port.EXPECT().Status(gomock.Any(), "pdp2").Return(pdp.ProvidingService, nil)
			port.EXPECT().DisableFailedByID(gomock.Any(), "pdp2").Return(errors.New("status offline"))
			repo.EXPECT().SetDesignated(gomock.Any(), self, true).Return(errors.New("store offline"))
			port.EXPECT().Promote(gomock.Any()).Return(nil)

			engine.runRound(ctx)

			Expect(engine.IsDesignated()).To(BeTrue())
			Expect(engine.CurrentActive()).To(Equal("pdp1"))
		})

		It("Should clear the stored designation of stale standby nodes", func() {
			self := &pdp.Record{ID: "pdp1", UpdatedDate: clock.Now()}
			stale := &pdp.Record{ID: "pdp2", UpdatedDate: clock.Now().Add(-time.Minute)}

			repo.EXPECT().List(gomock.Any()).Return([]*pdp.Record{self, stale}, nil)
			repo.EXPECT().HasDesignatedFailed(gomock.Any(), gomock.Any()).Return(true)
			repo.EXPECT().IsFresh(gomock.Any(), self).Return(true)
			repo.EXPECT().IsFresh(gomock.Any(), stale).Return(false)
			port.EXPECT().Status(gomock.Any(), "pdp1").Return(pdp.HotStandby, nil).AnyTimes()
			port.EXPECT().Status(gomock.Any(), "pdp2").Return(pdp.HotStandby, nil)
			repo.EXPECT().StandDown(gomock.Any(), "pdp2").Return(nil)
			port.EXPECT().DisableFailedByID(gomock.Any(), "pdp2").Return(nil)
			repo.EXPECT().SetDesignated(gomock.Any(), self, true).Return(nil)
			port.EXPECT().Promote(gomock.Any()).Return(nil)

			engine.runRound(ctx)

			Expect(engine.CurrentActive()).To(Equal("pdp1"))
		})

		It("Should clear the stored designation when providing service without being designated", func() {
			self := &pdp.Record{ID: "pdp1", UpdatedDate: clock.Now()}

			repo.EXPECT().List(gomock.Any()).Return([]*pdp.Record{self}, nil)
			repo.EXPECT().HasDesignatedFailed(gomock.Any(), gomock.Any()).Return(false)
			repo.EXPECT().IsFresh(gomock.Any(), self).Return(true)

			gomock.InOrder(
				port.EXPECT().Status(gomock.Any(), "pdp1").Return(pdp.ProvidingService, nil),
				repo.EXPECT().StandDown(gomock.Any(), "pdp1").Return(nil),
				port.EXPECT().Demote(gomock.Any()).Return(nil),
				port.EXPECT().Status(gomock.Any(), "pdp1").Return(pdp.HotStandby, nil),
			)

			engine.runRound(ctx)

			Expect(engine.IsDesignated()).To(BeFalse())
			Expect(engine.CurrentActive()).To(BeEmpty())
		})

		It("Should recover from a panicking store and release the round lock", func() {
			before := testutil.ToFloat64(errorsCtr.WithLabelValues("pdp1", "election"))
			repo.EXPECT().List(gomock.Any()).DoAndReturn(func(context.Context) ([]*pdp.Record, error) {
				panic("corrupt record")
			})

			Expect(func() { engine.election.runOnce(ctx) }).ToNot(Panic())

			Expect(testutil.ToFloat64(errorsCtr.WithLabelValues("pdp1", "election"))).To(Equal(before + 1))
			Expect(engine.tryLockRound(time.Millisecond)).To(BeTrue())
			engine.unlockRound()
		})
	})

	Describe("heartbeatOnce", func() {
		It("Should count failed heartbeats", func() {
			before := testutil.ToFloat64(heartbeatFailCtr.WithLabelValues("pdp1"))
			repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, rec *pdp.Record) error {
				Expect(rec.ID).To(Equal("pdp1"))
				Expect(rec.Site).To(Equal("site1"))
				Expect(rec.Priority).To(Equal(1))
				Expect(rec.Designated).To(BeFalse())
				return errors.New("store offline")
			})

			engine.heartbeatOnce(ctx)

			Expect(testutil.ToFloat64(heartbeatFailCtr.WithLabelValues("pdp1"))).To(Equal(before + 1))
		})
	})

	Describe("Watchdog", func() {
		start := func() {
			engine.ctx, engine.cancel = context.WithCancel(ctx)
		}

		It("Should do nothing when tasks are not scheduled", func() {
			Expect(engine.CheckHealth()).To(Succeed())
		})

		It("Should restart a stalled heartbeat", func() {
			start()
			repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

			engine.heartbeat.start(engine.ctx, time.Hour)
			Expect(engine.CheckHealth()).To(Succeed())

			before := testutil.ToFloat64(watchdogRestartCtr.WithLabelValues("pdp1", "heartbeat"))
			clock.Advance(time.Hour + DefaultHeartbeatInterval + heartbeatStallGrace + time.Second)

			Expect(engine.CheckHealth()).To(MatchError(ContainSubstring("heartbeat task stalled")))
			Expect(testutil.ToFloat64(watchdogRestartCtr.WithLabelValues("pdp1", "heartbeat"))).To(Equal(before + 1))
			Expect(engine.heartbeat.lastCompleted()).To(Equal(clock.Now().Add(heartbeatStartDelay)))

			Expect(engine.CheckHealth()).To(Succeed())
			engine.cancel()
		})

		It("Should restart a stalled election realigned to the interval", func() {
			start()

			engine.election.start(engine.ctx, time.Hour)
			clock.Advance(time.Hour + electionStallFactor*DefaultElectionInterval - time.Second)
			Expect(engine.CheckHealth()).To(Succeed())

			before := testutil.ToFloat64(watchdogRestartCtr.WithLabelValues("pdp1", "election"))
			clock.Advance(2 * time.Second)

			Expect(engine.CheckHealth()).To(MatchError(ContainSubstring("election task stalled")))
			Expect(testutil.ToFloat64(watchdogRestartCtr.WithLabelValues("pdp1", "election"))).To(Equal(before + 1))
			Expect(engine.election.lastCompleted()).To(Equal(clock.Now().Add(electionStartDelay(clock.Now(), DefaultElectionInterval))))
			engine.cancel()
		})

		It("Should not restart the election while a round holds the lock", func() {
			start()

			engine.election.start(engine.ctx, time.Hour)
			clock.Advance(2 * time.Hour)

			Expect(engine.lockRound(ctx)).To(BeTrue())
			Expect(engine.CheckHealth()).To(MatchError(ContainSubstring("restart skipped")))
			engine.unlockRound()

			Expect(engine.CheckHealth()).To(MatchError(ContainSubstring("election task stalled")))
			engine.cancel()
		})

		It("Should not restart tasks once stopped", func() {
			engine.heartbeat.start(ctx, time.Hour)
			clock.Advance(2 * time.Hour)

			Expect(engine.CheckHealth()).To(Succeed())
			engine.heartbeat.stop()
		})
	})

	Describe("task", func() {
		It("Should run periodically and record completion", func() {
			var runs atomic.Int32
			t := newTask("test", 10*time.Millisecond, clock.Now, testLogger(), func(context.Context) { runs.Add(1) })

			t.start(ctx, 0)
			Eventually(runs.Load).Should(BeNumerically(">=", 3))

			clock.Advance(time.Minute)
			Eventually(t.lastCompleted).Should(Equal(clock.Now()))

			t.stop()
			_, scheduled := t.sinceLastRun()
			Expect(scheduled).To(BeFalse())
		})

		It("Should keep running after a panic", func() {
			var runs atomic.Int32
			var recovered atomic.Value
			t := newTask("test", 10*time.Millisecond, clock.Now, testLogger(), func(context.Context) {
				if runs.Add(1) == 1 {
					panic("first run")
				}
			})
			t.recovered = func(r any) { recovered.Store(r) }

			t.start(ctx, 0)
			Eventually(runs.Load).Should(BeNumerically(">=", 3))
			Expect(recovered.Load()).To(Equal("first run"))

			t.stop()
		})

		It("Should not let abandoned runs record completion", func() {
			release := make(chan struct{})
			var runs atomic.Int32
			t := newTask("test", time.Hour, clock.Now, testLogger(), func(context.Context) {
				if runs.Add(1) == 1 {
					<-release
				}
			})

			t.start(ctx, 0)
			Eventually(runs.Load).Should(BeEquivalentTo(1))

			t.start(ctx, time.Hour)
			expected := t.lastCompleted()

			clock.Advance(time.Minute)
			close(release)

			Consistently(t.lastCompleted, 100*time.Millisecond).Should(Equal(expected))
			t.stop()
		})
	})

	Describe("electionStartDelay", func() {
		It("Should align to the interval with a minimum delay", func() {
			aligned := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

			Expect(electionStartDelay(aligned, 2*time.Second)).To(Equal(6 * time.Second))
			Expect(electionStartDelay(aligned.Add(500*time.Millisecond), 2*time.Second)).To(Equal(5500 * time.Millisecond))
			Expect(electionStartDelay(aligned.Add(3*time.Second), 10*time.Second)).To(Equal(17 * time.Second))
			Expect(electionStartDelay(aligned, 0)).To(Equal(minimumElectionStartDelay))
		})
	})
})

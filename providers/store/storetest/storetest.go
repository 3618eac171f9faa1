// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

// Package storetest holds shared behaviour tests every store.Backend has to pass
package storetest

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/onap/policy-drools-pdp-sub003/pdp"
	"github.com/onap/policy-drools-pdp-sub003/providers/store"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// BackendBehaviour registers specs verifying the backend made by factory, it
// has to be called inside a ginkgo container
func BackendBehaviour(factory func() store.Backend) {
	var (
		backend store.Backend
		ctx     context.Context
		cancel  context.CancelFunc
		now     time.Time
	)

	BeforeEach(func() {
		ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
		now = time.Now().UTC().Truncate(time.Microsecond)
		backend = factory()
	})

	AfterEach(func() {
		Expect(backend.Close()).To(Succeed())
		cancel()
	})

	sample := func(id string) *pdp.Record {
		return &pdp.Record{
			ID:             id,
			Designated:     true,
			Priority:       3,
			Site:           "site1",
			UpdatedDate:    now,
			DesignatedDate: now.Add(-time.Minute),
		}
	}

	// times are compared using time.Time.Equal so backends may return them in any location
	expectRecord := func(rec *pdp.Record, expected *pdp.Record) {
		Expect(rec).ToNot(BeNil())
		Expect(cmp.Diff(expected, rec)).To(BeEmpty())
	}

	It("Should report unknown records", func() {
		_, err := backend.Get(ctx, "missing")
		Expect(errors.Is(err, store.ErrNotFound)).To(BeTrue())
	})

	It("Should store and load records", func() {
		Expect(backend.Put(ctx, sample("pdp1"))).To(Succeed())

		rec, err := backend.Get(ctx, "pdp1")
		Expect(err).ToNot(HaveOccurred())
		expectRecord(rec, sample("pdp1"))

		changed := sample("pdp1")
		changed.Designated = false
		changed.Site = "site2"
		Expect(backend.Put(ctx, changed)).To(Succeed())

		rec, err = backend.Get(ctx, "pdp1")
		Expect(err).ToNot(HaveOccurred())
		expectRecord(rec, changed)
	})

	It("Should list records", func() {
		records, err := backend.List(ctx)
		Expect(err).ToNot(HaveOccurred())
		Expect(records).To(BeEmpty())

		for _, id := range []string{"pdp2", "pdp1", "pdp3"} {
			Expect(backend.Put(ctx, sample(id))).To(Succeed())
		}

		records, err = backend.List(ctx)
		Expect(err).ToNot(HaveOccurred())

		var ids []string
		for _, rec := range records {
			ids = append(ids, rec.ID)
		}
		Expect(ids).To(ConsistOf("pdp1", "pdp2", "pdp3"))
	})

	It("Should create records from Modify", func() {
		rec, err := backend.Modify(ctx, "pdp1", func(current *pdp.Record) (*pdp.Record, error) {
			Expect(current).To(BeNil())
			return sample("pdp1"), nil
		})
		Expect(err).ToNot(HaveOccurred())
		expectRecord(rec, sample("pdp1"))

		rec, err = backend.Get(ctx, "pdp1")
		Expect(err).ToNot(HaveOccurred())
		expectRecord(rec, sample("pdp1"))
	})

	It("Should modify existing records", func() {
		Expect(backend.Put(ctx, sample("pdp1"))).To(Succeed())

		rec, err := backend.Modify(ctx, "pdp1", func(current *pdp.Record) (*pdp.Record, error) {
			expectRecord(current, sample("pdp1"))
			current.Designated = false
			return current, nil
		})
		Expect(err).ToNot(HaveOccurred())
		Expect(rec.Designated).To(BeFalse())

		rec, err = backend.Get(ctx, "pdp1")
		Expect(err).ToNot(HaveOccurred())
		Expect(rec.Designated).To(BeFalse())
	})

	It("Should leave records unchanged when the mutator returns nothing", func() {
		Expect(backend.Put(ctx, sample("pdp1"))).To(Succeed())

		rec, err := backend.Modify(ctx, "pdp1", func(current *pdp.Record) (*pdp.Record, error) {
			current.Site = "changed"
			return nil, nil
		})
		Expect(err).ToNot(HaveOccurred())
		expectRecord(rec, sample("pdp1"))

		rec, err = backend.Modify(ctx, "missing", func(current *pdp.Record) (*pdp.Record, error) {
			return nil, nil
		})
		Expect(err).ToNot(HaveOccurred())
		Expect(rec).To(BeNil())

		_, err = backend.Get(ctx, "missing")
		Expect(errors.Is(err, store.ErrNotFound)).To(BeTrue())
	})

	It("Should abort modifications when the mutator fails", func() {
		Expect(backend.Put(ctx, sample("pdp1"))).To(Succeed())

		_, err := backend.Modify(ctx, "pdp1", func(current *pdp.Record) (*pdp.Record, error) {
			return nil, store.ErrNotFound
		})
		Expect(errors.Is(err, store.ErrNotFound)).To(BeTrue())

		rec, err := backend.Get(ctx, "pdp1")
		Expect(err).ToNot(HaveOccurred())
		expectRecord(rec, sample("pdp1"))
	})

	It("Should not lose concurrent modifications", func() {
		rec := sample("pdp1")
		rec.Priority = 0
		Expect(backend.Put(ctx, rec)).To(Succeed())

		var wg sync.WaitGroup
		for i := 0; i < 4; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				defer GinkgoRecover()

				_, err := backend.Modify(ctx, "pdp1", func(current *pdp.Record) (*pdp.Record, error) {
					current.Priority++
					return current, nil
				})
				Expect(err).ToNot(HaveOccurred())
			}()
		}
		wg.Wait()

		rec, err := backend.Get(ctx, "pdp1")
		Expect(err).ToNot(HaveOccurred())
		Expect(rec.Priority).To(Equal(4))
	})

	It("Should delete records", func() {
		Expect(backend.Put(ctx, sample("pdp1"))).To(Succeed())
		Expect(backend.Put(ctx, sample("pdp2"))).To(Succeed())

		Expect(backend.Delete(ctx, "pdp1")).To(Succeed())
		_, err := backend.Get(ctx, "pdp1")
		Expect(errors.Is(err, store.ErrNotFound)).To(BeTrue())

		Expect(backend.DeleteAll(ctx)).To(Succeed())
		records, err := backend.List(ctx)
		Expect(err).ToNot(HaveOccurred())
		Expect(records).To(BeEmpty())

		Expect(backend.Put(ctx, sample("pdp3"))).To(Succeed())
		records, err = backend.List(ctx)
		Expect(err).ToNot(HaveOccurred())
		Expect(records).To(HaveLen(1))
	})
}

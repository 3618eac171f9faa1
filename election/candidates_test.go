// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package election

import (
	"time"

	"github.com/onap/policy-drools-pdp-sub003/pdp"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Candidates", func() {
	var base time.Time

	BeforeEach(func() {
		base = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	})

	rec := func(id string, site string, priority int, designated bool, designatedAgo time.Duration) *pdp.Record {
		r := &pdp.Record{ID: id, Site: site, Priority: priority, Designated: designated}
		if designatedAgo > 0 {
			r.DesignatedDate = base.Add(-designatedAgo)
		}

		return r
	}

	ids := func(records []*pdp.Record) []string {
		var result []string
		for _, r := range records {
			result = append(result, r.ID)
		}

		return result
	}

	Describe("classify", func() {
		It("Should cover every combination", func() {
			Expect(classify(true, true)).To(Equal(designatedFresh))
			Expect(classify(true, false)).To(Equal(designatedStale))
			Expect(classify(false, true)).To(Equal(standbyFresh))
			Expect(classify(false, false)).To(Equal(standbyStale))
			Expect(designatedStale.String()).To(Equal("designated/stale"))
		})
	})

	Describe("sanitizeCandidates", func() {
		It("Should keep standby candidates when none are designated", func() {
			candidates := []*pdp.Record{rec("a", "", 1, false, 0), rec("b", "", 1, false, 0)}
			Expect(ids(sanitizeCandidates(candidates))).To(Equal([]string{"a", "b"}))
		})

		It("Should drop standby candidates when designated ones are present", func() {
			candidates := []*pdp.Record{rec("a", "", 1, false, 0), rec("b", "", 1, true, time.Second), rec("c", "", 1, false, 0)}
			Expect(ids(sanitizeCandidates(candidates))).To(Equal([]string{"b"}))
		})

		It("Should be idempotent", func() {
			candidates := []*pdp.Record{rec("a", "", 1, true, time.Second), rec("b", "", 1, false, 0), rec("c", "", 1, true, time.Minute)}
			once := sanitizeCandidates(candidates)
			Expect(sanitizeCandidates(once)).To(Equal(once))

			standby := []*pdp.Record{rec("a", "", 1, false, 0)}
			Expect(sanitizeCandidates(sanitizeCandidates(standby))).To(Equal(sanitizeCandidates(standby)))
		})
	})

	Describe("mostRecentPrimary", func() {
		It("Should use the latest designated of all records for one candidate", func() {
			all := []*pdp.Record{rec("a", "", 1, false, time.Hour), rec("b", "", 1, false, time.Minute), rec("c", "", 1, false, 0)}
			Expect(mostRecentPrimary(all, all[2:]).ID).To(Equal("b"))
			Expect(mostRecentPrimary(all, nil).ID).To(Equal("b"))
		})

		It("Should use the earliest claimant when all records are designated candidates", func() {
			all := []*pdp.Record{rec("a", "", 1, true, time.Minute), rec("b", "", 1, true, time.Hour)}
			Expect(mostRecentPrimary(all, all).ID).To(Equal("b"))
		})

		It("Should use the latest designated when all records are standby candidates", func() {
			all := []*pdp.Record{rec("a", "", 1, false, time.Minute), rec("b", "", 1, false, time.Hour)}
			Expect(mostRecentPrimary(all, all).ID).To(Equal("a"))
		})

		It("Should use the most recently deposed node when some designated nodes are candidates", func() {
			all := []*pdp.Record{
				rec("a", "", 1, true, time.Hour),
				rec("b", "", 1, true, 2*time.Hour),
				rec("c", "", 1, false, 3*time.Hour),
				rec("d", "", 1, false, 4*time.Hour),
			}
			Expect(mostRecentPrimary(all, all[:2]).ID).To(Equal("c"))
		})

		It("Should use the latest designated of all records when some standby nodes are candidates", func() {
			all := []*pdp.Record{
				rec("a", "", 1, false, time.Hour),
				rec("b", "", 1, false, 2*time.Hour),
				rec("c", "", 1, false, 3*time.Hour),
			}
			Expect(mostRecentPrimary(all, all[1:]).ID).To(Equal("a"))
		})

		It("Should pick the first record on ties", func() {
			all := []*pdp.Record{rec("a", "", 1, false, 0), rec("b", "", 1, false, 0)}
			Expect(mostRecentPrimary(all, nil).ID).To(Equal("a"))
			Expect(mostRecentPrimary(nil, nil)).To(BeNil())
		})
	})

	Describe("pickWinner", func() {
		It("Should handle empty and single candidates", func() {
			winner, losers := pickWinner(nil, nil)
			Expect(winner).To(BeNil())
			Expect(losers).To(BeEmpty())

			only := rec("a", "", 1, false, 0)
			winner, losers = pickWinner([]*pdp.Record{only}, nil)
			Expect(winner).To(Equal(only))
			Expect(losers).To(BeEmpty())
		})

		It("Should prefer the lower priority within a site", func() {
			candidates := []*pdp.Record{rec("a", "s1", 5, false, 0), rec("b", "s1", 2, false, 0), rec("c", "s1", 3, false, 0)}
			winner, losers := pickWinner(candidates, candidates[0])
			Expect(winner.ID).To(Equal("b"))
			Expect(ids(losers)).To(ConsistOf("a", "c"))
		})

		It("Should break priority ties by id", func() {
			candidates := []*pdp.Record{rec("pdp2", "s1", 1, false, 0), rec("pdp10", "s1", 1, false, 0), rec("pdp1", "s1", 1, false, 0)}
			winner, losers := pickWinner(candidates, candidates[0])
			Expect(winner.ID).To(Equal("pdp1"))
			Expect(ids(losers)).To(ConsistOf("pdp2", "pdp10"))
		})

		It("Should prefer the site of the recent primary", func() {
			candidates := []*pdp.Record{rec("a", "s1", 1, false, 0), rec("b", "s2", 9, false, 0), rec("c", "s2", 5, false, 0)}
			recent := rec("x", "s2", 1, false, time.Minute)

			winner, losers := pickWinner(candidates, recent)
			Expect(winner.ID).To(Equal("c"))
			Expect(ids(losers)).To(ConsistOf("a", "b"))
		})

		It("Should fall back to other sites", func() {
			candidates := []*pdp.Record{rec("b", "s1", 2, false, 0), rec("a", "s2", 2, false, 0)}
			recent := rec("x", "s3", 1, false, time.Minute)

			winner, losers := pickWinner(candidates, recent)
			Expect(winner.ID).To(Equal("a"))
			Expect(ids(losers)).To(Equal([]string{"b"}))
		})

		It("Should be deterministic", func() {
			candidates := []*pdp.Record{
				rec("d", "s1", 3, false, 0),
				rec("b", "s2", 1, false, 0),
				rec("c", "s1", 3, false, 0),
				rec("a", "s2", 1, false, 0),
			}
			recent := rec("x", "s1", 1, false, time.Minute)

			first, _ := pickWinner(candidates, recent)
			for i := 0; i < 10; i++ {
				winner, _ := pickWinner(candidates, recent)
				Expect(winner).To(Equal(first))
			}
			Expect(first.ID).To(Equal("c"))
		})
	})
})

// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package election

import (
	"github.com/onap/policy-drools-pdp-sub003/pdp"
)

// sanitizeCandidates drops standby candidates when any designated candidate is present
func sanitizeCandidates(candidates []*pdp.Record) []*pdp.Record {
	if !containsDesignated(candidates) {
		return candidates
	}

	var result []*pdp.Record
	for _, c := range candidates {
		if c.Designated {
			result = append(result, c)
		}
	}

	return result
}

// mostRecentPrimary finds the record whose site is preferred when picking between candidates
func mostRecentPrimary(records []*pdp.Record, candidates []*pdp.Record) *pdp.Record {
	switch {
	case len(candidates) <= 1:
		return latestDesignated(records)

	case len(candidates) == len(records):
		if allDesignated(candidates) {
			return earliestDesignated(candidates)
		}

		return latestDesignated(records)

	case containsDesignated(candidates):
		return latestDesignated(excluding(records, candidates))

	default:
		return latestDesignated(records)
	}
}

// pickWinner reduces candidates to a single winner preferring the site of recent, every
// candidate that lost a comparison is returned in losers
func pickWinner(candidates []*pdp.Record, recent *pdp.Record) (winner *pdp.Record, losers []*pdp.Record) {
	switch len(candidates) {
	case 0:
		return nil, nil
	case 1:
		return candidates[0], nil
	}

	site := ""
	if recent != nil {
		site = recent.Site
	}

	compete := func(current *pdp.Record, challenger *pdp.Record) *pdp.Record {
		if current == nil {
			return challenger
		}

		if challenger.ComparePriority(current) < 0 {
			losers = append(losers, current)
			return challenger
		}

		losers = append(losers, challenger)
		return current
	}

	var same, other *pdp.Record
	for _, c := range candidates {
		if c.Site == site {
			same = compete(same, c)
		} else {
			other = compete(other, c)
		}
	}

	if same == nil {
		return other, losers
	}

	if other != nil {
		losers = append(losers, other)
	}

	return same, losers
}

func containsDesignated(records []*pdp.Record) bool {
	for _, rec := range records {
		if rec.Designated {
			return true
		}
	}

	return false
}

func allDesignated(records []*pdp.Record) bool {
	for _, rec := range records {
		if !rec.Designated {
			return false
		}
	}

	return len(records) > 0
}

func excluding(records []*pdp.Record, remove []*pdp.Record) []*pdp.Record {
	drop := make(map[string]struct{}, len(remove))
	for _, rec := range remove {
		drop[rec.ID] = struct{}{}
	}

	var result []*pdp.Record
	for _, rec := range records {
		if _, ok := drop[rec.ID]; !ok {
			result = append(result, rec)
		}
	}

	return result
}

// latestDesignated is the record with the newest designated date, the first one wins ties
func latestDesignated(records []*pdp.Record) *pdp.Record {
	var found *pdp.Record
	for _, rec := range records {
		if found == nil || rec.DesignatedDate.After(found.DesignatedDate) {
			found = rec
		}
	}

	return found
}

// earliestDesignated is the record with the oldest designated date, the first one wins ties
func earliestDesignated(records []*pdp.Record) *pdp.Record {
	var found *pdp.Record
	for _, rec := range records {
		if found == nil || rec.DesignatedDate.Before(found.DesignatedDate) {
			found = rec
		}
	}

	return found
}

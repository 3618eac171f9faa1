// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

// Package pdp holds the persisted liveness and designation record shared by
// every node taking part in the active/standby election
package pdp

import (
	"strings"
	"time"
)

// Record is the liveness and designation row for one node
type Record struct {
	// ID is the stable identity of the node, never reused
	ID string `json:"id"`
	// Designated indicates the node claims to be the active node
	Designated bool `json:"designated"`
	// Priority breaks ties between candidates, lower wins
	Priority int `json:"priority"`
	// Site is the deployment site label used for affinity
	Site string `json:"site,omitempty"`
	// UpdatedDate is the time of the last heartbeat
	UpdatedDate time.Time `json:"updated_date"`
	// DesignatedDate is the last time the node transitioned to designated
	DesignatedDate time.Time `json:"designated_date"`
}

// New creates a record for a node that has never heart beaten
func New(id string, site string, priority int) *Record {
	return &Record{
		ID:       id,
		Site:     site,
		Priority: priority,
	}
}

// Copy creates an independent copy of the record
func (r *Record) Copy() *Record {
	if r == nil {
		return nil
	}

	c := *r

	return &c
}

// IsFresh determines if the record heart beat within stale of now
func (r *Record) IsFresh(now time.Time, stale time.Duration) bool {
	return now.Sub(r.UpdatedDate) < stale
}

// ComparePriority compares r with other for the purpose of picking a
// winner, negative when r outranks other, positive when other outranks r.
//
// The lower priority wins, equal priorities are settled by the lexically
// smaller id
func (r *Record) ComparePriority(other *Record) int {
	switch {
	case r.Priority < other.Priority:
		return -1
	case r.Priority > other.Priority:
		return 1
	default:
		return strings.Compare(r.ID, other.ID)
	}
}

// HasDesignatedFailed is true when no record in records is both designated
// and fresh
func HasDesignatedFailed(records []*Record, now time.Time, stale time.Duration) bool {
	for _, r := range records {
		if r.Designated && r.IsFresh(now, stale) {
			return false
		}
	}

	return true
}

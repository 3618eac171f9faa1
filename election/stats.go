// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package election

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	roundsCtr = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "pdp_election_rounds_total",
		Help: "Number of election rounds that were run",
	}, []string{"identity"})

	roundTime = prometheus.NewSummaryVec(prometheus.SummaryOpts{
		Name: "pdp_election_round_time_seconds",
		Help: "Time taken to complete an election round",
	}, []string{"identity"})

	designatedGauge = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "pdp_election_designated",
		Help: "1 when this node is the designated active node",
	}, []string{"identity"})

	candidatesGauge = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "pdp_election_candidates",
		Help: "Number of candidates found in the most recent round",
	}, []string{"identity"})

	errorsCtr = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "pdp_election_errors_total",
		Help: "Number of failed storage or status operations",
	}, []string{"identity", "operation"})

	heartbeatsCtr = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "pdp_election_heartbeats_total",
		Help: "Number of heartbeats that were recorded",
	}, []string{"identity"})

	heartbeatFailCtr = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "pdp_election_heartbeat_failures_total",
		Help: "Number of heartbeats that could not be recorded",
	}, []string{"identity"})

	watchdogRestartCtr = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "pdp_election_watchdog_restarts_total",
		Help: "Number of times the watchdog restarted a stalled task",
	}, []string{"identity", "task"})

	designationChangeCtr = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "pdp_election_designation_changes_total",
		Help: "Number of times the local designation flag changed",
	}, []string{"identity"})
)

func init() {
	prometheus.MustRegister(roundsCtr)
	prometheus.MustRegister(roundTime)
	prometheus.MustRegister(designatedGauge)
	prometheus.MustRegister(candidatesGauge)
	prometheus.MustRegister(errorsCtr)
	prometheus.MustRegister(heartbeatsCtr)
	prometheus.MustRegister(heartbeatFailCtr)
	prometheus.MustRegister(watchdogRestartCtr)
	prometheus.MustRegister(designationChangeCtr)
}

// Copyright (c) 2017-2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

// Package statistics exposes the node status, Prometheus metrics and a health
// check over HTTP and optionally maintains a status file on disk
package statistics

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"runtime"
	"sync"
	"time"

	"github.com/nats-io/nats-server/v2/server/pse"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/onap/policy-drools-pdp-sub003/build"
	"github.com/onap/policy-drools-pdp-sub003/config"
)

// Engine is the election engine being reported on
type Engine interface {
	Identity() string
	IsDesignated() bool
	CurrentActive() string
	LastActive() string
	CheckHealth() error
}

type cinfo struct {
	Build      *build.Info `json:"build"`
	System     sysinfo     `json:"system"`
	ConfigFile string      `json:"config_file"`
	Status     *NodeStatus `json:"status"`
}

type sysinfo struct {
	RSS   int64   `json:"rss"`
	PCPU  float64 `json:"cpu_percent"`
	Cores int     `json:"cpu_cores"`
	Go    string  `json:"go"`
}

var (
	buildInfo = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "pdp_build_info",
		Help: "Build information about the running node",
	}, []string{"version", "sha"})

	registerOnce sync.Once
)

// statusFileInterval is how often the status file is rewritten
const statusFileInterval = 10 * time.Second

// Server serves statistics about a running election engine
type Server struct {
	cfg     *config.Config
	engine  Engine
	log     *logrus.Entry
	mux     *http.ServeMux
	started time.Time
	now     func() time.Time
}

// New creates a statistics server for engine
func New(cfg *config.Config, engine Engine, log *logrus.Entry) *Server {
	s := &Server{
		cfg:     cfg,
		engine:  engine,
		log:     log.WithField("component", "statistics"),
		mux:     http.NewServeMux(),
		started: time.Now(),
		now:     time.Now,
	}

	s.mux.HandleFunc("/pdp/", s.handleRoot)
	s.mux.HandleFunc("/pdp/health", s.handleHealth)
	s.mux.Handle("/pdp/prometheus", promhttp.Handler())

	return s
}

// Handler is the HTTP handler serving all statistics endpoints
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Status is the current status of the node
func (s *Server) Status() *NodeStatus {
	status := &NodeStatus{
		Identity:      s.engine.Identity(),
		Designated:    s.engine.IsDesignated(),
		CurrentActive: s.engine.CurrentActive(),
		LastActive:    s.engine.LastActive(),
		Healthy:       true,
		Uptime:        int64(s.now().Sub(s.started).Seconds()),
		Timestamp:     s.now().UTC(),
	}

	err := s.engine.CheckHealth()
	if err != nil {
		status.Healthy = false
		status.HealthError = err.Error()
	}

	return status
}

// Start serves statistics on the configured port and maintains the status
// file until ctx is done, it is a noop when neither is configured
func (s *Server) Start(ctx context.Context, wg *sync.WaitGroup) {
	defer wg.Done()

	registerOnce.Do(func() {
		prometheus.MustRegister(buildInfo)
		buildInfo.WithLabelValues(build.Version, build.SHA).Set(1)
	})

	if s.cfg.StatusFile != "" {
		wg.Add(1)
		go s.statusFileWriter(ctx, wg)
	}

	if s.cfg.StatsPort == 0 {
		s.log.Infof("Statistics gathering disabled, set pdp.stats_port")
		return
	}

	addr := fmt.Sprintf("%s:%d", s.cfg.StatsListenAddress, s.cfg.StatsPort)
	srv := &http.Server{Addr: addr, Handler: s.mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()

		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		srv.Shutdown(sctx)
	}()

	s.log.Infof("Starting statistic reporting on http://%s/pdp/", addr)

	err := srv.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.log.Errorf("Statistics server failed: %v", err)
	}
}

func (s *Server) statusFileWriter(ctx context.Context, wg *sync.WaitGroup) {
	defer wg.Done()

	ticker := time.NewTicker(statusFileInterval)
	defer ticker.Stop()

	for {
		err := s.WriteStatusFile()
		if err != nil {
			s.log.Errorf("Could not write status file %s: %v", s.cfg.StatusFile, err)
		}

		select {
		case <-ticker.C:
		case <-ctx.Done():
			return
		}
	}
}

// WriteStatusFile writes the current status to the configured status file
func (s *Server) WriteStatusFile() error {
	if s.cfg.StatusFile == "" {
		return fmt.Errorf("no status file configured")
	}

	return s.Status().WriteFile(s.cfg.StatusFile)
}

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	var rss, vss int64
	var pcpu float64

	pse.ProcUsage(&pcpu, &rss, &vss)

	sinfo := cinfo{
		Build:      &build.Info{},
		ConfigFile: s.cfg.ConfigFile,
		Status:     s.Status(),
		System: sysinfo{
			RSS:   rss,
			PCPU:  pcpu,
			Cores: runtime.NumCPU(),
			Go:    runtime.Version(),
		},
	}

	s.writeJSON(w, http.StatusOK, sinfo)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	res := map[string]any{"healthy": true}
	code := http.StatusOK

	err := s.engine.CheckHealth()
	if err != nil {
		res["healthy"] = false
		res["error"] = err.Error()
		code = http.StatusServiceUnavailable
	}

	s.writeJSON(w, code, res)
}

func (s *Server) writeJSON(w http.ResponseWriter, code int, data any) {
	j, err := json.Marshal(data)
	if err != nil {
		s.log.Errorf("Could not encode statistics: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(j)
}

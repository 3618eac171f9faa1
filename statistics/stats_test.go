// Copyright (c) 2017-2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package statistics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"

	"github.com/onap/policy-drools-pdp-sub003/config"
)

func TestStatistics(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Statistics")
}

type fakeEngine struct {
	designated bool
	current    string
	last       string
	health     error
}

func (f *fakeEngine) Identity() string      { return "pdp1" }
func (f *fakeEngine) IsDesignated() bool    { return f.designated }
func (f *fakeEngine) CurrentActive() string { return f.current }
func (f *fakeEngine) LastActive() string    { return f.last }
func (f *fakeEngine) CheckHealth() error    { return f.health }

var _ = Describe("Statistics", func() {
	var (
		cfg    *config.Config
		engine *fakeEngine
		srv    *Server
	)

	BeforeEach(func() {
		cfg = config.NewConfigForTests()
		cfg.ConfigFile = "/etc/pdpha/pdpha.conf"
		engine = &fakeEngine{designated: true, current: "pdp1", last: "pdp2"}

		logger := logrus.New()
		logger.SetOutput(GinkgoWriter)
		srv = New(cfg, engine, logrus.NewEntry(logger))
	})

	get := func(path string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		return rec
	}

	Describe("/pdp/", func() {
		It("Should report the node status", func() {
			rec := get("/pdp/")
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Header().Get("Content-Type")).To(Equal("application/json"))

			body := rec.Body.String()
			Expect(gjson.Get(body, "config_file").String()).To(Equal("/etc/pdpha/pdpha.conf"))
			Expect(gjson.Get(body, "status.identity").String()).To(Equal("pdp1"))
			Expect(gjson.Get(body, "status.designated").Bool()).To(BeTrue())
			Expect(gjson.Get(body, "status.current_active").String()).To(Equal("pdp1"))
			Expect(gjson.Get(body, "status.last_active").String()).To(Equal("pdp2"))
			Expect(gjson.Get(body, "status.healthy").Bool()).To(BeTrue())
			Expect(gjson.Get(body, "build.version").Exists()).To(BeTrue())
			Expect(gjson.Get(body, "system.cpu_cores").Int()).To(BeNumerically(">", 0))
		})
	})

	Describe("/pdp/health", func() {
		It("Should be OK when healthy", func() {
			rec := get("/pdp/health")
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(gjson.Get(rec.Body.String(), "healthy").Bool()).To(BeTrue())
		})

		It("Should fail when a task stalled", func() {
			engine.health = errors.New("heartbeat task stalled for 10s")

			rec := get("/pdp/health")
			Expect(rec.Code).To(Equal(http.StatusServiceUnavailable))
			Expect(gjson.Get(rec.Body.String(), "healthy").Bool()).To(BeFalse())
			Expect(gjson.Get(rec.Body.String(), "error").String()).To(Equal("heartbeat task stalled for 10s"))
		})
	})

	Describe("/pdp/prometheus", func() {
		It("Should serve metrics", func() {
			rec := get("/pdp/prometheus")
			Expect(rec.Code).To(Equal(http.StatusOK))
		})
	})

	Describe("Status files", func() {
		It("Should write and load the status", func() {
			cfg.StatusFile = filepath.Join(GinkgoT().TempDir(), "status.json")
			engine.health = errors.New("election task stalled for 1m0s")

			Expect(srv.WriteStatusFile()).To(Succeed())

			status, err := LoadNodeStatus(cfg.StatusFile)
			Expect(err).ToNot(HaveOccurred())
			Expect(status.Identity).To(Equal("pdp1"))
			Expect(status.Designated).To(BeTrue())
			Expect(status.FileName).To(Equal(cfg.StatusFile))
			Expect(status.CheckFileAge(time.Minute)).To(Succeed())
			Expect(status.CheckActive()).To(Succeed())
			Expect(status.CheckHealthy()).To(MatchError("unhealthy: election task stalled for 1m0s"))
		})

		It("Should detect old files and missing active nodes", func() {
			file := filepath.Join(GinkgoT().TempDir(), "status.json")
			Expect((&NodeStatus{Identity: "pdp1", Healthy: true}).WriteFile(file)).To(Succeed())

			old := time.Now().Add(-time.Hour)
			Expect(os.Chtimes(file, old, old)).To(Succeed())

			status, err := LoadNodeStatus(file)
			Expect(err).ToNot(HaveOccurred())
			Expect(status.CheckFileAge(time.Minute)).To(MatchError("older than 1m0s"))
			Expect(status.CheckActive()).To(MatchError("no active node"))
			Expect(status.CheckHealthy()).To(Succeed())
		})

		It("Should require a configured file", func() {
			Expect(srv.WriteStatusFile()).To(MatchError("no status file configured"))
		})
	})
})

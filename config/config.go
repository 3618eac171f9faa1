// Copyright (c) 2017-2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

// Package config loads the pdpha configuration file
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"

	"github.com/onap/policy-drools-pdp-sub003/confkey"
	"github.com/onap/policy-drools-pdp-sub003/election"
)

// DefaultConfigFile is the configuration file used when none is given
const DefaultConfigFile = "/etc/pdpha/pdpha.conf"

// Config represents the pdpha configuration
type Config struct {
	// The identity this node is known as in the election, when empty it's derived from the operating system hostname
	Identity string `confkey:"identity" environment:"PDP_IDENTITY" validate:"shellsafe"`

	// The file to write logs to, when set to an empty string logging will be to the console, when set to 'discard' logging will be disabled
	LogFile string `confkey:"logfile" type:"path_string"`

	// The lowest level log to add to the logfile
	LogLevel string `confkey:"loglevel" default:"info" validate:"enum=debug,info,warn,error,fatal"`

	// Disables or enable CLI color
	Color bool `confkey:"color" default:"true"`

	// The site this node is deployed in, nodes in the same site as the most recent active node are preferred
	Site string `confkey:"pdp.site" environment:"PDP_SITE" validate:"maxlength=50"`

	// Priority used to pick between candidates, the lowest value wins
	Priority int `confkey:"pdp.priority" default:"0"`

	// How often the node records its liveness
	HeartbeatInterval time.Duration `confkey:"pdp.heartbeat_interval_ms" type:"milliseconds" default:"3000"`

	// How often an election round is run
	ElectionInterval time.Duration `confkey:"pdp.election_interval_ms" type:"milliseconds" default:"2000"`

	// How long after its last heartbeat a node is considered failed
	StaleTimeout time.Duration `confkey:"pdp.stale_timeout_ms" type:"milliseconds" default:"15000"`

	// The storage used for the shared election records
	Store string `confkey:"pdp.store" default:"kv" validate:"enum=memory,kv,sql,bolt"`

	// The NATS Key-Value bucket holding election records
	StoreKVBucket string `confkey:"pdp.store.kv_bucket" default:"PDP_ELECTION" validate:"shellsafe"`

	// The number of replicas to use when creating the election records bucket
	StoreKVReplicas int `confkey:"pdp.store.kv_replicas" default:"1"`

	// The PostgreSQL connection string used by the sql store
	StoreSQLDSN string `confkey:"pdp.store.sql_dsn" environment:"PDP_SQL_DSN"`

	// The database file used by the bolt store
	StoreBoltFile string `confkey:"pdp.store.bolt_file" type:"path_string" default:"/var/lib/pdpha/pdp.db"`

	// The NATS Key-Value bucket holding the standby status of every node
	StatusKVBucket string `confkey:"pdp.status.kv_bucket" default:"PDP_STATUS" validate:"shellsafe"`

	// The NATS servers to connect to
	NATSServers []string `confkey:"pdp.nats_servers" type:"comma_split" environment:"PDP_NATS_SERVERS" default:"nats://localhost:4222"`

	// Publish lifecycle events when the designation changes
	LifecycleEvents bool `confkey:"pdp.lifecycle_events" default:"true"`

	// The subject prefix lifecycle events are published to, the identity is appended
	LifecycleSubject string `confkey:"pdp.lifecycle_subject" default:"pdp.lifecycle" validate:"shellsafe"`

	// The port to listen on for statistics and health checks, 0 disables it
	StatsPort int `confkey:"pdp.stats_port" default:"0"`

	// The address to listen on for statistics and health checks
	StatsListenAddress string `confkey:"pdp.stats_listen_address" default:"127.0.0.1"`

	// A file the node status is regularly written to, used by the status command
	StatusFile string `confkey:"pdp.status_file" type:"path_string"`

	// ConfigFile is the main configuration that got parsed
	ConfigFile string

	// ParsedFiles is a list of all files parsed to create the current config
	ParsedFiles []string

	rawOpts map[string]string
}

// NewDefaultConfig creates a configuration using only defaults and the environment
func NewDefaultConfig() (*Config, error) {
	c, err := newConfig()
	if err != nil {
		return nil, err
	}

	err = c.normalize()
	if err != nil {
		return nil, err
	}

	return c, nil
}

// NewConfig parses a config file and return the config
func NewConfig(path string) (*Config, error) {
	c, err := newConfig()
	if err != nil {
		return nil, err
	}

	if !filepath.IsAbs(path) {
		path, _ = filepath.Abs(path)
	}

	c.ConfigFile = path

	err = parseConfig(path, c, c.rawOpts)
	if err != nil {
		return nil, err
	}

	err = c.normalize()
	if err != nil {
		return nil, err
	}

	return c, nil
}

// NewConfigForTests creates a configuration for use in testing tools
func NewConfigForTests() *Config {
	c, _ := newConfig()
	c.Identity = "ginkgo.example.net"
	c.Store = "memory"
	c.LogLevel = "fatal"
	c.LogFile = "discard"
	c.LifecycleEvents = false
	c.HeartbeatInterval = 10 * time.Millisecond
	c.ElectionInterval = 10 * time.Millisecond
	c.StaleTimeout = 100 * time.Millisecond

	return c
}

// ElectionConfig is the configuration for the election engine
func (c *Config) ElectionConfig() election.Config {
	return election.Config{
		Identity:          c.Identity,
		Site:              c.Site,
		Priority:          c.Priority,
		HeartbeatInterval: c.HeartbeatInterval,
		ElectionInterval:  c.ElectionInterval,
		StaleTimeout:      c.StaleTimeout,
	}
}

// LifecycleSubjectFor is the subject lifecycle events for this node are published to
func (c *Config) LifecycleSubjectFor() string {
	return fmt.Sprintf("%s.%s", c.LifecycleSubject, c.Identity)
}

// HasOption determines if a specific option was set from a config key.
// The option given would be something like `pdp.store` and true would
// indicate that it was set by config vs using defaults
func (c *Config) HasOption(option string) bool {
	_, ok := c.rawOpts[option]

	return ok
}

// Option retrieves the raw string representation of a given option
// from that was loaded from the configuration
func (c *Config) Option(option string, deflt string) string {
	v, ok := c.rawOpts[option]
	if !ok {
		return deflt
	}

	return v
}

// SetOption sets a raw string option, setting a main config item value here
// does not update the typed value
func (c *Config) SetOption(option string, value string) {
	c.rawOpts[option] = value
}

// Validate checks the configuration is usable
func (c *Config) Validate() error {
	err := confkey.Validate(c)
	if err != nil {
		return err
	}

	var errs []error

	if c.Identity == "" {
		errs = append(errs, errors.New("identity is required"))
	}

	if c.HeartbeatInterval <= 0 {
		errs = append(errs, fmt.Errorf("pdp.heartbeat_interval_ms should be positive"))
	}

	if c.ElectionInterval <= 0 {
		errs = append(errs, fmt.Errorf("pdp.election_interval_ms should be positive"))
	}

	if c.StaleTimeout <= c.HeartbeatInterval {
		errs = append(errs, fmt.Errorf("pdp.stale_timeout_ms %v should be longer than the heartbeat interval %v", c.StaleTimeout, c.HeartbeatInterval))
	}

	switch c.Store {
	case "sql":
		if c.StoreSQLDSN == "" {
			errs = append(errs, fmt.Errorf("pdp.store.sql_dsn is required for the sql store"))
		}
	case "bolt":
		if c.StoreBoltFile == "" {
			errs = append(errs, fmt.Errorf("pdp.store.bolt_file is required for the bolt store"))
		}
	case "kv":
		if c.StoreKVReplicas < 1 {
			errs = append(errs, fmt.Errorf("pdp.store.kv_replicas should be at least 1"))
		}
	}

	if c.StatsPort < 0 || c.StatsPort > 65535 {
		errs = append(errs, fmt.Errorf("pdp.stats_port %d is invalid", c.StatsPort))
	}

	return errors.Join(errs...)
}

func (c *Config) normalize() error {
	if c.Identity == "" {
		hn, err := os.Hostname()
		if err != nil {
			return fmt.Errorf("could not determine hostname: %s", err)
		}

		// short names are resolved to a fqdn where possible, kubernetes
		// pods have no domain so the name is used as is
		c.Identity = hn
		if strings.Count(hn, ".") == 0 && os.Getenv("KUBERNETES_SERVICE_HOST") == "" {
			if fqdn, _ := DNSFQDN(); fqdn != "" {
				c.Identity = fqdn
			}
		}

		if c.Identity == "" {
			return errors.New("could not determine identity from os.Hostname, please set identity in the configuration")
		}
	}

	if c.LogLevel == "" {
		c.LogLevel = "info"
	}

	if runtime.GOOS == "windows" {
		c.Color = false
	}

	if !c.Color {
		color.NoColor = true
	}

	return c.Validate()
}

func newConfig() (*Config, error) {
	m := &Config{
		rawOpts: make(map[string]string),
	}

	err := confkey.SetStructDefaults(m)
	if err != nil {
		log.Errorf("Config creation failed: %s", err)
		return m, err
	}

	return m, nil
}

// Copyright (c) 2019-2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package statistics

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// NodeStatus describes the current election status of a node
type NodeStatus struct {
	Identity      string    `json:"identity"`
	Designated    bool      `json:"designated"`
	CurrentActive string    `json:"current_active"`
	LastActive    string    `json:"last_active"`
	Healthy       bool      `json:"healthy"`
	HealthError   string    `json:"health_error,omitempty"`
	Uptime        int64     `json:"uptime"`
	Timestamp     time.Time `json:"timestamp"`
	FileName      string    `json:"-"`
	ModTime       time.Time `json:"-"`
}

// LoadNodeStatus reads a status file written by a running node
func LoadNodeStatus(f string) (*NodeStatus, error) {
	raw, err := os.ReadFile(f)
	if err != nil {
		return nil, err
	}

	status := &NodeStatus{}
	err = json.Unmarshal(raw, status)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(f)
	if err != nil {
		return nil, err
	}

	status.FileName = f
	status.ModTime = stat.ModTime()

	return status, nil
}

// WriteFile atomically writes the status to f
func (s *NodeStatus) WriteFile(f string) error {
	j, err := json.Marshal(s)
	if err != nil {
		return err
	}

	tf, err := os.CreateTemp(filepath.Dir(f), "")
	if err != nil {
		return err
	}
	defer os.Remove(tf.Name())

	_, err = tf.Write(j)
	tf.Close()
	if err != nil {
		return err
	}

	err = os.Chmod(tf.Name(), 0644)
	if err != nil {
		return err
	}

	return os.Rename(tf.Name(), f)
}

// CheckFileAge checks the status file was updated within maxAge
func (s *NodeStatus) CheckFileAge(maxAge time.Duration) error {
	if s.ModTime.Before(time.Now().Add(-1 * maxAge)) {
		return fmt.Errorf("older than %v", maxAge)
	}

	return nil
}

// CheckHealthy checks the node reported its tasks as healthy
func (s *NodeStatus) CheckHealthy() error {
	if !s.Healthy {
		return fmt.Errorf("unhealthy: %s", s.HealthError)
	}

	return nil
}

// CheckActive checks the node knows of an active node in the cluster
func (s *NodeStatus) CheckActive() error {
	if s.CurrentActive == "" {
		return fmt.Errorf("no active node")
	}

	return nil
}

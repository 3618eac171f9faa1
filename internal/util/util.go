// Copyright (c) 2021-2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package util

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/gofrs/uuid"
	"github.com/xlab/tablewriter"
)

var (
	regexpTrue  = regexp.MustCompile(`(?i)^(1|yes|true|y|t)$`)
	regexpFalse = regexp.MustCompile(`(?i)^(0|no|false|n|f)$`)
)

// FileExist checks if a file exist on disk
func FileExist(path string) bool {
	if path == "" {
		return false
	}

	_, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false
		}
	}

	return true
}

// HomeDir determines the home location without using the user package or requiring cgo
//
// On Unix it needs HOME set and on windows HOMEDRIVE and HOMEDIR
func HomeDir() (string, error) {
	if os.Getenv("HOME") != "" {
		return os.Getenv("HOME"), nil
	}

	drive := os.Getenv("HOMEDRIVE")
	home := os.Getenv("HOMEDIR")

	if home == "" || drive == "" {
		return "", fmt.Errorf("cannot determine home dir, ensure HOME or HOMEDIR and HOMEDRIVE are set")
	}

	return filepath.Join(drive, home), nil
}

// ExpandPath expands a leading ~ in p to the home directory
func ExpandPath(p string) (string, error) {
	if !strings.HasPrefix(p, "~") {
		return p, nil
	}

	home, err := HomeDir()
	if err != nil {
		return "", err
	}

	return strings.Replace(p, "~", home, 1), nil
}

// InterruptibleSleep sleep for the duration in a way that can be interrupted by the context.
// An error is returned if the context cancels the sleep
func InterruptibleSleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("sleep interrupted by context")
	}
}

// UniqueID creates a new unique ID, usually a v4 uuid, if that fails a random string based ID is made
func UniqueID() (id string) {
	uuid, err := uuid.NewV4()
	if err == nil {
		return uuid.String()
	}

	parts := []string{}
	parts = append(parts, randStringRunes(8))
	parts = append(parts, randStringRunes(4))
	parts = append(parts, randStringRunes(4))
	parts = append(parts, randStringRunes(12))

	return strings.Join(parts, "-")
}

func randStringRunes(n int) string {
	letterRunes := []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ")

	b := make([]rune, n)
	for i := range b {
		b[i] = letterRunes[rand.Intn(len(letterRunes))]
	}

	return string(b)
}

// StrToBool converts a typical boolean string to a boolean
func StrToBool(s string) (bool, error) {
	clean := strings.TrimSpace(s)

	if regexpTrue.MatchString(clean) {
		return true, nil
	}

	if regexpFalse.MatchString(clean) {
		return false, nil
	}

	return false, fmt.Errorf("cannot convert string value '%s' into a boolean", clean)
}

// StrToMillis parses a count of milliseconds into a duration
func StrToMillis(s string) (time.Duration, error) {
	ms, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid millisecond value %q: %w", s, err)
	}

	if ms < 0 {
		return 0, fmt.Errorf("invalid millisecond value %q: must not be negative", s)
	}

	return time.Duration(ms) * time.Millisecond, nil
}

// NewUTF8Table creates a table using UTF8 box drawing characters
func NewUTF8Table(hdr ...any) *tablewriter.Table {
	table := tablewriter.CreateTable()
	table.UTF8Box()

	if len(hdr) > 0 {
		table.AddHeaders(hdr...)
	}

	return table
}

// NewUTF8TableWithTitle creates a titled table using UTF8 box drawing characters
func NewUTF8TableWithTitle(title string, hdr ...any) *tablewriter.Table {
	table := NewUTF8Table(hdr...)
	table.AddTitle(title)

	return table
}

// DumpJSONIndent dumps data to stdout as indented JSON
func DumpJSONIndent(data any) error {
	j, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(j))

	return nil
}

// RenderDuration create a string similar to what %v on a duration would but it supports days
func RenderDuration(d time.Duration) string {
	if d == math.MaxInt64 {
		return "never"
	}

	tsecs := d / time.Second
	tmins := tsecs / 60
	thrs := tmins / 60
	tdays := thrs / 24

	if tdays > 0 {
		return fmt.Sprintf("%dd%dh%dm%ds", tdays, thrs%24, tmins%60, tsecs%60)
	}

	if thrs > 0 {
		return fmt.Sprintf("%dh%dm%ds", thrs, tmins%60, tsecs%60)
	}

	if tmins > 0 {
		return fmt.Sprintf("%dm%ds", tmins, tsecs%60)
	}

	return fmt.Sprintf("%.2fs", d.Seconds())
}

// PromptForConfirmation asks for confirmation on the CLI
func PromptForConfirmation(format string, a ...any) (bool, error) {
	ans := false
	err := survey.AskOne(&survey.Confirm{
		Message: fmt.Sprintf(format, a...),
		Default: ans,
	}, &ans)

	return ans, err
}

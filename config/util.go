// Copyright (c) 2017-2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"bufio"
	"fmt"
	"io"
	"net"
	"os"
	"regexp"
	"strings"

	"github.com/onap/policy-drools-pdp-sub003/confkey"
)

var (
	itemRegex = regexp.MustCompile(`(.+?)\s*=\s*(.+)`)
	skipRegex = regexp.MustCompile(`^#|^$`)
)

// DNSFQDN attempts to find the FQDN using DNS resolution
func DNSFQDN() (string, error) {
	hostname, err := os.Hostname()
	if err != nil {
		return "", err
	}

	addrs, err := net.LookupIP(hostname)
	if err != nil {
		return "", err
	}

	for _, addr := range addrs {
		if ipv4 := addr.To4(); ipv4 != nil {
			hosts, err := net.LookupAddr(ipv4.String())
			if err != nil || len(hosts) == 0 {
				return "", err
			}

			// return fqdn without trailing dot
			return strings.TrimSuffix(hosts[0], "."), nil
		}
	}

	return "", fmt.Errorf("could not resolve FQDN using DNS")
}

// parse a config file and fill in the given config structure based on its tags
func parseConfig(path string, config *Config, found map[string]string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	config.ParsedFiles = append(config.ParsedFiles, path)

	err = parseConfigContents(file, config, found)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	return nil
}

// parseConfigContents sets every known key on config, all keys including unknown
// ones are recorded in found so they can be retrieved using Option()
func parseConfigContents(content io.Reader, config any, found map[string]string) error {
	scanner := bufio.NewScanner(content)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		if skipRegex.MatchString(line) || !itemRegex.MatchString(line) {
			continue
		}

		matches := itemRegex.FindStringSubmatch(line)
		key := matches[1]
		value := strings.TrimSpace(matches[2])

		found[key] = value

		if config == nil {
			continue
		}

		if _, err := confkey.FieldWithKey(config, key); err != nil {
			continue
		}

		err := confkey.SetStructFieldWithKey(config, key, value)
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
	}

	return scanner.Err()
}

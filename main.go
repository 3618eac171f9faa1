// Copyright (c) 2017-2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/onap/policy-drools-pdp-sub003/cmd"
)

func main() {
	err := cmd.ParseCLI()
	if err != nil {
		log.Fatalf("Could not configure pdpha: %s", err)
		os.Exit(1)
	}

	err = cmd.Run()
	if err != nil {
		log.Fatalf("Could not run pdpha: %s", err)
		os.Exit(1)
	}
}

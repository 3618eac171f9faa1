// Copyright (c) 2017-2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"runtime"
	rd "runtime/debug"
	"sort"
	"strings"
	"sync"

	gnatsd "github.com/nats-io/nats-server/v2/server"

	"github.com/onap/policy-drools-pdp-sub003/build"
	"github.com/onap/policy-drools-pdp-sub003/config"
	"github.com/onap/policy-drools-pdp-sub003/confkey"
)

type buildinfoCommand struct {
	command
	dependencies bool
	defaults     bool
}

func (b *buildinfoCommand) Setup() (err error) {
	b.cmd = cli.app.Command("buildinfo", "Build Settings and Configuration")
	b.cmd.Flag("dependencies", "Show dependencies used to build the binary").Short('D').UnNegatableBoolVar(&b.dependencies)
	b.cmd.Flag("defaults", "Show the default configuration").UnNegatableBoolVar(&b.defaults)

	return
}

func (b *buildinfoCommand) Configure() (err error) {
	cfg, err = config.NewDefaultConfig()
	if err != nil {
		return fmt.Errorf("could not create default configuration: %s", err)
	}

	return
}

func (b *buildinfoCommand) Run(wg *sync.WaitGroup) (err error) {
	defer wg.Done()

	bi := &build.Info{}

	fmt.Println("pdpha build settings:")
	fmt.Println()
	fmt.Println("Build Data:")
	fmt.Println()
	fmt.Printf("     Version: %s\n", bi.Version())
	fmt.Printf("     Git SHA: %s\n", bi.SHA())
	fmt.Printf("  Build Date: %s\n", bi.BuildDate())
	fmt.Printf("     License: %s\n", bi.License())
	fmt.Printf("  Go Version: %s\n", runtime.Version())
	fmt.Println()
	fmt.Println("Election Defaults:")
	fmt.Println()
	fmt.Printf("  Heartbeat Interval: %v\n", cfg.HeartbeatInterval)
	fmt.Printf("   Election Interval: %v\n", cfg.ElectionInterval)
	fmt.Printf("       Stale Timeout: %v\n", cfg.StaleTimeout)
	fmt.Printf("               Store: %s\n", cfg.Store)
	fmt.Println()
	fmt.Printf("Embedded NATS Server Version: %s\n", gnatsd.VERSION)

	if b.defaults {
		b.printDefaults()
	}

	if b.dependencies {
		b.printGoMods()
	}

	return
}

func (b *buildinfoCommand) printDefaults() {
	fmt.Println()
	fmt.Println("Configuration Defaults:")
	fmt.Println()

	keys := confkey.Keys(cfg)
	longest := longestString(keys)

	format := fmt.Sprintf("  %%%ds = %%s\n", longest)
	for _, key := range keys {
		dflt, _ := confkey.DefaultString(cfg, key)
		if env, ok := confkey.KeyTag(cfg, key, "environment"); ok {
			dflt = strings.TrimSpace(fmt.Sprintf("%s (env %s)", dflt, env))
		}

		fmt.Printf(format, key, dflt)
	}
}

func (b *buildinfoCommand) printGoMods() {
	nfo, ok := rd.ReadBuildInfo()
	if !ok {
		fmt.Println("Could not read dependency information")
		return
	}

	fmt.Println()
	fmt.Println("Compile time module dependencies:")
	fmt.Println()

	if len(nfo.Deps) == 0 {
		fmt.Println("No module dependencies found")
		return
	}

	mods := []string{}
	versions := map[string]string{}
	for _, mod := range nfo.Deps {
		mods = append(mods, mod.Path)
		versions[mod.Path] = mod.Version
	}

	longest := longestString(mods)
	sort.Strings(mods)

	format := fmt.Sprintf("  %%%ds %%s\n", longest)
	for _, mod := range mods {
		fmt.Printf(format, mod, versions[mod])
	}
}

func longestString(list []string) int {
	longest := 0
	for _, i := range list {
		if len(i) > longest {
			longest = len(i)
		}
	}

	return min(longest, 50)
}

func init() {
	cli.commands = append(cli.commands, &buildinfoCommand{})
}

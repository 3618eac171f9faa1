// Copyright (c) 2017-2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

// Package cmd is the pdpha command line
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"sync"
	"syscall"
	"time"

	"github.com/choria-io/fisk"
	log "github.com/sirupsen/logrus"

	"github.com/onap/policy-drools-pdp-sub003/build"
	"github.com/onap/policy-drools-pdp-sub003/config"
	"github.com/onap/policy-drools-pdp-sub003/internal/util"
)

type application struct {
	app      *fisk.Application
	command  string
	commands []runableCmd
}

var (
	cli        = application{}
	debug      = false
	configFile = ""
	cfg        *config.Config
	ctx        context.Context
	cancel     func()
	mu         = &sync.Mutex{}
)

// ParseCLI parses the command line and configures the selected command
func ParseCLI() (err error) {
	cli.app = fisk.New("pdpha", "PDP active/standby election")
	cli.app.Version(build.Version)
	cli.app.Author("The Choria Project contributors")

	cli.app.Flag("debug", "Enable debug logging").Short('d').UnNegatableBoolVar(&debug)
	cli.app.Flag("config", "Config file to use").PlaceHolder("FILE").StringVar(&configFile)

	for _, cmd := range cli.commands {
		err = cmd.Setup()
		if err != nil {
			return err
		}
	}

	cli.command = fisk.MustParse(cli.app.Parse(os.Args[1:]))

	for _, cmd := range cli.commands {
		if cmd.FullCommand() == cli.command {
			err = cmd.Configure()
			if err != nil {
				return fmt.Errorf("%s failed to configure: %s", cmd.FullCommand(), err)
			}
		}
	}

	return nil
}

func commonConfigure() (err error) {
	if debug {
		log.SetOutput(os.Stdout)
		log.SetLevel(log.DebugLevel)
		log.Debug("Logging at debug level due to CLI override")
	}

	if configFile == "" && util.FileExist(config.DefaultConfigFile) {
		configFile = config.DefaultConfigFile
	}

	if configFile == "" {
		cfg, err = config.NewDefaultConfig()
	} else {
		cfg, err = config.NewConfig(configFile)
	}
	if err != nil {
		return fmt.Errorf("could not parse configuration: %s", err)
	}

	return setupLogging()
}

func setupLogging() error {
	logger := log.StandardLogger()

	switch cfg.LogFile {
	case "":
		logger.SetOutput(os.Stdout)
		logger.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	case "discard":
		logger.SetOutput(io.Discard)

	default:
		file, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0640)
		if err != nil {
			return fmt.Errorf("could not set up logging: %s", err)
		}

		logger.SetOutput(file)
		logger.SetFormatter(&log.JSONFormatter{})
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger.SetLevel(level)

	if debug {
		logger.SetLevel(log.DebugLevel)
	}

	return nil
}

// Run runs the command selected by ParseCLI
func Run() (err error) {
	wg := &sync.WaitGroup{}
	ran := false

	ctx, cancel = context.WithCancel(context.Background())
	defer cancel()

	go interruptWatcher()

	for _, cmd := range cli.commands {
		if cmd.FullCommand() == cli.command {
			ran = true

			wg.Add(1)
			err = cmd.Run(wg)
		}
	}

	if !ran {
		err = fmt.Errorf("could not run the CLI: Invalid command %s", cli.command)
	}

	if err != nil {
		cancel()
	}

	wg.Wait()

	return err
}

func interruptWatcher() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	for {
		select {
		case sig := <-sigs:
			switch sig {
			case syscall.SIGINT, syscall.SIGTERM:
				log.Infof("Shutting down on %s", sig)
				cancel()
			case syscall.SIGQUIT:
				dumpGoRoutines()
			}
		case <-ctx.Done():
			return
		}
	}
}

func dumpGoRoutines() {
	mu.Lock()
	defer mu.Unlock()

	outname := filepath.Join(os.TempDir(), fmt.Sprintf("pdpha-threaddump-%d-%d.txt", os.Getpid(), time.Now().UnixNano()))

	buf := make([]byte, 1<<20)
	stacklen := runtime.Stack(buf, true)

	err := os.WriteFile(outname, buf[:stacklen], 0644)
	if err != nil {
		log.Errorf("Could not produce thread dump: %s", err)
		return
	}

	log.Warnf("Produced thread dump to %s", outname)
}

// digs in the application.commands structure looking for a entry with
// the given command string
func cmdWithFullCommand(command string) (cmd runableCmd, ok bool) {
	for _, cmd := range cli.commands {
		if cmd.FullCommand() == command {
			return cmd, true
		}
	}

	return cmd, false
}

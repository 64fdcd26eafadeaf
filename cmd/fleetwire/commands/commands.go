// Copyright 2026 The Fleetwire Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the fleetwire command tree.
package commands

import (
	"io"
	"log/slog"
	"os"

	"github.com/fleetwire/fleetwire/cmd/fleetwire/cli"
	"github.com/fleetwire/fleetwire/lib/clock"
	"github.com/fleetwire/fleetwire/lib/config"
)

// app carries what every command writes to and reads time from.
type app struct {
	stdout io.Writer
	stderr io.Writer
	clock  clock.Clock
}

// Root builds and returns the complete fleetwire command tree.
func Root() *cli.Command {
	return app{stdout: os.Stdout, stderr: os.Stderr, clock: clock.Real()}.root()
}

func (a app) root() *cli.Command {
	return &cli.Command{
		Name: "fleetwire",
		Description: `fleetwire: addressing, identity, and message validation for vehicle
software messaging.

Parse and validate entity addresses, generate and inspect message
identifiers, and check message envelopes against the rules for their
role (publish, request, response).`,
		HelpOutput: a.stderr,
		Subcommands: []*cli.Command{
			a.validateCommand(),
			a.addressCommand(),
			a.idCommand(),
			a.convertCommand(),
			a.versionCommand(),
		},
		Examples: []cli.Example{
			{
				Description: "Validate every envelope in a file",
				Command:     "fleetwire validate events.jsonc",
			},
			{
				Description: "Check a method address and show its micro form",
				Command:     "fleetwire address --role method //VCU.myvin/body.access/1/rpc.UpdateDoor",
			},
		},
	}
}

// loadConfig loads the config file at path, the file named by
// FLEETWIRE_CONFIG when path is empty, or the defaults when neither is
// given.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	if os.Getenv(config.EnvironmentVariable) != "" {
		return config.Load()
	}
	return config.Default(), nil
}

func (a app) logger(cfg *config.Config) (*slog.Logger, error) {
	level, err := cfg.Log.SlogLevel()
	if err != nil {
		return nil, err
	}
	return cli.NewCommandLogger(a.stderr, cli.LoggerOptions{
		Level:  level,
		Format: cfg.Log.Format,
	}), nil
}

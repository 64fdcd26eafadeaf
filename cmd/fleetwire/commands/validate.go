// Copyright 2026 The Fleetwire Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/pflag"

	"github.com/fleetwire/fleetwire/cmd/fleetwire/cli"
	"github.com/fleetwire/fleetwire/lib/envelope"
)

func (a app) validateCommand() *cli.Command {
	var (
		configPath    string
		noExpiry      bool
		notifications bool
		workers       int
	)

	return &cli.Command{
		Name:    "validate",
		Summary: "Validate message envelopes",
		Description: `Decode the envelopes in each FILE and admit them with the validator
for their role. Files ending in .cbor hold a CBOR sequence; anything
else is JSON (comments and trailing commas allowed) holding one
envelope or an array of them.

Prints one line per envelope: "ok", or "rejected:" followed by every
reason, joined with "; ". Exits 1 if any envelope is rejected or any
file cannot be decoded.

Expiry checking follows envelope.check_expiry in the config (on by
default); --no-expiry turns it off. With --notifications, pub.v1
envelopes are checked as notifications and must carry a sink.`,
		Usage: "fleetwire validate [--config FILE] [--no-expiry] [--notifications] FILE...",
		Examples: []cli.Example{
			{
				Description: "Validate a JSONC capture",
				Command:     "fleetwire validate capture.jsonc",
			},
			{
				Description: "Validate old captures without expiring them",
				Command:     "fleetwire validate --no-expiry archive/*.cbor",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("validate", pflag.ContinueOnError)
			flagSet.StringVar(&configPath, "config", "", "configuration file (default: $FLEETWIRE_CONFIG)")
			flagSet.BoolVar(&noExpiry, "no-expiry", false, "skip the time-to-live expiry check")
			flagSet.BoolVar(&notifications, "notifications", false, "require a sink on publish envelopes")
			flagSet.IntVar(&workers, "workers", 0, "concurrent admissions (default: envelope.workers, then GOMAXPROCS)")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) == 0 {
				return fmt.Errorf("validate requires at least one envelope file")
			}
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			logger, err := a.logger(cfg)
			if err != nil {
				return err
			}

			adapterConfig := envelope.AdapterConfig{
				Logger:        logger.With("command", "validate"),
				Clock:         a.clock,
				CheckExpiry:   cfg.Envelope.CheckExpiry && !noExpiry,
				Notifications: notifications,
				Workers:       cfg.Envelope.Workers,
			}
			if workers > 0 {
				adapterConfig.Workers = workers
			}
			return a.validateFiles(context.Background(), envelope.NewAdapter(adapterConfig), logger, args)
		},
	}
}

// validateFiles admits every envelope in paths and reports each
// decision on stdout.
func (a app) validateFiles(ctx context.Context, adapter *envelope.Adapter, logger *slog.Logger, paths []string) error {
	var admitted, rejected, unreadable int

	for _, path := range paths {
		envelopes, err := envelope.ReadFile(path)
		if err != nil {
			logger.Warn("cannot decode envelope file", "file", path, "error", err)
			fmt.Fprintf(a.stdout, "%s: error: %v\n", path, err)
			unreadable++
			continue
		}

		for index, result := range adapter.AdmitAll(ctx, envelopes) {
			label := path
			if len(envelopes) > 1 {
				label = fmt.Sprintf("%s[%d]", path, index)
			}
			if result.Err != nil {
				fmt.Fprintf(a.stdout, "%s: rejected: %v\n", label, result.Err)
				rejected++
				continue
			}
			fmt.Fprintf(a.stdout, "%s: ok\n", label)
			admitted++
		}
	}

	fmt.Fprintf(a.stdout, "%d admitted, %d rejected", admitted, rejected)
	if unreadable > 0 {
		fmt.Fprintf(a.stdout, ", %d unreadable", unreadable)
	}
	fmt.Fprintln(a.stdout)

	if rejected > 0 || unreadable > 0 {
		return &cli.ExitError{Code: 1}
	}
	return nil
}

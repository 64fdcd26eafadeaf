// Copyright 2026 The Fleetwire Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"bytes"
	"fmt"

	"github.com/spf13/pflag"

	"github.com/fleetwire/fleetwire/cmd/fleetwire/cli"
	"github.com/fleetwire/fleetwire/lib/codec"
	"github.com/fleetwire/fleetwire/lib/envelope"
)

func (a app) convertCommand() *cli.Command {
	var (
		configPath string
		to         string
		diagnose   bool
	)

	return &cli.Command{
		Name:    "convert",
		Summary: "Convert envelopes between JSON and CBOR",
		Description: `Read the envelopes in each FILE and write them all to stdout in one
format: a JSON array (a single object for one envelope) or a CBOR
sequence. The default output format is envelope.format from the config.

With --diagnose, print each envelope's CBOR encoding in diagnostic
notation (RFC 8949 section 8), one per line, instead.

Envelopes are not validated; use "fleetwire validate" for that.`,
		Usage: "fleetwire convert [--to json|cbor] [--diagnose] FILE...",
		Examples: []cli.Example{
			{
				Description: "Turn a JSONC capture into a CBOR sequence",
				Command:     "fleetwire convert --to cbor capture.jsonc > capture.cbor",
			},
			{
				Description: "Show the CBOR structure of a capture",
				Command:     "fleetwire convert --diagnose capture.cbor",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("convert", pflag.ContinueOnError)
			flagSet.StringVar(&configPath, "config", "", "configuration file (default: $FLEETWIRE_CONFIG)")
			flagSet.StringVar(&to, "to", "", "output format: json or cbor (default: envelope.format)")
			flagSet.BoolVar(&diagnose, "diagnose", false, "print CBOR diagnostic notation")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) == 0 {
				return fmt.Errorf("convert requires at least one envelope file")
			}
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			formatName := cfg.Envelope.Format
			if to != "" {
				formatName = to
			}
			format, err := envelope.ParseFormat(formatName)
			if err != nil {
				return err
			}

			var envelopes []*envelope.Envelope
			for _, path := range args {
				decoded, err := envelope.ReadFile(path)
				if err != nil {
					return err
				}
				envelopes = append(envelopes, decoded...)
			}

			if diagnose {
				return a.diagnoseEnvelopes(envelopes)
			}
			return envelope.Encode(a.stdout, envelopes, format)
		},
	}
}

// diagnoseEnvelopes encodes envelopes as a CBOR sequence and prints
// the diagnostic notation of each item in turn.
func (a app) diagnoseEnvelopes(envelopes []*envelope.Envelope) error {
	var buffer bytes.Buffer
	if err := envelope.Encode(&buffer, envelopes, envelope.FormatCBOR); err != nil {
		return err
	}
	notations, err := codec.DiagnoseSequence(buffer.Bytes())
	if err != nil {
		return fmt.Errorf("diagnosing CBOR: %w", err)
	}
	for _, notation := range notations {
		fmt.Fprintln(a.stdout, notation)
	}
	return nil
}

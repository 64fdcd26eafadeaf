// Copyright 2026 The Fleetwire Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"encoding/hex"
	"fmt"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/fleetwire/fleetwire/cmd/fleetwire/cli"
	"github.com/fleetwire/fleetwire/lib/address"
)

// addressRoles maps --role values to the validator applied.
var addressRoles = map[string]func(address.Address) error{
	"plain":          address.Validate,
	"topic":          address.ValidateTopic,
	"method":         address.ValidateRPCMethod,
	"response":       address.ValidateRPCResponse,
	"response-topic": address.ValidateRPCResponseTopic,
}

func roleNames() []string {
	names := make([]string, 0, len(addressRoles))
	for name := range addressRoles {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func (a app) addressCommand() *cli.Command {
	var (
		role  string
		micro bool
	)

	return &cli.Command{
		Name:    "address",
		Summary: "Parse and validate an address",
		Description: `Parse ADDRESS, validate it for a role, and print its canonical long
form, its micro form (when the address carries numeric ids), and the
shape predicates.

Roles:
  plain           authority and entity name present
  topic           publish topic: resource name and message-type tag
  method          callable method: rpc resource with an instance or id
  response        a valid address not shaped like a reply address
  response-topic  a method reply address (rpc.response)

Malformed long-form text parses to the empty address, which every role
rejects. With --micro, ADDRESS is the hex encoding of a micro-form
address.

Exits 1 when the address is rejected.`,
		Usage: "fleetwire address [--role ROLE] [--micro] ADDRESS",
		Examples: []cli.Example{
			{
				Description: "Validate a publish topic",
				Command:     "fleetwire address --role topic /body.access/1/door.front_left#Door",
			},
			{
				Description: "Decode a micro-form address",
				Command:     "fleetwire address --micro 0100000501000000",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("address", pflag.ContinueOnError)
			flagSet.StringVar(&role, "role", "plain", "validation role: "+strings.Join(roleNames(), ", "))
			flagSet.BoolVar(&micro, "micro", false, "ADDRESS is a hex-encoded micro-form address")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("address takes exactly one ADDRESS argument, got %d", len(args))
			}
			validate, ok := addressRoles[role]
			if !ok {
				return fmt.Errorf("unknown role %q (want one of: %s)", role, strings.Join(roleNames(), ", "))
			}

			var parsed address.Address
			if micro {
				data, err := hex.DecodeString(strings.TrimSpace(args[0]))
				if err != nil {
					return fmt.Errorf("decoding hex: %w", err)
				}
				parsed, err = address.ParseMicro(data)
				if err != nil {
					return err
				}
			} else {
				parsed = address.ParseLong(args[0])
			}

			return a.describeAddress(parsed, role, validate)
		},
	}
}

func (a app) describeAddress(parsed address.Address, role string, validate func(address.Address) error) error {
	tw := tabwriter.NewWriter(a.stdout, 2, 0, 2, ' ', 0)

	switch {
	case address.IsEmpty(parsed):
		fmt.Fprintf(tw, "long:\t(empty)\n")
	case parsed.Entity.Name == "":
		fmt.Fprintf(tw, "long:\t- (no entity name)\n")
	default:
		fmt.Fprintf(tw, "long:\t%s\n", parsed.String())
	}

	if data, err := address.MarshalMicro(parsed); err == nil {
		fmt.Fprintf(tw, "micro:\t%s\n", hex.EncodeToString(data))
		fmt.Fprintf(tw, "ids:\tentity %d, resource %d\n", *parsed.Entity.ID, *parsed.Resource.ID)
	} else {
		fmt.Fprintf(tw, "micro:\t- (%v)\n", err)
	}

	fmt.Fprintf(tw, "resolved:\t%t\n", address.IsResolved(parsed))
	fmt.Fprintf(tw, "rpc method:\t%t\n", address.IsRPCMethod(parsed))
	fmt.Fprintf(tw, "rpc response:\t%t\n", address.IsRPCResponse(parsed))

	err := validate(parsed)
	if err != nil {
		fmt.Fprintf(tw, "%s:\trejected: %v\n", role, err)
	} else {
		fmt.Fprintf(tw, "%s:\tok\n", role)
	}
	tw.Flush()

	if err != nil {
		return &cli.ExitError{Code: 1}
	}
	return nil
}

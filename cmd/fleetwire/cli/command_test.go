// Copyright 2026 The Fleetwire Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func TestCommand_Execute_DispatchesToSubcommand(t *testing.T) {
	var called string

	root := &Command{
		Name: "fleetwire",
		Subcommands: []*Command{
			{
				Name: "version",
				Run: func(args []string) error {
					called = "version"
					return nil
				},
			},
			{
				Name: "address",
				Run: func(args []string) error {
					called = "address"
					return nil
				},
			},
		},
	}

	if err := root.Execute([]string{"address"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if called != "address" {
		t.Errorf("dispatched to %q, want %q", called, "address")
	}
}

func TestCommand_Execute_NestedSubcommands(t *testing.T) {
	var called string
	var receivedArgs []string

	root := &Command{
		Name: "fleetwire",
		Subcommands: []*Command{
			{
				Name: "id",
				Subcommands: []*Command{
					{
						Name: "inspect",
						Run: func(args []string) error {
							called = "id inspect"
							receivedArgs = args
							return nil
						},
					},
				},
			},
		},
	}

	if err := root.Execute([]string{"id", "inspect", "extra-arg"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if called != "id inspect" {
		t.Errorf("dispatched to %q, want %q", called, "id inspect")
	}
	if len(receivedArgs) != 1 || receivedArgs[0] != "extra-arg" {
		t.Errorf("args = %v, want [extra-arg]", receivedArgs)
	}
}

func TestCommand_Execute_FlagParsing(t *testing.T) {
	var role string
	var target string

	command := &Command{
		Name: "address",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("address", pflag.ContinueOnError)
			flagSet.StringVar(&role, "role", "plain", "validation role")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				target = args[0]
			}
			return nil
		},
	}

	if err := command.Execute([]string{"--role", "topic", "/body.access/1/door#Door"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if role != "topic" {
		t.Errorf("role = %q, want %q", role, "topic")
	}
	if target != "/body.access/1/door#Door" {
		t.Errorf("target = %q, want %q", target, "/body.access/1/door#Door")
	}
}

func TestCommand_Execute_UnknownFlagSuggestion(t *testing.T) {
	command := &Command{
		Name: "validate",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("validate", pflag.ContinueOnError)
			flagSet.Bool("no-expiry", false, "skip the expiry check")
			flagSet.String("config", "", "config file")
			return flagSet
		},
		Run: func(args []string) error { return nil },
	}

	err := command.Execute([]string{"--no-expirey"})
	if err == nil {
		t.Fatal("Execute() = nil, want error for unknown flag")
	}
	errStr := err.Error()
	if !strings.Contains(errStr, "did you mean --no-expiry") {
		t.Errorf("error = %q, want suggestion for '--no-expiry'", errStr)
	}
	if !strings.Contains(errStr, "no-expirey") {
		t.Errorf("error = %q, should mention the bad flag", errStr)
	}
	if !strings.Contains(errStr, "--help") {
		t.Errorf("error = %q, should point to --help", errStr)
	}
}

func TestCommand_Execute_UnknownFlagNoSuggestion(t *testing.T) {
	command := &Command{
		Name: "validate",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("validate", pflag.ContinueOnError)
			flagSet.Bool("no-expiry", false, "skip the expiry check")
			return flagSet
		},
		Run: func(args []string) error { return nil },
	}

	err := command.Execute([]string{"--zzzzzzzzz"})
	if err == nil {
		t.Fatal("Execute() = nil, want error for unknown flag")
	}
	if strings.Contains(err.Error(), "did you mean") {
		t.Errorf("error = %q, should not suggest for distant flag", err.Error())
	}
	if !strings.Contains(err.Error(), "--help") {
		t.Errorf("error = %q, should point to --help", err.Error())
	}
}

func TestCommand_Execute_UnknownSubcommandSuggestion(t *testing.T) {
	root := &Command{
		Name: "fleetwire",
		Subcommands: []*Command{
			{Name: "validate"},
			{Name: "address"},
			{Name: "version"},
		},
	}

	err := root.Execute([]string{"adress"})
	if err == nil {
		t.Fatal("Execute() = nil, want error for unknown subcommand")
	}
	if !strings.Contains(err.Error(), "did you mean \"address\"") {
		t.Errorf("error = %q, want suggestion for 'address'", err.Error())
	}
}

func TestCommand_Execute_UnknownSubcommandNoSuggestion(t *testing.T) {
	root := &Command{
		Name: "fleetwire",
		Subcommands: []*Command{
			{Name: "validate"},
			{Name: "address"},
		},
	}

	err := root.Execute([]string{"zzzzzzz"})
	if err == nil {
		t.Fatal("Execute() = nil, want error for unknown subcommand")
	}
	if strings.Contains(err.Error(), "did you mean") {
		t.Errorf("error = %q, should not contain suggestion for distant input", err.Error())
	}
}

func TestCommand_Execute_RunHandlesUnmatchedArgument(t *testing.T) {
	var received []string
	root := &Command{
		Name:        "id",
		Subcommands: []*Command{{Name: "new"}},
		Run: func(args []string) error {
			received = args
			return nil
		},
	}

	if err := root.Execute([]string{"0189ab3c-0000-8000-8000-000000000000"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if len(received) != 1 {
		t.Errorf("Run received %v, want the positional argument", received)
	}
}

func TestCommand_Execute_HelpFlag(t *testing.T) {
	for _, helpArg := range []string{"-h", "--help", "help"} {
		t.Run(helpArg, func(t *testing.T) {
			var buffer bytes.Buffer
			root := &Command{
				Name:       "fleetwire",
				Summary:    "Vehicle message addressing tools",
				HelpOutput: &buffer,
				Subcommands: []*Command{
					{Name: "address", Summary: "Parse and validate an address"},
				},
			}

			if err := root.Execute([]string{helpArg}); err != nil {
				t.Errorf("Execute(%q) error: %v", helpArg, err)
			}
			if !strings.Contains(buffer.String(), "Parse and validate an address") {
				t.Errorf("help output = %q, want the subcommand listing", buffer.String())
			}
		})
	}
}

func TestCommand_Execute_SubcommandInheritsHelpOutput(t *testing.T) {
	var buffer bytes.Buffer
	root := &Command{
		Name:       "fleetwire",
		HelpOutput: &buffer,
		Subcommands: []*Command{
			{Name: "id", Summary: "Identifier tools", Subcommands: []*Command{{Name: "new", Summary: "Generate identifiers"}}},
		},
	}

	if err := root.Execute([]string{"id", "--help"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if !strings.Contains(buffer.String(), "fleetwire id <command> [flags]") {
		t.Errorf("help output = %q, want the id usage line", buffer.String())
	}
}

func TestCommand_Execute_NoArgsShowsHelp(t *testing.T) {
	root := &Command{
		Name:       "fleetwire",
		HelpOutput: io.Discard,
		Subcommands: []*Command{
			{Name: "address", Summary: "Parse and validate an address"},
		},
	}

	err := root.Execute([]string{})
	if err == nil {
		t.Fatal("Execute() = nil, want error for missing subcommand")
	}
	if !strings.Contains(err.Error(), "subcommand required") {
		t.Errorf("error = %q, want 'subcommand required'", err.Error())
	}
}

func TestCommand_PrintHelp(t *testing.T) {
	command := &Command{
		Name:        "fleetwire",
		Description: "Addressing, identity, and message validation tools.",
		Subcommands: []*Command{
			{Name: "validate", Summary: "Validate message envelopes"},
			{Name: "address", Summary: "Parse and validate an address"},
			{Name: "version", Summary: "Print version information"},
		},
		Examples: []Example{
			{
				Description: "Validate a batch of envelopes",
				Command:     "fleetwire validate events.jsonc",
			},
			{
				Description: "Check a method address",
				Command:     "fleetwire address --role method //VCU.myvin/body.access/1/rpc.UpdateDoor",
			},
		},
	}

	var buffer bytes.Buffer
	command.PrintHelp(&buffer)
	output := buffer.String()

	for _, want := range []string{
		"Addressing, identity, and message validation tools.",
		"Usage:",
		"fleetwire <command> [flags]",
		"Commands:",
		"validate",
		"Validate message envelopes",
		"address",
		"Parse and validate an address",
		"Examples:",
		"fleetwire validate events.jsonc",
		"fleetwire address --role method",
		"Run 'fleetwire <command> --help'",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("help output missing %q\n\nFull output:\n%s", want, output)
		}
	}
}

func TestCommand_PrintHelp_WithFlags(t *testing.T) {
	command := &Command{
		Name:    "new",
		Summary: "Generate identifiers",
		Usage:   "fleetwire id new [--count N]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("new", pflag.ContinueOnError)
			flagSet.IntP("count", "n", 1, "number of identifiers")
			return flagSet
		},
	}

	var buffer bytes.Buffer
	command.PrintHelp(&buffer)
	output := buffer.String()

	for _, want := range []string{
		"fleetwire id new [--count N]",
		"Flags:",
		"--count",
		"-n",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("help output missing %q\n\nFull output:\n%s", want, output)
		}
	}
}

func TestCommand_FullName(t *testing.T) {
	root := &Command{Name: "fleetwire"}
	id := &Command{Name: "id", parent: root}
	inspect := &Command{Name: "inspect", parent: id}

	if got := root.fullName(); got != "fleetwire" {
		t.Errorf("root.fullName() = %q, want %q", got, "fleetwire")
	}
	if got := id.fullName(); got != "fleetwire id" {
		t.Errorf("id.fullName() = %q, want %q", got, "fleetwire id")
	}
	if got := inspect.fullName(); got != "fleetwire id inspect" {
		t.Errorf("inspect.fullName() = %q, want %q", got, "fleetwire id inspect")
	}
}

func TestExitError(t *testing.T) {
	var err error = &ExitError{Code: 2}
	coder, ok := err.(interface{ ExitCode() int })
	if !ok {
		t.Fatal("ExitError does not expose ExitCode")
	}
	if coder.ExitCode() != 2 || err.Error() != "exit code 2" {
		t.Errorf("ExitError = %d, %q", coder.ExitCode(), err.Error())
	}
}

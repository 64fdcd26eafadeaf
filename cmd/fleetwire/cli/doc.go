// Copyright 2026 The Fleetwire Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command-line framework for the fleetwire
// command.
//
// The central type is [Command], which represents a named subcommand with
// optional nested [Command.Subcommands], a [pflag.FlagSet] factory, and a
// Run function. Commands are assembled into a tree by the commands
// package and dispatched via [Command.Execute], which handles flag
// parsing, subcommand routing, and structured help output with examples.
//
// When a user types an unknown subcommand or flag, the framework computes
// Levenshtein edit distance against all known names and suggests the
// closest match (threshold: distance <= 3).
//
// [NewCommandLogger] builds the slog logger commands share, and
// [ExitError] lets a command exit non-zero after printing its own
// report.
package cli

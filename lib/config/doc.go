// Copyright 2026 The Fleetwire Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides YAML configuration loading for the fleetwire
// command.
//
// Configuration is loaded from a single file specified by either the
// FLEETWIRE_CONFIG environment variable (via [Load]) or a --config flag
// (via [LoadFile]). There are no fallbacks and no automatic file
// search. Commands run without a config file use [Default].
//
// The file may carry environment-specific sections (development,
// staging, production) that override base values when
// [Config].Environment matches. Without an explicit production
// section, production switches logs to JSON.
//
// This package depends on no other fleetwire packages.
package config

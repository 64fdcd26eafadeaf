// Copyright 2026 The Fleetwire Authors
// SPDX-License-Identifier: Apache-2.0

// Package status defines the closed set of communication status codes
// a response message may carry.
package status

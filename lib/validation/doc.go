// Copyright 2026 The Fleetwire Authors
// SPDX-License-Identifier: Apache-2.0

// Package validation carries the aggregated outcome of structural and
// role checks.
//
// Validators in this module report success as a nil error. When one or
// more checks fail, they return a *Failure whose Reasons list every
// failing check in evaluation order and whose Error text joins them
// with "; ". Checks never short-circuit, so a caller sees every
// problem with a value in one pass.
package validation

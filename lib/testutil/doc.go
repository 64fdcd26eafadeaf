// Copyright 2026 The Fleetwire Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for fleetwire packages.
//
// [RequireReceive] and [RequireClosed] wrap the timeout
// safety valve pattern (select with a time.After fallback) so that a
// concurrency bug fails the test instead of hanging it. These are the
// only place in the test suite where real wall-clock timeouts are used;
// everything else reads time from a clock.Clock.
//
// All helpers call t.Fatalf on failure rather than returning errors,
// since test setup failures are not recoverable.
package testutil

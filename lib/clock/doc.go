// Copyright 2026 The Fleetwire Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock provides an injectable wall clock for testability.
//
// Identifier minting and message expiration both read the current
// time. Production code passes Real(), which defers to time.Now. Tests
// pass Fake(), which holds a fixed instant until the test calls
// Advance or Set.
//
// # Wiring Pattern
//
// Add a Clock field to structs that read time:
//
//	type Validator struct {
//	    clock clock.Clock
//	    // ...
//	}
//
// In tests:
//
//	c := clock.Fake(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
//	v := attributes.Select(attributes.TypePublish).WithClock(c)
//	c.Advance(800 * time.Millisecond)
package clock

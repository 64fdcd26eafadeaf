// Copyright 2026 The Fleetwire Authors
// SPDX-License-Identifier: Apache-2.0

package clock

import "time"

// Clock abstracts wall-clock reads for testability. Production code
// injects Real(); tests inject Fake() with deterministic time control.
//
// Every function that needs the current time (identifier minting,
// expiration checks) should accept a Clock or be a method on a struct
// with a Clock field instead of calling time.Now directly.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// UnixMilli returns the clock's current reading as milliseconds since
// the Unix epoch. Readings before the epoch are negative.
func UnixMilli(c Clock) int64 {
	return c.Now().UnixMilli()
}

// Copyright 2026 The Fleetwire Authors
// SPDX-License-Identifier: Apache-2.0

package identifier

import (
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/fleetwire/fleetwire/lib/clock"
)

const (
	// counterMask selects the 12-bit per-millisecond counter in the
	// low bits of the high word.
	counterMask uint64 = 0xFFF

	// timestampMask bounds a millisecond reading to 48 bits.
	timestampMask uint64 = 1<<48 - 1
)

// Generator mints identifiers. Each identifier carries the clock's
// millisecond reading, a counter that orders identifiers minted within
// the same millisecond, and 62 random bits fixed for the lifetime of
// the Generator.
//
// Identifiers from one Generator are strictly increasing under
// Compare. When the counter would overflow, or the clock steps
// backward, the Generator borrows the next millisecond instead of
// repeating or reordering values.
//
// Generator is safe for concurrent use.
type Generator struct {
	clock clock.Clock
	low   uint64

	mu      sync.Mutex
	millis  uint64
	counter uint64
	started bool
}

// NewGenerator returns a Generator reading time from c. The random
// bits are drawn once from the system entropy source.
func NewGenerator(c clock.Clock) (*Generator, error) {
	random, err := uuid.NewRandom()
	if err != nil {
		return nil, fmt.Errorf("identifier: drawing random bits: %w", err)
	}
	low := binary.BigEndian.Uint64(random[8:])
	return &Generator{
		clock: c,
		low:   low&^variantMask | variantRFC4122,
	}, nil
}

// Next mints the next identifier.
func (g *Generator) Next() ID {
	now := clock.UnixMilli(g.clock)
	if now < 0 {
		now = 0
	}
	reading := uint64(now) & timestampMask

	g.mu.Lock()
	defer g.mu.Unlock()

	switch {
	case !g.started || reading > g.millis:
		g.millis = reading
		g.counter = 0
		g.started = true
	case g.counter < counterMask:
		g.counter++
	default:
		g.millis = (g.millis + 1) & timestampMask
		g.counter = 0
	}

	return ID{
		High: g.millis<<timestampShift | versionCustom | g.counter,
		Low:  g.low,
	}
}

var defaultGenerator = sync.OnceValue(func() *Generator {
	g, err := NewGenerator(clock.Real())
	if err != nil {
		panic(err)
	}
	return g
})

// New mints an identifier from a process-wide Generator backed by the
// real clock. Panics only if the system entropy source fails on first
// use.
func New() ID {
	return defaultGenerator().Next()
}

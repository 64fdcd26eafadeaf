// Copyright 2026 The Fleetwire Authors
// SPDX-License-Identifier: Apache-2.0

package identifier

import (
	"errors"

	"github.com/fleetwire/fleetwire/lib/validation"
)

// Kind selects the rule set used to validate a raw ID.
type Kind uint8

const (
	// KindInvalid is selected for values that match no supported
	// layout. Its validator always fails.
	KindInvalid Kind = iota

	// KindTimeOrdered validates RFC 9562 version 6 identifiers.
	KindTimeOrdered

	// KindCustom validates the custom-version identifiers minted by
	// this package.
	KindCustom
)

// Reasons reported by Kind.Validate.
var (
	ErrInvalidVersion     = errors.New("Invalid UUID Version")
	ErrInvalidVariant     = errors.New("Invalid UUID Variant")
	ErrInvalidTime        = errors.New("Invalid UUID Time")
	ErrNotTimeOrdered     = errors.New("Not a UUIDv6 uuid")
	ErrTimeOrderedVariant = errors.New("Invalid UUIDv6 variant")
	ErrNotCustom          = errors.New("Not a UUIDv8 uuid")
	ErrCustomVariant      = errors.New("Invalid UUIDv8 variant")
)

// gregorianOffset is the number of 100ns intervals between the start
// of the Gregorian calendar (1582-10-15) and the Unix epoch.
const gregorianOffset = 0x01B21DD213814000

// KindOf picks the validator for id from its version field.
func KindOf(id ID) Kind {
	switch id.High & versionMask {
	case versionTimeOrdered:
		return KindTimeOrdered
	case versionCustom:
		return KindCustom
	default:
		return KindInvalid
	}
}

// String returns the kind's name.
func (k Kind) String() string {
	switch k {
	case KindTimeOrdered:
		return "v6"
	case KindCustom:
		return "v8"
	default:
		return "invalid"
	}
}

// Validate runs the kind's version, time, and variant checks against
// id. Every failing check is reported; the result is nil or a
// *validation.Failure.
func (k Kind) Validate(id ID) error {
	var c validation.Collector
	c.Check(k.checkVersion(id))
	c.Check(checkTime(id))
	c.Check(k.checkVariant(id))
	return c.Err()
}

// Validate selects the kind for id and runs its checks.
func Validate(id ID) error {
	return KindOf(id).Validate(id)
}

func (k Kind) checkVersion(id ID) error {
	version := id.High & versionMask
	switch k {
	case KindTimeOrdered:
		if version != versionTimeOrdered {
			return ErrNotTimeOrdered
		}
	case KindCustom:
		if version != versionCustom {
			return ErrNotCustom
		}
	default:
		return ErrInvalidVersion
	}
	return nil
}

func (k Kind) checkVariant(id ID) error {
	if id.Low&variantMask == variantRFC4122 {
		if k == KindInvalid {
			return ErrInvalidVariant
		}
		return nil
	}
	switch k {
	case KindTimeOrdered:
		return ErrTimeOrderedVariant
	case KindCustom:
		return ErrCustomVariant
	default:
		return ErrInvalidVariant
	}
}

func checkTime(id ID) error {
	if millis, ok := unixMillis(id); !ok || millis == 0 {
		return ErrInvalidTime
	}
	return nil
}

// unixMillis extracts a creation time in Unix milliseconds from either
// supported layout.
func unixMillis(id ID) (uint64, bool) {
	if id.Low&variantMask != variantRFC4122 {
		return 0, false
	}
	switch id.High & versionMask {
	case versionCustom:
		return id.High >> timestampShift, true
	case versionTimeOrdered:
		// time_high(32) | time_mid(16) | version(4) | time_low(12)
		ticks := (id.High>>timestampShift)<<12 | id.High&0xFFF
		if ticks < gregorianOffset {
			return 0, false
		}
		return (ticks - gregorianOffset) / 10_000, true
	default:
		return 0, false
	}
}

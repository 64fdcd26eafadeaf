// Copyright 2026 The Fleetwire Authors
// SPDX-License-Identifier: Apache-2.0

// Package identifier implements the 128-bit time-ordered identifiers
// that name every message.
//
// # Layout
//
// An ID is two unsigned 64-bit words:
//
//	High: | unix millis (48) | version (4) = 0x8 | counter (12) |
//	Low:  | variant (2) = 0b10 | random (62) |
//
// The version field marks the identifier as RFC 9562 version 8
// ("custom"); the variant field is RFC 4122. CreationTime returns the
// millisecond field only when both are correct.
//
// # Text form
//
// String produces the 36-character lowercase hyphenated form
// (8-4-4-4-12). Parse accepts that form in any case and rejects wrong
// version or variant bits with a *ConversionError; ParseRaw accepts any
// bits so a validator can explain what is wrong.
//
// # Validation
//
// KindOf selects one of three rule sets (custom, time-ordered v6, or
// invalid) and Kind.Validate runs the version, time, and variant checks,
// reporting every failure.
//
// # Minting
//
// Generator mints strictly increasing identifiers from an injectable
// clock. New uses a process-wide Generator on the real clock.
package identifier

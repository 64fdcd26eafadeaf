// Copyright 2026 The Fleetwire Authors
// SPDX-License-Identifier: Apache-2.0

package identifier

import (
	"cmp"
	"encoding/binary"
	"fmt"

	"github.com/google/uuid"
)

const (
	// versionMask selects the 4-bit version field in the high word.
	versionMask uint64 = 0xF << 12

	// versionCustom is the version field of every identifier minted
	// by this package (RFC 9562 version 8, "custom").
	versionCustom uint64 = 0x8 << 12

	// versionTimeOrdered is the version field of RFC 9562 version 6
	// (reordered Gregorian time) identifiers.
	versionTimeOrdered uint64 = 0x6 << 12

	// variantMask selects the 2-bit variant field in the low word.
	variantMask uint64 = 0x3 << 62

	// variantRFC4122 is the variant field every valid identifier
	// carries.
	variantRFC4122 uint64 = 0x2 << 62

	// timestampShift moves the 48-bit millisecond timestamp down from
	// the top of the high word.
	timestampShift = 16

	// textLength is the length of the canonical hyphenated text form.
	textLength = 36
)

// ID is a 128-bit time-ordered identifier, held as two unsigned 64-bit
// words. The top 48 bits of High are milliseconds since the Unix
// epoch; bits 12-15 of High are the version field; the top two bits of
// Low are the variant field.
//
// ID is a comparable value type: == compares both words and an ID can
// be used as a map key. The zero value is the all-zero sentinel, which
// is not a valid identifier.
//
// A raw ID may carry any bit pattern, so that validators can describe
// why a value is unacceptable. The checked constructors (FromWords,
// FromBytes, Parse) only return values whose version and variant bits
// are correct.
type ID struct {
	High uint64
	Low  uint64
}

// FromWords builds an ID from its high and low words. Returns a
// *ConversionError if the version field is not the custom version or
// the variant field is not RFC 4122.
func FromWords(high, low uint64) (ID, error) {
	if high&versionMask != versionCustom {
		return ID{}, &ConversionError{Message: "not a custom-version identifier"}
	}
	if low&variantMask != variantRFC4122 {
		return ID{}, &ConversionError{Message: "not an RFC 4122 variant identifier"}
	}
	return ID{High: high, Low: low}, nil
}

// FromBytes builds an ID from its 16-byte big-endian form, with the
// same checks as FromWords.
func FromBytes(data [16]byte) (ID, error) {
	return FromWords(binary.BigEndian.Uint64(data[:8]), binary.BigEndian.Uint64(data[8:]))
}

// Parse decodes the canonical hyphenated text form
// ("xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx"), case-insensitively, and
// applies the FromWords checks. Any other shape is a
// *ConversionError.
func Parse(text string) (ID, error) {
	raw, err := ParseRaw(text)
	if err != nil {
		return ID{}, err
	}
	return FromWords(raw.High, raw.Low)
}

// ParseRaw decodes the canonical hyphenated text form without checking
// the version or variant bits. Use it when a caller needs to hand an
// arbitrary value to a validator so the validator can explain what is
// wrong with it.
func ParseRaw(text string) (ID, error) {
	if len(text) != textLength {
		return ID{}, &ConversionError{Message: fmt.Sprintf("malformed text %q: want %d characters", text, textLength)}
	}
	parsed, err := uuid.Parse(text)
	if err != nil {
		return ID{}, &ConversionError{Message: fmt.Sprintf("malformed text %q", text), Err: err}
	}
	return fromArray(parsed), nil
}

// MustParse is like Parse but panics on error. Use in tests and static
// initialization where the input is known-valid.
func MustParse(text string) ID {
	id, err := Parse(text)
	if err != nil {
		panic(fmt.Sprintf("identifier.MustParse(%q): %v", text, err))
	}
	return id
}

func fromArray(data [16]byte) ID {
	return ID{
		High: binary.BigEndian.Uint64(data[:8]),
		Low:  binary.BigEndian.Uint64(data[8:]),
	}
}

// Bytes returns the 16-byte big-endian form: High then Low.
func (id ID) Bytes() [16]byte {
	var data [16]byte
	binary.BigEndian.PutUint64(data[:8], id.High)
	binary.BigEndian.PutUint64(data[8:], id.Low)
	return data
}

// String returns the canonical text form: 36 characters, lowercase
// hex, hyphenated 8-4-4-4-12. Any bit pattern formats, including
// values that are not valid identifiers.
func (id ID) String() string {
	return uuid.UUID(id.Bytes()).String()
}

// IsZero reports whether id is the all-zero sentinel.
func (id ID) IsZero() bool { return id.High == 0 && id.Low == 0 }

// IsValid reports whether id carries the custom version and the
// RFC 4122 variant.
func (id ID) IsValid() bool {
	return id.High&versionMask == versionCustom && id.Low&variantMask == variantRFC4122
}

// CreationTime returns the 48-bit creation timestamp in milliseconds
// since the Unix epoch. The second result is false, and the timestamp
// must be ignored, when id is not a valid identifier.
func (id ID) CreationTime() (uint64, bool) {
	if !id.IsValid() {
		return 0, false
	}
	return id.High >> timestampShift, true
}

// Compare orders identifiers by High, then Low, as unsigned integers.
// For identifiers minted by a Generator this is creation order.
func (id ID) Compare(other ID) int {
	if c := cmp.Compare(id.High, other.High); c != 0 {
		return c
	}
	return cmp.Compare(id.Low, other.Low)
}

// MarshalText implements encoding.TextMarshaler. The zero value
// marshals as an empty string so that an unset identifier round-trips.
func (id ID) MarshalText() ([]byte, error) {
	if id.IsZero() {
		return nil, nil
	}
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Applies the Parse
// checks; empty input produces the zero value.
func (id *ID) UnmarshalText(data []byte) error {
	if len(data) == 0 {
		*id = ID{}
		return nil
	}
	parsed, err := Parse(string(data))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// Copyright 2026 The Fleetwire Authors
// SPDX-License-Identifier: Apache-2.0

package address

import (
	"encoding/binary"
	"errors"
	"fmt"
	"net/netip"
)

// Micro form layout:
//
//	byte 0     version (0x01)
//	byte 1     authority type
//	bytes 2-3  resource id, big endian
//	bytes 4-5  entity id, big endian
//	byte 6     entity major version
//	byte 7     reserved, zero
//	then       IPv4 (4 bytes) | IPv6 (16 bytes) | id length (1 byte) + id
const (
	microVersion    = 0x01
	microHeaderSize = 8
	maxMicroID      = 255
)

// Authority type codes carried in byte 1 of the micro form.
const (
	microLocal byte = iota
	microIPv4
	microIPv6
	microID
)

// Errors returned by MarshalMicro and ParseMicro.
var (
	ErrNotMicroForm         = errors.New("address: not representable in micro form")
	ErrMicroTruncated       = errors.New("address: truncated micro form")
	ErrMicroVersion         = errors.New("address: unsupported micro form version")
	ErrMicroAuthorityType   = errors.New("address: unknown micro form authority type")
	ErrMicroTrailingBytes   = errors.New("address: trailing bytes after micro form")
	ErrMicroFieldTooLarge   = errors.New("address: value does not fit micro form field")
	ErrMicroReservedNonZero = errors.New("address: reserved micro form byte is not zero")
	ErrMicroEmptyID         = errors.New("address: micro form authority id is empty")
)

// MarshalMicro encodes a in the micro (binary) form. The address must
// satisfy IsMicroForm, its ids must fit 16 bits, its major version 8
// bits, and an authority id at most 255 bytes. A nil major version is
// written as 0.
func MarshalMicro(a Address) ([]byte, error) {
	if !IsMicroForm(a) {
		return nil, ErrNotMicroForm
	}
	resourceID := *a.Resource.ID
	entityID := *a.Entity.ID
	var version uint32
	if a.Entity.VersionMajor != nil {
		version = *a.Entity.VersionMajor
	}
	if resourceID > 0xFFFF {
		return nil, fmt.Errorf("%w: resource id %d", ErrMicroFieldTooLarge, resourceID)
	}
	if entityID > 0xFFFF {
		return nil, fmt.Errorf("%w: entity id %d", ErrMicroFieldTooLarge, entityID)
	}
	if version > 0xFF {
		return nil, fmt.Errorf("%w: major version %d", ErrMicroFieldTooLarge, version)
	}

	var kind byte
	var tail []byte
	switch {
	case a.Authority.Local:
		kind = microLocal
	case a.Authority.IP.Is4():
		kind = microIPv4
		ip := a.Authority.IP.As4()
		tail = ip[:]
	case a.Authority.IP.IsValid():
		kind = microIPv6
		ip := a.Authority.IP.As16()
		tail = ip[:]
	default:
		if len(a.Authority.ID) > maxMicroID {
			return nil, fmt.Errorf("%w: authority id of %d bytes", ErrMicroFieldTooLarge, len(a.Authority.ID))
		}
		kind = microID
		tail = append([]byte{byte(len(a.Authority.ID))}, a.Authority.ID...)
	}

	data := make([]byte, microHeaderSize, microHeaderSize+len(tail))
	data[0] = microVersion
	data[1] = kind
	binary.BigEndian.PutUint16(data[2:4], uint16(resourceID))
	binary.BigEndian.PutUint16(data[4:6], uint16(entityID))
	data[6] = byte(version)
	return append(data, tail...), nil
}

// ParseMicro decodes the micro form. Unlike ParseLong, malformed input
// is reported as an error.
//
// The decoded address carries ids only; its entity and resource names
// are empty. A major version byte of 0 decodes as a nil VersionMajor,
// the same as the unset version MarshalMicro writes as 0.
func ParseMicro(data []byte) (Address, error) {
	if len(data) < microHeaderSize {
		return Address{}, ErrMicroTruncated
	}
	if data[0] != microVersion {
		return Address{}, fmt.Errorf("%w: %d", ErrMicroVersion, data[0])
	}
	if data[7] != 0 {
		return Address{}, ErrMicroReservedNonZero
	}

	tail := data[microHeaderSize:]
	var authority *Authority
	switch data[1] {
	case microLocal:
		authority = Local()
	case microIPv4:
		if len(tail) < 4 {
			return Address{}, ErrMicroTruncated
		}
		authority = &Authority{IP: netip.AddrFrom4([4]byte(tail[:4]))}
		tail = tail[4:]
	case microIPv6:
		if len(tail) < 16 {
			return Address{}, ErrMicroTruncated
		}
		authority = &Authority{IP: netip.AddrFrom16([16]byte(tail[:16]))}
		tail = tail[16:]
	case microID:
		if len(tail) < 1 {
			return Address{}, ErrMicroTruncated
		}
		if tail[0] == 0 {
			return Address{}, ErrMicroEmptyID
		}
		if len(tail) < 1+int(tail[0]) {
			return Address{}, ErrMicroTruncated
		}
		size := int(tail[0])
		authority = &Authority{ID: append([]byte(nil), tail[1:1+size]...)}
		tail = tail[1+size:]
	default:
		return Address{}, fmt.Errorf("%w: %d", ErrMicroAuthorityType, data[1])
	}
	if len(tail) != 0 {
		return Address{}, ErrMicroTrailingBytes
	}

	entity := &Entity{ID: Uint32(uint32(binary.BigEndian.Uint16(data[4:6])))}
	if data[6] != 0 {
		entity.VersionMajor = Uint32(uint32(data[6]))
	}
	return Address{
		Authority: authority,
		Entity:    entity,
		Resource: &Resource{
			ID: Uint32(uint32(binary.BigEndian.Uint16(data[2:4]))),
		},
	}, nil
}

// Copyright 2026 The Fleetwire Authors
// SPDX-License-Identifier: Apache-2.0

package address_test

import (
	"bytes"
	"errors"
	"net/netip"
	"testing"

	"github.com/fleetwire/fleetwire/lib/address"
)

func microAddress(authority *address.Authority) address.Address {
	return address.Address{
		Authority: authority,
		Entity:    &address.Entity{Name: "body.access", ID: address.Uint32(0x1234), VersionMajor: address.Uint32(1)},
		Resource:  &address.Resource{Name: "door", ID: address.Uint32(0x5678)},
	}
}

func TestMarshalMicroLayout(t *testing.T) {
	tests := []struct {
		name      string
		authority *address.Authority
		want      []byte
	}{
		{
			name:      "local",
			authority: address.Local(),
			want:      []byte{0x01, 0x00, 0x56, 0x78, 0x12, 0x34, 0x01, 0x00},
		},
		{
			name:      "ipv4",
			authority: &address.Authority{IP: netip.MustParseAddr("192.168.1.100")},
			want:      []byte{0x01, 0x01, 0x56, 0x78, 0x12, 0x34, 0x01, 0x00, 192, 168, 1, 100},
		},
		{
			name:      "ipv6",
			authority: &address.Authority{IP: netip.MustParseAddr("2001:db8::1")},
			want: []byte{
				0x01, 0x02, 0x56, 0x78, 0x12, 0x34, 0x01, 0x00,
				0x20, 0x01, 0x0d, 0xb8, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0x01,
			},
		},
		{
			name:      "id",
			authority: &address.Authority{ID: []byte("vin123")},
			want:      append([]byte{0x01, 0x03, 0x56, 0x78, 0x12, 0x34, 0x01, 0x00, 6}, "vin123"...),
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			data, err := address.MarshalMicro(microAddress(test.authority))
			if err != nil {
				t.Fatalf("MarshalMicro: %v", err)
			}
			if !bytes.Equal(data, test.want) {
				t.Errorf("MarshalMicro = % x, want % x", data, test.want)
			}
		})
	}
}

func TestMicroRoundTrip(t *testing.T) {
	for _, authority := range []*address.Authority{
		address.Local(),
		{IP: netip.MustParseAddr("10.0.0.7")},
		{IP: netip.MustParseAddr("fe80::42")},
		{ID: []byte{0xCA, 0xFE}},
	} {
		original := microAddress(authority)
		data, err := address.MarshalMicro(original)
		if err != nil {
			t.Fatalf("MarshalMicro: %v", err)
		}
		decoded, err := address.ParseMicro(data)
		if err != nil {
			t.Fatalf("ParseMicro(% x): %v", data, err)
		}

		if !address.IsMicroForm(decoded) {
			t.Errorf("decoded %+v is not micro form", decoded)
		}
		if *decoded.Entity.ID != 0x1234 || *decoded.Resource.ID != 0x5678 || *decoded.Entity.VersionMajor != 1 {
			t.Errorf("decoded ids = %d/%d v%d", *decoded.Entity.ID, *decoded.Resource.ID, *decoded.Entity.VersionMajor)
		}
		if decoded.Authority.Local != authority.Local ||
			decoded.Authority.IP != authority.IP ||
			!bytes.Equal(decoded.Authority.ID, authority.ID) {
			t.Errorf("decoded authority = %+v, want %+v", decoded.Authority, authority)
		}

		again, err := address.MarshalMicro(decoded)
		if err != nil {
			t.Fatalf("MarshalMicro(decoded): %v", err)
		}
		if !bytes.Equal(again, data) {
			t.Errorf("re-encoded % x, want % x", again, data)
		}
	}
}

func TestMarshalMicroRejects(t *testing.T) {
	named := address.ParseLong("/body.access/1/door#Door")
	if _, err := address.MarshalMicro(named); !errors.Is(err, address.ErrNotMicroForm) {
		t.Errorf("names only: err = %v, want ErrNotMicroForm", err)
	}

	wide := microAddress(address.Local())
	wide.Entity = &address.Entity{ID: address.Uint32(70000)}
	if _, err := address.MarshalMicro(wide); !errors.Is(err, address.ErrMicroFieldTooLarge) {
		t.Errorf("wide entity id: err = %v, want ErrMicroFieldTooLarge", err)
	}

	version := microAddress(address.Local())
	version.Entity = &address.Entity{ID: address.Uint32(1), VersionMajor: address.Uint32(256)}
	if _, err := address.MarshalMicro(version); !errors.Is(err, address.ErrMicroFieldTooLarge) {
		t.Errorf("wide version: err = %v, want ErrMicroFieldTooLarge", err)
	}

	longID := microAddress(&address.Authority{ID: make([]byte, 256)})
	if _, err := address.MarshalMicro(longID); !errors.Is(err, address.ErrMicroFieldTooLarge) {
		t.Errorf("long authority id: err = %v, want ErrMicroFieldTooLarge", err)
	}
}

func TestParseMicroRejects(t *testing.T) {
	header := []byte{0x01, 0x00, 0x56, 0x78, 0x12, 0x34, 0x01, 0x00}
	with := func(mutate func([]byte) []byte) []byte {
		return mutate(append([]byte(nil), header...))
	}

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"empty", nil, address.ErrMicroTruncated},
		{"short header", header[:5], address.ErrMicroTruncated},
		{"version", with(func(b []byte) []byte { b[0] = 2; return b }), address.ErrMicroVersion},
		{"reserved", with(func(b []byte) []byte { b[7] = 1; return b }), address.ErrMicroReservedNonZero},
		{"authority type", with(func(b []byte) []byte { b[1] = 9; return b }), address.ErrMicroAuthorityType},
		{"local trailing", append(with(func(b []byte) []byte { return b }), 0xFF), address.ErrMicroTrailingBytes},
		{"ipv4 truncated", with(func(b []byte) []byte { b[1] = 1; return append(b, 10, 0) }), address.ErrMicroTruncated},
		{"ipv6 truncated", with(func(b []byte) []byte { b[1] = 2; return append(b, make([]byte, 15)...) }), address.ErrMicroTruncated},
		{"id truncated", with(func(b []byte) []byte { b[1] = 3; return append(b, 4, 'a') }), address.ErrMicroTruncated},
		{"id zero length", with(func(b []byte) []byte { b[1] = 3; return append(b, 0) }), address.ErrMicroEmptyID},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := address.ParseMicro(test.data)
			if !errors.Is(err, test.want) {
				t.Errorf("ParseMicro(% x) = %v, want %v", test.data, err, test.want)
			}
		})
	}
}

func TestMicroUnsetVersion(t *testing.T) {
	unversioned := microAddress(address.Local())
	unversioned.Entity.VersionMajor = nil

	data, err := address.MarshalMicro(unversioned)
	if err != nil {
		t.Fatalf("MarshalMicro: %v", err)
	}
	if data[6] != 0 {
		t.Errorf("version byte = %d, want 0", data[6])
	}
	decoded, err := address.ParseMicro(data)
	if err != nil {
		t.Fatalf("ParseMicro: %v", err)
	}
	if decoded.Entity.VersionMajor != nil {
		t.Errorf("VersionMajor = %d, want nil", *decoded.Entity.VersionMajor)
	}
}

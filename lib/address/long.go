// Copyright 2026 The Fleetwire Authors
// SPDX-License-Identifier: Apache-2.0

package address

import (
	"net/netip"
	"strconv"
	"strings"
)

// ParseLong parses the long (text) form:
//
//	//<authority>/<entity>[/<version>[/<resource>[.<instance>][#<message>]]]
//	/<entity>[/<version>[/<resource>[.<instance>][#<message>]]]
//
// A remote authority written as an IP address keeps its text as Name
// and also sets IP.
//
// The version segment may be empty ("/body.access//door#Door"). A
// missing resource segment yields an empty Resource placeholder, so
// "/hartley" is a non-empty address with no resource name.
//
// ParseLong never fails. Malformed text (no leading slash, a blank
// remote authority, a blank entity name, a non-numeric version, extra
// segments) produces the empty Address, which every validator rejects
// with ErrEmpty.
func ParseLong(text string) Address {
	if !strings.HasPrefix(text, "/") {
		return Address{}
	}
	rest := text[1:]

	authority := Local()
	if strings.HasPrefix(rest, "/") {
		name, tail, _ := strings.Cut(rest[1:], "/")
		if isBlank(name) {
			return Address{}
		}
		authority = &Authority{Name: name}
		if ip, err := netip.ParseAddr(name); err == nil {
			authority.IP = ip
		}
		rest = tail
	}

	segments := strings.Split(rest, "/")
	if len(segments) > 3 || isBlank(segments[0]) {
		return Address{}
	}

	entity := &Entity{Name: segments[0]}
	if len(segments) > 1 && segments[1] != "" {
		version, err := strconv.ParseUint(segments[1], 10, 32)
		if err != nil {
			return Address{}
		}
		entity.VersionMajor = Uint32(uint32(version))
	}

	resource := &Resource{}
	if len(segments) > 2 {
		resource = parseResource(segments[2])
	}

	return Address{Authority: authority, Entity: entity, Resource: resource}
}

// parseResource splits "<name>[.<instance>][#<message>]". The instance
// runs from the first dot to the message tag and may itself contain
// dots.
func parseResource(segment string) *Resource {
	nameInstance, message, _ := strings.Cut(segment, "#")
	name, instance, _ := strings.Cut(nameInstance, ".")
	return &Resource{Name: name, Instance: instance, Message: message}
}

// String returns the canonical long form. It returns "" for an empty
// address and for a remote authority known only by its binary id,
// which has no text form. Otherwise ParseLong(a.String()) reproduces
// the names, version, tags, and authority IP of a.
func (a Address) String() string {
	if IsEmpty(a) {
		return ""
	}
	authority := authorityText(a.Authority)
	if !a.Authority.Local && authority == "" {
		return ""
	}

	var b strings.Builder
	if a.Authority.Local {
		b.WriteByte('/')
	} else {
		b.WriteString("//")
		b.WriteString(authority)
		b.WriteByte('/')
	}
	b.WriteString(a.Entity.Name)

	hasResource := !isPlaceholder(a.Resource)
	if a.Entity.VersionMajor != nil || hasResource {
		b.WriteByte('/')
		if a.Entity.VersionMajor != nil {
			b.WriteString(strconv.FormatUint(uint64(*a.Entity.VersionMajor), 10))
		}
	}
	if hasResource {
		b.WriteByte('/')
		b.WriteString(a.Resource.Name)
		if a.Resource.Instance != "" {
			b.WriteByte('.')
			b.WriteString(a.Resource.Instance)
		}
		if a.Resource.Message != "" {
			b.WriteByte('#')
			b.WriteString(a.Resource.Message)
		}
	}
	return b.String()
}

// FormatLong returns a.String().
func FormatLong(a Address) string { return a.String() }

// MarshalText implements encoding.TextMarshaler using the long form.
// The empty address marshals as an empty string.
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using ParseLong.
// Malformed text becomes the empty address rather than an error, the
// same as ParseLong.
func (a *Address) UnmarshalText(data []byte) error {
	*a = ParseLong(string(data))
	return nil
}

func authorityText(auth *Authority) string {
	if !isBlank(auth.Name) {
		return auth.Name
	}
	if auth.IP.IsValid() {
		return auth.IP.String()
	}
	return ""
}

func isPlaceholder(r *Resource) bool {
	return r.Name == "" && r.Instance == "" && r.Message == ""
}

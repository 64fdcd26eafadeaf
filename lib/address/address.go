// Copyright 2026 The Fleetwire Authors
// SPDX-License-Identifier: Apache-2.0

package address

import (
	"net/netip"
	"strings"
)

// Address names a software entity and one of its resources, optionally
// on a remote device. An address is empty unless all three slots are
// set; an empty address fails every validator.
//
// Address is treated as an immutable value. Validators and formatters
// never modify it.
type Address struct {
	// Authority is the device or domain hosting the entity. The local
	// placeholder Local() means "this device".
	Authority *Authority

	// Entity is the software entity (service or application).
	Entity *Entity

	// Resource is the topic or method the address refers to.
	Resource *Resource
}

// Authority identifies the device or domain hosting an entity.
//
// The zero value describes a remote authority with nothing to reach
// it by, which Validate rejects. Use Local() for the local
// placeholder.
type Authority struct {
	// Local marks the placeholder for the current device.
	Local bool

	// Name is the host name of a remote device (e.g., "vcu.myvin").
	Name string

	// IP is the network address of a remote device.
	IP netip.Addr

	// ID is an opaque binary identifier of a remote device.
	ID []byte
}

// Entity identifies a software entity.
type Entity struct {
	// Name is the entity's name (e.g., "body.access"). Required.
	Name string

	// VersionMajor is the entity's major version, if known.
	VersionMajor *uint32

	// ID is the entity's numeric identifier, used by the micro form.
	ID *uint32
}

// Resource identifies a topic or method within an entity. A resource
// name of "rpc" marks a method; the instance "response" marks the
// reply address of a method call.
type Resource struct {
	// Name is the resource name (e.g., "door", "rpc").
	Name string

	// Instance qualifies the name (e.g., "front_left", "UpdateDoor").
	Instance string

	// Message is the message-type tag (e.g., "Door"). Present iff
	// non-empty.
	Message string

	// ID is the resource's numeric identifier, used by the micro form.
	ID *uint32
}

// Local returns the placeholder authority for the current device.
func Local() *Authority {
	return &Authority{Local: true}
}

// Uint32 returns a pointer to v, for populating optional numeric
// fields.
func Uint32(v uint32) *uint32 { return &v }

// IsEmpty reports whether any of the authority, entity, or resource
// slots is unset.
func IsEmpty(a Address) bool {
	return a.Authority == nil || a.Entity == nil || a.Resource == nil
}

// IsRemote reports whether auth names a remote device: it carries a
// name, an IP address, or an id. A nil authority is not remote.
func IsRemote(auth *Authority) bool {
	if auth == nil {
		return false
	}
	return strings.TrimSpace(auth.Name) != "" || auth.IP.IsValid() || len(auth.ID) > 0
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func resourceID(r *Resource) uint32 {
	if r == nil || r.ID == nil {
		return 0
	}
	return *r.ID
}

// Copyright 2026 The Fleetwire Authors
// SPDX-License-Identifier: Apache-2.0

package address

import (
	"errors"
	"fmt"
	"strings"
)

// Reasons reported by the validators. Callers match them with
// errors.Is; ValidateRPCResponseTopic wraps the Validate reasons.
var (
	ErrEmpty               = errors.New("address is empty")
	ErrMissingAuthority    = errors.New("address is remote but missing authority")
	ErrMissingEntityName   = errors.New("address is missing entity name")
	ErrNotMethod           = errors.New("address should be a method address")
	ErrResponseShaped      = errors.New("Invalid RPC response type")
	ErrMissingResourceName = errors.New("missing resource name")
	ErrMissingMessageType  = errors.New("missing message-type information")
	ErrMissingRPCResponse  = errors.New("missing rpc.response")
)

const (
	rpcResourceName     = "rpc"
	rpcResponseInstance = "response"
)

// Validate checks the structural rules every usable address meets: it
// is not empty, a non-local authority carries a name, IP, or id, and
// the entity has a name.
func Validate(a Address) error {
	if IsEmpty(a) {
		return ErrEmpty
	}
	if !a.Authority.Local && !IsRemote(a.Authority) {
		return ErrMissingAuthority
	}
	if isBlank(a.Entity.Name) {
		return ErrMissingEntityName
	}
	return nil
}

// ValidateRPCMethod checks that a is a valid address of a method to
// call (or of the method a response answers).
func ValidateRPCMethod(a Address) error {
	if err := Validate(a); err != nil {
		return err
	}
	if !IsRPCMethod(a) {
		return ErrNotMethod
	}
	return nil
}

// ValidateRPCResponse checks that a is a valid address that is NOT
// shaped like a method reply address. Request messages are sent to
// the method itself, never to a reply address.
func ValidateRPCResponse(a Address) error {
	if err := Validate(a); err != nil {
		return err
	}
	if IsRPCResponse(a) {
		return ErrResponseShaped
	}
	return nil
}

// ValidateTopic checks that a is a valid publish topic: the resource
// has a name and a message-type tag.
func ValidateTopic(a Address) error {
	if err := Validate(a); err != nil {
		return err
	}
	if isBlank(a.Resource.Name) {
		return ErrMissingResourceName
	}
	if a.Resource.Message == "" {
		return ErrMissingMessageType
	}
	return nil
}

// ValidateRPCResponseTopic checks that a is a method reply address:
// resource "rpc" with instance "response", matched exactly.
func ValidateRPCResponseTopic(a Address) error {
	if err := Validate(a); err != nil {
		return fmt.Errorf("invalid rpc response topic: %w", err)
	}
	if a.Resource.Name != rpcResourceName || a.Resource.Instance != rpcResponseInstance {
		return fmt.Errorf("invalid rpc response topic: %w", ErrMissingRPCResponse)
	}
	return nil
}

// IsRPCMethod reports whether a addresses a method: the resource name
// contains "rpc" and the resource has an instance or a non-zero id.
func IsRPCMethod(a Address) bool {
	if IsEmpty(a) {
		return false
	}
	if !strings.Contains(a.Resource.Name, rpcResourceName) {
		return false
	}
	return !isBlank(a.Resource.Instance) || resourceID(a.Resource) != 0
}

// IsRPCResponse reports whether a is shaped like a method reply
// address: it is a method address whose instance contains "response"
// or whose resource id is non-zero. Every method address with a
// non-zero resource id therefore also reports true here.
func IsRPCResponse(a Address) bool {
	if !IsRPCMethod(a) {
		return false
	}
	return strings.Contains(a.Resource.Instance, rpcResponseInstance) || resourceID(a.Resource) != 0
}

// IsLongForm reports whether a carries the names needed for the text
// form: entity and resource names, and a name for a remote authority.
func IsLongForm(a Address) bool {
	if IsEmpty(a) {
		return false
	}
	if !a.Authority.Local && isBlank(a.Authority.Name) {
		return false
	}
	return !isBlank(a.Entity.Name) && !isBlank(a.Resource.Name)
}

// IsMicroForm reports whether a carries the numeric ids needed for the
// binary form: entity and resource ids, and an authority that is local
// or reachable by IP or id.
func IsMicroForm(a Address) bool {
	if IsEmpty(a) {
		return false
	}
	if a.Entity.ID == nil || a.Resource.ID == nil {
		return false
	}
	return a.Authority.Local || a.Authority.IP.IsValid() || len(a.Authority.ID) > 0
}

// IsResolved reports whether a carries both the names of the long form
// and the ids of the micro form.
func IsResolved(a Address) bool {
	return IsLongForm(a) && IsMicroForm(a)
}

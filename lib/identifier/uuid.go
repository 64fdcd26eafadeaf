// Copyright 2026 The Fleetwire Authors
// SPDX-License-Identifier: Apache-2.0

package identifier

import "github.com/google/uuid"

// FromUUID converts a github.com/google/uuid value, applying the
// FromWords checks. Version 4 and other non-custom UUIDs are
// rejected.
func FromUUID(u uuid.UUID) (ID, error) {
	return FromBytes(u)
}

// UUID returns id as a github.com/google/uuid value. Every bit is
// carried over unchanged.
func (id ID) UUID() uuid.UUID {
	return uuid.UUID(id.Bytes())
}

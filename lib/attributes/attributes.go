// Copyright 2026 The Fleetwire Authors
// SPDX-License-Identifier: Apache-2.0

package attributes

import (
	"fmt"
	"strings"

	"github.com/fleetwire/fleetwire/lib/address"
	"github.com/fleetwire/fleetwire/lib/identifier"
)

// MessageType is the declared role of a message. Values other than
// the four defined constants are carried as-is so that validation can
// report them.
type MessageType int32

const (
	TypeUnspecified MessageType = 0
	TypePublish     MessageType = 1
	TypeRequest     MessageType = 2
	TypeResponse    MessageType = 3
)

// String returns the protocol name of the type ("UMESSAGE_TYPE_PUBLISH"),
// or "MessageType(n)" for an unrecognized value.
func (t MessageType) String() string {
	switch t {
	case TypeUnspecified:
		return "UMESSAGE_TYPE_UNSPECIFIED"
	case TypePublish:
		return "UMESSAGE_TYPE_PUBLISH"
	case TypeRequest:
		return "UMESSAGE_TYPE_REQUEST"
	case TypeResponse:
		return "UMESSAGE_TYPE_RESPONSE"
	default:
		return fmt.Sprintf("MessageType(%d)", int32(t))
	}
}

// recognized reports whether t is one of the defined constants.
func (t MessageType) recognized() bool {
	return t >= TypeUnspecified && t <= TypeResponse
}

// EnvelopeType returns the short type tag used in event envelopes:
// "pub.v1", "req.v1", or "res.v1". Other values have no tag.
func (t MessageType) EnvelopeType() string {
	switch t {
	case TypePublish:
		return "pub.v1"
	case TypeRequest:
		return "req.v1"
	case TypeResponse:
		return "res.v1"
	default:
		return ""
	}
}

// ParseEnvelopeType maps an envelope type tag to a MessageType. An
// unknown tag yields TypeUnspecified and false.
func ParseEnvelopeType(tag string) (MessageType, bool) {
	switch tag {
	case "pub.v1":
		return TypePublish, true
	case "req.v1":
		return TypeRequest, true
	case "res.v1":
		return TypeResponse, true
	default:
		return TypeUnspecified, false
	}
}

// Priority is the class of service requested for a message. It is
// carried for transports; validation does not constrain it.
type Priority int32

const (
	PriorityUnspecified Priority = iota
	PriorityCS0
	PriorityCS1
	PriorityCS2
	PriorityCS3
	PriorityCS4
	PriorityCS5
	PriorityCS6
)

// String returns "CS0" through "CS6", or "" for PriorityUnspecified.
func (p Priority) String() string {
	if p >= PriorityCS0 && p <= PriorityCS6 {
		return fmt.Sprintf("CS%d", int32(p-PriorityCS0))
	}
	if p == PriorityUnspecified {
		return ""
	}
	return fmt.Sprintf("Priority(%d)", int32(p))
}

// ParsePriority parses "CS0" through "CS6", case-insensitively. Empty
// input is PriorityUnspecified.
func ParsePriority(text string) (Priority, error) {
	if text == "" {
		return PriorityUnspecified, nil
	}
	upper := strings.ToUpper(text)
	if len(upper) == 3 && strings.HasPrefix(upper, "CS") && upper[2] >= '0' && upper[2] <= '6' {
		return PriorityCS0 + Priority(upper[2]-'0'), nil
	}
	return PriorityUnspecified, fmt.Errorf("unknown priority %q", text)
}

// Attributes is the metadata of one message, validated as a unit.
// Optional fields are nil when absent. Validators read Attributes and
// never modify it.
type Attributes struct {
	// ID is the message's own identifier. Its creation time drives
	// expiration.
	ID identifier.ID

	// Type is the declared role.
	Type MessageType

	// Sink is the destination address.
	Sink *address.Address

	// Priority is the requested class of service.
	Priority Priority

	// TTL is the time to live in milliseconds.
	TTL *int32

	// PermissionLevel is the caller's permission level.
	PermissionLevel *int32

	// CommStatus is the communication status code of a response.
	CommStatus *int32

	// ReqID is the identifier of the request a response answers.
	ReqID *identifier.ID

	// Token is an opaque access token for the transport.
	Token string
}

// Int32 returns a pointer to v, for populating optional fields.
func Int32(v int32) *int32 { return &v }

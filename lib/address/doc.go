// Copyright 2026 The Fleetwire Authors
// SPDX-License-Identifier: Apache-2.0

// Package address implements the addresses that name publish topics,
// methods, and method replies.
//
// An Address has three slots: the authority (device), the entity
// (software component), and the resource (topic or method). An
// address with any slot unset is empty.
//
// # Forms
//
// The long form is text:
//
//	//vcu.myvin/body.access/1/door.front_left#Door   remote topic
//	/body.access//door.front_left#Door              local topic, no version
//	/body.access/1/rpc.UpdateDoor                   method
//	/body.access/1/rpc.response                     method reply
//
// ParseLong degrades malformed text to the empty address instead of
// returning an error, so callers find out through Validate ("address
// is empty").
//
// The micro form is a compact binary layout carrying numeric ids in
// place of names; see MarshalMicro and ParseMicro.
//
// # Validation
//
// Validate checks structure. The role validators layer on top of it:
//
//   - ValidateTopic: publish topics need a resource name and a
//     message-type tag.
//   - ValidateRPCMethod: the address of a method.
//   - ValidateRPCResponse: any valid address that is not shaped like a
//     method reply.
//   - ValidateRPCResponseTopic: exactly "rpc.response".
//
// The predicates IsRPCMethod and IsRPCResponse overlap: a method
// address with a non-zero resource id satisfies both.
package address

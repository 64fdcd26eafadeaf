// Copyright 2026 The Fleetwire Authors
// SPDX-License-Identifier: Apache-2.0

// Package attributes validates message metadata against the rules of
// the message's declared role.
//
// Select maps a MessageType to a Validator. Publish, Request, and
// Response validators share one pipeline; a small rule table decides
// which fields each role requires and how its sink address is checked:
//
//	          ttl        sink                          reqid
//	Publish   optional   optional, address.Validate     optional
//	Request   required   required, ValidateRPCResponse  optional
//	Response  optional   required, ValidateRPCMethod    required, non-zero
//
// Validate runs every check and reports every failure, joined with
// "; ", so one pass shows everything wrong with a message:
//
//	err := attributes.Select(a.Type).Validate(a)
//	// "Invalid TTL [0]; Invalid Communication Status Code [-42]"
//
// Expiration is a separate question. IsExpired compares the TTL with
// the time elapsed since the message identifier was minted, reading
// the validator's clock once per call.
package attributes

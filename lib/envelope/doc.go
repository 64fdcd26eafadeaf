// Copyright 2026 The Fleetwire Authors
// SPDX-License-Identifier: Apache-2.0

// Package envelope adapts event envelopes to the attribute validation
// engine.
//
// An Envelope carries its fields as the transport delivered them:
// addresses and identifiers as text. Attributes extracts the typed
// attributes; Adapter.Admit validates the envelope as a whole and
// either returns those attributes or rejects the envelope with every
// reason joined by "; ".
//
// Envelopes decode from JSON (comments and trailing commas allowed)
// and from CBOR sequences:
//
//	envelopes, err := envelope.ReadFile("door-events.jsonc")
//	adapter := envelope.NewAdapter(envelope.AdapterConfig{Logger: logger})
//	for _, result := range adapter.AdmitAll(ctx, envelopes) {
//	    ...
//	}
//
// # Source and sink rules
//
// Besides the attribute checks, the envelope's source and sink must
// fit its role:
//
//	role          type    source                            sink
//	publish       pub.v1  address.ValidateTopic             optional
//	notification  pub.v1  address.ValidateTopic             required
//	request       req.v1  address.ValidateRPCResponseTopic  address.ValidateRPCMethod
//	response      res.v1  address.ValidateRPCMethod         address.ValidateRPCResponseTopic
//
// A pub.v1 envelope is a notification only when the Adapter is
// configured with Notifications. A notification without a sink is
// rejected here; any other missing sink, and any sink that fails
// address.Validate, is reported once, by the attribute sink check.
package envelope

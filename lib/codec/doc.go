// Copyright 2026 The Fleetwire Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec holds the CBOR configuration for envelope files.
//
// Envelopes travel as JSON for people and tools and as CBOR sequences
// (RFC 8742) for constrained links. Every CBOR read and write goes
// through this package so captures encode identically wherever they
// are produced:
//
//	err := codec.EncodeSequence(file, envelopes)
//	envelopes, err := codec.DecodeSequence[*envelope.Envelope](file)
//	notations, err := codec.DiagnoseSequence(data)
//
// fxamacker/cbor reads `json` tags when `cbor` tags are absent, so a
// type that travels in both formats carries only `json` tags and gets
// the same field names in each.
package codec

// Copyright 2026 The Fleetwire Authors
// SPDX-License-Identifier: Apache-2.0

package identifier

// ConversionError reports a failed conversion into an ID: malformed
// text, or words whose version or variant bits are wrong.
type ConversionError struct {
	Message string

	// Err is the underlying decoding error, if any.
	Err error
}

func (e *ConversionError) Error() string {
	return "identifier: " + e.Message
}

func (e *ConversionError) Unwrap() error { return e.Err }

// Copyright 2026 The Fleetwire Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"errors"
	"fmt"
	"io"
	"reflect"

	"github.com/fxamacker/cbor/v2"
)

var (
	// encMode writes Core Deterministic Encoding (RFC 8949 §4.2), so
	// converting the same envelopes twice yields identical bytes.
	encMode cbor.EncMode

	// decMode ignores unknown fields and decodes any-typed maps with
	// string keys.
	decMode cbor.DecMode
)

// ErrEmptySequence is returned by DecodeSequence when the input holds
// no items.
var ErrEmptySequence = errors.New("codec: empty CBOR sequence")

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("codec: CBOR encoder initialization failed: " + err.Error())
	}

	decMode, err = cbor.DecOptions{
		// Envelope payloads land in `any` and are re-encoded as JSON
		// by convert; map[interface{}]interface{} cannot be.
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}.DecMode()
	if err != nil {
		panic("codec: CBOR decoder initialization failed: " + err.Error())
	}
}

// EncodeSequence writes items to w as a CBOR sequence (RFC 8742), one
// data item per element.
func EncodeSequence[T any](w io.Writer, items []T) error {
	encoder := encMode.NewEncoder(w)
	for index, item := range items {
		if err := encoder.Encode(item); err != nil {
			return fmt.Errorf("encoding item %d: %w", index, err)
		}
	}
	return nil
}

// DecodeSequence reads a CBOR sequence from r until EOF. A sequence
// with no items is an error.
func DecodeSequence[T any](r io.Reader) ([]T, error) {
	decoder := decMode.NewDecoder(r)
	var items []T
	for {
		var item T
		err := decoder.Decode(&item)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decoding item %d: %w", len(items), err)
		}
		items = append(items, item)
	}
	if len(items) == 0 {
		return nil, ErrEmptySequence
	}
	return items, nil
}

// DiagnoseSequence returns the diagnostic notation (RFC 8949 §8) of
// every item in a CBOR sequence, in order.
func DiagnoseSequence(data []byte) ([]string, error) {
	var notations []string
	for rest := data; len(rest) > 0; {
		notation, remaining, err := cbor.DiagnoseFirst(rest)
		if err != nil {
			return nil, fmt.Errorf("diagnosing item %d: %w", len(notations), err)
		}
		notations = append(notations, notation)
		rest = remaining
	}
	return notations, nil
}

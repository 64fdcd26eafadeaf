// Copyright 2026 The Fleetwire Authors
// SPDX-License-Identifier: Apache-2.0

package envelope

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"

	"github.com/fleetwire/fleetwire/lib/address"
	"github.com/fleetwire/fleetwire/lib/attributes"
	"github.com/fleetwire/fleetwire/lib/codec"
	"github.com/fleetwire/fleetwire/lib/identifier"
)

// SpecVersion is the only envelope version accepted.
const SpecVersion = "1.0"

// Envelope is an event envelope as it arrives from a transport. Every
// field is kept as received; Attributes parses them and Adapter.Admit
// validates them.
//
// The json tags govern both JSON and CBOR encodings.
type Envelope struct {
	SpecVersion     string `json:"specversion"`
	ID              string `json:"id"`
	Source          string `json:"source"`
	Type            string `json:"type"`
	Sink            string `json:"sink,omitempty"`
	TTL             *int32 `json:"ttl,omitempty"`
	Priority        string `json:"priority,omitempty"`
	ReqID           string `json:"reqid,omitempty"`
	PermissionLevel *int32 `json:"plevel,omitempty"`
	CommStatus      *int32 `json:"commstatus,omitempty"`
	Token           string `json:"token,omitempty"`
	DataContentType string `json:"datacontenttype,omitempty"`
	Data            any    `json:"data,omitempty"`
}

// Format is an envelope serialization format.
type Format string

const (
	FormatJSON Format = "json"
	FormatCBOR Format = "cbor"
)

// FormatForPath picks the format from a file extension: ".cbor" is
// CBOR, anything else JSON.
func FormatForPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".cbor") {
		return FormatCBOR
	}
	return FormatJSON
}

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(name)) {
	case FormatJSON:
		return FormatJSON, nil
	case FormatCBOR:
		return FormatCBOR, nil
	default:
		return "", fmt.Errorf("unknown envelope format %q (want json or cbor)", name)
	}
}

// DecodeJSON decodes one envelope, or an array of envelopes, from
// JSON. Comments and trailing commas (JSONC) are accepted.
func DecodeJSON(data []byte) ([]*Envelope, error) {
	standard := bytes.TrimSpace(jsonc.ToJSON(data))
	if len(standard) == 0 {
		return nil, errors.New("decoding envelope JSON: empty input")
	}
	if standard[0] == '[' {
		var envelopes []*Envelope
		if err := json.Unmarshal(standard, &envelopes); err != nil {
			return nil, fmt.Errorf("decoding envelope JSON array: %w", err)
		}
		return envelopes, nil
	}
	var envelope Envelope
	if err := json.Unmarshal(standard, &envelope); err != nil {
		return nil, fmt.Errorf("decoding envelope JSON: %w", err)
	}
	return []*Envelope{&envelope}, nil
}

// DecodeCBOR decodes a CBOR sequence of envelopes.
func DecodeCBOR(r io.Reader) ([]*Envelope, error) {
	envelopes, err := codec.DecodeSequence[*Envelope](r)
	if err != nil {
		return nil, fmt.Errorf("decoding envelope CBOR: %w", err)
	}
	return envelopes, nil
}

// Decode decodes envelopes in the given format.
func Decode(data []byte, format Format) ([]*Envelope, error) {
	if format == FormatCBOR {
		return DecodeCBOR(bytes.NewReader(data))
	}
	return DecodeJSON(data)
}

// ReadFile reads and decodes the envelopes in path, choosing the
// format from the extension.
func ReadFile(path string) ([]*Envelope, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	envelopes, err := Decode(data, FormatForPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return envelopes, nil
}

// Encode writes envelopes in the given format: a JSON array (or a
// single object for one envelope), or a CBOR sequence.
func Encode(w io.Writer, envelopes []*Envelope, format Format) error {
	if format == FormatCBOR {
		if err := codec.EncodeSequence(w, envelopes); err != nil {
			return fmt.Errorf("encoding envelope to CBOR: %w", err)
		}
		return nil
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	var value any = envelopes
	if len(envelopes) == 1 {
		value = envelopes[0]
	}
	if err := encoder.Encode(value); err != nil {
		return fmt.Errorf("encoding envelope to JSON: %w", err)
	}
	return nil
}

// Attributes extracts and parses the message attributes. Parsing never
// fails: an unknown type tag becomes TypeUnspecified, malformed address
// text becomes the empty address, and a malformed identifier becomes
// the zero identifier, so that validation reports each of them.
func (e *Envelope) Attributes() attributes.Attributes {
	messageType, _ := attributes.ParseEnvelopeType(e.Type)
	priority, _ := attributes.ParsePriority(e.Priority)

	result := attributes.Attributes{
		ID:              parseIdentifier(e.ID),
		Type:            messageType,
		Priority:        priority,
		TTL:             e.TTL,
		PermissionLevel: e.PermissionLevel,
		CommStatus:      e.CommStatus,
		Token:           e.Token,
	}
	if e.Sink != "" {
		sink := address.ParseLong(e.Sink)
		result.Sink = &sink
	}
	if e.ReqID != "" {
		reqID := parseIdentifier(e.ReqID)
		result.ReqID = &reqID
	}
	return result
}

func parseIdentifier(text string) identifier.ID {
	id, err := identifier.ParseRaw(text)
	if err != nil {
		return identifier.ID{}
	}
	return id
}

// New builds an envelope from parsed attributes and a source address.
// It is the inverse of Attributes for well-formed values.
func New(source address.Address, a attributes.Attributes) *Envelope {
	e := &Envelope{
		SpecVersion:     SpecVersion,
		ID:              a.ID.String(),
		Source:          source.String(),
		Type:            a.Type.EnvelopeType(),
		TTL:             a.TTL,
		Priority:        a.Priority.String(),
		PermissionLevel: a.PermissionLevel,
		CommStatus:      a.CommStatus,
		Token:           a.Token,
	}
	if a.Sink != nil {
		e.Sink = a.Sink.String()
	}
	if a.ReqID != nil {
		e.ReqID = a.ReqID.String()
	}
	return e
}

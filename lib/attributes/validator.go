// Copyright 2026 The Fleetwire Authors
// SPDX-License-Identifier: Apache-2.0

package attributes

import (
	"errors"
	"fmt"

	"github.com/fleetwire/fleetwire/lib/address"
	"github.com/fleetwire/fleetwire/lib/clock"
	"github.com/fleetwire/fleetwire/lib/status"
	"github.com/fleetwire/fleetwire/lib/validation"
)

// Fixed reasons reported by Validate and IsExpired.
const (
	reasonMissingTTL         = "Missing TTL"
	reasonMissingSink        = "Missing Sink"
	reasonInvalidPermission  = "Invalid Permission Level"
	reasonInvalidReqID       = "Invalid UUID"
	reasonMissingCorrelation = "Missing correlation Id"
)

var (
	// ErrExpired is returned by IsExpired once a message's time to
	// live has elapsed.
	ErrExpired = errors.New("payload is expired")

	// ErrClockBeforeEpoch is returned by IsExpired when the clock
	// reads a time before the Unix epoch.
	ErrClockBeforeEpoch = errors.New("clock reads before the Unix epoch")
)

// rules is the per-role part of the validation pipeline. Every other
// check is shared.
type rules struct {
	name         string
	messageType  MessageType
	requireTTL   bool
	requireSink  bool
	sink         func(address.Address) error
	requireReqID bool
}

var (
	publishRules = &rules{
		name:        "attributes.Publish",
		messageType: TypePublish,
		sink:        address.Validate,
	}
	requestRules = &rules{
		name:        "attributes.Request",
		messageType: TypeRequest,
		requireTTL:  true,
		requireSink: true,
		sink:        address.ValidateRPCResponse,
	}
	responseRules = &rules{
		name:         "attributes.Response",
		messageType:  TypeResponse,
		requireSink:  true,
		sink:         address.ValidateRPCMethod,
		requireReqID: true,
	}
)

// Validator checks the attributes of one message role. The zero value
// is not usable; obtain one from Select.
//
// Validators hold no mutable state and are safe for concurrent use.
type Validator struct {
	rules *rules
	clock clock.Clock
}

// Select returns the validator for t. Any value other than
// TypeRequest or TypeResponse, including unrecognized values, selects
// the Publish validator, whose type check then reports the mismatch.
func Select(t MessageType) Validator {
	switch t {
	case TypeRequest:
		return Validator{rules: requestRules, clock: clock.Real()}
	case TypeResponse:
		return Validator{rules: responseRules, clock: clock.Real()}
	default:
		return Validator{rules: publishRules, clock: clock.Real()}
	}
}

// Validate selects the validator for a.Type and runs it.
func Validate(a Attributes) error {
	return Select(a.Type).Validate(a)
}

// WithClock returns a copy of v that reads time from c in IsExpired.
func (v Validator) WithClock(c clock.Clock) Validator {
	v.clock = c
	return v
}

// Name identifies the validator ("attributes.Publish",
// "attributes.Request", "attributes.Response").
func (v Validator) Name() string { return v.rules.name }

// Role returns the message type this validator accepts.
func (v Validator) Role() MessageType { return v.rules.messageType }

// Validate runs every check against a: type, ttl, sink, commstatus,
// permission level, reqid, in that order. It never stops at the first
// failure; the result is nil or a *validation.Failure listing every
// failing check.
func (v Validator) Validate(a Attributes) error {
	var c validation.Collector
	c.Check(v.checkType(a))
	c.Check(v.checkTTL(a))
	c.Check(v.checkSink(a))
	c.Check(checkCommStatus(a))
	c.Check(checkPermission(a))
	c.Check(v.checkReqID(a))
	return c.Err()
}

// IsExpired reports whether a's time to live has elapsed since its id
// was minted. A message without a positive TTL, or whose id carries
// no creation time, never expires.
func (v Validator) IsExpired(a Attributes) error {
	if a.TTL == nil || *a.TTL <= 0 {
		return nil
	}
	created, ok := a.ID.CreationTime()
	if !ok {
		return nil
	}
	now := clock.UnixMilli(v.clock)
	if now < 0 {
		return fmt.Errorf("checking expiry: %w", ErrClockBeforeEpoch)
	}
	if now-int64(created) >= int64(*a.TTL) {
		return ErrExpired
	}
	return nil
}

func (v Validator) checkType(a Attributes) error {
	if !a.Type.recognized() {
		return fmt.Errorf("Unknown Attribute Type [%d]", int32(a.Type))
	}
	if a.Type != v.rules.messageType {
		return fmt.Errorf("Wrong Attribute Type [%s]", a.Type)
	}
	return nil
}

func (v Validator) checkTTL(a Attributes) error {
	if a.TTL == nil {
		if v.rules.requireTTL {
			return errors.New(reasonMissingTTL)
		}
		return nil
	}
	if *a.TTL < 1 {
		return fmt.Errorf("Invalid TTL [%d]", *a.TTL)
	}
	return nil
}

func (v Validator) checkSink(a Attributes) error {
	if a.Sink == nil {
		if v.rules.requireSink {
			return errors.New(reasonMissingSink)
		}
		return nil
	}
	return v.rules.sink(*a.Sink)
}

func checkCommStatus(a Attributes) error {
	if a.CommStatus != nil && !status.Valid(*a.CommStatus) {
		return fmt.Errorf("Invalid Communication Status Code [%d]", *a.CommStatus)
	}
	return nil
}

func checkPermission(a Attributes) error {
	if a.PermissionLevel != nil && *a.PermissionLevel < 1 {
		return errors.New(reasonInvalidPermission)
	}
	return nil
}

func (v Validator) checkReqID(a Attributes) error {
	if v.rules.requireReqID {
		if a.ReqID == nil || a.ReqID.IsZero() || !a.ReqID.IsValid() {
			return errors.New(reasonMissingCorrelation)
		}
		return nil
	}
	if a.ReqID != nil && !a.ReqID.IsValid() {
		return errors.New(reasonInvalidReqID)
	}
	return nil
}

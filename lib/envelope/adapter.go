// Copyright 2026 The Fleetwire Authors
// SPDX-License-Identifier: Apache-2.0

package envelope

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"sync"

	"github.com/fleetwire/fleetwire/lib/address"
	"github.com/fleetwire/fleetwire/lib/attributes"
	"github.com/fleetwire/fleetwire/lib/clock"
	"github.com/fleetwire/fleetwire/lib/identifier"
	"github.com/fleetwire/fleetwire/lib/validation"
)

// Adapter admits envelopes: it checks the envelope-level fields, then
// hands the extracted attributes to the validator for the envelope's
// role. An envelope is admitted only if every check passes.
//
// Adapter holds no per-call state and is safe for concurrent use.
type Adapter struct {
	logger        *slog.Logger
	clock         clock.Clock
	checkExpiry   bool
	notifications bool
	workers       int
}

// Role is the part an envelope plays, which picks its source and sink
// rules. It refines the attribute message type: a notification is a
// publish that must name its destination.
type Role int

const (
	RolePublish Role = iota
	RoleNotification
	RoleRequest
	RoleResponse
)

func (r Role) String() string {
	switch r {
	case RoleNotification:
		return "notification"
	case RoleRequest:
		return "request"
	case RoleResponse:
		return "response"
	default:
		return "publish"
	}
}

// AdapterConfig configures an Adapter.
type AdapterConfig struct {
	// Logger receives one record per admission decision. Required.
	Logger *slog.Logger

	// Clock is read by the expiry check. Defaults to clock.Real().
	Clock clock.Clock

	// CheckExpiry rejects envelopes whose time to live has elapsed.
	CheckExpiry bool

	// Notifications admits publish envelopes as notifications, which
	// must carry a sink.
	Notifications bool

	// Workers bounds the concurrency of AdmitAll. Defaults to
	// GOMAXPROCS.
	Workers int
}

// NewAdapter creates an Adapter.
func NewAdapter(config AdapterConfig) *Adapter {
	if config.Logger == nil {
		panic("envelope.Adapter: Logger is required")
	}
	c := config.Clock
	if c == nil {
		c = clock.Real()
	}
	workers := config.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Adapter{
		logger:        config.Logger,
		clock:         c,
		checkExpiry:   config.CheckExpiry,
		notifications: config.Notifications,
		workers:       workers,
	}
}

// Admit validates e. On success it returns the extracted attributes.
// On rejection the error is a *validation.Failure whose text, reasons
// joined with "; ", is the rejection reason.
//
// Checks run in this order, all of them every time: spec version,
// envelope id, priority, source and sink (by role), then the attribute
// checks (type, ttl, sink, commstatus, permission level, reqid), then
// expiry when configured.
func (a *Adapter) Admit(e *Envelope) (attributes.Attributes, error) {
	extracted := e.Attributes()
	validator := attributes.Select(extracted.Type).WithClock(a.clock)
	role := a.role(validator.Role())

	var c validation.Collector
	c.Check(checkSpecVersion(e))
	c.Check(checkID(e))
	c.Check(checkPriority(e))
	c.Check(checkSource(e, role))
	c.Check(checkSink(e, role))
	c.Check(validator.Validate(extracted))
	if a.checkExpiry {
		c.Check(validator.IsExpired(extracted))
	}

	logger := a.logger.With(
		"id", e.ID,
		"type", e.Type,
		"role", role.String(),
		"validator", validator.Name(),
	)
	if err := c.Err(); err != nil {
		logger.Info("envelope rejected", "reason", err.Error())
		return attributes.Attributes{}, err
	}
	logger.Debug("envelope admitted")
	return extracted, nil
}

func (a *Adapter) role(t attributes.MessageType) Role {
	switch t {
	case attributes.TypeRequest:
		return RoleRequest
	case attributes.TypeResponse:
		return RoleResponse
	}
	if a.notifications {
		return RoleNotification
	}
	return RolePublish
}

// Result is the outcome of admitting one envelope in a batch.
type Result struct {
	Envelope   *Envelope
	Attributes attributes.Attributes
	Err        error
}

// AdmitAll admits every envelope concurrently, bounded by the
// configured worker count. Results are returned in input order.
// Envelopes not yet started when ctx is cancelled get ctx's error.
func (a *Adapter) AdmitAll(ctx context.Context, envelopes []*Envelope) []Result {
	results := make([]Result, len(envelopes))
	slots := make(chan struct{}, a.workers)
	var wg sync.WaitGroup

	for index, e := range envelopes {
		results[index].Envelope = e
		if err := ctx.Err(); err != nil {
			results[index].Err = err
			continue
		}
		select {
		case <-ctx.Done():
			results[index].Err = ctx.Err()
			continue
		case slots <- struct{}{}:
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() { <-slots }()
			results[index].Attributes, results[index].Err = a.Admit(e)
		}()
	}
	wg.Wait()
	return results
}

func checkSpecVersion(e *Envelope) error {
	if e.SpecVersion != SpecVersion {
		return fmt.Errorf("Invalid envelope version [%s]: want %s", e.SpecVersion, SpecVersion)
	}
	return nil
}

func checkID(e *Envelope) error {
	if _, err := identifier.Parse(e.ID); err != nil {
		return fmt.Errorf("Invalid envelope id [%s]", e.ID)
	}
	return nil
}

func checkPriority(e *Envelope) error {
	if _, err := attributes.ParsePriority(e.Priority); err != nil {
		return fmt.Errorf("Invalid priority [%s]", e.Priority)
	}
	return nil
}

// checkSource applies the source rule for the envelope's role. See
// the package documentation for the table.
func checkSource(e *Envelope, role Role) error {
	source := address.ParseLong(e.Source)
	var err error
	switch role {
	case RoleRequest:
		err = address.ValidateRPCResponseTopic(source)
	case RoleResponse:
		err = address.ValidateRPCMethod(source)
	default:
		err = address.ValidateTopic(source)
	}
	if err != nil {
		return fmt.Errorf("Invalid %s source [%s]: %w", role, e.Source, err)
	}
	return nil
}

// checkSink applies the sink rule for the envelope's role. A missing
// or structurally invalid sink is left to the attribute sink check,
// except that a notification must have one.
func checkSink(e *Envelope, role Role) error {
	if e.Sink == "" {
		if role == RoleNotification {
			return errors.New("Missing notification sink")
		}
		return nil
	}
	sink := address.ParseLong(e.Sink)
	if address.Validate(sink) != nil {
		return nil
	}
	var err error
	switch role {
	case RoleRequest:
		err = address.ValidateRPCMethod(sink)
	case RoleResponse:
		err = address.ValidateRPCResponseTopic(sink)
	}
	if err != nil {
		return fmt.Errorf("Invalid %s sink [%s]: %w", role, e.Sink, err)
	}
	return nil
}

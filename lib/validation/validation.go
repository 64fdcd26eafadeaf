// Copyright 2026 The Fleetwire Authors
// SPDX-License-Identifier: Apache-2.0

package validation

import (
	"errors"
	"strings"
)

// Separator joins the reasons of a Failure into its error text.
const Separator = "; "

// Failure is the outcome of a validation that found one or more
// problems. Reasons are kept in the order the checks ran. A nil error
// in place of a Failure means the value passed every check.
type Failure struct {
	Reasons []string
}

// Error returns the reasons joined with Separator.
func (f *Failure) Error() string {
	return strings.Join(f.Reasons, Separator)
}

// Reasons returns the ordered reasons carried by err. A nil error has
// no reasons. An error that is not a Failure contributes its own text
// as a single reason.
func Reasons(err error) []string {
	if err == nil {
		return nil
	}
	var failure *Failure
	if errors.As(err, &failure) {
		return failure.Reasons
	}
	return []string{err.Error()}
}

// Collector accumulates check results without short-circuiting. The
// zero value is ready to use.
//
//	var c validation.Collector
//	c.Check(checkType(a))
//	c.Check(checkTTL(a))
//	return c.Err()
type Collector struct {
	reasons []string
}

// Check records err's reasons, if any. A nil err is a passing check.
func (c *Collector) Check(err error) {
	c.reasons = append(c.reasons, Reasons(err)...)
}

// Fail records a single reason.
func (c *Collector) Fail(reason string) {
	c.reasons = append(c.reasons, reason)
}

// Err returns nil if every check passed, or a *Failure listing every
// recorded reason in order.
func (c *Collector) Err() error {
	if len(c.reasons) == 0 {
		return nil
	}
	reasons := make([]string, len(c.reasons))
	copy(reasons, c.reasons)
	return &Failure{Reasons: reasons}
}

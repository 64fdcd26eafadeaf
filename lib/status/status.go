// Copyright 2026 The Fleetwire Authors
// SPDX-License-Identifier: Apache-2.0

package status

import (
	"fmt"
	"strings"
)

// Code is a communication status code. The set is closed; numbering
// matches the gRPC status codes.
type Code int32

const (
	OK                 Code = 0
	Cancelled          Code = 1
	Unknown            Code = 2
	InvalidArgument    Code = 3
	DeadlineExceeded   Code = 4
	NotFound           Code = 5
	AlreadyExists      Code = 6
	PermissionDenied   Code = 7
	ResourceExhausted  Code = 8
	FailedPrecondition Code = 9
	Aborted            Code = 10
	OutOfRange         Code = 11
	Unimplemented      Code = 12
	Internal           Code = 13
	Unavailable        Code = 14
	DataLoss           Code = 15
	Unauthenticated    Code = 16
)

var names = [...]string{
	OK:                 "OK",
	Cancelled:          "CANCELLED",
	Unknown:            "UNKNOWN",
	InvalidArgument:    "INVALID_ARGUMENT",
	DeadlineExceeded:   "DEADLINE_EXCEEDED",
	NotFound:           "NOT_FOUND",
	AlreadyExists:      "ALREADY_EXISTS",
	PermissionDenied:   "PERMISSION_DENIED",
	ResourceExhausted:  "RESOURCE_EXHAUSTED",
	FailedPrecondition: "FAILED_PRECONDITION",
	Aborted:            "ABORTED",
	OutOfRange:         "OUT_OF_RANGE",
	Unimplemented:      "UNIMPLEMENTED",
	Internal:           "INTERNAL",
	Unavailable:        "UNAVAILABLE",
	DataLoss:           "DATA_LOSS",
	Unauthenticated:    "UNAUTHENTICATED",
}

// Valid reports whether value is one of the defined codes.
func Valid(value int32) bool {
	return value >= int32(OK) && value <= int32(Unauthenticated)
}

// IsValid reports whether c is one of the defined codes.
func (c Code) IsValid() bool { return Valid(int32(c)) }

// String returns the code's upper-case name, or "Code(n)" for values
// outside the set.
func (c Code) String() string {
	if !c.IsValid() {
		return fmt.Sprintf("Code(%d)", int32(c))
	}
	return names[c]
}

// Parse looks up a code by name, case-insensitively.
func Parse(name string) (Code, error) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	for code, candidate := range names {
		if candidate == upper {
			return Code(code), nil
		}
	}
	return 0, fmt.Errorf("unknown status code %q", name)
}

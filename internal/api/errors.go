// DhanDiary Stats - Admin Analytics API for the DhanDiary Finance App
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dhandiary-stats

package api

import (
	"errors"
	"fmt"
)

// Client-facing error messages.
const (
	MsgMethodNotAllowed = "Method not allowed"
	MsgInternalError    = "An internal error occurred"
	MsgUnexpectedError  = "An unexpected error occurred"
)

// PanicError carries a value recovered from a panicking service call.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	if err, ok := e.Value.(error); ok {
		return err.Error()
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap returns the panic value when it is an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// SanitizeError returns the message a client may see for err.
//
// A panic whose value is not an error is always reported as
// MsgUnexpectedError. Otherwise production hides the message behind
// MsgInternalError and development returns it verbatim.
func SanitizeError(err error, production bool) string {
	if err == nil {
		return MsgUnexpectedError
	}
	var pe *PanicError
	if errors.As(err, &pe) && pe.Unwrap() == nil {
		return MsgUnexpectedError
	}
	if production {
		return MsgInternalError
	}
	return err.Error()
}

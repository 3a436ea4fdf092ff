// DhanDiary Stats - Admin Analytics API for the DhanDiary Finance App
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dhandiary-stats

package middleware

import (
	"net/http"

	"github.com/tomtom215/dhandiary-stats/internal/auth"
	"github.com/tomtom215/dhandiary-stats/internal/validation"
)

// Context carries one request through a Pipeline. Steps may fill in the
// fields after the request for later steps and the handler.
type Context struct {
	Request *http.Request
	// Endpoint is the handler name, e.g. "stats-users", used in metrics.
	Endpoint string

	// ClientID is set by the rate-limit step.
	ClientID string
	// Auth is set by the authentication step on success.
	Auth *auth.Result
	// Params is set by the validation step on success.
	Params *validation.StatsQueryParams
}

// Rejection is the response a step short-circuits with.
type Rejection struct {
	Status  int
	Message string
	// Headers are added to the response next to the CORS headers.
	Headers map[string]string
}

// Outcome is the result of one step.
type Outcome struct {
	Continue bool
	Response *Rejection
}

// Next lets the pipeline move to the following step.
func Next() Outcome {
	return Outcome{Continue: true}
}

// Reject stops the pipeline with the given response.
func Reject(status int, message string, headers map[string]string) Outcome {
	return Outcome{
		Continue: false,
		Response: &Rejection{Status: status, Message: message, Headers: headers},
	}
}

// Step is one stage of request admission.
type Step interface {
	Process(c *Context) Outcome
}

// StepFunc adapts a function to Step.
type StepFunc func(c *Context) Outcome

// Process calls f(c).
func (f StepFunc) Process(c *Context) Outcome {
	return f(c)
}

// Pipeline runs steps in order.
type Pipeline []Step

// Run executes the steps until one does not continue and returns its
// rejection, or nil when every step continued. Steps after a rejection are
// not invoked.
func (p Pipeline) Run(c *Context) *Rejection {
	for _, step := range p {
		out := step.Process(c)
		if out.Continue {
			continue
		}
		if out.Response == nil {
			return &Rejection{Status: http.StatusInternalServerError, Message: http.StatusText(http.StatusInternalServerError)}
		}
		return out.Response
	}
	return nil
}

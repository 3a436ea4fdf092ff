// DhanDiary Stats - Admin Analytics API for the DhanDiary Finance App
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dhandiary-stats

package models

// Envelope wraps every JSON response of the stats endpoints.
//
// Example successful response:
//
//	{
//	  "success": true,
//	  "data": {"totalUsers": 1204, "activeUsers7d": 311, ...},
//	  "timestamp": "2026-01-15T09:30:00.000Z"
//	}
//
// Example error response:
//
//	{
//	  "success": false,
//	  "error": "Missing authorization header"
//	}
//
// Pipeline rejections (401, 400, 429) and 405 carry no timestamp; success
// and 500 responses do.
type Envelope struct {
	Success   bool   `json:"success"`
	Data      any    `json:"data,omitempty"`
	Error     string `json:"error,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
}

// SuccessEnvelope builds a successful response.
func SuccessEnvelope(data any, timestamp string) Envelope {
	return Envelope{Success: true, Data: data, Timestamp: timestamp}
}

// ErrorEnvelope builds an error response. timestamp may be empty.
func ErrorEnvelope(message, timestamp string) Envelope {
	return Envelope{Success: false, Error: message, Timestamp: timestamp}
}

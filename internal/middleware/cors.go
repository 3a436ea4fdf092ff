// DhanDiary Stats - Admin Analytics API for the DhanDiary Finance App
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dhandiary-stats

package middleware

import (
	"net/http"
	"slices"
	"strings"
)

// CORS header values shared by every stats response.
const (
	corsAllowHeaders = "Content-Type, Authorization"
	corsAllowMethods = "GET, OPTIONS"
	corsMaxAge       = "86400"
)

// CORS computes the cross-origin headers for the stats endpoints.
//
// An allowed or wildcard-matched origin is echoed back. Any other origin
// receives the first configured origin, which browsers then reject.
type CORS struct {
	origins  []string
	wildcard bool
}

// NewCORS creates a responder for allowedOrigins. Empty entries are
// ignored; an empty list means ["*"].
func NewCORS(allowedOrigins []string) *CORS {
	origins := make([]string, 0, len(allowedOrigins))
	for _, o := range allowedOrigins {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return &CORS{
		origins:  origins,
		wildcard: slices.Contains(origins, "*"),
	}
}

// AllowOrigin returns the Access-Control-Allow-Origin value for a request
// from origin. An empty origin is treated as "*".
func (c *CORS) AllowOrigin(origin string) string {
	if origin == "" {
		origin = "*"
	}
	if c.wildcard || slices.Contains(c.origins, origin) {
		return origin
	}
	return c.origins[0]
}

// Headers returns the four CORS headers for origin.
func (c *CORS) Headers(origin string) http.Header {
	h := make(http.Header, 4)
	c.Apply(h, origin)
	return h
}

// Apply sets the CORS headers for origin on h.
func (c *CORS) Apply(h http.Header, origin string) {
	h.Set("Access-Control-Allow-Origin", c.AllowOrigin(origin))
	h.Set("Access-Control-Allow-Headers", corsAllowHeaders)
	h.Set("Access-Control-Allow-Methods", corsAllowMethods)
	h.Set("Access-Control-Max-Age", corsMaxAge)
}

// DhanDiary Stats - Admin Analytics API for the DhanDiary Finance App
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dhandiary-stats

/*
Package auth authenticates admin requests against a shared secret.

The dashboard sends the secret from ADMIN_API_KEY in the Authorization
header, with or without the "Bearer " scheme:

	Authorization: Bearer 3f9c...e1
	Authorization: 3f9c...e1

Validate never returns an error. A rejection is a Result with Authorized
false and a client-facing message:

  - "Missing authorization header": no Authorization header
  - "Server configuration error": ADMIN_API_KEY is empty
  - "Invalid credentials": the token does not match

The comparison is exact, case-sensitive and constant-time. Rejections are
counted in api_auth_failures_total and logged as security events with the
presented token masked.
*/
package auth

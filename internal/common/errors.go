// Package common defines shared sentinel errors used across the client
// layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// ErrEmptyURL is returned when a scan is submitted with an empty or
	// whitespace-only URL. No request is made and no state is touched.
	ErrEmptyURL = errors.New("url is empty")

	// ErrScanLimitReached means the anonymous free-scan quota is exhausted.
	// This is a local policy decision, not a server response.
	ErrScanLimitReached = errors.New("free scan limit reached")

	// ErrSessionExpired means the server rejected the stored token and no
	// anonymous quota remained to fall back on.
	ErrSessionExpired = errors.New("session expired, please log in again")
)

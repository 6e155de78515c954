// Package common defines sentinel errors and constants shared by the
// client and server sides of the life archive. Callers should use errors.Is
// to match these values.
package common

import "errors"

var (
	// ErrParse is returned when archive JSON cannot be parsed at all.
	ErrParse = errors.New("archive parse error")

	// ErrRemoteWriteFailed is returned by remote stores when a write was
	// rejected or could not be delivered.
	ErrRemoteWriteFailed = errors.New("remote write failed")

	// ErrRemoteReadDegraded marks a remote read that fell back to the seed
	// document. It is only logged, never returned to HTTP callers.
	ErrRemoteReadDegraded = errors.New("remote read degraded")

	// ErrNotFound is returned by lookups (share ids, entity ids).
	ErrNotFound = errors.New("not found")

	// ErrUnavailable is returned by the HTTP client when the server could
	// not be reached or answered with a non-success status.
	ErrUnavailable = errors.New("server unavailable")
)

package xo

import "github.com/cockroachdb/errors"

// Sentinel causes, matched with errors.Is against the errors this package
// returns. Allocation failures are wrapped around ErrAllocFailed with
// github.com/cockroachdb/errors so a caller gets a real error chain (and a
// stack trace in development builds) instead of a bare string, the same
// posture that repo's errbase package takes toward "format error with
// cause."
var (
	// ErrAllocFailed is the cause of an error returned when a buffer could
	// not grow enough to hold an emission's rendered payload.
	ErrAllocFailed = errors.New("xo: allocation failed")

	// ErrSinkClosed names the condition of a handle with no writer
	// configured. No function in this package returns it: Emit and the
	// structural operations report success without writing when the
	// handle has no writer.
	ErrSinkClosed = errors.New("xo: no writer configured")
)

// wrapAlloc wraps ErrAllocFailed with context about which buffer and how
// much room was requested.
func wrapAlloc(which string, requested int) error {
	return errors.Wrapf(ErrAllocFailed, "%s: requested %d bytes", which, requested)
}

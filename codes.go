package errorlog

import "errors"

// Result codes returned by every operation in this package. A nil error is
// the success code. Callers distinguish codes with errors.Is; codes may be
// wrapped with call-site context but are never replaced.
var (
	// ErrAllocation indicates a requested heap allocation could not be
	// satisfied. The Go runtime does not surface allocation failure to the
	// caller, so this code is retained for API parity with hosts that
	// switch on the full taxonomy; this implementation never produces it.
	ErrAllocation = errors.New("allocation failed")

	// ErrNilValue indicates a required argument or output slot was absent.
	ErrNilValue = errors.New("required value is nil")

	// ErrNotInitialized indicates a configuration or logging call occurred
	// before Initialize or after Close.
	ErrNotInitialized = errors.New("logging context is not initialized")

	// ErrInvalidRecord indicates a malformed Record was passed where a
	// valid one was required, or Destroy was asked to release a Record
	// that was not allocated by this package.
	ErrInvalidRecord = errors.New("invalid error record")

	// ErrLogWrite indicates the underlying write to the sink failed. The
	// failure is reported, not retried, and leaves the service state
	// unchanged.
	ErrLogWrite = errors.New("write to log sink failed")

	// ErrTruncated is the non-fatal status reported when record
	// construction succeeded but one or more text fields were shortened to
	// their maximum length. The record is fully populated.
	ErrTruncated = errors.New("one or more record fields were truncated")

	// ErrDoubleInit indicates initialization was attempted while already
	// initialized. The existing state is left untouched.
	ErrDoubleInit = errors.New("logging context is already initialized")
)

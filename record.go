package errorlog

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
)

// Record is a structured snapshot of one error event: where it happened,
// a caller-defined numeric code, and a formatted description. The package
// attaches no meaning to Code; hosts define their own taxonomy.
//
// A Record is either caller-owned (populated in place by InitRecord; goes
// out of scope like any value) or package-allocated (returned by NewRecord
// or Capture; released with Destroy).
type Record struct {
	Code        int
	Line        int    `validate:"gte=0"`
	Function    string `validate:"required"`
	File        string `validate:"required"`
	Description string `validate:"required"`

	cause error
	owned bool
}

// InitRecord populates a caller-owned Record in place. Text fields longer
// than their maximum length are truncated to fit and the call returns
// ErrTruncated with the record fully populated. Returns ErrNilValue when r,
// function, file, or format is absent.
func InitRecord(r *Record, code, line int, function, file, format string, args ...any) error {
	if r == nil {
		return ErrNilValue
	}
	if function == emptyString || file == emptyString || format == emptyString {
		return ErrNilValue
	}

	r.Code = code
	r.Line = line
	r.cause = nil

	var truncated bool
	r.Function, truncated = bound(function, MaxFunctionLen, truncated)
	r.File, truncated = bound(file, MaxFileLen, truncated)
	r.Description, truncated = bound(fmt.Sprintf(format, args...), MaxDescriptionLen, truncated)

	if truncated {
		return ErrTruncated
	}
	return nil
}

// NewRecord allocates a Record and populates it like InitRecord. The
// returned pointer is an owning handle: release it with Destroy. On
// ErrTruncated the record is still returned, fully populated; on any other
// error the handle is nil.
func NewRecord(code, line int, function, file, format string, args ...any) (*Record, error) {
	r := &Record{owned: true}
	err := InitRecord(r, code, line, function, file, format, args...)
	if err != nil && !errors.Is(err, ErrTruncated) {
		return nil, err
	}
	return r, err
}

// Capture allocates a Record like NewRecord, filling Line, Function, and
// File from the caller's frame. The returned handle must be released with
// Destroy.
func Capture(code int, format string, args ...any) (*Record, error) {
	function, file, line := callerLocation(2)
	return NewRecord(code, line, function, file, format, args...)
}

// Destroy releases a Record obtained from NewRecord or Capture and nils the
// handle. A nil handle, or a handle already nilled by a previous Destroy,
// is a safe no-op. Releasing a Record this package did not allocate is a
// caller bug and is reported as ErrInvalidRecord rather than hidden.
func Destroy(rp **Record) error {
	if rp == nil || *rp == nil {
		return nil
	}
	if !(*rp).owned {
		return fmt.Errorf("%w: record was not allocated by this package", ErrInvalidRecord)
	}
	*rp = nil
	return nil
}

// WithCause attaches an underlying error to the record. LogError enriches
// the emitted line with the cause's full chain. Returns r for chaining.
func (r *Record) WithCause(err error) *Record {
	if r != nil {
		r.cause = err
	}
	return r
}

// Cause returns the error attached with WithCause, or nil.
func (r *Record) Cause() error {
	if r == nil {
		return nil
	}
	return r.cause
}

// String renders the record as a single human-readable line. It is not the
// sink format; hosts use it to route records elsewhere while logging is
// disabled.
func (r *Record) String() string {
	if r == nil {
		return "<nil>"
	}
	return fmt.Sprintf("code=%d file=%s line=%d function=%s description=%q",
		r.Code, r.File, r.Line, r.Function, r.Description)
}

// bound copies s truncated to at most max bytes, accumulating the
// truncation flag across fields.
func bound(s string, max int, already bool) (string, bool) {
	if len(s) <= max {
		return s, already
	}
	return s[:max], true
}

// callerLocation resolves the bare function name, base file name, and line
// of the frame skip levels up the stack.
func callerLocation(skip int) (function, file string, line int) {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "unknown", "unknown", 0
	}
	file = filepath.Base(file)

	function = "unknown"
	if fn := runtime.FuncForPC(pc); fn != nil {
		function = fn.Name()
		if i := strings.LastIndexByte(function, '/'); i >= 0 {
			function = function[i+1:]
		}
		if i := strings.IndexByte(function, '.'); i >= 0 {
			function = function[i+1:]
		}
	}
	return function, file, line
}

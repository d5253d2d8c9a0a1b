package errorlog

import (
	"fmt"
	"os"

	smerrors "github.com/Station-Manager/errors"
	"github.com/rs/zerolog"
	"go.uber.org/atomic"
)

// Service holds the process-wide logging decision: whether diagnostic lines
// are written and where. Zero value is an uninitialized service; call
// Initialize before any other operation. The package-level functions in
// global.go delegate to one default Service.
type Service struct {
	// WithTimestamp adds a timestamp field to every emitted line. Set it
	// before Initialize (or via NewService).
	WithTimestamp bool

	initialized atomic.Bool
	enabled     atomic.Bool
	logger      atomic.Pointer[zerolog.Logger]
	sink        *errWriter
	file        *os.File
}

// Config describes the initial state of a Service built with NewService.
type Config struct {
	// Enabled turns logging on immediately after initialization.
	Enabled bool
	// WithTimestamp adds a timestamp field to every emitted line.
	WithTimestamp bool
	// LogFilePath, when non-empty, is opened in append mode as the sink.
	// Empty means standard error.
	LogFilePath string `validate:"omitempty,filepath"`
}

// NewService builds and initializes a Service from cfg.
func NewService(cfg Config) (*Service, error) {
	const op smerrors.Op = "errorlog.NewService"
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	s := &Service{WithTimestamp: cfg.WithTimestamp}
	if err := s.Initialize(); err != nil {
		return nil, err
	}
	if cfg.LogFilePath != emptyString {
		if err := s.SetLogFile(cfg.LogFilePath); err != nil {
			_ = s.Close()
			return nil, smerrors.New(op).Err(err).Msg(errMsgOpenLogFile)
		}
	}
	if cfg.Enabled {
		_ = s.SetLogOn()
	}
	return s, nil
}

// Initialize installs the service state: logging disabled, sink defaulted
// to standard error. A second call is rejected with ErrDoubleInit and does
// not disturb the existing state.
func (s *Service) Initialize() error {
	if s == nil {
		return ErrNilValue
	}
	if s.initialized.Load() {
		return ErrDoubleInit
	}

	s.enabled.Store(false)
	s.swapSink(newErrWriter(os.Stderr), nil)
	s.initialized.Store(true)
	return nil
}

// Close closes any owned file sink and resets the service to the
// uninitialized state. Calling Close on an uninitialized (or already
// closed) service reports ErrNotInitialized.
func (s *Service) Close() error {
	const op smerrors.Op = "errorlog.Close"
	if s == nil {
		return ErrNilValue
	}
	if !s.initialized.Load() {
		return ErrNotInitialized
	}

	s.initialized.Store(false)
	s.enabled.Store(false)
	s.logger.Store(nil)
	s.sink = nil

	if s.file != nil {
		f := s.file
		s.file = nil
		if err := f.Close(); err != nil {
			return smerrors.New(op).Err(err).Msg(errMsgCloseLogFile)
		}
	}
	return nil
}

// SetLogFile opens path in append mode and swaps it in as the sink, closing
// the previously owned file. An empty path means standard error. On open
// failure the current sink is left unchanged and the platform error is
// propagated.
func (s *Service) SetLogFile(path string) error {
	const op smerrors.Op = "errorlog.SetLogFile"
	if s == nil {
		return ErrNilValue
	}
	if !s.initialized.Load() {
		return ErrNotInitialized
	}

	if path == emptyString {
		s.swapSink(newErrWriter(os.Stderr), nil)
		return nil
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return smerrors.New(op).Err(err).Msg(errMsgOpenLogFile)
	}
	s.swapSink(newErrWriter(f), f)
	return nil
}

// SetLogOn enables logging. The sink is unaffected.
func (s *Service) SetLogOn() error {
	if s == nil {
		return ErrNilValue
	}
	if !s.initialized.Load() {
		return ErrNotInitialized
	}
	s.enabled.Store(true)
	return nil
}

// SetLogOff disables logging: LogError becomes a guaranteed no-op success.
// The sink is unaffected.
func (s *Service) SetLogOff() error {
	if s == nil {
		return ErrNilValue
	}
	if !s.initialized.Load() {
		return ErrNotInitialized
	}
	s.enabled.Store(false)
	return nil
}

// Enabled reports whether LogError currently writes to the sink.
func (s *Service) Enabled() bool {
	return s != nil && s.initialized.Load() && s.enabled.Load()
}

// Initialized reports whether the service is between Initialize and Close.
func (s *Service) Initialized() bool {
	return s != nil && s.initialized.Load()
}

// LogError renders r as one line and writes it to the sink with a single
// underlying write call. With logging disabled it returns success without
// touching the sink. The record is validated first; a structurally invalid
// record is rejected with ErrInvalidRecord.
func (s *Service) LogError(r *Record) error {
	if s == nil {
		return ErrNilValue
	}
	if !s.initialized.Load() {
		return ErrNotInitialized
	}
	if !s.enabled.Load() {
		return nil
	}
	if r == nil {
		return ErrNilValue
	}
	if err := validateRecord(r); err != nil {
		return err
	}

	logger := s.logger.Load()
	if logger == nil || s.sink == nil {
		return ErrNilValue
	}

	ev := logger.Error().
		Int("code", r.Code).
		Str("file", r.File).
		Int("line", r.Line).
		Str("function", r.Function)

	if r.cause != nil {
		ev = ev.AnErr("cause", r.cause)
		chain, ops, root, rootOp := buildErrorChain(r.cause)
		if len(chain) > 0 {
			ev = ev.Strs("cause_chain", chain).
				Str("cause_root", root).
				Str("cause_history", joinChain(chain)).
				Strs("cause_ops", ops)
			if rootOp != emptyString {
				ev = ev.Str("cause_root_op", rootOp)
			}
		}
	}

	s.sink.reset()
	ev.Msg(r.Description)
	if werr := s.sink.takeErr(); werr != nil {
		return fmt.Errorf("%w: %s", ErrLogWrite, werr)
	}
	return nil
}

// swapSink installs w as the sink and rebuilds the logger onto it. The
// previously owned file, if any, is closed first so at most one file handle
// is open at a time; owned is the new owned file (nil for standard error).
func (s *Service) swapSink(w *errWriter, owned *os.File) {
	if s.file != nil {
		_ = s.file.Close()
	}
	s.file = owned
	s.sink = w

	logger := zerolog.New(w)
	if s.WithTimestamp {
		logger = logger.With().Timestamp().Logger()
	}
	s.logger.Store(&logger)
}

package errorlog

import "go.uber.org/atomic"

// defaultService backs the package-level functions. Hosts that want the
// original single-global-context discipline use these; hosts that want
// explicit, auditable state construct their own Service.
var defaultService atomic.Pointer[Service]

// Init installs the package default Service with logging disabled and the
// sink defaulted to standard error. A second Init without an intervening
// Cleanup is rejected with ErrDoubleInit.
func Init() error {
	if defaultService.Load() != nil {
		return ErrDoubleInit
	}
	s := &Service{}
	if err := s.Initialize(); err != nil {
		return err
	}
	defaultService.Store(s)
	return nil
}

// Cleanup closes the package default Service and resets the package to the
// uninitialized state. Reports ErrNotInitialized before Init or after a
// prior Cleanup.
func Cleanup() error {
	s := defaultService.Load()
	if s == nil {
		return ErrNotInitialized
	}
	defaultService.Store(nil)
	return s.Close()
}

// SetLogFile configures the default Service's sink. See Service.SetLogFile.
func SetLogFile(path string) error {
	s := defaultService.Load()
	if s == nil {
		return ErrNotInitialized
	}
	return s.SetLogFile(path)
}

// SetLogOn enables logging on the default Service.
func SetLogOn() error {
	s := defaultService.Load()
	if s == nil {
		return ErrNotInitialized
	}
	return s.SetLogOn()
}

// SetLogOff disables logging on the default Service.
func SetLogOff() error {
	s := defaultService.Load()
	if s == nil {
		return ErrNotInitialized
	}
	return s.SetLogOff()
}

// LogError logs r through the default Service. See Service.LogError.
func LogError(r *Record) error {
	s := defaultService.Load()
	if s == nil {
		return ErrNotInitialized
	}
	return s.LogError(r)
}

package errorlog

import "io"

// errWriter wraps the sink stream and captures the error of the most recent
// write. zerolog discards write errors by default; LogError needs them to
// report ErrLogWrite, so it resets the capture before emitting and collects
// it after. Single-threaded like the rest of the package.
type errWriter struct {
	w   io.Writer
	err error
}

func newErrWriter(w io.Writer) *errWriter {
	return &errWriter{w: w}
}

func (e *errWriter) Write(p []byte) (int, error) {
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}

func (e *errWriter) reset() {
	e.err = nil
}

func (e *errWriter) takeErr() error {
	err := e.err
	e.err = nil
	return err
}

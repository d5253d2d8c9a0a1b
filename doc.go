// Package errorlog captures structured diagnostic records (source location,
// function, numeric code, formatted description) at the point a failure is
// detected and routes them to a configurable log sink, independent of
// whatever value the failing call returns.
//
// Key features
//   - Record value type with bounded text fields: oversized input is
//     truncated to fit, never overflowed, and reported as ErrTruncated
//   - Two construction lifecycles: populate a caller-owned Record in place
//     with InitRecord, or obtain an owning handle from NewRecord/Capture
//     and release it with Destroy
//   - Service lifecycle (Initialize -> configure -> Close) guarding a single
//     sink: an append-mode file or standard error, with logging gated by an
//     explicit on/off switch
//   - One zerolog line per logged record, written with a single call to the
//     underlying stream; cause-chain enrichment for records carrying an
//     error (full chain, root cause, operations for Station-Manager
//     DetailedError)
//   - Every operation reports a discrete result code; the package never
//     aborts the process and never writes without an explicit LogError call
//
// The package is single-threaded by contract: no internal locking guards
// the sink swap path, and concurrent configuration or logging calls are
// unsupported.
//
// Typical usage
//
//	svc := &errorlog.Service{}
//	if err := svc.Initialize(); err != nil { panic(err) }
//	defer svc.Close()
//
//	_ = svc.SetLogOn()
//	_ = svc.SetLogFile("./errorlog.txt")
//
//	rec, err := errorlog.Capture(-2, "bad input: %d", 7)
//	if err != nil && !errors.Is(err, errorlog.ErrTruncated) { return err }
//	_ = svc.LogError(rec)
//	_ = errorlog.Destroy(&rec)
package errorlog

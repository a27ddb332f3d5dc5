// Package retry wraps operations that fail transiently, such as calls into a
// COM automation layer, with exponential backoff and jitter.
//
// The wrapped operation is treated as atomic: it either succeeds or is safe
// to run again. Callers are expected to pass side-effect-free or idempotent
// operations; this is a convention, not something the package can enforce.
//
//	err := retry.Do(ctx, retry.Default, func() error {
//	    return sheet.Recalculate()
//	})
//
// The first call is immediate. After a failure, the wrapper waits
// delay * (1 ± jitter), scales delay by the backoff factor, and tries again,
// up to Tries total attempts. When every attempt fails, the last error is
// returned unchanged.
package retry

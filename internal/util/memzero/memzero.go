// Package memzero wipes sensitive byte slices.
package memzero

import "runtime"

// Zero overwrites b with zeros. This is best-effort: copies made elsewhere
// (by the runtime, by encoders) are not reached.
//
//go:noinline
func Zero(b []byte) {
	if len(b) == 0 {
		return
	}
	clear(b)
	runtime.KeepAlive(&b)
}

// Package memzero wipes sensitive buffers.
package memzero

import "crypto/subtle"

// Zero overwrites each buffer with zeros using a constant-time copy so the
// writes are not elided.
func Zero(bufs ...[]byte) {
	for _, b := range bufs {
		if len(b) == 0 {
			continue
		}
		subtle.ConstantTimeCopy(1, b, make([]byte, len(b)))
	}
}

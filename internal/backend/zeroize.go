package backend

import "runtime"

// wipe zeroes b. The KeepAlive keeps the writes from being elided when b
// becomes unreachable right after the call (golang.org/issue/33325).
func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}

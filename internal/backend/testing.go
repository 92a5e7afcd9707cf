package backend

import "io"

// SetRandReaderForTesting replaces the random source used by fixed-backend
// key generation and returns a function that restores the previous source.
// Passing nil restores the default of crypto/rand.
//
// Intended for tests that need deterministic keys or simulated entropy
// failures. Not for production use.
func SetRandReaderForTesting(r io.Reader) func() {
	old := randReader
	randReader = r
	return func() {
		randReader = old
	}
}

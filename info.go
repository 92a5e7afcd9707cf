package pqcops

import "github.com/latticeworks/pqcops-go/internal/backend"

// Algorithm describes an algorithm's identity and exact buffer sizes.
// KEM algorithms report a zero MaxSignatureSize; signature algorithms
// report zero CiphertextSize and SharedSecretSize.
type Algorithm struct {
	// Name is the canonical algorithm name, e.g. "ML-KEM-768".
	Name string

	// PublicKeySize is the exact public key length in bytes.
	PublicKeySize int

	// SecretKeySize is the exact secret key length in bytes.
	SecretKeySize int

	// CiphertextSize is the exact KEM ciphertext length in bytes.
	CiphertextSize int

	// SharedSecretSize is the exact KEM shared secret length in bytes.
	SharedSecretSize int

	// MaxSignatureSize is the maximum signature length in bytes. Actual
	// signatures may be shorter; buffers sized to this always suffice.
	MaxSignatureSize int
}

// Info describes a client's active backend and the primitive library
// behind it.
type Info struct {
	// Backend identifies the active backend implementation.
	Backend Backend

	// KEMAlgorithm describes the configured KEM algorithm.
	KEMAlgorithm Algorithm

	// SignatureAlgorithm describes the configured signature algorithm.
	SignatureAlgorithm Algorithm

	// Library identifies the primitive library serving both backends.
	Library string

	// LibraryVersion is the primitive library's module version, or
	// "unknown" when the binary carries no module metadata.
	LibraryVersion string
}

// publicAlgorithm converts an internal descriptor to the public type.
func publicAlgorithm(a backend.Algorithm) Algorithm {
	return Algorithm{
		Name:             a.Name,
		PublicKeySize:    a.PublicKeySize,
		SecretKeySize:    a.SecretKeySize,
		CiphertextSize:   a.CiphertextSize,
		SharedSecretSize: a.SharedSecretSize,
		MaxSignatureSize: a.MaxSignatureSize,
	}
}

// KEMAlgorithm returns the descriptor of the configured KEM algorithm.
// The descriptor is fixed at construction; callers can size buffers from
// it before any operation runs.
func (c *Client) KEMAlgorithm() Algorithm {
	return publicAlgorithm(c.kem.Algorithm())
}

// SignatureAlgorithm returns the descriptor of the configured signature
// algorithm. The descriptor is fixed at construction; callers can size
// buffers from it before any operation runs.
func (c *Client) SignatureAlgorithm() Algorithm {
	return publicAlgorithm(c.signer.Algorithm())
}

// Info returns the active backend's identity, the configured algorithm
// descriptors, and the primitive library name and version. It works on a
// closed client; the data is fixed at construction.
func (c *Client) Info() *Info {
	return &Info{
		Backend:            c.backend,
		KEMAlgorithm:       c.KEMAlgorithm(),
		SignatureAlgorithm: c.SignatureAlgorithm(),
		Library:            backend.LibraryName,
		LibraryVersion:     backend.LibraryVersion(),
	}
}

// ListKEMAlgorithms returns the names of the KEM algorithms the active
// backend can serve. Under the registry backend this is the full circl KEM
// registry; under the fixed backend it is exactly the compiled-in
// algorithm. Order is not part of the contract; rely on membership only.
func (c *Client) ListKEMAlgorithms() []string {
	if c.backend == BackendRegistry {
		return backend.KEMAlgorithms()
	}
	return []string{c.kem.Algorithm().Name}
}

// ListSignatureAlgorithms returns the names of the signature algorithms
// the active backend can serve. Under the registry backend this is the
// full circl signature registry; under the fixed backend it is exactly the
// compiled-in algorithm. Order is not part of the contract; rely on
// membership only.
func (c *Client) ListSignatureAlgorithms() []string {
	if c.backend == BackendRegistry {
		return backend.SignatureAlgorithms()
	}
	return []string{c.signer.Algorithm().Name}
}

// LibraryVersion reports the version of the primitive library compiled
// into the binary without needing a client. See [Info] for the same data
// alongside the backend identity.
func LibraryVersion() string {
	return backend.LibraryVersion()
}

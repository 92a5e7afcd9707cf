package backend

// Algorithm describes an algorithm's identity and its exact buffer sizes.
// A descriptor is resolved once when a backend is constructed and is never
// mutated afterwards; all operations on the backend share it read-only.
type Algorithm struct {
	// Name is the canonical algorithm name, e.g. "ML-KEM-768".
	// It matches the name the circl registries report, so a name accepted
	// by one backend resolves to the same algorithm under the other.
	Name string

	// PublicKeySize is the exact public key length in bytes.
	PublicKeySize int

	// SecretKeySize is the exact secret key length in bytes.
	SecretKeySize int

	// CiphertextSize is the exact KEM ciphertext length in bytes.
	// Zero for signature algorithms.
	CiphertextSize int

	// SharedSecretSize is the exact KEM shared secret length in bytes.
	// Zero for signature algorithms.
	SharedSecretSize int

	// MaxSignatureSize is the maximum signature length in bytes.
	// Zero for KEM algorithms.
	MaxSignatureSize int
}

// KEM defines the interface for key-encapsulation backends.
// Implementations include the fixed backend (NewFixedKEM), bound to
// ML-KEM-768 at compile time, and the registry backend (NewRegistryKEM),
// which resolves any algorithm the circl KEM registry knows.
//
// Implementations hold no mutable state beyond the descriptor resolved at
// construction, so all methods are safe for concurrent use.
type KEM interface {
	// Algorithm returns the descriptor of the bound algorithm.
	Algorithm() Algorithm

	// GenerateKeyPair creates a fresh key pair. The returned buffers have
	// exactly PublicKeySize and SecretKeySize bytes and are owned by the
	// caller; no partial key material is returned on error.
	GenerateKeyPair() (publicKey, secretKey []byte, err error)

	// Encapsulate derives a shared secret for publicKey and encapsulates
	// it into a ciphertext. Each call consumes fresh randomness, so two
	// calls against the same public key produce different ciphertexts and
	// different secrets.
	Encapsulate(publicKey []byte) (ciphertext, sharedSecret []byte, err error)

	// Decapsulate recovers the shared secret encapsulated in ciphertext.
	// A well-formed ciphertext that was not produced for secretKey yields
	// the primitive's implicit-rejection secret, not an error; successful
	// decapsulation is not proof the ciphertext was authentic.
	Decapsulate(secretKey, ciphertext []byte) ([]byte, error)
}

// Signer defines the interface for signature backends.
// Implementations include the fixed backend (NewFixedSigner), bound to
// ML-DSA-65 at compile time, and the registry backend (NewRegistrySigner).
//
// Implementations hold no mutable state beyond the descriptor resolved at
// construction, so all methods are safe for concurrent use.
type Signer interface {
	// Algorithm returns the descriptor of the bound algorithm.
	Algorithm() Algorithm

	// GenerateKeyPair creates a fresh key pair. The returned buffers have
	// exactly PublicKeySize and SecretKeySize bytes and are owned by the
	// caller; no partial key material is returned on error.
	GenerateKeyPair() (publicKey, secretKey []byte, err error)

	// Sign signs message with secretKey. The returned buffer has exactly
	// the length the primitive produced, at most MaxSignatureSize bytes,
	// never padded.
	Sign(message, secretKey []byte) ([]byte, error)

	// Verify reports whether signature is a valid signature of message
	// under publicKey. A mismatched signature is (false, nil), not an
	// error. Verification is computed fresh from its inputs with no state
	// carried over from any Sign call.
	Verify(message, signature, publicKey []byte) (bool, error)
}

package backend

import "errors"

// Errors returned by backend constructors and operations. The public
// package translates these into its error taxonomy; they are kept as
// sentinels so the translation can use errors.Is.
var (
	// ErrUnsupportedAlgorithm is returned by a constructor when the
	// requested algorithm name cannot be served by that backend.
	ErrUnsupportedAlgorithm = errors.New("unsupported algorithm")

	// ErrInvalidPublicKeySize is returned when a public key buffer does
	// not have the algorithm's exact public key length.
	ErrInvalidPublicKeySize = errors.New("invalid public key size")

	// ErrInvalidSecretKeySize is returned when a secret key buffer does
	// not have the algorithm's exact secret key length.
	ErrInvalidSecretKeySize = errors.New("invalid secret key size")

	// ErrInvalidCiphertextSize is returned when a ciphertext buffer does
	// not have the algorithm's exact ciphertext length.
	ErrInvalidCiphertextSize = errors.New("invalid ciphertext size")
)

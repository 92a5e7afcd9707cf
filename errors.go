package pqcops

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is checks. Operation failures are returned as
// structured types ([UnsupportedAlgorithmError], [InvalidLengthError],
// [OperationError]) that match these sentinels through errors.Is.
var (
	// ErrClientClosed is returned when an operation is attempted on a
	// closed client.
	ErrClientClosed = errors.New("client has been closed")

	// ErrUnknownBackend is returned by New when the configured backend
	// name is not recognized.
	ErrUnknownBackend = errors.New("unknown backend")

	// ErrUnsupportedAlgorithm is returned by New when a configured
	// algorithm is not available under the selected backend.
	ErrUnsupportedAlgorithm = errors.New("unsupported algorithm")

	// ErrInvalidKeyLength is returned when a public or secret key buffer
	// does not have the algorithm's exact length.
	ErrInvalidKeyLength = errors.New("invalid key length")

	// ErrInvalidCiphertextLength is returned when a ciphertext buffer
	// does not have the algorithm's exact length.
	ErrInvalidCiphertextLength = errors.New("invalid ciphertext length")

	// ErrKeyGenerationFailed is returned when the primitive fails to
	// produce a key pair.
	ErrKeyGenerationFailed = errors.New("key generation failed")

	// ErrEncapsulationFailed is returned when the primitive rejects an
	// encapsulation, for example over a malformed public key of the
	// correct length.
	ErrEncapsulationFailed = errors.New("encapsulation failed")

	// ErrDecapsulationFailed is returned when the primitive rejects a
	// decapsulation, for example over a corrupted secret key. A merely
	// mismatched ciphertext is not an error; see [Client.Decapsulate].
	ErrDecapsulationFailed = errors.New("decapsulation failed")

	// ErrSigningFailed is returned when the primitive rejects a signing
	// operation.
	ErrSigningFailed = errors.New("signing failed")

	// ErrInternal is returned when the primitive library fails in a way
	// that has no more specific classification.
	ErrInternal = errors.New("internal error")
)

// Field names recorded in [InvalidLengthError].
const (
	FieldPublicKey  = "public key"
	FieldSecretKey  = "secret key"
	FieldCiphertext = "ciphertext"
)

// Operation names recorded in [OperationError].
const (
	OpGenerateKeyPair = "generate key pair"
	OpEncapsulate     = "encapsulate"
	OpDecapsulate     = "decapsulate"
	OpSign            = "sign"
	OpVerify          = "verify"
)

// PQCOpsError is the interface implemented by all structured errors
// returned by this SDK. Use errors.As to access the concrete type, or
// errors.Is with the sentinel errors above.
type PQCOpsError interface {
	error
	// PQCOpsError is a marker method.
	PQCOpsError()
}

// UnsupportedAlgorithmError is returned by [New] when a configured
// algorithm cannot be served by the selected backend.
type UnsupportedAlgorithmError struct {
	// Algorithm is the requested algorithm name.
	Algorithm string
	// Backend is the backend that rejected it.
	Backend Backend
}

// Error implements the error interface.
func (e *UnsupportedAlgorithmError) Error() string {
	return fmt.Sprintf("algorithm %q is not supported by the %s backend", e.Algorithm, e.Backend)
}

// Is implements errors.Is matching against ErrUnsupportedAlgorithm.
func (e *UnsupportedAlgorithmError) Is(target error) bool {
	return target == ErrUnsupportedAlgorithm
}

// PQCOpsError implements the PQCOpsError interface.
func (e *UnsupportedAlgorithmError) PQCOpsError() {}

// InvalidLengthError is returned when an input buffer does not have the
// exact length the configured algorithm requires. The expected lengths are
// available up front from [Client.KEMAlgorithm] and
// [Client.SignatureAlgorithm].
type InvalidLengthError struct {
	// Field names the offending input: FieldPublicKey, FieldSecretKey or
	// FieldCiphertext.
	Field string
	// Got is the length of the buffer that was passed.
	Got int
	// Want is the exact length the algorithm requires.
	Want int
}

// Error implements the error interface.
func (e *InvalidLengthError) Error() string {
	return fmt.Sprintf("invalid %s length: got %d bytes, want %d", e.Field, e.Got, e.Want)
}

// Is implements errors.Is matching against ErrInvalidKeyLength and
// ErrInvalidCiphertextLength.
func (e *InvalidLengthError) Is(target error) bool {
	if e.Field == FieldCiphertext {
		return target == ErrInvalidCiphertextLength
	}
	return target == ErrInvalidKeyLength
}

// PQCOpsError implements the PQCOpsError interface.
func (e *InvalidLengthError) PQCOpsError() {}

// OperationError is returned when the primitive library reports a failure
// during an operation. It records which operation failed and for which
// algorithm, and wraps the underlying error.
type OperationError struct {
	// Op is the operation that failed: OpGenerateKeyPair, OpEncapsulate,
	// OpDecapsulate, OpSign or OpVerify.
	Op string
	// Algorithm is the canonical name of the algorithm in use.
	Algorithm string
	// Err is the underlying error from the primitive library.
	Err error
}

// Error implements the error interface.
func (e *OperationError) Error() string {
	return fmt.Sprintf("%s failed (%s): %v", e.Op, e.Algorithm, e.Err)
}

// Unwrap returns the underlying error.
func (e *OperationError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is matching against the per-operation sentinels.
// Operations with no sentinel of their own match ErrInternal.
func (e *OperationError) Is(target error) bool {
	switch e.Op {
	case OpGenerateKeyPair:
		return target == ErrKeyGenerationFailed
	case OpEncapsulate:
		return target == ErrEncapsulationFailed
	case OpDecapsulate:
		return target == ErrDecapsulationFailed
	case OpSign:
		return target == ErrSigningFailed
	}
	return target == ErrInternal
}

// PQCOpsError implements the PQCOpsError interface.
func (e *OperationError) PQCOpsError() {}

// wrapError converts a backend failure into the public error taxonomy.
// Input lengths are validated before the backend is invoked, so anything
// arriving here is a primitive failure classified by the operation that
// produced it.
func wrapError(op, algorithm string, err error) error {
	if err == nil {
		return nil
	}

	var opErr *OperationError
	if errors.As(err, &opErr) {
		// Already wrapped; don't double-wrap.
		return err
	}

	return &OperationError{
		Op:        op,
		Algorithm: algorithm,
		Err:       err,
	}
}

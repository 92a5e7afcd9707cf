package backend

import (
	"fmt"
	"io"
	"strings"

	"github.com/cloudflare/circl/kem/mlkem/mlkem768"
	"github.com/cloudflare/circl/sign/mldsa/mldsa65"
)

// Canonical names of the algorithms the fixed backend serves. They match
// the names the circl registries report.
const (
	MLKEM768 = "ML-KEM-768"
	MLDSA65  = "ML-DSA-65"
)

// randReader is the source of randomness for fixed-backend key generation.
// nil selects crypto/rand. Tests can override it via SetRandReaderForTesting.
var randReader io.Reader

// Descriptors for the fixed backend, built from circl's compile-time
// constants rather than a registry lookup.
var (
	mlkem768Algorithm = Algorithm{
		Name:             MLKEM768,
		PublicKeySize:    mlkem768.PublicKeySize,
		SecretKeySize:    mlkem768.PrivateKeySize,
		CiphertextSize:   mlkem768.CiphertextSize,
		SharedSecretSize: mlkem768.SharedKeySize,
	}

	mldsa65Algorithm = Algorithm{
		Name:             MLDSA65,
		PublicKeySize:    mldsa65.PublicKeySize,
		SecretKeySize:    mldsa65.PrivateKeySize,
		MaxSignatureSize: mldsa65.SignatureSize,
	}
)

// fixedKEM serves ML-KEM-768 through circl's dedicated package, with no
// registry indirection on the call path.
type fixedKEM struct{}

// NewFixedKEM returns the compile-time ML-KEM-768 backend. Any other name
// fails with ErrUnsupportedAlgorithm; names are matched case-insensitively,
// following the registry convention.
func NewFixedKEM(name string) (KEM, error) {
	if !strings.EqualFold(name, MLKEM768) {
		return nil, ErrUnsupportedAlgorithm
	}
	return fixedKEM{}, nil
}

func (fixedKEM) Algorithm() Algorithm {
	return mlkem768Algorithm
}

func (fixedKEM) GenerateKeyPair() ([]byte, []byte, error) {
	pub, priv, err := mlkem768.GenerateKeyPair(randReader)
	if err != nil {
		return nil, nil, fmt.Errorf("mlkem768: generate key pair: %w", err)
	}

	// MarshalBinary cannot fail for keys produced by GenerateKeyPair.
	publicKey, _ := pub.MarshalBinary()
	secretKey, _ := priv.MarshalBinary()

	return publicKey, secretKey, nil
}

func (fixedKEM) Encapsulate(publicKey []byte) ([]byte, []byte, error) {
	// EncapsulateTo panics on wrong buffer sizes, so the length is
	// checked before anything touches the primitive.
	if len(publicKey) != mlkem768.PublicKeySize {
		return nil, nil, ErrInvalidPublicKeySize
	}

	var pub mlkem768.PublicKey
	if err := pub.Unpack(publicKey); err != nil {
		return nil, nil, fmt.Errorf("mlkem768: unpack public key: %w", err)
	}

	ciphertext := make([]byte, mlkem768.CiphertextSize)
	sharedSecret := make([]byte, mlkem768.SharedKeySize)
	pub.EncapsulateTo(ciphertext, sharedSecret, nil)

	return ciphertext, sharedSecret, nil
}

func (fixedKEM) Decapsulate(secretKey, ciphertext []byte) ([]byte, error) {
	// DecapsulateTo panics on wrong buffer sizes, so both lengths are
	// checked before anything touches the primitive.
	if len(secretKey) != mlkem768.PrivateKeySize {
		return nil, ErrInvalidSecretKeySize
	}
	if len(ciphertext) != mlkem768.CiphertextSize {
		return nil, ErrInvalidCiphertextSize
	}

	var priv mlkem768.PrivateKey
	if err := priv.Unpack(secretKey); err != nil {
		return nil, fmt.Errorf("mlkem768: unpack secret key: %w", err)
	}

	sharedSecret := make([]byte, mlkem768.SharedKeySize)
	priv.DecapsulateTo(sharedSecret, ciphertext)

	return sharedSecret, nil
}

// fixedSigner serves ML-DSA-65 through circl's dedicated package, with no
// registry indirection on the call path.
type fixedSigner struct{}

// NewFixedSigner returns the compile-time ML-DSA-65 backend. Any other name
// fails with ErrUnsupportedAlgorithm; names are matched case-insensitively,
// following the registry convention.
func NewFixedSigner(name string) (Signer, error) {
	if !strings.EqualFold(name, MLDSA65) {
		return nil, ErrUnsupportedAlgorithm
	}
	return fixedSigner{}, nil
}

func (fixedSigner) Algorithm() Algorithm {
	return mldsa65Algorithm
}

func (fixedSigner) GenerateKeyPair() ([]byte, []byte, error) {
	pub, priv, err := mldsa65.GenerateKey(randReader)
	if err != nil {
		return nil, nil, fmt.Errorf("mldsa65: generate key: %w", err)
	}

	// MarshalBinary cannot fail for keys produced by GenerateKey.
	publicKey, _ := pub.MarshalBinary()
	secretKey, _ := priv.MarshalBinary()

	return publicKey, secretKey, nil
}

func (fixedSigner) Sign(message, secretKey []byte) ([]byte, error) {
	if len(secretKey) != mldsa65.PrivateKeySize {
		return nil, ErrInvalidSecretKeySize
	}

	var priv mldsa65.PrivateKey
	if err := priv.UnmarshalBinary(secretKey); err != nil {
		return nil, fmt.Errorf("mldsa65: unmarshal secret key: %w", err)
	}

	// Hedged signing: the signature mixes fresh randomness with the
	// deterministic FIPS 204 construction.
	signature := make([]byte, mldsa65.SignatureSize)
	if err := mldsa65.SignTo(&priv, message, nil, true, signature); err != nil {
		return nil, fmt.Errorf("mldsa65: sign: %w", err)
	}

	return signature, nil
}

func (fixedSigner) Verify(message, signature, publicKey []byte) (bool, error) {
	if len(publicKey) != mldsa65.PublicKeySize {
		return false, ErrInvalidPublicKeySize
	}

	var pub mldsa65.PublicKey
	if err := pub.UnmarshalBinary(publicKey); err != nil {
		return false, fmt.Errorf("mldsa65: unmarshal public key: %w", err)
	}

	// Verify tolerates signatures of any length and reports false for
	// anything malformed; only the public key needed validation here.
	return mldsa65.Verify(&pub, message, nil, signature), nil
}

package backend

import (
	"fmt"

	"github.com/cloudflare/circl/kem"
	kemschemes "github.com/cloudflare/circl/kem/schemes"
	"github.com/cloudflare/circl/sign"
	signschemes "github.com/cloudflare/circl/sign/schemes"
)

// registryKEM serves KEM operations through a scheme resolved by name from
// the circl registry. All lengths come from the resolved scheme, never from
// local constants, so any KEM the registry knows works unchanged.
type registryKEM struct {
	scheme kem.Scheme
	alg    Algorithm
}

// NewRegistryKEM resolves name against the circl KEM registry. Unknown
// names fail with ErrUnsupportedAlgorithm; lookup is case-insensitive. The
// resolved scheme is fixed for the lifetime of the backend.
func NewRegistryKEM(name string) (KEM, error) {
	scheme := kemschemes.ByName(name)
	if scheme == nil {
		return nil, ErrUnsupportedAlgorithm
	}

	return &registryKEM{
		scheme: scheme,
		alg: Algorithm{
			Name:             scheme.Name(),
			PublicKeySize:    scheme.PublicKeySize(),
			SecretKeySize:    scheme.PrivateKeySize(),
			CiphertextSize:   scheme.CiphertextSize(),
			SharedSecretSize: scheme.SharedKeySize(),
		},
	}, nil
}

func (r *registryKEM) Algorithm() Algorithm {
	return r.alg
}

func (r *registryKEM) GenerateKeyPair() ([]byte, []byte, error) {
	pub, priv, err := r.scheme.GenerateKeyPair()
	if err != nil {
		return nil, nil, fmt.Errorf("%s: generate key pair: %w", r.alg.Name, err)
	}

	pubBytes, err := pub.MarshalBinary()
	if err != nil {
		return nil, nil, fmt.Errorf("%s: marshal public key: %w", r.alg.Name, err)
	}
	privBytes, err := priv.MarshalBinary()
	if err != nil {
		return nil, nil, fmt.Errorf("%s: marshal secret key: %w", r.alg.Name, err)
	}

	// Copy out of the scheme's buffers so the caller owns the only live
	// reference, then wipe the intermediate holding the secret key.
	publicKey := make([]byte, len(pubBytes))
	copy(publicKey, pubBytes)
	secretKey := make([]byte, len(privBytes))
	copy(secretKey, privBytes)
	wipe(privBytes)

	return publicKey, secretKey, nil
}

func (r *registryKEM) Encapsulate(publicKey []byte) ([]byte, []byte, error) {
	if len(publicKey) != r.alg.PublicKeySize {
		return nil, nil, ErrInvalidPublicKeySize
	}

	pub, err := r.scheme.UnmarshalBinaryPublicKey(publicKey)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: unmarshal public key: %w", r.alg.Name, err)
	}

	ct, ss, err := r.scheme.Encapsulate(pub)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: encapsulate: %w", r.alg.Name, err)
	}

	ciphertext := make([]byte, len(ct))
	copy(ciphertext, ct)
	sharedSecret := make([]byte, len(ss))
	copy(sharedSecret, ss)
	wipe(ss)

	return ciphertext, sharedSecret, nil
}

func (r *registryKEM) Decapsulate(secretKey, ciphertext []byte) ([]byte, error) {
	if len(secretKey) != r.alg.SecretKeySize {
		return nil, ErrInvalidSecretKeySize
	}
	if len(ciphertext) != r.alg.CiphertextSize {
		return nil, ErrInvalidCiphertextSize
	}

	priv, err := r.scheme.UnmarshalBinaryPrivateKey(secretKey)
	if err != nil {
		return nil, fmt.Errorf("%s: unmarshal secret key: %w", r.alg.Name, err)
	}

	ss, err := r.scheme.Decapsulate(priv, ciphertext)
	if err != nil {
		return nil, fmt.Errorf("%s: decapsulate: %w", r.alg.Name, err)
	}

	sharedSecret := make([]byte, len(ss))
	copy(sharedSecret, ss)
	wipe(ss)

	return sharedSecret, nil
}

// registrySigner serves signature operations through a scheme resolved by
// name from the circl registry.
type registrySigner struct {
	scheme sign.Scheme
	alg    Algorithm
}

// NewRegistrySigner resolves name against the circl signature registry.
// Unknown names fail with ErrUnsupportedAlgorithm; lookup is
// case-insensitive. The resolved scheme is fixed for the lifetime of the
// backend.
func NewRegistrySigner(name string) (Signer, error) {
	scheme := signschemes.ByName(name)
	if scheme == nil {
		return nil, ErrUnsupportedAlgorithm
	}

	return &registrySigner{
		scheme: scheme,
		alg: Algorithm{
			Name:             scheme.Name(),
			PublicKeySize:    scheme.PublicKeySize(),
			SecretKeySize:    scheme.PrivateKeySize(),
			MaxSignatureSize: scheme.SignatureSize(),
		},
	}, nil
}

func (r *registrySigner) Algorithm() Algorithm {
	return r.alg
}

func (r *registrySigner) GenerateKeyPair() ([]byte, []byte, error) {
	pub, priv, err := r.scheme.GenerateKey()
	if err != nil {
		return nil, nil, fmt.Errorf("%s: generate key: %w", r.alg.Name, err)
	}

	pubBytes, err := pub.MarshalBinary()
	if err != nil {
		return nil, nil, fmt.Errorf("%s: marshal public key: %w", r.alg.Name, err)
	}
	privBytes, err := priv.MarshalBinary()
	if err != nil {
		return nil, nil, fmt.Errorf("%s: marshal secret key: %w", r.alg.Name, err)
	}

	publicKey := make([]byte, len(pubBytes))
	copy(publicKey, pubBytes)
	secretKey := make([]byte, len(privBytes))
	copy(secretKey, privBytes)
	wipe(privBytes)

	return publicKey, secretKey, nil
}

func (r *registrySigner) Sign(message, secretKey []byte) ([]byte, error) {
	if len(secretKey) != r.alg.SecretKeySize {
		return nil, ErrInvalidSecretKeySize
	}

	priv, err := r.scheme.UnmarshalBinaryPrivateKey(secretKey)
	if err != nil {
		return nil, fmt.Errorf("%s: unmarshal secret key: %w", r.alg.Name, err)
	}

	sig := r.scheme.Sign(priv, message, nil)

	signature := make([]byte, len(sig))
	copy(signature, sig)

	return signature, nil
}

func (r *registrySigner) Verify(message, signature, publicKey []byte) (bool, error) {
	if len(publicKey) != r.alg.PublicKeySize {
		return false, ErrInvalidPublicKeySize
	}

	pub, err := r.scheme.UnmarshalBinaryPublicKey(publicKey)
	if err != nil {
		return false, fmt.Errorf("%s: unmarshal public key: %w", r.alg.Name, err)
	}

	return r.scheme.Verify(pub, message, signature, nil), nil
}

// KEMAlgorithms returns the name of every KEM the registry resolves, in
// registry order. Callers should rely on membership only, not position.
func KEMAlgorithms() []string {
	all := kemschemes.All()
	names := make([]string, 0, len(all))
	for _, s := range all {
		names = append(names, s.Name())
	}
	return names
}

// SignatureAlgorithms returns the name of every signature scheme the
// registry resolves, in registry order. Callers should rely on membership
// only, not position.
func SignatureAlgorithms() []string {
	all := signschemes.All()
	names := make([]string, 0, len(all))
	for _, s := range all {
		names = append(names, s.Name())
	}
	return names
}

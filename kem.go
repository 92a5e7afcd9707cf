package pqcops

// KeyPair holds a generated key pair and the name of the algorithm that
// produced it. Both buffers are freshly allocated for the call that
// returned them; the client keeps no reference to either.
type KeyPair struct {
	// Algorithm is the canonical name of the generating algorithm.
	Algorithm string

	// PublicKey is the raw public key, exactly PublicKeySize bytes.
	PublicKey []byte

	// SecretKey is the raw secret key, exactly SecretKeySize bytes.
	// It must never be logged or sent anywhere in plaintext. Wipe it
	// when it is no longer needed.
	SecretKey []byte
}

// Encapsulation is the result of a single Encapsulate call.
type Encapsulation struct {
	// Ciphertext transports the shared secret to the secret key holder.
	Ciphertext []byte

	// SharedSecret is the symmetric key material this encapsulation
	// produced. Decapsulating Ciphertext with the matching secret key
	// yields the same bytes. Treat it as secret; derive working keys
	// from it with [DeriveKey] rather than using it directly.
	SharedSecret []byte
}

// GenerateKEMKeyPair creates a key pair for the configured KEM algorithm.
// The returned buffers have exactly the lengths reported by
// [Client.KEMAlgorithm].
func (c *Client) GenerateKEMKeyPair() (*KeyPair, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}

	alg := c.kem.Algorithm()
	publicKey, secretKey, err := c.kem.GenerateKeyPair()
	if err != nil {
		return nil, wrapError(OpGenerateKeyPair, alg.Name, err)
	}

	return &KeyPair{
		Algorithm: alg.Name,
		PublicKey: publicKey,
		SecretKey: secretKey,
	}, nil
}

// Encapsulate derives a fresh shared secret for publicKey and encapsulates
// it into a ciphertext. Each call consumes new randomness: encapsulating
// twice against the same public key produces different ciphertexts and
// different secrets.
//
// publicKey must have exactly the algorithm's public key length, otherwise
// an [InvalidLengthError] is returned before the primitive is invoked.
func (c *Client) Encapsulate(publicKey []byte) (*Encapsulation, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}

	alg := c.kem.Algorithm()
	if len(publicKey) != alg.PublicKeySize {
		return nil, &InvalidLengthError{
			Field: FieldPublicKey,
			Got:   len(publicKey),
			Want:  alg.PublicKeySize,
		}
	}

	ciphertext, sharedSecret, err := c.kem.Encapsulate(publicKey)
	if err != nil {
		return nil, wrapError(OpEncapsulate, alg.Name, err)
	}

	return &Encapsulation{
		Ciphertext:   ciphertext,
		SharedSecret: sharedSecret,
	}, nil
}

// Decapsulate recovers the shared secret encapsulated in ciphertext using
// secretKey.
//
// A well-formed ciphertext that was not produced for secretKey does not
// fail: following the FIPS 203 implicit-rejection contract, it yields a
// deterministic pseudorandom secret unrelated to any encapsulated one.
// Successful decapsulation is therefore not proof of authenticity; callers
// needing that must get it from the surrounding protocol.
//
// Buffers of the wrong length are rejected with an [InvalidLengthError]
// before the primitive is invoked.
func (c *Client) Decapsulate(secretKey, ciphertext []byte) ([]byte, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}

	alg := c.kem.Algorithm()
	if len(secretKey) != alg.SecretKeySize {
		return nil, &InvalidLengthError{
			Field: FieldSecretKey,
			Got:   len(secretKey),
			Want:  alg.SecretKeySize,
		}
	}
	if len(ciphertext) != alg.CiphertextSize {
		return nil, &InvalidLengthError{
			Field: FieldCiphertext,
			Got:   len(ciphertext),
			Want:  alg.CiphertextSize,
		}
	}

	sharedSecret, err := c.kem.Decapsulate(secretKey, ciphertext)
	if err != nil {
		return nil, wrapError(OpDecapsulate, alg.Name, err)
	}

	return sharedSecret, nil
}

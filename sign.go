package pqcops

// GenerateSigningKeyPair creates a key pair for the configured signature
// algorithm. The returned buffers have exactly the lengths reported by
// [Client.SignatureAlgorithm].
func (c *Client) GenerateSigningKeyPair() (*KeyPair, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}

	alg := c.signer.Algorithm()
	publicKey, secretKey, err := c.signer.GenerateKeyPair()
	if err != nil {
		return nil, wrapError(OpGenerateKeyPair, alg.Name, err)
	}

	return &KeyPair{
		Algorithm: alg.Name,
		PublicKey: publicKey,
		SecretKey: secretKey,
	}, nil
}

// Sign signs message with secretKey and returns the signature in its own
// buffer; the message is not copied into it. The signature has exactly the
// length the primitive produced, at most the algorithm's MaxSignatureSize,
// never padded. Messages of any length can be signed, including empty.
//
// secretKey must have exactly the algorithm's secret key length, otherwise
// an [InvalidLengthError] is returned before the primitive is invoked.
func (c *Client) Sign(message, secretKey []byte) ([]byte, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}

	alg := c.signer.Algorithm()
	if len(secretKey) != alg.SecretKeySize {
		return nil, &InvalidLengthError{
			Field: FieldSecretKey,
			Got:   len(secretKey),
			Want:  alg.SecretKeySize,
		}
	}

	signature, err := c.signer.Sign(message, secretKey)
	if err != nil {
		return nil, wrapError(OpSign, alg.Name, err)
	}

	return signature, nil
}

// Verify reports whether signature is a valid signature of message under
// publicKey. A signature that does not match, including one of the wrong
// length or one forged from a different key, yields (false, nil), never an
// error. Verification is stateless: it depends only on the three inputs.
//
// publicKey must have exactly the algorithm's public key length, otherwise
// an [InvalidLengthError] is returned before the primitive is invoked.
func (c *Client) Verify(message, signature, publicKey []byte) (bool, error) {
	if err := c.checkClosed(); err != nil {
		return false, err
	}

	alg := c.signer.Algorithm()
	if len(publicKey) != alg.PublicKeySize {
		return false, &InvalidLengthError{
			Field: FieldPublicKey,
			Got:   len(publicKey),
			Want:  alg.PublicKeySize,
		}
	}

	ok, err := c.signer.Verify(message, signature, publicKey)
	if err != nil {
		return false, wrapError(OpVerify, alg.Name, err)
	}

	return ok, nil
}

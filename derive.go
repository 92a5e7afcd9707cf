package pqcops

import (
	"crypto/sha512"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

// DeriveKey expands a KEM shared secret into length bytes of key material
// using HKDF-SHA-512 (RFC 5869). The raw shared secret should feed a KDF
// rather than be used as a working key directly; this is the derivation
// both sides of an exchange are expected to apply.
//
// salt is optional; an empty salt is replaced with a zeroed salt of the
// hash length, as the RFC prescribes. info binds the derived key to its
// context, such as a protocol label. length must be positive and at most
// 255 times the hash length (16320 bytes).
func DeriveKey(secret, salt, info []byte, length int) ([]byte, error) {
	if length <= 0 {
		return nil, fmt.Errorf("derive key length must be positive, got %d", length)
	}

	if len(salt) == 0 {
		salt = make([]byte, sha512.Size)
	}

	reader := hkdf.New(sha512.New, secret, salt, info)

	key := make([]byte, length)
	if _, err := io.ReadFull(reader, key); err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}

	return key, nil
}

//go:build integration

package integration

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/joho/godotenv"
	pqcops "github.com/latticeworks/pqcops-go"
)

// extraAlgs lists additional registry KEM algorithms to exercise, taken from
// the comma-separated PQCOPS_REGISTRY_ALGS environment variable.
var extraAlgs []string

func TestMain(m *testing.M) {
	// Load .env file if it exists (won't error if missing)
	if err := godotenv.Load("../.env"); err != nil {
		os.Stderr.WriteString("Note: .env file not found at project root\n")
	}

	if raw := os.Getenv("PQCOPS_REGISTRY_ALGS"); raw != "" {
		for _, name := range strings.Split(raw, ",") {
			if name = strings.TrimSpace(name); name != "" {
				extraAlgs = append(extraAlgs, name)
			}
		}
	}

	os.Exit(m.Run())
}

func newClient(t *testing.T, opts ...pqcops.Option) *pqcops.Client {
	t.Helper()

	client, err := pqcops.New(opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	t.Cleanup(func() {
		client.Close()
	})

	return client
}

func newRegistryClient(t *testing.T, opts ...pqcops.Option) *pqcops.Client {
	t.Helper()
	return newClient(t, append([]pqcops.Option{pqcops.WithBackend(pqcops.BackendRegistry)}, opts...)...)
}

func TestIntegration_DescriptorsAgree(t *testing.T) {
	fixed := newClient(t)
	registry := newRegistryClient(t)

	if fixed.KEMAlgorithm() != registry.KEMAlgorithm() {
		t.Errorf("KEM descriptors disagree: fixed %+v, registry %+v",
			fixed.KEMAlgorithm(), registry.KEMAlgorithm())
	}
	if fixed.SignatureAlgorithm() != registry.SignatureAlgorithm() {
		t.Errorf("signature descriptors disagree: fixed %+v, registry %+v",
			fixed.SignatureAlgorithm(), registry.SignatureAlgorithm())
	}
}

func TestIntegration_KEMCrossBackend(t *testing.T) {
	fixed := newClient(t)
	registry := newRegistryClient(t)

	tests := []struct {
		name         string
		keyHolder    *pqcops.Client
		encapsulator *pqcops.Client
	}{
		{"fixed keys, registry encapsulates", fixed, registry},
		{"registry keys, fixed encapsulates", registry, fixed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kp, err := tt.keyHolder.GenerateKEMKeyPair()
			if err != nil {
				t.Fatalf("GenerateKEMKeyPair() error = %v", err)
			}

			enc, err := tt.encapsulator.Encapsulate(kp.PublicKey)
			if err != nil {
				t.Fatalf("Encapsulate() error = %v", err)
			}

			sharedSecret, err := tt.keyHolder.Decapsulate(kp.SecretKey, enc.Ciphertext)
			if err != nil {
				t.Fatalf("Decapsulate() error = %v", err)
			}

			if !bytes.Equal(sharedSecret, enc.SharedSecret) {
				t.Error("shared secrets differ across backends")
			}
		})
	}
}

func TestIntegration_SignatureCrossBackend(t *testing.T) {
	fixed := newClient(t)
	registry := newRegistryClient(t)

	message := []byte("cross-backend interop message")

	tests := []struct {
		name     string
		signer   *pqcops.Client
		verifier *pqcops.Client
	}{
		{"fixed signs, registry verifies", fixed, registry},
		{"registry signs, fixed verifies", registry, fixed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kp, err := tt.signer.GenerateSigningKeyPair()
			if err != nil {
				t.Fatalf("GenerateSigningKeyPair() error = %v", err)
			}

			signature, err := tt.signer.Sign(message, kp.SecretKey)
			if err != nil {
				t.Fatalf("Sign() error = %v", err)
			}

			valid, err := tt.verifier.Verify(message, signature, kp.PublicKey)
			if err != nil {
				t.Fatalf("Verify() error = %v", err)
			}
			if !valid {
				t.Error("signature should verify across backends")
			}

			tampered := append([]byte(nil), message...)
			tampered[0] ^= 0x01
			valid, err = tt.verifier.Verify(tampered, signature, kp.PublicKey)
			if err != nil {
				t.Fatalf("Verify() error = %v", err)
			}
			if valid {
				t.Error("tampered message should not verify")
			}
		})
	}
}

// Both sides of an exchange must end up with the same derived working keys,
// whichever backend each of them runs.
func TestIntegration_DerivedSessionKeys(t *testing.T) {
	fixed := newClient(t)
	registry := newRegistryClient(t)

	kp, err := fixed.GenerateKEMKeyPair()
	if err != nil {
		t.Fatalf("GenerateKEMKeyPair() error = %v", err)
	}

	enc, err := registry.Encapsulate(kp.PublicKey)
	if err != nil {
		t.Fatalf("Encapsulate() error = %v", err)
	}

	sharedSecret, err := fixed.Decapsulate(kp.SecretKey, enc.Ciphertext)
	if err != nil {
		t.Fatalf("Decapsulate() error = %v", err)
	}

	senderKey, err := pqcops.DeriveKey(enc.SharedSecret, nil, []byte("session encryption"), 32)
	if err != nil {
		t.Fatalf("DeriveKey() error = %v", err)
	}
	receiverKey, err := pqcops.DeriveKey(sharedSecret, nil, []byte("session encryption"), 32)
	if err != nil {
		t.Fatalf("DeriveKey() error = %v", err)
	}

	if !bytes.Equal(senderKey, receiverKey) {
		t.Error("derived session keys differ")
	}

	macKey, err := pqcops.DeriveKey(sharedSecret, nil, []byte("session authentication"), 32)
	if err != nil {
		t.Fatalf("DeriveKey() error = %v", err)
	}
	if bytes.Equal(senderKey, macKey) {
		t.Error("keys derived with different context should differ")
	}
}

func TestIntegration_MLKEMParameterSets(t *testing.T) {
	for _, name := range []string{"ML-KEM-512", "ML-KEM-768", "ML-KEM-1024"} {
		t.Run(name, func(t *testing.T) {
			client := newRegistryClient(t, pqcops.WithKEMAlgorithm(name))
			alg := client.KEMAlgorithm()

			kp, err := client.GenerateKEMKeyPair()
			if err != nil {
				t.Fatalf("GenerateKEMKeyPair() error = %v", err)
			}
			if len(kp.PublicKey) != alg.PublicKeySize {
				t.Errorf("public key length = %d, want %d", len(kp.PublicKey), alg.PublicKeySize)
			}

			enc, err := client.Encapsulate(kp.PublicKey)
			if err != nil {
				t.Fatalf("Encapsulate() error = %v", err)
			}
			if len(enc.Ciphertext) != alg.CiphertextSize {
				t.Errorf("ciphertext length = %d, want %d", len(enc.Ciphertext), alg.CiphertextSize)
			}

			sharedSecret, err := client.Decapsulate(kp.SecretKey, enc.Ciphertext)
			if err != nil {
				t.Fatalf("Decapsulate() error = %v", err)
			}
			if !bytes.Equal(sharedSecret, enc.SharedSecret) {
				t.Error("shared secrets differ")
			}
		})
	}
}

func TestIntegration_MLDSAParameterSets(t *testing.T) {
	message := []byte("parameter set check")

	for _, name := range []string{"ML-DSA-44", "ML-DSA-65", "ML-DSA-87"} {
		t.Run(name, func(t *testing.T) {
			client := newRegistryClient(t, pqcops.WithSignatureAlgorithm(name))
			alg := client.SignatureAlgorithm()

			kp, err := client.GenerateSigningKeyPair()
			if err != nil {
				t.Fatalf("GenerateSigningKeyPair() error = %v", err)
			}

			signature, err := client.Sign(message, kp.SecretKey)
			if err != nil {
				t.Fatalf("Sign() error = %v", err)
			}
			if len(signature) > alg.MaxSignatureSize {
				t.Errorf("signature length = %d, want <= %d", len(signature), alg.MaxSignatureSize)
			}

			valid, err := client.Verify(message, signature, kp.PublicKey)
			if err != nil {
				t.Fatalf("Verify() error = %v", err)
			}
			if !valid {
				t.Error("signature should verify")
			}
		})
	}
}

func TestIntegration_ExtraRegistryAlgorithms(t *testing.T) {
	if len(extraAlgs) == 0 {
		t.Skip("PQCOPS_REGISTRY_ALGS not set")
	}

	for _, name := range extraAlgs {
		t.Run(name, func(t *testing.T) {
			t.Logf("Exercising registry KEM %q", name)

			client := newRegistryClient(t, pqcops.WithKEMAlgorithm(name))

			kp, err := client.GenerateKEMKeyPair()
			if err != nil {
				t.Fatalf("GenerateKEMKeyPair() error = %v", err)
			}

			enc, err := client.Encapsulate(kp.PublicKey)
			if err != nil {
				t.Fatalf("Encapsulate() error = %v", err)
			}

			sharedSecret, err := client.Decapsulate(kp.SecretKey, enc.Ciphertext)
			if err != nil {
				t.Fatalf("Decapsulate() error = %v", err)
			}
			if !bytes.Equal(sharedSecret, enc.SharedSecret) {
				t.Error("shared secrets differ")
			}
		})
	}
}

// Sustained mixed-backend exchanges, the way a long-lived peer pair would
// rotate keys. Every exchange must agree on the secret.
func TestIntegration_SustainedExchanges(t *testing.T) {
	fixed := newClient(t)
	registry := newRegistryClient(t)

	clients := []*pqcops.Client{fixed, registry}

	for i := 0; i < 16; i++ {
		keyHolder := clients[i%2]
		encapsulator := clients[(i+1)%2]

		kp, err := keyHolder.GenerateKEMKeyPair()
		if err != nil {
			t.Fatalf("exchange %d: GenerateKEMKeyPair() error = %v", i, err)
		}

		enc, err := encapsulator.Encapsulate(kp.PublicKey)
		if err != nil {
			t.Fatalf("exchange %d: Encapsulate() error = %v", i, err)
		}

		sharedSecret, err := keyHolder.Decapsulate(kp.SecretKey, enc.Ciphertext)
		if err != nil {
			t.Fatalf("exchange %d: Decapsulate() error = %v", i, err)
		}

		if !bytes.Equal(sharedSecret, enc.SharedSecret) {
			t.Fatalf("exchange %d: shared secrets differ", i)
		}
	}
}

package pqcops

import (
	"errors"
	"testing"
)

func TestNew_Defaults(t *testing.T) {
	client, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer client.Close()

	info := client.Info()
	if info.Backend != BackendFixed {
		t.Errorf("Backend = %q, want %q", info.Backend, BackendFixed)
	}
	if info.KEMAlgorithm.Name != AlgorithmMLKEM768 {
		t.Errorf("KEM algorithm = %q, want %q", info.KEMAlgorithm.Name, AlgorithmMLKEM768)
	}
	if info.SignatureAlgorithm.Name != AlgorithmMLDSA65 {
		t.Errorf("signature algorithm = %q, want %q", info.SignatureAlgorithm.Name, AlgorithmMLDSA65)
	}
}

func TestNew_RegistryBackend(t *testing.T) {
	client, err := New(WithBackend(BackendRegistry))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer client.Close()

	if client.Info().Backend != BackendRegistry {
		t.Errorf("Backend = %q, want %q", client.Info().Backend, BackendRegistry)
	}
}

func TestNew_UnknownBackend(t *testing.T) {
	_, err := New(WithBackend("carrier-pigeon"))
	if !errors.Is(err, ErrUnknownBackend) {
		t.Errorf("New() error = %v, want ErrUnknownBackend", err)
	}
}

func TestNew_FixedBackendRejectsOtherAlgorithms(t *testing.T) {
	t.Run("kem", func(t *testing.T) {
		_, err := New(WithKEMAlgorithm("ML-KEM-512"))
		if !errors.Is(err, ErrUnsupportedAlgorithm) {
			t.Fatalf("New() error = %v, want ErrUnsupportedAlgorithm", err)
		}

		var unsupported *UnsupportedAlgorithmError
		if !errors.As(err, &unsupported) {
			t.Fatal("error should be an UnsupportedAlgorithmError")
		}
		if unsupported.Algorithm != "ML-KEM-512" {
			t.Errorf("Algorithm = %q, want %q", unsupported.Algorithm, "ML-KEM-512")
		}
		if unsupported.Backend != BackendFixed {
			t.Errorf("Backend = %q, want %q", unsupported.Backend, BackendFixed)
		}
	})

	t.Run("signature", func(t *testing.T) {
		_, err := New(WithSignatureAlgorithm("Ed25519"))
		if !errors.Is(err, ErrUnsupportedAlgorithm) {
			t.Errorf("New() error = %v, want ErrUnsupportedAlgorithm", err)
		}
	})
}

func TestNew_RegistryBackendUnknownAlgorithm(t *testing.T) {
	t.Run("kem", func(t *testing.T) {
		_, err := New(WithBackend(BackendRegistry), WithKEMAlgorithm("NTRU-Prime-Deluxe"))
		if !errors.Is(err, ErrUnsupportedAlgorithm) {
			t.Errorf("New() error = %v, want ErrUnsupportedAlgorithm", err)
		}
	})

	t.Run("signature", func(t *testing.T) {
		_, err := New(WithBackend(BackendRegistry), WithSignatureAlgorithm("RSA-PSS-Classic"))
		if !errors.Is(err, ErrUnsupportedAlgorithm) {
			t.Errorf("New() error = %v, want ErrUnsupportedAlgorithm", err)
		}
	})
}

func TestNew_CaseInsensitiveAlgorithmNames(t *testing.T) {
	for _, backend := range []Backend{BackendFixed, BackendRegistry} {
		t.Run(string(backend), func(t *testing.T) {
			client, err := New(
				WithBackend(backend),
				WithKEMAlgorithm("ml-kem-768"),
				WithSignatureAlgorithm("ml-dsa-65"),
			)
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			defer client.Close()

			// The canonical spelling is reported regardless of the
			// configured one.
			if got := client.KEMAlgorithm().Name; got != AlgorithmMLKEM768 {
				t.Errorf("KEM algorithm = %q, want %q", got, AlgorithmMLKEM768)
			}
			if got := client.SignatureAlgorithm().Name; got != AlgorithmMLDSA65 {
				t.Errorf("signature algorithm = %q, want %q", got, AlgorithmMLDSA65)
			}
		})
	}
}

func TestNew_RegistryServesOtherAlgorithms(t *testing.T) {
	client, err := New(
		WithBackend(BackendRegistry),
		WithKEMAlgorithm("ML-KEM-1024"),
		WithSignatureAlgorithm("ML-DSA-87"),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer client.Close()

	if got := client.KEMAlgorithm().Name; got != "ML-KEM-1024" {
		t.Errorf("KEM algorithm = %q, want %q", got, "ML-KEM-1024")
	}
	if got := client.SignatureAlgorithm().Name; got != "ML-DSA-87" {
		t.Errorf("signature algorithm = %q, want %q", got, "ML-DSA-87")
	}
}

func TestClient_Close(t *testing.T) {
	client, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	kp, err := client.GenerateKEMKeyPair()
	if err != nil {
		t.Fatalf("GenerateKEMKeyPair() error = %v", err)
	}

	if err := client.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	t.Run("idempotent", func(t *testing.T) {
		if err := client.Close(); err != nil {
			t.Errorf("second Close() error = %v", err)
		}
	})

	t.Run("operations fail", func(t *testing.T) {
		ops := []struct {
			name string
			call func() error
		}{
			{"GenerateKEMKeyPair", func() error {
				_, err := client.GenerateKEMKeyPair()
				return err
			}},
			{"Encapsulate", func() error {
				_, err := client.Encapsulate(kp.PublicKey)
				return err
			}},
			{"Decapsulate", func() error {
				_, err := client.Decapsulate(kp.SecretKey, make([]byte, 1088))
				return err
			}},
			{"GenerateSigningKeyPair", func() error {
				_, err := client.GenerateSigningKeyPair()
				return err
			}},
			{"Sign", func() error {
				_, err := client.Sign([]byte("m"), make([]byte, 4000))
				return err
			}},
			{"Verify", func() error {
				_, err := client.Verify([]byte("m"), nil, make([]byte, 1952))
				return err
			}},
		}

		for _, op := range ops {
			t.Run(op.name, func(t *testing.T) {
				if err := op.call(); !errors.Is(err, ErrClientClosed) {
					t.Errorf("%s error = %v, want ErrClientClosed", op.name, err)
				}
			})
		}
	})

	t.Run("metadata still available", func(t *testing.T) {
		if client.Info().Backend != BackendFixed {
			t.Error("Info() should keep working after Close()")
		}
		if client.KEMAlgorithm().Name != AlgorithmMLKEM768 {
			t.Error("KEMAlgorithm() should keep working after Close()")
		}
	})

	t.Run("earlier buffers stay valid", func(t *testing.T) {
		if len(kp.PublicKey) != 1184 || len(kp.SecretKey) != 2400 {
			t.Error("buffers returned before Close() were invalidated")
		}
	})
}

func TestClient_ConcurrentUse(t *testing.T) {
	client, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer client.Close()

	kp, err := client.GenerateKEMKeyPair()
	if err != nil {
		t.Fatalf("GenerateKEMKeyPair() error = %v", err)
	}

	done := make(chan error, 8)
	for i := 0; i < 8; i++ {
		go func() {
			enc, err := client.Encapsulate(kp.PublicKey)
			if err != nil {
				done <- err
				return
			}
			_, err = client.Decapsulate(kp.SecretKey, enc.Ciphertext)
			done <- err
		}()
	}

	for i := 0; i < 8; i++ {
		if err := <-done; err != nil {
			t.Errorf("concurrent operation error = %v", err)
		}
	}
}

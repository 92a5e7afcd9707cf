package pqcops

import (
	"errors"
	"fmt"
	"sync"

	"github.com/latticeworks/pqcops-go/internal/backend"
)

// Client is the entry point for post-quantum cryptographic operations.
// It serves one KEM algorithm and one signature algorithm, both chosen at
// construction time, through the configured backend.
//
// A Client is safe for concurrent use. The backends hold no mutable state,
// so operations never block each other.
type Client struct {
	backend Backend
	kem     backend.KEM
	signer  backend.Signer

	mu     sync.RWMutex
	closed bool
}

// newKEMBackend creates the KEM backend selected by the config.
func newKEMBackend(cfg *clientConfig) (backend.KEM, error) {
	switch cfg.backend {
	case BackendRegistry:
		return backend.NewRegistryKEM(cfg.kemAlgorithm)
	default:
		return backend.NewFixedKEM(cfg.kemAlgorithm)
	}
}

// newSignerBackend creates the signature backend selected by the config.
func newSignerBackend(cfg *clientConfig) (backend.Signer, error) {
	switch cfg.backend {
	case BackendRegistry:
		return backend.NewRegistrySigner(cfg.sigAlgorithm)
	default:
		return backend.NewFixedSigner(cfg.sigAlgorithm)
	}
}

// wrapConstructError converts a backend constructor failure into the public
// error taxonomy.
func wrapConstructError(algorithm string, b Backend, err error) error {
	if errors.Is(err, backend.ErrUnsupportedAlgorithm) {
		return &UnsupportedAlgorithmError{Algorithm: algorithm, Backend: b}
	}
	return err
}

// New creates a client serving the configured algorithm pair. Both
// algorithms are resolved here: a name the selected backend cannot serve
// fails immediately with an [UnsupportedAlgorithmError], so a client that
// constructs successfully never fails an operation over algorithm
// resolution.
//
// With no options the client uses the fixed backend with ML-KEM-768 and
// ML-DSA-65.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		backend:      defaultBackend,
		kemAlgorithm: defaultKEMAlgorithm,
		sigAlgorithm: defaultSigAlgorithm,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.backend != BackendFixed && cfg.backend != BackendRegistry {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.backend)
	}

	kem, err := newKEMBackend(cfg)
	if err != nil {
		return nil, wrapConstructError(cfg.kemAlgorithm, cfg.backend, err)
	}

	signer, err := newSignerBackend(cfg)
	if err != nil {
		return nil, wrapConstructError(cfg.sigAlgorithm, cfg.backend, err)
	}

	return &Client{
		backend: cfg.backend,
		kem:     kem,
		signer:  signer,
	}, nil
}

// checkClosed returns ErrClientClosed if the client has been closed.
func (c *Client) checkClosed() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return ErrClientClosed
	}
	return nil
}

// Close closes the client. Operations on a closed client fail with
// ErrClientClosed. Close is idempotent; closing an already closed client
// returns nil.
//
// Buffers returned by earlier operations stay valid: the caller owns them
// outright and Close does not touch them.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}

	c.closed = true
	return nil
}

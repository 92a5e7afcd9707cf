package pqcops

// Backend selects how the client resolves and serves algorithms.
type Backend string

const (
	// BackendFixed binds directly to ML-KEM-768 and ML-DSA-65 at compile
	// time. No registry lookup happens at call time, and any other
	// algorithm name is rejected by New.
	BackendFixed Backend = "fixed"
	// BackendRegistry resolves algorithm names against the circl scheme
	// registries at construction time. Any algorithm the registries know
	// can be served.
	BackendRegistry Backend = "registry"
)

// Canonical names of the default algorithm pair. Both backends serve these.
const (
	AlgorithmMLKEM768 = "ML-KEM-768"
	AlgorithmMLDSA65  = "ML-DSA-65"
)

const (
	defaultBackend      = BackendFixed
	defaultKEMAlgorithm = AlgorithmMLKEM768
	defaultSigAlgorithm = AlgorithmMLDSA65
)

// clientConfig holds configuration for the client.
type clientConfig struct {
	backend      Backend
	kemAlgorithm string
	sigAlgorithm string
}

// Option configures the client.
type Option func(*clientConfig)

// WithBackend selects the backend implementation.
// Default: BackendFixed
func WithBackend(backend Backend) Option {
	return func(c *clientConfig) {
		c.backend = backend
	}
}

// WithKEMAlgorithm sets the KEM algorithm the client serves. The fixed
// backend accepts only ML-KEM-768; the registry backend accepts any name
// the circl KEM registry resolves.
// Default: "ML-KEM-768"
func WithKEMAlgorithm(name string) Option {
	return func(c *clientConfig) {
		c.kemAlgorithm = name
	}
}

// WithSignatureAlgorithm sets the signature algorithm the client serves.
// The fixed backend accepts only ML-DSA-65; the registry backend accepts
// any name the circl signature registry resolves.
// Default: "ML-DSA-65"
func WithSignatureAlgorithm(name string) Option {
	return func(c *clientConfig) {
		c.sigAlgorithm = name
	}
}

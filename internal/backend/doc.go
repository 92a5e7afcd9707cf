// Package backend implements the post-quantum primitive backends behind
// the public client.
//
// # Backends
//
// Two interchangeable implementations satisfy the [KEM] and [Signer]
// interfaces:
//
//   - The fixed backend ([NewFixedKEM], [NewFixedSigner]) binds directly to
//     circl's ML-KEM-768 and ML-DSA-65 packages. The algorithm pair is
//     decided at compile time, lengths are compile-time constants, and
//     construction fails for any other name.
//   - The registry backend ([NewRegistryKEM], [NewRegistrySigner]) resolves
//     algorithms by name through circl's scheme registries and reads every
//     length from the resolved scheme. It serves any algorithm the
//     registries know, and [KEMAlgorithms] and [SignatureAlgorithms]
//     enumerate them.
//
// Both backends produce interoperable artifacts for the same algorithm:
// keys generated under one backend encapsulate, decapsulate, sign and
// verify under the other.
//
// # Buffer ownership
//
// Every byte slice a backend returns is freshly allocated for that call.
// Input buffers are read but never retained, so callers may reuse or wipe
// them as soon as a call returns.
//
// # Security notes
//
// Decapsulation follows the FIPS 203 implicit-rejection contract: a
// well-formed ciphertext that does not match the secret key yields a
// deterministic pseudorandom secret instead of an error. Callers that need
// authenticity must get it from the surrounding protocol.
//
// Intermediate buffers holding secret key material are wiped before
// release. Backends never log, and errors never carry key bytes.
package backend

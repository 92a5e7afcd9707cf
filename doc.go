// Package pqcops provides post-quantum key encapsulation and digital
// signatures behind a uniform, algorithm-parameterized interface.
//
// The default configuration serves ML-KEM-768 (FIPS 203) for key
// encapsulation and ML-DSA-65 (FIPS 204) for signatures through a backend
// bound to that pair at compile time. A registry backend can serve any
// algorithm the circl scheme registries know instead; artifacts produced
// under one backend interoperate with the other for the same algorithm.
//
// Basic usage:
//
//	client, err := pqcops.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	// Generate a KEM key pair
//	kp, err := client.GenerateKEMKeyPair()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Encapsulate a shared secret for the public key
//	enc, err := client.Encapsulate(kp.PublicKey)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Recover it with the secret key
//	secret, err := client.Decapsulate(kp.SecretKey, enc.Ciphertext)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println(bytes.Equal(secret, enc.SharedSecret)) // true
package pqcops

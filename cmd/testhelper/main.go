// Command testhelper drives cross-implementation interop checks. Every
// subcommand reads a JSON request from stdin and writes a JSON response to
// stdout; byte-valued fields are base64 raw URL encoded so a harness in any
// language can exchange keys, ciphertexts and signatures with this client.
package main

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	pqcops "github.com/latticeworks/pqcops-go"
)

// Config holds the I/O streams the commands read and write, so tests can
// substitute buffers for the process streams.
type Config struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func DefaultConfig() *Config {
	return &Config{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// clientFactory builds the client the commands operate on. The backend and
// algorithms come from the environment so a harness can point the same
// binary at either backend. Tests swap the factory out to inject
// construction failures.
var clientFactory = func() (*pqcops.Client, error) {
	var opts []pqcops.Option
	if backend := os.Getenv("PQCOPS_BACKEND"); backend != "" {
		opts = append(opts, pqcops.WithBackend(pqcops.Backend(backend)))
	}
	if alg := os.Getenv("PQCOPS_KEM_ALG"); alg != "" {
		opts = append(opts, pqcops.WithKEMAlgorithm(alg))
	}
	if alg := os.Getenv("PQCOPS_SIG_ALG"); alg != "" {
		opts = append(opts, pqcops.WithSignatureAlgorithm(alg))
	}
	return pqcops.New(opts...)
}

func run(args []string, cfg *Config) error {
	if len(args) < 2 {
		return errors.New("usage: testhelper <command>")
	}

	client, err := clientFactory()
	if err != nil {
		return fmt.Errorf("create client: %w", err)
	}
	defer client.Close()

	switch args[1] {
	case "info":
		return runInfo(client, cfg)
	case "list-algorithms":
		return runListAlgorithms(client, cfg)
	case "kem-keygen":
		return runKEMKeygen(client, cfg)
	case "encapsulate":
		return runEncapsulate(client, cfg)
	case "decapsulate":
		return runDecapsulate(client, cfg)
	case "sig-keygen":
		return runSigKeygen(client, cfg)
	case "sign":
		return runSign(client, cfg)
	case "verify":
		return runVerify(client, cfg)
	default:
		return fmt.Errorf("unknown command: %s", args[1])
	}
}

// KeyPairOutput is emitted by kem-keygen and sig-keygen.
type KeyPairOutput struct {
	Algorithm string `json:"algorithm"`
	PublicKey string `json:"publicKey"`
	SecretKey string `json:"secretKey"`
}

type EncapsulateInput struct {
	PublicKey string `json:"publicKey"`
}

type EncapsulateOutput struct {
	Ciphertext   string `json:"ciphertext"`
	SharedSecret string `json:"sharedSecret"`
}

type DecapsulateInput struct {
	SecretKey  string `json:"secretKey"`
	Ciphertext string `json:"ciphertext"`
}

type DecapsulateOutput struct {
	SharedSecret string `json:"sharedSecret"`
}

type SignInput struct {
	Message   string `json:"message"`
	SecretKey string `json:"secretKey"`
}

type SignOutput struct {
	Signature string `json:"signature"`
}

type VerifyInput struct {
	Message   string `json:"message"`
	Signature string `json:"signature"`
	PublicKey string `json:"publicKey"`
}

type VerifyOutput struct {
	Valid bool `json:"valid"`
}

type AlgorithmOutput struct {
	Name             string `json:"name"`
	PublicKeySize    int    `json:"publicKeySize"`
	SecretKeySize    int    `json:"secretKeySize"`
	CiphertextSize   int    `json:"ciphertextSize,omitempty"`
	SharedSecretSize int    `json:"sharedSecretSize,omitempty"`
	MaxSignatureSize int    `json:"maxSignatureSize,omitempty"`
}

type InfoOutput struct {
	Backend        string          `json:"backend"`
	KEM            AlgorithmOutput `json:"kem"`
	Signature      AlgorithmOutput `json:"signature"`
	Library        string          `json:"library"`
	LibraryVersion string          `json:"libraryVersion"`
}

type AlgorithmListOutput struct {
	KEM        []string `json:"kem"`
	Signatures []string `json:"signatures"`
}

func runInfo(client *pqcops.Client, cfg *Config) error {
	info := client.Info()
	return writeOutput(cfg, InfoOutput{
		Backend:        string(info.Backend),
		KEM:            convertAlgorithm(info.KEMAlgorithm),
		Signature:      convertAlgorithm(info.SignatureAlgorithm),
		Library:        info.Library,
		LibraryVersion: info.LibraryVersion,
	})
}

func convertAlgorithm(alg pqcops.Algorithm) AlgorithmOutput {
	return AlgorithmOutput{
		Name:             alg.Name,
		PublicKeySize:    alg.PublicKeySize,
		SecretKeySize:    alg.SecretKeySize,
		CiphertextSize:   alg.CiphertextSize,
		SharedSecretSize: alg.SharedSecretSize,
		MaxSignatureSize: alg.MaxSignatureSize,
	}
}

func runListAlgorithms(client *pqcops.Client, cfg *Config) error {
	return writeOutput(cfg, AlgorithmListOutput{
		KEM:        client.ListKEMAlgorithms(),
		Signatures: client.ListSignatureAlgorithms(),
	})
}

func runKEMKeygen(client *pqcops.Client, cfg *Config) error {
	kp, err := client.GenerateKEMKeyPair()
	if err != nil {
		return fmt.Errorf("generate kem key pair: %w", err)
	}

	return writeOutput(cfg, KeyPairOutput{
		Algorithm: kp.Algorithm,
		PublicKey: encode(kp.PublicKey),
		SecretKey: encode(kp.SecretKey),
	})
}

func runEncapsulate(client *pqcops.Client, cfg *Config) error {
	var in EncapsulateInput
	if err := readInput(cfg, &in); err != nil {
		return err
	}

	publicKey, err := decodeField("public key", in.PublicKey)
	if err != nil {
		return err
	}

	enc, err := client.Encapsulate(publicKey)
	if err != nil {
		return fmt.Errorf("encapsulate: %w", err)
	}

	return writeOutput(cfg, EncapsulateOutput{
		Ciphertext:   encode(enc.Ciphertext),
		SharedSecret: encode(enc.SharedSecret),
	})
}

func runDecapsulate(client *pqcops.Client, cfg *Config) error {
	var in DecapsulateInput
	if err := readInput(cfg, &in); err != nil {
		return err
	}

	secretKey, err := decodeField("secret key", in.SecretKey)
	if err != nil {
		return err
	}
	ciphertext, err := decodeField("ciphertext", in.Ciphertext)
	if err != nil {
		return err
	}

	sharedSecret, err := client.Decapsulate(secretKey, ciphertext)
	if err != nil {
		return fmt.Errorf("decapsulate: %w", err)
	}

	return writeOutput(cfg, DecapsulateOutput{SharedSecret: encode(sharedSecret)})
}

func runSigKeygen(client *pqcops.Client, cfg *Config) error {
	kp, err := client.GenerateSigningKeyPair()
	if err != nil {
		return fmt.Errorf("generate signing key pair: %w", err)
	}

	return writeOutput(cfg, KeyPairOutput{
		Algorithm: kp.Algorithm,
		PublicKey: encode(kp.PublicKey),
		SecretKey: encode(kp.SecretKey),
	})
}

func runSign(client *pqcops.Client, cfg *Config) error {
	var in SignInput
	if err := readInput(cfg, &in); err != nil {
		return err
	}

	message, err := decodeField("message", in.Message)
	if err != nil {
		return err
	}
	secretKey, err := decodeField("secret key", in.SecretKey)
	if err != nil {
		return err
	}

	signature, err := client.Sign(message, secretKey)
	if err != nil {
		return fmt.Errorf("sign: %w", err)
	}

	return writeOutput(cfg, SignOutput{Signature: encode(signature)})
}

func runVerify(client *pqcops.Client, cfg *Config) error {
	var in VerifyInput
	if err := readInput(cfg, &in); err != nil {
		return err
	}

	message, err := decodeField("message", in.Message)
	if err != nil {
		return err
	}
	signature, err := decodeField("signature", in.Signature)
	if err != nil {
		return err
	}
	publicKey, err := decodeField("public key", in.PublicKey)
	if err != nil {
		return err
	}

	// A failed verification is a verdict, not an error; the harness reads
	// it from the valid field.
	valid, err := client.Verify(message, signature, publicKey)
	if err != nil {
		return fmt.Errorf("verify: %w", err)
	}

	return writeOutput(cfg, VerifyOutput{Valid: valid})
}

func readInput(cfg *Config, v any) error {
	data, err := io.ReadAll(cfg.Stdin)
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse input: %w", err)
	}
	return nil
}

func writeOutput(cfg *Config, v any) error {
	if err := json.NewEncoder(cfg.Stdout).Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}

func encode(raw []byte) string {
	return base64.RawURLEncoding.EncodeToString(raw)
}

func decodeField(name, value string) ([]byte, error) {
	raw, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return raw, nil
}

// exitFunc is swapped out in tests so fatal can run without terminating
// the test process.
var exitFunc = os.Exit

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	exitFunc(1)
}

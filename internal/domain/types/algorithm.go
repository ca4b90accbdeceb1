package types

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownAlgorithm is returned when an algorithm name is not recognised.
	ErrUnknownAlgorithm = errors.New("unknown algorithm")

	// ErrNotImplemented is returned for algorithm paths that exist by name only.
	ErrNotImplemented = errors.New("not implemented")
)

// SignatureAlgorithm selects the signing scheme. The set is closed.
type SignatureAlgorithm uint8

const (
	// AlgorithmBlake3 is a BLAKE3 keyed hash over the message.
	AlgorithmBlake3 SignatureAlgorithm = iota + 1
	// AlgorithmEd25519 is an Ed25519 signature derived from a 32-byte seed.
	AlgorithmEd25519
)

// SignatureAlgorithms lists every supported signing scheme.
var SignatureAlgorithms = []SignatureAlgorithm{AlgorithmBlake3, AlgorithmEd25519}

// String returns the CLI name of the algorithm.
func (a SignatureAlgorithm) String() string {
	switch a {
	case AlgorithmBlake3:
		return "blake3"
	case AlgorithmEd25519:
		return "ed25519"
	default:
		return fmt.Sprintf("SignatureAlgorithm(%d)", uint8(a))
	}
}

// Set parses s into a, so the type can back a command-line flag.
func (a *SignatureAlgorithm) Set(s string) error {
	v, err := ParseSignatureAlgorithm(s)
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// Type names the flag value type.
func (a *SignatureAlgorithm) Type() string { return "blake3|ed25519" }

// ParseSignatureAlgorithm maps a case-insensitive name to a SignatureAlgorithm.
func ParseSignatureAlgorithm(s string) (SignatureAlgorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "blake3":
		return AlgorithmBlake3, nil
	case "ed25519":
		return AlgorithmEd25519, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
	}
}

// CipherAlgorithm selects the authenticated cipher. Only one is defined.
type CipherAlgorithm uint8

const (
	// AlgorithmChaCha20Poly1305 is ChaCha20-Poly1305 with a 96-bit random nonce.
	AlgorithmChaCha20Poly1305 CipherAlgorithm = iota + 1
)

// String returns the CLI name of the algorithm.
func (a CipherAlgorithm) String() string {
	switch a {
	case AlgorithmChaCha20Poly1305:
		return "chacha20-poly1305"
	default:
		return fmt.Sprintf("CipherAlgorithm(%d)", uint8(a))
	}
}

// Set parses s into a, so the type can back a command-line flag.
func (a *CipherAlgorithm) Set(s string) error {
	v, err := ParseCipherAlgorithm(s)
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// Type names the flag value type.
func (a *CipherAlgorithm) Type() string { return "chacha20-poly1305" }

// ParseCipherAlgorithm maps a case-insensitive name to a CipherAlgorithm.
// Asymmetric names are recognised but have no encryption path.
func ParseCipherAlgorithm(s string) (CipherAlgorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "chacha20-poly1305", "chacha20poly1305":
		return AlgorithmChaCha20Poly1305, nil
	case "x25519", "ed25519":
		return 0, fmt.Errorf("%w: %s encryption", ErrNotImplemented, s)
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
	}
}

package crypto

import (
	"github.com/cloudflare/circl/sign/ed25519"
	"golang.org/x/crypto/chacha20poly1305"

	"textseal/internal/domain"
)

const (
	// KeySize is the required key length for every algorithm.
	KeySize = domain.KeySize

	// Blake3SignatureSize is the length of a BLAKE3 keyed hash.
	Blake3SignatureSize = 32

	// Ed25519SeedSize is the length of an Ed25519 private seed.
	Ed25519SeedSize = ed25519.SeedSize

	// Ed25519PublicKeySize is the length of an Ed25519 public key.
	Ed25519PublicKeySize = ed25519.PublicKeySize

	// Ed25519SignatureSize is the length of an Ed25519 signature.
	Ed25519SignatureSize = ed25519.SignatureSize

	// NonceSize is the ChaCha20-Poly1305 nonce length.
	NonceSize = chacha20poly1305.NonceSize

	// TagSize is the Poly1305 authentication tag length.
	TagSize = chacha20poly1305.Overhead
)

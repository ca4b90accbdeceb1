package crypto

import (
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"

	"textseal/internal/domain"
)

// SealChaCha20Poly1305 encrypts plaintext under key with the given nonce.
// Returns: nonce (12 bytes) || ciphertext || tag (16 bytes)
func SealChaCha20Poly1305(key domain.Key, nonce, plaintext []byte) ([]byte, error) {
	if len(nonce) != NonceSize {
		return nil, fmt.Errorf("%w: nonce size %d", ErrEncryptionFailed, len(nonce))
	}
	aead, err := chacha20poly1305.New(key[:])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncryptionFailed, err)
	}

	out := make([]byte, NonceSize, NonceSize+len(plaintext)+TagSize)
	copy(out, nonce)
	return aead.Seal(out, nonce, plaintext, nil), nil
}

// OpenChaCha20Poly1305 decrypts a nonce-prefixed payload under key.
// Every failure is reported as ErrDecryptionFailed.
func OpenChaCha20Poly1305(key domain.Key, payload []byte) ([]byte, error) {
	if len(payload) < NonceSize {
		return nil, ErrDecryptionFailed
	}
	aead, err := chacha20poly1305.New(key[:])
	if err != nil {
		return nil, ErrDecryptionFailed
	}

	plaintext, err := aead.Open(nil, payload[:NonceSize], payload[NonceSize:], nil)
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	return plaintext, nil
}

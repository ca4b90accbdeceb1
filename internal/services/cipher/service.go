package cipher

import (
	"crypto/rand"
	"fmt"
	"io"

	"textseal/internal/crypto"
	"textseal/internal/domain"
)

// Service implements domain.CipherService.
type Service struct {
	rand io.Reader
}

// New returns a cipher service drawing nonces from r. A nil r selects
// crypto/rand.Reader.
func New(r io.Reader) *Service {
	if r == nil {
		r = rand.Reader
	}
	return &Service{rand: r}
}

// Encrypt seals plaintext under key. Plaintext is used as-is.
// Returns: nonce (12 bytes) || ciphertext || tag (16 bytes)
func (s *Service) Encrypt(plaintext, key []byte) (domain.EncryptedPayload, error) {
	k, err := crypto.ParseKey(key)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, crypto.NonceSize)
	if _, err := io.ReadFull(s.rand, nonce); err != nil {
		return nil, fmt.Errorf("%w: read nonce: %v", crypto.ErrEncryptionFailed, err)
	}
	return crypto.SealChaCha20Poly1305(k, nonce, plaintext)
}

// EncryptToString seals plaintext and encodes the payload as URL-safe base64.
func (s *Service) EncryptToString(plaintext, key []byte) (string, error) {
	payload, err := s.Encrypt(plaintext, key)
	if err != nil {
		return "", err
	}
	return crypto.ToBase64URL(payload), nil
}

// Decrypt opens a nonce-prefixed payload under key. Any failure after the
// key length check is crypto.ErrDecryptionFailed.
func (s *Service) Decrypt(payload domain.EncryptedPayload, key []byte) ([]byte, error) {
	k, err := crypto.ParseKey(key)
	if err != nil {
		return nil, err
	}
	return crypto.OpenChaCha20Poly1305(k, payload)
}

// DecryptString decodes base64 text and decrypts it.
func (s *Service) DecryptString(text string, key []byte) ([]byte, error) {
	payload, err := crypto.FromBase64URL(text)
	if err != nil {
		return nil, err
	}
	return s.Decrypt(payload, key)
}

// Compile-time assertion that Service implements domain.CipherService.
var _ domain.CipherService = (*Service)(nil)

package store

import (
	"bytes"
	"sync"

	"textseal/internal/crypto"
	"textseal/internal/domain"
)

const (
	keyFileMode     = 0o600
	payloadFileMode = 0o644
)

// KeyFileStore reads and writes key files and command outputs.
type KeyFileStore struct {
	src *Source
	mu  sync.Mutex
}

// NewKeyFileStore returns a KeyFileStore reading through src, so a key may
// also come from standard input.
func NewKeyFileStore(src *Source) *KeyFileStore {
	return &KeyFileStore{src: src}
}

// SaveSignatureKey writes key as raw bytes.
func (s *KeyFileStore) SaveSignatureKey(path string, key domain.Key) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return writeFile(path, key[:], keyFileMode)
}

// LoadSignatureKey reads a raw signing key. If the raw length is not
// KeySize the contents are trimmed once, which recovers keys written by
// line-oriented tools. Length is otherwise left to the signature engine.
func (s *KeyFileStore) LoadSignatureKey(name string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := s.src.Read(name)
	if err != nil {
		return nil, err
	}
	if len(b) != crypto.KeySize {
		b = bytes.TrimSpace(b)
	}
	return b, nil
}

// SaveCipherKey writes key as URL-safe base64 text.
func (s *KeyFileStore) SaveCipherKey(path string, key domain.Key) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return writeFile(path, []byte(crypto.ToBase64URL(key[:])), keyFileMode)
}

// LoadCipherKey reads base64 key text and returns the decoded bytes.
func (s *KeyFileStore) LoadCipherKey(name string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := s.src.Read(name)
	if err != nil {
		return nil, err
	}
	return crypto.FromBase64URL(string(bytes.TrimSpace(b)))
}

// SavePayload writes a signature, ciphertext or plaintext output.
func (s *KeyFileStore) SavePayload(path string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return writeFile(path, data, payloadFileMode)
}

// Compile-time assertion that KeyFileStore implements domain.KeyStore.
var _ domain.KeyStore = (*KeyFileStore)(nil)

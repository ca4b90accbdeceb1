package types

// KeySize is the length in bytes of every key handled by textseal.
const KeySize = 32

// Key is fixed-size key material: a BLAKE3 key, an Ed25519 seed or public
// key, or a ChaCha20-Poly1305 key.
type Key [KeySize]byte

// Slice returns the key as a []byte.
func (k Key) Slice() []byte { return k[:] }

// Signature is a detached signature as raw bytes.
type Signature []byte

// EncryptedPayload is nonce || ciphertext || tag.
type EncryptedPayload []byte

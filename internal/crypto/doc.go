// Package crypto exposes the primitives textseal is built on.
//
// Contents
//
//   - BLAKE3 keyed hashing (KeyedHash)
//   - Ed25519 signing and verification from a 32-byte seed (SignEd25519,
//     VerifyEd25519, Ed25519PublicFromSeed)
//   - ChaCha20-Poly1305 with nonce-prefixed framing (SealChaCha20Poly1305,
//     OpenChaCha20Poly1305)
//   - URL-safe and standard base64 framing (ToBase64URL, FromBase64URL,
//     ToBase64, FromBase64)
//   - Key length validation (ParseKey)
//
// # Notes
//
// Keys are passed as domain.Key arrays so callers' slices are never
// retained. Nonce generation is left to the caller; this package draws no
// randomness itself.
package crypto

// Package cipher encrypts and decrypts whole payloads with ChaCha20-Poly1305.
//
// Every encryption draws a fresh 12-byte nonce from the injected random
// source and prefixes it to the ciphertext. Decryption failures are
// reported as a single error so callers cannot tell a short payload from
// a bad tag or a wrong key.
package cipher

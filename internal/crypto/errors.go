package crypto

import "errors"

var (
	// ErrInvalidKeyLength is returned when key bytes are not KeySize long.
	ErrInvalidKeyLength = errors.New("invalid key length")

	// ErrInvalidSignatureLength is returned when a decoded signature has the
	// wrong size for its algorithm.
	ErrInvalidSignatureLength = errors.New("invalid signature length")

	// ErrEncoding is returned when base64 text cannot be decoded.
	ErrEncoding = errors.New("invalid encoding")

	// ErrEncryptionFailed is returned when the cipher or nonce source fails.
	ErrEncryptionFailed = errors.New("encryption failed")

	// ErrDecryptionFailed is returned for any decryption failure. It never
	// says which check failed.
	ErrDecryptionFailed = errors.New("decryption failed")
)

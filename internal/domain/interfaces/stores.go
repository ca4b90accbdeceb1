package interfaces

import domaintypes "textseal/internal/domain/types"

// InputSource resolves a name ("-" for standard input, otherwise a path)
// into its full contents.
type InputSource interface {
	Read(name string) ([]byte, error)
}

// KeyStore reads and writes key files.
//
// Signing keys are stored as raw bytes. Cipher keys are stored as URL-safe
// base64 text without padding.
type KeyStore interface {
	SaveSignatureKey(path string, key domaintypes.Key) error
	LoadSignatureKey(name string) ([]byte, error)
	SaveCipherKey(path string, key domaintypes.Key) error
	LoadCipherKey(name string) ([]byte, error)
	SavePayload(path string, data []byte) error
}

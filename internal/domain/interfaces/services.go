package interfaces

import domaintypes "textseal/internal/domain/types"

// SignatureService produces and checks detached signatures.
type SignatureService interface {
	Sign(alg domaintypes.SignatureAlgorithm, message, key []byte) (string, error)
	Verify(
		alg domaintypes.SignatureAlgorithm,
		message, key []byte,
		signature string,
	) (bool, error)
	PublicKey(alg domaintypes.SignatureAlgorithm, key []byte) (domaintypes.Key, error)
}

// CipherService encrypts and decrypts whole in-memory payloads.
type CipherService interface {
	EncryptToString(plaintext, key []byte) (string, error)
	DecryptString(text string, key []byte) ([]byte, error)
}

// KeyGenerator produces fresh key material and passwords.
type KeyGenerator interface {
	SignatureKey(alg domaintypes.SignatureAlgorithm) (domaintypes.Key, error)
	CipherKey(alg domaintypes.CipherAlgorithm) (domaintypes.Key, error)
	Password(opts domaintypes.PasswordOptions) (string, error)
}

package signature

import (
	"bytes"
	"crypto/subtle"
	"fmt"

	"textseal/internal/crypto"
	"textseal/internal/domain"
)

// Service implements domain.SignatureService. It holds no state.
type Service struct{}

// New returns a signature service.
func New() *Service { return &Service{} }

// Sign signs message under key and returns the encoded signature.
func (s *Service) Sign(alg domain.SignatureAlgorithm, message, key []byte) (string, error) {
	sig, err := s.SignRaw(alg, message, key)
	if err != nil {
		return "", err
	}
	return crypto.ToBase64URL(sig), nil
}

// SignRaw signs message under key and returns the raw signature bytes.
//
// For AlgorithmBlake3 key is the shared secret. For AlgorithmEd25519 key is
// the private seed.
func (s *Service) SignRaw(alg domain.SignatureAlgorithm, message, key []byte) ([]byte, error) {
	k, err := crypto.ParseKey(key)
	if err != nil {
		return nil, err
	}
	msg := bytes.TrimSpace(message)

	switch alg {
	case domain.AlgorithmBlake3:
		return crypto.KeyedHash(k, msg)
	case domain.AlgorithmEd25519:
		return crypto.SignEd25519(k, msg), nil
	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownAlgorithm, alg)
	}
}

// Verify decodes signature and checks it against message under key.
//
// A well-formed signature that does not match returns false with a nil
// error. Undecodable text or a wrong decoded length is an error.
func (s *Service) Verify(
	alg domain.SignatureAlgorithm,
	message, key []byte,
	signature string,
) (bool, error) {
	sig, err := crypto.FromBase64URL(signature)
	if err != nil {
		return false, err
	}
	return s.VerifyRaw(alg, message, key, sig)
}

// VerifyRaw checks raw signature bytes against message under key.
//
// For AlgorithmBlake3 key is the shared secret. For AlgorithmEd25519 key is
// the public key.
func (s *Service) VerifyRaw(alg domain.SignatureAlgorithm, message, key, sig []byte) (bool, error) {
	k, err := crypto.ParseKey(key)
	if err != nil {
		return false, err
	}
	msg := bytes.TrimSpace(message)

	switch alg {
	case domain.AlgorithmBlake3:
		if err := checkSignatureLength(sig, crypto.Blake3SignatureSize); err != nil {
			return false, err
		}
		want, err := crypto.KeyedHash(k, msg)
		if err != nil {
			return false, err
		}
		return subtle.ConstantTimeCompare(want, sig) == 1, nil
	case domain.AlgorithmEd25519:
		if err := checkSignatureLength(sig, crypto.Ed25519SignatureSize); err != nil {
			return false, err
		}
		return crypto.VerifyEd25519(k, msg, sig), nil
	default:
		return false, fmt.Errorf("%w: %s", domain.ErrUnknownAlgorithm, alg)
	}
}

// PublicKey returns the verifying key for an Ed25519 seed. BLAKE3 keys are
// symmetric and have no public half.
func (s *Service) PublicKey(alg domain.SignatureAlgorithm, key []byte) (domain.Key, error) {
	k, err := crypto.ParseKey(key)
	if err != nil {
		return domain.Key{}, err
	}

	switch alg {
	case domain.AlgorithmEd25519:
		return crypto.Ed25519PublicFromSeed(k), nil
	case domain.AlgorithmBlake3:
		return domain.Key{}, fmt.Errorf("%w: %s has no public key", domain.ErrNotImplemented, alg)
	default:
		return domain.Key{}, fmt.Errorf("%w: %s", domain.ErrUnknownAlgorithm, alg)
	}
}

func checkSignatureLength(sig []byte, want int) error {
	if len(sig) != want {
		return fmt.Errorf("%w: got %d, want %d", crypto.ErrInvalidSignatureLength, len(sig), want)
	}
	return nil
}

// Compile-time assertion that Service implements domain.SignatureService.
var _ domain.SignatureService = (*Service)(nil)

package keygen

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/go-playground/validator/v10"

	"textseal/internal/domain"
)

// Password alphabets omit characters that are easy to confuse (I, l, o, 0).
const (
	upperChars  = "ABCDEFGHJKLMNOPQRSTUVWXYZ"
	lowerChars  = "abcdefghijkmnpqrstuvwxyz"
	numberChars = "123456789"
	symbolChars = "!@#$%^&*()-_=+"
)

var (
	// ErrNoCharacterClass is returned when every password class is disabled.
	ErrNoCharacterClass = errors.New("at least one character class is required")

	// ErrRandomSource is returned when the random source cannot be read.
	ErrRandomSource = errors.New("random source failed")
)

// Service implements domain.KeyGenerator.
type Service struct {
	rand     io.Reader
	validate *validator.Validate
}

// New returns a generator drawing from r. A nil r selects crypto/rand.Reader.
func New(r io.Reader) *Service {
	if r == nil {
		r = rand.Reader
	}
	return &Service{rand: r, validate: validator.New()}
}

// SignatureKey returns a fresh BLAKE3 key or Ed25519 seed.
func (s *Service) SignatureKey(alg domain.SignatureAlgorithm) (domain.Key, error) {
	switch alg {
	case domain.AlgorithmBlake3, domain.AlgorithmEd25519:
		return s.randomKey()
	default:
		return domain.Key{}, fmt.Errorf("%w: %s", domain.ErrUnknownAlgorithm, alg)
	}
}

// CipherKey returns a fresh ChaCha20-Poly1305 key.
func (s *Service) CipherKey(alg domain.CipherAlgorithm) (domain.Key, error) {
	switch alg {
	case domain.AlgorithmChaCha20Poly1305:
		return s.randomKey()
	default:
		return domain.Key{}, fmt.Errorf("%w: %s", domain.ErrUnknownAlgorithm, alg)
	}
}

// Password returns a random password drawn uniformly from the enabled
// character classes.
func (s *Service) Password(opts domain.PasswordOptions) (string, error) {
	if err := s.validate.Struct(opts); err != nil {
		return "", fmt.Errorf("invalid password options: %w", err)
	}

	var charset []byte
	if opts.Upper {
		charset = append(charset, upperChars...)
	}
	if opts.Lower {
		charset = append(charset, lowerChars...)
	}
	if opts.Number {
		charset = append(charset, numberChars...)
	}
	if opts.Symbol {
		charset = append(charset, symbolChars...)
	}
	if len(charset) == 0 {
		return "", ErrNoCharacterClass
	}

	size := big.NewInt(int64(len(charset)))
	out := make([]byte, opts.Length)
	for i := range out {
		n, err := rand.Int(s.rand, size)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrRandomSource, err)
		}
		out[i] = charset[n.Int64()]
	}
	return string(out), nil
}

func (s *Service) randomKey() (domain.Key, error) {
	var k domain.Key
	if _, err := io.ReadFull(s.rand, k[:]); err != nil {
		return domain.Key{}, fmt.Errorf("%w: %v", ErrRandomSource, err)
	}
	return k, nil
}

// Compile-time assertion that Service implements domain.KeyGenerator.
var _ domain.KeyGenerator = (*Service)(nil)

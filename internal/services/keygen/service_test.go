package keygen_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"textseal/internal/domain"
	"textseal/internal/services/keygen"
)

func TestSignatureKey_FromSource(t *testing.T) {
	src := bytes.Repeat([]byte{0x5a}, domain.KeySize)

	for _, alg := range domain.SignatureAlgorithms {
		k, err := keygen.New(bytes.NewReader(src)).SignatureKey(alg)
		require.NoError(t, err)
		assert.Equal(t, src, k.Slice(), alg.String())
	}
}

func TestCipherKey_Fresh(t *testing.T) {
	gen := keygen.New(nil)

	a, err := gen.CipherKey(domain.AlgorithmChaCha20Poly1305)
	require.NoError(t, err)
	b, err := gen.CipherKey(domain.AlgorithmChaCha20Poly1305)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.NotEqual(t, domain.Key{}, a)
}

func TestKey_ShortSource(t *testing.T) {
	gen := keygen.New(bytes.NewReader(make([]byte, 16)))

	_, err := gen.CipherKey(domain.AlgorithmChaCha20Poly1305)
	assert.ErrorIs(t, err, keygen.ErrRandomSource)
}

func TestKey_UnknownAlgorithm(t *testing.T) {
	gen := keygen.New(nil)

	_, err := gen.SignatureKey(domain.SignatureAlgorithm(0))
	assert.ErrorIs(t, err, domain.ErrUnknownAlgorithm)

	_, err = gen.CipherKey(domain.CipherAlgorithm(7))
	assert.ErrorIs(t, err, domain.ErrUnknownAlgorithm)
}

func TestPassword_Classes(t *testing.T) {
	gen := keygen.New(nil)

	tests := []struct {
		name    string
		opts    domain.PasswordOptions
		allowed string
	}{
		{"default", domain.DefaultPasswordOptions(), "ABCDEFGHJKLMNOPQRSTUVWXYZabcdefghijkmnpqrstuvwxyz123456789!@#$%^&*()-_=+"},
		{"digits only", domain.PasswordOptions{Length: 32, Number: true}, "123456789"},
		{"letters", domain.PasswordOptions{Length: 64, Upper: true, Lower: true}, "ABCDEFGHJKLMNOPQRSTUVWXYZabcdefghijkmnpqrstuvwxyz"},
		{"symbols", domain.PasswordOptions{Length: 8, Symbol: true}, "!@#$%^&*()-_=+"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pw, err := gen.Password(tt.opts)
			require.NoError(t, err)
			assert.Len(t, pw, tt.opts.Length)
			for _, r := range pw {
				assert.True(t, strings.ContainsRune(tt.allowed, r), "unexpected %q", r)
			}
		})
	}
}

func TestPassword_NoAmbiguousCharacters(t *testing.T) {
	pw, err := keygen.New(nil).Password(domain.PasswordOptions{Length: 255, Upper: true, Lower: true, Number: true})
	require.NoError(t, err)
	assert.False(t, strings.ContainsAny(pw, "Il0o"))
}

func TestPassword_Invalid(t *testing.T) {
	gen := keygen.New(nil)

	_, err := gen.Password(domain.PasswordOptions{Length: 16})
	assert.ErrorIs(t, err, keygen.ErrNoCharacterClass)

	_, err = gen.Password(domain.PasswordOptions{Length: 0, Upper: true})
	assert.Error(t, err)

	_, err = gen.Password(domain.PasswordOptions{Length: 256, Upper: true})
	assert.Error(t, err)
}

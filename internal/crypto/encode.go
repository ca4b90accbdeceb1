package crypto

import (
	"encoding/base64"
	"fmt"
)

// ToBase64URL encodes b as URL-safe base64 without padding.
func ToBase64URL(b []byte) string {
	return base64.RawURLEncoding.EncodeToString(b)
}

// FromBase64URL decodes URL-safe base64 text without padding.
func FromBase64URL(s string) ([]byte, error) {
	b, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncoding, err)
	}
	return b, nil
}

// ToBase64 encodes b as standard padded base64.
func ToBase64(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

// FromBase64 decodes standard padded base64 text.
func FromBase64(s string) ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncoding, err)
	}
	return b, nil
}

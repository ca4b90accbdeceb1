package crypto

import (
	"github.com/zeebo/blake3"

	"textseal/internal/domain"
)

// KeyedHash returns the BLAKE3 keyed hash of msg under key.
func KeyedHash(key domain.Key, msg []byte) ([]byte, error) {
	h, err := blake3.NewKeyed(key[:])
	if err != nil {
		return nil, err
	}
	// Hasher.Write never returns an error.
	_, _ = h.Write(msg)
	return h.Sum(nil), nil
}

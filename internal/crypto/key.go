package crypto

import (
	"fmt"

	"textseal/internal/domain"
)

// ParseKey copies b into a fixed-size key. The caller's slice is not retained.
func ParseKey(b []byte) (domain.Key, error) {
	var k domain.Key
	if len(b) != KeySize {
		return k, fmt.Errorf("%w: got %d, want %d", ErrInvalidKeyLength, len(b), KeySize)
	}
	copy(k[:], b)
	return k, nil
}

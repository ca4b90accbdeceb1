package crypto

import (
	"github.com/cloudflare/circl/sign/ed25519"

	"textseal/internal/domain"
	"textseal/internal/util/memzero"
)

// Ed25519PublicFromSeed derives the verifying key for seed.
func Ed25519PublicFromSeed(seed domain.Key) domain.Key {
	priv := ed25519.NewKeyFromSeed(seed[:])
	defer memzero.Zero(priv)

	var pub domain.Key
	copy(pub[:], priv[Ed25519SeedSize:])
	return pub
}

// SignEd25519 signs msg with the key derived from seed.
func SignEd25519(seed domain.Key, msg []byte) []byte {
	priv := ed25519.NewKeyFromSeed(seed[:])
	defer memzero.Zero(priv)
	return ed25519.Sign(priv, msg)
}

// VerifyEd25519 verifies sig over msg with pub.
func VerifyEd25519(pub domain.Key, msg, sig []byte) bool {
	return ed25519.Verify(ed25519.PublicKey(pub[:]), msg, sig)
}

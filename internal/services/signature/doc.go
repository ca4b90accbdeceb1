// Package signature signs and verifies messages with a closed set of
// algorithms: a BLAKE3 keyed hash and Ed25519.
//
// Messages are trimmed of surrounding whitespace before signing and
// verifying so that signatures survive trailing newlines in text files.
// Signatures are returned as URL-safe base64 without padding.
package signature

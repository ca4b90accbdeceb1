// Package keygen produces fresh key material and random passwords from an
// injected random source.
package keygen

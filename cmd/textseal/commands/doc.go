// Package commands defines the textseal CLI and wires dependencies for subcommands.
//
// Commands
//
//   - text sign                 Sign input with a BLAKE3 key or Ed25519 seed
//   - text verify               Check a signature against input
//   - text generate-key         Create a signing key (and .pub for Ed25519)
//   - text encrypt              Encrypt input with ChaCha20-Poly1305
//   - text decrypt              Decrypt a payload produced by text encrypt
//   - text generate-encrypt-key Create a ChaCha20-Poly1305 key file
//   - base64 encode|decode      Standard or URL-safe base64
//   - genpass                   Generate a random password
//
// # Implementation
//
// The root command loads an optional .env file, overlays TEXTSEAL_*
// variables and flags onto app.Config, and builds the dependency graph
// (input source, key store, services, logger) before any subcommand runs.
// Inputs and keys named "-" are read from standard input.
package commands

// Package app wires application dependencies for the CLI.
//
// It validates Config (flags, TEXTSEAL_* environment variables and an
// optional .env file), builds the zerolog logger, the input source, the key
// store and the signature, cipher and key generation services, and exposes
// them via the Wire struct for commands to use.
package app

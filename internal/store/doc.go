// Package store resolves textseal inputs and persists keys and outputs.
//
// Source turns a name into bytes: "-" reads standard input, anything else
// is a file path. KeyFileStore applies the key file conventions on top of
// it: signing keys are raw bytes, cipher keys are URL-safe base64 text.
// All writes go through a temp file and an atomic rename. Key files are
// created with mode 0600.
package store

package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"textseal/internal/store"
)

var errBothStdin = errors.New("input and key cannot both be read from stdin")

// verifyInput accepts the stdin marker or a path to an existing regular file.
func verifyInput(name string) error {
	if name == store.StdinMarker {
		return nil
	}
	info, err := os.Stat(name)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s: is a directory", name)
	}
	return nil
}

// verifyInputs checks an input and key pair before anything is read.
func verifyInputs(input, key string) error {
	if input == store.StdinMarker && key == store.StdinMarker {
		return errBothStdin
	}
	if err := verifyInput(input); err != nil {
		return err
	}
	return verifyInput(key)
}

// keyPath returns output when set, otherwise a fresh name in keyDir or the
// configured key directory.
func keyPath(output, keyDir, algorithm string) (string, error) {
	if output != "" {
		return output, nil
	}
	if keyDir == "" {
		keyDir = appCtx.Config.KeyDir
	}
	if keyDir == "" {
		return "", errors.New("either --output or --key-dir is required")
	}
	return filepath.Join(keyDir, fmt.Sprintf("%s-%s.key", uuid.New(), algorithm)), nil
}

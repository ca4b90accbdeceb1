package app

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Environment variables read by ApplyEnv.
const (
	EnvLogLevel = "TEXTSEAL_LOG_LEVEL"
	EnvKeyDir   = "TEXTSEAL_KEY_DIR"
)

// Log levels accepted in Config.LogLevel.
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	LogLevel string `validate:"required,oneof=debug info warn error"`

	// KeyDir is the default directory for generated keys.
	KeyDir string

	// Optional I/O; nil selects crypto/rand.Reader, os.Stdin and os.Stderr.
	Rand   io.Reader `validate:"-"`
	Stdin  io.Reader `validate:"-"`
	Stderr io.Writer `validate:"-"`
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{LogLevel: LogLevelInfo}
}

// Validate checks that all fields in Config are valid.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("validation failed for Config: %w", err)
	}
	return nil
}

// LoadEnvFile loads variables from a dotenv file into the process
// environment. A missing file is not an error. Variables already set in
// the environment win.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overlays TEXTSEAL_* environment variables onto c.
func (c *Config) ApplyEnv() {
	if v, ok := os.LookupEnv(EnvLogLevel); ok && v != "" {
		c.LogLevel = v
	}
	if v, ok := os.LookupEnv(EnvKeyDir); ok && v != "" {
		c.KeyDir = v
	}
}

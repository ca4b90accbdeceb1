package app

import (
	"os"

	"github.com/rs/zerolog"
)

// NewLogger builds a console logger writing to cfg.Stderr at cfg.LogLevel.
func NewLogger(cfg Config) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return zerolog.Nop(), err
	}
	out := cfg.Stderr
	if out == nil {
		out = os.Stderr
	}
	w := zerolog.ConsoleWriter{
		Out:          out,
		NoColor:      true,
		PartsExclude: []string{zerolog.TimestampFieldName},
	}
	return zerolog.New(w).Level(lvl), nil
}

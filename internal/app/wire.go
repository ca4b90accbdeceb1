package app

import (
	"github.com/rs/zerolog"

	"textseal/internal/domain"
	ciphersvc "textseal/internal/services/cipher"
	keygensvc "textseal/internal/services/keygen"
	signaturesvc "textseal/internal/services/signature"
	"textseal/internal/store"
)

// Wire bundles the stores and services used by the CLI.
type Wire struct {
	Config     Config
	Log        zerolog.Logger
	Inputs     domain.InputSource
	Keys       domain.KeyStore
	Signatures domain.SignatureService
	Ciphers    domain.CipherService
	Generator  domain.KeyGenerator
}

// NewWire validates cfg and constructs the dependency graph.
func NewWire(cfg Config) (*Wire, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log, err := NewLogger(cfg)
	if err != nil {
		return nil, err
	}

	// Key files and inputs share one stdin reader.
	src := store.NewSource(cfg.Stdin)

	return &Wire{
		Config:     cfg,
		Log:        log,
		Inputs:     src,
		Keys:       store.NewKeyFileStore(src),
		Signatures: signaturesvc.New(),
		Ciphers:    ciphersvc.New(cfg.Rand),
		Generator:  keygensvc.New(cfg.Rand),
	}, nil
}

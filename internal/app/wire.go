package app

import (
	"github.com/Kiruse/kayring/internal/domain"
	keyringsvc "github.com/Kiruse/kayring/internal/services/keyring"
	"github.com/Kiruse/kayring/internal/store"
)

// Wire bundles the store and service for the CLI.
type Wire struct {
	Store   domain.Keystore
	Keyring domain.Keyring
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) *Wire {
	fs := store.NewFileStore(cfg.Dir)
	return &Wire{
		Store:   fs,
		Keyring: keyringsvc.New(fs),
	}
}

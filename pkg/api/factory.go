// Package api provides factory implementations for dependency injection
package api

import (
	"context"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/ssargent/chromapack/pkg/storage"
)

// DefaultStoreFactory opens pebble-backed palette stores
type DefaultStoreFactory struct{}

// NewStoreFactory creates a new store factory
func NewStoreFactory() StoreFactory {
	return &DefaultStoreFactory{}
}

// OpenStore opens the palette database at <dataDir>/palette
func (f *DefaultStoreFactory) OpenStore(dataDir string) (ColorStore, error) {
	return storage.NewPaletteStore(filepath.Join(dataDir, "palette"))
}

// DefaultServerFactory is the default implementation of ServerFactory
type DefaultServerFactory struct{}

// NewServerFactory creates a new server factory
func NewServerFactory() ServerFactory {
	return &DefaultServerFactory{}
}

// CreateServerStarter creates a server starter
func (f *DefaultServerFactory) CreateServerStarter() ServerStarter {
	return &DefaultServerStarter{}
}

// DefaultServerStarter is the default implementation of ServerStarter
type DefaultServerStarter struct{}

// StartServer starts the API server with the given configuration
func (s *DefaultServerStarter) StartServer(ctx context.Context, store ColorStore, config ServerConfig, logger logrus.FieldLogger) error {
	return StartServer(ctx, store, config, logger)
}

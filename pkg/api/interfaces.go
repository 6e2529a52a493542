// Package api provides interfaces for dependency injection
package api

import (
	"context"

	"github.com/segmentio/ksuid"
	"github.com/sirupsen/logrus"

	"github.com/ssargent/chromapack/pkg/color"
	"github.com/ssargent/chromapack/pkg/storage"
)

// ColorStore defines the palette persistence operations the API needs
type ColorStore interface {
	Create(c color.Color) (ksuid.KSUID, error)
	Read(id ksuid.KSUID) (color.Color, error)
	Update(id ksuid.KSUID, c color.Color) error
	Delete(id ksuid.KSUID) error
	List() ([]storage.Entry, error)
	Close() error
}

// StoreFactory opens palette stores
type StoreFactory interface {
	// OpenStore opens the palette store under dataDir
	OpenStore(dataDir string) (ColorStore, error)
}

// ServerStarter defines the interface for starting the API server
type ServerStarter interface {
	// StartServer serves until ctx is cancelled or the listener fails
	StartServer(ctx context.Context, store ColorStore, config ServerConfig, logger logrus.FieldLogger) error
}

// ServerFactory creates server instances
type ServerFactory interface {
	// CreateServerStarter creates a server starter
	CreateServerStarter() ServerStarter
}

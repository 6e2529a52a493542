// Package di provides dependency injection container
package di

import (
	"github.com/ssargent/chromapack/pkg/api" //nolint:depguard
	"github.com/ssargent/chromapack/pkg/codec"
	"github.com/ssargent/chromapack/pkg/roster"
)

// Container holds all the dependencies for the application
type Container struct {
	storeFactory  api.StoreFactory
	serverFactory api.ServerFactory
	codec         *codec.ColorCodec
	serializer    roster.Serializer
}

// NewContainer creates a new dependency injection container
func NewContainer() *Container {
	return &Container{
		storeFactory:  api.NewStoreFactory(),
		serverFactory: api.NewServerFactory(),
		codec:         codec.NewColorCodec(),
		serializer:    roster.JSONSerializer{},
	}
}

// GetStoreFactory returns the palette store factory
func (c *Container) GetStoreFactory() api.StoreFactory {
	return c.storeFactory
}

// GetServerFactory returns the server factory
func (c *Container) GetServerFactory() api.ServerFactory {
	return c.serverFactory
}

// GetCodec returns the color codec
func (c *Container) GetCodec() *codec.ColorCodec {
	return c.codec
}

// GetSerializer returns the roster serializer checked by the property suite
func (c *Container) GetSerializer() roster.Serializer {
	return c.serializer
}

// SetStoreFactory allows overriding the store factory (for testing)
func (c *Container) SetStoreFactory(factory api.StoreFactory) {
	c.storeFactory = factory
}

// SetServerFactory allows overriding the server factory (for testing)
func (c *Container) SetServerFactory(factory api.ServerFactory) {
	c.serverFactory = factory
}

// SetSerializer allows swapping the roster serializer
func (c *Container) SetSerializer(serializer roster.Serializer) {
	c.serializer = serializer
}

package api

import (
	"net"
	"strconv"

	"github.com/ssargent/chromapack/pkg/codec"
	"github.com/ssargent/chromapack/pkg/color"
)

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ColorRequest carries a color literal such as "RGB(10,20,30)" or "Blue"
type ColorRequest struct {
	Color color.Color `json:"color"`
}

// UnpackRequest carries a packed sequence to decode
type UnpackRequest struct {
	Packed []int `json:"packed"`
}

// ColorResponse describes a color together with its packed form
type ColorResponse struct {
	ID     string               `json:"id,omitempty"`
	Color  color.Color          `json:"color"`
	Kind   string               `json:"kind"`
	Packed codec.PackedSequence `json:"packed"`
}

// CatalogEntry is one named color and its wire index
type CatalogEntry struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
}

// ServerConfig holds configuration for the API server
type ServerConfig struct {
	Bind   string
	Port   int
	APIKey string // empty disables authentication
}

// Addr is the host:port the server listens on.
func (c ServerConfig) Addr() string {
	return net.JoinHostPort(c.Bind, strconv.Itoa(c.Port))
}

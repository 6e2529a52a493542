package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/segmentio/ksuid"
	"github.com/sirupsen/logrus"

	"github.com/ssargent/chromapack/pkg/catalog"
	"github.com/ssargent/chromapack/pkg/codec"
	"github.com/ssargent/chromapack/pkg/color"
	"github.com/ssargent/chromapack/pkg/storage"
)

const maxBodyBytes = 1 << 20

// Server holds the API server state
type Server struct {
	codec   *codec.ColorCodec
	store   ColorStore
	config  ServerConfig
	metrics *Metrics
	logger  logrus.FieldLogger
}

// NewServer creates a new API server
func NewServer(store ColorStore, config ServerConfig, metrics *Metrics, logger logrus.FieldLogger) *Server {
	return &Server{
		codec:   codec.NewColorCodec(),
		store:   store,
		config:  config,
		metrics: metrics,
		logger:  logger,
	}
}

func (s *Server) describe(id string, c color.Color) ColorResponse {
	return ColorResponse{
		ID:     id,
		Color:  c,
		Kind:   c.Kind().String(),
		Packed: s.codec.Pack(c),
	}
}

// decodeColorRequest reads a ColorRequest body. Construction errors from the
// color literal are reported as they are.
func decodeColorRequest(w http.ResponseWriter, r *http.Request) (color.Color, error) {
	var req ColorRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		return color.Color{}, err
	}
	if !req.Color.Valid() {
		return color.Color{}, errors.New("color is required")
	}
	return req.Color, nil
}

// handleHealth godoc
//
//	@Summary		Health check
//	@Tags			health
//	@Produce		json
//	@Success		200	{object}	map[string]string
//	@Router			/health [get]
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.metrics.RecordHealthCheck(true)
	sendSuccess(w, map[string]string{"status": "healthy"})
}

// handleCatalog godoc
//
//	@Summary		List named colors
//	@Description	Returns the catalog in wire order; the index is the packed value of a Named color.
//	@Tags			codec
//	@Produce		json
//	@Success		200	{array}	CatalogEntry
//	@Router			/catalog [get]
func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	names := catalog.Default().Names()
	entries := make([]CatalogEntry, len(names))
	for i, name := range names {
		entries[i] = CatalogEntry{Index: i, Name: name}
	}
	sendSuccess(w, entries)
}

// handlePack godoc
//
//	@Summary		Pack a color
//	@Tags			codec
//	@Accept			json
//	@Produce		json
//	@Param			body	body		ColorRequest	true	"Color literal"
//	@Success		200		{object}	ColorResponse
//	@Failure		400		{object}	APIResponse
//	@Router			/pack [post]
func (s *Server) handlePack(w http.ResponseWriter, r *http.Request) {
	c, err := decodeColorRequest(w, r)
	if err != nil {
		s.metrics.RecordPack(false)
		sendError(w, fmt.Sprintf("Invalid color: %v", err), http.StatusBadRequest)
		return
	}
	s.metrics.RecordPack(true)
	sendSuccess(w, s.describe("", c))
}

// handleUnpack godoc
//
//	@Summary		Unpack a packed sequence
//	@Tags			codec
//	@Accept			json
//	@Produce		json
//	@Param			body	body		UnpackRequest	true	"Packed sequence"
//	@Success		200		{object}	ColorResponse
//	@Failure		400		{object}	APIResponse
//	@Failure		422		{object}	APIResponse
//	@Router			/unpack [post]
func (s *Server) handleUnpack(w http.ResponseWriter, r *http.Request) {
	var req UnpackRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		sendError(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	c, err := s.codec.Unpack(req.Packed)
	s.metrics.RecordUnpack(err)
	if err != nil {
		sendError(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	sendSuccess(w, s.describe("", c))
}

// handleCreateColor godoc
//
//	@Summary		Store a color
//	@Tags			colors
//	@Accept			json
//	@Produce		json
//	@Param			body	body		ColorRequest	true	"Color literal"
//	@Success		201		{object}	ColorResponse
//	@Failure		400		{object}	APIResponse
//	@Failure		500		{object}	APIResponse
//	@Router			/colors [post]
//	@Security		ApiKeyAuth
func (s *Server) handleCreateColor(w http.ResponseWriter, r *http.Request) {
	c, err := decodeColorRequest(w, r)
	if err != nil {
		sendError(w, fmt.Sprintf("Invalid color: %v", err), http.StatusBadRequest)
		return
	}

	start := time.Now()
	id, err := s.store.Create(c)
	s.metrics.RecordStoreOperation("create", err == nil, time.Since(start))
	if err != nil {
		s.logger.WithError(err).Error("failed to store color")
		sendError(w, "Failed to store color", http.StatusInternalServerError)
		return
	}
	sendSuccessStatus(w, s.describe(id.String(), c), http.StatusCreated)
}

// handleListColors godoc
//
//	@Summary		List stored colors
//	@Tags			colors
//	@Produce		json
//	@Success		200	{array}		ColorResponse
//	@Failure		500	{object}	APIResponse
//	@Router			/colors [get]
//	@Security		ApiKeyAuth
func (s *Server) handleListColors(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	entries, err := s.store.List()
	s.metrics.RecordStoreOperation("list", err == nil, time.Since(start))
	if err != nil {
		s.logger.WithError(err).Error("failed to list colors")
		sendError(w, "Failed to list colors", http.StatusInternalServerError)
		return
	}
	s.metrics.SetColorsStored(len(entries))

	out := make([]ColorResponse, len(entries))
	for i, e := range entries {
		out[i] = s.describe(e.ID.String(), e.Color)
	}
	sendSuccess(w, out)
}

// handleGetColor godoc
//
//	@Summary		Get a stored color
//	@Tags			colors
//	@Produce		json
//	@Param			id	path		string	true	"Color id (KSUID)"
//	@Success		200	{object}	ColorResponse
//	@Failure		400	{object}	APIResponse
//	@Failure		404	{object}	APIResponse
//	@Router			/colors/{id} [get]
//	@Security		ApiKeyAuth
func (s *Server) handleGetColor(w http.ResponseWriter, r *http.Request) {
	id, ok := s.parseID(w, r)
	if !ok {
		return
	}

	start := time.Now()
	c, err := s.store.Read(id)
	s.metrics.RecordStoreOperation("read", err == nil, time.Since(start))
	if err != nil {
		s.sendStoreError(w, "read", id, err)
		return
	}
	sendSuccess(w, s.describe(id.String(), c))
}

// handleUpdateColor godoc
//
//	@Summary		Replace a stored color
//	@Tags			colors
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string			true	"Color id (KSUID)"
//	@Param			body	body		ColorRequest	true	"Color literal"
//	@Success		200		{object}	ColorResponse
//	@Failure		400		{object}	APIResponse
//	@Failure		404		{object}	APIResponse
//	@Router			/colors/{id} [put]
//	@Security		ApiKeyAuth
func (s *Server) handleUpdateColor(w http.ResponseWriter, r *http.Request) {
	id, ok := s.parseID(w, r)
	if !ok {
		return
	}
	c, err := decodeColorRequest(w, r)
	if err != nil {
		sendError(w, fmt.Sprintf("Invalid color: %v", err), http.StatusBadRequest)
		return
	}

	start := time.Now()
	err = s.store.Update(id, c)
	s.metrics.RecordStoreOperation("update", err == nil, time.Since(start))
	if err != nil {
		s.sendStoreError(w, "update", id, err)
		return
	}
	sendSuccess(w, s.describe(id.String(), c))
}

// handleDeleteColor godoc
//
//	@Summary		Delete a stored color
//	@Tags			colors
//	@Produce		json
//	@Param			id	path		string	true	"Color id (KSUID)"
//	@Success		200	{object}	map[string]string
//	@Failure		404	{object}	APIResponse
//	@Router			/colors/{id} [delete]
//	@Security		ApiKeyAuth
func (s *Server) handleDeleteColor(w http.ResponseWriter, r *http.Request) {
	id, ok := s.parseID(w, r)
	if !ok {
		return
	}

	start := time.Now()
	err := s.store.Delete(id)
	s.metrics.RecordStoreOperation("delete", err == nil, time.Since(start))
	if err != nil {
		s.sendStoreError(w, "delete", id, err)
		return
	}
	sendSuccess(w, map[string]string{"message": "Color deleted"})
}

func (s *Server) parseID(w http.ResponseWriter, r *http.Request) (ksuid.KSUID, bool) {
	id, err := ksuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		sendError(w, "Invalid color id", http.StatusBadRequest)
		return ksuid.Nil, false
	}
	return id, true
}

func (s *Server) sendStoreError(w http.ResponseWriter, op string, id ksuid.KSUID, err error) {
	if errors.Is(err, storage.ErrNotFound) {
		sendError(w, "Color not found", http.StatusNotFound)
		return
	}

	entry := s.logger.WithError(err).WithField("id", id.String())
	var decodeErr *codec.DecodeError
	if errors.As(err, &decodeErr) {
		entry.Error("stored color is corrupt")
		sendError(w, "Stored color is corrupt", http.StatusInternalServerError)
		return
	}
	entry.Errorf("failed to %s color", op)
	sendError(w, fmt.Sprintf("Failed to %s color", op), http.StatusInternalServerError)
}

package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/dan-yates1/umg-project/authentication/middleware"
	"github.com/dan-yates1/umg-project/domain"
	"github.com/dan-yates1/umg-project/models"
	"github.com/dan-yates1/umg-project/repositories"
)

type trackRequest struct {
	Name string `json:"name"`
}

// TrackHandler handles the track CRUD and search endpoints. All routes sit
// behind the auth middleware; every operation is scoped to the caller, so a
// track id owned by another user reads as not found.
type TrackHandler struct {
	Store repositories.TrackStore
	Log   zerolog.Logger
}

func NewTrackHandler(store repositories.TrackStore, log zerolog.Logger) *TrackHandler {
	return &TrackHandler{Store: store, Log: log}
}

// List handles GET /api/tracks.
func (h *TrackHandler) List(c *fiber.Ctx) error {
	identity, ok := middleware.IdentityFromCtx(c)
	if !ok {
		return unauthenticated(c)
	}

	tracks, err := h.Store.ListByUser(identity.UserID)
	if err != nil {
		h.Log.Error().Err(err).Msg("failed to list tracks")
		return storeFailure(c)
	}
	return c.Status(http.StatusOK).JSON(tracks)
}

// Create handles POST /api/tracks.
func (h *TrackHandler) Create(c *fiber.Ctx) error {
	identity, ok := middleware.IdentityFromCtx(c)
	if !ok {
		return unauthenticated(c)
	}

	var req trackRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(domain.ErrorResponse{Error: "failed to parse request body"})
	}
	if req.Name == "" {
		return c.Status(http.StatusBadRequest).JSON(domain.ErrorResponse{Error: domain.ErrEmptyName.Error()})
	}

	track := models.Track{Name: req.Name, UserID: identity.UserID}
	if err := h.Store.Create(&track); err != nil {
		h.Log.Error().Err(err).Msg("failed to create track")
		return storeFailure(c)
	}
	return c.Status(http.StatusCreated).JSON(track)
}

// Update handles PUT /api/tracks/:id.
func (h *TrackHandler) Update(c *fiber.Ctx) error {
	identity, ok := middleware.IdentityFromCtx(c)
	if !ok {
		return unauthenticated(c)
	}

	id, err := parseID(c)
	if err != nil {
		return notFound(c)
	}

	var req trackRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(domain.ErrorResponse{Error: "failed to parse request body"})
	}
	if req.Name == "" {
		return c.Status(http.StatusBadRequest).JSON(domain.ErrorResponse{Error: domain.ErrEmptyName.Error()})
	}

	if err := h.Store.UpdateName(id, identity.UserID, req.Name); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return notFound(c)
		}
		h.Log.Error().Err(err).Uint("track_id", id).Msg("failed to update track")
		return storeFailure(c)
	}
	return c.Status(http.StatusOK).JSON(domain.MessageResponse{Message: "track updated successfully"})
}

// Delete handles DELETE /api/tracks/:id.
func (h *TrackHandler) Delete(c *fiber.Ctx) error {
	identity, ok := middleware.IdentityFromCtx(c)
	if !ok {
		return unauthenticated(c)
	}

	id, err := parseID(c)
	if err != nil {
		return notFound(c)
	}

	if err := h.Store.Delete(id, identity.UserID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return notFound(c)
		}
		h.Log.Error().Err(err).Uint("track_id", id).Msg("failed to delete track")
		return storeFailure(c)
	}
	return c.Status(http.StatusOK).JSON(domain.MessageResponse{Message: "track deleted successfully"})
}

// Search handles GET /api/tracks/search?query=q with a case-insensitive
// substring match on name. An empty or missing query returns the caller's
// full track list.
func (h *TrackHandler) Search(c *fiber.Ctx) error {
	identity, ok := middleware.IdentityFromCtx(c)
	if !ok {
		return unauthenticated(c)
	}

	tracks, err := h.Store.Search(identity.UserID, c.Query("query"))
	if err != nil {
		h.Log.Error().Err(err).Msg("failed to search tracks")
		return storeFailure(c)
	}
	return c.Status(http.StatusOK).JSON(tracks)
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

func unauthenticated(c *fiber.Ctx) error {
	return c.Status(http.StatusUnauthorized).JSON(domain.ErrorResponse{Error: domain.ErrUnauthenticated.Error()})
}

func notFound(c *fiber.Ctx) error {
	return c.Status(http.StatusNotFound).JSON(domain.ErrorResponse{Error: domain.ErrNotFound.Error()})
}

func storeFailure(c *fiber.Ctx) error {
	return c.Status(http.StatusBadRequest).JSON(domain.ErrorResponse{Error: "operation failed"})
}

package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/Verdant-Codeworks/Verdantia-sub001/internal/catalog"
	"github.com/Verdant-Codeworks/Verdantia-sub001/internal/coord"
	"github.com/Verdant-Codeworks/Verdantia-sub001/internal/logging"
	"github.com/Verdant-Codeworks/Verdantia-sub001/internal/room"
)

const maxAreaRadius = 8

// ErrorResponse is the JSON error envelope shared by every endpoint.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type Handler struct {
	rooms   *room.Service
	catalog *catalog.Catalog
}

func NewHandler(rooms *room.Service, cat *catalog.Catalog) *Handler {
	return &Handler{
		rooms:   rooms,
		catalog: cat,
	}
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":       "healthy",
		"timestamp":    time.Now().Unix(),
		"service":      "verdantia-engine",
		"cached_rooms": h.rooms.Cache().Len(),
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, response)
}

// GetRoom returns the client view of one room, generating it on first
// request.
func (h *Handler) GetRoom(w http.ResponseWriter, r *http.Request) {
	x, y, z, ok := h.parseCoordinates(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	generated, err := h.rooms.GetOrGenerateRoom(ctx, x, y, z)
	if err != nil {
		logging.WithCoords(x, y, z).Error("failed to get or generate room", "error", err)
		h.renderError(w, r, http.StatusInternalServerError, "failed to generate room", err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, room.NewView(generated))
}

// GetRoomArea returns the rooms within a Manhattan radius on the same plane,
// for map displays.
func (h *Handler) GetRoomArea(w http.ResponseWriter, r *http.Request) {
	x, y, z, ok := h.parseCoordinates(w, r)
	if !ok {
		return
	}

	radius := 2
	if raw := r.URL.Query().Get("radius"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			h.renderError(w, r, http.StatusBadRequest, "invalid radius", err)
			return
		}
		radius = parsed
	}
	if radius > maxAreaRadius {
		h.renderError(w, r, http.StatusBadRequest, "radius too large", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	center := coord.Coordinate{X: x, Y: y, Z: z}
	rooms, err := h.rooms.GetRoomsInRadius(ctx, center, radius)
	if err != nil {
		logging.WithCoords(x, y, z).Error("failed to get room area", "error", err, "radius", radius)
		h.renderError(w, r, http.StatusInternalServerError, "failed to generate room area", err)
		return
	}

	views := make([]room.RoomView, 0, len(rooms))
	for _, generated := range rooms {
		views = append(views, room.NewView(generated))
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, map[string]interface{}{
		"center": center.String(),
		"radius": radius,
		"rooms":  views,
	})
}

// ListBiomes returns the biome definitions visible to clients.
func (h *Handler) ListBiomes(w http.ResponseWriter, r *http.Request) {
	type biomeSummary struct {
		ID               string   `json:"id"`
		Name             string   `json:"name"`
		CompatibleBiomes []string `json:"compatible_biomes"`
	}

	biomes := h.catalog.AllBiomes(r.Context())
	summaries := make([]biomeSummary, 0, len(biomes))
	for _, b := range biomes {
		summaries = append(summaries, biomeSummary{
			ID:               b.ID,
			Name:             b.Name,
			CompatibleBiomes: b.CompatibleBiomes,
		})
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, map[string]interface{}{"biomes": summaries})
}

func (h *Handler) parseCoordinates(w http.ResponseWriter, r *http.Request) (x, y, z int, ok bool) {
	var err error
	if x, err = strconv.Atoi(chi.URLParam(r, "x")); err != nil {
		h.renderError(w, r, http.StatusBadRequest, "invalid x coordinate", err)
		return 0, 0, 0, false
	}
	if y, err = strconv.Atoi(chi.URLParam(r, "y")); err != nil {
		h.renderError(w, r, http.StatusBadRequest, "invalid y coordinate", err)
		return 0, 0, 0, false
	}
	if z, err = strconv.Atoi(chi.URLParam(r, "z")); err != nil {
		h.renderError(w, r, http.StatusBadRequest, "invalid z coordinate", err)
		return 0, 0, 0, false
	}
	return x, y, z, true
}

func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, status int, message string, err error) {
	errorResponse := ErrorResponse{
		Error:   message,
		Code:    status,
		Message: message,
	}

	if err != nil {
		log.Error("API error", "error", err, "message", message, "status", status)
		// Don't expose internal errors to the client
		if status >= 500 {
			errorResponse.Error = "Internal server error"
		}
	}

	render.Status(r, status)
	render.JSON(w, r, errorResponse)
}

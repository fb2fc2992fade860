package server

import (
	"strings"

	"waveboard/internal/models"
	"waveboard/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ListTracks handles GET /api/tracks?search=&limit=&offset=
func (s *Server) ListTracks(c *fiber.Ctx) error {
	ctx := c.Context()
	page := parsePagination(c, 20)
	search := strings.TrimSpace(c.Query("search"))

	tracks, err := s.trackService.ListTracks(ctx, service.ListTracksInput{
		Search: search,
		Limit:  page.Limit,
		Offset: page.Offset,
	})
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(tracks)
}

// GetTrack handles GET /api/tracks/:id
func (s *Server) GetTrack(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	track, err := s.trackService.GetTrack(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(track)
}

// CreateTrack handles POST /api/tracks. Authentication is optional: anonymous
// submissions are stored without a submitter.
func (s *Server) CreateTrack(c *fiber.Ctx) error {
	var req struct {
		URL         string `json:"url"`
		Title       string `json:"title,omitempty"`
		Description string `json:"description,omitempty"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	track, err := s.trackService.CreateTrack(c.Context(), service.CreateTrackInput{
		URL:         req.URL,
		Title:       req.Title,
		Description: req.Description,
		ActorID:     s.actorID(c),
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(track)
}

// DeleteTrack handles DELETE /api/tracks/:id
func (s *Server) DeleteTrack(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	err = s.trackService.DeleteTrack(c.Context(), service.DeleteTrackInput{
		ActorID: s.actorID(c),
		TrackID: id,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"ok":      true,
		"message": "Track deleted",
	})
}

package server

import (
	"waveboard/internal/models"
	"waveboard/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ListComments handles GET /api/comments?track_id=
func (s *Server) ListComments(c *fiber.Ctx) error {
	trackID := c.QueryInt("track_id", 0)
	if trackID < 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid track_id"))
	}

	comments, err := s.commentService.ListComments(c.Context(), uint(trackID))
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(comments)
}

// CreateComment handles POST /api/tracks/:id/comments
func (s *Server) CreateComment(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Text string `json:"text"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comment, err := s.commentService.CreateComment(c.Context(), service.CreateCommentInput{
		ActorID: s.actorID(c),
		TrackID: id,
		Text:    req.Text,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(comment)
}

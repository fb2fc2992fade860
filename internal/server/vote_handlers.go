package server

import (
	"waveboard/internal/middleware"
	"waveboard/internal/models"
	"waveboard/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ListVotes handles GET /api/votes
func (s *Server) ListVotes(c *fiber.Ctx) error {
	votes, err := s.voteService.ListVotes(c.Context())
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(votes)
}

// CastVote handles POST /api/tracks/:id/vote
func (s *Server) CastVote(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Rating int `json:"rating"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	vote, err := s.voteService.CastVote(c.Context(), service.CastVoteInput{
		ActorID: s.actorID(c),
		TrackID: id,
		Rating:  req.Rating,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	middleware.VotesCast.Inc()

	return c.JSON(fiber.Map{
		"user_id":  vote.UserID,
		"track_id": vote.TrackID,
		"rating":   vote.Rating,
	})
}

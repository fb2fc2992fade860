package service

import (
	"context"
	"errors"
	"fmt"

	"waveboard/internal/models"
	"waveboard/internal/repository"

	"gorm.io/gorm"
)

type VoteService struct {
	voteRepo  repository.VoteRepository
	trackRepo repository.TrackRepository
}

type CastVoteInput struct {
	ActorID uint
	TrackID uint
	Rating  int
}

func NewVoteService(voteRepo repository.VoteRepository, trackRepo repository.TrackRepository) *VoteService {
	return &VoteService{
		voteRepo:  voteRepo,
		trackRepo: trackRepo,
	}
}

// CastVote records the actor's rating for a track, overwriting any rating the
// actor previously gave it. The stored state always reflects the latest call.
func (s *VoteService) CastVote(ctx context.Context, in CastVoteInput) (*models.Vote, error) {
	if err := requireActor(in.ActorID, "vote"); err != nil {
		return nil, err
	}

	if in.Rating < models.MinRating || in.Rating > models.MaxRating {
		return nil, models.NewValidationError(
			fmt.Sprintf("Rating must be between %d and %d", models.MinRating, models.MaxRating))
	}

	if _, err := s.trackRepo.GetByID(ctx, in.TrackID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Track", in.TrackID)
		}
		return nil, err
	}

	return s.voteRepo.Cast(ctx, in.ActorID, in.TrackID, in.Rating)
}

func (s *VoteService) ListVotes(ctx context.Context) ([]*models.Vote, error) {
	return s.voteRepo.List(ctx)
}

// VoteCount returns the number of votes referencing a track.
func (s *VoteService) VoteCount(ctx context.Context, trackID uint) (int64, error) {
	return s.voteRepo.CountByTrack(ctx, trackID)
}

// TopRating returns the track's modal rating, nil when it has no votes.
func (s *VoteService) TopRating(ctx context.Context, trackID uint) (*int, error) {
	return s.voteRepo.TopRatingByTrack(ctx, trackID)
}

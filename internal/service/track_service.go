package service

import (
	"context"
	"errors"
	"net/url"

	"waveboard/internal/models"
	"waveboard/internal/repository"

	"gorm.io/gorm"
)

type TrackService struct {
	trackRepo repository.TrackRepository
}

type CreateTrackInput struct {
	URL         string
	Title       string
	Description string
	// ActorID is zero for anonymous submissions.
	ActorID uint
}

type ListTracksInput struct {
	Search string
	Limit  int
	Offset int
}

type DeleteTrackInput struct {
	ActorID uint
	TrackID uint
}

func NewTrackService(trackRepo repository.TrackRepository) *TrackService {
	return &TrackService{trackRepo: trackRepo}
}

func (s *TrackService) CreateTrack(ctx context.Context, in CreateTrackInput) (*models.Track, error) {
	if err := validateTrackURL(in.URL); err != nil {
		return nil, err
	}

	track := &models.Track{
		URL:         in.URL,
		Title:       in.Title,
		Description: in.Description,
	}
	// Submission does not require authentication; anonymous tracks have no submitter.
	if in.ActorID != 0 {
		actorID := in.ActorID
		track.SubmittedByID = &actorID
	}

	if err := s.trackRepo.Create(ctx, track); err != nil {
		return nil, err
	}

	return s.GetTrack(ctx, track.ID)
}

func (s *TrackService) GetTrack(ctx context.Context, id uint) (*models.Track, error) {
	track, err := s.trackRepo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.NewNotFoundError("Track", id)
	}
	if err != nil {
		return nil, err
	}
	return track, nil
}

func (s *TrackService) ListTracks(ctx context.Context, in ListTracksInput) ([]*models.Track, error) {
	return s.trackRepo.List(ctx, in.Search, in.Limit, in.Offset)
}

// DeleteTrack removes a track and everything hanging off it. Only the
// original submitter may delete.
func (s *TrackService) DeleteTrack(ctx context.Context, in DeleteTrackInput) error {
	if err := requireActor(in.ActorID, "delete a track"); err != nil {
		return err
	}

	track, err := s.GetTrack(ctx, in.TrackID)
	if err != nil {
		return err
	}

	if err := requireSubmitter(track, in.ActorID); err != nil {
		return err
	}

	return s.trackRepo.Delete(ctx, in.TrackID)
}

// validateTrackURL accepts only absolute URLs with a scheme and host.
func validateTrackURL(raw string) error {
	if raw == "" {
		return models.NewValidationError("URL is required")
	}
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return models.NewValidationError("URL must be a valid absolute URL")
	}
	return nil
}

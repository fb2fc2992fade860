package service

import (
	"context"
	"errors"

	"waveboard/internal/models"
	"waveboard/internal/repository"

	"gorm.io/gorm"
)

type CommentService struct {
	commentRepo repository.CommentRepository
	trackRepo   repository.TrackRepository
}

type CreateCommentInput struct {
	ActorID uint
	TrackID uint
	Text    string
}

func NewCommentService(commentRepo repository.CommentRepository, trackRepo repository.TrackRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		trackRepo:   trackRepo,
	}
}

func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	if err := requireActor(in.ActorID, "comment"); err != nil {
		return nil, err
	}

	if _, err := s.trackRepo.GetByID(ctx, in.TrackID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Track", in.TrackID)
		}
		return nil, err
	}

	const maxCommentLen = 10000

	if in.Text == "" {
		return nil, models.NewValidationError("Text is required")
	}
	if len(in.Text) > maxCommentLen {
		return nil, models.NewValidationError("Comment too long (max 10000 characters)")
	}

	comment := &models.Comment{
		UserID:  in.ActorID,
		TrackID: in.TrackID,
		Text:    in.Text,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return s.commentRepo.GetByID(ctx, comment.ID)
}

// ListComments returns every comment, or only the given track's when trackID
// is non-zero.
func (s *CommentService) ListComments(ctx context.Context, trackID uint) ([]*models.Comment, error) {
	return s.commentRepo.List(ctx, trackID)
}

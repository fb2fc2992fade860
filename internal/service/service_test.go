package service

import (
	"context"
	"testing"

	"waveboard/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Repository stubs with overridable behavior per test.

type stubTrackRepo struct {
	createFn  func(ctx context.Context, track *models.Track) error
	getByIDFn func(ctx context.Context, id uint) (*models.Track, error)
	listFn    func(ctx context.Context, search string, limit, offset int) ([]*models.Track, error)
	deleteFn  func(ctx context.Context, id uint) error
}

func (s *stubTrackRepo) Create(ctx context.Context, track *models.Track) error {
	return s.createFn(ctx, track)
}

func (s *stubTrackRepo) GetByID(ctx context.Context, id uint) (*models.Track, error) {
	return s.getByIDFn(ctx, id)
}

func (s *stubTrackRepo) List(ctx context.Context, search string, limit, offset int) ([]*models.Track, error) {
	return s.listFn(ctx, search, limit, offset)
}

func (s *stubTrackRepo) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

type stubVoteRepo struct {
	castFn      func(ctx context.Context, userID, trackID uint, rating int) (*models.Vote, error)
	listFn      func(ctx context.Context) ([]*models.Vote, error)
	countFn     func(ctx context.Context, trackID uint) (int64, error)
	topRatingFn func(ctx context.Context, trackID uint) (*int, error)
}

func (s *stubVoteRepo) Cast(ctx context.Context, userID, trackID uint, rating int) (*models.Vote, error) {
	return s.castFn(ctx, userID, trackID, rating)
}

func (s *stubVoteRepo) List(ctx context.Context) ([]*models.Vote, error) {
	return s.listFn(ctx)
}

func (s *stubVoteRepo) CountByTrack(ctx context.Context, trackID uint) (int64, error) {
	return s.countFn(ctx, trackID)
}

func (s *stubVoteRepo) TopRatingByTrack(ctx context.Context, trackID uint) (*int, error) {
	return s.topRatingFn(ctx, trackID)
}

type stubCommentRepo struct {
	createFn  func(ctx context.Context, comment *models.Comment) error
	getByIDFn func(ctx context.Context, id uint) (*models.Comment, error)
	listFn    func(ctx context.Context, trackID uint) ([]*models.Comment, error)
}

func (s *stubCommentRepo) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}

func (s *stubCommentRepo) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}

func (s *stubCommentRepo) List(ctx context.Context, trackID uint) ([]*models.Comment, error) {
	return s.listFn(ctx, trackID)
}

// assertAppErrorCode verifies the error carries the expected taxonomy code.
func assertAppErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, code, appErr.Code)
}

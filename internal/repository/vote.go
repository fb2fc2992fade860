package repository

import (
	"context"

	"waveboard/internal/cache"
	"waveboard/internal/models"

	"gorm.io/gorm"
)

// VoteRepository defines the interface for vote data operations
type VoteRepository interface {
	Cast(ctx context.Context, userID, trackID uint, rating int) (*models.Vote, error)
	List(ctx context.Context) ([]*models.Vote, error)
	CountByTrack(ctx context.Context, trackID uint) (int64, error)
	TopRatingByTrack(ctx context.Context, trackID uint) (*int, error)
}

type voteRepository struct {
	db *gorm.DB
}

// NewVoteRepository creates a new vote repository
func NewVoteRepository(db *gorm.DB) VoteRepository {
	return &voteRepository{db: db}
}

// Cast records the user's rating for a track. A second cast by the same user
// on the same track overwrites the stored rating in place.
// INSERT ... ON CONFLICT DO UPDATE rides on the (user_id, track_id) unique
// index, so concurrent casts cannot create duplicate rows.
func (r *voteRepository) Cast(ctx context.Context, userID, trackID uint, rating int) (*models.Vote, error) {
	result := r.db.WithContext(ctx).Exec(
		`INSERT INTO votes (user_id, track_id, rating, created_at)
		 VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT (user_id, track_id) DO UPDATE SET rating = excluded.rating`,
		userID, trackID, rating,
	)
	if result.Error != nil {
		return nil, result.Error
	}

	cache.InvalidateTrack(ctx, trackID)

	var vote models.Vote
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND track_id = ?", userID, trackID).
		First(&vote).Error
	if err != nil {
		return nil, err
	}
	return &vote, nil
}

func (r *voteRepository) List(ctx context.Context) ([]*models.Vote, error) {
	var votes []*models.Vote
	err := r.db.WithContext(ctx).
		Order("created_at ASC, id ASC").
		Find(&votes).Error
	return votes, err
}

func (r *voteRepository) CountByTrack(ctx context.Context, trackID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Vote{}).
		Where("track_id = ?", trackID).
		Count(&count).Error
	return count, err
}

// TopRatingByTrack returns the modal rating for a track: the rating with the
// most votes, count ties resolved toward the higher rating. Returns nil when
// the track has no votes.
func (r *voteRepository) TopRatingByTrack(ctx context.Context, trackID uint) (*int, error) {
	var ratings []int
	err := r.db.WithContext(ctx).
		Model(&models.Vote{}).
		Select("rating").
		Where("track_id = ?", trackID).
		Group("rating").
		Order("COUNT(*) DESC, rating DESC").
		Limit(1).
		Pluck("rating", &ratings).Error
	if err != nil {
		return nil, err
	}
	if len(ratings) == 0 {
		return nil, nil
	}
	return &ratings[0], nil
}

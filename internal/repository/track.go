package repository

import (
	"context"
	"strings"

	"waveboard/internal/cache"
	"waveboard/internal/models"

	"gorm.io/gorm"
)

// TrackRepository defines the interface for track data operations
type TrackRepository interface {
	Create(ctx context.Context, track *models.Track) error
	GetByID(ctx context.Context, id uint) (*models.Track, error)
	List(ctx context.Context, search string, limit, offset int) ([]*models.Track, error)
	Delete(ctx context.Context, id uint) error
}

// trackRepository implements TrackRepository
type trackRepository struct {
	db *gorm.DB
}

// NewTrackRepository creates a new track repository
func NewTrackRepository(db *gorm.DB) TrackRepository {
	return &trackRepository{db: db}
}

func (r *trackRepository) Create(ctx context.Context, track *models.Track) error {
	return r.db.WithContext(ctx).Create(track).Error
}

func (r *trackRepository) GetByID(ctx context.Context, id uint) (*models.Track, error) {
	var track models.Track
	key := cache.TrackKey(id)

	err := cache.Aside(ctx, key, &track, cache.TrackTTL, func() error {
		return r.applyTrackDetails(r.db.WithContext(ctx)).
			Preload("SubmittedBy").
			First(&track, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &track, nil
}

// List returns tracks in submission order (created_at, then id, so pagination
// stays reproducible). When search is non-empty only tracks whose url or
// description contains it, case-insensitively, are returned; offset drops
// leading matches and limit caps the result.
func (r *trackRepository) List(ctx context.Context, search string, limit, offset int) ([]*models.Track, error) {
	var tracks []*models.Track
	q := r.applyTrackDetails(r.db.WithContext(ctx)).
		Preload("SubmittedBy")

	if search != "" {
		// LOWER + LIKE rather than ILIKE so the same query runs on the
		// sqlite driver used in tests.
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(tracks.url) LIKE ? OR LOWER(tracks.description) LIKE ?", like, like)
	}

	q = q.Order("tracks.created_at ASC, tracks.id ASC")
	if offset > 0 {
		q = q.Offset(offset)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}

	err := q.Find(&tracks).Error
	return tracks, err
}

// applyTrackDetails adds subqueries computing the derived fields in the same
// query: vote_count and top_rating (the most frequent rating, count ties
// resolved toward the higher rating; NULL when the track has no votes).
func (r *trackRepository) applyTrackDetails(db *gorm.DB) *gorm.DB {
	return db.Select("tracks.*, " +
		"(SELECT COUNT(*) FROM votes WHERE votes.track_id = tracks.id) AS vote_count, " +
		"(SELECT v.rating FROM votes v WHERE v.track_id = tracks.id " +
		"GROUP BY v.rating ORDER BY COUNT(*) DESC, v.rating DESC LIMIT 1) AS top_rating")
}

// Delete removes the track and its dependent votes and comments in one
// transaction. The FK constraints also cascade on engines that enforce them;
// doing it explicitly keeps the behavior identical across drivers.
func (r *trackRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("track_id = ?", id).Delete(&models.Vote{}).Error; err != nil {
			return err
		}
		if err := tx.Where("track_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Track{}, id).Error
	})
	if err != nil {
		return err
	}
	cache.InvalidateTrack(ctx, id)
	return nil
}

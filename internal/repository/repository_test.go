package repository

import (
	"context"
	"testing"
	"time"

	"waveboard/internal/cache"
	"waveboard/internal/database"
	"waveboard/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB opens an in-memory sqlite database with the full schema.
// A single connection keeps every query on the same in-memory instance.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	cache.SetClient(nil)
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "hashed",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestTrack(t *testing.T, db *gorm.DB, url, description string, submitter *models.User) *models.Track {
	t.Helper()
	track := &models.Track{URL: url, Description: description}
	if submitter != nil {
		track.SubmittedByID = &submitter.ID
	}
	require.NoError(t, db.Create(track).Error)
	return track
}

func TestVoteRepository_CastUpsert(t *testing.T) {
	db := setupTestDB(t)
	repo := NewVoteRepository(db)
	ctx := context.Background()

	user := createTestUser(t, db, "voter")
	track := createTestTrack(t, db, "https://example.com/a", "", nil)

	vote, err := repo.Cast(ctx, user.ID, track.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, vote.Rating)

	// Voting again on the same track overwrites in place.
	vote, err = repo.Cast(ctx, user.ID, track.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, vote.Rating)

	count, err := repo.CountByTrack(ctx, track.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	// A different user's vote is a separate row.
	other := createTestUser(t, db, "othervoter")
	_, err = repo.Cast(ctx, other.ID, track.ID, 2)
	require.NoError(t, err)

	count, err = repo.CountByTrack(ctx, track.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestVoteRepository_TopRatingByTrack(t *testing.T) {
	db := setupTestDB(t)
	repo := NewVoteRepository(db)
	ctx := context.Background()

	track := createTestTrack(t, db, "https://example.com/b", "", nil)

	t.Run("No votes yields nil", func(t *testing.T) {
		top, err := repo.TopRatingByTrack(ctx, track.ID)
		require.NoError(t, err)
		assert.Nil(t, top)
	})

	// Ratings 5,5,3,3,1: two-way count tie between 5 and 3, the higher wins.
	for i, rating := range []int{5, 5, 3, 3, 1} {
		user := createTestUser(t, db, "rater"+string(rune('a'+i)))
		_, err := repo.Cast(ctx, user.ID, track.ID, rating)
		require.NoError(t, err)
	}

	t.Run("Count ties resolve toward the higher rating", func(t *testing.T) {
		top, err := repo.TopRatingByTrack(ctx, track.ID)
		require.NoError(t, err)
		require.NotNil(t, top)
		assert.Equal(t, 5, *top)
	})

	t.Run("Clear majority wins", func(t *testing.T) {
		user := createTestUser(t, db, "tiebreaker")
		_, err := repo.Cast(ctx, user.ID, track.ID, 3)
		require.NoError(t, err)

		top, err := repo.TopRatingByTrack(ctx, track.ID)
		require.NoError(t, err)
		require.NotNil(t, top)
		assert.Equal(t, 3, *top)
	})
}

func TestVoteRepository_List(t *testing.T) {
	db := setupTestDB(t)
	repo := NewVoteRepository(db)
	ctx := context.Background()

	user := createTestUser(t, db, "lister")
	first := createTestTrack(t, db, "https://example.com/1", "", nil)
	second := createTestTrack(t, db, "https://example.com/2", "", nil)

	_, err := repo.Cast(ctx, user.ID, first.ID, 4)
	require.NoError(t, err)
	_, err = repo.Cast(ctx, user.ID, second.ID, 2)
	require.NoError(t, err)

	votes, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, votes, 2)
	assert.Equal(t, first.ID, votes[0].TrackID)
	assert.Equal(t, second.ID, votes[1].TrackID)
}

func TestTrackRepository_GetByID(t *testing.T) {
	db := setupTestDB(t)
	trackRepo := NewTrackRepository(db)
	voteRepo := NewVoteRepository(db)
	ctx := context.Background()

	submitter := createTestUser(t, db, "submitter")
	track := createTestTrack(t, db, "https://example.com/mix", "late night mix", submitter)

	for i, rating := range []int{4, 4, 2} {
		user := createTestUser(t, db, "fan"+string(rune('a'+i)))
		_, err := voteRepo.Cast(ctx, user.ID, track.ID, rating)
		require.NoError(t, err)
	}

	got, err := trackRepo.GetByID(ctx, track.ID)
	require.NoError(t, err)
	assert.Equal(t, track.URL, got.URL)
	assert.Equal(t, 3, got.VoteCount)
	require.NotNil(t, got.TopRating)
	assert.Equal(t, 4, *got.TopRating)
	require.NotNil(t, got.SubmittedBy)
	assert.Equal(t, "submitter", got.SubmittedBy.Username)

	t.Run("Missing track", func(t *testing.T) {
		_, err := trackRepo.GetByID(ctx, 9999)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}

func TestTrackRepository_GetByID_NoVotes(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTrackRepository(db)
	ctx := context.Background()

	track := createTestTrack(t, db, "https://example.com/quiet", "", nil)

	got, err := repo.GetByID(ctx, track.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.VoteCount)
	assert.Nil(t, got.TopRating)
	assert.Nil(t, got.SubmittedBy)
}

func TestTrackRepository_List(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTrackRepository(db)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	urls := []string{
		"https://example.com/AMBIENT-drift",
		"https://example.com/house-set",
		"https://example.com/piano-hour",
		"https://example.com/drum-circle",
		"https://example.com/noise-wall",
	}
	descriptions := []string{
		"slow pads",
		"deep Ambient textures",
		"solo keys",
		"percussion jam",
		"harsh cuts",
	}
	for i := range urls {
		track := &models.Track{
			URL:         urls[i],
			Description: descriptions[i],
			CreatedAt:   base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, db.Create(track).Error)
	}

	t.Run("Returns all in submission order", func(t *testing.T) {
		tracks, err := repo.List(ctx, "", 0, 0)
		require.NoError(t, err)
		require.Len(t, tracks, 5)
		for i := range urls {
			assert.Equal(t, urls[i], tracks[i].URL)
		}
	})

	t.Run("Search matches url and description case-insensitively", func(t *testing.T) {
		tracks, err := repo.List(ctx, "ambient", 0, 0)
		require.NoError(t, err)
		require.Len(t, tracks, 2)
		assert.Equal(t, urls[0], tracks[0].URL)
		assert.Equal(t, urls[1], tracks[1].URL)
	})

	t.Run("Search with no matches", func(t *testing.T) {
		tracks, err := repo.List(ctx, "vaporwave", 0, 0)
		require.NoError(t, err)
		assert.Empty(t, tracks)
	})

	t.Run("Offset and limit window", func(t *testing.T) {
		tracks, err := repo.List(ctx, "", 2, 1)
		require.NoError(t, err)
		require.Len(t, tracks, 2)
		assert.Equal(t, urls[1], tracks[0].URL)
		assert.Equal(t, urls[2], tracks[1].URL)
	})

	t.Run("Offset past the end", func(t *testing.T) {
		tracks, err := repo.List(ctx, "", 10, 100)
		require.NoError(t, err)
		assert.Empty(t, tracks)
	})
}

func TestTrackRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	trackRepo := NewTrackRepository(db)
	voteRepo := NewVoteRepository(db)
	commentRepo := NewCommentRepository(db)
	ctx := context.Background()

	user := createTestUser(t, db, "owner")
	track := createTestTrack(t, db, "https://example.com/gone", "", user)
	keep := createTestTrack(t, db, "https://example.com/stays", "", user)

	_, err := voteRepo.Cast(ctx, user.ID, track.ID, 4)
	require.NoError(t, err)
	_, err = voteRepo.Cast(ctx, user.ID, keep.ID, 4)
	require.NoError(t, err)
	require.NoError(t, commentRepo.Create(ctx, &models.Comment{
		UserID: user.ID, TrackID: track.ID, Text: "great",
	}))

	require.NoError(t, trackRepo.Delete(ctx, track.ID))

	_, err = trackRepo.GetByID(ctx, track.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// Dependent rows are gone with the track.
	count, err := voteRepo.CountByTrack(ctx, track.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	comments, err := commentRepo.List(ctx, track.ID)
	require.NoError(t, err)
	assert.Empty(t, comments)

	// Unrelated rows survive.
	count, err = voteRepo.CountByTrack(ctx, keep.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestTrackRepository_CacheAside(t *testing.T) {
	db := setupTestDB(t)
	mr := miniredis.RunT(t)
	cache.SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { cache.SetClient(nil) })

	trackRepo := NewTrackRepository(db)
	voteRepo := NewVoteRepository(db)
	ctx := context.Background()

	user := createTestUser(t, db, "cacher")
	track := createTestTrack(t, db, "https://example.com/cached", "", user)

	got, err := trackRepo.GetByID(ctx, track.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.VoteCount)
	assert.True(t, mr.Exists(cache.TrackKey(track.ID)))

	// Casting a vote drops the cached detail view, so the next read sees it.
	_, err = voteRepo.Cast(ctx, user.ID, track.ID, 5)
	require.NoError(t, err)
	assert.False(t, mr.Exists(cache.TrackKey(track.ID)))

	got, err = trackRepo.GetByID(ctx, track.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.VoteCount)
}

func TestUserRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &models.User{Username: "newuser", Email: "new@example.com", Password: "hashed"}
	require.NoError(t, repo.Create(ctx, user))
	require.NotZero(t, user.ID)

	got, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "newuser", got.Username)

	byEmail, err := repo.GetByEmail(ctx, "new@example.com")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, user.ID, byEmail.ID)

	// Lookups for unknown users return nil without an error.
	missing, err := repo.GetByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, missing)

	missing, err = repo.GetByUsername(ctx, "nobody")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestCommentRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	user := createTestUser(t, db, "commenter")
	first := createTestTrack(t, db, "https://example.com/x", "", nil)
	second := createTestTrack(t, db, "https://example.com/y", "", nil)

	for _, c := range []*models.Comment{
		{UserID: user.ID, TrackID: first.ID, Text: "first comment"},
		{UserID: user.ID, TrackID: first.ID, Text: "second comment"},
		{UserID: user.ID, TrackID: second.ID, Text: "other track"},
	} {
		require.NoError(t, repo.Create(ctx, c))
	}

	t.Run("List by track in insertion order", func(t *testing.T) {
		comments, err := repo.List(ctx, first.ID)
		require.NoError(t, err)
		require.Len(t, comments, 2)
		assert.Equal(t, "first comment", comments[0].Text)
		assert.Equal(t, "second comment", comments[1].Text)
		assert.Equal(t, "commenter", comments[0].User.Username)
	})

	t.Run("List all", func(t *testing.T) {
		comments, err := repo.List(ctx, 0)
		require.NoError(t, err)
		assert.Len(t, comments, 3)
	})

	t.Run("GetByID preloads the author", func(t *testing.T) {
		comments, err := repo.List(ctx, first.ID)
		require.NoError(t, err)
		got, err := repo.GetByID(ctx, comments[0].ID)
		require.NoError(t, err)
		assert.Equal(t, "commenter", got.User.Username)
	})
}

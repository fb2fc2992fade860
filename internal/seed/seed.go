// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development only.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"waveboard/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seeder builds domain entities and persists them to the database.
type Seeder struct {
	db  *gorm.DB
	rnd *rand.Rand
}

// NewSeeder creates a new Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB) *Seeder {
	gofakeit.Seed(time.Now().UnixNano())
	return &Seeder{
		db:  db,
		rnd: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// ClearAll removes all seeded data. Development only.
func (s *Seeder) ClearAll() error {
	for _, table := range []string{"votes", "comments", "tracks", "users"} {
		if err := s.db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	log.Println("Database cleared")
	return nil
}

// Run populates the database with users, tracks, votes, and comments.
func (s *Seeder) Run(numUsers, numTracks int) error {
	users, err := s.seedUsers(numUsers)
	if err != nil {
		return err
	}

	tracks, err := s.seedTracks(numTracks, users)
	if err != nil {
		return err
	}

	if err := s.seedVotes(users, tracks); err != nil {
		return err
	}
	return s.seedComments(users, tracks)
}

func (s *Seeder) seedUsers(n int) ([]*models.User, error) {
	// One shared hash keeps seeding fast; every demo account logs in with it.
	hashed, err := bcrypt.GenerateFromPassword([]byte("Waveboard-Demo-1234"), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}

	users := make([]*models.User, 0, n)
	for i := 0; i < n; i++ {
		user := &models.User{
			Username: fmt.Sprintf("%s_%d", gofakeit.Username(), i),
			Email:    fmt.Sprintf("%d_%s", i, gofakeit.Email()),
			Password: string(hashed),
		}
		if err := s.db.Create(user).Error; err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
		users = append(users, user)
	}
	log.Printf("Seeded %d users", len(users))
	return users, nil
}

func (s *Seeder) seedTracks(n int, users []*models.User) ([]*models.Track, error) {
	tracks := make([]*models.Track, 0, n)
	for i := 0; i < n; i++ {
		track := &models.Track{
			URL:         gofakeit.URL(),
			Title:       gofakeit.Sentence(4),
			Description: gofakeit.Paragraph(1, 2, 8, " "),
			// realistic created_at spread over the last 90 days
			CreatedAt: time.Now().Add(-time.Duration(s.rnd.Intn(90*24)) * time.Hour),
		}
		// Roughly one in five tracks is an anonymous submission.
		if s.rnd.Intn(5) != 0 {
			submitter := users[s.rnd.Intn(len(users))]
			track.SubmittedByID = &submitter.ID
		}
		if err := s.db.Create(track).Error; err != nil {
			return nil, fmt.Errorf("failed to create track: %w", err)
		}
		tracks = append(tracks, track)
	}
	log.Printf("Seeded %d tracks", len(tracks))
	return tracks, nil
}

func (s *Seeder) seedVotes(users []*models.User, tracks []*models.Track) error {
	count := 0
	for _, track := range tracks {
		for _, user := range users {
			// Sparse voting; the unique (user, track) index holds because
			// each pair is visited once.
			if s.rnd.Intn(3) != 0 {
				continue
			}
			vote := &models.Vote{
				UserID:  user.ID,
				TrackID: track.ID,
				Rating:  models.MinRating + s.rnd.Intn(models.MaxRating-models.MinRating+1),
			}
			if err := s.db.Create(vote).Error; err != nil {
				return fmt.Errorf("failed to create vote: %w", err)
			}
			count++
		}
	}
	log.Printf("Seeded %d votes", count)
	return nil
}

func (s *Seeder) seedComments(users []*models.User, tracks []*models.Track) error {
	count := 0
	for _, track := range tracks {
		n := s.rnd.Intn(4)
		for i := 0; i < n; i++ {
			comment := &models.Comment{
				UserID:  users[s.rnd.Intn(len(users))].ID,
				TrackID: track.ID,
				Text:    gofakeit.Sentence(10),
			}
			if err := s.db.Create(comment).Error; err != nil {
				return fmt.Errorf("failed to create comment: %w", err)
			}
			count++
		}
	}
	log.Printf("Seeded %d comments", count)
	return nil
}

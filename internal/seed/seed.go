package seed

import (
	"context"
	"fmt"

	"dwitter/internal/models"
	"dwitter/internal/observability"

	"gorm.io/gorm"
)

// Seeder fills a database with generated users, dweets and comments.
type Seeder struct {
	db      *gorm.DB
	factory *Factory
}

// NewSeeder returns a Seeder backed by factory.
func NewSeeder(db *gorm.DB, factory *Factory) *Seeder {
	return &Seeder{db: db, factory: factory}
}

// Options sizes a generated data set.
type Options struct {
	Users            int
	DweetsPerUser    int
	CommentsPerDweet int
}

// ClearAll removes every comment, dweet and user.
func (s *Seeder) ClearAll(ctx context.Context) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, model := range []any{&models.Comment{}, &models.Dweet{}, &models.User{}} {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
				return fmt.Errorf("clear %T: %w", model, err)
			}
		}
		return nil
	})
}

// Generate creates opts.Users users, each with dweets commented on by random users.
func (s *Seeder) Generate(ctx context.Context, opts Options) ([]*models.User, error) {
	users := make([]*models.User, 0, opts.Users)
	for i := 0; i < opts.Users; i++ {
		u, err := s.factory.CreateRandomUser(ctx)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	if len(users) == 0 {
		return users, nil
	}

	var dweets, comments int
	for _, author := range users {
		for i := 0; i < opts.DweetsPerUser; i++ {
			d, err := s.factory.CreateDweet(ctx, author, "")
			if err != nil {
				return nil, err
			}
			dweets++
			for j := 0; j < opts.CommentsPerDweet; j++ {
				commenter := users[s.factory.faker.Number(0, len(users)-1)]
				if _, err := s.factory.CreateComment(ctx, commenter, d, ""); err != nil {
					return nil, err
				}
				comments++
			}
		}
	}

	observability.Logger.InfoContext(ctx, "seed data generated",
		"users", len(users), "dweets", dweets, "comments", comments)
	return users, nil
}

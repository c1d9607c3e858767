// Package seed creates demo and test data. It is intended for development
// and testing only.
package seed

import (
	"context"
	"fmt"
	"time"

	"dwitter/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DefaultPassword is given to generated users.
const DefaultPassword = "password123"

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db    *gorm.DB
	faker *gofakeit.Faker
	// bcrypt cost; tests lower it
	cost int
}

// NewFactory creates a Factory. A non-zero seed makes generated content repeatable.
func NewFactory(db *gorm.DB, seed int64) *Factory {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Factory{db: db, faker: gofakeit.New(seed), cost: bcrypt.DefaultCost}
}

// WithCost overrides the bcrypt cost used for passwords.
func (f *Factory) WithCost(cost int) *Factory {
	f.cost = cost
	return f
}

// CreateUser persists a user with the given credentials. An empty email is generated.
func (f *Factory) CreateUser(ctx context.Context, username, email, password string, moderator bool) (*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), f.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password for %s: %w", username, err)
	}
	if email == "" {
		email = fmt.Sprintf("%s@%s", username, f.faker.DomainName())
	}

	user := &models.User{
		Username:    username,
		Email:       email,
		Password:    string(hashed),
		IsModerator: moderator,
	}
	if err := f.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, fmt.Errorf("create user %s: %w", username, err)
	}
	return user, nil
}

// CreateRandomUser persists a user with a generated username and DefaultPassword.
func (f *Factory) CreateRandomUser(ctx context.Context) (*models.User, error) {
	username := fmt.Sprintf("%s%d", f.faker.Username(), f.faker.Number(100, 9999))
	return f.CreateUser(ctx, username, "", DefaultPassword, false)
}

// BuildDweet returns an unsaved dweet by author with generated code.
func (f *Factory) BuildDweet(author *models.User) *models.Dweet {
	return &models.Dweet{
		Code:     f.dweetCode(),
		Posted:   f.faker.DateRange(time.Now().AddDate(0, -3, 0), time.Now()).UTC(),
		AuthorID: author.ID,
	}
}

// CreateDweet persists a dweet. Empty code is generated.
func (f *Factory) CreateDweet(ctx context.Context, author *models.User, code string) (*models.Dweet, error) {
	dweet := f.BuildDweet(author)
	if code != "" {
		dweet.Code = code
	}
	if err := f.db.WithContext(ctx).Omit("Author").Create(dweet).Error; err != nil {
		return nil, fmt.Errorf("create dweet: %w", err)
	}
	return dweet, nil
}

// CreateComment persists a comment on dweet. Empty text is generated.
func (f *Factory) CreateComment(ctx context.Context, author *models.User, dweet *models.Dweet, text string) (*models.Comment, error) {
	if text == "" {
		text = f.faker.Sentence(f.faker.Number(3, 12))
	}
	comment := &models.Comment{
		Text:      text,
		Posted:    dweet.Posted.Add(time.Duration(f.faker.Number(1, 600)) * time.Minute),
		ReplyToID: dweet.ID,
		AuthorID:  author.ID,
	}
	if err := f.db.WithContext(ctx).Omit("Author", "ReplyTo").Create(comment).Error; err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	return comment, nil
}

// dweetCode produces a short canvas snippet in the style of real dweets.
func (f *Factory) dweetCode() string {
	return fmt.Sprintf("for(i=%d;i--;)x.fillRect(%d+i*S(t),%d+i*C(t),%d,%d)",
		f.faker.Number(9, 300),
		f.faker.Number(0, 1920),
		f.faker.Number(0, 1080),
		f.faker.Number(1, 50),
		f.faker.Number(1, 50),
	)
}

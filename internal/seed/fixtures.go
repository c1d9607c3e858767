package seed

import (
	"context"
	"fmt"
	"os"

	"dwitter/internal/models"

	"gopkg.in/yaml.v3"
)

// Fixture is a hand-written data set. Dweets and comments refer to users by
// username and comments refer to dweets by key.
type Fixture struct {
	Users []struct {
		Username  string `yaml:"username"`
		Email     string `yaml:"email"`
		Password  string `yaml:"password"`
		Moderator bool   `yaml:"moderator"`
	} `yaml:"users"`
	Dweets []struct {
		Key    string `yaml:"key"`
		Author string `yaml:"author"`
		Code   string `yaml:"code"`
	} `yaml:"dweets"`
	Comments []struct {
		Dweet  string `yaml:"dweet"`
		Author string `yaml:"author"`
		Text   string `yaml:"text"`
	} `yaml:"comments"`
}

// Loaded holds the records created from a Fixture.
type Loaded struct {
	Users  map[string]*models.User
	Dweets map[string]*models.Dweet
}

// ParseFixture decodes YAML fixture data.
func ParseFixture(data []byte) (*Fixture, error) {
	var fx Fixture
	if err := yaml.Unmarshal(data, &fx); err != nil {
		return nil, fmt.Errorf("parse fixture: %w", err)
	}
	return &fx, nil
}

// LoadFixtureFile reads and decodes a YAML fixture file.
func LoadFixtureFile(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}
	return ParseFixture(data)
}

// ApplyFixture persists fx. Missing passwords default to DefaultPassword and
// missing code or text is generated.
func (f *Factory) ApplyFixture(ctx context.Context, fx *Fixture) (*Loaded, error) {
	loaded := &Loaded{
		Users:  make(map[string]*models.User, len(fx.Users)),
		Dweets: make(map[string]*models.Dweet, len(fx.Dweets)),
	}

	for _, u := range fx.Users {
		password := u.Password
		if password == "" {
			password = DefaultPassword
		}
		user, err := f.CreateUser(ctx, u.Username, u.Email, password, u.Moderator)
		if err != nil {
			return nil, err
		}
		loaded.Users[u.Username] = user
	}

	for i, d := range fx.Dweets {
		author, ok := loaded.Users[d.Author]
		if !ok {
			return nil, fmt.Errorf("dweet %d: unknown author %q", i, d.Author)
		}
		dweet, err := f.CreateDweet(ctx, author, d.Code)
		if err != nil {
			return nil, err
		}
		key := d.Key
		if key == "" {
			key = fmt.Sprintf("dweet%d", i+1)
		}
		loaded.Dweets[key] = dweet
	}

	for i, c := range fx.Comments {
		author, ok := loaded.Users[c.Author]
		if !ok {
			return nil, fmt.Errorf("comment %d: unknown author %q", i, c.Author)
		}
		dweet, ok := loaded.Dweets[c.Dweet]
		if !ok {
			return nil, fmt.Errorf("comment %d: unknown dweet %q", i, c.Dweet)
		}
		if _, err := f.CreateComment(ctx, author, dweet, c.Text); err != nil {
			return nil, err
		}
	}

	return loaded, nil
}

package service

import (
	"context"
	"testing"
	"time"

	"dwitter/internal/models"
	"dwitter/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dweetRepoStub is a stub for repository.DweetRepository.
type dweetRepoStub struct {
	createFn  func(context.Context, *models.Dweet) error
	getByIDFn func(context.Context, uint) (*models.Dweet, error)
	listFn    func(context.Context, int, int) ([]*models.Dweet, error)
	countFn   func(context.Context) (int64, error)
	deleteFn  func(context.Context, uint) error
}

func (s *dweetRepoStub) Create(ctx context.Context, d *models.Dweet) error { return s.createFn(ctx, d) }
func (s *dweetRepoStub) GetByID(ctx context.Context, id uint) (*models.Dweet, error) {
	return s.getByIDFn(ctx, id)
}
func (s *dweetRepoStub) List(ctx context.Context, limit, offset int) ([]*models.Dweet, error) {
	return s.listFn(ctx, limit, offset)
}
func (s *dweetRepoStub) Count(ctx context.Context) (int64, error) { return s.countFn(ctx) }
func (s *dweetRepoStub) Delete(ctx context.Context, id uint) error { return s.deleteFn(ctx, id) }

func noopDweetRepo() *dweetRepoStub {
	return &dweetRepoStub{
		createFn:  func(context.Context, *models.Dweet) error { return nil },
		getByIDFn: func(_ context.Context, id uint) (*models.Dweet, error) { return &models.Dweet{ID: id}, nil },
		listFn:    func(context.Context, int, int) ([]*models.Dweet, error) { return nil, nil },
		countFn:   func(context.Context) (int64, error) { return 0, nil },
		deleteFn:  func(context.Context, uint) error { return nil },
	}
}

// commentRepoStub is a stub for repository.CommentRepository.
type commentRepoStub struct {
	getByIDFn func(context.Context, uint) (*models.Comment, error)
	listFn    func(context.Context, repository.CommentFilter) ([]*models.Comment, error)
	deleteFn  func(context.Context, uint) error
}

func (s *commentRepoStub) Create(context.Context, *models.Comment) error { return nil }
func (s *commentRepoStub) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) List(ctx context.Context, f repository.CommentFilter) ([]*models.Comment, error) {
	return s.listFn(ctx, f)
}
func (s *commentRepoStub) Count(context.Context) (int64, error)      { return 0, nil }
func (s *commentRepoStub) Delete(ctx context.Context, id uint) error { return s.deleteFn(ctx, id) }

// userRepoStub is an in-memory repository.UserRepository.
type userRepoStub struct {
	users map[uint]*models.User
	err   error
}

func (s *userRepoStub) Create(_ context.Context, u *models.User) error {
	u.ID = uint(len(s.users) + 1)
	s.users[u.ID] = u
	return nil
}
func (s *userRepoStub) GetByID(_ context.Context, id uint) (*models.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	u, ok := s.users[id]
	if !ok {
		return nil, models.NewNotFoundError("User", id)
	}
	return u, nil
}
func (s *userRepoStub) GetByUsername(_ context.Context, username string) (*models.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, u := range s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

// revokerStub is an in-memory TokenRevoker.
type revokerStub struct {
	revoked map[string]time.Duration
	err     error
}

func (r *revokerStub) Revoke(_ context.Context, jti string, ttl time.Duration) error {
	r.revoked[jti] = ttl
	return nil
}
func (r *revokerStub) IsRevoked(_ context.Context, jti string) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	_, ok := r.revoked[jti]
	return ok, nil
}

func assertForbidden(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	assert.Equal(t, models.CodeForbidden, models.ErrorCode(err))
}

func assertNotFound(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	assert.Equal(t, models.CodeNotFound, models.ErrorCode(err))
}

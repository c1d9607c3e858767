package repository

import (
	"context"
	"regexp"
	"testing"

	"dwitter/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_GetByUsername(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE username = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "is_moderator"}).AddRow(1, "mod", true))

	user, err := repo.GetByUsername(ctx, "mod")
	require.NoError(t, err)
	assert.Equal(t, uint(1), user.ID)
	assert.True(t, user.IsModerator)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE username = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	user, err = repo.GetByUsername(ctx, "ghost")
	assert.NoError(t, err)
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetByID_NotFound(t *testing.T) {
	db := setupSQLite(t)
	repo := NewUserRepository(db)

	_, err := repo.GetByID(context.Background(), 12)
	assert.True(t, models.IsNotFound(err))
}

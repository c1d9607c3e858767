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

func TestCommentRepository_Delete(t *testing.T) {
	tests := []struct {
		name         string
		rowsAffected int64
		notFound     bool
	}{
		{"deletes existing row", 1, false},
		{"missing row is not found", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := setupMockDB(t)
			repo := NewCommentRepository(db)

			mock.ExpectBegin()
			mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "comments" WHERE "comments"."id" = $1`)).
				WithArgs(3).
				WillReturnResult(sqlmock.NewResult(0, tt.rowsAffected))
			mock.ExpectCommit()

			err := repo.Delete(context.Background(), 3)
			if tt.notFound {
				assert.True(t, models.IsNotFound(err))
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCommentRepository_ReadPaths(t *testing.T) {
	db := setupSQLite(t)
	dweets := NewDweetRepository(db)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	author := createUser(t, db, "author")
	first := &models.Dweet{Code: "a", AuthorID: author.ID}
	second := &models.Dweet{Code: "b", AuthorID: author.ID}
	require.NoError(t, dweets.Create(ctx, first))
	require.NoError(t, dweets.Create(ctx, second))

	for _, parent := range []uint{first.ID, first.ID, second.ID} {
		require.NoError(t, repo.Create(ctx, &models.Comment{Text: "c", ReplyToID: parent, AuthorID: author.ID}))
	}

	all, err := repo.List(ctx, CommentFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	onFirst, err := repo.List(ctx, CommentFilter{ReplyTo: first.ID})
	require.NoError(t, err)
	assert.Len(t, onFirst, 2)

	got, err := repo.GetByID(ctx, onFirst[0].ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ReplyToID)
	assert.Equal(t, "author", got.Author.Username)

	_, err = repo.GetByID(ctx, 999)
	assert.True(t, models.IsNotFound(err))
}

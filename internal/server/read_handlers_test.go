package server

import (
	"fmt"
	"net/http"
	"testing"

	"dwitter/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDweets(t *testing.T) {
	env := newTestEnv(t)
	first := env.dweet("user1")
	env.dweet("user2")
	env.comment("user2", first)
	env.comment("mod", first)

	resp := env.request(http.MethodGet, "/dweets/", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var dweets []models.Dweet
	decode(t, resp, &dweets)
	assert.Len(t, dweets, 2)

	resp = env.request(http.MethodGet, "/dweets/?limit=1", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &dweets)
	assert.Len(t, dweets, 1)

	resp = env.request(http.MethodGet, fmt.Sprintf("/dweets/%d/", first.ID), "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var got models.Dweet
	decode(t, resp, &got)
	assert.Equal(t, first.Code, got.Code)
	assert.Equal(t, "user1", got.Author.Username)
	assert.Equal(t, 2, got.CommentsCount)
}

func TestGetDweet_HidesCredentials(t *testing.T) {
	env := newTestEnv(t)
	d := env.dweet("user1")

	body := readBody(t, env.request(http.MethodGet, fmt.Sprintf("/dweets/%d/", d.ID), ""))
	assert.NotContains(t, body, "password")
	assert.NotContains(t, body, "user1@example.com")
}

func TestGetComments_FilterByDweet(t *testing.T) {
	env := newTestEnv(t)
	a := env.dweet("user1")
	b := env.dweet("user2")
	env.comment("user1", a)
	env.comment("user2", a)
	env.comment("mod", b)

	resp := env.request(http.MethodGet, fmt.Sprintf("/comments/?reply_to=%d", a.ID), "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var comments []models.Comment
	decode(t, resp, &comments)
	require.Len(t, comments, 2)
	for _, c := range comments {
		assert.Equal(t, a.ID, c.ReplyToID)
	}

	resp = env.request(http.MethodGet, "/comments/", "")
	decode(t, resp, &comments)
	assert.Len(t, comments, 3)

	resp = env.request(http.MethodGet, "/comments/12345/", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

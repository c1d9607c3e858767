package server

import (
	"fmt"
	"net/http"
	"testing"

	"dwitter/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDweetDeletionScenario(t *testing.T) {
	env := newTestEnv(t)
	authUser1, authUser2, authMod := env.login("user1"), env.login("user2"), env.login("mod")

	dweet1 := env.dweet("user1")
	dweet2 := env.dweet("user2")
	dweetMod := env.dweet("mod")
	require.EqualValues(t, 3, env.count(&models.Dweet{}))

	path := func(d *models.Dweet) string { return fmt.Sprintf("/dweets/%d/", d.ID) }

	resp := env.request(http.MethodDelete, path(dweet1), "")
	assert.Equal(t, http.StatusForbidden, resp.StatusCode, "anonymous")

	resp = env.request(http.MethodDelete, path(dweet1), authUser2)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode, "other user's dweet")

	resp = env.request(http.MethodDelete, path(dweetMod), authUser1)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode, "moderator's dweet as a user")
	assert.EqualValues(t, 3, env.count(&models.Dweet{}))

	resp = env.request(http.MethodDelete, path(dweet1), authUser1)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode, "own dweet")
	assert.Empty(t, readBody(t, resp))
	assert.EqualValues(t, 2, env.count(&models.Dweet{}))

	resp = env.request(http.MethodDelete, path(dweet2), authMod)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode, "moderator on other's dweet")
	assert.EqualValues(t, 1, env.count(&models.Dweet{}))

	resp = env.request(http.MethodDelete, path(dweetMod), authMod)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode, "moderator on own dweet")
	assert.EqualValues(t, 0, env.count(&models.Dweet{}))
}

func TestCommentDeletionScenario(t *testing.T) {
	env := newTestEnv(t)
	authUser1, authUser2, authMod := env.login("user1"), env.login("user2"), env.login("mod")

	dweet1 := env.dweet("user1")
	comment1 := env.comment("user1", dweet1)
	comment2 := env.comment("user2", dweet1)
	commentMod := env.comment("mod", dweet1)
	require.EqualValues(t, 3, env.count(&models.Comment{}))

	path := func(c *models.Comment) string { return fmt.Sprintf("/comments/%d/", c.ID) }

	resp := env.request(http.MethodDelete, path(comment1), "")
	assert.Equal(t, http.StatusForbidden, resp.StatusCode, "anonymous")

	resp = env.request(http.MethodDelete, path(comment1), authUser2)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode, "other user's comment")

	resp = env.request(http.MethodDelete, path(commentMod), authUser2)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode, "moderator's comment as a user")
	assert.EqualValues(t, 3, env.count(&models.Comment{}))

	resp = env.request(http.MethodDelete, path(comment1), authUser1)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode, "own comment")
	assert.EqualValues(t, 2, env.count(&models.Comment{}))

	resp = env.request(http.MethodDelete, path(comment2), authMod)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode, "moderator on other's comment")
	assert.EqualValues(t, 1, env.count(&models.Comment{}))

	resp = env.request(http.MethodDelete, path(commentMod), authMod)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode, "moderator on own comment")
	assert.EqualValues(t, 0, env.count(&models.Comment{}))

	assert.EqualValues(t, 1, env.count(&models.Dweet{}), "parent dweet untouched")
}

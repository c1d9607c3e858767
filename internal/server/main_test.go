package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"dwitter/internal/cache"
	"dwitter/internal/config"
	"dwitter/internal/database"
	"dwitter/internal/models"
	"dwitter/internal/seed"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const testJWTSecret = "test-secret-key-12345678901234567890123456789012"

// testEnv is a fresh server over a private in-memory database. Users user1,
// user2 and mod (a moderator) exist with the passwords below.
type testEnv struct {
	t       *testing.T
	app     *fiber.App
	db      *gorm.DB
	rdb     *redis.Client
	mr      *miniredis.Miniredis
	factory *seed.Factory
	users   map[string]*models.User
}

var testPasswords = map[string]string{
	"user1": "user1Pass",
	"user2": "user2Pass",
	"mod":   "banHammer69",
}

type envOption func(*testEnv)

// withRedis backs the server with miniredis.
func withRedis() envOption {
	return func(e *testEnv) {
		e.mr = miniredis.RunT(e.t)
		rdb, err := cache.NewClient(e.mr.Addr())
		require.NoError(e.t, err)
		e.t.Cleanup(func() { _ = rdb.Close() })
		e.rdb = rdb
	}
}

func newTestEnv(t *testing.T, opts ...envOption) *testEnv {
	t.Helper()

	db, err := database.OpenSQLiteMemory()
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	env := &testEnv{
		t:       t,
		db:      db,
		factory: seed.NewFactory(db, 1).WithCost(bcrypt.MinCost),
		users:   map[string]*models.User{},
	}
	for _, opt := range opts {
		opt(env)
	}

	cfg := &config.Config{
		JWTSecret:     testJWTSecret,
		TokenTTLHours: 1,
		Port:          "0",
		DBDriver:      "sqlite",
		Env:           "test",
	}
	srv, err := NewServerWithDeps(cfg, db, env.rdb)
	require.NoError(t, err)
	env.app = srv.App()

	ctx := context.Background()
	for _, name := range []string{"user1", "user2", "mod"} {
		u, err := env.factory.CreateUser(ctx, name, name+"@example.com", testPasswords[name], name == "mod")
		require.NoError(t, err)
		env.users[name] = u
	}
	return env
}

// login obtains a token through the real login endpoint and returns the
// Authorization header value in the "token <t>" form.
func (e *testEnv) login(username string) string {
	e.t.Helper()
	form := url.Values{"username": {username}, "password": {testPasswords[username]}}
	req := httptest.NewRequest(http.MethodPost, APIPrefix+"/api-token-auth/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", fiber.MIMEApplicationForm)

	resp := e.do(req)
	require.Equal(e.t, http.StatusOK, resp.StatusCode)

	var body TokenResponse
	decode(e.t, resp, &body)
	require.NotEmpty(e.t, body.Token)
	return "token " + body.Token
}

func (e *testEnv) do(req *http.Request) *http.Response {
	e.t.Helper()
	resp, err := e.app.Test(req, -1)
	require.NoError(e.t, err)
	return resp
}

func (e *testEnv) request(method, path, auth string) *http.Response {
	e.t.Helper()
	req := httptest.NewRequest(method, APIPrefix+path, nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	return e.do(req)
}

func (e *testEnv) dweet(author string) *models.Dweet {
	e.t.Helper()
	d, err := e.factory.CreateDweet(context.Background(), e.users[author], "")
	require.NoError(e.t, err)
	return d
}

func (e *testEnv) comment(author string, on *models.Dweet) *models.Comment {
	e.t.Helper()
	c, err := e.factory.CreateComment(context.Background(), e.users[author], on, "")
	require.NoError(e.t, err)
	return c
}

func (e *testEnv) count(model any) int64 {
	e.t.Helper()
	var n int64
	require.NoError(e.t, e.db.Model(model).Count(&n).Error)
	return n
}

func decode(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"steiger-backend/internal/middleware"
	"steiger-backend/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupAuthTest(t *testing.T) (*fiber.App, *gorm.DB, *redis.Client) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))

	cfg := middleware.SessionConfig{Secret: "test-secret"}
	h := &Handlers{Users: &GormUserStore{DB: db}, Rdb: rdb, Config: cfg}

	app := fiber.New()
	app.Use(middleware.SessionWithClient(cfg, rdb))
	grp := app.Group("/api/v1/auth")
	grp.Post("/login", h.Login)
	grp.Post("/register", h.Register)
	grp.Get("/me", h.Me)
	grp.Delete("/logout", h.Logout)
	return app, db, rdb
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}, cookies ...*http.Cookie) (*http.Response, map[string]interface{}) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)

	var parsed map[string]interface{}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &parsed))
	}
	return resp, parsed
}

func sessionCookie(t *testing.T, resp *http.Response) *http.Cookie {
	for _, ck := range resp.Cookies() {
		if ck.Name == middleware.SessionCookieName {
			return ck
		}
	}
	t.Fatal("no session cookie set")
	return nil
}

func registerBody() map[string]string {
	return map[string]string{
		"fullname":        "Jan de Vries",
		"email":           "jan@example.com",
		"password":        "wachtwoord1",
		"confirmPassword": "wachtwoord1",
	}
}

// Registration signs the new account straight in: the response carries a
// session cookie that /me accepts without a separate login.
func TestRegister_AutoLogin(t *testing.T) {
	app, db, _ := setupAuthTest(t)

	resp, parsed := doJSON(t, app, "POST", "/api/v1/auth/register", registerBody())
	require.Equal(t, 200, resp.StatusCode)
	data := parsed["data"].(map[string]interface{})
	user := data["user"].(map[string]interface{})
	assert.Equal(t, "jan@example.com", user["email"])

	var stored models.User
	require.NoError(t, db.Where("email = ?", "jan@example.com").First(&stored).Error)
	assert.NotEqual(t, "wachtwoord1", stored.PasswordHash)

	ck := sessionCookie(t, resp)
	resp, parsed = doJSON(t, app, "GET", "/api/v1/auth/me", nil, ck)
	require.Equal(t, 200, resp.StatusCode)
	me := parsed["data"].(map[string]interface{})["user"].(map[string]interface{})
	assert.Equal(t, "Jan de Vries", me["fullname"])
}

func TestRegister_PasswordMismatchFieldError(t *testing.T) {
	app, _, _ := setupAuthTest(t)

	body := registerBody()
	body["confirmPassword"] = "iets-anders"
	resp, parsed := doJSON(t, app, "POST", "/api/v1/auth/register", body)
	assert.Equal(t, 400, resp.StatusCode)
	errObj := parsed["error"].(map[string]interface{})
	details := errObj["details"].(map[string]interface{})
	assert.Equal(t, "confirmPassword", details["field"])
}

func TestRegister_WeakPasswordRejected(t *testing.T) {
	app, _, _ := setupAuthTest(t)

	body := registerBody()
	body["password"] = "kort1"
	body["confirmPassword"] = "kort1"
	resp, _ := doJSON(t, app, "POST", "/api/v1/auth/register", body)
	assert.Equal(t, 400, resp.StatusCode)

	body["password"] = "geencijfers"
	body["confirmPassword"] = "geencijfers"
	resp, _ = doJSON(t, app, "POST", "/api/v1/auth/register", body)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestRegister_DuplicateEmailConflicts(t *testing.T) {
	app, _, _ := setupAuthTest(t)

	resp, _ := doJSON(t, app, "POST", "/api/v1/auth/register", registerBody())
	require.Equal(t, 200, resp.StatusCode)
	resp, _ = doJSON(t, app, "POST", "/api/v1/auth/register", registerBody())
	assert.Equal(t, 409, resp.StatusCode)
}

func TestLogin_Success(t *testing.T) {
	app, _, _ := setupAuthTest(t)
	doJSON(t, app, "POST", "/api/v1/auth/register", registerBody())

	resp, parsed := doJSON(t, app, "POST", "/api/v1/auth/login", map[string]string{
		"email": "jan@example.com", "password": "wachtwoord1",
	})
	require.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "success", parsed["status"])
	sessionCookie(t, resp)
}

func TestLogin_WrongPassword(t *testing.T) {
	app, _, _ := setupAuthTest(t)
	doJSON(t, app, "POST", "/api/v1/auth/register", registerBody())

	resp, _ := doJSON(t, app, "POST", "/api/v1/auth/login", map[string]string{
		"email": "jan@example.com", "password": "fout",
	})
	assert.Equal(t, 401, resp.StatusCode)
}

func TestLogin_UnknownEmail(t *testing.T) {
	app, _, _ := setupAuthTest(t)

	resp, _ := doJSON(t, app, "POST", "/api/v1/auth/login", map[string]string{
		"email": "niemand@example.com", "password": "wachtwoord1",
	})
	assert.Equal(t, 401, resp.StatusCode)
}

func TestLogout_DestroysSession(t *testing.T) {
	app, _, rdb := setupAuthTest(t)
	resp, _ := doJSON(t, app, "POST", "/api/v1/auth/register", registerBody())
	ck := sessionCookie(t, resp)
	sid := strings.TrimPrefix(ck.Value, "s:")

	resp, _ = doJSON(t, app, "DELETE", "/api/v1/auth/logout", nil, ck)
	require.Equal(t, 200, resp.StatusCode)

	// The Redis key is gone and stays gone: the middleware's post-handler save
	// must not recreate it as an empty session.
	exists, err := rdb.Exists(context.Background(), middleware.SessionRedisPrefix+sid).Result()
	require.NoError(t, err)
	assert.Equal(t, int64(0), exists)

	resp, _ = doJSON(t, app, "GET", "/api/v1/auth/me", nil, ck)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestMe_Anonymous(t *testing.T) {
	app, _, _ := setupAuthTest(t)
	resp, _ := doJSON(t, app, "GET", "/api/v1/auth/me", nil)
	assert.Equal(t, 401, resp.StatusCode)
}

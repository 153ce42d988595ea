package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/IngaMaholwana/blogfastapi/config"
	"github.com/IngaMaholwana/blogfastapi/database"
	"github.com/IngaMaholwana/blogfastapi/handlers"
	"github.com/IngaMaholwana/blogfastapi/repositories"
	"github.com/IngaMaholwana/blogfastapi/routes"
	"github.com/IngaMaholwana/blogfastapi/services"
)

func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))

	userStore := repositories.NewUserStore()
	postStore := repositories.NewPostStore()
	commentStore := repositories.NewCommentStore()

	tokens := config.TokenConfig{Secret: "test-secret", ExpiryMinutes: 30}
	userService := services.NewUserService(userStore, tokens)
	postService := services.NewPostService(postStore, userStore, commentStore)
	commentService := services.NewCommentService(commentStore, postStore)

	app := fiber.New(fiber.Config{ErrorHandler: handlers.ErrorHandler})
	routes.SetupRoutes(app, db,
		handlers.NewUserHandler(userService),
		handlers.NewPostHandler(postService),
		handlers.NewCommentHandler(commentService),
	)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]interface{}
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp, decoded
}

func doForm(t *testing.T, app *fiber.App, path string, form url.Values) (*http.Response, map[string]interface{}) {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	return resp, decoded
}

func TestEndToEnd(t *testing.T) {
	app := setupApp(t)

	// Register.
	resp, user := doJSON(t, app, http.MethodPost, "/users/register", map[string]string{
		"username": "alice",
		"email":    "a@x.com",
		"password": "pw1",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "a@x.com", user["email"])
	assert.NotContains(t, user, "password")
	aliceID := int(user["id"].(float64))

	// Login.
	resp, login := doForm(t, app, "/users/token", url.Values{
		"username": {"alice"},
		"password": {"pw1"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, login["access_token"])
	assert.Equal(t, "bearer", login["token_type"])

	// Wrong password: 400 with the generic message.
	resp, bad := doForm(t, app, "/users/token", url.Values{
		"username": {"alice"},
		"password": {"wrong"},
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Incorrect username or password", bad["message"])

	// Create a post owned by alice.
	resp, post := doJSON(t, app, http.MethodPost, fmt.Sprintf("/posts?user_id=%d", aliceID), map[string]string{
		"title":   "T",
		"content": "C",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	owner := post["owner"].(map[string]interface{})
	assert.Equal(t, "a@x.com", owner["email"])
	postID := int(post["id"].(float64))

	// Delete it, then reading it again is a 404.
	resp, snapshot := doJSON(t, app, http.MethodDelete, fmt.Sprintf("/posts/%d", postID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "T", snapshot["title"])

	resp, missing := doJSON(t, app, http.MethodGet, fmt.Sprintf("/posts/%d", postID), nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Post not found", missing["message"])
}

func TestRegisterDuplicateAndBadEmail(t *testing.T) {
	app := setupApp(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/users/register", map[string]string{
		"username": "alice", "email": "a@x.com", "password": "pw1",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body := doJSON(t, app, http.MethodPost, "/users/register", map[string]string{
		"username": "alice", "email": "other@x.com", "password": "pw2",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "Username already registered", body["message"])

	resp, body = doJSON(t, app, http.MethodPost, "/users/register", map[string]string{
		"username": "bob", "email": "not-an-email", "password": "pw",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid email address", body["message"])
}

func TestCreatePostUnknownOwner(t *testing.T) {
	app := setupApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/posts?user_id=999", map[string]string{
		"title": "T", "content": "C",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "User not found", body["message"])
}

func TestSearchRouteBeatsPostID(t *testing.T) {
	app := setupApp(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/users/register", map[string]string{
		"username": "alice", "email": "a@x.com", "password": "pw1",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodPost, "/posts?user_id=1", map[string]string{
		"title": "Test Post", "content": "C",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	req, err := http.NewRequest(http.MethodGet, "/posts/search?query=Test", nil)
	require.NoError(t, err)
	res, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode)

	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	var found []map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &found))
	require.Len(t, found, 1)
	assert.Equal(t, "Test Post", found[0]["title"])
}

func TestListCommentsEmpty(t *testing.T) {
	app := setupApp(t)

	req, err := http.NewRequest(http.MethodGet, "/comments/123", nil)
	require.NoError(t, err)
	res, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode)

	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	assert.Equal(t, "[]", strings.TrimSpace(string(raw)))
}

func TestCreateAndListComments(t *testing.T) {
	app := setupApp(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/users/register", map[string]string{
		"username": "alice", "email": "a@x.com", "password": "pw1",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, post := doJSON(t, app, http.MethodPost, "/posts?user_id=1", map[string]string{
		"title": "T", "content": "C",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	postID := int(post["id"].(float64))

	resp, comment := doJSON(t, app, http.MethodPost, fmt.Sprintf("/comments?post_id=%d", postID), map[string]string{
		"content": "first!",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "first!", comment["content"])
	assert.Equal(t, float64(postID), comment["post_id"])

	// Commenting on a missing post is rejected.
	resp, body := doJSON(t, app, http.MethodPost, "/comments?post_id=999", map[string]string{
		"content": "orphan",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Post not found", body["message"])
}

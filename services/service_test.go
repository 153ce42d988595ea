package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/IngaMaholwana/blogfastapi/config"
	"github.com/IngaMaholwana/blogfastapi/database"
	"github.com/IngaMaholwana/blogfastapi/repositories"
)

// setupDB opens a fresh in-memory SQLite database for one test. The pool is
// pinned to a single connection so the in-memory database survives for the
// whole test.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func testTokenConfig() config.TokenConfig {
	return config.TokenConfig{Secret: "test-secret", ExpiryMinutes: 30}
}

func newServices(t *testing.T) (*gorm.DB, *UserService, *PostService, *CommentService) {
	t.Helper()

	db := setupDB(t)
	users := repositories.NewUserStore()
	posts := repositories.NewPostStore()
	comments := repositories.NewCommentStore()

	userService := NewUserService(users, testTokenConfig())
	postService := NewPostService(posts, users, comments)
	commentService := NewCommentService(comments, posts)
	return db, userService, postService, commentService
}

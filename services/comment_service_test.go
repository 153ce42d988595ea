package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IngaMaholwana/blogfastapi/domain"
)

func TestCommentService_CreateAndList(t *testing.T) {
	db, users, posts, comments := newServices(t)

	alice, err := users.Register(db, "alice", "a@x.com", "pw1")
	require.NoError(t, err)

	post, err := posts.Create(db, alice.ID, "T", "C")
	require.NoError(t, err)

	first, err := comments.Create(db, post.ID, "first!")
	require.NoError(t, err)
	assert.NotZero(t, first.ID)
	assert.Equal(t, post.ID, first.PostID)

	_, err = comments.Create(db, post.ID, "second")
	require.NoError(t, err)

	list, err := comments.ListByPost(db, post.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "first!", list[0].Content)
	assert.Equal(t, "second", list[1].Content)
}

func TestCommentService_CreateUnknownPost(t *testing.T) {
	db, _, _, comments := newServices(t)

	_, err := comments.Create(db, 999, "orphan")
	var notFound *domain.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Post not found", err.Error())
}

func TestCommentService_ListEmpty(t *testing.T) {
	db, users, posts, comments := newServices(t)

	alice, err := users.Register(db, "alice", "a@x.com", "pw1")
	require.NoError(t, err)

	post, err := posts.Create(db, alice.ID, "T", "C")
	require.NoError(t, err)

	// A post with no comments and an unknown post id both yield an empty
	// list, never an error.
	list, err := comments.ListByPost(db, post.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.NotNil(t, list)

	list, err = comments.ListByPost(db, 999)
	require.NoError(t, err)
	assert.Empty(t, list)
}

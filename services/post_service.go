package services

import (
	"time"

	"gorm.io/gorm"

	"github.com/IngaMaholwana/blogfastapi/domain"
	"github.com/IngaMaholwana/blogfastapi/models"
	"github.com/IngaMaholwana/blogfastapi/repositories"
)

const (
	defaultListLimit = 10
	maxListLimit     = 100
)

// PostService handles blog post CRUD and substring search. Owner views are
// resolved with explicit lookups against the user store.
type PostService struct {
	posts    repositories.PostStore
	users    repositories.UserStore
	comments repositories.CommentStore
}

func NewPostService(posts repositories.PostStore, users repositories.UserStore, comments repositories.CommentStore) *PostService {
	return &PostService{posts: posts, users: users, comments: comments}
}

// Create stores a new post owned by an existing user.
func (s *PostService) Create(db *gorm.DB, ownerID uint, title, content string) (*models.PostOut, error) {
	owner, err := s.users.ByID(db, ownerID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, &domain.NotFoundError{Entity: "User"}
	}

	post := models.Post{
		Title:     title,
		Content:   content,
		CreatedAt: time.Now(),
		OwnerID:   ownerID,
	}
	if err := s.posts.Create(db, &post); err != nil {
		return nil, err
	}

	out := post.Out(owner.Out())
	return &out, nil
}

// List returns posts in insertion order.
// skip/limit default to 0/10; limit is capped to keep responses bounded.
func (s *PostService) List(db *gorm.DB, skip, limit int) ([]models.PostOut, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	posts, err := s.posts.List(db, skip, limit)
	if err != nil {
		return nil, err
	}
	return s.withOwners(db, posts)
}

// Get returns a single post with its owner view.
func (s *PostService) Get(db *gorm.DB, id uint) (*models.PostOut, error) {
	post, err := s.posts.ByID(db, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, &domain.NotFoundError{Entity: "Post"}
	}
	return s.withOwner(db, post)
}

// Update replaces the post's title and content wholesale. The creation
// timestamp is untouched; partial updates are not supported.
func (s *PostService) Update(db *gorm.DB, id uint, title, content string) (*models.PostOut, error) {
	post, err := s.posts.ByID(db, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, &domain.NotFoundError{Entity: "Post"}
	}

	post.Title = title
	post.Content = content
	if err := s.posts.Update(db, post); err != nil {
		return nil, err
	}
	return s.withOwner(db, post)
}

// Delete removes the post and its comments, returning the pre-deletion
// snapshot.
func (s *PostService) Delete(db *gorm.DB, id uint) (*models.PostOut, error) {
	post, err := s.posts.ByID(db, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, &domain.NotFoundError{Entity: "Post"}
	}

	snapshot, err := s.withOwner(db, post)
	if err != nil {
		return nil, err
	}

	if err := s.comments.DeleteByPost(db, id); err != nil {
		return nil, err
	}
	if err := s.posts.Delete(db, id); err != nil {
		return nil, err
	}
	return snapshot, nil
}

// Search returns every post whose title or content contains the query as a
// case-sensitive substring. No pagination, no ranking.
func (s *PostService) Search(db *gorm.DB, query string) ([]models.PostOut, error) {
	posts, err := s.posts.Search(db, query)
	if err != nil {
		return nil, err
	}
	return s.withOwners(db, posts)
}

func (s *PostService) withOwner(db *gorm.DB, post *models.Post) (*models.PostOut, error) {
	owner, err := s.users.ByID(db, post.OwnerID)
	if err != nil {
		return nil, err
	}
	var view models.UserOut
	if owner != nil {
		view = owner.Out()
	}
	out := post.Out(view)
	return &out, nil
}

// withOwners resolves every post's owner with one batched lookup.
func (s *PostService) withOwners(db *gorm.DB, posts []models.Post) ([]models.PostOut, error) {
	ids := make([]uint, 0, len(posts))
	seen := make(map[uint]bool, len(posts))
	for _, p := range posts {
		if !seen[p.OwnerID] {
			seen[p.OwnerID] = true
			ids = append(ids, p.OwnerID)
		}
	}

	owners := map[uint]models.User{}
	if len(ids) > 0 {
		var err error
		owners, err = s.users.ByIDs(db, ids)
		if err != nil {
			return nil, err
		}
	}

	out := make([]models.PostOut, 0, len(posts))
	for _, p := range posts {
		owner := owners[p.OwnerID]
		out = append(out, p.Out(owner.Out()))
	}
	return out, nil
}

package services

import (
	"gorm.io/gorm"

	"github.com/IngaMaholwana/blogfastapi/domain"
	"github.com/IngaMaholwana/blogfastapi/models"
	"github.com/IngaMaholwana/blogfastapi/repositories"
)

// CommentService attaches comments to posts and lists them.
type CommentService struct {
	comments repositories.CommentStore
	posts    repositories.PostStore
}

func NewCommentService(comments repositories.CommentStore, posts repositories.PostStore) *CommentService {
	return &CommentService{comments: comments, posts: posts}
}

// Create stores a comment under an existing post. The author is not
// recorded; commenting is anonymous on this surface.
func (s *CommentService) Create(db *gorm.DB, postID uint, content string) (*models.CommentOut, error) {
	post, err := s.posts.ByID(db, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, &domain.NotFoundError{Entity: "Post"}
	}

	comment := models.Comment{
		Content: content,
		PostID:  postID,
	}
	if err := s.comments.Create(db, &comment); err != nil {
		return nil, err
	}

	out := comment.Out()
	return &out, nil
}

// ListByPost returns the post's comments in storage order. An unknown post
// id yields an empty list.
func (s *CommentService) ListByPost(db *gorm.DB, postID uint) ([]models.CommentOut, error) {
	comments, err := s.comments.ListByPost(db, postID)
	if err != nil {
		return nil, err
	}

	out := make([]models.CommentOut, 0, len(comments))
	for _, c := range comments {
		out = append(out, c.Out())
	}
	return out, nil
}

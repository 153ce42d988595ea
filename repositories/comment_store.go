package repositories

import (
	"gorm.io/gorm"

	"github.com/IngaMaholwana/blogfastapi/models"
)

// CommentStore persists comments.
type CommentStore interface {
	Create(db *gorm.DB, comment *models.Comment) error
	ListByPost(db *gorm.DB, postID uint) ([]models.Comment, error)
	DeleteByPost(db *gorm.DB, postID uint) error
}

type GormCommentStore struct{}

func NewCommentStore() *GormCommentStore {
	return &GormCommentStore{}
}

func (GormCommentStore) Create(db *gorm.DB, comment *models.Comment) error {
	return db.Create(comment).Error
}

// ListByPost returns the post's comments in insertion order. An unknown
// post id yields an empty slice, not an error.
func (GormCommentStore) ListByPost(db *gorm.DB, postID uint) ([]models.Comment, error) {
	comments := make([]models.Comment, 0)
	err := db.Where("post_id = ?", postID).Order("id").Find(&comments).Error
	return comments, err
}

// DeleteByPost removes every comment under a post. Used when the post
// itself is deleted.
func (GormCommentStore) DeleteByPost(db *gorm.DB, postID uint) error {
	return db.Where("post_id = ?", postID).Delete(&models.Comment{}).Error
}

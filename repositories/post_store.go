package repositories

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/IngaMaholwana/blogfastapi/models"
)

// PostStore persists blog posts.
type PostStore interface {
	Create(db *gorm.DB, post *models.Post) error
	ByID(db *gorm.DB, id uint) (*models.Post, error)
	List(db *gorm.DB, skip, limit int) ([]models.Post, error)
	Update(db *gorm.DB, post *models.Post) error
	Delete(db *gorm.DB, id uint) error
	Search(db *gorm.DB, query string) ([]models.Post, error)
}

type GormPostStore struct{}

func NewPostStore() *GormPostStore {
	return &GormPostStore{}
}

func (GormPostStore) Create(db *gorm.DB, post *models.Post) error {
	return db.Create(post).Error
}

func (GormPostStore) ByID(db *gorm.DB, id uint) (*models.Post, error) {
	var post models.Post
	if err := db.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

// List returns posts in insertion order with offset/limit pagination.
func (GormPostStore) List(db *gorm.DB, skip, limit int) ([]models.Post, error) {
	var posts []models.Post
	err := db.Order("id").Offset(skip).Limit(limit).Find(&posts).Error
	return posts, err
}

func (GormPostStore) Update(db *gorm.DB, post *models.Post) error {
	return db.Save(post).Error
}

func (GormPostStore) Delete(db *gorm.DB, id uint) error {
	return db.Delete(&models.Post{}, id).Error
}

// Search matches posts whose title or content contains the query as a
// case-sensitive substring. LIKE narrows the candidate set in SQL; the
// final containment check runs in Go because SQLite's LIKE ignores ASCII
// case while Postgres's does not.
func (GormPostStore) Search(db *gorm.DB, query string) ([]models.Post, error) {
	pattern := "%" + escapeLike(query) + "%"
	var candidates []models.Post
	err := db.
		Where("title LIKE ? ESCAPE '\\' OR content LIKE ? ESCAPE '\\'", pattern, pattern).
		Order("id").
		Find(&candidates).Error
	if err != nil {
		return nil, err
	}

	posts := make([]models.Post, 0, len(candidates))
	for _, p := range candidates {
		if strings.Contains(p.Title, query) || strings.Contains(p.Content, query) {
			posts = append(posts, p)
		}
	}
	return posts, nil
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

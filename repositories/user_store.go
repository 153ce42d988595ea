package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/IngaMaholwana/blogfastapi/models"
)

// UserStore persists user records. Every method takes the per-request
// database handle so calls join the surrounding transaction.
type UserStore interface {
	Create(db *gorm.DB, user *models.User) error
	ByID(db *gorm.DB, id uint) (*models.User, error)
	ByIDs(db *gorm.DB, ids []uint) (map[uint]models.User, error)
	ByUsername(db *gorm.DB, username string) (*models.User, error)
	ByEmail(db *gorm.DB, email string) (*models.User, error)
}

type GormUserStore struct{}

func NewUserStore() *GormUserStore {
	return &GormUserStore{}
}

func (GormUserStore) Create(db *gorm.DB, user *models.User) error {
	return db.Create(user).Error
}

func (GormUserStore) ByID(db *gorm.DB, id uint) (*models.User, error) {
	var user models.User
	if err := db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// ByIDs fetches all named users in one query and indexes them by id.
// Missing ids are simply absent from the result map.
func (GormUserStore) ByIDs(db *gorm.DB, ids []uint) (map[uint]models.User, error) {
	var users []models.User
	if err := db.Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, err
	}
	byID := make(map[uint]models.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}
	return byID, nil
}

func (GormUserStore) ByUsername(db *gorm.DB, username string) (*models.User, error) {
	var user models.User
	if err := db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (GormUserStore) ByEmail(db *gorm.DB, email string) (*models.User, error) {
	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

package services

import (
	"github.com/asaskevich/govalidator"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/IngaMaholwana/blogfastapi/config"
	"github.com/IngaMaholwana/blogfastapi/domain"
	"github.com/IngaMaholwana/blogfastapi/internal/util"
	"github.com/IngaMaholwana/blogfastapi/models"
	"github.com/IngaMaholwana/blogfastapi/repositories"
)

// UserService handles registration and login. Token settings are injected
// at construction; the service never reads the environment itself.
type UserService struct {
	users  repositories.UserStore
	tokens config.TokenConfig
}

func NewUserService(users repositories.UserStore, tokens config.TokenConfig) *UserService {
	return &UserService{users: users, tokens: tokens}
}

// Register creates a new account with a bcrypt-hashed password and returns
// the stored record.
func (s *UserService) Register(db *gorm.DB, username, email, password string) (*models.User, error) {
	if !govalidator.IsEmail(email) {
		return nil, &domain.ValidationError{Message: "Invalid email address"}
	}

	existing, err := s.users.ByUsername(db, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &domain.ConflictError{Message: "Username already registered"}
	}

	existing, err = s.users.ByEmail(db, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &domain.ConflictError{Message: "Email already registered"}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username: username,
		Email:    email,
		Password: string(hashed),
	}
	if err := s.users.Create(db, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login verifies the credentials and issues a signed access token. An
// unknown username and a wrong password produce the same error so callers
// cannot enumerate accounts.
func (s *UserService) Login(db *gorm.DB, username, password string) (string, error) {
	user, err := s.users.ByUsername(db, username)
	if err != nil {
		return "", err
	}
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return "", &domain.AuthenticationError{Message: "Incorrect username or password"}
	}

	return util.CreateAccessToken(user.Username, s.tokens.Secret, s.tokens.ExpiryMinutes)
}

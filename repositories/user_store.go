package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/dan-yates1/umg-project/domain"
	"github.com/dan-yates1/umg-project/models"
)

// UserStore persists user accounts.
type UserStore interface {
	Create(user *models.User) error
	FindByUsername(username string) (*models.User, error)
	FindByID(id uint) (*models.User, error)
}

// GormUserStore implements UserStore on a relational database.
type GormUserStore struct {
	db *gorm.DB
}

func NewGormUserStore(db *gorm.DB) *GormUserStore {
	return &GormUserStore{db: db}
}

// Create inserts a new user. Returns domain.ErrUsernameTaken when the
// username is already registered; the match is case-sensitive and exact.
func (s *GormUserStore) Create(user *models.User) error {
	var existing models.User
	if err := s.db.Where("username = ?", user.Username).First(&existing).Error; err == nil {
		return domain.ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to look up username: %w", err)
	}

	if err := s.db.Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// FindByUsername looks a user up by exact username. Returns
// domain.ErrInvalidCredentials when no such user exists so callers cannot
// distinguish an unknown username from a bad password.
func (s *GormUserStore) FindByUsername(username string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to query user: %w", err)
	}
	return &user, nil
}

func (s *GormUserStore) FindByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUnauthenticated
		}
		return nil, fmt.Errorf("failed to query user: %w", err)
	}
	return &user, nil
}

package repositories

import (
	"fmt"
	"strings"

	"github.com/gosimple/slug"
	"gorm.io/gorm"

	"github.com/dan-yates1/umg-project/domain"
	"github.com/dan-yates1/umg-project/models"
)

// TrackStore persists tracks. Every operation is scoped to an owning user:
// a track id that belongs to someone else behaves exactly like an id that
// does not exist.
type TrackStore interface {
	ListByUser(userID uint) ([]models.Track, error)
	Create(track *models.Track) error
	UpdateName(id, userID uint, name string) error
	Delete(id, userID uint) error
	Search(userID uint, query string) ([]models.Track, error)
}

// GormTrackStore implements TrackStore on a relational database.
type GormTrackStore struct {
	db *gorm.DB
}

func NewGormTrackStore(db *gorm.DB) *GormTrackStore {
	return &GormTrackStore{db: db}
}

// ListByUser returns the user's tracks in insertion order.
func (s *GormTrackStore) ListByUser(userID uint) ([]models.Track, error) {
	tracks := []models.Track{}
	if err := s.db.Where("user_id = ?", userID).Order("id").Find(&tracks).Error; err != nil {
		return nil, fmt.Errorf("failed to list tracks: %w", err)
	}
	return tracks, nil
}

// Create inserts a new track, deriving its slug from the name.
func (s *GormTrackStore) Create(track *models.Track) error {
	track.Slug = slug.Make(track.Name)
	if err := s.db.Create(track).Error; err != nil {
		return fmt.Errorf("failed to create track: %w", err)
	}
	return nil
}

// UpdateName renames a track the user owns. Returns domain.ErrNotFound when
// the id does not exist or is owned by another user.
func (s *GormTrackStore) UpdateName(id, userID uint, name string) error {
	result := s.db.Model(&models.Track{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]any{"name": name, "slug": slug.Make(name)})
	if result.Error != nil {
		return fmt.Errorf("failed to update track: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a track the user owns, with the same not-found semantics as
// UpdateName.
func (s *GormTrackStore) Delete(id, userID uint) error {
	result := s.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Track{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete track: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Search returns the user's tracks whose name contains query, matched
// case-insensitively. An empty query returns the full list.
func (s *GormTrackStore) Search(userID uint, query string) ([]models.Track, error) {
	if query == "" {
		return s.ListByUser(userID)
	}

	tracks := []models.Track{}
	pattern := "%" + strings.ToLower(query) + "%"
	err := s.db.Where("user_id = ? AND LOWER(name) LIKE ?", userID, pattern).
		Order("id").
		Find(&tracks).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search tracks: %w", err)
	}
	return tracks, nil
}

package store

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// aboutRowID pins the About page to a single row.
const aboutRowID = 1

// AboutPage is the singleton About document. It has no identity of its
// own beyond the fixed row and is overwritten, never versioned.
type AboutPage struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// GetAbout returns the About page, or ErrNotFound before the first write.
func (s *Store) GetAbout() (*AboutPage, error) {
	var page AboutPage
	if err := s.db.Where("id = ?", aboutRowID).First(&page).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &page, nil
}

// PutAbout overwrites the singleton row, creating it on first write.
func (s *Store) PutAbout(content string, now time.Time) (*AboutPage, error) {
	page := AboutPage{
		ID:        aboutRowID,
		Content:   content,
		UpdatedAt: now,
	}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"content", "updated_at"}),
	}).Create(&page).Error
	if err != nil {
		return nil, err
	}
	return &page, nil
}

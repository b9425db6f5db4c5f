package store

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// Post statuses. Status is always one of these two values.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// Post is the persisted post record. The id is assigned at creation and
// stable for the record's lifetime; the slug carries a unique index so
// concurrent creates cannot race past a prior existence check.
type Post struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	Slug      string    `gorm:"uniqueIndex;not null" json:"slug"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Date      time.Time `gorm:"not null" json:"date"`
	Status    string    `gorm:"not null" json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PostMetadata is the summary projection used by list views.
type PostMetadata struct {
	ID     string    `json:"id"`
	Title  string    `json:"title"`
	Slug   string    `json:"slug"`
	Date   time.Time `json:"date"`
	Status string    `json:"status"`
}

// ListPosts returns post summaries ordered by date descending, ties
// broken by id so the order is stable.
func (s *Store) ListPosts(publishedOnly bool) ([]PostMetadata, error) {
	query := s.db.Model(&Post{}).
		Select("id", "title", "slug", "date", "status").
		Order("date desc, id asc")
	if publishedOnly {
		query = query.Where("status = ?", StatusPublished)
	}

	var metas []PostMetadata
	if err := query.Find(&metas).Error; err != nil {
		return nil, err
	}
	return metas, nil
}

// GetPost fetches a post by id.
func (s *Store) GetPost(id string) (*Post, error) {
	var post Post
	if err := s.db.Where("id = ?", id).First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

// GetPostBySlug fetches a post by slug.
func (s *Store) GetPostBySlug(slug string) (*Post, error) {
	var post Post
	if err := s.db.Where("slug = ?", slug).First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

// InsertPost persists a fully populated new post. The unique slug index
// serializes concurrent inserts; a collision surfaces as ErrSlugTaken.
func (s *Store) InsertPost(post *Post) error {
	if err := s.db.Create(post).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrSlugTaken
		}
		return err
	}
	return nil
}

// SavePost writes every column of an existing post back to its row.
// Saving a post whose row is gone reports ErrNotFound.
func (s *Store) SavePost(post *Post) error {
	result := s.db.Model(&Post{}).
		Where("id = ?", post.ID).
		Updates(map[string]any{
			"title":      post.Title,
			"slug":       post.Slug,
			"content":    post.Content,
			"date":       post.Date,
			"status":     post.Status,
			"created_at": post.CreatedAt,
			"updated_at": post.UpdatedAt,
		})
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return ErrSlugTaken
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeletePost removes a post by id. Deleting an absent id reports
// ErrNotFound rather than succeeding silently.
func (s *Store) DeletePost(id string) error {
	result := s.db.Where("id = ?", id).Delete(&Post{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

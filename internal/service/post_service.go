package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/camthoi/blog/internal/slug"
	"github.com/camthoi/blog/internal/store"
)

// maxSlugAttempts bounds suffix disambiguation when titles collide.
const maxSlugAttempts = 50

// PostService wraps post related store operations. It validates input,
// derives ids and slugs, and stamps timestamps; the store remains the
// sole source of truth between calls.
type PostService struct {
	store *store.Store
}

// NewPostService creates a PostService over an open store.
func NewPostService(st *store.Store) *PostService {
	return &PostService{store: st}
}

// CreateInput holds the fields accepted when creating a post.
type CreateInput struct {
	Title   string
	Content string
	Status  string
}

// UpdateInput is a typed partial update. Nil fields are left untouched;
// present fields are validated with the same rules as create.
type UpdateInput struct {
	Title   *string
	Content *string
	Status  *string
}

// List returns post summaries, optionally restricted to published posts.
func (s *PostService) List(publishedOnly bool) ([]store.PostMetadata, error) {
	return s.store.ListPosts(publishedOnly)
}

// Get fetches a post by id.
func (s *PostService) Get(id string) (*store.Post, error) {
	post, err := s.store.GetPost(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return post, nil
}

// GetBySlug fetches a post by slug.
func (s *PostService) GetBySlug(slugValue string) (*store.Post, error) {
	post, err := s.store.GetPostBySlug(slugValue)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return post, nil
}

// Create validates the input, assigns id and slug, and persists a new
// post. Date, createdAt and updatedAt all carry the creation instant.
func (s *PostService) Create(input CreateInput) (*store.Post, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, validationError("title is required")
	}
	if strings.TrimSpace(input.Content) == "" {
		return nil, validationError("content is required")
	}
	if !validStatus(input.Status) {
		return nil, validationError("status must be draft or published")
	}

	now := time.Now().UTC()
	post := &store.Post{
		ID:        uuid.NewString(),
		Title:     title,
		Content:   input.Content,
		Date:      now,
		Status:    input.Status,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.insertWithSlug(post, slugFor(post)); err != nil {
		return nil, err
	}
	return post, nil
}

// Update applies a partial update to an existing post. The slug is
// regenerated only when the title is present; date and createdAt never
// change, and updatedAt always advances.
func (s *PostService) Update(id string, input UpdateInput) (*store.Post, error) {
	if input.Title != nil && strings.TrimSpace(*input.Title) == "" {
		return nil, validationError("title cannot be empty")
	}
	if input.Content != nil && strings.TrimSpace(*input.Content) == "" {
		return nil, validationError("content cannot be empty")
	}
	if input.Status != nil && !validStatus(*input.Status) {
		return nil, validationError("status must be draft or published")
	}

	post, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	retitled := false
	if input.Title != nil {
		post.Title = strings.TrimSpace(*input.Title)
		retitled = true
	}
	if input.Content != nil {
		post.Content = *input.Content
	}
	if input.Status != nil {
		post.Status = *input.Status
	}
	post.UpdatedAt = time.Now().UTC()

	if retitled {
		if err := s.saveWithSlug(post, slugFor(post)); err != nil {
			return nil, err
		}
		return post, nil
	}

	if err := s.store.SavePost(post); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return post, nil
}

// Delete removes a post permanently. Deleting an unknown id reports
// ErrPostNotFound, never silent success.
func (s *PostService) Delete(id string) error {
	if err := s.store.DeletePost(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrPostNotFound
		}
		return err
	}
	return nil
}

// slugFor derives the base slug for a post, substituting the post id
// when the title normalizes to nothing.
func slugFor(post *store.Post) string {
	if base := slug.Make(post.Title); base != "" {
		return base
	}
	return post.ID
}

// insertWithSlug inserts the post under the base slug, appending -2, -3,
// … on collisions. The store's unique index serializes concurrent
// creates, so the winner is decided at the write, not at a prior read.
func (s *PostService) insertWithSlug(post *store.Post, base string) error {
	candidate := base
	for attempt := 2; ; attempt++ {
		post.Slug = candidate
		err := s.store.InsertPost(post)
		if err == nil {
			return nil
		}
		if !errors.Is(err, store.ErrSlugTaken) {
			return err
		}
		if attempt > maxSlugAttempts {
			return fmt.Errorf("no free slug for %q after %d attempts", base, maxSlugAttempts)
		}
		candidate = fmt.Sprintf("%s-%d", base, attempt)
	}
}

func (s *PostService) saveWithSlug(post *store.Post, base string) error {
	candidate := base
	for attempt := 2; ; attempt++ {
		post.Slug = candidate
		err := s.store.SavePost(post)
		if err == nil {
			return nil
		}
		if errors.Is(err, store.ErrNotFound) {
			return ErrPostNotFound
		}
		if !errors.Is(err, store.ErrSlugTaken) {
			return err
		}
		if attempt > maxSlugAttempts {
			return fmt.Errorf("no free slug for %q after %d attempts", base, maxSlugAttempts)
		}
		candidate = fmt.Sprintf("%s-%d", base, attempt)
	}
}

func validStatus(status string) bool {
	return status == store.StatusDraft || status == store.StatusPublished
}

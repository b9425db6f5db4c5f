package service

import (
	"errors"
	"strings"
	"time"

	"github.com/camthoi/blog/internal/store"
)

// AboutService manages the singleton About document.
type AboutService struct {
	store *store.Store
}

// NewAboutService creates an AboutService over an open store.
func NewAboutService(st *store.Store) *AboutService {
	return &AboutService{store: st}
}

// Get returns the About page, or ErrAboutNotFound before the first write.
func (s *AboutService) Get() (*store.AboutPage, error) {
	page, err := s.store.GetAbout()
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrAboutNotFound
		}
		return nil, err
	}
	return page, nil
}

// Save overwrites the About page, creating it on first write. Empty or
// whitespace-only content is rejected and the stored page is untouched.
func (s *AboutService) Save(content string) (*store.AboutPage, error) {
	if strings.TrimSpace(content) == "" {
		return nil, validationError("content is required")
	}
	return s.store.PutAbout(content, time.Now().UTC())
}

package store

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	dsn := fmt.Sprintf("file:store-%d?mode=memory&cache=shared", time.Now().UnixNano())
	s, err := Open(dsn)
	if err != nil {
		t.Fatalf("failed to open test store: %v", err)
	}
	t.Cleanup(func() {
		s.Close()
	})
	return s
}

func testPost(title, slug, status string, date time.Time) *Post {
	return &Post{
		ID:        uuid.NewString(),
		Title:     title,
		Slug:      slug,
		Content:   "body for " + title,
		Date:      date,
		Status:    status,
		CreatedAt: date,
		UpdatedAt: date,
	}
}

func TestInsertAndGetPost(t *testing.T) {
	s := setupTestStore(t)

	date := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	post := testPost("First Post", "first-post", StatusDraft, date)
	if err := s.InsertPost(post); err != nil {
		t.Fatalf("InsertPost returned error: %v", err)
	}

	byID, err := s.GetPost(post.ID)
	if err != nil {
		t.Fatalf("GetPost returned error: %v", err)
	}
	if byID.Title != "First Post" || byID.Slug != "first-post" || byID.Status != StatusDraft {
		t.Fatalf("unexpected record: %+v", byID)
	}
	if !byID.Date.Equal(date) {
		t.Fatalf("expected date %v, got %v", date, byID.Date)
	}

	bySlug, err := s.GetPostBySlug("first-post")
	if err != nil {
		t.Fatalf("GetPostBySlug returned error: %v", err)
	}
	if bySlug.ID != post.ID {
		t.Fatalf("expected id %s, got %s", post.ID, bySlug.ID)
	}
}

func TestGetPostMissing(t *testing.T) {
	s := setupTestStore(t)

	if _, err := s.GetPost(uuid.NewString()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := s.GetPostBySlug("nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestInsertPostDuplicateSlug(t *testing.T) {
	s := setupTestStore(t)

	date := time.Now().UTC()
	if err := s.InsertPost(testPost("Hello", "hello", StatusDraft, date)); err != nil {
		t.Fatalf("first insert failed: %v", err)
	}

	err := s.InsertPost(testPost("Hello Again", "hello", StatusDraft, date))
	if !errors.Is(err, ErrSlugTaken) {
		t.Fatalf("expected ErrSlugTaken, got %v", err)
	}
}

func TestSavePost(t *testing.T) {
	s := setupTestStore(t)

	created := time.Date(2024, 2, 1, 8, 0, 0, 0, time.UTC)
	post := testPost("Original", "original", StatusDraft, created)
	if err := s.InsertPost(post); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	post.Title = "Renamed"
	post.Slug = "renamed"
	post.Status = StatusPublished
	post.UpdatedAt = created.Add(time.Hour)
	if err := s.SavePost(post); err != nil {
		t.Fatalf("SavePost returned error: %v", err)
	}

	got, err := s.GetPost(post.ID)
	if err != nil {
		t.Fatalf("GetPost returned error: %v", err)
	}
	if got.Title != "Renamed" || got.Slug != "renamed" || got.Status != StatusPublished {
		t.Fatalf("unexpected record after save: %+v", got)
	}
	if !got.CreatedAt.Equal(created) {
		t.Fatalf("createdAt changed on save: %v", got.CreatedAt)
	}
	if !got.UpdatedAt.Equal(created.Add(time.Hour)) {
		t.Fatalf("updatedAt not persisted: %v", got.UpdatedAt)
	}
}

func TestSavePostMissing(t *testing.T) {
	s := setupTestStore(t)

	ghost := testPost("Ghost", "ghost", StatusDraft, time.Now().UTC())
	if err := s.SavePost(ghost); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSavePostSlugCollision(t *testing.T) {
	s := setupTestStore(t)

	date := time.Now().UTC()
	if err := s.InsertPost(testPost("Taken", "taken", StatusDraft, date)); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	other := testPost("Other", "other", StatusDraft, date)
	if err := s.InsertPost(other); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	other.Slug = "taken"
	if err := s.SavePost(other); !errors.Is(err, ErrSlugTaken) {
		t.Fatalf("expected ErrSlugTaken, got %v", err)
	}
}

func TestDeletePost(t *testing.T) {
	s := setupTestStore(t)

	post := testPost("Doomed", "doomed", StatusDraft, time.Now().UTC())
	if err := s.InsertPost(post); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	if err := s.DeletePost(post.ID); err != nil {
		t.Fatalf("DeletePost returned error: %v", err)
	}
	if _, err := s.GetPost(post.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected deleted post to be gone, got %v", err)
	}
	if err := s.DeletePost(post.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected repeated delete to report ErrNotFound, got %v", err)
	}
}

func TestListPostsOrderAndFilter(t *testing.T) {
	s := setupTestStore(t)

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	oldest := testPost("Oldest", "oldest", StatusPublished, base)
	newest := testPost("Newest", "newest", StatusPublished, base.AddDate(0, 2, 0))
	draft := testPost("Draft", "draft-post", StatusDraft, base.AddDate(0, 1, 0))

	for _, p := range []*Post{oldest, newest, draft} {
		if err := s.InsertPost(p); err != nil {
			t.Fatalf("insert %s failed: %v", p.Slug, err)
		}
	}

	all, err := s.ListPosts(false)
	if err != nil {
		t.Fatalf("ListPosts returned error: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 posts, got %d", len(all))
	}
	if all[0].Slug != "newest" || all[1].Slug != "draft-post" || all[2].Slug != "oldest" {
		t.Fatalf("unexpected order: %v, %v, %v", all[0].Slug, all[1].Slug, all[2].Slug)
	}

	published, err := s.ListPosts(true)
	if err != nil {
		t.Fatalf("ListPosts(published) returned error: %v", err)
	}
	if len(published) != 2 {
		t.Fatalf("expected 2 published posts, got %d", len(published))
	}
	for _, meta := range published {
		if meta.Status != StatusPublished {
			t.Fatalf("draft leaked into published list: %+v", meta)
		}
	}
}

func TestAboutLifecycle(t *testing.T) {
	s := setupTestStore(t)

	if _, err := s.GetAbout(); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound before first write, got %v", err)
	}

	first := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	page, err := s.PutAbout("# About me", first)
	if err != nil {
		t.Fatalf("PutAbout returned error: %v", err)
	}
	if page.Content != "# About me" {
		t.Fatalf("unexpected content: %q", page.Content)
	}

	second := first.Add(48 * time.Hour)
	if _, err := s.PutAbout("updated about", second); err != nil {
		t.Fatalf("second PutAbout returned error: %v", err)
	}

	got, err := s.GetAbout()
	if err != nil {
		t.Fatalf("GetAbout returned error: %v", err)
	}
	if got.Content != "updated about" {
		t.Fatalf("expected overwrite, got %q", got.Content)
	}
	if !got.UpdatedAt.Equal(second) {
		t.Fatalf("expected updatedAt %v, got %v", second, got.UpdatedAt)
	}
}

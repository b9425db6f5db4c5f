// Package export mirrors the store into frontmatter-tagged markdown
// files, one per post plus a singleton about.md, and reads such trees
// back in. It is a backup/migration format, not a second store.
package export

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"

	"github.com/camthoi/blog/internal/store"
)

const postsSubdir = "posts"

// postEnvelope is the frontmatter block written ahead of each post body.
// Dates travel as RFC3339 strings, matching the original file layout.
type postEnvelope struct {
	Title     string `yaml:"title"`
	Slug      string `yaml:"slug"`
	Date      string `yaml:"date"`
	Status    string `yaml:"status"`
	CreatedAt string `yaml:"createdAt"`
	UpdatedAt string `yaml:"updatedAt"`
}

type aboutEnvelope struct {
	UpdatedAt string `yaml:"updatedAt"`
}

// Exporter reads and writes content trees against an open store.
type Exporter struct {
	store *store.Store
}

// New creates an Exporter over an open store.
func New(st *store.Store) *Exporter {
	return &Exporter{store: st}
}

// Export writes every post to dir/posts/<id>.md and the About page to
// dir/about.md. It returns the number of posts written and whether an
// About page existed.
func (e *Exporter) Export(dir string) (int, bool, error) {
	postsDir := filepath.Join(dir, postsSubdir)
	if err := os.MkdirAll(postsDir, 0o755); err != nil {
		return 0, false, err
	}

	metas, err := e.store.ListPosts(false)
	if err != nil {
		return 0, false, err
	}

	written := 0
	for _, meta := range metas {
		post, err := e.store.GetPost(meta.ID)
		if err != nil {
			return written, false, fmt.Errorf("load post %s: %w", meta.ID, err)
		}
		doc, err := marshalPost(post)
		if err != nil {
			return written, false, err
		}
		path := filepath.Join(postsDir, post.ID+".md")
		if err := os.WriteFile(path, doc, 0o644); err != nil {
			return written, false, err
		}
		written++
	}

	about, err := e.store.GetAbout()
	if errors.Is(err, store.ErrNotFound) {
		return written, false, nil
	}
	if err != nil {
		return written, false, err
	}

	doc, err := marshalAbout(about)
	if err != nil {
		return written, false, err
	}
	if err := os.WriteFile(filepath.Join(dir, "about.md"), doc, 0o644); err != nil {
		return written, false, err
	}
	return written, true, nil
}

// Import reads a previously exported tree back into the store. Records
// keep their ids, slugs and timestamps; existing rows with the same id
// are overwritten. It returns the number of posts imported.
func (e *Exporter) Import(dir string) (int, error) {
	postsDir := filepath.Join(dir, postsSubdir)
	entries, err := os.ReadDir(postsDir)
	if err != nil && !os.IsNotExist(err) {
		return 0, err
	}

	imported := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		path := filepath.Join(postsDir, entry.Name())
		if err := e.importPost(path, strings.TrimSuffix(entry.Name(), ".md")); err != nil {
			return imported, fmt.Errorf("import %s: %w", entry.Name(), err)
		}
		imported++
	}

	aboutPath := filepath.Join(dir, "about.md")
	raw, err := os.ReadFile(aboutPath)
	if os.IsNotExist(err) {
		return imported, nil
	}
	if err != nil {
		return imported, err
	}

	var env aboutEnvelope
	body, err := frontmatter.Parse(bytes.NewReader(raw), &env)
	if err != nil {
		return imported, fmt.Errorf("import about.md: %w", err)
	}
	updatedAt, err := parseStamp(env.UpdatedAt)
	if err != nil {
		updatedAt = time.Now().UTC()
	}
	if _, err := e.store.PutAbout(strings.Trim(string(body), "\n"), updatedAt); err != nil {
		return imported, fmt.Errorf("import about.md: %w", err)
	}
	return imported, nil
}

func (e *Exporter) importPost(path, id string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var env postEnvelope
	body, err := frontmatter.Parse(bytes.NewReader(raw), &env)
	if err != nil {
		return err
	}

	post, err := envelopeToPost(id, env, body)
	if err != nil {
		return err
	}

	existing, err := e.store.GetPost(id)
	if errors.Is(err, store.ErrNotFound) {
		return e.store.InsertPost(post)
	}
	if err != nil {
		return err
	}
	post.CreatedAt = pickStamp(post.CreatedAt, existing.CreatedAt)
	return e.store.SavePost(post)
}

func envelopeToPost(id string, env postEnvelope, body []byte) (*store.Post, error) {
	if strings.TrimSpace(env.Title) == "" {
		return nil, errors.New("missing title")
	}
	if env.Status != store.StatusDraft && env.Status != store.StatusPublished {
		return nil, fmt.Errorf("invalid status %q", env.Status)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, errors.New("missing content")
	}

	date, err := parseStamp(env.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date: %w", err)
	}
	createdAt, err := parseStamp(env.CreatedAt)
	if err != nil {
		createdAt = date
	}
	updatedAt, err := parseStamp(env.UpdatedAt)
	if err != nil {
		updatedAt = date
	}

	slug := strings.TrimSpace(env.Slug)
	if slug == "" {
		slug = id
	}

	return &store.Post{
		ID:        id,
		Title:     env.Title,
		Slug:      slug,
		Content:   strings.Trim(string(body), "\n"),
		Date:      date,
		Status:    env.Status,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}

func marshalPost(post *store.Post) ([]byte, error) {
	env := postEnvelope{
		Title:     post.Title,
		Slug:      post.Slug,
		Date:      post.Date.UTC().Format(time.RFC3339Nano),
		Status:    post.Status,
		CreatedAt: post.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: post.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	return marshalDoc(env, post.Content)
}

func marshalAbout(page *store.AboutPage) ([]byte, error) {
	env := aboutEnvelope{
		UpdatedAt: page.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	return marshalDoc(env, page.Content)
}

func marshalDoc(env any, body string) ([]byte, error) {
	meta, err := yaml.Marshal(env)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString("---\n")
	buf.Write(meta)
	buf.WriteString("---\n\n")
	buf.WriteString(body)
	if !strings.HasSuffix(body, "\n") {
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

func parseStamp(value string) (time.Time, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return time.Time{}, errors.New("empty timestamp")
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, v); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", v)
}

func pickStamp(parsed, existing time.Time) time.Time {
	if parsed.IsZero() {
		return existing
	}
	return parsed
}

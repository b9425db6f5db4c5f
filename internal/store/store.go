// Package store owns the persisted representation of posts and the
// About page. It is the single source of truth: callers never cache
// records across calls.
package store

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	// ErrNotFound reports that no record matches the given id or slug.
	ErrNotFound = errors.New("record not found")
	// ErrSlugTaken reports a slug uniqueness violation on insert or save.
	ErrSlugTaken = errors.New("slug already in use")
)

// Store is an explicitly constructed handle over the sqlite database.
// Open it once at process start and Close it at shutdown.
type Store struct {
	db *gorm.DB
}

// Open connects to the sqlite database at path and runs migrations.
// An empty path falls back to blog.db in the working directory.
func Open(path string) (*Store, error) {
	p := strings.TrimSpace(path)
	if p == "" {
		p = "blog.db"
	}

	if err := ensureParentDir(p); err != nil {
		return nil, err
	}

	gdb, err := gorm.Open(sqlite.Open(p), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	if err := gdb.AutoMigrate(&Post{}, &AboutPage{}); err != nil {
		return nil, err
	}

	return &Store{db: gdb}, nil
}

// Close releases the underlying database connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func ensureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if strings.HasPrefix(path, "file:") {
		return nil
	}

	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return errors.New("database path parent is not a directory")
		}
		return nil
	}

	if os.IsNotExist(err) {
		return os.MkdirAll(dir, 0o755)
	}

	return err
}

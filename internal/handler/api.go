package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/camthoi/blog/internal/config"
	"github.com/camthoi/blog/internal/service"
	"github.com/camthoi/blog/internal/store"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	posts      *service.PostService
	about      *service.AboutService
	exporter   Exporter
	contentDir string
	adminUser  string
	adminHash  []byte
}

// Exporter writes the store's content out as frontmatter markdown files.
type Exporter interface {
	Export(dir string) (posts int, about bool, err error)
}

// NewAPI constructs a handler set over an open store. The configured
// admin password is hashed once here; the plaintext is not retained.
func NewAPI(st *store.Store, cfg config.AppConfig, exporter Exporter) (*API, error) {
	api := &API{
		posts:      service.NewPostService(st),
		about:      service.NewAboutService(st),
		exporter:   exporter,
		contentDir: cfg.ContentDir,
		adminUser:  cfg.AdminUsername,
	}

	if cfg.AdminPassword != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		api.adminHash = hash
	}

	return api, nil
}

func respondData(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

func respondError(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"success": false, "error": msg})
}

// respondServiceError maps core errors onto the response envelope:
// validation rejections become 400, missing resources 404, and anything
// else is logged and surfaced as an opaque 500.
func respondServiceError(c *gin.Context, err error, fallback string) {
	switch {
	case service.IsValidation(err):
		respondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrPostNotFound):
		respondError(c, http.StatusNotFound, "Post not found")
	case errors.Is(err, service.ErrAboutNotFound):
		respondError(c, http.StatusNotFound, "About page not found")
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg(fallback)
		respondError(c, http.StatusInternalServerError, fallback)
	}
}

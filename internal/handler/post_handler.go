package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/camthoi/blog/internal/service"
)

// ListPosts returns every post, drafts included, for the admin list view.
func (a *API) ListPosts(c *gin.Context) {
	metas, err := a.posts.List(false)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch posts")
		return
	}
	respondData(c, http.StatusOK, metas)
}

// GetPost returns a single post by id.
func (a *API) GetPost(c *gin.Context) {
	post, err := a.posts.Get(c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to fetch post")
		return
	}
	respondData(c, http.StatusOK, post)
}

// CreatePost creates a new post from the request body.
func (a *API) CreatePost(c *gin.Context) {
	var body struct {
		Title   string `json:"title"`
		Content string `json:"content"`
		Status  string `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	post, err := a.posts.Create(service.CreateInput{
		Title:   body.Title,
		Content: body.Content,
		Status:  body.Status,
	})
	if err != nil {
		respondServiceError(c, err, "Failed to create post")
		return
	}
	respondData(c, http.StatusCreated, post)
}

// UpdatePost applies a partial update. Absent fields stay untouched;
// unknown fields are rejected outright.
func (a *API) UpdatePost(c *gin.Context) {
	var body struct {
		Title   *string `json:"title"`
		Content *string `json:"content"`
		Status  *string `json:"status"`
	}
	decoder := json.NewDecoder(c.Request.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&body); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	post, err := a.posts.Update(c.Param("id"), service.UpdateInput{
		Title:   body.Title,
		Content: body.Content,
		Status:  body.Status,
	})
	if err != nil {
		respondServiceError(c, err, "Failed to update post")
		return
	}
	respondData(c, http.StatusOK, post)
}

// DeletePost removes a post permanently.
func (a *API) DeletePost(c *gin.Context) {
	if err := a.posts.Delete(c.Param("id")); err != nil {
		respondServiceError(c, err, "Failed to delete post")
		return
	}
	respondData(c, http.StatusOK, nil)
}

// ExportContent writes all posts and the About page out as frontmatter
// markdown files for backup or migration.
func (a *API) ExportContent(c *gin.Context) {
	count, about, err := a.exporter.Export(a.contentDir)
	if err != nil {
		log.Error().Err(err).Str("dir", a.contentDir).Msg("content export failed")
		respondError(c, http.StatusInternalServerError, "Failed to export content")
		return
	}
	respondData(c, http.StatusOK, gin.H{"posts": count, "about": about, "dir": a.contentDir})
}

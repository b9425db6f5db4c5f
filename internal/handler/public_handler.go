package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/camthoi/blog/internal/markdown"
	"github.com/camthoi/blog/internal/store"
)

// ListPublishedPosts returns published post summaries for the public
// home page, newest first.
func (a *API) ListPublishedPosts(c *gin.Context) {
	metas, err := a.posts.List(true)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch posts")
		return
	}

	payload := make([]gin.H, 0, len(metas))
	for _, meta := range metas {
		payload = append(payload, gin.H{
			"id":          meta.ID,
			"title":       meta.Title,
			"slug":        meta.Slug,
			"date":        meta.Date,
			"displayDate": markdown.FormatTime(meta.Date),
		})
	}
	respondData(c, http.StatusOK, payload)
}

// ShowPost returns a published post by slug with its content rendered
// to sanitized HTML. Drafts are invisible here.
func (a *API) ShowPost(c *gin.Context) {
	post, err := a.posts.GetBySlug(c.Param("slug"))
	if err != nil {
		respondServiceError(c, err, "Failed to fetch post")
		return
	}
	if post.Status != store.StatusPublished {
		respondError(c, http.StatusNotFound, "Post not found")
		return
	}

	html, err := markdown.Render(post.Content)
	if err != nil {
		respondServiceError(c, err, "Failed to render post")
		return
	}

	respondData(c, http.StatusOK, gin.H{
		"id":          post.ID,
		"title":       post.Title,
		"slug":        post.Slug,
		"date":        post.Date,
		"displayDate": markdown.FormatTime(post.Date),
		"html":        html,
	})
}

// ShowAbout returns the About page rendered to sanitized HTML.
func (a *API) ShowAbout(c *gin.Context) {
	page, err := a.about.Get()
	if err != nil {
		respondServiceError(c, err, "Failed to fetch about page")
		return
	}

	html, err := markdown.Render(page.Content)
	if err != nil {
		respondServiceError(c, err, "Failed to render about page")
		return
	}

	respondData(c, http.StatusOK, gin.H{
		"html":      html,
		"updatedAt": page.UpdatedAt,
	})
}

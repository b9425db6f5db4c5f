package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetAboutSource returns the raw About markdown for the admin editor.
func (a *API) GetAboutSource(c *gin.Context) {
	page, err := a.about.Get()
	if err != nil {
		respondServiceError(c, err, "Failed to fetch about page")
		return
	}
	respondData(c, http.StatusOK, page)
}

// UpdateAbout overwrites the About page content.
func (a *API) UpdateAbout(c *gin.Context) {
	var body struct {
		Content string `json:"content"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	page, err := a.about.Save(body.Content)
	if err != nil {
		respondServiceError(c, err, "Failed to update about page")
		return
	}
	respondData(c, http.StatusOK, page)
}

// Package router wires the gin engine, session middleware and routes.
package router

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"github.com/camthoi/blog/internal/handler"
)

const sessionName = "camthoi_session"

// Setup configures the gin engine with the public and admin route groups.
func Setup(api *handler.API, sessionSecret string) *gin.Engine {
	r := gin.Default()

	store := cookie.NewStore([]byte(sessionSecret))
	r.Use(sessions.Sessions(sessionName, store))

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// Public read-only routes.
	public := r.Group("/api")
	{
		public.GET("/posts", api.ListPublishedPosts)
		public.GET("/posts/:slug", api.ShowPost)
		public.GET("/about", api.ShowAbout)
	}

	// Admin routes behind the session gate.
	admin := r.Group("/admin")
	{
		admin.POST("/login", api.Login)
		admin.POST("/logout", api.Logout)

		auth := admin.Group("/api")
		auth.Use(handler.AuthRequired())
		{
			auth.GET("/posts", api.ListPosts)
			auth.GET("/posts/:id", api.GetPost)
			auth.POST("/posts", api.CreatePost)
			auth.PATCH("/posts/:id", api.UpdatePost)
			auth.DELETE("/posts/:id", api.DeletePost)

			auth.GET("/about", api.GetAboutSource)
			auth.PUT("/about", api.UpdateAbout)

			auth.POST("/export", api.ExportContent)
		}
	}

	return r
}

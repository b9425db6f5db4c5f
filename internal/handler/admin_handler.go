package handler

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

const sessionUserKey = "admin_user"

// Login checks the submitted credentials against the configured admin
// account and opens a session on success.
func (a *API) Login(c *gin.Context) {
	var creds struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&creds); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if a.adminUser == "" || len(a.adminHash) == 0 {
		respondError(c, http.StatusServiceUnavailable, "Admin login is not configured")
		return
	}

	userMatch := subtle.ConstantTimeCompare([]byte(creds.Username), []byte(a.adminUser)) == 1
	passErr := bcrypt.CompareHashAndPassword(a.adminHash, []byte(creds.Password))
	if !userMatch || passErr != nil {
		respondError(c, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	session := sessions.Default(c)
	session.Set(sessionUserKey, creds.Username)
	if err := session.Save(); err != nil {
		log.Error().Err(err).Msg("failed to save session")
		respondError(c, http.StatusInternalServerError, "Failed to start session")
		return
	}

	respondData(c, http.StatusOK, gin.H{"username": creds.Username})
}

// Logout clears the admin session.
func (a *API) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		log.Error().Err(err).Msg("failed to clear session")
	}
	respondData(c, http.StatusOK, nil)
}

// AuthRequired gates admin routes on an open session. Handlers behind
// it trust the gate completely and perform no authorization of their own.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		if session.Get(sessionUserKey) == nil {
			respondError(c, http.StatusUnauthorized, "Unauthorized")
			c.Abort()
			return
		}
		c.Next()
	}
}

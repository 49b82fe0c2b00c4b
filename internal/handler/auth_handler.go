package handler

import (
	"net/http"
	"strings"

	"github.com/devfolio/internal/service"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

const (
	sessionKeyEmail = "admin_email"
	sessionKeyName  = "admin_name"
	sessionKeyRole  = "role"
)

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login verifies the configured admin credentials and opens a session.
func (a *API) Login(c *gin.Context) {
	var req loginRequest
	if !bindJSON(c, &req, "email and password are required") {
		return
	}

	if !strings.EqualFold(strings.TrimSpace(req.Email), a.cfg.AdminEmail) {
		respondError(c, http.StatusUnauthorized, "invalid credentials")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(a.cfg.AdminPasswordHash), []byte(req.Password)); err != nil {
		respondError(c, http.StatusUnauthorized, "invalid credentials")
		return
	}

	session := sessions.Default(c)
	session.Set(sessionKeyEmail, a.cfg.AdminEmail)
	session.Set(sessionKeyName, a.cfg.AdminName)
	session.Set(sessionKeyRole, service.RoleAdmin)
	if err := session.Save(); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to save session")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "logged in"})
}

// Logout clears the session.
func (a *API) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to clear session")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// AuthRequired rejects requests without an admin session.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		if role, ok := session.Get(sessionKeyRole).(string); !ok || role != service.RoleAdmin {
			respondError(c, http.StatusUnauthorized, "sign in required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// currentActor reads the actor identity from the session. Requests
// outside an admin session yield a roleless actor, which every mutating
// service call rejects.
func currentActor(c *gin.Context) service.Actor {
	session := sessions.Default(c)
	actor := service.Actor{}
	if email, ok := session.Get(sessionKeyEmail).(string); ok {
		actor.Email = email
	}
	if name, ok := session.Get(sessionKeyName).(string); ok {
		actor.Name = name
	}
	if role, ok := session.Get(sessionKeyRole).(string); ok {
		actor.Role = role
	}
	return actor
}

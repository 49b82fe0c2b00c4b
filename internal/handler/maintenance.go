package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// maintenanceAllowedPaths stay reachable while the gate is up.
var maintenanceAllowedPaths = []string{
	"/maintenance",
	"/api/health",
	"/static",
	"/favicon.ico",
}

const maintenanceBypassCookie = "maintenance_bypass"

// Maintenance gates the whole site behind a 503 when maintenance mode is
// on, either via config or via the stored site setting. Allowlisted
// paths, allowlisted IPs, and holders of the bypass token pass through;
// the token is remembered in a cookie for 24 hours.
func (a *API) Maintenance() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !a.cfg.MaintenanceMode && !a.settings.MaintenanceEnabled() {
			c.Next()
			return
		}

		path := c.Request.URL.Path
		for _, allowed := range maintenanceAllowedPaths {
			if strings.HasPrefix(path, allowed) {
				c.Next()
				return
			}
		}

		clientIP := c.ClientIP()
		for _, ip := range a.cfg.MaintenanceAllowedIPs {
			if ip == clientIP {
				c.Next()
				return
			}
		}

		if token := a.cfg.MaintenanceBypassToken; token != "" {
			candidate := c.Query("bypass")
			if candidate == "" {
				candidate, _ = c.Cookie(maintenanceBypassCookie)
			}
			if candidate == token {
				c.SetCookie(maintenanceBypassCookie, token, 24*60*60, "/", "", false, true)
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{
			"error": "site is under maintenance",
		})
	}
}

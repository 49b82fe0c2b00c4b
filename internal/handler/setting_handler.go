package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetSettings returns every stored site setting.
func (a *API) GetSettings(c *gin.Context) {
	settings, err := a.settings.All()
	if err != nil {
		respondServiceError(c, err, "failed to load settings")
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

// UpdateSettings upserts the posted settings in one transaction.
func (a *API) UpdateSettings(c *gin.Context) {
	var values map[string]json.RawMessage
	if !bindJSON(c, &values, "invalid settings payload") {
		return
	}

	if err := a.settings.Set(currentActor(c), values); err != nil {
		respondServiceError(c, err, "failed to save settings")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "settings saved"})
}

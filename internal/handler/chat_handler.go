package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type chatRequest struct {
	Message string `json:"message" binding:"required"`
}

// ChatReply forwards a visitor message to the chat assistant and returns
// its answer.
func (a *API) ChatReply(c *gin.Context) {
	var req chatRequest
	if !bindJSON(c, &req, "a message is required") {
		return
	}

	reply, err := a.chat.Reply(c.Request.Context(), req.Message)
	if err != nil {
		respondServiceError(c, err, "chat is temporarily unavailable")
		return
	}
	c.JSON(http.StatusOK, gin.H{"reply": reply})
}

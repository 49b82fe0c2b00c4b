package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

// UploadMedia accepts a multipart image upload and stores it through the
// configured media backend. The form carries the file under "file" and an
// optional "folder" field.
func (a *API) UploadMedia(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		respondError(c, http.StatusBadRequest, "a file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, http.StatusBadRequest, "could not read uploaded file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respondError(c, http.StatusBadRequest, "could not read uploaded file")
		return
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = http.DetectContentType(data)
	}

	result, err := a.media.Upload(c.Request.Context(), currentActor(c), data, c.PostForm("folder"), mimeType)
	if err != nil {
		respondServiceError(c, err, "failed to store upload")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"url":    result.URL,
		"width":  result.Width,
		"height": result.Height,
	})
}

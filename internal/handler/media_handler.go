package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"entrega/internal/service"
)

// MediaHandler handles image upload endpoints.
type MediaHandler struct {
	mediaService service.MediaService
}

// NewMediaHandler creates a new MediaHandler.
func NewMediaHandler(mediaService service.MediaService) *MediaHandler {
	return &MediaHandler{mediaService: mediaService}
}

// Upload handles POST /api/v1/admin/media
func (h *MediaHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "file form field is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "could not read uploaded file")
		return
	}
	defer file.Close()

	output, err := h.mediaService.UploadImage(c.Request.Context(), service.UploadImageInput{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Body:        file,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, output)
}

// Delete handles DELETE /api/v1/admin/media
func (h *MediaHandler) Delete(c *gin.Context) {
	key := c.Query("key")
	if key == "" {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "key query parameter is required")
		return
	}

	if err := h.mediaService.DeleteImage(c.Request.Context(), key); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "image deleted"})
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"entrega/internal/service"
)

// OfferHandler handles promotional offer endpoints.
type OfferHandler struct {
	offerService service.OfferService
}

// NewOfferHandler creates a new OfferHandler.
func NewOfferHandler(offerService service.OfferService) *OfferHandler {
	return &OfferHandler{offerService: offerService}
}

// Feed handles GET /api/v1/offers
func (h *OfferHandler) Feed(c *gin.Context) {
	feed, err := h.offerService.Feed(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, feed)
}

// Get handles GET /api/v1/offers/:id
func (h *OfferHandler) Get(c *gin.Context) {
	offerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid offer id")
		return
	}

	offer, err := h.offerService.GetOffer(c.Request.Context(), offerID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, offer)
}

// Create handles POST /api/v1/admin/offers
func (h *OfferHandler) Create(c *gin.Context) {
	var input service.OfferInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	offer, err := h.offerService.CreateOffer(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, offer)
}

// Update handles PUT /api/v1/admin/offers/:id
func (h *OfferHandler) Update(c *gin.Context) {
	offerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid offer id")
		return
	}

	var input service.OfferInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	offer, err := h.offerService.UpdateOffer(c.Request.Context(), offerID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, offer)
}

// Delete handles DELETE /api/v1/admin/offers/:id
func (h *OfferHandler) Delete(c *gin.Context) {
	offerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid offer id")
		return
	}

	if err := h.offerService.DeleteOffer(c.Request.Context(), offerID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "offer deleted"})
}

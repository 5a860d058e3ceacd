package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"entrega/internal/domain"
	"entrega/internal/service"
)

// BusinessHandler handles business catalogue and discovery endpoints.
type BusinessHandler struct {
	businessService service.BusinessService
}

// NewBusinessHandler creates a new BusinessHandler.
func NewBusinessHandler(businessService service.BusinessService) *BusinessHandler {
	return &BusinessHandler{businessService: businessService}
}

// Home handles GET /api/v1/home
func (h *BusinessHandler) Home(c *gin.Context) {
	feed, err := h.businessService.Home(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, feed)
}

// List handles GET /api/v1/businesses
func (h *BusinessHandler) List(c *gin.Context) {
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	businesses, total, err := h.businessService.ListBusinesses(c.Request.Context(), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, businesses, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// Get handles GET /api/v1/businesses/:id
func (h *BusinessHandler) Get(c *gin.Context) {
	businessID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid business id")
		return
	}

	detail, err := h.businessService.GetBusinessDetail(c.Request.Context(), businessID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, detail)
}

// ListCategories handles GET /api/v1/businesses/categories
func (h *BusinessHandler) ListCategories(c *gin.Context) {
	categories, err := h.businessService.ListCategories(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, categories)
}

// Create handles POST /api/v1/admin/businesses
func (h *BusinessHandler) Create(c *gin.Context) {
	var input service.BusinessInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	business, err := h.businessService.CreateBusiness(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, business)
}

// Update handles PUT /api/v1/admin/businesses/:id
func (h *BusinessHandler) Update(c *gin.Context) {
	businessID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid business id")
		return
	}

	var input service.BusinessInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	business, err := h.businessService.UpdateBusiness(c.Request.Context(), businessID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, business)
}

// Delete handles DELETE /api/v1/admin/businesses/:id
func (h *BusinessHandler) Delete(c *gin.Context) {
	businessID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid business id")
		return
	}

	if err := h.businessService.DeleteBusiness(c.Request.Context(), businessID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "business deleted"})
}

// ReplaceHours handles PUT /api/v1/admin/businesses/:id/hours
func (h *BusinessHandler) ReplaceHours(c *gin.Context) {
	businessID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid business id")
		return
	}

	var hours []domain.BusinessHours
	if err := c.ShouldBindJSON(&hours); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	if err := h.businessService.ReplaceHours(c.Request.Context(), businessID, hours); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "hours updated"})
}

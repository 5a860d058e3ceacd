package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"entrega/internal/domain"
	"entrega/internal/service"
)

// MenuHandler handles product browsing and menu management endpoints.
type MenuHandler struct {
	menuService service.MenuService
}

// NewMenuHandler creates a new MenuHandler.
func NewMenuHandler(menuService service.MenuService) *MenuHandler {
	return &MenuHandler{menuService: menuService}
}

// ListProducts handles GET /api/v1/products
func (h *MenuHandler) ListProducts(c *gin.Context) {
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	items, total, err := h.menuService.ListProducts(c.Request.Context(), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, items, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetProduct handles GET /api/v1/products/:id
func (h *MenuHandler) GetProduct(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid product id")
		return
	}

	detail, err := h.menuService.GetProduct(c.Request.Context(), itemID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, detail)
}

// CreateSection handles POST /api/v1/admin/businesses/:id/sections
func (h *MenuHandler) CreateSection(c *gin.Context) {
	businessID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid business id")
		return
	}

	var input service.MenuSectionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	section, err := h.menuService.CreateSection(c.Request.Context(), businessID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, section)
}

// CreateItem handles POST /api/v1/admin/businesses/:id/items
func (h *MenuHandler) CreateItem(c *gin.Context) {
	businessID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid business id")
		return
	}

	var input service.FoodItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	item, err := h.menuService.CreateItem(c.Request.Context(), businessID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, item)
}

// UpdateItem handles PUT /api/v1/admin/items/:id
func (h *MenuHandler) UpdateItem(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid item id")
		return
	}

	var input service.FoodItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	item, err := h.menuService.UpdateItem(c.Request.Context(), itemID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, item)
}

// DeleteItem handles DELETE /api/v1/admin/items/:id
func (h *MenuHandler) DeleteItem(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid item id")
		return
	}

	if err := h.menuService.DeleteItem(c.Request.Context(), itemID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "item deleted"})
}

// ReplaceVariants handles PUT /api/v1/admin/items/:id/variants
func (h *MenuHandler) ReplaceVariants(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid item id")
		return
	}

	var variants []domain.FoodVariant
	if err := c.ShouldBindJSON(&variants); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	if err := h.menuService.ReplaceVariants(c.Request.Context(), itemID, variants); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "variants updated"})
}

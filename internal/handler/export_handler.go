package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"entrega/internal/export"
)

// ExportHandler handles back-office export endpoints.
type ExportHandler struct {
	exporter *export.CatalogueExporter
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(exporter *export.CatalogueExporter) *ExportHandler {
	return &ExportHandler{exporter: exporter}
}

// CatalogueXLSX handles GET /api/v1/admin/export/catalogue
func (h *ExportHandler) CatalogueXLSX(c *gin.Context) {
	f, err := h.exporter.Build(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	defer f.Close()

	filename := fmt.Sprintf("catalogue-%s.xlsx", time.Now().UTC().Format("20060102-150405"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := f.Write(c.Writer); err != nil {
		c.Status(http.StatusInternalServerError)
	}
}

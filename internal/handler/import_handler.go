package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/remark-assist-api/internal/service"
	appErrors "github.com/noah-isme/remark-assist-api/pkg/errors"
	"github.com/noah-isme/remark-assist-api/pkg/response"
)

// ImportHandler exposes roster workbook uploads.
type ImportHandler struct {
	imports *service.ImportService
	maxSize int64
}

// NewImportHandler constructs ImportHandler.
func NewImportHandler(imports *service.ImportService, maxSize int64) *ImportHandler {
	return &ImportHandler{imports: imports, maxSize: maxSize}
}

// Import godoc
// @Summary Import a student roster from an Excel workbook
// @Tags Imports
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Workbook (.xlsx)"
// @Param subject formData string true "Subject name"
// @Success 200 {object} response.Envelope
// @Router /imports [post]
func (h *ImportHandler) Import(c *gin.Context) {
	subject := strings.TrimSpace(c.PostForm("subject"))
	if subject == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "subject is required"))
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "file is required"))
		return
	}
	if h.maxSize > 0 && header.Size > h.maxSize {
		response.Error(c, appErrors.Clone(appErrors.ErrPayloadTooLarge, ""))
		return
	}

	f, err := header.Open()
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "unable to open uploaded file"))
		return
	}
	defer f.Close()

	result, err := h.imports.Import(c.Request.Context(), f, subject)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, map[string]interface{}{"students": len(result.Records)})
}

package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/remark-assist-api/internal/service"
	appErrors "github.com/noah-isme/remark-assist-api/pkg/errors"
	"github.com/noah-isme/remark-assist-api/pkg/response"
)

// ExportHandler exposes remark list and template bank downloads.
type ExportHandler struct {
	exports *service.ExportService
}

// NewExportHandler constructs ExportHandler.
func NewExportHandler(exports *service.ExportService) *ExportHandler {
	return &ExportHandler{exports: exports}
}

// Remarks godoc
// @Summary Export the remark list as xlsx, csv or pdf
// @Tags Exports
// @Accept json
// @Produce application/octet-stream
// @Param format query string false "Export format (xlsx, csv, pdf)"
// @Param payload body service.ExportRemarksRequest true "Roster to export"
// @Success 200 {file} binary
// @Router /exports/remarks [post]
func (h *ExportHandler) Remarks(c *gin.Context) {
	var req service.ExportRemarksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	file, err := h.exports.Remarks(req.Records, c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}
	serveFile(c, file)
}

// Bank godoc
// @Summary Export the template bank as xlsx, csv or pdf
// @Tags Exports
// @Accept json
// @Produce application/octet-stream
// @Param format query string false "Export format (xlsx, csv, pdf)"
// @Param payload body service.ExportBankRequest true "Template bank to export"
// @Success 200 {file} binary
// @Router /exports/bank [post]
func (h *ExportHandler) Bank(c *gin.Context) {
	var req service.ExportBankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	file, err := h.exports.Bank(req.Entries, c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}
	serveFile(c, file)
}

func serveFile(c *gin.Context, file *service.ExportFile) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Name))
	c.Data(http.StatusOK, file.ContentType, file.Data)
}

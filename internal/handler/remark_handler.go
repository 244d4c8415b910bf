package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/remark-assist-api/internal/service"
	appErrors "github.com/noah-isme/remark-assist-api/pkg/errors"
	"github.com/noah-isme/remark-assist-api/pkg/response"
)

// RemarkHandler exposes the remark processing endpoints.
type RemarkHandler struct {
	remarks *service.RemarkService
	bank    *service.BankService
}

// NewRemarkHandler constructs RemarkHandler.
func NewRemarkHandler(remarks *service.RemarkService, bank *service.BankService) *RemarkHandler {
	return &RemarkHandler{remarks: remarks, bank: bank}
}

// Process godoc
// @Summary Assign remark codes and autofill remark texts for a roster
// @Tags Remarks
// @Accept json
// @Produce json
// @Param payload body service.ProcessRemarksRequest true "Roster and template bank"
// @Success 200 {object} response.Envelope
// @Router /remarks/process [post]
func (h *RemarkHandler) Process(c *gin.Context) {
	var req service.ProcessRemarksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	records, err := h.remarks.Autofill(req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, records, map[string]interface{}{"students": len(records)})
}

// Generate godoc
// @Summary Generate individualised remark texts for a roster
// @Tags Remarks
// @Accept json
// @Produce json
// @Param payload body service.GenerateRemarksRequest true "Roster and class context"
// @Success 200 {object} response.Envelope
// @Router /remarks/generate [post]
func (h *RemarkHandler) Generate(c *gin.Context) {
	var req service.GenerateRemarksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	records, err := h.bank.GenerateStudentRemarks(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, records, map[string]interface{}{"students": len(records)})
}

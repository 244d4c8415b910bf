package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/remark-assist-api/internal/service"
	appErrors "github.com/noah-isme/remark-assist-api/pkg/errors"
	"github.com/noah-isme/remark-assist-api/pkg/response"
)

// BankHandler exposes template bank generation.
type BankHandler struct {
	bank *service.BankService
}

// NewBankHandler constructs BankHandler.
func NewBankHandler(bank *service.BankService) *BankHandler {
	return &BankHandler{bank: bank}
}

// Generate godoc
// @Summary Generate a 34-template remark bank for a subject
// @Tags Bank
// @Accept json
// @Produce json
// @Param payload body service.GenerateBankRequest true "Class context"
// @Success 200 {object} response.Envelope
// @Router /bank/generate [post]
func (h *BankHandler) Generate(c *gin.Context) {
	var req service.GenerateBankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	bank, err := h.bank.GenerateBank(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, bank.Entries, map[string]interface{}{"templates": bank.Size()})
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/remark-assist-api/internal/models"
	"github.com/noah-isme/remark-assist-api/internal/service"
	appErrors "github.com/noah-isme/remark-assist-api/pkg/errors"
	"github.com/noah-isme/remark-assist-api/pkg/response"
)

// CreateSessionRequest opens a new working session.
type CreateSessionRequest struct {
	Subject  string `json:"subject" binding:"required"`
	Grade    string `json:"grade"`
	Semester string `json:"semester"`
}

// UpdateSessionRequest replaces the session's bank and roster.
type UpdateSessionRequest struct {
	Bank    []models.TemplateBankEntry `json:"bank"`
	Records []models.StudentRecord     `json:"records"`
}

// SessionHandler exposes in-memory working sessions.
type SessionHandler struct {
	sessions *service.SessionService
}

// NewSessionHandler constructs SessionHandler.
func NewSessionHandler(sessions *service.SessionService) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// Create godoc
// @Summary Open a working session
// @Tags Sessions
// @Accept json
// @Produce json
// @Param payload body handler.CreateSessionRequest true "Class context"
// @Success 201 {object} response.Envelope
// @Router /sessions [post]
func (h *SessionHandler) Create(c *gin.Context) {
	var req CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	session := h.sessions.Create(req.Subject, req.Grade, req.Semester)
	response.Created(c, session)
}

// Get godoc
// @Summary Get a working session
// @Tags Sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.Envelope
// @Router /sessions/{id} [get]
func (h *SessionHandler) Get(c *gin.Context) {
	session, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, session)
}

// Update godoc
// @Summary Replace a session's bank and roster
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param payload body handler.UpdateSessionRequest true "Bank and roster"
// @Success 200 {object} response.Envelope
// @Router /sessions/{id} [put]
func (h *SessionHandler) Update(c *gin.Context) {
	var req UpdateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	session, err := h.sessions.Update(c.Param("id"), req.Bank, req.Records)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, session)
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/remark-assist-api/internal/models"
	"github.com/noah-isme/remark-assist-api/pkg/response"
)

// SubjectHandler exposes the fixed classroom vocabulary.
type SubjectHandler struct{}

// NewSubjectHandler constructs SubjectHandler.
func NewSubjectHandler() *SubjectHandler {
	return &SubjectHandler{}
}

// List godoc
// @Summary List subjects, grades and semesters
// @Tags Subjects
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /subjects [get]
func (h *SubjectHandler) List(c *gin.Context) {
	response.JSON(c, http.StatusOK, gin.H{
		"subjects":  models.Subjects(),
		"grades":    models.Grades(),
		"semesters": models.Semesters(),
	})
}

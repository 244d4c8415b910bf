package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubjectHandlerList(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewSubjectHandler()

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/subjects", nil)

	handler.List(c)

	assert.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data struct {
			Subjects  []map[string]string `json:"subjects"`
			Grades    []string            `json:"grades"`
			Semesters []string            `json:"semesters"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Len(t, envelope.Data.Subjects, 13)
	assert.Len(t, envelope.Data.Grades, 5)
	assert.Len(t, envelope.Data.Semesters, 2)
}

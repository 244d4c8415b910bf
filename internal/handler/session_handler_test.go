package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/remark-assist-api/internal/models"
	"github.com/noah-isme/remark-assist-api/internal/service"
)

func TestSessionHandlerCreateAndGet(t *testing.T) {
	gin.SetMode(gin.TestMode)
	sessions := service.NewSessionService(nil)
	handler := NewSessionHandler(sessions)

	rec := postJSON(t, handler.Create, "/sessions", CreateSessionRequest{Subject: "Toán", Grade: "Khối 3", Semester: "Học kỳ 1"})
	assert.Equal(t, http.StatusCreated, rec.Code)

	var envelope struct {
		Data models.Session `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.NotEmpty(t, envelope.Data.ID)

	rec = httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/sessions/"+envelope.Data.ID, nil)
	c.Params = gin.Params{{Key: "id", Value: envelope.Data.ID}}

	handler.Get(c)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSessionHandlerCreateRequiresSubject(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewSessionHandler(service.NewSessionService(nil))

	rec := postJSON(t, handler.Create, "/sessions", gin.H{"grade": "Khối 3"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSessionHandlerGetUnknownID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewSessionHandler(service.NewSessionService(nil))

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/sessions/unknown", nil)
	c.Params = gin.Params{{Key: "id", Value: "unknown"}}

	handler.Get(c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSessionHandlerUpdate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	sessions := service.NewSessionService(nil)
	handler := NewSessionHandler(sessions)

	created := sessions.Create("Toán", "Khối 3", "Học kỳ 1")

	payload := UpdateSessionRequest{
		Bank:    []models.TemplateBankEntry{{ID: "1", Level: "T", Score: 9, Text: "mẫu"}},
		Records: []models.StudentRecord{{SequenceNumber: 1, FullName: "A"}},
	}
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPut, "/sessions/"+created.ID, bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: created.ID}}

	handler.Update(c)

	assert.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data models.Session `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Len(t, envelope.Data.Records, 1)
	assert.Len(t, envelope.Data.Bank, 1)
}

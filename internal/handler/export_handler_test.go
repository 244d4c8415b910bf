package handler

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/noah-isme/remark-assist-api/internal/models"
	"github.com/noah-isme/remark-assist-api/internal/service"
)

func TestExportHandlerRemarks(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewExportHandler(service.NewExportService(nil))

	rec := postJSON(t, handler.Remarks, "/exports/remarks?format=csv", service.ExportRemarksRequest{
		Records: []models.StudentRecord{
			{SequenceNumber: 1, FullName: "Nguyễn Văn A", Score: 9, Level: "T", RemarkCode: "T9T1", RemarkText: "Em học tốt."},
		},
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "NhanXet.csv")
	assert.Contains(t, rec.Body.String(), "Nguyễn Văn A")
}

func TestExportHandlerBankUnsupportedFormat(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewExportHandler(service.NewExportService(nil))

	rec := postJSON(t, handler.Bank, "/exports/bank?format=docx", service.ExportBankRequest{
		Entries: []models.TemplateBankEntry{{ID: "1", Level: "T", Score: 9, Text: "mẫu"}},
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

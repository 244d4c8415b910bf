package service

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/noah-isme/remark-assist-api/internal/models"
)

func sampleRecords() []models.StudentRecord {
	return []models.StudentRecord{
		{SequenceNumber: 1, FullName: "Nguyễn Văn A", Score: 9, Level: "T", RemarkCode: "T9T1", RemarkText: "Em học tốt."},
		{SequenceNumber: 2, FullName: "Trần Thị B", Level: "H", RemarkCode: "TH1", RemarkText: "Em hoàn thành yêu cầu."},
	}
}

func TestExportRemarksXLSX(t *testing.T) {
	svc := NewExportService(nil)

	file, err := svc.Remarks(sampleRecords(), FormatXLSX)

	require.NoError(t, err)
	assert.Equal(t, "NhanXet.xlsx", file.Name)

	f, err := excelize.OpenReader(bytes.NewReader(file.Data))
	require.NoError(t, err)
	defer f.Close()

	name, err := f.GetCellValue("NhanXet", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Nguyễn Văn A", name)

	level, err := f.GetCellValue("NhanXet", "C2")
	require.NoError(t, err)
	assert.Equal(t, "HTT", level)

	score, err := f.GetCellValue("NhanXet", "D3")
	require.NoError(t, err)
	assert.Equal(t, "", score)
}

func TestExportRemarksDefaultsToXLSX(t *testing.T) {
	svc := NewExportService(nil)

	file, err := svc.Remarks(sampleRecords(), "")

	require.NoError(t, err)
	assert.Equal(t, "NhanXet.xlsx", file.Name)
}

func TestExportRemarksCSV(t *testing.T) {
	svc := NewExportService(nil)

	file, err := svc.Remarks(sampleRecords(), FormatCSV)

	require.NoError(t, err)
	assert.Equal(t, "text/csv", file.ContentType)
	assert.Contains(t, string(file.Data), "Nguyễn Văn A")
	assert.Contains(t, string(file.Data), "T9T1")
}

func TestExportRemarksPDF(t *testing.T) {
	svc := NewExportService(nil)

	file, err := svc.Remarks(sampleRecords(), FormatPDF)

	require.NoError(t, err)
	assert.Equal(t, "application/pdf", file.ContentType)
	assert.True(t, bytes.HasPrefix(file.Data, []byte("%PDF")))
}

func TestExportBankXLSX(t *testing.T) {
	svc := NewExportService(nil)
	entries := []models.TemplateBankEntry{
		{ID: "1", Level: "T", Score: 9, Text: "Em học tốt, trình bày rõ ràng."},
	}

	file, err := svc.Bank(entries, FormatXLSX)

	require.NoError(t, err)
	assert.Equal(t, "NganHangMau.xlsx", file.Name)

	f, err := excelize.OpenReader(bytes.NewReader(file.Data))
	require.NoError(t, err)
	defer f.Close()

	text, err := f.GetCellValue("NganHangMau", "E2")
	require.NoError(t, err)
	assert.Equal(t, "Em học tốt, trình bày rõ ràng.", text)
}

func TestExportUnsupportedFormat(t *testing.T) {
	svc := NewExportService(nil)

	_, err := svc.Remarks(sampleRecords(), "docx")

	assert.Error(t, err)
}

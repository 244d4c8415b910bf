package service

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/noah-isme/remark-assist-api/internal/models"
	"github.com/noah-isme/remark-assist-api/pkg/export"
	appErrors "github.com/noah-isme/remark-assist-api/pkg/errors"
)

// Export formats supported for remark and bank downloads.
const (
	FormatXLSX = "xlsx"
	FormatCSV  = "csv"
	FormatPDF  = "pdf"
)

const (
	remarksSheetName = "NhanXet"
	bankSheetName    = "NganHangMau"
)

// ExportRemarksRequest carries the roster to render.
type ExportRemarksRequest struct {
	Records []models.StudentRecord `json:"records"`
}

// ExportBankRequest carries the template bank to render.
type ExportBankRequest struct {
	Entries []models.TemplateBankEntry `json:"entries"`
}

// ExportFile is a rendered download.
type ExportFile struct {
	Name        string
	ContentType string
	Data        []byte
}

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type pdfRenderer interface {
	Render(data export.Dataset, title string) ([]byte, error)
}

// ExportService renders remark lists and template banks into downloads.
type ExportService struct {
	csv    csvRenderer
	pdf    pdfRenderer
	logger *zap.Logger
}

// NewExportService constructs an ExportService.
func NewExportService(logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{csv: export.NewCSVExporter(), pdf: export.NewPDFExporter(), logger: logger}
}

// Remarks renders the student remark list in the requested format.
func (s *ExportService) Remarks(records []models.StudentRecord, format string) (*ExportFile, error) {
	return s.render(remarksDataset(records), remarksSheetName, "Danh sách nhận xét", format)
}

// Bank renders the template bank in the requested format.
func (s *ExportService) Bank(entries []models.TemplateBankEntry, format string) (*ExportFile, error) {
	return s.render(bankDataset(entries), bankSheetName, "Ngân hàng 34 mẫu", format)
}

func (s *ExportService) render(data export.Dataset, sheet, title, format string) (*ExportFile, error) {
	switch format {
	case "", FormatXLSX:
		payload, err := renderXLSX(data, sheet)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render workbook")
		}
		return &ExportFile{
			Name:        sheet + ".xlsx",
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Data:        payload,
		}, nil
	case FormatCSV:
		payload, err := s.csv.Render(data)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv")
		}
		return &ExportFile{Name: sheet + ".csv", ContentType: "text/csv", Data: payload}, nil
	case FormatPDF:
		payload, err := s.pdf.Render(data, title)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf")
		}
		return &ExportFile{Name: sheet + ".pdf", ContentType: "application/pdf", Data: payload}, nil
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export format %q", format))
	}
}

func renderXLSX(data export.Dataset, sheet string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}
	for i, header := range data.Headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
	}
	for r, row := range data.Rows {
		for c, header := range data.Headers {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, row[header]); err != nil {
				return nil, err
			}
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func remarksDataset(records []models.StudentRecord) export.Dataset {
	headers := []string{"STT", "Họ tên", "Mức đạt được", "Điểm KTĐK", "Mã NX", "Nội dung nhận xét"}
	rows := make([]map[string]string, 0, len(records))
	for _, record := range records {
		score := ""
		if record.Score > 0 {
			score = strconv.FormatFloat(record.Score, 'f', -1, 64)
		}
		rows = append(rows, map[string]string{
			"STT":               strconv.Itoa(record.SequenceNumber),
			"Họ tên":            record.FullName,
			"Mức đạt được":      models.DisplayLevel(record.Level),
			"Điểm KTĐK":         score,
			"Mã NX":             record.RemarkCode,
			"Nội dung nhận xét": record.RemarkText,
		})
	}
	return export.Dataset{Headers: headers, Rows: rows}
}

func bankDataset(entries []models.TemplateBankEntry) export.Dataset {
	headers := []string{"STT", "Mã nhận xét", "Mức đạt", "Điểm số", "Nội dung nhận xét phổ thông"}
	rows := make([]map[string]string, 0, len(entries))
	for i, entry := range entries {
		id := entry.ID
		if id == "" {
			id = strconv.Itoa(i + 1)
		}
		rows = append(rows, map[string]string{
			"STT":                         strconv.Itoa(i + 1),
			"Mã nhận xét":                 id,
			"Mức đạt":                     entry.Level,
			"Điểm số":                     strconv.Itoa(entry.Score),
			"Nội dung nhận xét phổ thông": entry.Text,
		})
	}
	return export.Dataset{Headers: headers, Rows: rows}
}

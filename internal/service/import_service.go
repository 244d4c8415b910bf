package service

import (
	"context"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/noah-isme/remark-assist-api/internal/models"
	"github.com/noah-isme/remark-assist-api/internal/spreadsheet"
	appErrors "github.com/noah-isme/remark-assist-api/pkg/errors"
)

// ImportConfig tunes roster imports.
type ImportConfig struct {
	HeaderScanRows int
}

// ImportResult describes one successful roster import.
type ImportResult struct {
	Sheet     string                 `json:"sheet"`
	HeaderRow int                    `json:"header_row"`
	Records   []models.StudentRecord `json:"records"`
}

// ImportService reads student rosters out of uploaded workbooks.
type ImportService struct {
	cfg     ImportConfig
	metrics *MetricsService
	logger  *zap.Logger
}

// NewImportService constructs ImportService.
func NewImportService(cfg ImportConfig, metrics *MetricsService, logger *zap.Logger) *ImportService {
	if cfg.HeaderScanRows <= 0 {
		cfg.HeaderScanRows = spreadsheet.DefaultHeaderScanRows
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ImportService{cfg: cfg, metrics: metrics, logger: logger}
}

// Import parses the workbook, picks the sheet matching the subject and
// extracts the student records. A workbook where no sheet carries a
// recognisable name column is the one fatal input error of the pipeline;
// malformed individual cells degrade to defaults instead.
func (s *ImportService) Import(ctx context.Context, r io.Reader, subject string) (*ImportResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "unable to read workbook")
	}
	defer f.Close()

	sheet := spreadsheet.PickSheet(f, subject)
	if sheet == "" {
		return nil, appErrors.Clone(appErrors.ErrEmptyWorkbook, "")
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to read sheet rows")
	}
	loc := spreadsheet.LocateHeader(rows, s.cfg.HeaderScanRows)
	if !loc.Found() {
		return nil, appErrors.Clone(appErrors.ErrHeaderNotFound, fmt.Sprintf("name column not found in sheet %q", sheet))
	}
	records := spreadsheet.ExtractRecords(rows, loc)

	s.metrics.AddImportedStudents(len(records))
	s.logger.Info("roster imported",
		zap.String("sheet", sheet),
		zap.Int("header_row", loc.Row),
		zap.Int("students", len(records)))
	return &ImportResult{Sheet: sheet, HeaderRow: loc.Row, Records: records}, nil
}

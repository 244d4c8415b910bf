package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/remark-assist-api/internal/llm"
	"github.com/noah-isme/remark-assist-api/internal/models"
	appErrors "github.com/noah-isme/remark-assist-api/pkg/errors"
)

type remarkGenerator interface {
	GenerateBank(ctx context.Context, subject, grade, semester string) ([]llm.BankEntry, error)
	GenerateRemarks(ctx context.Context, subject, grade, semester string, students []llm.StudentPrompt) ([]llm.StudentRemark, error)
}

// GenerateBankRequest asks the collaborator for a fresh template bank.
type GenerateBankRequest struct {
	Subject  string `json:"subject" validate:"required"`
	Grade    string `json:"grade" validate:"required"`
	Semester string `json:"semester" validate:"required"`
}

// GenerateRemarksRequest asks the collaborator to write remarks for a roster.
type GenerateRemarksRequest struct {
	Subject  string                 `json:"subject" validate:"required"`
	Grade    string                 `json:"grade" validate:"required"`
	Semester string                 `json:"semester" validate:"required"`
	Records  []models.StudentRecord `json:"records" validate:"required"`
}

// BankService drives the generation collaborator and normalises whatever it
// returns. Collaborator failures never propagate: the caller sees an empty
// bank or an unchanged roster, and the failure is logged and counted.
type BankService struct {
	generator remarkGenerator
	metrics   *MetricsService
	timeout   time.Duration
	validator *validator.Validate
	logger    *zap.Logger
}

// NewBankService constructs BankService. A nil generator is allowed; every
// generation call then degrades to its empty result.
func NewBankService(generator remarkGenerator, metrics *MetricsService, timeout time.Duration, validate *validator.Validate, logger *zap.Logger) *BankService {
	if timeout <= 0 {
		timeout = time.Minute
	}
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BankService{generator: generator, metrics: metrics, timeout: timeout, validator: validate, logger: logger}
}

// GenerateBank requests the 34-template bank. Entries whose score cannot be
// read as a number are dropped; the bank constructor drops entries with bad
// levels or empty texts. The requested distribution is not enforced, the
// service consumes whatever came back.
func (s *BankService) GenerateBank(ctx context.Context, req GenerateBankRequest) (*models.TemplateBank, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid bank payload")
	}
	if s.generator == nil {
		return models.NewTemplateBank(nil), nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	raw, err := s.generator.GenerateBank(ctx, req.Subject, req.Grade, req.Semester)
	s.metrics.ObserveGeneration("bank", err != nil, time.Since(start))
	if err != nil {
		s.logger.Warn("bank generation failed", zap.String("subject", req.Subject), zap.Error(err))
		return models.NewTemplateBank(nil), nil
	}

	entries := make([]models.TemplateBankEntry, 0, len(raw))
	for _, item := range raw {
		score, err := item.Score.Int64()
		if err != nil {
			f, ferr := item.Score.Float64()
			if ferr != nil {
				continue
			}
			score = int64(f)
		}
		entries = append(entries, models.TemplateBankEntry{Level: item.Level, Score: int(score), Text: item.Text})
	}
	bank := models.NewTemplateBank(entries)
	s.logger.Info("bank generated", zap.String("subject", req.Subject), zap.Int("templates", bank.Size()))
	return bank, nil
}

// GenerateStudentRemarks asks the collaborator for one remark per student and
// merges the result back by ordinal. Ordinals missing from the response keep
// whatever text the record already had; a failed call returns the roster
// unchanged.
func (s *BankService) GenerateStudentRemarks(ctx context.Context, req GenerateRemarksRequest) ([]models.StudentRecord, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid remarks payload")
	}
	if s.generator == nil || len(req.Records) == 0 {
		return req.Records, nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	students := make([]llm.StudentPrompt, 0, len(req.Records))
	for _, record := range req.Records {
		students = append(students, llm.StudentPrompt{Ordinal: record.SequenceNumber, Level: record.Level, Score: record.Score})
	}

	start := time.Now()
	remarks, err := s.generator.GenerateRemarks(ctx, req.Subject, req.Grade, req.Semester, students)
	s.metrics.ObserveGeneration("remarks", err != nil, time.Since(start))
	if err != nil {
		s.logger.Warn("remark generation failed", zap.String("subject", req.Subject), zap.Error(err))
		return req.Records, nil
	}

	byOrdinal := make(map[int]string, len(remarks))
	for _, remark := range remarks {
		if remark.Text != "" {
			byOrdinal[remark.Ordinal] = remark.Text
		}
	}
	out := make([]models.StudentRecord, 0, len(req.Records))
	for _, record := range req.Records {
		if text, ok := byOrdinal[record.SequenceNumber]; ok {
			record.RemarkText = text
		}
		out = append(out, record)
	}
	return out, nil
}

package service

import (
	"fmt"
	"math"
	"strconv"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/remark-assist-api/internal/models"
	appErrors "github.com/noah-isme/remark-assist-api/pkg/errors"
)

// ProcessRemarksRequest carries one autofill pass over a roster.
type ProcessRemarksRequest struct {
	Subject string                     `json:"subject" validate:"required"`
	Records []models.StudentRecord     `json:"records" validate:"required"`
	Bank    []models.TemplateBankEntry `json:"bank"`
}

// RemarkService assigns remark codes and suggested remark texts to student
// records.
type RemarkService struct {
	validator *validator.Validate
	logger    *zap.Logger
}

// NewRemarkService constructs RemarkService.
func NewRemarkService(validate *validator.Validate, logger *zap.Logger) *RemarkService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RemarkService{validator: validate, logger: logger}
}

// Autofill validates the payload, builds the template bank and runs one
// processing pass.
func (s *RemarkService) Autofill(req ProcessRemarksRequest) ([]models.StudentRecord, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid autofill payload")
	}
	bank := models.NewTemplateBank(req.Bank)
	return s.Process(req.Records, bank, req.Subject), nil
}

// Process enriches each record with a re-derived level, a remark code unique
// within its score/level group and a suggested remark text picked round-robin
// from the best-matching bank group. The score is the single source of truth
// for leveling: any level the record carried in is overwritten. Counters are
// local to one call, so feeding the output back in leaves filled codes and
// texts untouched.
func (s *RemarkService) Process(records []models.StudentRecord, bank *models.TemplateBank, subject string) []models.StudentRecord {
	if bank == nil {
		bank = models.NewTemplateBank(nil)
	}
	abbr := models.SubjectAbbreviation(subject)
	counters := make(map[string]int)

	out := make([]models.StudentRecord, 0, len(records))
	for _, record := range records {
		score := 0
		if record.Score > 0 {
			score = int(math.RoundToEven(record.Score))
		}
		level := models.LevelFromScore(float64(score))
		key := fmt.Sprintf("%d_%s", score, level)
		counters[key]++
		ordinal := counters[key]

		code := record.RemarkCode
		if code == "" {
			scoreStr := ""
			if score > 0 {
				scoreStr = strconv.Itoa(score)
			}
			code = fmt.Sprintf("%s%s%s%d", abbr, scoreStr, level, ordinal)
		}

		group := bank.ByLevel(level)
		if score > 0 {
			if byScore := bank.ByScore(score); len(byScore) > 0 {
				group = byScore
			}
		}

		text := record.RemarkText
		if text == "" && len(group) > 0 {
			text = group[(ordinal-1)%len(group)].Text
		}

		record.Level = level
		record.RemarkCode = code
		record.RemarkText = text
		out = append(out, record)
	}
	return out
}

package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/remark-assist-api/internal/llm"
	"github.com/noah-isme/remark-assist-api/internal/models"
)

type fakeGenerator struct {
	bank       []llm.BankEntry
	bankErr    error
	remarks    []llm.StudentRemark
	remarksErr error
	students   []llm.StudentPrompt
}

func (f *fakeGenerator) GenerateBank(context.Context, string, string, string) ([]llm.BankEntry, error) {
	return f.bank, f.bankErr
}

func (f *fakeGenerator) GenerateRemarks(_ context.Context, _, _, _ string, students []llm.StudentPrompt) ([]llm.StudentRemark, error) {
	f.students = students
	return f.remarks, f.remarksErr
}

func TestGenerateBankValidatesPayload(t *testing.T) {
	svc := NewBankService(&fakeGenerator{}, nil, time.Second, nil, nil)

	_, err := svc.GenerateBank(context.Background(), GenerateBankRequest{Subject: "Toán"})

	assert.Error(t, err)
}

func TestGenerateBankNilGeneratorReturnsEmptyBank(t *testing.T) {
	svc := NewBankService(nil, nil, time.Second, nil, nil)

	bank, err := svc.GenerateBank(context.Background(), GenerateBankRequest{Subject: "Toán", Grade: "Khối 3", Semester: "Học kỳ 1"})

	require.NoError(t, err)
	assert.Equal(t, 0, bank.Size())
}

func TestGenerateBankSuccess(t *testing.T) {
	gen := &fakeGenerator{bank: []llm.BankEntry{
		{Level: "T", Score: json.Number("9"), Text: "Em học tốt."},
		{Level: "H", Score: json.Number("6.0"), Text: "Em hoàn thành yêu cầu."},
		{Level: "T", Score: json.Number("chín"), Text: "điểm không đọc được"},
		{Level: "T", Score: json.Number("10"), Text: ""},
	}}
	svc := NewBankService(gen, nil, time.Second, nil, nil)

	bank, err := svc.GenerateBank(context.Background(), GenerateBankRequest{Subject: "Toán", Grade: "Khối 3", Semester: "Học kỳ 1"})

	require.NoError(t, err)
	assert.Equal(t, 2, bank.Size())
	assert.Len(t, bank.ByScore(9), 1)
	assert.Len(t, bank.ByScore(6), 1)
}

func TestGenerateBankFailureDegradesToEmptyBank(t *testing.T) {
	gen := &fakeGenerator{bankErr: errors.New("quota exceeded")}
	svc := NewBankService(gen, nil, time.Second, nil, nil)

	bank, err := svc.GenerateBank(context.Background(), GenerateBankRequest{Subject: "Toán", Grade: "Khối 3", Semester: "Học kỳ 1"})

	require.NoError(t, err)
	assert.Equal(t, 0, bank.Size())
}

func TestGenerateStudentRemarksMergesByOrdinal(t *testing.T) {
	gen := &fakeGenerator{remarks: []llm.StudentRemark{
		{Ordinal: 2, Text: "Em tiến bộ rõ rệt."},
		{Ordinal: 3, Text: ""},
	}}
	svc := NewBankService(gen, nil, time.Second, nil, nil)
	records := []models.StudentRecord{
		{SequenceNumber: 1, FullName: "A", Level: "T", Score: 9, RemarkText: "giữ nguyên"},
		{SequenceNumber: 2, FullName: "B", Level: "H", Score: 6},
		{SequenceNumber: 3, FullName: "C", Level: "C", Score: 3, RemarkText: "cũ"},
	}

	out, err := svc.GenerateStudentRemarks(context.Background(), GenerateRemarksRequest{
		Subject: "Toán", Grade: "Khối 3", Semester: "Học kỳ 1", Records: records,
	})

	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, "giữ nguyên", out[0].RemarkText)
	assert.Equal(t, "Em tiến bộ rõ rệt.", out[1].RemarkText)
	assert.Equal(t, "cũ", out[2].RemarkText)
	require.Len(t, gen.students, 3)
	assert.Equal(t, 2, gen.students[1].Ordinal)
}

func TestGenerateStudentRemarksFailureReturnsRosterUnchanged(t *testing.T) {
	gen := &fakeGenerator{remarksErr: errors.New("timeout")}
	svc := NewBankService(gen, nil, time.Second, nil, nil)
	records := []models.StudentRecord{{SequenceNumber: 1, FullName: "A", Level: "T", Score: 9}}

	out, err := svc.GenerateStudentRemarks(context.Background(), GenerateRemarksRequest{
		Subject: "Toán", Grade: "Khối 3", Semester: "Học kỳ 1", Records: records,
	})

	require.NoError(t, err)
	assert.Equal(t, records, out)
}

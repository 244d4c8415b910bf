package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/remark-assist-api/internal/models"
)

func TestSessionLifecycle(t *testing.T) {
	svc := NewSessionService(nil)

	created := svc.Create("Toán", "Khối 3", "Học kỳ 1")
	require.NotEmpty(t, created.ID)

	got, err := svc.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Toán", got.Subject)
	assert.Empty(t, got.Records)

	bank := []models.TemplateBankEntry{{ID: "1", Level: "T", Score: 9, Text: "mẫu"}}
	records := []models.StudentRecord{{SequenceNumber: 1, FullName: "A"}}
	updated, err := svc.Update(created.ID, bank, records)
	require.NoError(t, err)
	assert.Len(t, updated.Bank, 1)
	assert.Len(t, updated.Records, 1)
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))

	got, err = svc.Get(created.ID)
	require.NoError(t, err)
	assert.Len(t, got.Records, 1)
}

func TestSessionNotFound(t *testing.T) {
	svc := NewSessionService(nil)

	_, err := svc.Get("missing")
	assert.Error(t, err)

	_, err = svc.Update("missing", nil, nil)
	assert.Error(t, err)
}

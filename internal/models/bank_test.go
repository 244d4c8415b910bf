package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTemplateBankGroupsEntries(t *testing.T) {
	bank := NewTemplateBank([]TemplateBankEntry{
		{Level: LevelGood, Score: 10, Text: "Em nắm vững kiến thức."},
		{Level: LevelGood, Score: 9, Text: "Em học tốt, trình bày rõ ràng."},
		{Level: LevelSatisfactory, Score: 6, Text: "Em hoàn thành yêu cầu môn học."},
	})

	assert.Equal(t, 3, bank.Size())
	assert.Len(t, bank.ByLevel(LevelGood), 2)
	assert.Len(t, bank.ByLevel(LevelSatisfactory), 1)
	assert.Len(t, bank.ByScore(9), 1)
	assert.Empty(t, bank.ByScore(5))
}

func TestNewTemplateBankDropsMalformedEntries(t *testing.T) {
	bank := NewTemplateBank([]TemplateBankEntry{
		{Level: LevelGood, Score: 9, Text: ""},
		{Level: "X", Score: 9, Text: "mức không hợp lệ"},
		{Level: LevelNeedsWork, Score: 3, Text: "Em cần cố gắng hơn."},
	})

	assert.Equal(t, 1, bank.Size())
	assert.Len(t, bank.ByLevel(LevelNeedsWork), 1)
}

func TestNewTemplateBankAssignsSequentialIDs(t *testing.T) {
	bank := NewTemplateBank([]TemplateBankEntry{
		{Level: LevelGood, Score: 9, Text: "a"},
		{ID: "keep", Level: LevelGood, Score: 9, Text: "b"},
		{Level: LevelGood, Score: 8, Text: "c"},
	})

	assert.Equal(t, "1", bank.Entries[0].ID)
	assert.Equal(t, "keep", bank.Entries[1].ID)
	assert.Equal(t, "3", bank.Entries[2].ID)
}

func TestNewTemplateBankNilInput(t *testing.T) {
	bank := NewTemplateBank(nil)
	assert.Equal(t, 0, bank.Size())
	assert.Empty(t, bank.ByLevel(LevelGood))
}

package models

import "strconv"

// TemplateBankEntry is one curated remark template, tagged with the level
// and score it was authored for. The ID is display-only.
type TemplateBankEntry struct {
	ID    string `json:"id"`
	Level string `json:"level"`
	Score int    `json:"score"`
	Text  string `json:"text"`
}

// TemplateBank holds the curated templates with the two groupings the
// autofill engine selects from. It is immutable once built.
type TemplateBank struct {
	Entries []TemplateBankEntry

	byScore map[int][]TemplateBankEntry
	byLevel map[string][]TemplateBankEntry
}

// NewTemplateBank keeps well-formed entries, assigns sequential IDs to
// entries that lack one and computes the score and level groupings once.
// Entries with an empty text or an unknown level tag are dropped.
func NewTemplateBank(entries []TemplateBankEntry) *TemplateBank {
	bank := &TemplateBank{
		byScore: make(map[int][]TemplateBankEntry),
		byLevel: make(map[string][]TemplateBankEntry),
	}
	for _, entry := range entries {
		if entry.Text == "" {
			continue
		}
		switch entry.Level {
		case LevelGood, LevelSatisfactory, LevelNeedsWork:
		default:
			continue
		}
		if entry.ID == "" {
			entry.ID = strconv.Itoa(len(bank.Entries) + 1)
		}
		bank.Entries = append(bank.Entries, entry)
		bank.byScore[entry.Score] = append(bank.byScore[entry.Score], entry)
		bank.byLevel[entry.Level] = append(bank.byLevel[entry.Level], entry)
	}
	return bank
}

// ByScore returns the templates authored for an exact score.
func (b *TemplateBank) ByScore(score int) []TemplateBankEntry {
	return b.byScore[score]
}

// ByLevel returns the templates tagged with a level.
func (b *TemplateBank) ByLevel(level string) []TemplateBankEntry {
	return b.byLevel[level]
}

// Size reports how many templates survived construction.
func (b *TemplateBank) Size() int {
	return len(b.Entries)
}

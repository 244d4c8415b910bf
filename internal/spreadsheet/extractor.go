package spreadsheet

import (
	"strconv"
	"strings"

	"github.com/noah-isme/remark-assist-api/internal/models"
)

// ExtractRecords walks the rows below the header and normalises each into a
// StudentRecord. Rows whose trimmed name is one character or shorter are
// treated as blanks or separators and skipped without consuming a sequence
// number. Malformed level or score cells degrade to defaults; they never
// abort the extraction.
func ExtractRecords(rows [][]string, loc HeaderLocation) []models.StudentRecord {
	records := make([]models.StudentRecord, 0, len(rows))
	seq := 0
	for r := loc.Row + 1; r < len(rows); r++ {
		name := strings.TrimSpace(cellAt(rows[r], loc.NameCol))
		if len([]rune(name)) <= 1 {
			continue
		}
		level := ""
		if loc.LevelCol >= 0 {
			level = ParseLevel(cellAt(rows[r], loc.LevelCol))
		}
		score := 0.0
		if loc.ScoreCol >= 0 {
			score = parseScore(cellAt(rows[r], loc.ScoreCol))
		}
		seq++
		records = append(records, models.StudentRecord{
			SequenceNumber: seq,
			FullName:       name,
			Score:          score,
			Level:          level,
		})
	}
	return records
}

// ParseLevel classifies a raw level cell into T, H or C. The checks run in
// priority order so "HOÀN THÀNH TỐT" lands on T before the plain H rule can
// see it. Unrecognised text yields an empty level; the autofill engine later
// derives one from the score.
func ParseLevel(raw string) string {
	v := strings.ToUpper(strings.TrimSpace(raw))
	switch {
	case strings.Contains(v, "TỐT") || v == "T" || strings.Contains(v, "HTT"):
		return models.LevelGood
	case strings.Contains(v, "CHƯA") || v == "C" || strings.Contains(v, "CHT"):
		return models.LevelNeedsWork
	case strings.Contains(v, "HOÀN THÀNH") || v == "H" || v == "HT":
		return models.LevelSatisfactory
	default:
		return ""
	}
}

func parseScore(raw string) float64 {
	v := strings.TrimSpace(strings.ReplaceAll(raw, ",", "."))
	if v == "" {
		return 0
	}
	score, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0
	}
	return score
}

func cellAt(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return row[col]
}

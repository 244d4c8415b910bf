package models

import "math"

// Performance levels used on Thông tư 27 elementary report cards.
const (
	LevelGood         = "T" // Hoàn thành tốt
	LevelSatisfactory = "H" // Hoàn thành
	LevelNeedsWork    = "C" // Chưa hoàn thành
)

// StudentRecord is one roster row flowing through the remark pipeline.
type StudentRecord struct {
	SequenceNumber int     `json:"sequence_number"`
	FullName       string  `json:"full_name"`
	Score          float64 `json:"score"`
	Level          string  `json:"level"`
	RemarkCode     string  `json:"remark_code"`
	RemarkText     string  `json:"remark_text"`
}

// LevelFromScore maps a numeric exam score to a performance level. The score
// is rounded before thresholding; a zero or missing score defaults to
// Satisfactory rather than Needs-improvement.
func LevelFromScore(score float64) string {
	s := 0
	if score > 0 {
		s = int(math.RoundToEven(score))
	}
	switch {
	case s >= 8:
		return LevelGood
	case s >= 5:
		return LevelSatisfactory
	case s >= 1:
		return LevelNeedsWork
	default:
		return LevelSatisfactory
	}
}

// DisplayLevel renders a level tag the way printed report sheets spell it.
func DisplayLevel(level string) string {
	switch level {
	case LevelGood:
		return "HTT"
	case LevelSatisfactory:
		return "HT"
	default:
		return "CHT"
	}
}

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFromScore(t *testing.T) {
	cases := []struct {
		name  string
		score float64
		want  string
	}{
		{"zero defaults to satisfactory", 0, LevelSatisfactory},
		{"negative defaults to satisfactory", -3, LevelSatisfactory},
		{"one is needs work", 1, LevelNeedsWork},
		{"four is needs work", 4, LevelNeedsWork},
		{"five is satisfactory", 5, LevelSatisfactory},
		{"seven is satisfactory", 7, LevelSatisfactory},
		{"eight is good", 8, LevelGood},
		{"ten is good", 10, LevelGood},
		{"7.6 rounds up to good", 7.6, LevelGood},
		{"8.5 rounds to even eight", 8.5, LevelGood},
		{"7.5 rounds to even eight", 7.5, LevelGood},
		{"4.5 rounds to even four", 4.5, LevelNeedsWork},
		{"0.4 rounds to zero", 0.4, LevelSatisfactory},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, LevelFromScore(tc.score))
		})
	}
}

func TestDisplayLevel(t *testing.T) {
	assert.Equal(t, "HTT", DisplayLevel(LevelGood))
	assert.Equal(t, "HT", DisplayLevel(LevelSatisfactory))
	assert.Equal(t, "CHT", DisplayLevel(LevelNeedsWork))
	assert.Equal(t, "CHT", DisplayLevel(""))
}

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"podskazka/internal/hint"
)

func TestLimit(t *testing.T) {
	words := []string{"букет", "крест", "треск"}
	tests := []struct {
		name  string
		limit int
		want  []string
	}{
		{"zero keeps all", 0, words},
		{"negative keeps all", -1, words},
		{"above length keeps all", 10, words},
		{"cuts", 2, []string{"букет", "крест"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Limit(words, tt.limit))
		})
	}
}

func TestNewReport(t *testing.T) {
	g := hint.NewGame()
	require.NoError(t, g.ImportFeedback([]hint.Feedback{{Word: "ветка", Codes: "BYYYB"}}))
	words := g.Suggestions(hint.NewSource("букет", "крест", "треск", "выкуп"))

	r := NewReport(g, words, 1)
	assert.Equal(t, "^[а-яё][^е][^т][^к][а-яё]$", r.Pattern)
	assert.Equal(t, []string{"е", "к", "т"}, r.Present)
	assert.Equal(t, []string{"а", "в"}, r.Absent)
	assert.Equal(t, 3, r.Total)
	assert.Equal(t, []string{"букет"}, r.Words)
}

func TestNewReport_EmptyGame(t *testing.T) {
	r := NewReport(hint.NewGame(), []string{}, 0)
	assert.NotNil(t, r.Present)
	assert.NotNil(t, r.Absent)
	assert.Empty(t, r.Words)
	assert.Equal(t, 0, r.Total)
}

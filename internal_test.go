package tablefmt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPadWordLeftAligned(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		word  string
		width int
		want  string
	}{
		"narrow word":      {word: "a", width: 3, want: " a   "},
		"widest word":      {word: "ccc", width: 3, want: " ccc "},
		"single character": {word: "d", width: 2, want: " d  "},
		"empty word":       {word: "", width: 2, want: "    "},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, padWord(tt.word, tt.width, false))
		})
	}
}

func TestPadWordCentered(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		word  string
		width int
		want  string
	}{
		"even leftover": {word: "a", width: 3, want: "  a  "},
		"odd leftover":  {word: "ab", width: 3, want: " ab  "},
		"widest word":   {word: "ccc", width: 3, want: " ccc "},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, padWord(tt.word, tt.width, true))
		})
	}
}

func TestPadWordCenteringIdempotent(t *testing.T) {
	t.Parallel()
	// Re-padding a centered word to the same width reproduces it exactly.
	padded := padWord("ab", 5, true)
	again := padWord(strings.TrimSpace(padded), 5, true)
	assert.Equal(t, padded, again)
}

func TestPadWordNoRoom(t *testing.T) {
	t.Parallel()
	// Words at or beyond the padded width pass through untouched. Render
	// never produces this, but padWord must not panic on it.
	assert.Equal(t, "abcd", padWord("abcd", 2, false))
	assert.Equal(t, "abcdef", padWord("abcdef", 2, true))
}

func TestRule(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "┌─────┬────┐", rule([]int{3, 2}, box.topLeft, box.topTee, box.topRight))
	assert.Equal(t, "├─────┼────┤", rule([]int{3, 2}, box.leftTee, box.cross, box.rightTee))
	assert.Equal(t, "└─────┴────┘", rule([]int{3, 2}, box.bottomLeft, box.bottomTee, box.bottomRight))
}

func TestRuleZeroColumns(t *testing.T) {
	t.Parallel()
	assert.Empty(t, rule(nil, box.topLeft, box.topTee, box.topRight))
}

func TestContentLineZeroColumns(t *testing.T) {
	t.Parallel()
	assert.Empty(t, contentLine(nil, nil, false))
}

func TestColumnWidths(t *testing.T) {
	t.Parallel()
	rows := [][]string{{"a", "bb"}, {"ccc", "d"}}
	assert.Equal(t, []int{3, 2}, columnWidths(2, rows, nil))
	// Labels count toward the column width.
	assert.Equal(t, []int{5, 2}, columnWidths(2, rows, []string{"Label", "Y"}))
}

func TestColumnWidthsRuneCount(t *testing.T) {
	t.Parallel()
	// Width is character count, not byte count or display width.
	assert.Equal(t, []int{5}, columnWidths(1, [][]string{{"héllo"}}, nil))
	assert.Equal(t, []int{2}, columnWidths(1, [][]string{{"你好"}}, nil))
}

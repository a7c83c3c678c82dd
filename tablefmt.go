package tablefmt

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrNoRows     = errors.New("no rows")
	ErrRaggedRows = errors.New("ragged rows")
	ErrLabelCount = errors.New("label count mismatch")
)

// Render formats rows as a bordered table and returns it as a string.
//
// The column count is taken from the first row; every row must match it, and
// labels, when non-nil, must match it too. A nil labels slice renders a table
// without a header. When centered is false, cell content is left-aligned with
// a one-space margin.
//
// Every line of the result ends with a newline except the bottom border.
func Render[T any](rows [][]T, labels []T, centered bool) (string, error) {
	if len(rows) == 0 {
		return "", fmt.Errorf("%w: cannot infer column count", ErrNoRows)
	}
	numCols := len(rows[0])
	for i, row := range rows {
		if len(row) != numCols {
			return "", fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedRows, i, len(row), numCols)
		}
	}
	if labels != nil && len(labels) != numCols {
		return "", fmt.Errorf("%w: got %d labels for %d columns", ErrLabelCount, len(labels), numCols)
	}

	words := make([][]string, len(rows))
	for i, row := range rows {
		words[i] = make([]string, numCols)
		for j, cell := range row {
			words[i][j] = cellString(cell)
		}
	}
	var labelWords []string
	if len(labels) > 0 {
		labelWords = make([]string, numCols)
		for j, label := range labels {
			labelWords[j] = cellString(label)
		}
	}

	widths := columnWidths(numCols, words, labelWords)

	var sb strings.Builder
	sb.WriteString(rule(widths, box.topLeft, box.topTee, box.topRight))
	sb.WriteByte('\n')
	if len(labelWords) > 0 {
		sb.WriteString(contentLine(labelWords, widths, centered))
		sb.WriteByte('\n')
		sb.WriteString(rule(widths, box.leftTee, box.cross, box.rightTee))
		sb.WriteByte('\n')
	}
	for _, row := range words {
		sb.WriteString(contentLine(row, widths, centered))
		sb.WriteByte('\n')
	}
	sb.WriteString(rule(widths, box.bottomLeft, box.bottomTee, box.bottomRight))
	return sb.String(), nil
}

// Write renders rows as a bordered table and writes it to w. The bytes
// written are exactly those [Render] returns.
func Write[T any](w io.Writer, rows [][]T, labels []T, centered bool) error {
	s, err := Render(rows, labels, centered)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s)
	return err
}

func cellString(v any) string {
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%v", v)
}

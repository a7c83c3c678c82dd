package tablefmt

import (
	"strings"
	"unicode/utf8"
)

// extraPadding is added to each column's width so the widest cell still gets
// at least one space of margin on both sides.
const extraPadding = 2

type borderGlyphs struct {
	topLeft, topRight, bottomLeft, bottomRight string
	horizontal, vertical                       string
	topTee, bottomTee, leftTee, rightTee       string
	cross                                      string
}

var box = borderGlyphs{
	topLeft: "┌", topRight: "┐", bottomLeft: "└", bottomRight: "┘",
	horizontal: "─", vertical: "│",
	topTee: "┬", bottomTee: "┴", leftTee: "├", rightTee: "┤",
	cross: "┼",
}

// columnWidths returns the character length of the widest word in each
// column, the label included when labels are present.
func columnWidths(numCols int, rows [][]string, labels []string) []int {
	widths := make([]int, numCols)
	for _, row := range rows {
		for i, word := range row {
			if n := utf8.RuneCountInString(word); n > widths[i] {
				widths[i] = n
			}
		}
	}
	for i, label := range labels {
		if n := utf8.RuneCountInString(label); n > widths[i] {
			widths[i] = n
		}
	}
	return widths
}

// rule composes a horizontal border line. The same composer draws the top
// border (┌ ┬ ┐), the header separator (├ ┼ ┤), and the bottom border
// (└ ┴ ┘). Zero columns compose an empty line.
func rule(widths []int, left, mid, right string) string {
	if len(widths) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(left)
	for i, width := range widths {
		sb.WriteString(strings.Repeat(box.horizontal, width+extraPadding))
		if i < len(widths)-1 {
			sb.WriteString(mid)
		}
	}
	sb.WriteString(right)
	return sb.String()
}

// contentLine composes one row of padded words separated by vertical borders.
// Zero columns compose an empty line.
func contentLine(words []string, widths []int, centered bool) string {
	if len(widths) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(box.vertical)
	for i, width := range widths {
		sb.WriteString(padWord(words[i], width, centered))
		sb.WriteString(box.vertical)
	}
	return sb.String()
}

// padWord pads word with spaces to width+extraPadding characters. Centered
// words split the leftover space evenly, the odd character going to the
// trailing side. Left-aligned words get a fixed extraPadding/2 leading
// margin with the rest trailing.
func padWord(word string, width int, centered bool) string {
	total := width + extraPadding
	pad := total - utf8.RuneCountInString(word)
	if pad <= 0 {
		return word
	}
	left := extraPadding / 2
	if centered {
		left = pad / 2
	}
	return strings.Repeat(" ", left) + word + strings.Repeat(" ", pad-left)
}

// Package tablefmt renders a two-dimensional array of printable values as a
// bordered, aligned text table.
//
// The central entry points are [Render] and [Write], which accept rows,
// optional column labels, and an alignment flag. Rendering is pure string
// formatting: column widths are computed from the data, and the result is a
// multi-line string framed with a fixed set of box-drawing characters
// (┌┬┐├┼┤└┴┘─│). There is no configuration and no state; every call is
// independent and safe to make concurrently.
//
// # Cells
//
// Cell and label values may be of any type with a single-line textual
// representation. Values implementing [fmt.Stringer] render via String();
// everything else renders via fmt.Sprintf("%v", v):
//
//	out, err := tablefmt.Render([][]any{{"apple", 42}, {"pear", 7}}, nil, false)
//
// Alignment counts characters (runes), not terminal display columns, so
// full-width runes occupy one character of width like any other.
//
// # Layout
//
// Each column is as wide as its widest cell (the label included, when labels
// are given) plus two characters of padding. Left-aligned content gets a
// single leading space; centered content splits the leftover space evenly,
// with any odd character placed on the trailing side. When labels are
// supplied, a header line and a separator rule precede the data rows:
//
//	out, err := tablefmt.Render(
//		[][]string{{"a", "bb"}, {"ccc", "d"}},
//		[]string{"X", "Y"},
//		false,
//	)
//	// ┌─────┬────┐
//	// │ X   │ Y  │
//	// ├─────┼────┤
//	// │ a   │ bb │
//	// │ ccc │ d  │
//	// └─────┴────┘
//
// Every line ends with a newline except the bottom border.
//
// # Errors
//
// Input shape is validated up front. The package exports sentinel errors for
// programmatic handling:
//
//   - [ErrNoRows] — rows is empty, so the column count cannot be inferred
//   - [ErrRaggedRows] — a row's length differs from the first row's
//   - [ErrLabelCount] — labels were given but don't match the column count
//
// Failures wrap the sentinel, so errors.Is works on the returned error.
package tablefmt

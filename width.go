package framefmt

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// strWidth measures visible width in decoded-character cells, not
// bytes, so multi-byte labels pad correctly.
func strWidth(s string) int { return runewidth.StringWidth(s) }

// justString pads s to width on the side the justification dictates.
// Strings already at or past width pass through.
func justString(s string, width int, justify Justify) string {
	pad := width - strWidth(s)
	if pad <= 0 {
		return s
	}
	if justify == JustifyLeft {
		return s + strings.Repeat(" ", pad)
	}
	return strings.Repeat(" ", pad) + s
}

// makeFixedWidth pads every string to one uniform visible width:
// max(minimum, longest entry), clamped to maxWidth when maxWidth > 0.
// When the clamp bites and maxWidth > 3, longer strings are truncated
// with a "..." marker. Empty input is a no-op.
func makeFixedWidth(strs []string, justify Justify, minimum, maxWidth int) []string {
	if len(strs) == 0 {
		return strs
	}
	maxLen := minimum
	for _, s := range strs {
		if w := strWidth(s); w > maxLen {
			maxLen = w
		}
	}
	if maxWidth > 0 && maxLen > maxWidth {
		maxLen = maxWidth
	}
	out := make([]string, len(strs))
	for i, s := range strs {
		if maxWidth > 3 && strWidth(s) > maxLen {
			s = runewidth.Truncate(s, maxLen, "...")
		}
		out[i] = justString(s, maxLen, justify)
	}
	return out
}

// adjoin joins string columns side by side, each column left-justified
// to its own widest entry and separated by space blanks. Shorter
// columns are padded with empty entries at the bottom; the last column
// is not right-padded.
func adjoin(space int, lists ...[]string) string {
	if len(lists) == 0 {
		return ""
	}
	nrows := 0
	for _, l := range lists {
		if len(l) > nrows {
			nrows = len(l)
		}
	}
	sep := strings.Repeat(" ", space)
	cols := make([][]string, len(lists))
	for j, l := range lists {
		w := 0
		for _, s := range l {
			if sw := strWidth(s); sw > w {
				w = sw
			}
		}
		col := make([]string, nrows)
		for i := 0; i < nrows; i++ {
			s := ""
			if i < len(l) {
				s = l[i]
			}
			if j < len(lists)-1 {
				s = justString(s, w, JustifyLeft)
			}
			col[i] = s
		}
		cols[j] = col
	}
	lines := make([]string, nrows)
	parts := make([]string, len(cols))
	for i := 0; i < nrows; i++ {
		for j := range cols {
			parts[j] = cols[j][i]
		}
		lines[i] = strings.Join(parts, sep)
	}
	return strings.Join(lines, "\n")
}

package framefmt

import (
	"fmt"
	"io"
	"strings"
)

// Text renders f as an aligned console table. A nil cfg uses the
// engine defaults. Frames with zero rows or zero columns render as the
// short empty-table summary instead of an empty grid.
func Text(f *Frame, cfg *FormatConfig) string {
	if cfg == nil {
		cfg = NewFormatConfig(nil)
	}
	r := &textRenderer{f: f, cfg: cfg}
	return r.render()
}

// WriteText renders f as console text into w.
func WriteText(w io.Writer, f *Frame, cfg *FormatConfig) error {
	_, err := io.WriteString(w, Text(f, cfg))
	return err
}

// emptySummary is the degenerate zero-row or zero-column rendering: a
// short description instead of an empty grid.
func emptySummary(f *Frame) string {
	return fmt.Sprintf("Empty Frame\nColumns: %s\nIndex: %s", f.columns, f.index)
}

type textRenderer struct {
	f   *Frame
	cfg *FormatConfig
}

func (r *textRenderer) render() string {
	if r.f.NumCols() == 0 || r.f.NumRows() == 0 {
		return emptySummary(r.f)
	}
	strcols := r.stringColumns()
	lineWidth := r.cfg.LineWidth
	if lineWidth == AutoLineWidth {
		lineWidth, _ = terminalSize()
	}
	if lineWidth <= 0 {
		return adjoin(1, strcols...)
	}
	if naive := adjoin(1, strcols...); !exceedsWidth(naive, lineWidth) {
		return naive
	}
	return r.joinMultiline(strcols, lineWidth)
}

func exceedsWidth(text string, lineWidth int) bool {
	for _, line := range strings.Split(text, "\n") {
		if strWidth(line) > lineWidth {
			return true
		}
	}
	return false
}

// stringColumns renders the frame to one string column per frame
// column, header rows stacked above values, with the index block first
// when shown.
func (r *textRenderer) stringColumns() [][]string {
	cfg := r.cfg
	strcols := make([][]string, 0, r.f.NumCols()+1)
	if cfg.ShowIndex {
		strcols = append(strcols, r.formattedIndex())
	}
	headers := r.columnHeaders()
	for i, col := range r.f.cols {
		fmtValues := formatValues(col, cfg.formatterFor(i, col.Name()), cfg)
		if !cfg.ShowHeader {
			strcols = append(strcols, fmtValues)
			continue
		}
		cheader := headers[i]
		maxColWidth := cfg.ColSpace
		for _, x := range cheader {
			if w := strWidth(x); w > maxColWidth {
				maxColWidth = w
			}
		}
		fmtValues = makeFixedWidth(fmtValues, cfg.Justify, maxColWidth, cfg.MaxColWidth)
		maxLen := maxColWidth
		for _, x := range fmtValues {
			if w := strWidth(x); w > maxLen {
				maxLen = w
			}
		}
		stacked := make([]string, 0, len(cheader)+len(fmtValues))
		for _, x := range cheader {
			stacked = append(stacked, justString(x, maxLen, cfg.Justify))
		}
		stacked = append(stacked, fmtValues...)
		strcols = append(strcols, stacked)
	}
	return strcols
}

// columnHeaders renders each column's header rows: one per column-label
// level, a leading space on numeric columns so headers align with the
// sign slot of numeric values, blanks for sparsified repeats, and one
// trailing blank row when index names get their own row.
func (r *textRenderer) columnHeaders() [][]string {
	cfg := r.cfg
	ncols := r.f.NumCols()
	out := make([][]string, ncols)

	needLeadSpace := func(j int) bool {
		col := r.f.cols[j]
		return col.Dtype().Numeric() && cfg.formatterFor(j, col.Name()) == nil
	}
	nameRow := cfg.IndexNames && r.f.index.HasNames()

	if r.f.columns.NLevels() > 1 {
		levels := indexLevels(r.f.columns)
		for j := 0; j < ncols; j++ {
			if !needLeadSpace(j) {
				continue
			}
			for l := range levels {
				levels[l][j] = " " + levels[l][j]
			}
		}
		if cfg.Sparsify {
			levels = sparseLevels(levels)
		}
		for j := 0; j < ncols; j++ {
			h := make([]string, 0, len(levels)+1)
			for l := range levels {
				h = append(h, levels[l][j])
			}
			if nameRow {
				h = append(h, "")
			}
			out[j] = h
		}
		return out
	}

	labels := r.f.columns.Labels(0)
	for j := 0; j < ncols; j++ {
		x := labels[j]
		if needLeadSpace(j) {
			x = " " + x
		}
		h := []string{x}
		if nameRow {
			h = append(h, "")
		}
		out[j] = h
	}
	return out
}

// formattedIndex renders the row-label block as one string column:
// blank (or column-name) slots for the header rows, then the adjoined
// index levels, sparsified when the index is hierarchical.
func (r *textRenderer) formattedIndex() []string {
	cfg := r.cfg
	idx := r.f.index
	showIndexNames := cfg.IndexNames && idx.HasNames()
	showColNames := cfg.IndexNames && r.f.columns.HasNames()

	fmtIndex := indexLevels(idx)
	if idx.NLevels() > 1 && cfg.Sparsify {
		fmtIndex = sparseLevels(fmtIndex)
	}
	if showIndexNames {
		names := idx.Names()
		for l := range fmtIndex {
			fmtIndex[l] = append([]string{names[l]}, fmtIndex[l]...)
		}
	}
	if cfg.IndexFormatter != nil {
		for _, lev := range fmtIndex {
			start := 0
			if showIndexNames {
				start = 1 // name slot is not a label
			}
			for i := start; i < len(lev); i++ {
				if lev[i] != "" {
					lev[i] = cfg.indexLabel(lev[i])
				}
			}
		}
	}
	adjoined := strings.Split(adjoin(1, fmtIndex...), "\n")

	if !cfg.ShowHeader {
		return adjoined
	}
	colHeader := make([]string, r.f.columns.NLevels())
	if showColNames {
		copy(colHeader, r.f.columns.Names())
	}
	return append(colHeader, adjoined...)
}

// joinMultiline wraps wide tables: columns are greedily packed into
// line-width bins, each bin re-emitting the row-label block so its
// lines stand alone, with a continuation marker column between bins.
// Bins are separated by a blank line.
func (r *textRenderer) joinMultiline(strcols [][]string, lineWidth int) string {
	const adjoinWidth = 1
	var idx []string
	if r.cfg.ShowIndex {
		idx = strcols[0]
		strcols = strcols[1:]
		w := 0
		for _, x := range idx {
			if sw := strWidth(x); sw > w {
				w = sw
			}
		}
		lineWidth -= w + adjoinWidth
	}

	colWidths := make([]int, len(strcols))
	for j, col := range strcols {
		w := 0
		for _, x := range col {
			if sw := strWidth(x); sw > w {
				w = sw
			}
		}
		colWidths[j] = w
	}
	bins := binify(colWidths, lineWidth)
	nrows := r.f.NumRows()

	blocks := make([]string, 0, len(bins))
	st := 0
	for i, ed := range bins {
		row := make([][]string, 0, ed-st+2)
		if idx != nil {
			row = append(row, idx)
		}
		row = append(row, strcols[st:ed]...)
		if len(bins) > 1 {
			cont := make([]string, nrows)
			for k := range cont {
				cont[k] = "  "
			}
			if i < len(bins)-1 {
				cont[0] = ` \`
			} else {
				for k := range cont {
					cont[k] = " "
				}
			}
			row = append(row, cont)
		}
		blocks = append(blocks, adjoin(adjoinWidth, row...))
		st = ed
	}
	return strings.Join(blocks, "\n\n")
}

// binify packs column widths greedily into line-width bins, reserving
// one extra cell of slack on interior bins for the continuation
// marker. It returns the exclusive end offset of each bin.
func binify(widths []int, lineWidth int) []int {
	const adjoinWidth = 1
	var bins []int
	curr := 0
	last := len(widths) - 1
	for i, w := range widths {
		adjoined := w + adjoinWidth
		curr += adjoined
		var wrap bool
		if i == last {
			wrap = curr+1 > lineWidth && i > 0
		} else {
			wrap = curr+2 > lineWidth && i > 0
		}
		if wrap {
			bins = append(bins, i)
			curr = adjoined
		}
	}
	return append(bins, len(widths))
}

package framefmt

import (
	"io"
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

// HTMLTree builds the markup element structure for f: a table element
// holding thead header rows (colspan merges over hierarchical column
// labels) and tbody rows (rowspan merges over a sparsified
// hierarchical row index). The caller owns the returned document.
func HTMLTree(f *Frame, cfg *FormatConfig) *etree.Document {
	if cfg == nil {
		cfg = NewFormatConfig(nil)
	}
	h := &htmlRenderer{f: f, cfg: cfg}
	return h.build()
}

// HTML renders f as indented markup text.
func HTML(f *Frame, cfg *FormatConfig) string {
	doc := HTMLTree(f, cfg)
	doc.Indent(2)
	s, err := doc.WriteToString()
	if err != nil {
		return ""
	}
	return strings.TrimRight(s, "\n")
}

// WriteHTML renders f as markup text into w.
func WriteHTML(w io.Writer, f *Frame, cfg *FormatConfig) error {
	_, err := io.WriteString(w, HTML(f, cfg))
	return err
}

type htmlRenderer struct {
	f   *Frame
	cfg *FormatConfig
}

func (h *htmlRenderer) build() *etree.Document {
	doc := etree.NewDocument()
	table := doc.CreateElement("table")
	table.CreateAttr("border", "1")
	classes := append([]string{"dataframe"}, h.cfg.Classes...)
	table.CreateAttr("class", strings.Join(classes, " "))

	if h.f.NumCols() == 0 || h.f.NumRows() == 0 {
		body := table.CreateElement("tbody")
		tr := body.CreateElement("tr")
		h.cell(tr, "td", h.f.index.String(), 0, 0)
		h.cell(tr, "td", "Empty Frame", 0, 0)
		return doc
	}
	if h.cfg.ShowHeader {
		h.writeHeader(table)
	}
	h.writeBody(table)
	return doc
}

// cell appends one th/td, with merge-span attributes when a run covers
// more than one column (colspan) or row (rowspan).
func (h *htmlRenderer) cell(tr *etree.Element, kind, text string, colspan, rowspan int) {
	el := tr.CreateElement(kind)
	if kind == "th" && h.cfg.ColSpace > 0 {
		el.CreateAttr("style", "min-width: "+strconv.Itoa(h.cfg.ColSpace)+";")
	}
	if colspan > 1 {
		el.CreateAttr("colspan", strconv.Itoa(colspan))
		el.CreateAttr("halign", "left")
	}
	if rowspan > 1 {
		el.CreateAttr("rowspan", strconv.Itoa(rowspan))
		el.CreateAttr("valign", "top")
	}
	h.setText(el, text)
}

// setText fills a cell. With escaping on (the default) the serializer
// escapes the markup-reserved characters, & before < and >. With
// escaping off the text is parsed as a markup fragment and grafted in
// so caller-supplied markup survives serialization; text that does not
// parse falls back to escaped text.
func (h *htmlRenderer) setText(el *etree.Element, s string) {
	if h.cfg.Escape || !strings.ContainsAny(s, "<>&") {
		el.SetText(s)
		return
	}
	frag := etree.NewDocument()
	frag.ReadSettings.Permissive = true
	if err := frag.ReadFromString("<x>" + s + "</x>"); err != nil || frag.Root() == nil {
		el.SetText(s)
		return
	}
	children := append([]etree.Token(nil), frag.Root().Child...)
	for _, child := range children {
		el.AddChild(child)
	}
}

func (h *htmlRenderer) writeHeader(table *etree.Element) {
	head := table.CreateElement("thead")
	cols := h.f.columns
	colNames := cols.Names()
	rowLevels := h.f.index.NLevels()

	if cols.NLevels() > 1 {
		levels := indexLevels(cols)
		runs := levelRuns(levels)
		for l, lev := range levels {
			tr := head.CreateElement("tr")
			if h.cfg.ShowIndex {
				for k := 0; k < rowLevels-1; k++ {
					h.cell(tr, "th", "", 0, 0)
				}
				h.cell(tr, "th", colNames[l], 0, 0)
			}
			for j := range lev {
				span, ok := runs[l][j]
				if !ok {
					continue // merged into the run's first cell
				}
				h.cell(tr, "th", lev[j], span, 0)
			}
		}
	} else {
		tr := head.CreateElement("tr")
		tr.CreateAttr("style", "text-align: "+h.cfg.Justify.String()+";")
		if h.cfg.ShowIndex {
			for k := 0; k < rowLevels-1; k++ {
				h.cell(tr, "th", "", 0, 0)
			}
			h.cell(tr, "th", colNames[0], 0, 0)
		}
		for _, label := range cols.Labels(0) {
			h.cell(tr, "th", label, 0, 0)
		}
	}

	if h.cfg.IndexNames && h.f.index.HasNames() {
		tr := head.CreateElement("tr")
		for _, name := range h.f.index.Names() {
			h.cell(tr, "th", name, 0, 0)
		}
		for j := 0; j < h.f.NumCols(); j++ {
			h.cell(tr, "th", "", 0, 0)
		}
	}
}

func (h *htmlRenderer) writeBody(table *etree.Element) {
	body := table.CreateElement("tbody")
	cfg := h.cfg
	ncols := h.f.NumCols()
	nrows := h.f.NumRows()

	fmtValues := make([][]string, ncols)
	for j := 0; j < ncols; j++ {
		col := h.f.Col(j)
		fmtValues[j] = formatValues(col, cfg.formatterFor(j, col.Name()), cfg)
	}

	indexKind := "td"
	if cfg.BoldRows {
		indexKind = "th"
	}

	if !cfg.ShowIndex {
		for i := 0; i < nrows; i++ {
			tr := body.CreateElement("tr")
			for j := 0; j < ncols; j++ {
				h.cell(tr, "td", fmtValues[j][i], 0, 0)
			}
		}
		return
	}

	idx := h.f.index
	if idx.NLevels() > 1 {
		levels := indexLevels(idx)
		for l := range levels {
			for i := range levels[l] {
				levels[l][i] = cfg.indexLabel(levels[l][i])
			}
		}
		if cfg.Sparsify {
			runs := levelRuns(levels)
			for i := 0; i < nrows; i++ {
				tr := body.CreateElement("tr")
				for l := range levels {
					span, ok := runs[l][i]
					if !ok {
						continue // covered by an earlier rowspan
					}
					h.cell(tr, indexKind, levels[l][i], 0, span)
				}
				for j := 0; j < ncols; j++ {
					h.cell(tr, "td", fmtValues[j][i], 0, 0)
				}
			}
			return
		}
		for i := 0; i < nrows; i++ {
			tr := body.CreateElement("tr")
			for l := range levels {
				h.cell(tr, indexKind, levels[l][i], 0, 0)
			}
			for j := 0; j < ncols; j++ {
				h.cell(tr, "td", fmtValues[j][i], 0, 0)
			}
		}
		return
	}

	labels := idx.Labels(0)
	for i := 0; i < nrows; i++ {
		tr := body.CreateElement("tr")
		h.cell(tr, indexKind, cfg.indexLabel(labels[i]), 0, 0)
		for j := 0; j < ncols; j++ {
			h.cell(tr, "td", fmtValues[j][i], 0, 0)
		}
	}
}

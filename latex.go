package framefmt

import (
	"io"
	"strings"
)

var latexEscaper = strings.NewReplacer("_", `\_`, "%", `\%`, "&", `\&`)

// LaTeX renders f as a tabular environment: a column-spec line, the
// header rows, a midrule, the data rows, and the closing rules.
// columnFormat overrides the derived per-column alignment codes
// (numeric columns right-aligned, everything else left, plus one
// leading code for the index block); pass "" to derive it. A nil cfg
// uses the engine defaults.
func LaTeX(f *Frame, cfg *FormatConfig, columnFormat string) string {
	if cfg == nil {
		cfg = NewFormatConfig(nil)
	}
	var b strings.Builder
	renderLaTeX(&b, f, cfg, columnFormat)
	return b.String()
}

// WriteLaTeX renders f as typesetting text into w.
func WriteLaTeX(w io.Writer, f *Frame, cfg *FormatConfig, columnFormat string) error {
	_, err := io.WriteString(w, LaTeX(f, cfg, columnFormat))
	return err
}

// SaveLaTeX is WriteLaTeX with a writer-or-path destination.
func SaveLaTeX(dst any, f *Frame, cfg *FormatConfig, columnFormat string) (err error) {
	w, closeSink, err := resolveSink(dst)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeSink(); err == nil {
			err = cerr
		}
	}()
	return WriteLaTeX(w, f, cfg, columnFormat)
}

func renderLaTeX(b *strings.Builder, f *Frame, cfg *FormatConfig, columnFormat string) {
	if columnFormat == "" {
		var spec strings.Builder
		if cfg.ShowIndex {
			spec.WriteByte('l')
		}
		for i := 0; i < f.NumCols(); i++ {
			if f.Col(i).Dtype().Numeric() {
				spec.WriteByte('r')
			} else {
				spec.WriteByte('l')
			}
		}
		columnFormat = spec.String()
	}

	var strcols [][]string
	headerRows := 0
	if f.NumCols() == 0 || f.NumRows() == 0 {
		strcols = [][]string{{emptySummary(f)}}
	} else {
		r := &textRenderer{f: f, cfg: cfg}
		strcols = r.stringColumns()
		headerRows = len(strcols[0]) - f.NumRows()
	}

	b.WriteString("\\begin{tabular}{" + columnFormat + "}\n")
	b.WriteString("\\toprule\n")
	height := len(strcols[0])
	for i := 0; i < height; i++ {
		if i == headerRows && headerRows > 0 {
			b.WriteString("\\midrule\n") // end of header
		}
		cells := make([]string, len(strcols))
		for j, col := range strcols {
			if col[i] == "" {
				cells[j] = "{}"
			} else {
				cells[j] = latexEscaper.Replace(col[i])
			}
		}
		b.WriteString(strings.Join(cells, " & "))
		b.WriteString(" \\\\\n")
	}
	b.WriteString("\\bottomrule\n")
	b.WriteString("\\end{tabular}\n")
}

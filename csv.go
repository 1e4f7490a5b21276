package framefmt

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

// CSVConfig controls the delimited writer. The zero value is not
// useful; start from NewCSVConfig.
type CSVConfig struct {
	// Sep is the field separator rune.
	Sep rune
	// NARep replaces null entries of every dtype.
	NARep string
	// FloatFormat, when non-nil, renders every float value. Nil means
	// shortest round-trip notation.
	FloatFormat FloatFormatter
	// Header controls the header row. See DefaultHeader, NoHeader and
	// HeaderAliases.
	Header HeaderMode
	// ShowIndex includes the index levels as leading columns.
	ShowIndex bool
	// IndexLabel overrides the header text above the index columns.
	IndexLabel []string
	// Quoting selects the quoting policy.
	Quoting Quoting
	// LineTerminator ends each record. "\n" or "\r\n".
	LineTerminator string
	// ChunkSize is the number of rows buffered per write pass. Zero
	// picks a size from the column count.
	ChunkSize int
	// Encoding names an IANA character set for the output bytes.
	// Empty means UTF-8 passthrough.
	Encoding string
}

// NewCSVConfig returns the default delimited-writer settings: comma
// separated, empty null text, index shown, minimal quoting.
func NewCSVConfig() *CSVConfig {
	return &CSVConfig{
		Sep:            ',',
		ShowIndex:      true,
		LineTerminator: "\n",
	}
}

// NewCSVConfigFrom snapshots the delimited-writer settings held in an
// Options store: display.encoding names the output character set.
// Everything else keeps the NewCSVConfig defaults. A nil opts yields
// pure defaults.
func NewCSVConfigFrom(opts *Options) *CSVConfig {
	cfg := NewCSVConfig()
	cfg.Encoding = opts.stringOr(OptEncoding, "")
	return cfg
}

// WriteCSV writes f as delimited text into w. Rows stream out in
// chunks so arbitrarily long frames never buffer whole.
func WriteCSV(w io.Writer, f *Frame, cfg *CSVConfig) error {
	if cfg == nil {
		cfg = NewCSVConfig()
	}
	if cfg.Encoding != "" {
		enc, err := ianaindex.IANA.Encoding(cfg.Encoding)
		if err != nil || enc == nil {
			return fmt.Errorf("%w: %q", ErrEncoding, cfg.Encoding)
		}
		tw := transform.NewWriter(w, enc.NewEncoder())
		if err := writeCSVPlain(tw, f, cfg); err != nil {
			return err
		}
		return tw.Close()
	}
	return writeCSVPlain(w, f, cfg)
}

// SaveCSV is WriteCSV with a writer-or-path destination.
func SaveCSV(dst any, f *Frame, cfg *CSVConfig) (err error) {
	w, closeSink, err := resolveSink(dst)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeSink(); err == nil {
			err = cerr
		}
	}()
	return WriteCSV(w, f, cfg)
}

func writeCSVPlain(w io.Writer, f *Frame, cfg *CSVConfig) error {
	rw := newRowWriter(w, cfg)
	if err := writeCSVHeader(rw, f, cfg); err != nil {
		return err
	}
	if err := writeCSVChunks(rw, f, cfg); err != nil {
		return err
	}
	return rw.flush()
}

// rowWriter is the record-level sink behind the delimited writer.
// encoding/csv covers minimal quoting; the other policies need their
// own field logic.
type rowWriter interface {
	writeRow(fields []string) error
	flush() error
}

func newRowWriter(w io.Writer, cfg *CSVConfig) rowWriter {
	if cfg.Quoting == QuoteMinimal {
		cw := csv.NewWriter(w)
		cw.Comma = cfg.Sep
		cw.UseCRLF = cfg.LineTerminator == "\r\n"
		return &minimalWriter{w: cw}
	}
	return &policyWriter{w: w, cfg: cfg}
}

type minimalWriter struct {
	w *csv.Writer
}

func (m *minimalWriter) writeRow(fields []string) error { return m.w.Write(fields) }

func (m *minimalWriter) flush() error {
	m.w.Flush()
	return m.w.Error()
}

// policyWriter implements the all, non-numeric and none policies.
type policyWriter struct {
	w   io.Writer
	cfg *CSVConfig
}

func (p *policyWriter) writeRow(fields []string) error {
	sep := string(p.cfg.Sep)
	out := make([]string, len(fields))
	for i, field := range fields {
		switch p.cfg.Quoting {
		case QuoteAll:
			out[i] = quoteField(field)
		case QuoteNonNumeric:
			if _, err := strconv.ParseFloat(field, 64); err != nil {
				out[i] = quoteField(field)
			} else {
				out[i] = field
			}
		default: // QuoteNone
			if strings.Contains(field, sep) {
				return fmt.Errorf("%w: separator %q inside unquoted field %q", ErrQuoting, sep, field)
			}
			out[i] = field
		}
	}
	term := p.cfg.LineTerminator
	if term == "" {
		term = "\n"
	}
	_, err := io.WriteString(p.w, strings.Join(out, sep)+term)
	return err
}

func (p *policyWriter) flush() error { return nil }

func quoteField(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// writeCSVHeader ports the header protocol: an alias row or the column
// labels, preceded by the index labels; hierarchical column labels
// expand to one row per level with a trailing index-label row.
func writeCSVHeader(rw rowWriter, f *Frame, cfg *CSVConfig) error {
	if !cfg.Header.show() {
		return nil
	}
	ncols := f.NumCols()

	colNames := make([]string, ncols)
	if cfg.Header.aliases != nil {
		if len(cfg.Header.aliases) != ncols {
			return fmt.Errorf("%w: writing %d columns but got %d aliases",
				ErrAliasCount, ncols, len(cfg.Header.aliases))
		}
		copy(colNames, cfg.Header.aliases)
	} else {
		for i := 0; i < ncols; i++ {
			colNames[i] = f.Col(i).Name()
		}
	}

	var indexLabels []string
	if cfg.ShowIndex {
		if cfg.IndexLabel != nil {
			indexLabels = cfg.IndexLabel
		} else {
			indexLabels = f.Index().Names()
		}
	}

	cols := f.Columns()
	if cols.NLevels() > 1 && cfg.Header.aliases == nil {
		// One row per column level, then the index labels on a row of
		// their own so data columns stay aligned beneath their labels.
		names := cols.Names()
		blanks := make([]string, len(indexLabels))
		for l := 0; l < cols.NLevels(); l++ {
			row := append([]string{}, blanks...)
			if len(row) > 0 {
				row[0] = names[l]
			}
			row = append(row, cols.Labels(l)...)
			if err := rw.writeRow(row); err != nil {
				return err
			}
		}
		if len(indexLabels) > 0 {
			row := append([]string{}, indexLabels...)
			row = append(row, make([]string, ncols)...)
			return rw.writeRow(row)
		}
		return nil
	}

	row := append([]string{}, indexLabels...)
	row = append(row, colNames...)
	return rw.writeRow(row)
}

func writeCSVChunks(rw rowWriter, f *Frame, cfg *CSVConfig) error {
	nrows := f.NumRows()
	chunkSize := cfg.ChunkSize
	if chunkSize <= 0 {
		chunkSize = 100000 / max(f.NumCols(), 1)
		if chunkSize < 1 {
			chunkSize = 1
		}
	}
	for start := 0; start < nrows; start += chunkSize {
		end := min(start+chunkSize, nrows)
		if err := writeCSVChunk(rw, f, cfg, start, end); err != nil {
			return err
		}
		if err := rw.flush(); err != nil {
			return err
		}
	}
	return nil
}

// writeCSVChunk renders rows [start, end) with native per-value
// formatting: no padding, shortest float notation, both null flavors
// folded to na_rep.
func writeCSVChunk(rw rowWriter, f *Frame, cfg *CSVConfig, start, end int) error {
	ncols := f.NumCols()

	var indexCells [][]string
	if cfg.ShowIndex {
		idx := f.Index()
		indexCells = make([][]string, idx.NLevels())
		for l := range indexCells {
			indexCells[l] = idx.Labels(l)[start:end]
		}
	}

	cells := make([][]string, ncols)
	for j := 0; j < ncols; j++ {
		cells[j] = nativeValues(f.Col(j), cfg, start, end)
	}

	row := make([]string, 0, len(indexCells)+ncols)
	for i := 0; i < end-start; i++ {
		row = row[:0]
		for _, lvl := range indexCells {
			row = append(row, lvl[i])
		}
		for _, col := range cells {
			row = append(row, col[i])
		}
		if err := rw.writeRow(row); err != nil {
			return err
		}
	}
	return nil
}

// nativeValues renders col[start:end] for machine consumption rather
// than display.
func nativeValues(col *Column, cfg *CSVConfig, start, end int) []string {
	out := make([]string, end-start)
	switch col.Dtype() {
	case Float:
		for i, v := range col.floats[start:end] {
			switch {
			case math.IsNaN(v):
				out[i] = cfg.NARep
			case cfg.FloatFormat != nil:
				out[i] = cfg.FloatFormat(v)
			default:
				out[i] = strconv.FormatFloat(v, 'g', -1, 64)
			}
		}
	case Int:
		for i, v := range col.ints[start:end] {
			out[i] = strconv.FormatInt(v, 10)
		}
	case Datetime:
		for i, v := range col.times[start:end] {
			if v == nil {
				out[i] = cfg.NARep
			} else {
				out[i] = formatStamp(*v)
			}
		}
	case Duration:
		for i, v := range col.durs[start:end] {
			if v == nil {
				out[i] = cfg.NARep
			} else {
				out[i] = v.String()
			}
		}
	default:
		for i, v := range col.objs[start:end] {
			if v == nil {
				out[i] = cfg.NARep
			} else {
				out[i] = pprint(v)
			}
		}
	}
	return out
}

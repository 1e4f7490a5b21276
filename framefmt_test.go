package framefmt_test

import (
	"bytes"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/framefmt/framefmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Test types: custom index implementation ---

type rangeIndex struct {
	n int
}

func (r rangeIndex) Len() int        { return r.n }
func (r rangeIndex) NLevels() int    { return 1 }
func (r rangeIndex) Names() []string { return []string{""} }
func (r rangeIndex) HasNames() bool  { return false }
func (r rangeIndex) String() string  { return "RangeIndex" }
func (r rangeIndex) Labels(int) []string {
	out := make([]string, r.n)
	for i := range out {
		out[i] = string(rune('a' + i))
	}
	return out
}

// --- Helpers ---

func plainConfig() *framefmt.FormatConfig {
	cfg := framefmt.NewFormatConfig(nil)
	cfg.LineWidth = 0
	return cfg
}

func mustFrame(t *testing.T, index framefmt.Index, cols ...*framefmt.Column) *framefmt.Frame {
	t.Helper()
	f, err := framefmt.NewFrame(index, cols...)
	require.NoError(t, err)
	return f
}

func mustMultiIndex(t *testing.T, names []string, levels ...[]string) *framefmt.MultiIndex {
	t.Helper()
	m, err := framefmt.NewMultiIndex(names, levels...)
	require.NoError(t, err)
	return m
}

// ============================================================
// Frame construction
// ============================================================

func TestNewFrame(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		index   framefmt.Index
		cols    []*framefmt.Column
		wantErr require.ErrorAssertionFunc
	}{
		"ok": {
			cols: []*framefmt.Column{
				framefmt.NewIntColumn("a", []int64{1, 2}),
				framefmt.NewObjectColumn("b", []any{"x", "y"}),
			},
			wantErr: require.NoError,
		},
		"ragged columns": {
			cols: []*framefmt.Column{
				framefmt.NewIntColumn("a", []int64{1, 2}),
				framefmt.NewObjectColumn("b", []any{"x"}),
			},
			wantErr: func(t require.TestingT, err error, _ ...any) {
				require.ErrorIs(t, err, framefmt.ErrLength)
			},
		},
		"index length mismatch": {
			index: framefmt.NewFlatIndex("", []string{"only"}),
			cols: []*framefmt.Column{
				framefmt.NewIntColumn("a", []int64{1, 2}),
			},
			wantErr: func(t require.TestingT, err error, _ ...any) {
				require.ErrorIs(t, err, framefmt.ErrLength)
			},
		},
		"no columns": {
			wantErr: require.NoError,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := framefmt.NewFrame(tt.index, tt.cols...)
			tt.wantErr(t, err)
		})
	}
}

func TestNewFrameDefaultIndex(t *testing.T) {
	t.Parallel()
	f := mustFrame(t, nil, framefmt.NewIntColumn("a", []int64{7, 8, 9}))
	assert.Equal(t, 3, f.NumRows())
	assert.Equal(t, []string{"0", "1", "2"}, f.Index().Labels(0))
}

func TestSetColumnIndex(t *testing.T) {
	t.Parallel()
	f := mustFrame(t, nil,
		framefmt.NewIntColumn("a", []int64{1}),
		framefmt.NewIntColumn("b", []int64{2}),
	)
	mi := mustMultiIndex(t, nil, []string{"g", "g"}, []string{"a", "b"})
	require.NoError(t, f.SetColumnIndex(mi))
	assert.Equal(t, 2, f.Columns().NLevels())

	short := mustMultiIndex(t, nil, []string{"g"}, []string{"a"})
	require.ErrorIs(t, f.SetColumnIndex(short), framefmt.ErrLength)
}

func TestNewMultiIndex(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		names   []string
		levels  [][]string
		wantErr error
	}{
		"no levels":      {wantErr: framefmt.ErrLevels},
		"ragged levels":  {levels: [][]string{{"a", "b"}, {"x"}}, wantErr: framefmt.ErrLength},
		"name mismatch":  {names: []string{"one"}, levels: [][]string{{"a"}, {"x"}}, wantErr: framefmt.ErrLength},
		"unnamed levels": {levels: [][]string{{"a"}, {"x"}}},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := framefmt.NewMultiIndex(tt.names, tt.levels...)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

// ============================================================
// Console rendering
// ============================================================

func TestText(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		frame func(t *testing.T) *framefmt.Frame
		cfg   func() *framefmt.FormatConfig
		want  string
	}{
		"float and object columns": {
			frame: func(t *testing.T) *framefmt.Frame {
				return mustFrame(t, nil,
					framefmt.NewFloatColumn("a", []float64{1.5, 2.25, 3.0}),
					framefmt.NewObjectColumn("b", []any{"x", "y", "zz"}),
				)
			},
			cfg: plainConfig,
			want: strings.Join([]string{
				"      a  b",
				"0  1.50  x",
				"1  2.25  y",
				"2  3.00 zz",
			}, "\n"),
		},
		"named index gets its own row": {
			frame: func(t *testing.T) *framefmt.Frame {
				return mustFrame(t,
					framefmt.NewFlatIndex("id", []string{"a", "b"}),
					framefmt.NewIntColumn("v", []int64{1, 2}),
				)
			},
			cfg: plainConfig,
			want: strings.Join([]string{
				"    v",
				"id   ",
				"a   1",
				"b   2",
			}, "\n"),
		},
		"hierarchical index sparsified": {
			frame: func(t *testing.T) *framefmt.Frame {
				idx := mustMultiIndex(t, nil,
					[]string{"a", "a", "b"},
					[]string{"x", "y", "z"},
				)
				return mustFrame(t, idx, framefmt.NewIntColumn("v", []int64{1, 2, 3}))
			},
			cfg: plainConfig,
			want: strings.Join([]string{
				"     v",
				"a x  1",
				"  y  2",
				"b z  3",
			}, "\n"),
		},
		"hierarchical index dense": {
			frame: func(t *testing.T) *framefmt.Frame {
				idx := mustMultiIndex(t, nil,
					[]string{"a", "a", "b"},
					[]string{"x", "y", "z"},
				)
				return mustFrame(t, idx, framefmt.NewIntColumn("v", []int64{1, 2, 3}))
			},
			cfg: func() *framefmt.FormatConfig {
				cfg := plainConfig()
				cfg.Sparsify = false
				return cfg
			},
			want: strings.Join([]string{
				"     v",
				"a x  1",
				"a y  2",
				"b z  3",
			}, "\n"),
		},
		"no header no index": {
			frame: func(t *testing.T) *framefmt.Frame {
				return mustFrame(t, nil, framefmt.NewObjectColumn("v", []any{"x", "y"}))
			},
			cfg: func() *framefmt.FormatConfig {
				cfg := plainConfig()
				cfg.ShowHeader = false
				cfg.ShowIndex = false
				return cfg
			},
			want: "x\ny",
		},
		"custom index implementation": {
			frame: func(t *testing.T) *framefmt.Frame {
				return mustFrame(t, rangeIndex{n: 2}, framefmt.NewObjectColumn("v", []any{"p", "q"}))
			},
			cfg: plainConfig,
			want: strings.Join([]string{
				"  v",
				"a p",
				"b q",
			}, "\n"),
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got := framefmt.Text(tt.frame(t), tt.cfg())
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTextEmptyFrame(t *testing.T) {
	t.Parallel()
	f := mustFrame(t, nil)
	got := framefmt.Text(f, plainConfig())
	assert.Equal(t, "Empty Frame\nColumns: Index([])\nIndex: Index([])", got)
}

// Every rendered line has the same visible width, so output survives a
// split-and-rejoin on line boundaries.
func TestTextUniformLineWidth(t *testing.T) {
	t.Parallel()
	f := mustFrame(t, nil,
		framefmt.NewFloatColumn("alpha", []float64{1.5, -200.125, math.NaN()}),
		framefmt.NewObjectColumn("b", []any{"x", "longer", "z"}),
		framefmt.NewIntColumn("count", []int64{1, 22, 333}),
	)
	got := framefmt.Text(f, plainConfig())
	lines := strings.Split(got, "\n")
	require.NotEmpty(t, lines)
	want := len(lines[0])
	for _, line := range lines {
		assert.Len(t, line, want)
	}
	assert.Equal(t, framefmt.Text(f, plainConfig()), strings.Join(lines, "\n"))
}

func TestTextMultiLevelColumns(t *testing.T) {
	t.Parallel()
	f := mustFrame(t, nil,
		framefmt.NewObjectColumn("a", []any{"1"}),
		framefmt.NewObjectColumn("b", []any{"2"}),
	)
	cols := mustMultiIndex(t, []string{"grp", "sub"},
		[]string{"G", "G"},
		[]string{"a", "b"},
	)
	require.NoError(t, f.SetColumnIndex(cols))

	got := framefmt.Text(f, plainConfig())
	lines := strings.Split(got, "\n")
	// Two label levels plus one value row under a one-row index block.
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "grp")
	assert.Contains(t, lines[0], "G")
	assert.Contains(t, lines[1], "sub")
	assert.Contains(t, lines[1], "a")
	assert.Contains(t, lines[1], "b")
}

func TestTextWrapsWideTables(t *testing.T) {
	t.Parallel()
	cols := make([]*framefmt.Column, 5)
	names := []string{"c0", "c1", "c2", "c3", "c4"}
	for i, name := range names {
		cols[i] = framefmt.NewFloatColumn(name, []float64{1.0})
	}
	f := mustFrame(t, nil, cols...)
	cfg := plainConfig()
	cfg.LineWidth = 20

	got := framefmt.Text(f, cfg)
	blocks := strings.Split(got, "\n\n")
	require.Len(t, blocks, 2)
	assert.Contains(t, blocks[0], `\`)
	assert.Contains(t, blocks[0], "c0")
	assert.Contains(t, blocks[0], "c3")
	assert.NotContains(t, blocks[0], "c4")
	assert.Contains(t, blocks[1], "c4")
	// The row-label block repeats in every wrapped block.
	for _, block := range blocks {
		assert.Contains(t, block, "0")
	}
}

func TestTextNoWrapWhenItFits(t *testing.T) {
	t.Parallel()
	f := mustFrame(t, nil, framefmt.NewIntColumn("a", []int64{1}))
	cfg := plainConfig()
	cfg.LineWidth = 80
	assert.NotContains(t, framefmt.Text(f, cfg), "\n\n")
}

func TestTextMaxColWidthTruncates(t *testing.T) {
	t.Parallel()
	f := mustFrame(t, nil,
		framefmt.NewObjectColumn("v", []any{"abcdefghij", "x"}),
	)
	cfg := plainConfig()
	cfg.MaxColWidth = 5
	got := framefmt.Text(f, cfg)
	assert.Contains(t, got, "...")
	assert.NotContains(t, got, "abcdefghij")
}

func TestTextFormatterOverride(t *testing.T) {
	t.Parallel()
	f := mustFrame(t, nil, framefmt.NewIntColumn("v", []int64{1, 2}))
	cfg := plainConfig()
	cfg.Formatters = map[string]framefmt.ValueFormatter{
		"v": func(v any) string { return "<<>>" },
	}
	got := framefmt.Text(f, cfg)
	assert.Contains(t, got, "<<>>")
	assert.NotContains(t, got, " 1")
}

func TestTextPositionalFormatterWins(t *testing.T) {
	t.Parallel()
	f := mustFrame(t, nil, framefmt.NewIntColumn("v", []int64{5}))
	cfg := plainConfig()
	cfg.Formatters = map[string]framefmt.ValueFormatter{
		"v": func(v any) string { return "by-name" },
	}
	cfg.PosFormatters = map[int]framefmt.ValueFormatter{
		0: func(v any) string { return "by-pos" },
	}
	got := framefmt.Text(f, cfg)
	assert.Contains(t, got, "by-pos")
	assert.NotContains(t, got, "by-name")
}

func TestTextIndexFormatter(t *testing.T) {
	t.Parallel()
	f := mustFrame(t,
		framefmt.NewFlatIndex("", []string{"row1", "row2"}),
		framefmt.NewIntColumn("v", []int64{1, 2}),
	)
	cfg := plainConfig()
	cfg.IndexFormatter = func(v any) string { return strings.ToUpper(v.(string)) }
	got := framefmt.Text(f, cfg)
	assert.Contains(t, got, "ROW1")
	assert.Contains(t, got, "ROW2")
}

func TestWriteText(t *testing.T) {
	t.Parallel()
	f := mustFrame(t, nil, framefmt.NewIntColumn("a", []int64{1}))
	var buf bytes.Buffer
	require.NoError(t, framefmt.WriteText(&buf, f, plainConfig()))
	assert.Equal(t, framefmt.Text(f, plainConfig()), buf.String())
}

// ============================================================
// Series rendering
// ============================================================

func TestSeriesText(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		col   *framefmt.Column
		index framefmt.Index
		want  string
	}{
		"float with flat index": {
			col:   framefmt.NewFloatColumn("x", []float64{1.0, 2.5}),
			index: framefmt.NewFlatIndex("", []string{"a", "b"}),
			want: strings.Join([]string{
				"a    1.0",
				"b    2.5",
				"Name: x, Length: 2, dtype: float64",
			}, "\n"),
		},
		"named index header line": {
			col:   framefmt.NewIntColumn("n", []int64{1, 2}),
			index: framefmt.NewFlatIndex("idx", []string{"a", "b"}),
			want: strings.Join([]string{
				"idx",
				"a    1",
				"b    2",
				"Name: n, Length: 2, dtype: int64",
			}, "\n"),
		},
		"unnamed column omits name": {
			col:   framefmt.NewIntColumn("", []int64{9}),
			index: framefmt.NewFlatIndex("", []string{"a"}),
			want: strings.Join([]string{
				"a    9",
				"Length: 1, dtype: int64",
			}, "\n"),
		},
		"nil index defaults to range": {
			col: framefmt.NewObjectColumn("s", []any{"p", "q"}),
			want: strings.Join([]string{
				"0   p",
				"1   q",
				"Name: s, Length: 2, dtype: object",
			}, "\n"),
		},
		"empty column": {
			col:  framefmt.NewFloatColumn("x", nil),
			want: "",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got := framefmt.SeriesText(tt.col, tt.index, plainConfig())
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSeriesTextHierarchicalIndex(t *testing.T) {
	t.Parallel()
	idx, err := framefmt.NewMultiIndex(nil,
		[]string{"a", "a"},
		[]string{"x", "y"},
	)
	require.NoError(t, err)
	got := framefmt.SeriesText(framefmt.NewIntColumn("v", []int64{1, 2}), idx, plainConfig())
	lines := strings.Split(got, "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "a x")
	// Outer level repeat is blanked.
	assert.True(t, strings.HasPrefix(lines[1], "  y"))
}

// ============================================================
// Options and config
// ============================================================

func TestOptionsFromYAML(t *testing.T) {
	t.Parallel()
	opts, err := framefmt.OptionsFromYAML([]byte(
		"display.precision: 4\n" +
			"display.na_rep: \"-\"\n" +
			"display.multi_sparse: false\n" +
			"display.colheader_justify: left\n" +
			"display.width: 100\n",
	))
	require.NoError(t, err)

	cfg := framefmt.NewFormatConfig(opts)
	assert.Equal(t, 4, cfg.Precision)
	assert.Equal(t, "-", cfg.NARep)
	assert.False(t, cfg.Sparsify)
	assert.Equal(t, framefmt.JustifyLeft, cfg.Justify)
	assert.Equal(t, 100, cfg.LineWidth)
}

func TestOptionsFromYAMLInvalid(t *testing.T) {
	t.Parallel()
	_, err := framefmt.OptionsFromYAML([]byte("{not yaml"))
	require.Error(t, err)
}

func TestNewFormatConfigDefaults(t *testing.T) {
	t.Parallel()
	cfg := framefmt.NewFormatConfig(nil)
	assert.Equal(t, "NaN", cfg.NARep)
	assert.Equal(t, 7, cfg.Precision)
	assert.Equal(t, 50, cfg.MaxColWidth)
	assert.Equal(t, framefmt.JustifyRight, cfg.Justify)
	assert.True(t, cfg.Sparsify)
	assert.True(t, cfg.ShowHeader)
	assert.True(t, cfg.ShowIndex)
	assert.True(t, cfg.Escape)
	assert.Equal(t, framefmt.AutoLineWidth, cfg.LineWidth)
}

func TestOptionsSetGet(t *testing.T) {
	t.Parallel()
	opts := framefmt.NewOptions()
	opts.Set(framefmt.OptPrecision, 3)
	v, ok := opts.Get(framefmt.OptPrecision)
	require.True(t, ok)
	assert.Equal(t, 3, v)

	_, ok = opts.Get("display.unknown")
	assert.False(t, ok)
}

func TestConsoleSizeExplicit(t *testing.T) {
	t.Parallel()
	opts := framefmt.NewOptions()
	opts.Set(framefmt.OptWidth, 120)
	opts.Set(framefmt.OptHeight, 40)
	w, h := framefmt.ConsoleSize(opts)
	assert.Equal(t, 120, w)
	assert.Equal(t, 40, h)
}

// ============================================================
// Engineering notation
// ============================================================

func TestEngFormatter(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		accuracy  int
		usePrefix bool
		input     float64
		want      string
	}{
		"zero":             {accuracy: 1, usePrefix: true, input: 0, want: " 0.0"},
		"mega":             {accuracy: 1, usePrefix: true, input: 1e6, want: " 1.0M"},
		"milli":            {accuracy: 1, usePrefix: true, input: 0.001, want: " 1.0m"},
		"negative kilo":    {accuracy: 1, usePrefix: true, input: -15500, want: "-15.5k"},
		"beyond yotta":     {accuracy: 1, usePrefix: true, input: 1e27, want: " 1000.0Y"},
		"exponent text":    {accuracy: 1, usePrefix: false, input: 1e6, want: " 1.0E+06"},
		"negative expo":    {accuracy: 1, usePrefix: false, input: 1e-6, want: " 1.0E-06"},
		"two digit places": {accuracy: 2, usePrefix: true, input: 1234, want: " 1.23k"},
		"nan":              {accuracy: 1, usePrefix: true, input: math.NaN(), want: "NaN"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			f := framefmt.EngFormatter(tt.accuracy, tt.usePrefix)
			assert.Equal(t, tt.want, f(tt.input))
		})
	}
}

func TestEngFormatterAsFloatFormat(t *testing.T) {
	t.Parallel()
	f := mustFrame(t, nil, framefmt.NewFloatColumn("p", []float64{1e6, 2.5e6}))
	cfg := plainConfig()
	cfg.FloatFormat = framefmt.EngFormatter(1, true)
	got := framefmt.Text(f, cfg)
	assert.Contains(t, got, "1.0M")
	assert.Contains(t, got, "2.5M")
}

// ============================================================
// Datetime and duration rendering
// ============================================================

func TestTextDatetimeColumn(t *testing.T) {
	t.Parallel()
	ts := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)
	f := mustFrame(t, nil,
		framefmt.NewDatetimeColumn("when", []*time.Time{&ts, nil}),
	)
	got := framefmt.Text(f, plainConfig())
	assert.Contains(t, got, "2020-01-02 03:04:05")
	assert.Contains(t, got, "NaT")
}

func TestTextDurationColumn(t *testing.T) {
	t.Parallel()
	d := 90 * time.Second
	f := mustFrame(t, nil,
		framefmt.NewDurationColumn("took", []*time.Duration{&d, nil}),
	)
	got := framefmt.Text(f, plainConfig())
	assert.Contains(t, got, "1m30s")
	assert.Contains(t, got, "NaT")
}

// ============================================================
// Null rendering
// ============================================================

func TestTextNullRendering(t *testing.T) {
	t.Parallel()
	f := mustFrame(t, nil,
		framefmt.NewFloatColumn("f", []float64{math.NaN(), 1.5}),
		framefmt.NewObjectColumn("o", []any{nil, "x"}),
	)
	got := framefmt.Text(f, plainConfig())
	// Numeric null takes na_rep, missing object takes the None literal.
	assert.Contains(t, got, "NaN")
	assert.Contains(t, got, "None")
}

func TestTextNARepOverride(t *testing.T) {
	t.Parallel()
	f := mustFrame(t, nil, framefmt.NewFloatColumn("f", []float64{math.NaN(), 1.0}))
	cfg := plainConfig()
	cfg.NARep = "<missing>"
	got := framefmt.Text(f, cfg)
	assert.Contains(t, got, "<missing>")
	assert.NotContains(t, got, "NaN")
}

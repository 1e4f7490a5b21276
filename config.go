package framefmt

// ValueFormatter renders a single raw value. Caller-supplied overrides
// are an extension point: one that panics propagates to the caller
// unrecovered, since its failure is a caller bug, not an engine fault.
type ValueFormatter func(v any) string

// FloatFormatter renders a single float.
type FloatFormatter func(v float64) string

// AutoLineWidth asks the console renderer to measure the terminal when
// stdout is interactive and to skip wrapping otherwise.
const AutoLineWidth = -1

// FormatConfig carries every display decision for one render call.
// Build one with NewFormatConfig, adjust fields, then hand it to a
// renderer. A config is read-only for the duration of a call and must
// not be shared between concurrent renders.
type FormatConfig struct {
	// NARep is the display string substituted for null values.
	NARep string
	// Precision is the floating point display precision in significant
	// digits.
	Precision int
	// ChopThreshold, when positive, renders floats at or below it in
	// magnitude as exact zero.
	ChopThreshold float64
	// FloatFormat overrides the fixed-point/scientific float policy.
	FloatFormat FloatFormatter
	// Formatters overrides value rendering per column label.
	Formatters map[string]ValueFormatter
	// PosFormatters overrides value rendering per column position and
	// wins over Formatters.
	PosFormatters map[int]ValueFormatter
	// IndexFormatter rewrites row label strings before display.
	IndexFormatter ValueFormatter

	Justify     Justify
	ColSpace    int // minimum column width; 0 for none
	MaxColWidth int // maximum column width with "..." truncation; 0 for none
	Sparsify    bool
	ShowHeader  bool
	ShowIndex   bool
	IndexNames  bool
	// LineWidth bounds console output width: a positive value wraps at
	// it, 0 never wraps, AutoLineWidth defers to terminal detection.
	LineWidth int

	// Escape escapes markup-reserved characters in markup cells.
	Escape bool
	// BoldRows renders index-derived body cells as header-styled cells.
	BoldRows bool
	// Classes are extra class names on the markup table element.
	Classes []string
}

// NewFormatConfig snapshots opts into a config holding the engine
// defaults for every unset key. A nil opts yields pure defaults.
func NewFormatConfig(opts *Options) *FormatConfig {
	justify := JustifyRight
	if opts.stringOr(OptJustify, "right") == "left" {
		justify = JustifyLeft
	}
	lineWidth := AutoLineWidth
	if w, ok := opts.Get(OptWidth); ok {
		lineWidth = 0
		if n, isInt := w.(int); isInt {
			lineWidth = n
		}
	}
	return &FormatConfig{
		NARep:         opts.stringOr(OptNARep, "NaN"),
		Precision:     opts.intOr(OptPrecision, 7),
		ChopThreshold: opts.floatOr(OptChopThreshold, 0),
		Justify:       justify,
		ColSpace:      opts.intOr(OptColumnSpace, 0),
		MaxColWidth:   opts.intOr(OptMaxColWidth, 50),
		Sparsify:      opts.boolOr(OptMultiSparse, true),
		ShowHeader:    true,
		ShowIndex:     true,
		IndexNames:    true,
		LineWidth:     lineWidth,
		Escape:        true,
	}
}

// formatterFor resolves the override for the column at position i with
// the given label, or nil when the default dtype policy applies.
func (c *FormatConfig) formatterFor(i int, label string) ValueFormatter {
	if f, ok := c.PosFormatters[i]; ok {
		return f
	}
	if f, ok := c.Formatters[label]; ok {
		return f
	}
	return nil
}

// indexLabel applies the index formatter override, if any.
func (c *FormatConfig) indexLabel(s string) string {
	if c.IndexFormatter == nil {
		return s
	}
	return c.IndexFormatter(s)
}

package framefmt

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// natRep is the null sentinel for time-flavored columns.
const natRep = "NaT"

// formatValues renders one display string per value of col, in row
// order, already padded to a uniform visible width. The formatter
// override, when non-nil, replaces the dtype's default policy.
func formatValues(col *Column, formatter ValueFormatter, cfg *FormatConfig) []string {
	var strs []string
	switch col.Dtype() {
	case Float:
		strs = formatFloats(col.floats, formatter, cfg)
	case Int:
		strs = formatInts(col.ints, formatter)
	case Datetime:
		strs = formatDatetimes(col.times, formatter)
	case Duration:
		strs = formatDurations(col.durs, formatter)
	default:
		strs = formatObjects(col.objs, formatter, cfg)
	}
	return makeFixedWidth(strs, cfg.Justify, 0, cfg.MaxColWidth)
}

var pprintEscaper = strings.NewReplacer("\t", `\t`, "\r", `\r`, "\n", `\n`)

// pprint stringifies an arbitrary value, escaping control characters
// that would break row alignment.
func pprint(v any) string {
	return pprintEscaper.Replace(fmt.Sprint(v))
}

// formatObjects pretty-prints object values. The null rule is a single
// consistent one: a nil entry renders as the literal "None" token, a
// float64 NaN entry renders as na_rep; the two null flavors are never
// folded together. When the column holds any real float, every
// non-float entry gets one leading space so decimal points line up
// with the sign slot of the float format.
func formatObjects(vals []any, formatter ValueFormatter, cfg *FormatConfig) []string {
	floatFormat := cfg.FloatFormat
	if floatFormat == nil {
		prec := cfg.Precision
		floatFormat = func(v float64) string { return fmt.Sprintf("% .*g", prec, v) }
	}
	hasFloat := false
	for _, v := range vals {
		if f, ok := v.(float64); ok && !math.IsNaN(f) {
			hasFloat = true
			break
		}
	}
	out := make([]string, len(vals))
	for i, v := range vals {
		f, isFloat := v.(float64)
		if isFloat && !math.IsNaN(f) {
			out[i] = floatFormat(f)
			continue
		}
		var s string
		switch {
		case isFloat: // NaN
			s = cfg.NARep
		case v == nil:
			s = "None"
		case formatter != nil:
			s = formatter(v)
		default:
			s = pprint(v)
		}
		if hasFloat {
			s = " " + s
		}
		out[i] = s
	}
	return out
}

// formatFloats applies the fixed-point policy with lock-step zero
// trimming, escalating the whole column to scientific notation when
// fixed-point would be wastefully wide or would lose small nonzero
// values entirely.
func formatFloats(vals []float64, formatter ValueFormatter, cfg *FormatConfig) []string {
	if formatter != nil {
		out := make([]string, len(vals))
		for i, v := range vals {
			out[i] = formatter(v)
		}
		return out
	}
	if cfg.FloatFormat != nil {
		out := make([]string, len(vals))
		for i, v := range vals {
			if math.IsNaN(v) {
				out[i] = cfg.NARep
				continue
			}
			out[i] = cfg.FloatFormat(v)
		}
		return out
	}

	digits := cfg.Precision
	fixed := formatFloatsWith(vals, fmt.Sprintf("%% .%df", digits-1), cfg)

	maxLen := 0
	for _, s := range fixed {
		if w := len(s); w > maxLen {
			maxLen = w
		}
	}
	tooLong := maxLen > digits+5

	hasLarge, hasSmall := false, false
	small := math.Pow(10, -float64(digits))
	for _, v := range vals {
		if math.IsNaN(v) {
			continue
		}
		a := math.Abs(v)
		if a > 1e8 {
			hasLarge = true
		}
		if a > 0 && a < small {
			hasSmall = true
		}
	}
	if (tooLong && hasLarge) || hasSmall {
		fixed = formatFloatsWith(vals, fmt.Sprintf("%% .%de", digits-1), cfg)
	}
	return fixed
}

// formatFloatsWith renders every value through one format verb,
// substituting na_rep for NaN and exact zero text for chopped values,
// then runs the lock-step trim pass.
func formatFloatsWith(vals []float64, fmtStr string, cfg *FormatConfig) []string {
	scientific := strings.HasSuffix(fmtStr, "e")
	out := make([]string, len(vals))
	for i, v := range vals {
		switch {
		case math.IsNaN(v):
			out[i] = cfg.NARep
		case cfg.ChopThreshold > 0 && math.Abs(v) <= cfg.ChopThreshold:
			if scientific {
				out[i] = "0"
			} else {
				out[i] = fmt.Sprintf(fmtStr, 0.0)
			}
		default:
			out[i] = fmt.Sprintf(fmtStr, v)
		}
	}
	return trimZeros(out, cfg.NARep)
}

// trimZeros strips trailing zeros from every formatted float in
// lock-step, then one trailing decimal point, leaving na_rep entries
// untouched. All strings shrink together so column alignment survives.
// Scientific notation is never trimmed.
func trimZeros(strs []string, naRep string) []string {
	trimmed := append([]string(nil), strs...)
	trimmable := func() bool {
		nonNA := 0
		for _, s := range trimmed {
			if s == naRep {
				continue
			}
			nonNA++
			if !strings.HasSuffix(s, "0") || strings.ContainsAny(s, "eE") {
				return false
			}
		}
		return nonNA > 0
	}
	for trimmable() {
		for i, s := range trimmed {
			if s != naRep {
				trimmed[i] = s[:len(s)-1]
			}
		}
	}
	for i, s := range trimmed {
		if s != naRep && strings.HasSuffix(s, ".") {
			trimmed[i] = s[:len(s)-1]
		}
	}
	return trimmed
}

func formatInts(vals []int64, formatter ValueFormatter) []string {
	out := make([]string, len(vals))
	for i, v := range vals {
		if formatter != nil {
			out[i] = formatter(v)
		} else {
			out[i] = fmt.Sprintf("% d", v)
		}
	}
	return out
}

func formatDatetimes(vals []*time.Time, formatter ValueFormatter) []string {
	out := make([]string, len(vals))
	for i, v := range vals {
		switch {
		case v == nil:
			out[i] = natRep
		case formatter != nil:
			out[i] = formatter(*v)
		default:
			out[i] = formatStamp(*v)
		}
	}
	return out
}

// formatStamp renders the canonical timestamp, carrying fractional
// seconds only when present.
func formatStamp(t time.Time) string {
	if t.Nanosecond() != 0 {
		return strings.TrimRight(t.Format("2006-01-02 15:04:05.000000000"), "0")
	}
	return t.Format("2006-01-02 15:04:05")
}

func formatDurations(vals []*time.Duration, formatter ValueFormatter) []string {
	out := make([]string, len(vals))
	for i, v := range vals {
		switch {
		case v == nil:
			out[i] = natRep
		case formatter != nil:
			out[i] = formatter(*v)
		default:
			out[i] = v.String()
		}
	}
	return out
}

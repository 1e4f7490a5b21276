package framefmt

import (
	"fmt"
	"strings"
)

// SeriesText renders a single column against a row index: an optional
// header line when the index is named, one aligned row per value, and
// a footer describing the column (name, length, dtype). A nil index
// gets a default 0..n-1 flat index; a nil cfg uses the engine
// defaults. An empty column renders as "".
func SeriesText(col *Column, index Index, cfg *FormatConfig) string {
	if cfg == nil {
		cfg = NewFormatConfig(nil)
	}
	n := col.Len()
	if n == 0 {
		return ""
	}
	if index == nil {
		labels := make([]string, n)
		for i := range labels {
			labels[i] = fmt.Sprint(i)
		}
		index = NewFlatIndex("", labels)
	}

	levels := indexLevels(index)
	if index.NLevels() > 1 && cfg.Sparsify {
		levels = sparseLevels(levels)
	}
	fmtIndex := strings.Split(adjoin(1, levels...), "\n")
	fmtValues := formatValues(col, nil, cfg)

	maxlen := 0
	for _, x := range fmtIndex {
		if w := strWidth(x); w > maxlen {
			maxlen = w
		}
	}
	padSpace := maxlen
	if padSpace > 60 {
		padSpace = 60
	}

	lines := make([]string, 0, n+2)
	if cfg.ShowHeader && index.HasNames() {
		lines = append(lines, strings.TrimRight(strings.Join(index.Names(), " "), " "))
	}
	for i := 0; i < n; i++ {
		lines = append(lines, justString(fmtIndex[i], padSpace, JustifyLeft)+"   "+fmtValues[i])
	}

	var footer []string
	if col.Name() != "" {
		footer = append(footer, "Name: "+pprint(col.Name()))
	}
	footer = append(footer, fmt.Sprintf("Length: %d", n))
	footer = append(footer, "dtype: "+col.Dtype().String())
	lines = append(lines, strings.Join(footer, ", "))

	return strings.Join(lines, "\n")
}

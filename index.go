package framefmt

import (
	"fmt"
	"strings"
)

// Index identifies the rows (or columns) of a Frame: either a flat
// ordered label sequence or a hierarchy of label levels, each level one
// label per entry. Labels are already-rendered strings; the engine
// displays them, it never parses or reorders them.
type Index interface {
	// Len returns the number of entries.
	Len() int
	// NLevels returns the number of label levels (1 for a flat index).
	NLevels() int
	// Names returns one name per level; unnamed levels are "".
	Names() []string
	// HasNames reports whether any level carries a name.
	HasNames() bool
	// Labels returns a copy of the label strings at the given level.
	// Levels run 0 (outermost) to NLevels()-1.
	Labels(level int) []string
	// String is the summary shown in empty-table output.
	String() string
}

// FlatIndex is a single ordered label sequence with an optional name.
type FlatIndex struct {
	name   string
	labels []string
}

// NewFlatIndex builds a flat index. name may be "".
func NewFlatIndex(name string, labels []string) *FlatIndex {
	return &FlatIndex{name: name, labels: labels}
}

func (ix *FlatIndex) Len() int     { return len(ix.labels) }
func (ix *FlatIndex) NLevels() int { return 1 }

func (ix *FlatIndex) Names() []string { return []string{ix.name} }
func (ix *FlatIndex) HasNames() bool  { return ix.name != "" }

func (ix *FlatIndex) Labels(level int) []string {
	return append([]string(nil), ix.labels...)
}

func (ix *FlatIndex) String() string {
	body := strings.Join(ix.labels, ", ")
	if ix.name != "" {
		return fmt.Sprintf("Index([%s], name=%s)", body, ix.name)
	}
	return fmt.Sprintf("Index([%s])", body)
}

// MultiIndex is a hierarchical index: an ordered sequence of levels,
// each level holding one label per entry. Entry tuples read
// top-to-bottom are assumed already grouped when sparsification is
// requested; the sparsifier only collapses contiguous repeats.
type MultiIndex struct {
	names  []string
	levels [][]string
}

// NewMultiIndex builds a hierarchical index from per-entry label levels.
// names may be nil (all levels unnamed) or must match the level count.
// Levels must be non-empty and equal-length.
func NewMultiIndex(names []string, levels ...[]string) (*MultiIndex, error) {
	if len(levels) == 0 {
		return nil, fmt.Errorf("%w: need at least one level", ErrLevels)
	}
	n := len(levels[0])
	for l, lev := range levels {
		if len(lev) != n {
			return nil, fmt.Errorf("%w: level %d has %d entries, want %d", ErrLength, l, len(lev), n)
		}
	}
	if names == nil {
		names = make([]string, len(levels))
	}
	if len(names) != len(levels) {
		return nil, fmt.Errorf("%w: %d names for %d levels", ErrLength, len(names), len(levels))
	}
	return &MultiIndex{names: names, levels: levels}, nil
}

func (m *MultiIndex) Len() int     { return len(m.levels[0]) }
func (m *MultiIndex) NLevels() int { return len(m.levels) }

func (m *MultiIndex) Names() []string { return append([]string(nil), m.names...) }

func (m *MultiIndex) HasNames() bool {
	for _, n := range m.names {
		if n != "" {
			return true
		}
	}
	return false
}

func (m *MultiIndex) Labels(level int) []string {
	return append([]string(nil), m.levels[level]...)
}

func (m *MultiIndex) String() string {
	tuples := make([]string, m.Len())
	for i := range tuples {
		parts := make([]string, m.NLevels())
		for l := range parts {
			parts[l] = m.levels[l][i]
		}
		tuples[i] = "(" + strings.Join(parts, ", ") + ")"
	}
	return fmt.Sprintf("MultiIndex([%s])", strings.Join(tuples, ", "))
}

// indexLevels renders every level of idx as its own label column.
func indexLevels(idx Index) [][]string {
	levels := make([][]string, idx.NLevels())
	for l := range levels {
		levels[l] = idx.Labels(l)
	}
	return levels
}

// levelRuns groups the entries of each level into contiguous runs,
// mapping a run's first offset to its length. A run at level l extends
// while the labels at every level up to and including l are unchanged,
// so two equal labels separated by a different value, or split by an
// outer-level change, stay separate runs. Each level's runs cover
// every entry exactly once.
func levelRuns(levels [][]string) []map[int]int {
	runs := make([]map[int]int, len(levels))
	for l := range runs {
		runs[l] = make(map[int]int)
	}
	if len(levels) == 0 || len(levels[0]) == 0 {
		return runs
	}
	n := len(levels[0])
	starts := make([]int, len(levels))
	for i := 1; i < n; i++ {
		changed := false
		for l, lev := range levels {
			if !changed && lev[i] == lev[i-1] {
				continue
			}
			changed = true
			runs[l][starts[l]] = i - starts[l]
			starts[l] = i
		}
	}
	for l := range levels {
		runs[l][starts[l]] = n - starts[l]
	}
	return runs
}

// sparseLevels blanks the repeated entries of each level, leaving a
// label only on the first entry of each run. Display-only: inputs are
// not modified.
func sparseLevels(levels [][]string) [][]string {
	runs := levelRuns(levels)
	out := make([][]string, len(levels))
	for l, lev := range levels {
		col := make([]string, len(lev))
		for start := range runs[l] {
			col[start] = lev[start]
		}
		out[l] = col
	}
	return out
}

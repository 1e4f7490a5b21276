package framefmt

import (
	"fmt"
	"strconv"
	"time"
)

// Column is a homogeneous typed value sequence tagged with a Dtype.
// Nulls are encoded per dtype: NaN for Float, nil pointers for Datetime
// and Duration, nil for Object. Int columns have no null encoding.
// Columns handed to a renderer are read-only for the duration of the
// call.
type Column struct {
	name  string
	dtype Dtype

	floats []float64
	ints   []int64
	times  []*time.Time
	durs   []*time.Duration
	objs   []any
}

// NewFloatColumn builds a Float column. NaN entries render as na_rep.
func NewFloatColumn(name string, values []float64) *Column {
	return &Column{name: name, dtype: Float, floats: values}
}

// NewIntColumn builds an Int column.
func NewIntColumn(name string, values []int64) *Column {
	return &Column{name: name, dtype: Int, ints: values}
}

// NewDatetimeColumn builds a Datetime column. Nil entries render as NaT.
func NewDatetimeColumn(name string, values []*time.Time) *Column {
	return &Column{name: name, dtype: Datetime, times: values}
}

// NewDurationColumn builds a Duration column. Nil entries render as NaT.
func NewDurationColumn(name string, values []*time.Duration) *Column {
	return &Column{name: name, dtype: Duration, durs: values}
}

// NewObjectColumn builds an Object column of arbitrary values. Nil
// entries render as the literal "None"; float64 NaN entries render as
// na_rep.
func NewObjectColumn(name string, values []any) *Column {
	return &Column{name: name, dtype: Object, objs: values}
}

// Name returns the column label.
func (c *Column) Name() string { return c.name }

// Dtype returns the column's value kind.
func (c *Column) Dtype() Dtype { return c.dtype }

// Len returns the number of rows.
func (c *Column) Len() int {
	switch c.dtype {
	case Float:
		return len(c.floats)
	case Int:
		return len(c.ints)
	case Datetime:
		return len(c.times)
	case Duration:
		return len(c.durs)
	default:
		return len(c.objs)
	}
}

// Frame is an ordered set of equal-length columns plus a row index and
// column labels. The engine never mutates a Frame; callers must not
// mutate one while a render call is in flight.
type Frame struct {
	cols    []*Column
	index   Index
	columns Index
}

// NewFrame builds a frame over cols. A nil index gets a default
// 0..n-1 flat index. Column labels start out as a flat index of the
// column names; use SetColumnIndex for hierarchical column labels.
// Ragged columns or an index of the wrong length fail with ErrLength.
func NewFrame(index Index, cols ...*Column) (*Frame, error) {
	n := -1
	for _, c := range cols {
		if n == -1 {
			n = c.Len()
			continue
		}
		if c.Len() != n {
			return nil, fmt.Errorf("%w: column %q has %d rows, want %d", ErrLength, c.Name(), c.Len(), n)
		}
	}
	if n == -1 {
		n = 0
	}
	if index == nil {
		labels := make([]string, n)
		for i := range labels {
			labels[i] = strconv.Itoa(i)
		}
		index = NewFlatIndex("", labels)
	}
	if index.Len() != n {
		return nil, fmt.Errorf("%w: index has %d rows, want %d", ErrLength, index.Len(), n)
	}
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = c.Name()
	}
	return &Frame{cols: cols, index: index, columns: NewFlatIndex("", names)}, nil
}

// SetColumnIndex replaces the column labels, typically with a
// MultiIndex for hierarchical column headers. The index length must
// equal the column count.
func (f *Frame) SetColumnIndex(idx Index) error {
	if idx.Len() != len(f.cols) {
		return fmt.Errorf("%w: column index has %d entries for %d columns", ErrLength, idx.Len(), len(f.cols))
	}
	f.columns = idx
	return nil
}

// NumRows returns the row count.
func (f *Frame) NumRows() int { return f.index.Len() }

// NumCols returns the column count.
func (f *Frame) NumCols() int { return len(f.cols) }

// Col returns the column at position i.
func (f *Frame) Col(i int) *Column { return f.cols[i] }

// Index returns the row index.
func (f *Frame) Index() Index { return f.index }

// Columns returns the column labels.
func (f *Frame) Columns() Index { return f.columns }

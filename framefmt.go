package framefmt

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Sentinel errors for programmatic error handling.
var (
	ErrLength      = errors.New("length mismatch")
	ErrAliasCount  = errors.New("alias count mismatch")
	ErrInvalidSink = errors.New("invalid output sink")
	ErrEncoding    = errors.New("unknown encoding")
	ErrQuoting     = errors.New("quoting policy violation")
	ErrLevels      = errors.New("invalid index levels")
)

// Dtype tags the value kind of a column and drives formatter selection.
type Dtype int

const (
	Object Dtype = iota
	Float
	Int
	Datetime
	Duration
)

// String returns the dtype name shown in footers and summaries.
func (d Dtype) String() string {
	switch d {
	case Float:
		return "float64"
	case Int:
		return "int64"
	case Datetime:
		return "datetime64"
	case Duration:
		return "timedelta64"
	default:
		return "object"
	}
}

// Numeric reports whether columns of this dtype align like numbers:
// right-justified values and a leading-space header.
func (d Dtype) Numeric() bool { return d == Float || d == Int }

// Justify controls which side cell padding goes on. The zero value is
// JustifyRight, the engine-wide default.
type Justify int

const (
	JustifyRight Justify = iota
	JustifyLeft
)

func (j Justify) String() string {
	if j == JustifyLeft {
		return "left"
	}
	return "right"
}

// Quoting selects the delimited writer's quoting policy.
type Quoting int

const (
	QuoteMinimal    Quoting = iota // quote only fields that need it
	QuoteAll                       // quote every field
	QuoteNonNumeric                // quote fields that do not parse as numbers
	QuoteNone                      // never quote; separator in a field is an error
)

// HeaderMode says how the delimited writer labels columns: the column
// labels themselves, nothing at all, or one caller-supplied alias per
// column. Construct values with DefaultHeader, NoHeader, or
// HeaderAliases.
type HeaderMode struct {
	hide    bool
	aliases []string
}

// DefaultHeader writes the frame's own column labels.
func DefaultHeader() HeaderMode { return HeaderMode{} }

// NoHeader suppresses the header row entirely.
func NoHeader() HeaderMode { return HeaderMode{hide: true} }

// HeaderAliases writes the given strings instead of the column labels.
// The alias count must equal the column count or the write fails with
// ErrAliasCount.
func HeaderAliases(aliases ...string) HeaderMode {
	return HeaderMode{aliases: append([]string(nil), aliases...)}
}

func (h HeaderMode) show() bool { return !h.hide }

// resolveSink turns dst into a writer. dst may be an io.Writer, used
// as-is, or a string path, which is created and must be closed via the
// returned func. Anything else is ErrInvalidSink.
func resolveSink(dst any) (io.Writer, func() error, error) {
	switch v := dst.(type) {
	case io.Writer:
		return v, func() error { return nil }, nil
	case string:
		f, err := os.Create(v)
		if err != nil {
			return nil, nil, err
		}
		return f, f.Close, nil
	default:
		return nil, nil, fmt.Errorf("%w: %T is neither io.Writer nor file path", ErrInvalidSink, dst)
	}
}

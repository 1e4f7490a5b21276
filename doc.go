// Package framefmt renders labeled columnar data as text tables, HTML,
// LaTeX, delimited files, and one-column series listings.
//
// The data model is a [Frame]: typed columns ([NewFloatColumn],
// [NewIntColumn], [NewDatetimeColumn], [NewDurationColumn],
// [NewObjectColumn]) labeled along both axes by an [Index]. An index is
// either a [FlatIndex] of plain labels or a [MultiIndex] of aligned
// label levels; hierarchical indexes on either axis render sparsely,
// with repeated labels blanked after the first row of each run.
//
// # Rendering Surfaces
//
//   - [Text], [WriteText] — fixed-width console table, optionally
//     wrapped into vertical blocks when it exceeds the line width
//   - [SeriesText] — single column with its index and a dtype footer
//   - [HTML], [HTMLTree], [WriteHTML] — table element with colspan and
//     rowspan spans for hierarchical labels
//   - [LaTeX], [WriteLaTeX], [SaveLaTeX] — booktabs tabular environment
//   - [WriteCSV], [SaveCSV] — streaming delimited output in row chunks
//
// The Save variants accept either an [io.Writer] or a file path.
//
// # Formatting Policy
//
// Floats in a column are formatted together, not independently: the
// column renders in fixed-point notation at the configured precision,
// trailing zeros are trimmed from all values in lock-step so decimal
// points stay aligned, and the whole column escalates to scientific
// notation when fixed-point would be too wide for its magnitudes or
// would round small nonzero values down to zero. A chop threshold can
// flush near-zero noise to exact zero text. [EngFormatter] builds a
// float formatter using engineering notation with SI prefixes.
//
// # Configuration
//
// [FormatConfig] carries the rendering knobs (precision, null text,
// justification, per-column formatter overrides, header and index
// visibility). [NewFormatConfig] seeds one from an [Options] snapshot,
// which can be loaded from YAML with [OptionsFromYAML]. Console
// rendering with an unset line width asks the terminal for its size
// when standard output is interactive.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrLength] — ragged columns or index levels
//   - [ErrAliasCount] — header alias count does not match the columns
//   - [ErrInvalidSink] — destination is neither a writer nor a path
//   - [ErrEncoding] — unknown output character set
//   - [ErrQuoting] — separator inside a field under [QuoteNone]
//   - [ErrLevels] — invalid hierarchical index construction
package framefmt

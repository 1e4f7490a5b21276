package framefmt

import (
	"gopkg.in/yaml.v3"
)

// Settings keys consumed by NewFormatConfig. The store is externally
// owned; the engine only reads it, once, at config construction.
const (
	OptPrecision     = "display.precision"
	OptNARep         = "display.na_rep"
	OptChopThreshold = "display.chop_threshold"
	OptColumnSpace   = "display.column_space"
	OptMaxColWidth   = "display.max_colwidth"
	OptJustify       = "display.colheader_justify"
	OptMultiSparse   = "display.multi_sparse"
	OptWidth         = "display.width"
	OptHeight        = "display.height"
	OptEncoding      = "display.encoding"
)

// Options is an injected key→value display settings store. Unset keys
// fall back to the engine defaults, so both the zero value and nil are
// usable. Options is not safe for concurrent mutation; populate it
// before handing it to NewFormatConfig.
type Options struct {
	m map[string]any
}

// NewOptions returns an empty settings store.
func NewOptions() *Options {
	return &Options{m: make(map[string]any)}
}

// OptionsFromYAML decodes a settings snapshot, for example:
//
//	display.precision: 4
//	display.na_rep: "-"
//	display.multi_sparse: false
func OptionsFromYAML(data []byte) (*Options, error) {
	var m map[string]any
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	if m == nil {
		m = make(map[string]any)
	}
	return &Options{m: m}, nil
}

// Set stores a value under key.
func (o *Options) Set(key string, value any) {
	if o.m == nil {
		o.m = make(map[string]any)
	}
	o.m[key] = value
}

// Get returns the raw value for key.
func (o *Options) Get(key string) (any, bool) {
	if o == nil || o.m == nil {
		return nil, false
	}
	v, ok := o.m[key]
	return v, ok
}

func (o *Options) intOr(key string, def int) int {
	v, ok := o.Get(key)
	if !ok {
		return def
	}
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	default:
		return def
	}
}

func (o *Options) floatOr(key string, def float64) float64 {
	v, ok := o.Get(key)
	if !ok {
		return def
	}
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	default:
		return def
	}
}

func (o *Options) stringOr(key string, def string) string {
	if v, ok := o.Get(key); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return def
}

func (o *Options) boolOr(key string, def bool) bool {
	if v, ok := o.Get(key); ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return def
}

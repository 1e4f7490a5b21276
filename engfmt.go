package framefmt

import (
	"fmt"
	"math"
)

// engPrefixes maps a power of ten to its SI prefix letter.
var engPrefixes = map[int]string{
	-24: "y",
	-21: "z",
	-18: "a",
	-15: "f",
	-12: "p",
	-9:  "n",
	-6:  "u",
	-3:  "m",
	0:   "",
	3:   "k",
	6:   "M",
	9:   "G",
	12:  "T",
	15:  "P",
	18:  "E",
	21:  "Z",
	24:  "Y",
}

// EngFormatter builds a float formatter that renders values in
// engineering notation: a mantissa in [1, 1000) and an exponent that
// is a multiple of three. accuracy is the number of digits after the
// decimal point. With usePrefix the exponent becomes an SI letter
// (within the yocto to yotta range); otherwise it prints as E+09
// style text.
func EngFormatter(accuracy int, usePrefix bool) FloatFormatter {
	return func(v float64) string {
		if math.IsNaN(v) {
			return "NaN"
		}
		pow10 := 0
		if v != 0 {
			pow10 = int(math.Floor(math.Log10(math.Abs(v))/3.0)) * 3
		}
		if pow10 < -24 {
			pow10 = -24
		}
		if pow10 > 24 {
			pow10 = 24
		}
		mant := v / math.Pow(10, float64(pow10))
		// Log10 is inexact at power-of-ten boundaries; renormalize the
		// mantissa into [1, 1000) where the prefix range allows.
		if math.Abs(mant) >= 1000 && pow10 < 24 {
			mant /= 1000
			pow10 += 3
		} else if math.Abs(mant) < 1 && mant != 0 && pow10 > -24 {
			mant *= 1000
			pow10 -= 3
		}

		var suffix string
		if usePrefix {
			suffix = engPrefixes[pow10]
		} else if pow10 >= 0 {
			suffix = fmt.Sprintf("E+%02d", pow10)
		} else {
			suffix = fmt.Sprintf("E-%02d", -pow10)
		}
		return fmt.Sprintf("% .*f%s", accuracy, mant, suffix)
	}
}

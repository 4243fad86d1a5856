package pagekit

import (
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	// leading numeric prefix, as accepted by JavaScript's parseFloat
	floatPrefixRegex = regexp.MustCompile(`^[+-]?(Infinity|\d+\.?\d*(?:[eE][+-]?\d+)?|\.\d+(?:[eE][+-]?\d+)?)`)

	// digit runs followed by a decimal point
	groupedRunRegex = regexp.MustCompile(`\d+\.`)
)

// Display is a formatted value that is either a number or text.
//
// ToDecimal and ToThousandsGrouped return the number 0 for empty input and
// text otherwise. Display keeps that difference visible instead of folding
// both into a string.
type Display struct {
	text    string
	number  float64
	numeric bool
}

// Number creates a numeric Display.
func Number(f float64) Display {
	return Display{number: f, numeric: true}
}

// Text creates a textual Display.
func Text(s string) Display {
	return Display{text: s}
}

// IsNumber reports whether d holds a number rather than text.
func (d Display) IsNumber() bool {
	return d.numeric
}

// Float returns the numeric value of d. Text is parsed like ToFloat parses
// element values, with grouping separators removed.
func (d Display) Float() float64 {
	if d.numeric {
		return d.number
	}
	return ParseFloat(strings.ReplaceAll(d.text, ",", ""))
}

func (d Display) String() string {
	if d.numeric {
		return strconv.FormatFloat(d.number, 'f', -1, 64)
	}
	return d.text
}

// ToFloat returns the numeric value of target.
//
// A Literal is used as is. Anything else is extracted with ExtractValue;
// an empty value is 0, otherwise the longest numeric prefix is parsed
// ("12.5kg" is 12.5) and a value without one is NaN.
func (t *Toolkit) ToFloat(target Target) float64 {
	if lit, ok := target.(Literal); ok {
		return float64(lit)
	}

	value := t.ExtractValue(target)
	if IsEmpty(value) {
		return 0
	}
	return ParseFloat(value)
}

// ToDecimal returns target rounded to two fraction digits.
//
// Zero comes back as the number 0, not "0.00", unless the toolkit was
// built WithPaddedZero.
func (t *Toolkit) ToDecimal(target Target) Display {
	f := t.ToFloat(target)
	if f == 0 {
		if t.paddedZero {
			return Text("0.00")
		}
		return Number(0)
	}
	return Text(FormatDecimal(f))
}

// ToThousandsGrouped returns the value of target with "," inserted every
// three digits before the decimal point. Empty values return the number 0.
func (t *Toolkit) ToThousandsGrouped(target Target) Display {
	value := t.ExtractValue(target)
	if IsEmpty(value) {
		return Number(0)
	}
	return Text(GroupThousands(value))
}

// ParseFloat parses the leading numeric part of s. It returns NaN when s
// does not start with a number.
func ParseFloat(s string) float64 {
	m := floatPrefixRegex.FindString(strings.TrimLeftFunc(s, unicode.IsSpace))
	if m == "" {
		return math.NaN()
	}
	switch m {
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}
	// out of range values still come back as ±Inf
	f, _ := strconv.ParseFloat(m, 64)
	return f
}

// FormatDecimal renders f with exactly two fraction digits.
//
// Rounding works on the exact binary value of f and resolves a tie away
// from zero, so 1.125 becomes "1.13" while 2.005 (stored just below
// 2.005) becomes "2.00". NaN and infinities use strconv's spelling.
func FormatDecimal(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return strconv.FormatFloat(f, 'f', 2, 64)
	}

	r := new(big.Rat).SetFloat64(math.Abs(f))
	r.Mul(r, big.NewRat(100, 1))
	cents, rem := new(big.Int).QuoRem(r.Num(), r.Denom(), new(big.Int))
	if rem.Lsh(rem, 1).Cmp(r.Denom()) >= 0 {
		cents.Add(cents, big.NewInt(1))
	}

	digits := cents.String()
	if len(digits) < 3 {
		digits = strings.Repeat("0", 3-len(digits)) + digits
	}
	s := digits[:len(digits)-2] + "." + digits[len(digits)-2:]
	if f < 0 {
		s = "-" + s
	}
	return s
}

// GroupThousands inserts "," every three digits in each digit run that is
// directly followed by ".". Runs without a decimal point are left alone,
// so "1234567.89" becomes "1,234,567.89" but "1234567" is unchanged.
func GroupThousands(s string) string {
	return groupedRunRegex.ReplaceAllStringFunc(s, func(run string) string {
		digits := run[:len(run)-1]
		if len(digits) <= 3 {
			return run
		}

		var sb strings.Builder
		lead := len(digits) % 3
		if lead > 0 {
			sb.WriteString(digits[:lead])
		}
		for i := lead; i < len(digits); i += 3 {
			if sb.Len() > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(digits[i : i+3])
		}
		sb.WriteByte('.')
		return sb.String()
	})
}

// CapitalizeWords uppercases the first letter of every space separated word.
//
// The input is split on single spaces and joined back with single spaces;
// surrounding whitespace is trimmed from the result.
func CapitalizeWords(s string) string {
	words := strings.Split(s, " ")
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		if size == 0 {
			continue
		}
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.TrimSpace(strings.Join(words, " "))
}

// Clean returns "" for empty values and s otherwise.
func Clean(s string) string {
	if IsEmpty(s) {
		return ""
	}
	return s
}

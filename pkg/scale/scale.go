// Package scale parses free-text ingredient lines into quantity, unit and name,
// rescales the quantity for a different number of servings and renders the
// line back to text using common culinary fractions.
//
// Nothing in this package returns an error: input that does not look like
// "<quantity> [unit] <name>" is kept verbatim with a quantity of 1.
package scale

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Ingredient is the decomposed form of an ingredient line. An empty Unit means the line has none.
type Ingredient struct {
	Quantity float64
	Unit     string
	Name     string
}

// Fraction maps a two-decimal value to the fraction printed for it
type Fraction struct {
	Value float64
	Text  string
}

// DefaultFractions are the fractions a scaled quantity may be rendered as
var DefaultFractions = []Fraction{
	{0.25, "1/4"},
	{0.33, "1/3"},
	{0.5, "1/2"},
	{0.67, "2/3"},
	{0.75, "3/4"},
}

// DefaultTolerance is the largest distance to a fraction that is still printed as that fraction
const DefaultTolerance = 0.05

var linePattern = regexp.MustCompile(`^(\d+(?:\.\d+)?(?:/\d+(?:\.\d+)?)?)?\s*([A-Za-z]+)?\s+(.+)$`)

// Parse splits line into quantity, unit and name
func Parse(line string) Ingredient {
	fallback := Ingredient{Quantity: 1, Name: line}

	m := linePattern.FindStringSubmatch(line)
	if m == nil || m[1] == "" {
		return fallback
	}

	quantity, ok := parseQuantity(m[1])
	if !ok {
		return fallback
	}

	return Ingredient{
		Quantity: quantity,
		Unit:     m[2],
		Name:     m[3],
	}
}

func parseQuantity(token string) (float64, bool) {
	num, den, isFraction := strings.Cut(token, "/")
	n, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, false
	}
	if !isFraction {
		return n, true
	}

	d, err := strconv.ParseFloat(den, 64)
	if err != nil || d == 0 {
		return 0, false
	}
	return n / d, true
}

// Formatter renders quantities. The zero value renders every non-whole quantity as a decimal.
type Formatter struct {
	Fractions []Fraction
	Tolerance float64
}

// DefaultFormatter uses DefaultFractions and DefaultTolerance
var DefaultFormatter = Formatter{
	Fractions: DefaultFractions,
	Tolerance: DefaultTolerance,
}

// NewFormatter returns a formatter with the default fraction table and the given tolerance.
// A non-positive tolerance keeps DefaultTolerance.
func NewFormatter(tolerance float64) Formatter {
	f := DefaultFormatter
	if tolerance > 0 {
		f.Tolerance = tolerance
	}
	return f
}

// FormatQuantity renders q as an integer, a fraction from the table or a one-decimal number
func (f Formatter) FormatQuantity(q float64) string {
	if q == math.Floor(q) {
		if q == 0 {
			q = 0 // drop the sign of -0
		}
		return strconv.FormatFloat(q, 'f', -1, 64)
	}

	rounded := math.Round(q*100) / 100

	for _, fr := range f.Fractions {
		if fr.Value == rounded {
			return fr.Text
		}
	}

	best := -1
	bestDiff := math.Inf(1)
	for i, fr := range f.Fractions {
		if diff := math.Abs(fr.Value - rounded); diff < bestDiff {
			best, bestDiff = i, diff
		}
	}
	if best >= 0 && bestDiff < f.Tolerance {
		return f.Fractions[best].Text
	}

	// FormatFloat rounds ties to even; round half away from zero first.
	oneDecimal := math.Round(rounded*10) / 10
	return strings.TrimSuffix(strconv.FormatFloat(oneDecimal, 'f', 1, 64), ".0")
}

// Format renders ing back into a single line
func (f Formatter) Format(ing Ingredient) string {
	parts := []string{f.FormatQuantity(ing.Quantity)}
	if ing.Unit != "" {
		parts = append(parts, ing.Unit)
	}
	parts = append(parts, ing.Name)
	return strings.TrimSpace(strings.Join(parts, " "))
}

// ScaleRecipe multiplies the quantity of every line by factor. Order is preserved.
// factor is not validated; callers keep servings at 1 or more.
func (f Formatter) ScaleRecipe(lines []string, factor float64) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		ing := Parse(line)
		ing.Quantity *= factor
		out[i] = f.Format(ing)
	}
	return out
}

// FormatQuantity renders q with the default formatter
func FormatQuantity(q float64) string {
	return DefaultFormatter.FormatQuantity(q)
}

// Format renders ing with the default formatter
func Format(ing Ingredient) string {
	return DefaultFormatter.Format(ing)
}

// ScaleRecipe scales lines with the default formatter
func ScaleRecipe(lines []string, factor float64) []string {
	return DefaultFormatter.ScaleRecipe(lines, factor)
}

var leadingInt = regexp.MustCompile(`^\s*(\d+)`)

// ServingsCount returns the leading integer of a label like "4 servings", or 1
func ServingsCount(label string) int {
	m := leadingInt.FindStringSubmatch(label)
	if m == nil {
		return 1
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n <= 0 {
		return 1
	}
	return n
}

// Factor is the ratio between newServings and the servings a recipe was written for
func Factor(servingsLabel string, newServings int) float64 {
	return float64(newServings) / float64(ServingsCount(servingsLabel))
}

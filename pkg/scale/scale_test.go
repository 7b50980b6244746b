package scale

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		line string
		want Ingredient
	}{
		{"2 cups flour", Ingredient{Quantity: 2, Unit: "cups", Name: "flour"}},
		{"1/2 tsp salt", Ingredient{Quantity: 0.5, Unit: "tsp", Name: "salt"}},
		{"1.5 cups whole milk", Ingredient{Quantity: 1.5, Unit: "cups", Name: "whole milk"}},
		{"6 large eggs", Ingredient{Quantity: 6, Unit: "large", Name: "eggs"}},
		{"2 eggs", Ingredient{Quantity: 2, Name: "eggs"}},
		{"3/4 cup sugar", Ingredient{Quantity: 0.75, Unit: "cup", Name: "sugar"}},
		{"vanilla extract", Ingredient{Quantity: 1, Name: "vanilla extract"}},
		{"salt", Ingredient{Quantity: 1, Name: "salt"}},
		{"2", Ingredient{Quantity: 1, Name: "2"}},
		{"1/0 cup water", Ingredient{Quantity: 1, Name: "1/0 cup water"}},
		{"", Ingredient{Quantity: 1, Name: ""}},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.line))
		})
	}
}

func TestFormatQuantity(t *testing.T) {
	tests := []struct {
		name string
		q    float64
		want string
	}{
		{"whole", 4, "4"},
		{"zero", 0, "0"},
		{"quarter", 0.25, "1/4"},
		{"third", 1.0 / 3.0, "1/3"},
		{"half", 0.5, "1/2"},
		{"two thirds", 2.0 / 3.0, "2/3"},
		{"three quarters", 0.75, "3/4"},
		{"near half", 0.52, "1/2"},
		{"near quarter", 0.27, "1/4"},
		{"outside tolerance", 0.4, "0.4"},
		{"one and a half stays decimal", 1.5, "1.5"},
		{"trailing zero stripped", 2.98, "3"},
		{"one decimal", 1.2, "1.2"},
		{"small", 0.1, "0.1"},
		{"tie rounds up", 1.25, "1.3"},
		{"second tie rounds up", 2.25, "2.3"},
		{"tie above half", 1.75, "1.8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatQuantity(tt.q))
		})
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "2 cups flour", Format(Ingredient{Quantity: 2, Unit: "cups", Name: "flour"}))
	assert.Equal(t, "1/2 tsp salt", Format(Ingredient{Quantity: 0.5, Unit: "tsp", Name: "salt"}))
	assert.Equal(t, "3 eggs", Format(Ingredient{Quantity: 3, Name: "eggs"}))
	assert.Equal(t, "1 vanilla extract", Format(Parse("vanilla extract")))
}

func TestFormatterTolerance(t *testing.T) {
	strict := Formatter{Fractions: DefaultFractions, Tolerance: 0.01}
	assert.Equal(t, "0.5", strict.FormatQuantity(0.52))

	loose := NewFormatter(0.1)
	assert.Equal(t, "1/2", loose.FormatQuantity(0.58))

	assert.Equal(t, DefaultTolerance, NewFormatter(0).Tolerance)

	var bare Formatter
	assert.Equal(t, "0.5", bare.FormatQuantity(0.5))
}

func TestScaleRecipe(t *testing.T) {
	got := ScaleRecipe([]string{"2 cups flour", "1/2 tsp salt"}, 2)
	assert.Equal(t, []string{"4 cups flour", "1 tsp salt"}, got)
}

func TestScaleRecipeRoundsTiesUp(t *testing.T) {
	assert.Equal(t, []string{"1.3 cups flour"}, ScaleRecipe([]string{"5 cups flour"}, 0.25))
	assert.Equal(t, []string{"1.3 cup sugar"}, ScaleRecipe([]string{"1/4 cup sugar"}, 5))
}

func TestScaleRecipePreservesOrderAndText(t *testing.T) {
	lines := []string{"6 large eggs", "pinch of nutmeg", "1/4 cup grated parmesan", "3 slices bacon"}

	got := ScaleRecipe(lines, 0.5)
	require.Len(t, got, len(lines))
	assert.Equal(t, "3 large eggs", got[0])
	// No leading quantity: the line becomes the name with quantity 1.
	assert.Equal(t, "1/2 pinch of nutmeg", got[1])
	// 0.125 is outside every fraction's tolerance.
	assert.Equal(t, "0.1 cup grated parmesan", got[2])
	assert.Equal(t, "1.5 slices bacon", got[3])
}

func TestScaleRecipeEmpty(t *testing.T) {
	assert.Empty(t, ScaleRecipe(nil, 3))
	assert.Empty(t, ScaleRecipe([]string{}, 3))
}

func TestScaleRecipeUnvalidatedFactor(t *testing.T) {
	assert.Equal(t, []string{"0 cups flour"}, ScaleRecipe([]string{"2 cups flour"}, 0))
	assert.Equal(t, []string{"-2 cups flour"}, ScaleRecipe([]string{"2 cups flour"}, -1))
	assert.Equal(t, []string{"0 cups flour"}, ScaleRecipe([]string{"0 cups flour"}, -1))
}

func TestScaleByOneIsIdempotent(t *testing.T) {
	canonical := []string{"2 cups flour", "1/2 tsp salt", "1/3 cup milk", "2/3 cup oats", "3 eggs", "1.2 kg potatoes"}

	once := ScaleRecipe(canonical, 1)
	assert.Equal(t, canonical, once)
	assert.Equal(t, once, ScaleRecipe(once, 1))
}

func TestScaleByOneNormalizesDecimals(t *testing.T) {
	// Lossy round trip: decimals close to a known fraction come back as that fraction.
	got := ScaleRecipe([]string{"0.5 cup butter", "0.33 cup honey", "0.25 tsp pepper"}, 1)
	assert.Equal(t, []string{"1/2 cup butter", "1/3 cup honey", "1/4 tsp pepper"}, got)

	// Mixed numbers are not understood; the whole number is the quantity and the rest is the name.
	assert.Equal(t, []string{"2 1/2 cups flour"}, ScaleRecipe([]string{"1 1/2 cups flour"}, 2))
}

func TestRoundTripWithNumericQuantity(t *testing.T) {
	for _, line := range []string{"2 cups flour", "1/2 tsp salt", "4 cloves garlic", "3/4 cup sugar"} {
		parsed := Parse(line)
		again := Parse(Format(parsed))
		assert.InDelta(t, parsed.Quantity, again.Quantity, 0.01, line)
		assert.Equal(t, parsed.Unit, again.Unit, line)
		assert.Equal(t, parsed.Name, again.Name, line)
	}
}

func TestScaleRecipeConcurrentCalls(t *testing.T) {
	lines := []string{"2 cups flour", "1/2 tsp salt", "1 onion"}
	want := ScaleRecipe(lines, 3)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, want, ScaleRecipe(lines, 3))
		}()
	}
	wg.Wait()
}

func TestServingsCountAndFactor(t *testing.T) {
	assert.Equal(t, 4, ServingsCount("4 servings"))
	assert.Equal(t, 12, ServingsCount(" 12 cookies"))
	assert.Equal(t, 1, ServingsCount("serves a crowd"))
	assert.Equal(t, 1, ServingsCount("0 servings"))
	assert.Equal(t, 1, ServingsCount(""))

	assert.Equal(t, 2.0, Factor("2 servings", 4))
	assert.Equal(t, 0.5, Factor("4 servings", 2))
	assert.Equal(t, 3.0, Factor("family size", 3))
}

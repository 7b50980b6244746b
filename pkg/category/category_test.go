package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategorize(t *testing.T) {
	tests := []struct {
		name string
		want Category
	}{
		{"Tomatoes", Produce},
		{"red onion", Produce},
		{"whole milk", Dairy},
		{"eggs", Dairy},
		{"chicken breast", Meat},
		{"spaghetti", Grains},
		{"sea salt", Spices},
		{"olive oil", Staples},
		{"black pepper", Spices},
		{"peanut butter", Staples},
		{"eggplant", Produce},
		{"graham crackers", Grains},
		{"boiled ham", Meat},
		{"soil", Other},
		{"smoked ham, sliced", Meat},
		{"unsalted butter", Dairy},
		{"dish soap", Other},
		{"", Other},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Categorize(tt.name))
		})
	}
}

func TestOrderCoversEveryCategory(t *testing.T) {
	for c := range keywords {
		assert.Contains(t, Order, c)
	}
	assert.Equal(t, Other, Order[len(Order)-1])
}

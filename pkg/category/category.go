// Package category tags ingredient names with a grocery category using keyword lists.
package category

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Category is a grocery aisle an item belongs to
type Category string

const (
	Produce Category = "Produce"
	Dairy   Category = "Dairy"
	Meat    Category = "Meat & Seafood"
	Grains  Category = "Bakery & Grains"
	Spices  Category = "Spices & Condiments"
	Staples Category = "Pantry Staples"
	Other   Category = "Other"
)

// Order is the display order of categories. Categorize checks them in this order too.
var Order = []Category{Produce, Dairy, Meat, Grains, Spices, Staples, Other}

var keywords = map[Category][]string{
	Produce: {
		"apple", "avocado", "banana", "basil", "berry", "berries", "broccoli", "cabbage",
		"carrot", "celery", "cilantro", "cucumber", "garlic", "ginger", "kale", "lemon",
		"lettuce", "lime", "mushroom", "onion", "parsley", "bell pepper", "potato",
		"scallion", "spinach", "tomato", "zucchini",
	},
	Dairy: {
		"butter", "cheddar", "cheese", "cream", "egg", "milk", "mozzarella", "parmesan",
		"yogurt", "yoghurt",
	},
	Meat: {
		"bacon", "beef", "chicken", "fish", "ham", "lamb", "pork", "salmon", "sausage",
		"shrimp", "tuna", "turkey",
	},
	Grains: {
		"bread", "cracker", "flour", "noodle", "oat", "pasta", "quinoa", "rice", "spaghetti",
		"tortilla",
	},
	Spices: {
		"cinnamon", "cumin", "ketchup", "mayonnaise", "mustard", "nutmeg", "oregano",
		"paprika", "pepper", "salt", "soy sauce", "vinegar",
	},
	Staples: {
		"baking powder", "baking soda", "beans", "broth", "honey", "lentil", "oil",
		"stock", "sugar", "vanilla",
	},
}

// overrides name items whose generic keyword points at the wrong aisle.
// They are checked before the keyword lists.
var overrides = []struct {
	keyword  string
	category Category
}{
	{"eggplant", Produce},
	{"butternut", Produce},
	{"peanut butter", Staples},
	{"coconut milk", Staples},
	{"cream of tartar", Staples},
}

// hasWordPrefix reports whether kw occurs in s starting at a word boundary,
// so "eggs" matches "egg" but "graham" does not match "ham"
func hasWordPrefix(s, kw string) bool {
	for from := 0; ; {
		i := strings.Index(s[from:], kw)
		if i < 0 {
			return false
		}
		i += from
		if prev, _ := utf8.DecodeLastRuneInString(s[:i]); i == 0 || !unicode.IsLetter(prev) {
			return true
		}
		from = i + 1
	}
}

// Categorize returns the first category with a keyword starting a word of name, or Other
func Categorize(name string) Category {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		return Other
	}

	for _, o := range overrides {
		if hasWordPrefix(n, o.keyword) {
			return o.category
		}
	}
	for _, c := range Order {
		for _, kw := range keywords[c] {
			if hasWordPrefix(n, kw) {
				return c
			}
		}
	}
	return Other
}

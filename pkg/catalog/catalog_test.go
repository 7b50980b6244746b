package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/korjavin/pantrychef/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()
	require.Greater(t, c.Len(), 2)

	r, err := c.Get("1")
	require.NoError(t, err)
	assert.Equal(t, "Cheesy Veggie Omelette", r.Title)
	assert.NotEmpty(t, r.Ingredients)
	assert.NotEmpty(t, r.Nutrition.Calories)

	_, err = c.Get("nonexistent")
	assert.ErrorIs(t, err, ErrRecipeNotFound)
}

func TestAllReturnsCopy(t *testing.T) {
	c := Default()
	all := c.All()
	all[0].Title = "changed"

	r, err := c.Get(all[0].ID)
	require.NoError(t, err)
	assert.NotEqual(t, "changed", r.Title)
}

func TestRecipeSlicesAreNotShared(t *testing.T) {
	ingredients := []string{"2 cups flour", "1 egg"}
	c, err := New([]models.Recipe{{ID: "a", Title: "A", Ingredients: ingredients, Instructions: []string{"Mix."}}})
	require.NoError(t, err)

	// Changes to the input after New do not reach the catalog.
	ingredients[0] = "changed"

	all := c.All()
	all[0].Ingredients[1] = "changed"
	all[0].Instructions[0] = "changed"

	got, err := c.Get("a")
	require.NoError(t, err)
	got.Ingredients[0] = "changed"

	got, err = c.Get("a")
	require.NoError(t, err)
	assert.Equal(t, []string{"2 cups flour", "1 egg"}, got.Ingredients)
	assert.Equal(t, []string{"Mix."}, got.Instructions)

	c.Search("flour")[0].Ingredients[0] = "changed"
	c.Suggest([]string{"flour"}, 1)[0].Recipe.Ingredients[0] = "changed"
	assert.Equal(t, "2 cups flour", c.All()[0].Ingredients[0])
}

func TestIDAtMaxLengthIsAccepted(t *testing.T) {
	_, err := New([]models.Recipe{{ID: strings.Repeat("x", MaxIDLength), Title: "A", Ingredients: []string{"x"}}})
	assert.NoError(t, err)
}

func TestNewValidates(t *testing.T) {
	ok := models.Recipe{ID: "a", Title: "A", Ingredients: []string{"x"}}

	tests := []struct {
		name    string
		recipes []models.Recipe
	}{
		{"missing id", []models.Recipe{{Title: "A", Ingredients: []string{"x"}}}},
		{"missing title", []models.Recipe{{ID: "a", Ingredients: []string{"x"}}}},
		{"no ingredients", []models.Recipe{{ID: "a", Title: "A"}}},
		{"duplicate id", []models.Recipe{ok, ok}},
		{"id too long", []models.Recipe{{ID: strings.Repeat("x", MaxIDLength+1), Title: "A", Ingredients: []string{"x"}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.recipes)
			assert.Error(t, err)
		})
	}
}

func TestSearch(t *testing.T) {
	c := Default()

	titles := func(rs []models.Recipe) []string {
		out := make([]string, len(rs))
		for i, r := range rs {
			out[i] = r.Title
		}
		return out
	}

	assert.Equal(t, []string{"Garlic Butter Pasta"}, titles(c.Search("PASTA")))
	assert.Contains(t, titles(c.Search("garlic")), "Tomato Basil Soup")
	assert.Empty(t, c.Search("durian"))
	assert.Len(t, c.Search("  "), c.Len())
}

func TestSuggestRanksAndTruncates(t *testing.T) {
	c := Default()

	matches := c.Suggest([]string{"eggs", "cheddar", "onion", "butter"}, 3)
	require.Len(t, matches, 3)
	assert.Equal(t, "1", matches[0].Recipe.ID)
	assert.GreaterOrEqual(t, matches[0].MatchingCount, matches[1].MatchingCount)
	assert.GreaterOrEqual(t, matches[1].MatchingCount, matches[2].MatchingCount)

	assert.Len(t, c.Suggest(nil, 0), c.Len())

	// With an empty pantry every count is zero, so catalog order is kept.
	none := c.Suggest(nil, 2)
	assert.Equal(t, "1", none[0].Recipe.ID)
	assert.Equal(t, "2", none[1].Recipe.ID)
}

const sampleYAML = `
recipes:
  - id: toast
    title: Buttered Toast
    cook_time: 5 mins
    servings: 1 serving
    ingredients:
      - 2 slices bread
      - 1 tbsp butter
    instructions:
      - Toast the bread.
      - Spread the butter.
    nutrition:
      calories: 250 kcal
  - id: tea
    title: Tea
    ingredients:
      - 1 tea bag
`

func TestParseYAML(t *testing.T) {
	c, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())

	r, err := c.Get("toast")
	require.NoError(t, err)
	assert.Equal(t, "Buttered Toast", r.Title)
	assert.Equal(t, "1 serving", r.Servings)
	assert.Equal(t, []string{"2 slices bread", "1 tbsp butter"}, r.Ingredients)
	assert.Equal(t, "250 kcal", r.Nutrition.Calories)
	assert.Equal(t, "toast", c.All()[0].ID)
}

func TestParseYAMLErrors(t *testing.T) {
	_, err := Parse([]byte("recipes: []"))
	assert.Error(t, err)

	_, err = Parse([]byte("recipes: [unclosed"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default().Len(), c.Len())

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o600))

	c, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

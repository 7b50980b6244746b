// Package catalog holds the static recipe catalog. A catalog is immutable once
// built; recipe order is significant because it breaks ranking ties.
package catalog

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/korjavin/pantrychef/pkg/matcher"
	"github.com/korjavin/pantrychef/pkg/models"
	"gopkg.in/yaml.v3"
)

// ErrRecipeNotFound is returned by Get for an unknown id
var ErrRecipeNotFound = errors.New("recipe not found")

// MaxIDLength is the longest recipe id accepted, in bytes. Ids travel in
// Telegram callback data, which is limited to 64 bytes including the action.
const MaxIDLength = 48

// Catalog is an ordered, read-only set of recipes
type Catalog struct {
	recipes []models.Recipe
	byID    map[string]int
}

type file struct {
	Recipes []models.Recipe `yaml:"recipes"`
}

// New builds a catalog from recipes, keeping their order
func New(recipes []models.Recipe) (*Catalog, error) {
	c := &Catalog{
		recipes: make([]models.Recipe, 0, len(recipes)),
		byID:    make(map[string]int, len(recipes)),
	}

	for i, r := range recipes {
		if r.ID == "" {
			return nil, fmt.Errorf("recipe #%d has no id", i+1)
		}
		if len(r.ID) > MaxIDLength {
			return nil, fmt.Errorf("recipe id %q is longer than %d bytes", r.ID, MaxIDLength)
		}
		if r.Title == "" {
			return nil, fmt.Errorf("recipe %s has no title", r.ID)
		}
		if len(r.Ingredients) == 0 {
			return nil, fmt.Errorf("recipe %s has no ingredients", r.ID)
		}
		if _, dup := c.byID[r.ID]; dup {
			return nil, fmt.Errorf("duplicate recipe id %s", r.ID)
		}
		c.byID[r.ID] = len(c.recipes)
		c.recipes = append(c.recipes, cloneRecipe(r))
	}
	return c, nil
}

// Parse reads a YAML catalog of the form `recipes: [...]`
func Parse(data []byte) (*Catalog, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("error parsing catalog: %w", err)
	}
	if len(f.Recipes) == 0 {
		return nil, fmt.Errorf("catalog contains no recipes")
	}
	return New(f.Recipes)
}

// LoadFile reads a YAML catalog from path
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading catalog file: %w", err)
	}
	return Parse(data)
}

// Load returns the catalog at path, or the built-in one when path is empty
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// cloneRecipe copies the slice fields so callers never share them with the catalog
func cloneRecipe(r models.Recipe) models.Recipe {
	r.Ingredients = slices.Clone(r.Ingredients)
	r.Instructions = slices.Clone(r.Instructions)
	return r
}

// All returns a copy of every recipe in catalog order
func (c *Catalog) All() []models.Recipe {
	out := make([]models.Recipe, len(c.recipes))
	for i, r := range c.recipes {
		out[i] = cloneRecipe(r)
	}
	return out
}

// Len returns the number of recipes
func (c *Catalog) Len() int {
	return len(c.recipes)
}

// Get returns the recipe with the given id
func (c *Catalog) Get(id string) (models.Recipe, error) {
	i, ok := c.byID[strings.TrimSpace(id)]
	if !ok {
		return models.Recipe{}, fmt.Errorf("%w: %s", ErrRecipeNotFound, id)
	}
	return cloneRecipe(c.recipes[i]), nil
}

// Search returns recipes whose title or any ingredient contains query, ignoring case
func (c *Catalog) Search(query string) []models.Recipe {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return c.All()
	}

	var out []models.Recipe
	for _, r := range c.recipes {
		if strings.Contains(strings.ToLower(r.Title), q) {
			out = append(out, cloneRecipe(r))
			continue
		}
		for _, ing := range r.Ingredients {
			if strings.Contains(strings.ToLower(ing), q) {
				out = append(out, cloneRecipe(r))
				break
			}
		}
	}
	return out
}

// Suggest ranks the catalog against pantry and returns at most n matches.
// n <= 0 returns every recipe.
func (c *Catalog) Suggest(pantry []string, n int) []matcher.Match {
	ranked := matcher.Rank(c.All(), pantry)
	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

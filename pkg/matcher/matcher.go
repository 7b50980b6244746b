// Package matcher decides which recipe ingredient lines a pantry satisfies.
//
// Two directions of substring containment are used by different screens and are
// kept as separate functions: HasIngredient and CountMatches look for a pantry
// item inside a recipe line ("2 cups flour" contains "flour"), PantryContains
// looks for a recipe line inside a pantry item.
package matcher

import (
	"math"
	"sort"
	"strings"

	"github.com/korjavin/pantrychef/pkg/models"
)

// Match is the ranking result for a single recipe
type Match struct {
	Recipe        models.Recipe
	MatchingCount int
	Percentage    int
}

// normalize lowercases and trims an ingredient for comparison
func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// normalizePantry drops empty entries, which would otherwise match every line
func normalizePantry(pantry []string) []string {
	out := make([]string, 0, len(pantry))
	for _, p := range pantry {
		if n := normalize(p); n != "" {
			out = append(out, n)
		}
	}
	return out
}

func lineContainsAny(line string, pantry []string) bool {
	for _, p := range pantry {
		if strings.Contains(line, p) {
			return true
		}
	}
	return false
}

// HasIngredient reports whether any pantry item is contained in line, ignoring case
func HasIngredient(line string, pantry []string) bool {
	return lineContainsAny(normalize(line), normalizePantry(pantry))
}

// PantryContains reports whether line is contained in any pantry item, ignoring case
func PantryContains(line string, pantry []string) bool {
	needle := normalize(line)
	if needle == "" {
		return false
	}
	for _, p := range normalizePantry(pantry) {
		if strings.Contains(p, needle) {
			return true
		}
	}
	return false
}

// CountMatches returns how many recipe lines contain at least one pantry item
func CountMatches(recipeIngredients, pantry []string) int {
	items := normalizePantry(pantry)
	if len(items) == 0 {
		return 0
	}

	count := 0
	for _, line := range recipeIngredients {
		if lineContainsAny(normalize(line), items) {
			count++
		}
	}
	return count
}

// Missing returns the recipe lines no pantry item satisfies, in recipe order
func Missing(recipeIngredients, pantry []string) []string {
	items := normalizePantry(pantry)

	var missing []string
	for _, line := range recipeIngredients {
		if !lineContainsAny(normalize(line), items) {
			missing = append(missing, line)
		}
	}
	return missing
}

// MatchPercentage returns matching/total as a rounded percentage, 0 when total is 0
func MatchPercentage(matching, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(matching) / float64(total) * 100))
}

// Rank scores every recipe against pantry and orders them by matching count.
// Recipes with equal counts keep their catalog order.
func Rank(recipes []models.Recipe, pantry []string) []Match {
	matches := make([]Match, len(recipes))
	for i, r := range recipes {
		count := CountMatches(r.Ingredients, pantry)
		matches[i] = Match{
			Recipe:        r,
			MatchingCount: count,
			Percentage:    MatchPercentage(count, len(r.Ingredients)),
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchingCount > matches[j].MatchingCount
	})
	return matches
}

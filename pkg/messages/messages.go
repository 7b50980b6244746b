package messages

import (
	"context"
	"fmt"
	"strings"

	"github.com/korjavin/pantrychef/pkg/inventory"
	"github.com/korjavin/pantrychef/pkg/logger"
	"github.com/korjavin/pantrychef/pkg/matcher"
	"github.com/korjavin/pantrychef/pkg/models"
	"github.com/korjavin/pantrychef/pkg/scale"
)

// ChatGenerator writes a short chat message for an intent
type ChatGenerator interface {
	GenerateChatMessage(ctx context.Context, intent string, contextData map[string]interface{}) (string, error)
}

// Service provides message generation functionality
type Service struct {
	generator ChatGenerator
	formatter scale.Formatter
	logger    *logger.Logger
}

// New creates a new message service. generator may be nil, in which case the
// built-in texts are used.
func New(generator ChatGenerator, formatter scale.Formatter) *Service {
	return &Service{
		generator: generator,
		formatter: formatter,
		logger:    logger.New(""),
	}
}

const welcomeFallback = "👋 Welcome to PantryChef! Tell me what's in your kitchen with /add and I'll find recipes you can cook.\n\n" +
	"/pantry - what you have\n" +
	"/recipes - best matches for your pantry\n" +
	"/search <word> - search recipes\n" +
	"/recipe <id> - ingredients, steps and servings\n" +
	"/inventory - stocked items by category\n" +
	"/shop - shopping list"

// GenerateWelcomeMessage generates a welcome message
func (s *Service) GenerateWelcomeMessage(ctx context.Context) string {
	if s.generator == nil {
		return welcomeFallback
	}
	msg, err := s.generator.GenerateChatMessage(ctx, "welcome", map[string]interface{}{
		"purpose":  "Help people find recipes they can cook with what is already in their pantry",
		"commands": []string{"/add", "/pantry", "/recipes", "/search", "/recipe", "/inventory", "/shop"},
	})
	if err != nil || strings.TrimSpace(msg) == "" {
		if err != nil {
			s.logger.Error("Failed to generate welcome message: %v", err)
		}
		return welcomeFallback
	}
	return msg
}

// ErrorMessage returns the text shown when an action fails
func ErrorMessage(action string) string {
	return fmt.Sprintf("😢 Sorry, I couldn't %s. Please try again later.", action)
}

// PantryContents lists the pantry
func PantryContents(ingredients []string) string {
	if len(ingredients) == 0 {
		return "Your pantry is empty! Add ingredients with /add eggs, milk, flour"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🧺 Your pantry (%d):\n\n", len(ingredients))
	for _, ingredient := range ingredients {
		b.WriteString("• " + ingredient + "\n")
	}
	return b.String()
}

// RecipeList renders ranked matches, one per line
func RecipeList(matches []matcher.Match) string {
	if len(matches) == 0 {
		return "😢 No recipes found."
	}

	var b strings.Builder
	b.WriteString("🍽️ Recipes for you:\n\n")
	for i, m := range matches {
		fmt.Fprintf(&b, "%d. %s (/recipe %s)\n   %d/%d ingredients · %d%% · %s\n",
			i+1, m.Recipe.Title, m.Recipe.ID,
			m.MatchingCount, len(m.Recipe.Ingredients), m.Percentage, m.Recipe.CookTime)
	}
	return b.String()
}

// SearchResults renders catalog search hits
func SearchResults(query string, recipes []models.Recipe) string {
	if len(recipes) == 0 {
		return fmt.Sprintf("🔍 Nothing found for %q.", query)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🔍 Results for %q:\n\n", query)
	for _, r := range recipes {
		fmt.Fprintf(&b, "• %s (/recipe %s)\n", r.Title, r.ID)
	}
	return b.String()
}

// RecipeDetail renders a recipe scaled to servings, marking each ingredient
// as in the fridge or missing
func (s *Service) RecipeDetail(recipe models.Recipe, servings int, pantry []string) string {
	factor := scale.Factor(recipe.Servings, servings)
	lines := s.formatter.ScaleRecipe(recipe.Ingredients, factor)

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n⏱ %s · 👥 %d servings\n", recipe.Title, recipe.CookTime, servings)
	if recipe.ImageURL != "" {
		b.WriteString(recipe.ImageURL + "\n")
	}

	have := matcher.CountMatches(recipe.Ingredients, pantry)
	fmt.Fprintf(&b, "\n🧾 Ingredients (%d/%d in fridge):\n", have, len(recipe.Ingredients))
	for i, line := range lines {
		// Availability is judged on the unscaled line so the quantity never affects it.
		if matcher.HasIngredient(recipe.Ingredients[i], pantry) {
			b.WriteString("✅ " + line + " (In fridge)\n")
		} else {
			b.WriteString("❌ " + line + " (Missing)\n")
		}
	}

	if len(recipe.Instructions) > 0 {
		b.WriteString("\n👩‍🍳 Steps:\n")
		for i, step := range recipe.Instructions {
			fmt.Fprintf(&b, "%d. %s\n", i+1, step)
		}
	}

	n := recipe.Nutrition
	if n != (models.Nutrition{}) {
		fmt.Fprintf(&b, "\n📊 %s · protein %s · carbs %s · fat %s\n", n.Calories, n.Protein, n.Carbs, n.Fat)
	}
	return b.String()
}

// InventoryContents renders the inventory grouped by category
func InventoryContents(groups []inventory.Group) string {
	if len(groups) == 0 {
		return "📦 Your inventory is empty. Stock items with /stock <name> [quantity]"
	}

	var b strings.Builder
	b.WriteString("📦 Inventory:\n")
	for _, g := range groups {
		fmt.Fprintf(&b, "\n%s\n", g.Category)
		for _, item := range g.Items {
			if item.Quantity != "" {
				fmt.Fprintf(&b, "• %s (%s)\n", item.Name, item.Quantity)
			} else {
				b.WriteString("• " + item.Name + "\n")
			}
		}
	}
	return b.String()
}

// ShoppingList renders the shopping list with checkboxes. Unchecked items
// already covered by something on hand are flagged.
func ShoppingList(items []models.ShoppingItem, onHand []string) string {
	if len(items) == 0 {
		return "🛒 Your shopping list is empty. Add items with /buy <items>"
	}

	var b strings.Builder
	b.WriteString("🛒 Shopping list:\n\n")
	for _, item := range items {
		box := "⬜"
		if item.Checked {
			box = "✅"
		}
		if !item.Checked && matcher.PantryContains(item.Name, onHand) {
			fmt.Fprintf(&b, "%s %s (already have)\n", box, item.Name)
			continue
		}
		fmt.Fprintf(&b, "%s %s\n", box, item.Name)
	}
	return b.String()
}

package openai

import (
	"context"
	"regexp"
	"strings"

	"github.com/korjavin/pantrychef/pkg/logger"
	"github.com/korjavin/pantrychef/pkg/scale"
)

var listSeparators = regexp.MustCompile(`(?i)[,;\n]+|\band\b`)

// LocalParser splits a typed ingredient list without calling the API
type LocalParser struct{}

// ParseIngredientsFromText splits text on commas, semicolons, newlines and "and",
// drops bullets and leading quantities and lowercases each name
func (LocalParser) ParseIngredientsFromText(_ context.Context, text string) ([]string, error) {
	return SplitIngredients(text), nil
}

// SplitIngredients is the parsing behind LocalParser
func SplitIngredients(text string) []string {
	var out []string
	seen := make(map[string]bool)

	for _, part := range listSeparators.Split(text, -1) {
		part = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(part), "-*•·"))
		if part == "" {
			continue
		}

		name := part
		if ing := scale.Parse(part); ing.Name != part {
			name = ing.Name
		}
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}

type fallbackParser struct {
	primary IngredientParser
	local   LocalParser
	logger  *logger.Logger
}

// WithFallback uses primary and falls back to LocalParser when it fails or finds nothing.
// A nil primary means LocalParser only.
func WithFallback(primary IngredientParser) IngredientParser {
	if primary == nil {
		return LocalParser{}
	}
	return &fallbackParser{primary: primary, logger: logger.New("")}
}

func (p *fallbackParser) ParseIngredientsFromText(ctx context.Context, text string) ([]string, error) {
	ingredients, err := p.primary.ParseIngredientsFromText(ctx, text)
	if err == nil && len(ingredients) > 0 {
		return ingredients, nil
	}
	if err != nil {
		p.logger.Warn("Ingredient parsing failed, splitting locally: %v", err)
	}
	return p.local.ParseIngredientsFromText(ctx, text)
}

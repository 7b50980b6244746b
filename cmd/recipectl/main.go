package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/korjavin/pantrychef/pkg/catalog"
	"github.com/korjavin/pantrychef/pkg/matcher"
	"github.com/korjavin/pantrychef/pkg/scale"
)

const usage = `Usage:
  recipectl match -pantry "eggs,milk" [-n 5] [-catalog recipes.yaml]
  recipectl scale -recipe <id> -servings <n> [-pantry "eggs,milk"] [-catalog recipes.yaml]
  recipectl parse "<ingredient line>"
`

var (
	heading = color.New(color.FgCyan, color.Bold)
	have    = color.New(color.FgGreen)
	missing = color.New(color.FgRed)
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	if len(args) == 0 {
		fmt.Fprint(out, usage)
		return errors.New("missing command")
	}

	switch args[0] {
	case "match":
		return runMatch(args[1:], out)
	case "scale":
		return runScale(args[1:], out)
	case "parse":
		return runParse(args[1:], out)
	case "help", "-h", "--help":
		fmt.Fprint(out, usage)
		return nil
	default:
		fmt.Fprint(out, usage)
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		path = os.Getenv("CATALOG_PATH")
	}
	return catalog.Load(path)
}

func runMatch(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("match", flag.ContinueOnError)
	fs.SetOutput(out)
	pantryFlag := fs.String("pantry", "", "comma separated pantry items")
	n := fs.Int("n", 5, "number of recipes to show, 0 for all")
	catalogPath := fs.String("catalog", "", "YAML recipe catalog, built-in recipes when empty")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cat, err := loadCatalog(*catalogPath)
	if err != nil {
		return err
	}

	pantry := splitPantry(*pantryFlag)
	heading.Fprintf(out, "Recipes for %d pantry items\n", len(pantry))
	for i, m := range cat.Suggest(pantry, *n) {
		c := missing
		if m.MatchingCount > 0 {
			c = have
		}
		fmt.Fprintf(out, "%2d. %-28s ", i+1, m.Recipe.Title)
		c.Fprintf(out, "%d/%d (%d%%)", m.MatchingCount, len(m.Recipe.Ingredients), m.Percentage)
		fmt.Fprintf(out, "  id=%s\n", m.Recipe.ID)
	}
	return nil
}

func runScale(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("scale", flag.ContinueOnError)
	fs.SetOutput(out)
	recipeID := fs.String("recipe", "", "recipe id")
	servings := fs.Int("servings", 0, "servings to scale to, the recipe's own count when 0")
	pantryFlag := fs.String("pantry", "", "comma separated pantry items, enables availability markers")
	tolerance := fs.Float64("tolerance", scale.DefaultTolerance, "fraction snapping tolerance")
	catalogPath := fs.String("catalog", "", "YAML recipe catalog, built-in recipes when empty")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *recipeID == "" {
		return errors.New("-recipe is required")
	}
	if *servings < 0 {
		return errors.New("-servings must be positive")
	}

	cat, err := loadCatalog(*catalogPath)
	if err != nil {
		return err
	}
	recipe, err := cat.Get(*recipeID)
	if err != nil {
		return err
	}

	n := *servings
	if n == 0 {
		n = scale.ServingsCount(recipe.Servings)
	}
	factor := scale.Factor(recipe.Servings, n)
	lines := scale.NewFormatter(*tolerance).ScaleRecipe(recipe.Ingredients, factor)

	heading.Fprintf(out, "%s, %d servings (x%g)\n", recipe.Title, n, factor)
	pantry := splitPantry(*pantryFlag)
	for i, line := range lines {
		switch {
		case len(pantry) == 0:
			fmt.Fprintf(out, "  %s\n", line)
		case matcher.HasIngredient(recipe.Ingredients[i], pantry):
			have.Fprintf(out, "  ✅ %s\n", line)
		default:
			missing.Fprintf(out, "  ❌ %s\n", line)
		}
	}
	return nil
}

func runParse(args []string, out io.Writer) error {
	if len(args) == 0 {
		return errors.New("parse needs an ingredient line")
	}

	for _, line := range args {
		ing := scale.Parse(line)
		heading.Fprintf(out, "%s\n", line)
		fmt.Fprintf(out, "  quantity: %s\n", scale.FormatQuantity(ing.Quantity))
		fmt.Fprintf(out, "  unit:     %s\n", ing.Unit)
		fmt.Fprintf(out, "  name:     %s\n", ing.Name)
	}
	return nil
}

func splitPantry(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

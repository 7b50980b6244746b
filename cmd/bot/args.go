package main

import (
	"strings"
	"unicode"
)

// splitList splits a typed list on commas, semicolons and newlines
func splitList(text string) []string {
	parts := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ';' || r == '\n'
	})

	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// parseStockArgs splits "/stock" arguments into a name and an optional
// quantity. The quantity starts at the first word that begins with a digit.
func parseStockArgs(args string) (name, quantity string) {
	words := strings.Fields(args)
	for i, w := range words {
		if i > 0 && unicode.IsDigit([]rune(w)[0]) {
			return strings.Join(words[:i], " "), strings.Join(words[i:], " ")
		}
	}
	return strings.Join(words, " "), ""
}

// looksLikeIngredient reports whether free text outside any mode is a single
// short item worth adding to the pantry
func looksLikeIngredient(text string) bool {
	text = strings.TrimSpace(text)
	return text != "" && !strings.Contains(text, " ") && len(text) < 30
}

// mergeNames appends extra to base, skipping names already present ignoring case
func mergeNames(base, extra []string) []string {
	seen := make(map[string]bool, len(base)+len(extra))
	out := make([]string, 0, len(base)+len(extra))
	for _, list := range [][]string{base, extra} {
		for _, name := range list {
			key := strings.ToLower(strings.TrimSpace(name))
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, name)
		}
	}
	return out
}

package derive

import (
	"sort"
	"strings"

	"sequence-backend/internal/models"
)

// TokenizeGenres splits a comma separated genre list into trimmed, non-empty,
// distinct names, keeping their first-seen order.
func TokenizeGenres(text string) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, part := range strings.Split(text, ",") {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

// HasGenre reports whether genre is one of the tokens of text.
func HasGenre(text, genre string) bool {
	for _, name := range TokenizeGenres(text) {
		if name == genre {
			return true
		}
	}
	return false
}

// AllGenres returns every genre used across the collection, sorted ascending.
func AllGenres(movies []models.Movie) []string {
	set := make(map[string]struct{})
	for _, m := range movies {
		for _, name := range TokenizeGenres(m.Genre) {
			set[name] = struct{}{}
		}
	}

	genres := make([]string, 0, len(set))
	for name := range set {
		genres = append(genres, name)
	}
	sort.Strings(genres)
	return genres
}

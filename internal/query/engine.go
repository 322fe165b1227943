package query

import (
	"cmp"
	"math"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"sequence-backend/internal/derive"
	"sequence-backend/internal/models"
)

// Run returns the records matching every active filter of c, ordered by its
// sort key. The input slice is not modified.
func Run(records []models.Movie, c Criteria) []models.Movie {
	fold := cases.Fold()
	term := fold.String(c.Search)

	out := make([]models.Movie, 0, len(records))
	for _, m := range records {
		if matches(m, c, term, fold) {
			out = append(out, m.Clone())
		}
	}

	slices.SortStableFunc(out, comparator(c))
	return out
}

func matches(m models.Movie, c Criteria, term string, fold cases.Caser) bool {
	if term != "" && !matchesSearch(m, term, fold) {
		return false
	}
	if c.Rating != "" && derive.RatingTier(m.Rating) != c.Rating {
		return false
	}
	switch c.Version {
	case VersionVF:
		if !m.Versions.VF {
			return false
		}
	case VersionVO:
		if !m.Versions.VO {
			return false
		}
	}
	if c.Genre != "" && !derive.HasGenre(m.Genre, c.Genre) {
		return false
	}
	switch c.Watched {
	case FilterWatched:
		return m.Watched
	case FilterToWatch:
		return !m.Watched
	}
	return true
}

func matchesSearch(m models.Movie, term string, fold cases.Caser) bool {
	for _, field := range []string{m.Title, m.Director, m.Actors, m.Review} {
		if field != "" && strings.Contains(fold.String(field), term) {
			return true
		}
	}
	return false
}

// comparator builds the ordering for c. Base comparisons sort descending;
// ascending negates the whole result, tie-break included.
func comparator(c Criteria) func(a, b models.Movie) int {
	var base func(a, b models.Movie) int

	switch c.SortBy {
	case SortRating:
		base = func(a, b models.Movie) int { return cmp.Compare(b.Rating, a.Rating) }
	case SortTitle:
		locale := c.Locale
		if locale == language.Und {
			locale = DefaultLocale
		}
		col := collate.New(locale)
		base = func(a, b models.Movie) int { return col.CompareString(a.Title, b.Title) }
	case SortYear:
		base = func(a, b models.Movie) int { return cmp.Compare(yearOf(b), yearOf(a)) }
	case SortDuration:
		base = func(a, b models.Movie) int {
			return cmp.Compare(derive.ExtractMinutes(b.Duration), derive.ExtractMinutes(a.Duration))
		}
	case SortDateWatched:
		base = func(a, b models.Movie) int {
			if r := cmp.Compare(watchedMillis(b), watchedMillis(a)); r != 0 {
				return r
			}
			return cmp.Compare(b.ID, a.ID)
		}
	default:
		base = func(a, b models.Movie) int {
			return cmp.Compare(dateMillis(b.DateAdded), dateMillis(a.DateAdded))
		}
	}

	if c.Direction == Asc {
		return func(a, b models.Movie) int { return -base(a, b) }
	}
	return base
}

func yearOf(m models.Movie) int {
	if m.Year == nil {
		return 0
	}
	return *m.Year
}

func watchedMillis(m models.Movie) int64 {
	if m.DateWatched == nil {
		return math.MinInt64
	}
	return dateMillis(*m.DateWatched)
}

// dateMillis returns the instant of a stored date; missing or unreadable
// dates sort as the oldest possible value.
func dateMillis(s string) int64 {
	t, ok := derive.ParseDate(s)
	if !ok {
		return math.MinInt64
	}
	return t.UnixMilli()
}

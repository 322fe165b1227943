// Package query filters and orders a snapshot of the collection. It keeps no
// state: every call recomputes the view from the records it is given.
package query

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"sequence-backend/internal/derive"
)

// ErrInvalidCriteria is returned when a filter or sort parameter is not recognized.
var ErrInvalidCriteria = errors.New("invalid query criteria")

type SortKey string

const (
	SortRating      SortKey = "rating"
	SortTitle       SortKey = "title"
	SortYear        SortKey = "year"
	SortDuration    SortKey = "duration"
	SortDateWatched SortKey = "dateWatched"
	SortDateAdded   SortKey = "dateAdded"
)

var sortKeys = []SortKey{SortRating, SortTitle, SortYear, SortDuration, SortDateWatched, SortDateAdded}

type Direction string

const (
	Desc Direction = "desc"
	Asc  Direction = "asc"
)

type VersionFilter string

const (
	VersionVF VersionFilter = "VF"
	VersionVO VersionFilter = "VO"
)

type WatchedFilter string

const (
	FilterWatched WatchedFilter = "watched"
	FilterToWatch WatchedFilter = "toWatch"
)

// DefaultLocale orders titles when Criteria.Locale is unset.
var DefaultLocale = language.French

// Criteria is the immutable filter and sort specification of a view. Zero
// valued fields impose no constraint; a zero SortBy orders by date added,
// a zero Direction is descending.
type Criteria struct {
	Search    string
	Rating    derive.Tier
	Version   VersionFilter
	Genre     string
	Watched   WatchedFilter
	SortBy    SortKey
	Direction Direction
	Locale    language.Tag
}

// Params holds raw criteria as received from a query string or CLI flags.
// Empty values and "all" mean no constraint.
type Params struct {
	Search  string
	Rating  string
	Version string
	Genre   string
	Watched string
	SortBy  string
	Order   string
	Locale  string
}

// ParseCriteria validates raw parameters into Criteria.
func ParseCriteria(p Params) (Criteria, error) {
	c := Criteria{
		Search: p.Search,
		Genre:  unlessAll(strings.TrimSpace(p.Genre)),
	}

	if rating := unlessAll(p.Rating); rating != "" {
		tier, err := derive.ParseTier(rating)
		if err != nil {
			return Criteria{}, fmt.Errorf("%w: %v", ErrInvalidCriteria, err)
		}
		c.Rating = tier
	}

	switch v := VersionFilter(unlessAll(p.Version)); v {
	case "", VersionVF, VersionVO:
		c.Version = v
	default:
		return Criteria{}, fmt.Errorf("%w: unknown version %q", ErrInvalidCriteria, p.Version)
	}

	switch w := WatchedFilter(unlessAll(p.Watched)); w {
	case "", FilterWatched, FilterToWatch:
		c.Watched = w
	default:
		return Criteria{}, fmt.Errorf("%w: unknown watched state %q", ErrInvalidCriteria, p.Watched)
	}

	if p.SortBy != "" {
		key, ok := parseSortKey(p.SortBy)
		if !ok {
			return Criteria{}, fmt.Errorf("%w: unknown sort key %q", ErrInvalidCriteria, p.SortBy)
		}
		c.SortBy = key
	}

	switch d := Direction(strings.ToLower(p.Order)); d {
	case "", Desc, Asc:
		c.Direction = d
	default:
		return Criteria{}, fmt.Errorf("%w: unknown order %q", ErrInvalidCriteria, p.Order)
	}

	if p.Locale != "" {
		tag, err := language.Parse(p.Locale)
		if err != nil {
			return Criteria{}, fmt.Errorf("%w: locale %q: %v", ErrInvalidCriteria, p.Locale, err)
		}
		c.Locale = tag
	}

	return c, nil
}

func parseSortKey(s string) (SortKey, bool) {
	for _, k := range sortKeys {
		if string(k) == s {
			return k, true
		}
	}
	return "", false
}

func unlessAll(s string) string {
	if s == "all" {
		return ""
	}
	return s
}

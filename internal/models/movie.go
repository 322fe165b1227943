package models

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// SuggestedTags is the vocabulary offered when tagging a movie. Tags outside
// of it are accepted as-is.
var SuggestedTags = []string{"favori", "revoir", "decu", "culte", "oscar", "surprise"}

// Versions flags the language versions available for a movie. Both flags are
// independent: a movie can be available dubbed, in original language, both or neither.
type Versions struct {
	VF bool `json:"VF" example:"false"`
	VO bool `json:"VO" example:"true"`
}

// Movie is a single entry of the media log.
type Movie struct {
	ID          int64    `json:"id" example:"1718035200000"`
	Title       string   `json:"title" example:"Fight Club"`
	Poster      string   `json:"poster" example:"https://image.tmdb.org/t/p/w500/pB8BM7pdSp6B6Ih7QZ4DrQ3PmJK.jpg"`
	Rating      int      `json:"rating" example:"17"`
	Review      string   `json:"review" example:"Toujours aussi fort."`
	Versions    Versions `json:"versions"`
	Year        *int     `json:"year" example:"1999"`
	Duration    string   `json:"duration" example:"139 min"`
	Director    string   `json:"director" example:"David Fincher"`
	Actors      string   `json:"actors" example:"Brad Pitt, Edward Norton"`
	Platform    string   `json:"platform" example:"Netflix"`
	Genre       string   `json:"genre" example:"Drama, Thriller"`
	Tags        []string `json:"tags"`
	Watched     bool     `json:"watched" example:"true"`
	DateWatched *string  `json:"dateWatched" example:"2024-06-10"`
	DateAdded   string   `json:"dateAdded" example:"2024-06-10T18:00:00.000Z"`
}

// UnmarshalJSON decodes a movie, treating a missing "watched" field as watched.
// Only an explicit false marks an entry as backlog. The year is read with
// parseYear, so exports holding "" or "1999" for it still load.
func (m *Movie) UnmarshalJSON(data []byte) error {
	type movieAlias Movie
	aux := struct {
		movieAlias
		Year json.RawMessage `json:"year"`
	}{movieAlias: movieAlias{Watched: true}}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*m = Movie(aux.movieAlias)
	m.Year = parseYear(aux.Year)
	return nil
}

// parseYear reads a year written as a number or a numeric string. Anything
// else, including null and "", means no year.
func parseYear(raw json.RawMessage) *int {
	if len(raw) == 0 {
		return nil
	}

	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		year := int(math.Trunc(n))
		return &year
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil
	}
	year, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return nil
	}
	return &year
}

// Clone returns a deep copy so callers never share slices or pointers with the
// collection.
func (m Movie) Clone() Movie {
	out := m
	if m.Year != nil {
		year := *m.Year
		out.Year = &year
	}
	if m.DateWatched != nil {
		date := *m.DateWatched
		out.DateWatched = &date
	}
	if m.Tags != nil {
		out.Tags = append([]string{}, m.Tags...)
	}
	return out
}

// CloneMovies deep-copies a slice of movies.
func CloneMovies(movies []Movie) []Movie {
	if movies == nil {
		return nil
	}
	out := make([]Movie, len(movies))
	for i := range movies {
		out[i] = movies[i].Clone()
	}
	return out
}

// MovieDraft carries the fields supplied when creating a movie.
type MovieDraft struct {
	Title       string    `json:"title" example:"Fight Club"`
	Poster      string    `json:"poster" example:"https://image.tmdb.org/t/p/w500/pB8BM7pdSp6B6Ih7QZ4DrQ3PmJK.jpg"`
	Rating      int       `json:"rating" example:"17"`
	Review      string    `json:"review"`
	Versions    *Versions `json:"versions"`
	Year        *int      `json:"year" example:"1999"`
	Duration    string    `json:"duration" example:"139 min"`
	Director    string    `json:"director"`
	Actors      string    `json:"actors"`
	Platform    string    `json:"platform"`
	Genre       string    `json:"genre" example:"Drama, Thriller"`
	Tags        []string  `json:"tags"`
	Watched     *bool     `json:"watched" example:"true"`
	DateWatched *string   `json:"dateWatched" example:"2024-06-10"`
}

// UnmarshalJSON decodes a draft, reading the year like Movie does.
func (d *MovieDraft) UnmarshalJSON(data []byte) error {
	type draftAlias MovieDraft
	aux := struct {
		*draftAlias
		Year json.RawMessage `json:"year"`
	}{draftAlias: (*draftAlias)(d)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	d.Year = parseYear(aux.Year)
	return nil
}

// MoviePatch is a partial update. Nil fields are left untouched; Versions and
// Tags replace the stored value wholesale when present. A year sent as null,
// "" or anything that is not a number sets ClearYear instead of Year.
type MoviePatch struct {
	Title       *string   `json:"title,omitempty"`
	Poster      *string   `json:"poster,omitempty"`
	Rating      *int      `json:"rating,omitempty"`
	Review      *string   `json:"review,omitempty"`
	Versions    *Versions `json:"versions,omitempty"`
	Year        *int      `json:"year,omitempty"`
	Duration    *string   `json:"duration,omitempty"`
	Director    *string   `json:"director,omitempty"`
	Actors      *string   `json:"actors,omitempty"`
	Platform    *string   `json:"platform,omitempty"`
	Genre       *string   `json:"genre,omitempty"`
	Tags        *[]string `json:"tags,omitempty"`
	Watched     *bool     `json:"watched,omitempty"`
	DateWatched *string   `json:"dateWatched,omitempty"`
	ClearYear   bool      `json:"-"`
}

func (p *MoviePatch) UnmarshalJSON(data []byte) error {
	type patchAlias MoviePatch
	aux := struct {
		*patchAlias
		Year json.RawMessage `json:"year"`
	}{patchAlias: (*patchAlias)(p)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.Year == nil {
		return nil
	}
	p.Year = parseYear(aux.Year)
	p.ClearYear = p.Year == nil
	return nil
}

package models

import "time"

// MovieRecord is the table row used by the SQL stores. The whole collection is
// rewritten on every save, so rows carry their position in the collection and a
// surrogate key: imported collections may contain duplicate movie ids.
type MovieRecord struct {
	RowID       uint   `gorm:"primaryKey;autoIncrement"`
	Position    int    `gorm:"not null;index"`
	MovieID     int64  `gorm:"not null;index"`
	Title       string `gorm:"not null"`
	Poster      string `gorm:"not null"`
	Rating      int    `gorm:"not null;default:0"`
	Review      string `gorm:"type:text"`
	VersionVF   bool   `gorm:"column:version_vf"`
	VersionVO   bool   `gorm:"column:version_vo"`
	Year        *int
	Duration    string
	Director    string
	Actors      string
	Platform    string
	Genre       string
	Tags        []string `gorm:"serializer:json;type:text"`
	Watched     bool     `gorm:"index"`
	DateWatched *string  `gorm:"type:text"`
	DateAdded   string
	CreatedAt   time.Time
}

func (MovieRecord) TableName() string {
	return "movies"
}

// NewMovieRecord maps a movie onto its row at the given position.
func NewMovieRecord(m Movie, position int) MovieRecord {
	c := m.Clone()
	return MovieRecord{
		Position:    position,
		MovieID:     c.ID,
		Title:       c.Title,
		Poster:      c.Poster,
		Rating:      c.Rating,
		Review:      c.Review,
		VersionVF:   c.Versions.VF,
		VersionVO:   c.Versions.VO,
		Year:        c.Year,
		Duration:    c.Duration,
		Director:    c.Director,
		Actors:      c.Actors,
		Platform:    c.Platform,
		Genre:       c.Genre,
		Tags:        c.Tags,
		Watched:     c.Watched,
		DateWatched: c.DateWatched,
		DateAdded:   c.DateAdded,
	}
}

// Movie converts the row back into the domain record.
func (r MovieRecord) Movie() Movie {
	return Movie{
		ID:          r.MovieID,
		Title:       r.Title,
		Poster:      r.Poster,
		Rating:      r.Rating,
		Review:      r.Review,
		Versions:    Versions{VF: r.VersionVF, VO: r.VersionVO},
		Year:        r.Year,
		Duration:    r.Duration,
		Director:    r.Director,
		Actors:      r.Actors,
		Platform:    r.Platform,
		Genre:       r.Genre,
		Tags:        r.Tags,
		Watched:     r.Watched,
		DateWatched: r.DateWatched,
		DateAdded:   r.DateAdded,
	}.Clone()
}

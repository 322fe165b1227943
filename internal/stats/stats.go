// Package stats reduces a collection snapshot into summary figures.
package stats

import (
	"cmp"
	"math"
	"slices"

	"sequence-backend/internal/derive"
	"sequence-backend/internal/models"
)

// TopRatedLimit is the number of movies listed in the top rated ranking.
const TopRatedLimit = 5

// Summarize computes counts, rating tiers, the genre histogram and the top
// rated ranking. Rating figures only consider watched movies; the genre
// histogram covers the whole collection.
func Summarize(records []models.Movie) models.CollectionStats {
	s := models.CollectionStats{
		Total:    len(records),
		ByGenre:  []models.GenreCount{},
		TopRated: []models.Movie{},
	}

	var ratingSum int
	watched := make([]models.Movie, 0, len(records))
	for _, m := range records {
		if !m.Watched {
			continue
		}
		watched = append(watched, m.Clone())
		ratingSum += m.Rating

		switch derive.RatingTier(m.Rating) {
		case derive.TierExcellent:
			s.ByRatingTier.Excellent++
		case derive.TierGood:
			s.ByRatingTier.Good++
		case derive.TierAverage:
			s.ByRatingTier.Average++
		default:
			s.ByRatingTier.Poor++
		}
	}

	s.Watched = len(watched)
	s.ToWatch = s.Total - s.Watched
	if s.Watched > 0 {
		s.AvgRating = roundTenth(float64(ratingSum) / float64(s.Watched))
	}

	s.ByGenre = genreHistogram(records)

	slices.SortStableFunc(watched, func(a, b models.Movie) int {
		return cmp.Compare(b.Rating, a.Rating)
	})
	if len(watched) > TopRatedLimit {
		watched = watched[:TopRatedLimit]
	}
	s.TopRated = watched

	return s
}

// genreHistogram counts every genre token, most frequent first. Genres with
// equal counts keep the order in which they first appear.
func genreHistogram(records []models.Movie) []models.GenreCount {
	counts := []models.GenreCount{}
	index := make(map[string]int)
	for _, m := range records {
		for _, name := range derive.TokenizeGenres(m.Genre) {
			i, ok := index[name]
			if !ok {
				i = len(counts)
				index[name] = i
				counts = append(counts, models.GenreCount{Name: name})
			}
			counts[i].Count++
		}
	}

	slices.SortStableFunc(counts, func(a, b models.GenreCount) int {
		return cmp.Compare(b.Count, a.Count)
	})
	return counts
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

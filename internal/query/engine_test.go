package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sequence-backend/internal/models"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func ids(movies []models.Movie) []int64 {
	out := make([]int64, len(movies))
	for i, m := range movies {
		out[i] = m.ID
	}
	return out
}

func sampleCollection() []models.Movie {
	return []models.Movie{
		{
			ID: 1, Title: "Heat", Director: "Michael Mann", Actors: "Al Pacino, Robert De Niro",
			Rating: 17, Genre: "Action, Crime", Versions: models.Versions{VO: true},
			Year: intPtr(1995), Duration: "170 min", Watched: true,
			DateWatched: strPtr("2024-03-01"), DateAdded: "2024-03-01T20:00:00.000Z",
		},
		{
			ID: 2, Title: "Amélie", Director: "Jean-Pierre Jeunet", Rating: 13,
			Genre: "Comédie, Romance", Versions: models.Versions{VF: true, VO: true},
			Year: intPtr(2001), Duration: "122 min", Watched: true,
			DateWatched: strPtr("2024-03-01"), DateAdded: "2024-02-01T20:00:00.000Z",
			Review: "Paris rêvé",
		},
		{
			ID: 3, Title: "Dune", Director: "Denis Villeneuve", Rating: 9,
			Genre: "Sci-Fi", Versions: models.Versions{VF: true}, Duration: "155 min",
			Watched: false, DateAdded: "2024-04-01T20:00:00.000Z",
		},
		{
			ID: 4, Title: "zodiac", Director: "David Fincher", Rating: 5,
			Genre: "Crime, Thriller", Year: intPtr(2007), Duration: "",
			Watched: true, DateWatched: strPtr("2023-12-24"), DateAdded: "2024-01-01T20:00:00.000Z",
		},
	}
}

func TestRun_ZeroCriteriaSortsByDateAddedDesc(t *testing.T) {
	got := Run(sampleCollection(), Criteria{})
	assert.Equal(t, []int64{3, 1, 2, 4}, ids(got))
}

func TestRun_DoesNotMutateInput(t *testing.T) {
	records := sampleCollection()
	Run(records, Criteria{SortBy: SortRating, Direction: Asc})
	assert.Equal(t, []int64{1, 2, 3, 4}, ids(records))
}

func TestRun_SearchIsCaseInsensitiveAcrossFields(t *testing.T) {
	assert.Equal(t, []int64{1}, ids(Run(sampleCollection(), Criteria{Search: "PACINO"})))
	assert.Equal(t, []int64{4}, ids(Run(sampleCollection(), Criteria{Search: "fincher"})))
	assert.Equal(t, []int64{2}, ids(Run(sampleCollection(), Criteria{Search: "RÊVÉ"})))
	assert.Equal(t, []int64{3}, ids(Run(sampleCollection(), Criteria{Search: "dun"})))
	assert.Empty(t, Run(sampleCollection(), Criteria{Search: "kubrick"}))
}

func TestRun_IndividualFilters(t *testing.T) {
	records := sampleCollection()

	assert.Equal(t, []int64{1}, ids(Run(records, Criteria{Rating: "excellent"})))
	assert.Equal(t, []int64{2}, ids(Run(records, Criteria{Rating: "good"})))
	assert.Equal(t, []int64{3}, ids(Run(records, Criteria{Rating: "average"})))
	assert.Equal(t, []int64{4}, ids(Run(records, Criteria{Rating: "poor"})))

	assert.ElementsMatch(t, []int64{2, 3}, ids(Run(records, Criteria{Version: VersionVF})))
	assert.ElementsMatch(t, []int64{1, 2}, ids(Run(records, Criteria{Version: VersionVO})))

	assert.ElementsMatch(t, []int64{1, 4}, ids(Run(records, Criteria{Genre: "Crime"})))
	assert.Empty(t, Run(records, Criteria{Genre: "Crim"}))

	assert.ElementsMatch(t, []int64{1, 2, 4}, ids(Run(records, Criteria{Watched: FilterWatched})))
	assert.Equal(t, []int64{3}, ids(Run(records, Criteria{Watched: FilterToWatch})))
}

func TestRun_FiltersCompose(t *testing.T) {
	records := sampleCollection()
	c := Criteria{Search: "al", Rating: "excellent", Version: VersionVO, Genre: "Crime"}
	assert.Equal(t, []int64{1}, ids(Run(records, c)))

	// Movie 1 matches search, tier and genre but not the version.
	c.Version = VersionVF
	assert.Empty(t, Run(records, c))
}

func TestRun_SortByRating(t *testing.T) {
	got := Run(sampleCollection(), Criteria{SortBy: SortRating})
	assert.Equal(t, []int64{1, 2, 3, 4}, ids(got))

	got = Run(sampleCollection(), Criteria{SortBy: SortRating, Direction: Asc})
	assert.Equal(t, []int64{4, 3, 2, 1}, ids(got))
}

func TestRun_SortByYearTreatsMissingAsZero(t *testing.T) {
	got := Run(sampleCollection(), Criteria{SortBy: SortYear})
	assert.Equal(t, []int64{4, 2, 1, 3}, ids(got))
}

func TestRun_SortByDuration(t *testing.T) {
	got := Run(sampleCollection(), Criteria{SortBy: SortDuration})
	assert.Equal(t, []int64{1, 3, 2, 4}, ids(got))
}

func TestRun_SortByTitleIsLocaleAware(t *testing.T) {
	got := Run(sampleCollection(), Criteria{SortBy: SortTitle})
	assert.Equal(t, []int64{2, 3, 1, 4}, ids(got), "accented and lower-case titles collate alphabetically")

	got = Run(sampleCollection(), Criteria{SortBy: SortTitle, Direction: Asc})
	assert.Equal(t, []int64{4, 1, 3, 2}, ids(got))
}

func TestRun_SortByDateWatchedTieBreaksOnID(t *testing.T) {
	got := Run(sampleCollection(), Criteria{SortBy: SortDateWatched})
	// 1 and 2 share 2024-03-01: higher id first; the backlog entry goes last.
	assert.Equal(t, []int64{2, 1, 4, 3}, ids(got))

	got = Run(sampleCollection(), Criteria{SortBy: SortDateWatched, Direction: Asc})
	assert.Equal(t, []int64{3, 4, 1, 2}, ids(got))
}

func TestRun_SortByDateAddedIsStableOnTies(t *testing.T) {
	records := []models.Movie{
		{ID: 10, Title: "A", DateAdded: "2024-01-01T00:00:00.000Z"},
		{ID: 11, Title: "B", DateAdded: "2024-01-01T00:00:00.000Z"},
		{ID: 12, Title: "C", DateAdded: "2024-01-01T00:00:00.000Z"},
	}
	assert.Equal(t, []int64{10, 11, 12}, ids(Run(records, Criteria{SortBy: SortDateAdded})))
	assert.Equal(t, []int64{10, 11, 12}, ids(Run(records, Criteria{SortBy: SortDateAdded, Direction: Asc})))
}

func TestParseCriteria(t *testing.T) {
	c, err := ParseCriteria(Params{
		Search: "  heat ", Rating: "all", Version: "VO", Genre: "Crime",
		Watched: "toWatch", SortBy: "dateWatched", Order: "ASC", Locale: "en",
	})
	require.NoError(t, err)
	assert.Equal(t, "  heat ", c.Search, "the search term is matched verbatim")
	assert.Empty(t, c.Rating)
	assert.Equal(t, VersionVO, c.Version)
	assert.Equal(t, "Crime", c.Genre)
	assert.Equal(t, FilterToWatch, c.Watched)
	assert.Equal(t, SortDateWatched, c.SortBy)
	assert.Equal(t, Asc, c.Direction)
	assert.Equal(t, "en", c.Locale.String())

	c, err = ParseCriteria(Params{Genre: "all", Version: "all", Watched: "all"})
	require.NoError(t, err)
	assert.Equal(t, Criteria{}, c)
}

func TestRun_SearchKeepsSurroundingSpaces(t *testing.T) {
	records := sampleCollection()

	assert.Equal(t, []int64{1}, ids(Run(records, Criteria{Search: " de"})))
	assert.ElementsMatch(t, []int64{1, 3}, ids(Run(records, Criteria{Search: "de"})))
}

func TestParseCriteria_RejectsUnknownValues(t *testing.T) {
	bad := []Params{
		{Rating: "great"},
		{Version: "VOST"},
		{Watched: "later"},
		{SortBy: "popularity"},
		{Order: "sideways"},
		{Locale: "not a locale!"},
	}
	for _, p := range bad {
		_, err := ParseCriteria(p)
		assert.ErrorIs(t, err, ErrInvalidCriteria, "params %+v", p)
	}
}

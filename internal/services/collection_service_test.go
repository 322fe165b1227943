package services

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sequence-backend/internal/models"
	"sequence-backend/internal/query"
)

type memoryRepository struct {
	saved     []models.Movie
	saves     int
	loadErr   error
	saveErr   error
	preloaded []models.Movie
}

func (r *memoryRepository) Load(ctx context.Context) ([]models.Movie, error) {
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	return models.CloneMovies(r.preloaded), nil
}

func (r *memoryRepository) Save(ctx context.Context, movies []models.Movie) error {
	r.saves++
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saved = models.CloneMovies(movies)
	return nil
}

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

type fakeExportStore struct {
	filename string
	data     []byte
}

func (s *fakeExportStore) PutExport(ctx context.Context, filename string, data []byte) (string, error) {
	s.filename = filename
	s.data = data
	return "https://storage.example/sequence/exports/" + filename, nil
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func boolPtr(b bool) *bool    { return &b }

func newTestService(t *testing.T, opts ...Option) (CollectionService, *memoryRepository, *fakeClock) {
	t.Helper()
	repo := &memoryRepository{}
	clock := &fakeClock{t: time.Date(2024, 6, 10, 16, 0, 0, 0, time.UTC)}
	opts = append([]Option{WithClock(clock.Now)}, opts...)
	return NewCollectionService(repo, quietLogger(), opts...), repo, clock
}

func heatDraft() models.MovieDraft {
	return models.MovieDraft{
		Title:    "Heat",
		Poster:   "https://img.example/heat.jpg",
		Rating:   17,
		Review:   "Culte.",
		Year:     intPtr(1995),
		Duration: "170 min",
		Director: "Michael Mann",
		Actors:   "Al Pacino, Robert De Niro",
		Platform: "Blu-ray",
		Genre:    "Action, Crime",
		Tags:     []string{"culte"},
	}
}

func duneDraft() models.MovieDraft {
	return models.MovieDraft{
		Title:    "Dune",
		Poster:   "dune.jpg",
		Rating:   9,
		Genre:    "Sci-Fi",
		Versions: &models.Versions{VF: true},
		Watched:  boolPtr(false),
	}
}

func TestCreate_RejectsMissingTitleOrPoster(t *testing.T) {
	svc, repo, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, heatDraft())
	require.NoError(t, err)

	drafts := []models.MovieDraft{
		{Poster: "p.jpg"},
		{Title: "No poster"},
		{},
	}
	for _, d := range drafts {
		_, err := svc.Create(ctx, d)
		assert.ErrorIs(t, err, ErrInvalidRecord)
	}

	assert.Len(t, svc.List(ctx, query.Criteria{}), 1)
	assert.Equal(t, 1, repo.saves, "rejected drafts do not save")
}

func TestCreate_RejectsRatingOutOfRange(t *testing.T) {
	svc, _, _ := newTestService(t)

	d := heatDraft()
	d.Rating = 21
	_, err := svc.Create(context.Background(), d)
	assert.ErrorIs(t, err, ErrInvalidRecord)

	d.Rating = -1
	_, err = svc.Create(context.Background(), d)
	assert.ErrorIs(t, err, ErrInvalidRecord)
}

func TestCreate_AppliesDefaults(t *testing.T) {
	svc, repo, _ := newTestService(t)

	m, err := svc.Create(context.Background(), heatDraft())
	require.NoError(t, err)

	assert.Equal(t, int64(1718035200000), m.ID)
	assert.Equal(t, "2024-06-10T16:00:00.000Z", m.DateAdded)
	assert.True(t, m.Watched)
	require.NotNil(t, m.DateWatched)
	assert.Equal(t, "2024-06-10", *m.DateWatched)
	assert.Equal(t, models.Versions{VF: false, VO: true}, m.Versions)
	assert.Equal(t, []string{"culte"}, m.Tags)

	require.Len(t, repo.saved, 1)
	assert.Equal(t, *m, repo.saved[0])
}

func TestCreate_IDsStrictlyIncrease(t *testing.T) {
	svc, _, clock := newTestService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, heatDraft())
	require.NoError(t, err)
	second, err := svc.Create(ctx, heatDraft())
	require.NoError(t, err)
	clock.Advance(-time.Hour)
	third, err := svc.Create(ctx, heatDraft())
	require.NoError(t, err)

	assert.Less(t, first.ID, second.ID)
	assert.Less(t, second.ID, third.ID)
}

func TestCreate_BacklogEntry(t *testing.T) {
	svc, _, _ := newTestService(t)

	m, err := svc.Create(context.Background(), duneDraft())
	require.NoError(t, err)
	assert.False(t, m.Watched)
	assert.Nil(t, m.DateWatched)
	assert.Empty(t, m.Tags)
	assert.NotNil(t, m.Tags)

	d := duneDraft()
	d.DateWatched = strPtr("2023-01-15")
	m, err = svc.Create(context.Background(), d)
	require.NoError(t, err)
	require.NotNil(t, m.DateWatched)
	assert.Equal(t, "2023-01-15", *m.DateWatched)
}

func TestCreate_ExplicitDateWatchedWins(t *testing.T) {
	svc, _, _ := newTestService(t)

	d := heatDraft()
	d.DateWatched = strPtr("2019-11-02")
	m, err := svc.Create(context.Background(), d)
	require.NoError(t, err)
	assert.Equal(t, "2019-11-02", *m.DateWatched)
}

func TestUpdate_NotFound(t *testing.T) {
	svc, repo, _ := newTestService(t)

	_, err := svc.Update(context.Background(), 42, models.MoviePatch{Title: strPtr("x")})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 0, repo.saves)
}

func TestUpdate_MarkWatchedSetsToday(t *testing.T) {
	svc, _, clock := newTestService(t)
	ctx := context.Background()

	m, err := svc.Create(ctx, duneDraft())
	require.NoError(t, err)

	clock.Advance(48 * time.Hour)
	updated, err := svc.Update(ctx, m.ID, models.MoviePatch{Watched: boolPtr(true)})
	require.NoError(t, err)
	assert.True(t, updated.Watched)
	require.NotNil(t, updated.DateWatched)
	assert.Equal(t, "2024-06-12", *updated.DateWatched)
}

func TestUpdate_MarkUnwatchedClearsDate(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	m, err := svc.Create(ctx, heatDraft())
	require.NoError(t, err)

	updated, err := svc.Update(ctx, m.ID, models.MoviePatch{Watched: boolPtr(false)})
	require.NoError(t, err)
	assert.False(t, updated.Watched)
	assert.Nil(t, updated.DateWatched)
}

func TestUpdate_ExplicitDateSurvivesUnwatch(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	m, err := svc.Create(ctx, heatDraft())
	require.NoError(t, err)

	updated, err := svc.Update(ctx, m.ID, models.MoviePatch{
		Watched:     boolPtr(false),
		DateWatched: strPtr("2020-01-01"),
	})
	require.NoError(t, err)
	require.NotNil(t, updated.DateWatched)
	assert.Equal(t, "2020-01-01", *updated.DateWatched)
}

func TestUpdate_MergesShallowly(t *testing.T) {
	svc, repo, _ := newTestService(t)
	ctx := context.Background()

	m, err := svc.Create(ctx, heatDraft())
	require.NoError(t, err)

	updated, err := svc.Update(ctx, m.ID, models.MoviePatch{
		Rating:   intPtr(19),
		Versions: &models.Versions{VF: true},
		Tags:     &[]string{"favori", "oscar"},
	})
	require.NoError(t, err)

	assert.Equal(t, 19, updated.Rating)
	assert.Equal(t, models.Versions{VF: true, VO: false}, updated.Versions, "versions are replaced, not merged")
	assert.Equal(t, []string{"favori", "oscar"}, updated.Tags)
	assert.Equal(t, "Heat", updated.Title)
	assert.Equal(t, m.DateAdded, updated.DateAdded)
	assert.Equal(t, m.DateWatched, updated.DateWatched, "untouched watched state keeps its date")
	assert.Equal(t, *updated, repo.saved[0])
}

func TestUpdate_ClearsYear(t *testing.T) {
	svc, repo, _ := newTestService(t)
	ctx := context.Background()

	m, err := svc.Create(ctx, heatDraft())
	require.NoError(t, err)
	require.NotNil(t, m.Year)

	var patch models.MoviePatch
	require.NoError(t, json.Unmarshal([]byte(`{"rating": 18}`), &patch))
	updated, err := svc.Update(ctx, m.ID, patch)
	require.NoError(t, err)
	assert.Equal(t, m.Year, updated.Year, "a patch without year keeps it")

	patch = models.MoviePatch{}
	require.NoError(t, json.Unmarshal([]byte(`{"year": null}`), &patch))
	updated, err = svc.Update(ctx, m.ID, patch)
	require.NoError(t, err)
	assert.Nil(t, updated.Year)
	assert.Equal(t, 18, updated.Rating)
	assert.Nil(t, repo.saved[0].Year)
}

func TestUpdate_RejectsBlankingRequiredFields(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	m, err := svc.Create(ctx, heatDraft())
	require.NoError(t, err)

	_, err = svc.Update(ctx, m.ID, models.MoviePatch{Title: strPtr("")})
	assert.ErrorIs(t, err, ErrInvalidRecord)
	_, err = svc.Update(ctx, m.ID, models.MoviePatch{Rating: intPtr(25)})
	assert.ErrorIs(t, err, ErrInvalidRecord)

	got, err := svc.Get(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, "Heat", got.Title)
}

func TestDelete_IsIdempotent(t *testing.T) {
	svc, repo, _ := newTestService(t)
	ctx := context.Background()

	m, err := svc.Create(ctx, heatDraft())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, m.ID))
	require.NoError(t, svc.Delete(ctx, m.ID))

	_, err = svc.Get(ctx, m.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, repo.saved)
	assert.Equal(t, 3, repo.saves)
}

func TestPersistenceFailure_KeepsInMemoryState(t *testing.T) {
	svc, repo, _ := newTestService(t)
	repo.saveErr = errors.New("disk full")
	ctx := context.Background()

	m, err := svc.Create(ctx, heatDraft())
	assert.ErrorIs(t, err, ErrPersistence)
	require.NotNil(t, m, "the created record is still returned")

	got, err := svc.Get(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, "Heat", got.Title)
}

func TestLoad(t *testing.T) {
	repo := &memoryRepository{preloaded: []models.Movie{
		{ID: 9_999_999_999_999, Title: "From the future", Poster: "p", Watched: true},
	}}
	clock := &fakeClock{t: time.Date(2024, 6, 10, 16, 0, 0, 0, time.UTC)}
	svc := NewCollectionService(repo, quietLogger(), WithClock(clock.Now))
	ctx := context.Background()

	require.NoError(t, svc.Load(ctx))
	assert.Len(t, svc.List(ctx, query.Criteria{}), 1)

	m, err := svc.Create(ctx, heatDraft())
	require.NoError(t, err)
	assert.Equal(t, int64(10_000_000_000_000), m.ID, "ids continue past loaded ones")
}

func TestLoad_FailureStartsEmpty(t *testing.T) {
	repo := &memoryRepository{loadErr: errors.New("connection refused")}
	svc := NewCollectionService(repo, quietLogger())

	err := svc.Load(context.Background())
	assert.ErrorIs(t, err, ErrPersistence)
	assert.Empty(t, svc.List(context.Background(), query.Criteria{}))
}

func TestExportSnapshot_EmptyCollection(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.ExportSnapshot(context.Background())
	assert.ErrorIs(t, err, ErrEmptyCollection)
}

func TestExportSnapshot_Format(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, heatDraft())
	require.NoError(t, err)
	_, err = svc.Create(ctx, duneDraft())
	require.NoError(t, err)

	data, err := svc.ExportSnapshot(ctx)
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "export", data)
	assert.Equal(t, "sequence_export_2024-06-10.json", svc.ExportFilename())
}

func TestExportImportRoundTrip(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, heatDraft())
	require.NoError(t, err)
	_, err = svc.Create(ctx, duneDraft())
	require.NoError(t, err)
	before := svc.List(ctx, query.Criteria{SortBy: query.SortDateAdded, Direction: query.Asc})

	data, err := svc.ExportSnapshot(ctx)
	require.NoError(t, err)
	movies, err := svc.ParseImport(data)
	require.NoError(t, err)
	require.NoError(t, svc.ReplaceAll(ctx, movies))

	after := svc.List(ctx, query.Criteria{SortBy: query.SortDateAdded, Direction: query.Asc})
	assert.Equal(t, before, after)

	again, err := svc.ExportSnapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, string(data), string(again))
}

func TestParseImport(t *testing.T) {
	svc, _, _ := newTestService(t)

	for _, raw := range []string{`{"title":"x"}`, `null`, `"movies"`, `[{"title":`, ``, `[1, 2]`} {
		_, err := svc.ParseImport([]byte(raw))
		assert.ErrorIs(t, err, ErrMalformedImport, "payload %q", raw)
	}

	movies, err := svc.ParseImport([]byte(` [] `))
	require.NoError(t, err)
	assert.Empty(t, movies)

	movies, err = svc.ParseImport([]byte(`[{"id": 7, "rating": 4}, {"id": 8, "title": "Vu", "watched": false}]`))
	require.NoError(t, err, "records are not validated individually")
	require.Len(t, movies, 2)
	assert.Empty(t, movies[0].Title)
	assert.True(t, movies[0].Watched, "missing watched means watched")
	assert.False(t, movies[1].Watched)
}

func TestParseImport_AcceptsBlankYear(t *testing.T) {
	svc, _, _ := newTestService(t)

	movies, err := svc.ParseImport([]byte(`[{"id": 1, "title": "Alien", "year": ""}, {"id": 2, "title": "Heat", "year": "1995"}]`))
	require.NoError(t, err)
	require.Len(t, movies, 2)
	assert.Nil(t, movies[0].Year)
	require.NotNil(t, movies[1].Year)
	assert.Equal(t, 1995, *movies[1].Year)
}

func TestImport_RequiresConfirmation(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	existing, err := svc.Create(ctx, heatDraft())
	require.NoError(t, err)

	raw := []byte(`[{"id": 1, "title": "A", "poster": "a"}, {"id": 1, "title": "A bis", "poster": "a"}]`)

	preview, err := svc.Import(ctx, raw, false)
	require.NoError(t, err)
	assert.Equal(t, &models.ImportPreview{Count: 2, Applied: false}, preview)
	_, err = svc.Get(ctx, existing.ID)
	require.NoError(t, err, "unconfirmed import leaves the collection untouched")

	preview, err = svc.Import(ctx, raw, true)
	require.NoError(t, err)
	assert.True(t, preview.Applied)

	all := svc.List(ctx, query.Criteria{})
	assert.Len(t, all, 2, "no deduplication against ids")
	_, err = svc.Get(ctx, existing.ID)
	assert.ErrorIs(t, err, ErrNotFound, "import replaces, never merges")

	_, err = svc.Import(ctx, []byte(`{"oops": true}`), true)
	assert.ErrorIs(t, err, ErrMalformedImport)
	assert.Len(t, svc.List(ctx, query.Criteria{}), 2)
}

func TestArchiveExport(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.ArchiveExport(ctx)
	assert.ErrorIs(t, err, ErrArchiveUnavailable)

	store := &fakeExportStore{}
	svc, _, _ = newTestService(t, WithExportStore(store))

	_, err = svc.ArchiveExport(ctx)
	assert.ErrorIs(t, err, ErrEmptyCollection)

	_, err = svc.Create(ctx, heatDraft())
	require.NoError(t, err)

	archive, err := svc.ArchiveExport(ctx)
	require.NoError(t, err)
	assert.Equal(t, "sequence_export_2024-06-10.json", archive.Filename)
	assert.Equal(t, 1, archive.Count)
	assert.Contains(t, archive.PublicURL, archive.Filename)
	assert.Contains(t, string(store.data), `"title": "Heat"`)
}

func TestViews(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	heat, err := svc.Create(ctx, heatDraft())
	require.NoError(t, err)
	dune, err := svc.Create(ctx, duneDraft())
	require.NoError(t, err)

	watched := svc.List(ctx, query.Criteria{Watched: query.FilterWatched})
	require.Len(t, watched, 1)
	assert.Equal(t, heat.ID, watched[0].ID)

	byDate := svc.List(ctx, query.Criteria{SortBy: query.SortDateWatched})
	require.Len(t, byDate, 2)
	assert.Equal(t, dune.ID, byDate[1].ID, "backlog entries sort last")

	stats := svc.Stats(ctx)
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.ToWatch)
	assert.Equal(t, 17.0, stats.AvgRating)

	assert.Equal(t, []string{"Action", "Crime", "Sci-Fi"}, svc.Genres(ctx))
	assert.Equal(t, models.SuggestedTags, svc.SuggestedTags())
}

func TestViews_SameDayWatchesOrderByID(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	var created []int64
	for i := 0; i < 3; i++ {
		m, err := svc.Create(ctx, heatDraft())
		require.NoError(t, err)
		created = append(created, m.ID)
	}

	got := svc.List(ctx, query.Criteria{SortBy: query.SortDateWatched, Direction: query.Desc})
	require.Len(t, got, 3)
	assert.Equal(t, []int64{created[2], created[1], created[0]}, []int64{got[0].ID, got[1].ID, got[2].ID})
}

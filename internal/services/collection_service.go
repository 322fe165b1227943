package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"sequence-backend/internal/derive"
	"sequence-backend/internal/models"
	"sequence-backend/internal/query"
	"sequence-backend/internal/repository"
	"sequence-backend/internal/stats"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"
)

type CollectionService interface {
	// Lifecycle
	Load(ctx context.Context) error

	// Record operations
	Create(ctx context.Context, draft models.MovieDraft) (*models.Movie, error)
	Update(ctx context.Context, id int64, patch models.MoviePatch) (*models.Movie, error)
	Delete(ctx context.Context, id int64) error
	Get(ctx context.Context, id int64) (*models.Movie, error)

	// Bulk operations
	ReplaceAll(ctx context.Context, movies []models.Movie) error
	ParseImport(raw []byte) ([]models.Movie, error)
	Import(ctx context.Context, raw []byte, confirm bool) (*models.ImportPreview, error)
	ExportSnapshot(ctx context.Context) ([]byte, error)
	ExportFilename() string
	ArchiveExport(ctx context.Context) (*models.ExportArchive, error)

	// Views
	List(ctx context.Context, criteria query.Criteria) []models.Movie
	Stats(ctx context.Context) models.CollectionStats
	Genres(ctx context.Context) []string
	SuggestedTags() []string
}

// ExportStore keeps copies of exported collections.
type ExportStore interface {
	PutExport(ctx context.Context, filename string, data []byte) (string, error)
}

type Option func(*collectionService)

// WithClock replaces time.Now, which dates records and seeds ids.
func WithClock(now func() time.Time) Option {
	return func(s *collectionService) {
		s.now = now
		s.ids.now = now
	}
}

// WithLocale sets the collation used for title ordering when a query does not
// specify one.
func WithLocale(tag language.Tag) Option {
	return func(s *collectionService) { s.locale = tag }
}

func WithExportStore(store ExportStore) Option {
	return func(s *collectionService) { s.exports = store }
}

// collectionService owns the canonical list of movies. Every operation holds
// the mutex for its whole duration, mutations included until the save returns.
type collectionService struct {
	mu      sync.Mutex
	movies  []models.Movie
	repo    repository.MovieRepository
	exports ExportStore
	logger  *logrus.Logger
	now     func() time.Time
	ids     *idGenerator
	locale  language.Tag
}

func NewCollectionService(repo repository.MovieRepository, logger *logrus.Logger, opts ...Option) CollectionService {
	s := &collectionService{
		movies: []models.Movie{},
		repo:   repo,
		logger: logger,
		now:    time.Now,
		ids:    &idGenerator{now: time.Now},
		locale: query.DefaultLocale,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *collectionService) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	movies, err := s.repo.Load(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to load collection, starting empty")
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	s.setMovies(movies)
	s.logger.WithField("count", len(s.movies)).Info("Collection loaded")
	return nil
}

func (s *collectionService) Create(ctx context.Context, draft models.MovieDraft) (*models.Movie, error) {
	if err := validateDraft(draft); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	movie := models.Movie{
		ID:        s.ids.Next(),
		Title:     draft.Title,
		Poster:    draft.Poster,
		Rating:    draft.Rating,
		Review:    draft.Review,
		Versions:  models.Versions{VF: false, VO: true},
		Year:      draft.Year,
		Duration:  draft.Duration,
		Director:  draft.Director,
		Actors:    draft.Actors,
		Platform:  draft.Platform,
		Genre:     draft.Genre,
		Tags:      []string{},
		Watched:   true,
		DateAdded: derive.Timestamp(now),
	}
	if draft.Versions != nil {
		movie.Versions = *draft.Versions
	}
	if draft.Tags != nil {
		movie.Tags = append([]string{}, draft.Tags...)
	}
	if draft.Watched != nil {
		movie.Watched = *draft.Watched
	}
	applyWatchedRule(&movie, true, draft.DateWatched, derive.Today(now))
	movie = movie.Clone()

	s.movies = append(s.movies, movie)

	s.logger.WithFields(logrus.Fields{
		"id":    movie.ID,
		"title": movie.Title,
	}).Info("Movie created")

	created := movie.Clone()
	return &created, s.persist(ctx, "create")
}

func (s *collectionService) Update(ctx context.Context, id int64, patch models.MoviePatch) (*models.Movie, error) {
	if err := validatePatch(patch); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	today := derive.Today(s.now())
	var updated *models.Movie
	for i := range s.movies {
		if s.movies[i].ID != id {
			continue
		}
		merged := mergePatch(s.movies[i], patch)
		applyWatchedRule(&merged, patch.Watched != nil, patch.DateWatched, today)
		s.movies[i] = merged
		if updated == nil {
			out := merged.Clone()
			updated = &out
		}
	}
	if updated == nil {
		return nil, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}

	s.logger.WithField("id", id).Debug("Movie updated")
	return updated, s.persist(ctx, "update")
}

func (s *collectionService) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.movies[:0:0]
	for _, m := range s.movies {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	if len(kept) != len(s.movies) {
		s.logger.WithField("id", id).Info("Movie deleted")
	}
	s.movies = kept

	return s.persist(ctx, "delete")
}

func (s *collectionService) Get(ctx context.Context, id int64) (*models.Movie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, m := range s.movies {
		if m.ID == id {
			out := m.Clone()
			return &out, nil
		}
	}
	return nil, fmt.Errorf("%w: id %d", ErrNotFound, id)
}

// ReplaceAll discards the collection and stores movies as given: no merge,
// no deduplication.
func (s *collectionService) ReplaceAll(ctx context.Context, movies []models.Movie) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous := len(s.movies)
	s.setMovies(models.CloneMovies(movies))

	s.logger.WithFields(logrus.Fields{
		"previous": previous,
		"imported": len(s.movies),
	}).Info("Collection replaced")

	return s.persist(ctx, "replace")
}

// ParseImport decodes an import payload. Only the top-level shape is checked:
// elements are not validated, so records missing a title are accepted.
func (s *collectionService) ParseImport(raw []byte) ([]models.Movie, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("%w: top-level value is not an array", ErrMalformedImport)
	}

	var movies []models.Movie
	if err := json.Unmarshal(trimmed, &movies); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedImport, err)
	}
	if movies == nil {
		movies = []models.Movie{}
	}
	return movies, nil
}

// Import parses raw and, once confirmed, replaces the collection with it.
// Without confirmation the collection is untouched and only the preview is
// returned.
func (s *collectionService) Import(ctx context.Context, raw []byte, confirm bool) (*models.ImportPreview, error) {
	movies, err := s.ParseImport(raw)
	if err != nil {
		s.logger.WithError(err).Warn("Import rejected")
		return nil, err
	}

	preview := &models.ImportPreview{Count: len(movies)}
	if !confirm {
		return preview, nil
	}

	preview.Applied = true
	return preview, s.ReplaceAll(ctx, movies)
}

func (s *collectionService) ExportSnapshot(ctx context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.movies) == 0 {
		return nil, ErrEmptyCollection
	}

	data, err := json.MarshalIndent(s.movies, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode collection: %w", err)
	}
	return data, nil
}

func (s *collectionService) ExportFilename() string {
	return derive.ExportFilename(s.now())
}

func (s *collectionService) ArchiveExport(ctx context.Context) (*models.ExportArchive, error) {
	if s.exports == nil {
		return nil, ErrArchiveUnavailable
	}

	data, err := s.ExportSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	filename := s.ExportFilename()
	url, err := s.exports.PutExport(ctx, filename, data)
	if err != nil {
		return nil, fmt.Errorf("failed to archive export: %w", err)
	}

	var count int
	s.mu.Lock()
	count = len(s.movies)
	s.mu.Unlock()

	return &models.ExportArchive{Filename: filename, PublicURL: url, Count: count}, nil
}

func (s *collectionService) List(ctx context.Context, criteria query.Criteria) []models.Movie {
	if criteria.Locale == language.Und {
		criteria.Locale = s.locale
	}
	return query.Run(s.snapshot(), criteria)
}

func (s *collectionService) Stats(ctx context.Context) models.CollectionStats {
	return stats.Summarize(s.snapshot())
}

func (s *collectionService) Genres(ctx context.Context) []string {
	return derive.AllGenres(s.snapshot())
}

func (s *collectionService) SuggestedTags() []string {
	return append([]string{}, models.SuggestedTags...)
}

func (s *collectionService) snapshot() []models.Movie {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.CloneMovies(s.movies)
}

// setMovies installs a new collection and moves the id generator past every
// id it contains. Callers hold the mutex.
func (s *collectionService) setMovies(movies []models.Movie) {
	if movies == nil {
		movies = []models.Movie{}
	}
	s.movies = movies
	for _, m := range movies {
		s.ids.Observe(m.ID)
	}
}

// persist saves the full collection. A failed save is reported but the
// in-memory mutation is kept. Callers hold the mutex.
func (s *collectionService) persist(ctx context.Context, operation string) error {
	if err := s.repo.Save(ctx, models.CloneMovies(s.movies)); err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"operation": operation,
			"count":     len(s.movies),
		}).Error("Failed to persist collection")
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return nil
}

// applyWatchedRule keeps watched and dateWatched consistent after a mutation.
// watchedSet reports that the mutation supplied watched; date is the
// dateWatched it supplied, if any. An explicit non-empty date always wins.
func applyWatchedRule(m *models.Movie, watchedSet bool, date *string, today string) {
	if date != nil && *date != "" {
		explicit := *date
		if day, ok := derive.NormalizeDate(explicit); ok {
			explicit = day
		}
		m.DateWatched = &explicit
		return
	}

	switch {
	case watchedSet && m.Watched:
		m.DateWatched = &today
	case watchedSet && !m.Watched:
		m.DateWatched = nil
	case date != nil:
		// An explicit empty date clears it.
		m.DateWatched = nil
	}
}

// mergePatch applies every supplied field of p onto a copy of m.
func mergePatch(m models.Movie, p models.MoviePatch) models.Movie {
	out := m.Clone()
	if p.Title != nil {
		out.Title = *p.Title
	}
	if p.Poster != nil {
		out.Poster = *p.Poster
	}
	if p.Rating != nil {
		out.Rating = *p.Rating
	}
	if p.Review != nil {
		out.Review = *p.Review
	}
	if p.Versions != nil {
		out.Versions = *p.Versions
	}
	if p.Year != nil {
		year := *p.Year
		out.Year = &year
	} else if p.ClearYear {
		out.Year = nil
	}
	if p.Duration != nil {
		out.Duration = *p.Duration
	}
	if p.Director != nil {
		out.Director = *p.Director
	}
	if p.Actors != nil {
		out.Actors = *p.Actors
	}
	if p.Platform != nil {
		out.Platform = *p.Platform
	}
	if p.Genre != nil {
		out.Genre = *p.Genre
	}
	if p.Tags != nil {
		out.Tags = append([]string{}, (*p.Tags)...)
	}
	if p.Watched != nil {
		out.Watched = *p.Watched
	}
	return out
}

func validateDraft(d models.MovieDraft) error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Title, validation.Required),
		validation.Field(&d.Poster, validation.Required),
		validation.Field(&d.Rating, validation.Min(derive.MinRating), validation.Max(derive.MaxRating)),
	)
}

func validatePatch(p models.MoviePatch) error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Title, validation.NilOrNotEmpty),
		validation.Field(&p.Poster, validation.NilOrNotEmpty),
		validation.Field(&p.Rating, validation.Min(derive.MinRating), validation.Max(derive.MaxRating)),
	)
}

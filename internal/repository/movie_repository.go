package repository

import (
	"context"
	"fmt"
	"time"

	"sequence-backend/internal/database"
	"sequence-backend/internal/models"

	"gorm.io/gorm"
)

// MovieRepository persists the whole collection at once.
type MovieRepository interface {
	// Load returns the saved collection, or nil when nothing was saved yet.
	Load(ctx context.Context) ([]models.Movie, error)
	// Save replaces the stored collection with movies.
	Save(ctx context.Context, movies []models.Movie) error
}

const saveBatchSize = 100

type movieRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewMovieRepository(db *database.Database) MovieRepository {
	return &movieRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *movieRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *movieRepository) Load(ctx context.Context) ([]models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var rows []models.MovieRecord
	if err := r.db.WithContext(ctx).Order("position ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load movies: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	movies := make([]models.Movie, len(rows))
	for i, row := range rows {
		movies[i] = row.Movie()
	}
	return movies, nil
}

// Save rewrites the table inside one transaction so a failed save leaves the
// previous collection intact.
func (r *movieRepository) Save(ctx context.Context, movies []models.Movie) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows := make([]models.MovieRecord, len(movies))
	for i, m := range movies {
		rows[i] = models.NewMovieRecord(m, i)
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.MovieRecord{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.CreateInBatches(rows, saveBatchSize).Error
	})
	if err != nil {
		return fmt.Errorf("failed to save movies: %w", err)
	}
	return nil
}

package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"sequence-backend/internal/models"
)

// fileMovieRepository keeps the collection as one JSON array on disk, the same
// document the export produces.
type fileMovieRepository struct {
	path string
}

func NewFileMovieRepository(path string) MovieRepository {
	return &fileMovieRepository{path: path}
}

func (r *fileMovieRepository) Load(ctx context.Context) ([]models.Movie, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", r.path, err)
	}

	var movies []models.Movie
	if err := json.Unmarshal(data, &movies); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", r.path, err)
	}
	return movies, nil
}

// Save writes to a temporary file and renames it over the previous one, so
// readers never observe a partially written collection.
func (r *fileMovieRepository) Save(ctx context.Context, movies []models.Movie) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if movies == nil {
		movies = []models.Movie{}
	}

	data, err := json.Marshal(movies)
	if err != nil {
		return fmt.Errorf("failed to encode movies: %w", err)
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".movies-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write movies: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", r.path, err)
	}
	return nil
}

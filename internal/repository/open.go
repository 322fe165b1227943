package repository

import (
	"fmt"

	"sequence-backend/internal/config"
	"sequence-backend/internal/database"
)

// Open returns the repository selected by cfg.Store. The database handle is
// nil for the file backend.
func Open(cfg *config.Config) (MovieRepository, *database.Database, error) {
	switch cfg.Store.Backend {
	case config.BackendFile:
		return NewFileMovieRepository(cfg.Store.FilePath), nil, nil
	case config.BackendDatabase:
		db, err := database.Connect(cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		return NewMovieRepository(db), db, nil
	default:
		return nil, nil, fmt.Errorf("unsupported store backend %q", cfg.Store.Backend)
	}
}

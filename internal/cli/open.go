package cli

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"

	"sequence-backend/internal/config"
	"sequence-backend/internal/repository"
	"sequence-backend/internal/services"
)

// ConfiguredOpener opens the store described by the environment, or the file
// named by --file.
func ConfiguredOpener(log *logrus.Logger) Opener {
	return func(ctx context.Context, opts *RootOptions) (services.CollectionService, func(), error) {
		cfg := config.Load()
		if opts.File != "" {
			cfg.Store.Backend = config.BackendFile
			cfg.Store.FilePath = opts.File
		}
		// Object storage is only used by the HTTP API.
		cfg.MinIO.Enabled = false

		if err := cfg.Validate(); err != nil {
			return nil, nil, err
		}

		locale, err := language.Parse(cfg.Query.Locale)
		if err != nil {
			return nil, nil, fmt.Errorf("QUERY_LOCALE: %w", err)
		}

		repo, db, err := repository.Open(cfg)
		if err != nil {
			return nil, nil, err
		}
		release := func() {
			if db == nil {
				return
			}
			if err := db.Close(); err != nil {
				log.WithError(err).Warn("Error closing database connection")
			}
		}

		svc := services.NewCollectionService(repo, log, services.WithLocale(locale))
		if err := svc.Load(ctx); err != nil {
			release()
			return nil, nil, err
		}

		log.WithFields(logrus.Fields{
			"backend": cfg.Store.Backend,
		}).Debug("Collection opened")

		return svc, release, nil
	}
}

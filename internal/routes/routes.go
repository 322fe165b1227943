package routes

import (
	"sequence-backend/internal/handlers"

	"github.com/gofiber/fiber/v2"
)

func Setup(app *fiber.App, movieHandler *handlers.MovieHandler, collectionHandler *handlers.CollectionHandler, uploadHandler *handlers.UploadHandler) {
	// API versioning
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Movie routes - CRUD operations
	movies := v1.Group("/movies")
	{
		movies.Get("/", movieHandler.GetAllMovies)
		movies.Get("/:id", movieHandler.GetMovieByID)
		movies.Post("/", movieHandler.CreateMovie)
		movies.Patch("/:id", movieHandler.UpdateMovie)
		movies.Delete("/:id", movieHandler.DeleteMovie)
	}

	// Derived views
	v1.Get("/genres", movieHandler.GetGenres)
	v1.Get("/tags", movieHandler.GetTags)
	v1.Get("/stats", movieHandler.GetStats)

	// Collection routes - export and import
	collection := v1.Group("/collection")
	{
		collection.Get("/export", collectionHandler.ExportCollection)
		collection.Post("/export/archive", collectionHandler.ArchiveExport)
		collection.Post("/import", collectionHandler.ImportCollection)
	}

	upload := v1.Group("/upload")
	{
		upload.Get("/presign", uploadHandler.GetPresignedURL)
	}
}

package handlers

import (
	"sequence-backend/internal/query"

	"github.com/gofiber/fiber/v2"
)

// PresignedUploadResponse is returned by the poster upload endpoint. The
// client PUTs the image to PresignedURL and stores PublicURL as the poster.
type PresignedUploadResponse struct {
	PresignedURL string `json:"presigned_url"`
	PublicURL    string `json:"public_url"`
}

// listParams reads the view parameters of GET /movies. Sorting defaults to
// the most recently watched first.
func listParams(c *fiber.Ctx) query.Params {
	return query.Params{
		Search:  c.Query("search"),
		Rating:  c.Query("rating", "all"),
		Version: c.Query("version", "all"),
		Genre:   c.Query("genre", "all"),
		Watched: c.Query("watched", "all"),
		SortBy:  c.Query("sort_by", string(query.SortDateWatched)),
		Order:   c.Query("order", string(query.Desc)),
		Locale:  c.Query("locale"),
	}
}

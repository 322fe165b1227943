package handlers

import (
	"errors"
	"strconv"

	"sequence-backend/internal/models"
	"sequence-backend/internal/query"
	"sequence-backend/internal/services"
	"sequence-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type MovieHandler struct {
	service services.CollectionService
	logger  *logrus.Logger
}

func NewMovieHandler(service services.CollectionService, logger *logrus.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		logger:  logger,
	}
}

// GetAllMovies godoc
// @Summary List movies
// @Description Filtered and sorted view of the collection. Filters combine with AND; "all" or an empty value disables a filter.
// @Tags movies
// @Accept json
// @Produce json
// @Param search query string false "Case-insensitive match on title, director, actors or review"
// @Param rating query string false "Rating tier (all, excellent, good, average, poor)"
// @Param version query string false "Version available (all, VF, VO)"
// @Param genre query string false "Exact genre token"
// @Param watched query string false "Watched state (all, watched, toWatch)"
// @Param sort_by query string false "Sort key (rating, title, year, duration, dateWatched, dateAdded)" default(dateWatched)
// @Param order query string false "Sort order (asc, desc)" default(desc)
// @Param locale query string false "BCP 47 locale used to order titles"
// @Success 200 {object} utils.StandardResponse{data=[]models.Movie,meta=utils.ListMeta} "List of movies"
// @Failure 400 {object} utils.StandardResponse "Invalid filter or sort parameter"
// @Router /movies [get]
func (h *MovieHandler) GetAllMovies(c *fiber.Ctx) error {
	ctx := c.Context()

	criteria, err := query.ParseCriteria(listParams(c))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	movies := h.service.List(ctx, criteria)
	total := h.service.Stats(ctx).Total

	meta := utils.ListMeta{Count: len(movies), Total: total}
	return utils.SuccessWithMetaResponse(c, fiber.StatusOK, "Movies retrieved successfully", movies, meta)
}

// GetMovieByID godoc
// @Summary Get movie by ID
// @Description Get a single movie by its ID
// @Tags movies
// @Accept json
// @Produce json
// @Param id path int true "Movie ID"
// @Success 200 {object} utils.StandardResponse{data=models.Movie} "Movie details"
// @Failure 400 {object} utils.StandardResponse "Invalid movie ID"
// @Failure 404 {object} utils.StandardResponse "Movie not found"
// @Router /movies/{id} [get]
func (h *MovieHandler) GetMovieByID(c *fiber.Ctx) error {
	ctx := c.Context()

	id, err := parseMovieID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID")
	}

	movie, err := h.service.Get(ctx, id)
	if err != nil {
		return utils.ErrorResponse(c, statusFor(err), err.Error())
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Movie retrieved successfully", movie)
}

// CreateMovie godoc
// @Summary Add a movie
// @Description Add a record to the collection. Versions default to VO only and watched defaults to true; a watched record without a date is dated today.
// @Tags movies
// @Accept json
// @Produce json
// @Param movie body models.MovieDraft true "Movie draft"
// @Success 201 {object} utils.StandardResponse{data=models.Movie} "Movie created successfully"
// @Failure 400 {object} utils.StandardResponse "Invalid request body"
// @Router /movies [post]
func (h *MovieHandler) CreateMovie(c *fiber.Ctx) error {
	ctx := c.Context()

	var draft models.MovieDraft
	if err := c.BodyParser(&draft); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	movie, err := h.service.Create(ctx, draft)
	if err != nil {
		if errors.Is(err, services.ErrPersistence) && movie != nil {
			return utils.WarningResponse(c, fiber.StatusCreated, "Movie created but the collection could not be saved", movie)
		}
		h.logger.WithError(err).WithField("title", draft.Title).Warn("Failed to create movie")
		return utils.ErrorResponse(c, statusFor(err), err.Error())
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "Movie created successfully", movie)
}

// UpdateMovie godoc
// @Summary Update a movie
// @Description Merge the supplied fields into a record. Setting watched to true dates the record today unless a date is given; setting it to false clears the date.
// @Tags movies
// @Accept json
// @Produce json
// @Param id path int true "Movie ID"
// @Param movie body models.MoviePatch true "Fields to change"
// @Success 200 {object} utils.StandardResponse{data=models.Movie} "Movie updated successfully"
// @Failure 400 {object} utils.StandardResponse "Invalid request"
// @Failure 404 {object} utils.StandardResponse "Movie not found"
// @Router /movies/{id} [patch]
func (h *MovieHandler) UpdateMovie(c *fiber.Ctx) error {
	ctx := c.Context()

	id, err := parseMovieID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID")
	}

	var patch models.MoviePatch
	if err := c.BodyParser(&patch); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	movie, err := h.service.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, services.ErrPersistence) && movie != nil {
			return utils.WarningResponse(c, fiber.StatusOK, "Movie updated but the collection could not be saved", movie)
		}
		h.logger.WithError(err).WithField("id", id).Warn("Failed to update movie")
		return utils.ErrorResponse(c, statusFor(err), err.Error())
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Movie updated successfully", movie)
}

// DeleteMovie godoc
// @Summary Delete a movie
// @Description Remove a record. Deleting an unknown id succeeds and changes nothing.
// @Tags movies
// @Accept json
// @Produce json
// @Param id path int true "Movie ID"
// @Success 200 {object} utils.StandardResponse "Movie deleted successfully"
// @Failure 400 {object} utils.StandardResponse "Invalid movie ID"
// @Router /movies/{id} [delete]
func (h *MovieHandler) DeleteMovie(c *fiber.Ctx) error {
	ctx := c.Context()

	id, err := parseMovieID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID")
	}

	if err := h.service.Delete(ctx, id); err != nil {
		if errors.Is(err, services.ErrPersistence) {
			return utils.WarningResponse(c, fiber.StatusOK, "Movie deleted but the collection could not be saved", nil)
		}
		h.logger.WithError(err).WithField("id", id).Error("Failed to delete movie")
		return utils.ErrorResponse(c, statusFor(err), err.Error())
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Movie deleted successfully", nil)
}

// GetGenres godoc
// @Summary List genres
// @Description Distinct genre tokens across the collection, sorted
// @Tags views
// @Produce json
// @Success 200 {object} utils.StandardResponse{data=[]string}
// @Router /genres [get]
func (h *MovieHandler) GetGenres(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, fiber.StatusOK, "Genres retrieved successfully", h.service.Genres(c.Context()))
}

// GetTags godoc
// @Summary List suggested tags
// @Description Fixed vocabulary offered when tagging a record
// @Tags views
// @Produce json
// @Success 200 {object} utils.StandardResponse{data=[]string}
// @Router /tags [get]
func (h *MovieHandler) GetTags(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, fiber.StatusOK, "Tags retrieved successfully", h.service.SuggestedTags())
}

// GetStats godoc
// @Summary Collection statistics
// @Description Totals, average rating of watched records, tier and genre histograms and the five best rated watched records
// @Tags views
// @Produce json
// @Success 200 {object} utils.StandardResponse{data=models.CollectionStats}
// @Router /stats [get]
func (h *MovieHandler) GetStats(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, fiber.StatusOK, "Statistics retrieved successfully", h.service.Stats(c.Context()))
}

func parseMovieID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrInvalidRecord),
		errors.Is(err, services.ErrMalformedImport),
		errors.Is(err, query.ErrInvalidCriteria):
		return fiber.StatusBadRequest
	case errors.Is(err, services.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, services.ErrEmptyCollection):
		return fiber.StatusConflict
	case errors.Is(err, services.ErrArchiveUnavailable):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}

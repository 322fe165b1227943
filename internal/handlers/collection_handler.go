package handlers

import (
	"errors"
	"fmt"

	"sequence-backend/internal/services"
	"sequence-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type CollectionHandler struct {
	service services.CollectionService
	logger  *logrus.Logger
}

func NewCollectionHandler(service services.CollectionService, logger *logrus.Logger) *CollectionHandler {
	return &CollectionHandler{
		service: service,
		logger:  logger,
	}
}

// ExportCollection godoc
// @Summary Download the collection
// @Description The whole collection as an indented JSON array, served as sequence_export_<date>.json
// @Tags collection
// @Produce json
// @Success 200 {array} models.Movie
// @Failure 409 {object} utils.StandardResponse "Collection is empty"
// @Router /collection/export [get]
func (h *CollectionHandler) ExportCollection(c *fiber.Ctx) error {
	data, err := h.service.ExportSnapshot(c.Context())
	if err != nil {
		return utils.ErrorResponse(c, statusFor(err), err.Error())
	}

	filename := h.service.ExportFilename()
	h.logger.WithFields(logrus.Fields{
		"filename": filename,
		"size":     len(data),
	}).Info("Collection exported")

	c.Attachment(filename)
	return c.Send(data)
}

// ArchiveExport godoc
// @Summary Archive an export
// @Description Store a copy of the export in object storage
// @Tags collection
// @Produce json
// @Success 201 {object} utils.StandardResponse{data=models.ExportArchive}
// @Failure 409 {object} utils.StandardResponse "Collection is empty"
// @Failure 503 {object} utils.StandardResponse "Object storage is not configured"
// @Router /collection/export/archive [post]
func (h *CollectionHandler) ArchiveExport(c *fiber.Ctx) error {
	archive, err := h.service.ArchiveExport(c.Context())
	if err != nil {
		h.logger.WithError(err).Warn("Failed to archive export")
		return utils.ErrorResponse(c, statusFor(err), err.Error())
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "Export archived successfully", archive)
}

// ImportCollection godoc
// @Summary Import a collection
// @Description Replace the whole collection with a JSON array of movies. Without confirm=true the collection is left untouched and only the number of records is returned.
// @Tags collection
// @Accept json
// @Produce json
// @Param confirm query bool false "Apply the import" default(false)
// @Param movies body []models.Movie true "Exported collection"
// @Success 200 {object} utils.StandardResponse{data=models.ImportPreview}
// @Failure 400 {object} utils.StandardResponse "Malformed import"
// @Router /collection/import [post]
func (h *CollectionHandler) ImportCollection(c *fiber.Ctx) error {
	confirm := c.QueryBool("confirm", false)

	preview, err := h.service.Import(c.Context(), c.Body(), confirm)
	if err != nil {
		if errors.Is(err, services.ErrPersistence) && preview != nil {
			return utils.WarningResponse(c, fiber.StatusOK, "Collection imported but could not be saved", preview)
		}
		return utils.ErrorResponse(c, statusFor(err), err.Error())
	}

	if !preview.Applied {
		return utils.SuccessResponse(c, fiber.StatusOK,
			fmt.Sprintf("Importing will replace the collection with %d movies; repeat with confirm=true to apply", preview.Count), preview)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Collection imported successfully", preview)
}

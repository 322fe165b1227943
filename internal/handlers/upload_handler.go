package handlers

import (
	"context"
	"strings"

	"sequence-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// PosterPresigner issues upload URLs for poster images.
type PosterPresigner interface {
	GeneratePresignedURL(ctx context.Context, filename string) (string, string, error)
}

type UploadHandler struct {
	presigner PosterPresigner
	logger    *logrus.Logger
}

// NewUploadHandler builds the upload handler. A nil presigner answers every
// request with 503.
func NewUploadHandler(presigner PosterPresigner, logger *logrus.Logger) *UploadHandler {
	return &UploadHandler{
		presigner: presigner,
		logger:    logger,
	}
}

// GetPresignedURL godoc
// @Summary Get presigned URL for a poster upload
// @Description Generate a presigned URL for uploading a poster image to MinIO/S3
// @Tags upload
// @Accept json
// @Produce json
// @Param filename query string true "Filename"
// @Param contentType query string false "Content Type" default(image/jpeg)
// @Success 200 {object} utils.StandardResponse{data=PresignedUploadResponse}
// @Failure 400 {object} utils.StandardResponse
// @Failure 500 {object} utils.StandardResponse
// @Failure 503 {object} utils.StandardResponse
// @Router /upload/presign [get]
func (h *UploadHandler) GetPresignedURL(c *fiber.Ctx) error {
	if h.presigner == nil {
		return utils.ErrorResponse(c, fiber.StatusServiceUnavailable, "Object storage is not configured")
	}

	filename := c.Query("filename")
	if filename == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "filename is required")
	}

	contentType := c.Query("contentType", "image/jpeg")
	if !strings.HasPrefix(contentType, "image/") {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "posters must be images")
	}

	presignedURL, publicURL, err := h.presigner.GeneratePresignedURL(c.Context(), filename)
	if err != nil {
		h.logger.WithError(err).Error("Failed to generate presigned URL")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to generate presigned URL")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Presigned URL generated successfully", PresignedUploadResponse{
		PresignedURL: presignedURL,
		PublicURL:    publicURL,
	})
}

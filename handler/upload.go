package handler

import (
	"fmt"
	"net/url"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gofiber/fiber/v2"

	"studio_booking/config"
	"studio_booking/utils"
)

type UploadHandler struct {
	Cloudinary *cloudinary.Cloudinary
}

func NewUploadHandler(cld *cloudinary.Cloudinary) *UploadHandler {
	return &UploadHandler{Cloudinary: cld}
}

func InitCloudinary() (*cloudinary.Cloudinary, error) {
	return cloudinary.NewFromParams(
		config.Config("CLOUDINARY_CLOUD_NAME"),
		config.Config("CLOUDINARY_API_KEY"),
		config.Config("CLOUDINARY_API_SECRET"),
	)
}

type signatureInput struct {
	Folder   string `json:"folder"`
	PublicID string `json:"public_id"`
}

// POST /upload/signature — signs parameters for direct browser uploads so the
// API secret never leaves the server.
func (h *UploadHandler) GenerateSignature(c *fiber.Ctx) error {
	var input signatureInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid signature params")
	}

	timestamp := time.Now().Unix()

	params := url.Values{}
	params.Set("timestamp", fmt.Sprintf("%d", timestamp))
	if input.Folder != "" {
		params.Set("folder", input.Folder)
	}
	if input.PublicID != "" {
		params.Set("public_id", input.PublicID)
	}

	signature, err := api.SignParameters(params, config.Config("CLOUDINARY_API_SECRET"))
	if err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Signature generated successfully", fiber.Map{
		"signature": signature,
		"timestamp": timestamp,
		"apiKey":    config.Config("CLOUDINARY_API_KEY"),
		"cloudName": config.Config("CLOUDINARY_CLOUD_NAME"),
	})
}

// POST /upload — server-side upload for small assets (QR images, receipts).
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "File is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return respondError(c, err)
	}
	defer file.Close()

	folder := c.FormValue("folder", "studio_booking")
	result, err := h.Cloudinary.Upload.Upload(c.Context(), file, uploader.UploadParams{
		Folder: folder,
	})
	if err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "File uploaded successfully", fiber.Map{
		"url":      result.SecureURL,
		"publicId": result.PublicID,
	})
}

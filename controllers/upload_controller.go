package controllers

import (
	"context"
	"io"
	"log"
	"net/http"
	"strings"

	"portfolio-api/config"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Uploader streams a file to the CDN and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, file io.Reader, publicID string) (string, error)
}

// CloudinaryUploader is the production Uploader.
type CloudinaryUploader struct {
	cld    *cloudinary.Cloudinary
	folder string
}

// NewCloudinaryUploader builds the CDN client from environment credentials.
func NewCloudinaryUploader() (*CloudinaryUploader, error) {
	cld, err := cloudinary.NewFromParams(
		config.GetEnv("CLOUDINARY_CLOUD_NAME", ""),
		config.GetEnv("CLOUDINARY_API_KEY", ""),
		config.GetEnv("CLOUDINARY_API_SECRET", ""),
	)
	if err != nil {
		return nil, err
	}
	return &CloudinaryUploader{
		cld:    cld,
		folder: config.GetEnv("CLOUDINARY_FOLDER", "portfolio"),
	}, nil
}

func (u *CloudinaryUploader) Upload(ctx context.Context, file io.Reader, publicID string) (string, error) {
	resp, err := u.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		PublicID:     publicID,
		Folder:       u.folder,
		ResourceType: "auto",
	})
	if err != nil {
		return "", err
	}
	return resp.SecureURL, nil
}

type UploadController struct {
	uploader Uploader
}

func NewUploadController(u Uploader) *UploadController {
	return &UploadController{uploader: u}
}

// Upload accepts one multipart file (field "file"), pushes it to the CDN
// under a fresh public id, and returns the hosted URL. Only image/* and
// video/* content types are accepted. No retries: a transport failure goes
// straight back to the admin.
func (ctl *UploadController) Upload(c *fiber.Ctx) error {
	if ctl.uploader == nil {
		return respondError(c, http.StatusServiceUnavailable, "Upload service is not configured")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return respondError(c, http.StatusBadRequest, "No file uploaded")
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") && !strings.HasPrefix(contentType, "video/") {
		return respondError(c, http.StatusBadRequest, "Only image and video files are allowed")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return respondError(c, http.StatusBadRequest, "Could not read uploaded file")
	}
	defer file.Close()

	url, err := ctl.uploader.Upload(c.Context(), file, uuid.New().String())
	if err != nil {
		log.Printf("Upload to CDN failed: %v", err)
		return respondError(c, http.StatusBadGateway, "Upload failed")
	}

	return c.JSON(fiber.Map{"success": true, "url": url})
}

package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	applog "lookdehoje/internal/log"
	"lookdehoje/internal/storage"
)

type UploadHandler struct {
	Store *storage.Local
}

// POST /api/pieces/upload-images
//
// Multipart field "files", at most storage.MaxBatchSize files of
// storage.MaxFileSize each. The whole batch is validated before anything is
// written, so one bad file rejects the request without leaving partial
// uploads behind.
func (h *UploadHandler) UploadImages(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return badRequest(c, "expected a multipart form")
	}
	files := form.File["files"]
	if len(files) == 0 {
		return badRequest(c, "no files were sent")
	}
	if len(files) > storage.MaxBatchSize {
		return badRequest(c, fmt.Sprintf("at most %d files per upload", storage.MaxBatchSize))
	}

	for _, fh := range files {
		if fh.Size > storage.MaxFileSize {
			applog.Security(c, "upload.too_large", map[string]any{"file": fh.Filename, "size": fh.Size})
			return badRequest(c, fmt.Sprintf("%s exceeds the %dMB limit", fh.Filename, storage.MaxFileSize>>20))
		}
		if !storage.AllowedImage(fh) {
			applog.Security(c, "upload.bad_type", map[string]any{"file": fh.Filename})
			return badRequest(c, "only jpeg, jpg, png, gif and webp images are allowed")
		}
	}

	urls := make([]string, 0, len(files))
	for _, fh := range files {
		url, err := h.Store.Save(fh)
		if err != nil {
			return fail(c, "upload.save.fail", err)
		}
		urls = append(urls, url)
	}

	applog.Info(c, "upload.done", map[string]any{"count": len(urls)})
	return c.JSON(fiber.Map{"urls": urls})
}

// Copyright (c) 2026 Brightsite Labs <hello@brightsite.dev>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"brightsite/internal/middleware"
	"brightsite/internal/models"
	"brightsite/internal/render"
	"brightsite/internal/slug"
)

// maxUploadSize is the maximum allowed file upload size (20 MB).
const maxUploadSize = 20 << 20

// allowedMediaTypes defines MIME types accepted for upload.
var allowedMediaTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"image/gif":       true,
	"image/webp":      true,
	"image/svg+xml":   true,
	"application/pdf": true,
}

// MediaLibrary renders the media library admin page.
func (a *Admin) MediaLibrary(w http.ResponseWriter, r *http.Request) {
	a.renderMediaLibrary(w, r, "")
}

func (a *Admin) renderMediaLibrary(w http.ResponseWriter, r *http.Request, errMsg string) {
	if a.storage == nil {
		a.renderer.Page(w, r, "media_library", &render.PageData{
			Title:   "Media",
			Section: "media",
			Data: map[string]any{
				"Error": "Object storage is not configured.",
				"Total": 0,
			},
		})
		return
	}

	items, err := a.mediaStore.List(100, 0)
	if err != nil {
		slog.Error("list media failed", "error", err)
	}
	total, _ := a.mediaStore.Count()

	urls := make(map[string]string, len(items))
	for _, m := range items {
		urls[m.S3Key] = a.storage.FileURL(m.S3Key)
	}

	a.renderer.Page(w, r, "media_library", &render.PageData{
		Title:   "Media",
		Section: "media",
		Data: map[string]any{
			"Items": items,
			"URLs":  urls,
			"Total": total,
			"Error": errMsg,
		},
	})
}

// MediaUpload handles a multipart file upload to object storage.
func (a *Admin) MediaUpload(w http.ResponseWriter, r *http.Request) {
	if a.storage == nil {
		a.renderMediaLibrary(w, r, "Object storage is not configured.")
		return
	}

	sess := middleware.SessionFromCtx(r.Context())

	// Limit request body to maxUploadSize + some overhead for form fields.
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize+1024)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		a.renderMediaLibrary(w, r, "File too large. Maximum size is 20 MB.")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		a.renderMediaLibrary(w, r, "No file provided.")
		return
	}
	defer file.Close()

	if header.Size > maxUploadSize {
		a.renderMediaLibrary(w, r, "File too large. Maximum size is 20 MB.")
		return
	}

	// Detect content type by sniffing the first 512 bytes.
	sniffBuf := make([]byte, 512)
	n, err := file.Read(sniffBuf)
	if err != nil && err != io.EOF {
		a.renderMediaLibrary(w, r, "The file could not be read.")
		return
	}
	contentType := http.DetectContentType(sniffBuf[:n])

	// DetectContentType reports text/xml or text/plain for SVGs.
	if strings.HasSuffix(strings.ToLower(header.Filename), ".svg") &&
		(strings.Contains(contentType, "xml") || strings.Contains(contentType, "text/plain")) {
		contentType = "image/svg+xml"
	}

	if !allowedMediaTypes[contentType] {
		a.renderMediaLibrary(w, r, fmt.Sprintf("File type %q is not allowed.", contentType))
		return
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		a.renderMediaLibrary(w, r, "The file could not be processed.")
		return
	}

	// Build a readable, unique storage key from the original name.
	now := time.Now()
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext == "" {
		ext = extensionFromType(contentType)
	}
	base := slug.Generate(strings.TrimSuffix(header.Filename, filepath.Ext(header.Filename)))
	if base == "" {
		base = "file"
	}
	fileID := uuid.New().String()[:8]
	s3Key := fmt.Sprintf("media/%d/%02d/%s-%s%s", now.Year(), now.Month(), base, fileID, ext)

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		a.renderMediaLibrary(w, r, "The file could not be read.")
		return
	}

	ctx := r.Context()
	if err := a.storage.Upload(ctx, s3Key, contentType, bytes.NewReader(fileBytes), int64(len(fileBytes))); err != nil {
		slog.Error("s3 upload failed", "error", err, "key", s3Key)
		a.renderMediaLibrary(w, r, "The file could not be uploaded.")
		return
	}

	media := &models.Media{
		Filename:     base + "-" + fileID + ext,
		OriginalName: header.Filename,
		ContentType:  contentType,
		SizeBytes:    int64(len(fileBytes)),
		S3Key:        s3Key,
		UploaderID:   sess.UserID,
	}
	if alt := strings.TrimSpace(r.FormValue("alt_text")); alt != "" {
		media.AltText = &alt
	}

	if _, err := a.mediaStore.Create(media); err != nil {
		slog.Error("media db insert failed", "error", err, "key", s3Key)
		a.renderMediaLibrary(w, r, "The file metadata could not be saved.")
		return
	}

	http.Redirect(w, r, "/admin/media", http.StatusSeeOther)
}

// MediaDelete removes a media item from both S3 and the database.
func (a *Admin) MediaDelete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "mediaID"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	// Delete from DB first (returns the row for S3 cleanup).
	deleted, err := a.mediaStore.Delete(id)
	if err != nil {
		slog.Error("media db delete failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if deleted == nil {
		http.NotFound(w, r)
		return
	}

	// S3 cleanup is best-effort; an orphaned object never blocks the admin.
	if a.storage != nil {
		if err := a.storage.Delete(r.Context(), deleted.S3Key); err != nil {
			slog.Warn("s3 delete failed", "error", err, "key", deleted.S3Key)
		}
	}

	http.Redirect(w, r, "/admin/media", http.StatusSeeOther)
}

// extensionFromType returns a file extension for known MIME types.
func extensionFromType(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	case "image/svg+xml":
		return ".svg"
	case "application/pdf":
		return ".pdf"
	default:
		return ""
	}
}

package transport

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"shopkeeper/internal/middleware"
	"shopkeeper/internal/storage"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Form parts beyond this are spooled to disk by the multipart reader
const multipartMemory = 8 << 20

var (
	errMissingImage = errors.New("image file is required")
	errInvalidForm  = errors.New("invalid multipart form")
)

// UploadResponse is returned after a successful upload
type UploadResponse struct {
	ImageURL string `json:"imageUrl"`
}

// UploadHandler accepts image uploads and serves stored images
type UploadHandler struct {
	images     *storage.ImageStore
	publicPath string
	logger     *zap.Logger
}

// NewUploadHandler creates a new UploadHandler. Stored images are served under publicPath.
func NewUploadHandler(images *storage.ImageStore, publicPath string, logger *zap.Logger) *UploadHandler {
	return &UploadHandler{
		images:     images,
		publicPath: "/" + strings.Trim(publicPath, "/"),
		logger:     logger,
	}
}

// RegisterRoutes registers the upload routes
func (h *UploadHandler) RegisterRoutes(r chi.Router) {
	r.Post("/api/upload", h.Upload)
	r.Get(h.publicPath+"/{name}", h.Serve)
}

// Upload stores the multipart "image" field and returns its public URL
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := parseImageForm(w, r, h.images); err != nil {
		respondServiceError(w, h.logger, err, "upload image")
		return
	}

	stored, err := saveFormImage(r, h.images, true)
	if err != nil {
		respondServiceError(w, h.logger, err, "upload image")
		return
	}

	h.logger.Info("Image uploaded",
		zap.String("key", stored.Key),
		zap.String("content_type", stored.ContentType),
		zap.Int64("size", stored.Size),
	)
	middleware.RespondWithJSON(w, http.StatusCreated, UploadResponse{ImageURL: stored.URL})
}

// Serve streams a stored image back with its detected content type
func (h *UploadHandler) Serve(w http.ResponseWriter, r *http.Request) {
	reader, err := h.images.Open(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		respondServiceError(w, h.logger, err, "read image")
		return
	}
	defer reader.Close()

	w.Header().Set("Content-Type", reader.ContentType())
	w.Header().Set("Content-Length", strconv.FormatInt(reader.Size(), 10))
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)

	if _, err := io.Copy(w, reader); err != nil {
		h.logger.Warn("Failed to stream image", zap.Error(err))
	}
}

// parseImageForm caps the body size and parses a multipart form
func parseImageForm(w http.ResponseWriter, r *http.Request, images *storage.ImageStore) error {
	// Leave room for the other form fields and multipart framing
	r.Body = http.MaxBytesReader(w, r.Body, images.MaxBytes()+(1<<20))

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return storage.ErrTooLarge
		}
		return errInvalidForm
	}
	return nil
}

// saveFormImage stores the "image" file of a parsed multipart form.
// When the file is absent it returns errMissingImage if required, otherwise nil.
func saveFormImage(r *http.Request, images *storage.ImageStore, required bool) (*storage.StoredImage, error) {
	file, header, err := r.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) && !required {
			return nil, nil
		}
		return nil, errMissingImage
	}
	defer file.Close()

	return images.Save(r.Context(), header.Filename, file)
}

package transport

import (
	"errors"
	"net/http"
	"strconv"

	"shopkeeper/internal/middleware"
	"shopkeeper/internal/repository"
	"shopkeeper/internal/service"
	"shopkeeper/internal/storage"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

var errInvalidID = errors.New("invalid id")

var notFoundErrors = []error{
	repository.ErrUserNotFound,
	repository.ErrShopNotFound,
	repository.ErrProductNotFound,
	repository.ErrCustomerNotFound,
	storage.ErrImageNotFound,
}

var badRequestErrors = []error{
	repository.ErrInvalidReference,
	repository.ErrConstraintViolation,
	storage.ErrUnsupportedType,
	storage.ErrTooLarge,
	errMissingImage,
	errInvalidForm,
}

// respondServiceError maps service and repository errors to status codes.
// Unknown errors are logged and reported as "failed to <action>".
func respondServiceError(w http.ResponseWriter, logger *zap.Logger, err error, action string) {
	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		logger.Debug("Request rejected", zap.String("action", action), zap.Error(err))
		middleware.RespondWithError(w, http.StatusBadRequest, validationErr.Error())
		return
	}

	for _, target := range notFoundErrors {
		if errors.Is(err, target) {
			middleware.RespondWithError(w, http.StatusNotFound, target.Error())
			return
		}
	}

	for _, target := range badRequestErrors {
		if errors.Is(err, target) {
			logger.Debug("Request rejected", zap.String("action", action), zap.Error(err))
			middleware.RespondWithError(w, http.StatusBadRequest, target.Error())
			return
		}
	}

	if errors.Is(err, repository.ErrUserAlreadyExists) {
		middleware.RespondWithError(w, http.StatusConflict, repository.ErrUserAlreadyExists.Error())
		return
	}

	logger.Error("Request failed", zap.String("action", action), zap.Error(err))
	middleware.RespondWithError(w, http.StatusInternalServerError, "failed to "+action)
}

// idParam parses a positive integer path parameter
func idParam(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}

// respondInvalidID writes the 400 for a malformed path id
func respondInvalidID(w http.ResponseWriter, name string) {
	middleware.RespondWithError(w, http.StatusBadRequest, "invalid "+name)
}

// decodeRequest decodes and validates a JSON body, writing the 400 itself on failure
func decodeRequest(w http.ResponseWriter, r *http.Request, logger *zap.Logger, v interface{}) bool {
	if err := middleware.DecodeAndValidate(r, v); err != nil {
		logger.Debug("Request validation failed", zap.String("path", r.URL.Path), zap.Error(err))
		middleware.RespondWithDecodeError(w, err)
		return false
	}
	return true
}

package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"text-vectorizer/internal/services"
	"text-vectorizer/internal/vectorize"

	"github.com/sirupsen/logrus"
)

// maxBodyBytes caps request bodies
const maxBodyBytes = 10 << 20

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error   string   `json:"error"`
	Message string   `json:"message"`
	Status  int      `json:"status"`
	Errors  []string `json:"errors,omitempty"`
}

// responder holds the JSON helpers shared by the handlers
type responder struct {
	logger *logrus.Entry
}

func (h responder) decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.logger.WithError(err).WithField("path", r.URL.Path).Warn("Failed to decode request")
		h.sendError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

func (h responder) sendJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.WithError(err).Error("Failed to encode JSON")
	}
}

func (h responder) sendError(w http.ResponseWriter, status int, message string) {
	h.sendJSON(w, status, ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
		Status:  status,
	})
}

// handleServiceError maps service errors to HTTP statuses
func (h responder) handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		h.sendJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:   http.StatusText(http.StatusBadRequest),
			Message: "Validation failed",
			Status:  http.StatusBadRequest,
			Errors:  verr.Errors,
		})
	case errors.Is(err, services.ErrMorphBackendUnavailable):
		h.logger.WithError(err).WithField("path", r.URL.Path).Error("Morphology backend unavailable")
		h.sendError(w, http.StatusServiceUnavailable, err.Error())
	case errors.Is(err, vectorize.ErrSVDFailed):
		h.logger.WithError(err).WithField("path", r.URL.Path).Error("Decomposition failed")
		h.sendError(w, http.StatusInternalServerError, err.Error())
	default:
		h.logger.WithError(err).WithField("path", r.URL.Path).Error("Request failed")
		h.sendError(w, http.StatusInternalServerError, err.Error())
	}
}

// internal/recommender/handler.go
package recommender

import (
	"context"
	"encoding/json"
	"net/http"

	"evea-matching/internal/common/errors"
	"evea-matching/internal/common/logger"
	"evea-matching/internal/models"
)

// Handler exposes the recommendation service over HTTP. The wire layer
// stays thin: decode, Recommend, encode. Serialization format belongs
// to the caller-facing API, the engine semantics live in the service.
type Handler struct {
	service *Service
	logger  logger.Logger
}

func NewHandler(service *Service, log logger.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  log.WithFields(map[string]interface{}{"component": "recommender-http"}),
	}
}

type errorResponse struct {
	Code      string   `json:"code"`
	Message   string   `json:"message"`
	Details   string   `json:"details,omitempty"`
	Retryable bool     `json:"retryable"`
	Missing   []string `json:"missingFields,omitempty"`
}

// ServeHTTP handles POST /v1/recommendations.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		h.writeError(w, http.StatusMethodNotAllowed, &errorResponse{
			Code:    "METHOD_NOT_ALLOWED",
			Message: "use POST",
		})
		return
	}

	var request models.EventRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		h.writeError(w, http.StatusBadRequest, &errorResponse{
			Code:    string(errors.ErrCodeInvalidRequest),
			Message: "request body is not valid JSON",
			Details: err.Error(),
		})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.service.config.Timeout)
	defer cancel()

	recommendation, err := h.service.Recommend(ctx, &request)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(recommendation); err != nil {
		h.logger.Error("failed to encode response", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.IsInvalidRequest(err):
		h.writeError(w, http.StatusBadRequest, &errorResponse{
			Code:    string(errors.ErrCodeInvalidRequest),
			Message: "event request is missing required fields",
			Missing: errors.MissingFields(err),
		})
	case errors.IsDependencyUnavailable(err):
		h.writeError(w, http.StatusServiceUnavailable, &errorResponse{
			Code:      "DEPENDENCY_UNAVAILABLE",
			Message:   "vendor data stores are unreachable",
			Retryable: true,
		})
	default:
		h.logger.Error("recommendation failed", map[string]interface{}{
			"error": err.Error(),
		})
		h.writeError(w, http.StatusInternalServerError, &errorResponse{
			Code:    "INTERNAL_ERROR",
			Message: "recommendation failed",
		})
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, resp *errorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

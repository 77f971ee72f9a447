package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/vyrodovalexey/contacts-api/internal/model"
	"github.com/vyrodovalexey/contacts-api/internal/service"
)

// maxBodyBytes caps the size of a contact payload.
const maxBodyBytes = 1 << 20

// ContactHandler handles REST API requests for contacts.
type ContactHandler struct {
	service ContactService
	logger  *zap.Logger
}

// NewContactHandler creates a new ContactHandler instance.
func NewContactHandler(svc ContactService, logger *zap.Logger) *ContactHandler {
	return &ContactHandler{
		service: svc,
		logger:  logger,
	}
}

// RegisterRoutes registers the contact and probe routes with the router.
func (h *ContactHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/health", h.HealthCheck).Methods(http.MethodGet)
	router.HandleFunc("/ready", h.ReadyCheck).Methods(http.MethodGet)
	router.HandleFunc("/contact", h.GetContact).Methods(http.MethodGet)
	router.HandleFunc("/contact", h.CreateContact).Methods(http.MethodPost)
	// mux only runs middleware on a matched route; this lets CORS answer preflights.
	router.HandleFunc("/contact", h.Preflight).Methods(http.MethodOptions)
}

// HealthCheck handles GET /health requests.
func (h *ContactHandler) HealthCheck(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, HealthResponse{
		Status:  "healthy",
		Version: Version,
	})
}

// ReadyCheck handles GET /ready requests.
func (h *ContactHandler) ReadyCheck(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, ReadyResponse{Status: "ready"})
}

// Preflight handles OPTIONS /contact requests.
func (h *ContactHandler) Preflight(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

// GetContact handles GET /contact?name= requests.
// An empty or unknown name yields 200 with a JSON null body.
func (h *ContactHandler) GetContact(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")

	contact, err := h.service.Retrieve(r.Context(), name)
	if err != nil {
		h.logger.Error("failed to retrieve contact", zap.String("name", name), zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	// A nil *model.Contact encodes as null.
	h.writeJSON(w, http.StatusOK, contact)
}

// CreateContact handles POST /contact requests.
func (h *ContactHandler) CreateContact(w http.ResponseWriter, r *http.Request) {
	var input *model.Contact
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&input)
	if err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("invalid request body", zap.Error(err))
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.service.Create(r.Context(), input); err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			h.logger.Warn("validation failed", zap.Error(err))
			h.writeError(w, http.StatusBadRequest, verr.Error())
			return
		}

		h.logger.Error("failed to create contact", zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// writeJSON writes a JSON response with the given status code.
func (h *ContactHandler) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}

// writeError writes an error response with the given status code and message.
func (h *ContactHandler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, model.ErrorResponse{
		Code:    status,
		Message: message,
	})
}

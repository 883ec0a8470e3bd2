package get_requester

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/X-Sarthak/CSIR-Project-sub000/internal/api/handlers"
	"github.com/X-Sarthak/CSIR-Project-sub000/internal/api/middleware"
	"github.com/X-Sarthak/CSIR-Project-sub000/internal/service/requesters"
)

const (
	msgInvalidRequesterID = "некорректный идентификатор пользователя"
	msgRequesterNotFound  = "пользователь не найден"
	msgAccessDenied       = "доступ запрещен"
)

type Handler struct {
	service RequesterService
	logger  Logger
}

func NewHandler(service RequesterService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/requesters/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgAccessDenied)
		return
	}

	requesterID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /requesters/{id} - Invalid requester id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequesterID)
		return
	}

	result, err := h.service.GetByID(r.Context(), requesterID, principal)
	if err != nil {
		switch {
		case errors.Is(err, requesters.ErrRequesterNotFound):
			h.logger.Warn("GET /requesters/{id} - Not found: requester_id=%d", requesterID)
			handlers.RespondNotFound(w, msgRequesterNotFound)

		case errors.Is(err, requesters.ErrAccessDenied):
			h.logger.Warn("GET /requesters/{id} - Access denied: requester_id=%d", requesterID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("GET /requesters/{id} - Failed: requester_id=%d, error=%v", requesterID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

package create_requester

import (
	"errors"
	"net/http"

	"github.com/X-Sarthak/CSIR-Project-sub000/internal/api/handlers"
	"github.com/X-Sarthak/CSIR-Project-sub000/internal/api/middleware"
	"github.com/X-Sarthak/CSIR-Project-sub000/internal/service/requesters"
	"github.com/X-Sarthak/CSIR-Project-sub000/internal/service/requesters/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные входные данные"
	msgEmailTaken         = "email уже занят"
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

// Handle POST /api/v1/requesters
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgAccessDenied)
		return
	}

	var req models.CreateRequesterRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /requesters - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req, principal)
	if err != nil {
		switch {
		case errors.Is(err, requesters.ErrAccessDenied):
			h.logger.Warn("POST /requesters - Access denied: role=%s", principal.Role)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, requesters.ErrEmailTaken):
			h.logger.Warn("POST /requesters - Email taken: email=%s", req.Email)
			handlers.RespondConflict(w, msgEmailTaken)

		case errors.Is(err, requesters.ErrInvalidInput):
			h.logger.Warn("POST /requesters - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /requesters - Failed to create requester: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /requesters - Requester created: requester_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

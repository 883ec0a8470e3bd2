package create_room

import (
	"errors"
	"net/http"

	"github.com/X-Sarthak/CSIR-Project-sub000/internal/api/handlers"
	"github.com/X-Sarthak/CSIR-Project-sub000/internal/api/middleware"
	"github.com/X-Sarthak/CSIR-Project-sub000/internal/service/rooms"
	"github.com/X-Sarthak/CSIR-Project-sub000/internal/service/rooms/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные входные данные"
	msgInvalidWindow      = "начало дневного окна должно быть раньше его конца"
	msgLoginTaken         = "логин переговорной уже занят"
	msgAccessDenied       = "доступ запрещен"
)

type Handler struct {
	service RoomService
	logger  Logger
}

func NewHandler(service RoomService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/rooms
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgAccessDenied)
		return
	}

	var req models.CreateRoomRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /rooms - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req, principal)
	if err != nil {
		switch {
		case errors.Is(err, rooms.ErrAccessDenied):
			h.logger.Warn("POST /rooms - Access denied: role=%s", principal.Role)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, rooms.ErrLoginTaken):
			h.logger.Warn("POST /rooms - Login taken: login=%s", req.Login)
			handlers.RespondConflict(w, msgLoginTaken)

		case errors.Is(err, rooms.ErrInvalidWindow):
			h.logger.Warn("POST /rooms - Invalid window: login=%s", req.Login)
			handlers.RespondBadRequest(w, msgInvalidWindow)

		case errors.Is(err, rooms.ErrInvalidInput):
			h.logger.Warn("POST /rooms - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /rooms - Failed to create room: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /rooms - Room created: room_id=%d, login=%s", result.ID, result.Login)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

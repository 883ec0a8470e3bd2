package replace_room_window

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/X-Sarthak/CSIR-Project-sub000/internal/api/handlers"
	"github.com/X-Sarthak/CSIR-Project-sub000/internal/api/middleware"
	"github.com/X-Sarthak/CSIR-Project-sub000/internal/integrations/identity"
	replaceWindow "github.com/X-Sarthak/CSIR-Project-sub000/internal/usecase/replace_window"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidRoomID      = "некорректный идентификатор переговорной"
	msgInvalidTime        = "некорректный формат времени, ожидается HH:MM"
	msgInvalidWindow      = "начало дневного окна должно быть раньше его конца"
	msgInvalidInput       = "некорректные входные данные"
	msgRoomNotFound       = "переговорная не найдена"
	msgAccessDenied       = "доступ запрещен"
)

type Handler struct {
	useCase ReplaceWindowUseCase
	logger  Logger
}

func NewHandler(useCase ReplaceWindowUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/rooms/{id}/window
// Замена окна необратимо удаляет все бронирования переговорной.
// Доступно identity самой переговорной и администраторам.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgAccessDenied)
		return
	}

	roomID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /rooms/{id}/window - Invalid room id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	if !h.allowed(principal, roomID) {
		h.logger.Warn("PUT /rooms/{id}/window - Access denied: room_id=%d, role=%s", roomID, principal.Role)
		handlers.RespondForbidden(w, msgAccessDenied)
		return
	}

	var req ReplaceWindowRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /rooms/{id}/window - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(roomID)
	if err != nil {
		h.logger.Warn("PUT /rooms/{id}/window - Failed to parse times: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, replaceWindow.ErrRoomNotFound):
			h.logger.Warn("PUT /rooms/{id}/window - Not found: room_id=%d", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, replaceWindow.ErrInvalidWindow):
			h.logger.Warn("PUT /rooms/{id}/window - Invalid window: room_id=%d", roomID)
			handlers.RespondBadRequest(w, msgInvalidWindow)

		case errors.Is(err, replaceWindow.ErrInvalidInput):
			h.logger.Warn("PUT /rooms/{id}/window - Invalid input: room_id=%d, error=%v", roomID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /rooms/{id}/window - Failed: room_id=%d, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /rooms/{id}/window - Window replaced: room_id=%d, purged=%d", roomID, result.Purged)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

func (h *Handler) allowed(principal *identity.Principal, roomID int64) bool {
	if principal.Role == identity.RoleAdmin || principal.Role == identity.RoleSuperAdmin {
		return true
	}
	return principal.IsRoom(roomID)
}

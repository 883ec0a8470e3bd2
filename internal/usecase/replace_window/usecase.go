package replace_window

import (
	"context"
	"errors"
	"fmt"

	"github.com/X-Sarthak/CSIR-Project-sub000/internal/domain"
	roomRepo "github.com/X-Sarthak/CSIR-Project-sub000/internal/infra/storage/room"
	"github.com/X-Sarthak/CSIR-Project-sub000/pkg/types"
)

// Request входные данные замены окна доступности.
// Окно заменяется целиком, частичное обновление не поддерживается.
type Request struct {
	RoomID     int64
	Weekdays   []string
	DailyStart types.TimeString
	DailyEnd   types.TimeString
}

// Response результат замены окна
type Response struct {
	RoomID int64
	Window domain.AvailabilityWindow
	Purged int64 // сколько бронирований удалено каскадом
}

// UseCase use case замены окна доступности переговорной.
// Операция необратимо удаляет ВСЕ бронирования переговорной - старое
// расписание теряет смысл под новым окном. Вызывается только явно,
// из операции обновления окна; никакие операции уровня бронирований
// её не запускают.
type UseCase struct {
	rooms        RoomRepository
	reservations ReservationRepository
	txManager    TransactionManager
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	rooms RoomRepository,
	reservations ReservationRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		rooms:        rooms,
		reservations: reservations,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute выполняет замену окна доступности с каскадным удалением бронирований
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ReplaceWindow: room=%d, weekdays=%v, window=[%s, %s)",
		req.RoomID, req.Weekdays, req.DailyStart, req.DailyEnd)

	if req.RoomID <= 0 {
		return nil, fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	if len(req.Weekdays) == 0 {
		return nil, fmt.Errorf("%w: at least one weekday is required", ErrInvalidInput)
	}

	weekdays, err := domain.NormalizeWeekdaySet(req.Weekdays)
	if err != nil {
		uc.logger.Warn("ReplaceWindow: weekday normalization failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := req.DailyStart.Validate(); err != nil {
		return nil, fmt.Errorf("%w: invalid dailyStart: %v", ErrInvalidInput, err)
	}
	if err := req.DailyEnd.Validate(); err != nil {
		return nil, fmt.Errorf("%w: invalid dailyEnd: %v", ErrInvalidInput, err)
	}

	window := domain.AvailabilityWindow{
		Weekdays:   weekdays,
		DailyStart: req.DailyStart,
		DailyEnd:   req.DailyEnd,
	}

	if !window.IsValid() {
		uc.logger.Warn("ReplaceWindow: invalid window [%s, %s) for room=%d",
			req.DailyStart, req.DailyEnd, req.RoomID)
		return nil, ErrInvalidWindow
	}

	// Переговорная должна существовать до начала мутации (fail-fast)
	if _, err := uc.rooms.GetByID(ctx, req.RoomID); err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("ReplaceWindow: room id=%d not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("ReplaceWindow: failed to get room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	var purged int64

	// Обновление окна и удаление бронирований - одна транзакция:
	// промежуточного состояния со старыми бронированиями под новым
	// окном существовать не должно
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := uc.rooms.ReplaceWindow(txCtx, req.RoomID, window); err != nil {
			if errors.Is(err, roomRepo.ErrRoomNotFound) {
				return ErrRoomNotFound
			}
			uc.logger.Error("ReplaceWindow: failed to replace window for room=%d: %v", req.RoomID, err)
			return fmt.Errorf("%w: failed to replace window: %v", ErrInternal, err)
		}

		count, err := uc.reservations.PurgeByRoom(txCtx, req.RoomID)
		if err != nil {
			uc.logger.Error("ReplaceWindow: failed to purge reservations for room=%d: %v", req.RoomID, err)
			return fmt.Errorf("%w: failed to purge reservations: %v", ErrInternal, err)
		}

		purged = count
		return nil
	})

	if err != nil {
		return nil, err
	}

	if purged > 0 {
		uc.logger.Warn("ReplaceWindow: purged %d reservation(s) of room=%d", purged, req.RoomID)
	}
	uc.logger.Info("ReplaceWindow: successfully replaced window for room=%d", req.RoomID)

	return &Response{
		RoomID: req.RoomID,
		Window: window,
		Purged: purged,
	}, nil
}

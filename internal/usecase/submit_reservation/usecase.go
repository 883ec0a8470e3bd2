package submit_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/X-Sarthak/CSIR-Project-sub000/internal/domain"
	reservationRepo "github.com/X-Sarthak/CSIR-Project-sub000/internal/infra/storage/reservation"
	roomRepo "github.com/X-Sarthak/CSIR-Project-sub000/internal/infra/storage/room"
	"github.com/X-Sarthak/CSIR-Project-sub000/pkg/txmanager"
)

// UseCase use case создания бронирования.
// Проверка пересечений и вставка выполняются в сериализуемой транзакции,
// чтобы конкурентные submit на одну переговорную и дату не прошли оба
// по устаревшему снимку (check-then-act).
type UseCase struct {
	reservations ReservationRepository
	rooms        RoomRepository
	txManager    TransactionManager
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservations ReservationRepository,
	rooms RoomRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservations: reservations,
		rooms:        rooms,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SubmitReservation: room=%d, date=%s, interval=[%s, %s)",
		req.RoomID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SubmitReservation: validation failed: %v", err)
		return nil, err
	}

	weekday, err := resolveWeekday(req)
	if err != nil {
		uc.logger.Warn("SubmitReservation: weekday resolution failed: %v", err)
		return nil, err
	}

	// 2. Получаем переговорную. Выключенная равносильна отсутствующей.
	room, err := uc.rooms.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("SubmitReservation: room id=%d not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("SubmitReservation: failed to get room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}
	if !room.Active {
		uc.logger.Warn("SubmitReservation: room id=%d is inactive", req.RoomID)
		return nil, ErrRoomNotFound
	}

	// 3. Проверяем кандидата против окна доступности
	if err := checkWindow(&room.Window, weekday, req); err != nil {
		uc.logger.Warn("SubmitReservation: window check failed for room=%d: %v", req.RoomID, err)
		return nil, err
	}

	var result *domain.Reservation

	// 4. Выборка существующих бронирований и вставка - в сериализуемой
	// транзакции с блокировкой строк (FOR UPDATE)
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		existing, err := uc.reservations.GetCommittedByRoomAndDate(
			txCtx, req.RoomID, req.Date.Format(domain.DateFormat))
		if err != nil {
			uc.logger.Error("SubmitReservation: failed to get existing reservations: %v", err)
			return fmt.Errorf("%w: failed to get existing reservations: %v", ErrInternal, err)
		}

		if err := checkOverlap(req, existing); err != nil {
			uc.logger.Warn("SubmitReservation: overlap check failed for room=%d date=%s: %v",
				req.RoomID, req.Date.Format(domain.DateFormat), err)
			return err
		}

		created, err := uc.reservations.Create(txCtx, &domain.Reservation{
			RoomID:      req.RoomID,
			RequesterID: req.RequesterID,
			Title:       req.Title,
			Date:        req.Date,
			Weekday:     weekday,
			StartTime:   req.StartTime,
			EndTime:     req.EndTime,
			Mode:        req.Mode,
			Status:      domain.StatusPending,
		})
		if err != nil {
			if errors.Is(err, reservationRepo.ErrSlotTaken) {
				// Страховка на уровне хранилища сработала раньше нас
				return fmt.Errorf("%w: %v", ErrSlotConflict, err)
			}
			uc.logger.Error("SubmitReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		// Легаси-поведение: ссылка подключения сохраняется на переговорной,
		// а не на бронировании
		if req.JoinLink != nil && *req.JoinLink != "" {
			if err := uc.rooms.UpdateJoinLink(txCtx, req.RoomID, *req.JoinLink); err != nil {
				uc.logger.Error("SubmitReservation: failed to update join link for room=%d: %v",
					req.RoomID, err)
				return fmt.Errorf("%w: failed to update join link: %v", ErrInternal, err)
			}
		}

		result = created
		return nil
	})

	if err != nil {
		if errors.Is(err, txmanager.ErrContention) {
			uc.logger.Warn("SubmitReservation: transaction contention for room=%d date=%s",
				req.RoomID, req.Date.Format(domain.DateFormat))
			return nil, fmt.Errorf("%w: %v", ErrContention, err)
		}
		return nil, err
	}

	uc.logger.Info("SubmitReservation: successfully created reservation id=%d (pending)", result.ID)

	return responseFromDomain(result), nil
}

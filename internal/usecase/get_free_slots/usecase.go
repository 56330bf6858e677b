package get_free_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"barber-scheduling-service/internal/domain"
	barberRepo "barber-scheduling-service/internal/infra/storage/barber"
	"barber-scheduling-service/pkg/types"
)

// UseCase use case получения свободных слотов барбера на дату
type UseCase struct {
	barberRepo   BarberRepository
	scheduleRepo ScheduleRepository
	bookingRepo  BookingRepository
	planRepo     PlanRepository
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	barberRepo BarberRepository,
	scheduleRepo ScheduleRepository,
	bookingRepo BookingRepository,
	planRepo PlanRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		barberRepo:   barberRepo,
		scheduleRepo: scheduleRepo,
		bookingRepo:  bookingRepo,
		planRepo:     planRepo,
		logger:       logger,
	}
}

// Execute выполняет use case получения свободных слотов
// Слоты генерируются из конфигурации расписания, затем из них
// вычитаются занятые записями и заблокированные планами времена
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetFreeSlots: barber=%d, date=%s", req.BarberID, req.Date)

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		uc.logger.Warn("GetFreeSlots: invalid date=%q", req.Date)
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, req.Date)
	}

	// Неактивный барбер для публичных операций неотличим от несуществующего
	barber, err := uc.barberRepo.GetByID(ctx, req.BarberID)
	if err != nil {
		if errors.Is(err, barberRepo.ErrBarberNotFound) {
			uc.logger.Warn("GetFreeSlots: barber=%d not found", req.BarberID)
			return nil, ErrBarberNotFound
		}
		uc.logger.Error("GetFreeSlots: failed to get barber=%d: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: failed to get barber: %v", ErrInternal, err)
	}
	if !barber.IsActive {
		uc.logger.Warn("GetFreeSlots: barber=%d is inactive", req.BarberID)
		return nil, ErrBarberNotFound
	}

	cfg, err := uc.scheduleRepo.GetConfig(ctx, req.BarberID)
	if err != nil {
		uc.logger.Error("GetFreeSlots: failed to get config for barber=%d: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: failed to get config: %v", ErrInternal, err)
	}

	slots := cfg.SlotsForDate(date)
	if len(slots) == 0 {
		uc.logger.Info("GetFreeSlots: no slots offered for barber=%d on %s", req.BarberID, req.Date)
		return &Response{BarberID: req.BarberID, Date: req.Date, Slots: []string{}}, nil
	}

	occupied, err := uc.bookingRepo.ListOccupiedTimes(ctx, req.BarberID, req.Date)
	if err != nil {
		uc.logger.Error("GetFreeSlots: failed to list occupied times for barber=%d: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: failed to list occupied times: %v", ErrInternal, err)
	}

	blocked, err := uc.planRepo.BlockedTimes(ctx, req.BarberID, req.Date, int(date.Weekday()))
	if err != nil {
		uc.logger.Error("GetFreeSlots: failed to list plan times for barber=%d: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: failed to list plan times: %v", ErrInternal, err)
	}

	taken := make(map[types.TimeString]struct{}, len(occupied)+len(blocked))
	for _, t := range occupied {
		taken[t] = struct{}{}
	}
	for _, t := range blocked {
		taken[t] = struct{}{}
	}

	free := make([]string, 0, len(slots))
	for _, slot := range slots {
		if _, ok := taken[slot]; ok {
			continue
		}
		free = append(free, slot.String())
	}

	uc.logger.Info("GetFreeSlots: barber=%d has %d free of %d offered slots on %s",
		req.BarberID, len(free), len(slots), req.Date)

	return &Response{
		BarberID: req.BarberID,
		Date:     req.Date,
		Slots:    free,
	}, nil
}

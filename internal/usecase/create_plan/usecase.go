package create_plan

import (
	"context"
	"errors"
	"fmt"

	"barber-scheduling-service/internal/domain"
	barberRepo "barber-scheduling-service/internal/infra/storage/barber"
)

// UseCase use case создания еженедельного плана
type UseCase struct {
	barberRepo   BarberRepository
	scheduleRepo ScheduleRepository
	planRepo     PlanRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	barberRepo BarberRepository,
	scheduleRepo ScheduleRepository,
	planRepo PlanRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		barberRepo:   barberRepo,
		scheduleRepo: scheduleRepo,
		planRepo:     planRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания плана
// Расписание проверяется на репрезентативной дате: конкретной дате
// с нужным днем недели, не попадающей в выходные-исключения.
// Проверка пересечений и вставка выполняются в сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreatePlan: barber=%d, weekday=%d, time=%s", req.BarberID, req.Weekday, req.StartTime)

	// 1. Валидация входных данных
	plan, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreatePlan: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование барбера
	if _, err := uc.barberRepo.GetByID(ctx, req.BarberID); err != nil {
		if errors.Is(err, barberRepo.ErrBarberNotFound) {
			uc.logger.Warn("CreatePlan: barber=%d not found", req.BarberID)
			return nil, ErrBarberNotFound
		}
		uc.logger.Error("CreatePlan: failed to get barber=%d: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: failed to get barber: %v", ErrInternal, err)
	}

	now := uc.timeProvider.Now()

	var result *domain.RecurringPlan

	// 3. Проверки и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Время плана должно предлагаться расписанием в этот день недели
		cfg, err := uc.scheduleRepo.GetConfig(txCtx, req.BarberID)
		if err != nil {
			uc.logger.Error("CreatePlan: failed to get config for barber=%d: %v", req.BarberID, err)
			return fmt.Errorf("%w: failed to get config: %v", ErrInternal, err)
		}

		repDate, ok := cfg.RepresentativeDate(req.Weekday, now)
		if !ok {
			uc.logger.Warn("CreatePlan: no representative date for barber=%d weekday=%d", req.BarberID, req.Weekday)
			return ErrNoRepresentativeDate
		}
		if !cfg.OffersSlot(repDate, req.StartTime) {
			uc.logger.Warn("CreatePlan: slot %s is not offered on weekday=%d for barber=%d", req.StartTime, req.Weekday, req.BarberID)
			return ErrSlotNotOffered
		}

		// 3.2. Диапазон дат не должен пересекаться с другими планами на этот слот
		others, err := uc.planRepo.ListByKey(txCtx, req.BarberID, req.Weekday, req.StartTime, nil)
		if err != nil {
			uc.logger.Error("CreatePlan: failed to list plans for overlap check: %v", err)
			return fmt.Errorf("%w: failed to list plans: %v", ErrInternal, err)
		}
		for _, other := range others {
			if plan.ConflictsWith(other) {
				uc.logger.Warn("CreatePlan: plan overlaps plan id=%d", other.ID)
				return ErrPlanOverlap
			}
		}

		// 3.3. Создаем план
		created, err := uc.planRepo.Create(txCtx, plan)
		if err != nil {
			uc.logger.Error("CreatePlan: failed to create plan: %v", err)
			return fmt.Errorf("%w: failed to create plan: %v", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreatePlan: plan id=%d created", result.ID)

	return &Response{
		ID:          result.ID,
		BarberID:    result.BarberID,
		ClientName:  result.ClientName,
		ClientPhone: result.ClientPhone,
		Weekday:     result.Weekday,
		StartTime:   result.StartTime,
		StartDate:   result.StartDate,
		EndDate:     result.EndDate,
		CreatedAt:   result.CreatedAt,
	}, nil
}

package update_plan

import (
	"context"
	"errors"
	"fmt"

	"barber-scheduling-service/internal/domain"
	planRepo "barber-scheduling-service/internal/infra/storage/plan"
)

// UseCase use case обновления еженедельного плана
type UseCase struct {
	scheduleRepo ScheduleRepository
	planRepo     PlanRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	scheduleRepo ScheduleRepository,
	planRepo PlanRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		scheduleRepo: scheduleRepo,
		planRepo:     planRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case обновления плана
// Проверки те же, что и при создании, но из скана пересечений
// исключается сам обновляемый план
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdatePlan: plan=%d", req.PlanID)

	if req.PlanID <= 0 {
		return nil, fmt.Errorf("%w: planID must be positive", ErrInvalidInput)
	}

	now := uc.timeProvider.Now()

	var result *domain.RecurringPlan

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Читаем план и накладываем изменения
		plan, err := uc.planRepo.GetByID(txCtx, req.PlanID)
		if err != nil {
			if errors.Is(err, planRepo.ErrPlanNotFound) {
				uc.logger.Warn("UpdatePlan: plan=%d not found", req.PlanID)
				return ErrPlanNotFound
			}
			uc.logger.Error("UpdatePlan: failed to get plan=%d: %v", req.PlanID, err)
			return fmt.Errorf("%w: failed to get plan: %v", ErrInternal, err)
		}

		if err := applyRequest(plan, req); err != nil {
			uc.logger.Warn("UpdatePlan: validation failed for plan=%d: %v", req.PlanID, err)
			return err
		}

		// 2. Время плана должно предлагаться расписанием в этот день недели
		cfg, err := uc.scheduleRepo.GetConfig(txCtx, plan.BarberID)
		if err != nil {
			uc.logger.Error("UpdatePlan: failed to get config for barber=%d: %v", plan.BarberID, err)
			return fmt.Errorf("%w: failed to get config: %v", ErrInternal, err)
		}

		repDate, ok := cfg.RepresentativeDate(plan.Weekday, now)
		if !ok {
			uc.logger.Warn("UpdatePlan: no representative date for barber=%d weekday=%d", plan.BarberID, plan.Weekday)
			return ErrNoRepresentativeDate
		}
		if !cfg.OffersSlot(repDate, plan.StartTime) {
			uc.logger.Warn("UpdatePlan: slot %s is not offered on weekday=%d for barber=%d", plan.StartTime, plan.Weekday, plan.BarberID)
			return ErrSlotNotOffered
		}

		// 3. Скан пересечений без самого обновляемого плана
		others, err := uc.planRepo.ListByKey(txCtx, plan.BarberID, plan.Weekday, plan.StartTime, &plan.ID)
		if err != nil {
			uc.logger.Error("UpdatePlan: failed to list plans for overlap check: %v", err)
			return fmt.Errorf("%w: failed to list plans: %v", ErrInternal, err)
		}
		for _, other := range others {
			if plan.ConflictsWith(other) {
				uc.logger.Warn("UpdatePlan: plan=%d overlaps plan id=%d", plan.ID, other.ID)
				return ErrPlanOverlap
			}
		}

		// 4. Сохраняем
		if err := uc.planRepo.Update(txCtx, plan); err != nil {
			if errors.Is(err, planRepo.ErrPlanNotFound) {
				return ErrPlanNotFound
			}
			uc.logger.Error("UpdatePlan: failed to update plan=%d: %v", plan.ID, err)
			return fmt.Errorf("%w: failed to update plan: %v", ErrInternal, err)
		}

		result = plan
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdatePlan: plan id=%d updated", result.ID)

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

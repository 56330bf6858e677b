package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"barber-scheduling-service/internal/domain"
	barberRepo "barber-scheduling-service/internal/infra/storage/barber"
	bookingRepo "barber-scheduling-service/internal/infra/storage/booking"
	"barber-scheduling-service/internal/infra/tokenstore"
)

// UseCase use case создания записи
type UseCase struct {
	barberRepo   BarberRepository
	scheduleRepo ScheduleRepository
	bookingRepo  BookingRepository
	planRepo     PlanRepository
	tokenRepo    TokenRepository
	linkTokens   LinkTokenStore
	notifier     Notifier
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	barberRepo BarberRepository,
	scheduleRepo ScheduleRepository,
	bookingRepo BookingRepository,
	planRepo PlanRepository,
	tokenRepo TokenRepository,
	linkTokens LinkTokenStore,
	notifier Notifier,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		barberRepo:   barberRepo,
		scheduleRepo: scheduleRepo,
		bookingRepo:  bookingRepo,
		planRepo:     planRepo,
		tokenRepo:    tokenRepo,
		linkTokens:   linkTokens,
		notifier:     notifier,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания записи
// Проверка доступности слота и вставка выполняются в сериализуемой
// транзакции; частичный уникальный индекс в БД страхует от гонки,
// которую транзакция не перехватила
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: barber=%d, date=%s, time=%s", req.BarberID, req.Date, req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		uc.logger.Warn("CreateBooking: invalid date=%q", req.Date)
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, req.Date)
	}

	// 2. Разрешаем телефон клиента
	phone, linkToken, err := uc.resolvePhone(ctx, req)
	if err != nil {
		return nil, err
	}

	// 3. Проверяем существование барбера
	// Неактивный барбер недоступен для записи наравне с несуществующим
	barber, err := uc.barberRepo.GetByID(ctx, req.BarberID)
	if err != nil {
		if errors.Is(err, barberRepo.ErrBarberNotFound) {
			uc.logger.Warn("CreateBooking: barber=%d not found", req.BarberID)
			return nil, ErrBarberNotFound
		}
		uc.logger.Error("CreateBooking: failed to get barber=%d: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: failed to get barber: %v", ErrInternal, err)
	}
	if !barber.IsActive {
		uc.logger.Warn("CreateBooking: barber=%d is inactive", req.BarberID)
		return nil, ErrBarberNotFound
	}

	now := uc.timeProvider.Now()

	status := domain.StatusPending
	if req.AutoConfirm {
		status = domain.StatusConfirmed
	}

	var result *domain.Booking
	var confirmToken *string

	// 4. Проверка доступности и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Слот должен предлагаться расписанием
		cfg, err := uc.scheduleRepo.GetConfig(txCtx, req.BarberID)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get config for barber=%d: %v", req.BarberID, err)
			return fmt.Errorf("%w: failed to get config: %v", ErrInternal, err)
		}
		if !cfg.OffersSlot(date, req.StartTime) {
			uc.logger.Warn("CreateBooking: slot %s %s is not offered for barber=%d", req.Date, req.StartTime, req.BarberID)
			return ErrSlotNotOffered
		}

		// 4.2. Слот не должен быть занят еженедельным планом
		blocked, err := uc.planRepo.BlockedTimes(txCtx, req.BarberID, req.Date, int(date.Weekday()))
		if err != nil {
			uc.logger.Error("CreateBooking: failed to list plan times for barber=%d: %v", req.BarberID, err)
			return fmt.Errorf("%w: failed to list plan times: %v", ErrInternal, err)
		}
		for _, t := range blocked {
			if t == req.StartTime {
				uc.logger.Warn("CreateBooking: slot %s %s is reserved by a plan for barber=%d", req.Date, req.StartTime, req.BarberID)
				return ErrSlotReservedByPlan
			}
		}

		// 4.3. Слот не должен быть занят другой записью (FOR UPDATE внутри tx)
		taken, err := uc.bookingRepo.Exists(txCtx, req.BarberID, req.Date, req.StartTime)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to check slot occupancy: %v", err)
			return fmt.Errorf("%w: failed to check slot occupancy: %v", ErrInternal, err)
		}
		if taken {
			uc.logger.Warn("CreateBooking: slot %s %s is already booked for barber=%d", req.Date, req.StartTime, req.BarberID)
			return ErrSlotAlreadyBooked
		}

		// 4.4. Создаем запись
		booking := &domain.Booking{
			BarberID:    req.BarberID,
			ClientName:  strings.TrimSpace(req.ClientName),
			ClientPhone: phone,
			Date:        date,
			StartTime:   req.StartTime,
			Status:      status,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				return ErrSlotAlreadyBooked
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		// 4.5. Для неподтвержденных записей выпускаем одноразовый токен
		if status == domain.StatusPending {
			token := &domain.ConfirmToken{
				Token:     uuid.NewString(),
				BookingID: created.ID,
				ExpiresAt: now.Add(domain.ConfirmTokenTTL),
			}
			if _, err := uc.tokenRepo.Create(txCtx, token); err != nil {
				uc.logger.Error("CreateBooking: failed to create confirm token: %v", err)
				return fmt.Errorf("%w: failed to create confirm token: %v", ErrInternal, err)
			}
			confirmToken = &token.Token
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	// 5. Токен ссылки одноразовый: удаляем после успешной записи
	if linkToken != nil {
		if err := uc.linkTokens.Delete(ctx, *linkToken); err != nil {
			uc.logger.Error("CreateBooking: failed to delete link token: %v", err)
		}
	}

	// 6. Уведомление клиента не влияет на исход операции
	if phone != domain.DefaultClientPhone {
		uc.notifier.NotifyBestEffort(ctx, phone, fmt.Sprintf(
			"Ваша запись на %s в %s создана.", req.Date, req.StartTime,
		))
	}

	uc.logger.Info("CreateBooking: booking id=%d created with status=%s", result.ID, result.Status)

	return &Response{
		ID:           result.ID,
		BarberID:     result.BarberID,
		ClientName:   result.ClientName,
		ClientPhone:  result.ClientPhone,
		Date:         result.Date,
		StartTime:    result.StartTime,
		Status:       string(result.Status),
		ConfirmToken: confirmToken,
		CreatedAt:    result.CreatedAt,
	}, nil
}

// resolvePhone определяет телефон клиента: явный номер, токен
// персональной ссылки или телефон-заглушка
func (uc *UseCase) resolvePhone(ctx context.Context, req *Request) (string, *string, error) {
	if req.LinkToken != nil {
		phone, err := uc.linkTokens.Get(ctx, *req.LinkToken)
		if err != nil {
			if errors.Is(err, tokenstore.ErrLinkTokenNotFound) {
				uc.logger.Warn("CreateBooking: link token not found or expired")
				return "", nil, ErrInvalidLinkToken
			}
			uc.logger.Error("CreateBooking: link token store error: %v", err)
			return "", nil, fmt.Errorf("%w: link token store error: %v", ErrInternal, err)
		}
		return phone, req.LinkToken, nil
	}

	if req.ClientPhone != nil && strings.TrimSpace(*req.ClientPhone) != "" {
		return strings.TrimSpace(*req.ClientPhone), nil, nil
	}

	return domain.DefaultClientPhone, nil, nil
}

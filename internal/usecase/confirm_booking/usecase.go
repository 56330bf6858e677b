package confirm_booking

import (
	"context"
	"errors"
	"fmt"

	"barber-scheduling-service/internal/domain"
	tokenRepo "barber-scheduling-service/internal/infra/storage/token"
)

// UseCase use case подтверждения записи одноразовым токеном
type UseCase struct {
	tokenRepo    TokenRepository
	bookingRepo  BookingRepository
	notifier     Notifier
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	tokenRepo TokenRepository,
	bookingRepo BookingRepository,
	notifier Notifier,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		tokenRepo:    tokenRepo,
		bookingRepo:  bookingRepo,
		notifier:     notifier,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case подтверждения записи
// Чтение токена с блокировкой и перевод записи в confirmed выполняются
// в одной транзакции: из двух конкурентных подтверждений одного токена
// второе получит ErrTokenAlreadyUsed
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Token == "" {
		return nil, fmt.Errorf("%w: token is required", ErrInvalidInput)
	}

	uc.logger.Info("ConfirmBooking: redeeming token")

	now := uc.timeProvider.Now()

	var booking *domain.Booking

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		token, err := uc.tokenRepo.GetByToken(txCtx, req.Token)
		if err != nil {
			if errors.Is(err, tokenRepo.ErrTokenNotFound) {
				uc.logger.Warn("ConfirmBooking: token not found")
				return ErrTokenNotFound
			}
			uc.logger.Error("ConfirmBooking: failed to get token: %v", err)
			return fmt.Errorf("%w: failed to get token: %v", ErrInternal, err)
		}

		if token.IsUsed() {
			uc.logger.Warn("ConfirmBooking: token for booking=%d already used", token.BookingID)
			return ErrTokenAlreadyUsed
		}
		if token.IsExpired(now) {
			uc.logger.Warn("ConfirmBooking: token for booking=%d expired", token.BookingID)
			return ErrTokenExpired
		}

		b, err := uc.bookingRepo.GetByID(txCtx, token.BookingID)
		if err != nil {
			uc.logger.Error("ConfirmBooking: failed to get booking=%d: %v", token.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		if b.IsCancelled() {
			uc.logger.Warn("ConfirmBooking: booking=%d is cancelled", b.ID)
			return ErrBookingCancelled
		}

		if err := uc.tokenRepo.MarkUsed(txCtx, req.Token); err != nil {
			uc.logger.Error("ConfirmBooking: failed to mark token used: %v", err)
			return fmt.Errorf("%w: failed to mark token used: %v", ErrInternal, err)
		}

		if b.Status != domain.StatusConfirmed {
			if err := uc.bookingRepo.UpdateStatus(txCtx, b.ID, domain.StatusConfirmed); err != nil {
				uc.logger.Error("ConfirmBooking: failed to confirm booking=%d: %v", b.ID, err)
				return fmt.Errorf("%w: failed to confirm booking: %v", ErrInternal, err)
			}
			b.Status = domain.StatusConfirmed
		}

		booking = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	if booking.ClientPhone != domain.DefaultClientPhone {
		uc.notifier.NotifyBestEffort(ctx, booking.ClientPhone, fmt.Sprintf(
			"Ваша запись на %s в %s подтверждена.",
			booking.Date.Format(domain.DateFormat),
			booking.StartTime.String(),
		))
	}

	uc.logger.Info("ConfirmBooking: booking id=%d confirmed", booking.ID)

	return &Response{
		BookingID: booking.ID,
		BarberID:  booking.BarberID,
		Date:      booking.Date,
		StartTime: booking.StartTime,
		Status:    string(booking.Status),
	}, nil
}

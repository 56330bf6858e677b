package confirm_booking

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"barber-scheduling-service/internal/domain"
	tokenRepo "barber-scheduling-service/internal/infra/storage/token"
)

// fakeTokenRepo имитирует хранилище токенов с одноразовым использованием
type fakeTokenRepo struct {
	mu     sync.Mutex
	tokens map[string]*domain.ConfirmToken
}

func (f *fakeTokenRepo) GetByToken(ctx context.Context, token string) (*domain.ConfirmToken, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.tokens[token]
	if !ok {
		return nil, tokenRepo.ErrTokenNotFound
	}
	copied := *t
	return &copied, nil
}

func (f *fakeTokenRepo) MarkUsed(ctx context.Context, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.tokens[token]
	if !ok || t.UsedAt != nil {
		return tokenRepo.ErrTokenNotFound
	}
	now := time.Now()
	t.UsedAt = &now
	return nil
}

type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings map[int64]*domain.Booking
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *f.bookings[id]
	return &copied, nil
}

func (f *fakeBookingRepo) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bookings[id].Status = status
	return nil
}

type stubNotifier struct {
	mu     sync.Mutex
	phones []string
}

func (s *stubNotifier) NotifyBestEffort(ctx context.Context, phone, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.phones = append(s.phones, phone)
}

type serialTxManager struct {
	mu sync.Mutex
}

func (m *serialTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

var testNow = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

type fixture struct {
	uc       *UseCase
	tokens   *fakeTokenRepo
	bookings *fakeBookingRepo
	notifier *stubNotifier
}

func newFixture() *fixture {
	f := &fixture{
		tokens: &fakeTokenRepo{tokens: map[string]*domain.ConfirmToken{
			"tok-1": {
				Token:     "tok-1",
				BookingID: 10,
				ExpiresAt: testNow.Add(domain.ConfirmTokenTTL),
			},
		}},
		bookings: &fakeBookingRepo{bookings: map[int64]*domain.Booking{
			10: {
				ID:          10,
				BarberID:    1,
				ClientPhone: "+79990001122",
				Date:        time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
				StartTime:   "10:00",
				Status:      domain.StatusPending,
			},
		}},
		notifier: &stubNotifier{},
	}
	f.uc = NewUseCase(f.tokens, f.bookings, f.notifier, &serialTxManager{}, nopLogger{})
	f.uc.timeProvider = &fixedTime{now: testNow}
	return f
}

func TestExecuteConfirmsPendingBooking(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), &Request{Token: "tok-1"})
	require.NoError(t, err)

	assert.Equal(t, int64(10), resp.BookingID)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, domain.StatusConfirmed, f.bookings.bookings[10].Status)
	assert.True(t, f.tokens.tokens["tok-1"].IsUsed())
	assert.Equal(t, []string{"+79990001122"}, f.notifier.phones)
}

func TestExecuteTokenIsSingleUse(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Execute(context.Background(), &Request{Token: "tok-1"})
	require.NoError(t, err)

	_, err = f.uc.Execute(context.Background(), &Request{Token: "tok-1"})
	assert.ErrorIs(t, err, ErrTokenAlreadyUsed)
}

func TestExecuteConcurrentRedemption(t *testing.T) {
	f := newFixture()

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.uc.Execute(context.Background(), &Request{Token: "tok-1"})
		}(i)
	}
	wg.Wait()

	var succeeded int
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			require.ErrorIs(t, err, ErrTokenAlreadyUsed)
		}
	}
	assert.Equal(t, 1, succeeded)
}

func TestExecuteTokenNotFound(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Execute(context.Background(), &Request{Token: "missing"})
	assert.ErrorIs(t, err, ErrTokenNotFound)
}

func TestExecuteTokenExpired(t *testing.T) {
	f := newFixture()
	f.tokens.tokens["tok-1"].ExpiresAt = testNow.Add(-time.Minute)

	_, err := f.uc.Execute(context.Background(), &Request{Token: "tok-1"})
	assert.ErrorIs(t, err, ErrTokenExpired)

	// Просроченный токен не расходуется
	assert.False(t, f.tokens.tokens["tok-1"].IsUsed())
}

func TestExecuteBookingCancelled(t *testing.T) {
	f := newFixture()
	f.bookings.bookings[10].Status = domain.StatusCanceled

	_, err := f.uc.Execute(context.Background(), &Request{Token: "tok-1"})
	assert.ErrorIs(t, err, ErrBookingCancelled)
	assert.False(t, f.tokens.tokens["tok-1"].IsUsed())
}

func TestExecuteAlreadyConfirmedIsIdempotent(t *testing.T) {
	f := newFixture()
	f.bookings.bookings[10].Status = domain.StatusConfirmed

	resp, err := f.uc.Execute(context.Background(), &Request{Token: "tok-1"})
	require.NoError(t, err)
	assert.Equal(t, "confirmed", resp.Status)
}

func TestExecuteEmptyToken(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

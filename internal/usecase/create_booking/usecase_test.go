package create_booking

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"barber-scheduling-service/internal/domain"
	barberRepo "barber-scheduling-service/internal/infra/storage/barber"
	bookingRepo "barber-scheduling-service/internal/infra/storage/booking"
	"barber-scheduling-service/internal/infra/tokenstore"
	"barber-scheduling-service/pkg/types"
)

// --- Тестовые заглушки ---

type stubBarberRepo struct {
	barber *domain.Barber
	err    error
}

func (s *stubBarberRepo) GetByID(ctx context.Context, id int64) (*domain.Barber, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.barber, nil
}

type stubScheduleRepo struct {
	cfg *domain.ScheduleConfig
}

func (s *stubScheduleRepo) GetConfig(ctx context.Context, barberID int64) (*domain.ScheduleConfig, error) {
	return s.cfg, nil
}

type stubPlanRepo struct {
	blocked []types.TimeString
}

func (s *stubPlanRepo) BlockedTimes(ctx context.Context, barberID int64, date string, weekday int) ([]types.TimeString, error) {
	return s.blocked, nil
}

// slotKey идентифицирует слот в тестовой книге записей
type slotKey struct {
	barberID  int64
	date      string
	startTime types.TimeString
}

// fakeLedger имитирует таблицу записей с частичным уникальным индексом
type fakeLedger struct {
	mu     sync.Mutex
	nextID int64
	taken  map[slotKey]struct{}
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{taken: make(map[slotKey]struct{})}
}

func (f *fakeLedger) Exists(ctx context.Context, barberID int64, date string, startTime types.TimeString) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.taken[slotKey{barberID, date, startTime}]
	return ok, nil
}

func (f *fakeLedger) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := slotKey{b.BarberID, b.Date.Format(domain.DateFormat), b.StartTime}
	if _, ok := f.taken[key]; ok {
		return nil, bookingRepo.ErrSlotTaken
	}
	f.taken[key] = struct{}{}

	f.nextID++
	created := *b
	created.ID = f.nextID
	created.CreatedAt = time.Now()
	return &created, nil
}

type stubTokenRepo struct {
	created []*domain.ConfirmToken
}

func (s *stubTokenRepo) Create(ctx context.Context, t *domain.ConfirmToken) (*domain.ConfirmToken, error) {
	s.created = append(s.created, t)
	return t, nil
}

type stubLinkTokens struct {
	phones  map[string]string
	deleted []string
}

func (s *stubLinkTokens) Get(ctx context.Context, token string) (string, error) {
	phone, ok := s.phones[token]
	if !ok {
		return "", tokenstore.ErrLinkTokenNotFound
	}
	return phone, nil
}

func (s *stubLinkTokens) Delete(ctx context.Context, token string) error {
	s.deleted = append(s.deleted, token)
	return nil
}

type stubNotifier struct {
	mu       sync.Mutex
	messages []string
	phones   []string
}

func (s *stubNotifier) NotifyBestEffort(ctx context.Context, phone, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.phones = append(s.phones, phone)
	s.messages = append(s.messages, text)
}

// serialTxManager прогоняет транзакции по очереди, как SERIALIZABLE
type serialTxManager struct {
	mu sync.Mutex
}

func (m *serialTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
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

// --- Сборка use case ---

type fixture struct {
	uc         *UseCase
	barbers    *stubBarberRepo
	ledger     *fakeLedger
	plans      *stubPlanRepo
	tokens     *stubTokenRepo
	linkTokens *stubLinkTokens
	notifier   *stubNotifier
}

func newFixture() *fixture {
	f := &fixture{
		barbers:    &stubBarberRepo{barber: &domain.Barber{ID: 1, Name: "Алексей", IsActive: true}},
		ledger:     newFakeLedger(),
		plans:      &stubPlanRepo{},
		tokens:     &stubTokenRepo{},
		linkTokens: &stubLinkTokens{phones: map[string]string{}},
		notifier:   &stubNotifier{},
	}
	f.uc = NewUseCase(
		f.barbers,
		&stubScheduleRepo{cfg: domain.DefaultScheduleConfig(1)},
		f.ledger,
		f.plans,
		f.tokens,
		f.linkTokens,
		f.notifier,
		&serialTxManager{},
		nopLogger{},
	)
	f.uc.timeProvider = &fixedTime{now: time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)}
	return f
}

func validRequest() *Request {
	phone := "+79990001122"
	return &Request{
		BarberID:    1,
		ClientName:  "Иван",
		ClientPhone: &phone,
		Date:        "2026-03-02", // понедельник
		StartTime:   "10:00",
	}
}

// --- Тесты ---

func TestExecutePendingBookingIssuesConfirmToken(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "pending", resp.Status)
	require.NotNil(t, resp.ConfirmToken)

	require.Len(t, f.tokens.created, 1)
	token := f.tokens.created[0]
	assert.Equal(t, resp.ID, token.BookingID)
	assert.Equal(t,
		time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC).Add(domain.ConfirmTokenTTL),
		token.ExpiresAt,
	)

	require.Len(t, f.notifier.phones, 1)
	assert.Equal(t, "+79990001122", f.notifier.phones[0])
}

func TestExecuteAutoConfirmSkipsToken(t *testing.T) {
	f := newFixture()

	req := validRequest()
	req.AutoConfirm = true

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "confirmed", resp.Status)
	assert.Nil(t, resp.ConfirmToken)
	assert.Empty(t, f.tokens.created)
}

func TestExecuteWithoutPhoneUsesPlaceholder(t *testing.T) {
	f := newFixture()

	req := validRequest()
	req.ClientPhone = nil

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultClientPhone, resp.ClientPhone)
	// Телефон-заглушку не уведомляем
	assert.Empty(t, f.notifier.phones)
}

func TestExecuteWithLinkToken(t *testing.T) {
	f := newFixture()
	f.linkTokens.phones["tok-1"] = "+79995556677"

	req := validRequest()
	req.ClientPhone = nil
	linkToken := "tok-1"
	req.LinkToken = &linkToken

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "+79995556677", resp.ClientPhone)
	// Токен одноразовый
	assert.Equal(t, []string{"tok-1"}, f.linkTokens.deleted)
}

func TestExecuteUnknownLinkToken(t *testing.T) {
	f := newFixture()

	req := validRequest()
	req.ClientPhone = nil
	linkToken := "missing"
	req.LinkToken = &linkToken

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidLinkToken)
}

func TestExecuteSlotNotOffered(t *testing.T) {
	f := newFixture()

	cases := map[string]*Request{}

	lunch := validRequest()
	lunch.StartTime = "12:00"
	cases["lunch slot"] = lunch

	offGrid := validRequest()
	offGrid.StartTime = "10:30"
	cases["off grid"] = offGrid

	sunday := validRequest()
	sunday.Date = "2026-03-01"
	cases["non-working weekday"] = sunday

	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := f.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrSlotNotOffered)
		})
	}
}

func TestExecuteSlotReservedByPlan(t *testing.T) {
	f := newFixture()
	f.plans.blocked = []types.TimeString{"10:00"}

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotReservedByPlan)
}

func TestExecuteSlotAlreadyBooked(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	_, err = f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotAlreadyBooked)
}

func TestExecuteBarberNotFound(t *testing.T) {
	f := newFixture()
	f.barbers.err = barberRepo.ErrBarberNotFound

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrBarberNotFound)
}

func TestExecuteInactiveBarber(t *testing.T) {
	f := newFixture()
	f.barbers.barber.IsActive = false

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrBarberNotFound)
	assert.Empty(t, f.tokens.created)
}

func TestExecuteValidation(t *testing.T) {
	f := newFixture()

	t.Run("empty client name", func(t *testing.T) {
		req := validRequest()
		req.ClientName = "   "
		_, err := f.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("phone and link token are mutually exclusive", func(t *testing.T) {
		req := validRequest()
		linkToken := "tok"
		req.LinkToken = &linkToken
		_, err := f.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("malformed date", func(t *testing.T) {
		req := validRequest()
		req.Date = "02-03-2026"
		_, err := f.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidDate)
	})

	t.Run("malformed time", func(t *testing.T) {
		req := validRequest()
		req.StartTime = "25:00"
		_, err := f.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestExecuteConcurrentSameSlot(t *testing.T) {
	f := newFixture()

	var wg sync.WaitGroup
	errs := make([]error, 2)

	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.uc.Execute(context.Background(), validRequest())
		}(i)
	}
	wg.Wait()

	var succeeded, conflicted int
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		default:
			require.ErrorIs(t, err, ErrSlotAlreadyBooked)
			conflicted++
		}
	}

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, conflicted)
}

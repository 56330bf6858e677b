package booking

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"barber-scheduling-service/internal/domain"
)

func newMockRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewRepository(db), dbMock
}

func TestCreate(t *testing.T) {
	repo, dbMock := newMockRepo(t)

	booking := &domain.Booking{
		BarberID:    1,
		ClientName:  "Иван",
		ClientPhone: "+79990001122",
		Date:        time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		StartTime:   "10:00",
		Status:      domain.StatusPending,
	}

	now := time.Now()
	dbMock.ExpectQuery("INSERT INTO bookings").
		WithArgs(booking.BarberID, booking.ClientName, booking.ClientPhone, booking.Date, "10:00", "pending").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(7), now, now))

	created, err := repo.Create(context.Background(), booking)
	require.NoError(t, err)
	assert.Equal(t, int64(7), created.ID)
	assert.Equal(t, now, created.CreatedAt)

	require.NoError(t, dbMock.ExpectationsWereMet())
}

func TestCreateUniqueViolation(t *testing.T) {
	repo, dbMock := newMockRepo(t)

	dbMock.ExpectQuery("INSERT INTO bookings").
		WillReturnError(&pq.Error{Code: "23505"})

	_, err := repo.Create(context.Background(), &domain.Booking{
		BarberID:    1,
		ClientName:  "Иван",
		ClientPhone: "+79990001122",
		Date:        time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		StartTime:   "10:00",
		Status:      domain.StatusPending,
	})
	assert.ErrorIs(t, err, ErrSlotTaken)

	require.NoError(t, dbMock.ExpectationsWereMet())
}

func TestExists(t *testing.T) {
	repo, dbMock := newMockRepo(t)

	dbMock.ExpectQuery("SELECT 1 FROM bookings").
		WithArgs(int64(1), "2026-03-02", "10:00", "canceled").
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))

	taken, err := repo.Exists(context.Background(), 1, "2026-03-02", "10:00")
	require.NoError(t, err)
	assert.True(t, taken)

	require.NoError(t, dbMock.ExpectationsWereMet())
}

func TestExistsFreeSlot(t *testing.T) {
	repo, dbMock := newMockRepo(t)

	dbMock.ExpectQuery("SELECT 1 FROM bookings").
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}))

	taken, err := repo.Exists(context.Background(), 1, "2026-03-02", "10:00")
	require.NoError(t, err)
	assert.False(t, taken)
}

func TestListOccupiedTimes(t *testing.T) {
	repo, dbMock := newMockRepo(t)

	dbMock.ExpectQuery("SELECT start_time FROM bookings").
		WithArgs(int64(1), "2026-03-02", "canceled").
		WillReturnRows(sqlmock.NewRows([]string{"start_time"}).AddRow("09:00").AddRow("14:00"))

	times, err := repo.ListOccupiedTimes(context.Background(), 1, "2026-03-02")
	require.NoError(t, err)
	assert.Len(t, times, 2)
	assert.Equal(t, "09:00", times[0].String())

	require.NoError(t, dbMock.ExpectationsWereMet())
}

func TestGetByIDNotFound(t *testing.T) {
	repo, dbMock := newMockRepo(t)

	dbMock.ExpectQuery("SELECT .+ FROM bookings").
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "barber_id", "client_name", "client_phone",
			"booking_date", "start_time", "status", "created_at", "updated_at",
		}))

	_, err := repo.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestUpdateStatus(t *testing.T) {
	repo, dbMock := newMockRepo(t)

	dbMock.ExpectExec("UPDATE bookings SET").
		WithArgs("confirmed", int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateStatus(context.Background(), 5, domain.StatusConfirmed)
	require.NoError(t, err)

	require.NoError(t, dbMock.ExpectationsWereMet())
}

func TestUpdateStatusNotFound(t *testing.T) {
	repo, dbMock := newMockRepo(t)

	dbMock.ExpectExec("UPDATE bookings SET").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(context.Background(), 99, domain.StatusConfirmed)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestUpdateStatusReactivationConflict(t *testing.T) {
	repo, dbMock := newMockRepo(t)

	// Возврат из canceled в занятый уже кем-то слот ловится индексом
	dbMock.ExpectExec("UPDATE bookings SET").
		WillReturnError(&pq.Error{Code: "23505"})

	err := repo.UpdateStatus(context.Background(), 5, domain.StatusPending)
	assert.ErrorIs(t, err, ErrSlotTaken)
}

package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"barber-scheduling-service/internal/domain"
)

func TestBookingStatusHelpers(t *testing.T) {
	b := &domain.Booking{Status: domain.StatusPending}
	assert.True(t, b.IsActive())
	assert.True(t, b.CanBeCancelled())
	assert.False(t, b.IsCancelled())

	b.Status = domain.StatusConfirmed
	assert.True(t, b.IsActive())
	assert.True(t, b.CanBeCancelled())

	// Произвольный админский статус занимает слот как обычный
	b.Status = domain.BookingStatus("no-show")
	assert.True(t, b.IsActive())

	b.Status = domain.StatusCanceled
	assert.False(t, b.IsActive())
	assert.False(t, b.CanBeCancelled())
	assert.True(t, b.IsCancelled())
}

func TestConfirmTokenExpiry(t *testing.T) {
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

	token := &domain.ConfirmToken{ExpiresAt: now.Add(domain.ConfirmTokenTTL)}

	assert.False(t, token.IsExpired(now))
	assert.False(t, token.IsExpired(now.Add(domain.ConfirmTokenTTL)), "boundary instant is not expired")
	assert.True(t, token.IsExpired(now.Add(domain.ConfirmTokenTTL+time.Second)))

	assert.False(t, token.IsUsed())
	usedAt := now.Add(time.Minute)
	token.UsedAt = &usedAt
	assert.True(t, token.IsUsed())
}

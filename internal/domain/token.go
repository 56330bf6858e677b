package domain

import "time"

// ConfirmTokenTTL is how long a booking confirmation token stays valid.
const ConfirmTokenTTL = 30 * time.Minute

// ConfirmToken is a single-use token issued when a booking is created.
// Redeeming it moves the booking from pending to confirmed.
type ConfirmToken struct {
	Token     string
	BookingID int64
	ExpiresAt time.Time
	UsedAt    *time.Time
	CreatedAt time.Time
}

// IsExpired reports whether the token expired at the given moment.
func (t *ConfirmToken) IsExpired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}

// IsUsed reports whether the token was already redeemed.
func (t *ConfirmToken) IsUsed() bool {
	return t.UsedAt != nil
}

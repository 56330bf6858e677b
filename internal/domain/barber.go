package domain

import "time"

// Barber represents a service provider whose calendar is scheduled
type Barber struct {
	ID        int64
	Name      string
	IsActive  bool
	CreatedAt time.Time
}

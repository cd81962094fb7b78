package service

import (
	"time"

	"github.com/google/uuid"
)

// Clock supplies identifiers and the current time to the services.
type Clock interface {
	Now() time.Time
	NewID() string
}

type systemClock struct{}

// SystemClock returns the wall clock with random UUIDs.
func SystemClock() Clock { return systemClock{} }

func (systemClock) Now() time.Time { return time.Now().UTC() }
func (systemClock) NewID() string  { return uuid.NewString() }

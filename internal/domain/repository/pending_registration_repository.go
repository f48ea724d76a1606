package repository

import (
	"context"
	"time"

	"github.com/oksasatya/notes-api/internal/domain/entity"
)

// PendingRegistrationRepository is the short-lived store keyed by email.
// Save overwrites any previous value for the same email.
type PendingRegistrationRepository interface {
	Save(ctx context.Context, p *entity.PendingRegistration, ttl time.Duration) error
	// Get returns ErrNotFound when nothing is pending or it expired.
	Get(ctx context.Context, email string) (*entity.PendingRegistration, error)
	Delete(ctx context.Context, email string) error
}

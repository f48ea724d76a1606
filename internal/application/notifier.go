package application

import (
	"context"
	"time"
)

// SignupCode is what the notification channel needs to reach a new user
type SignupCode struct {
	Name      string
	Email     string
	Code      string
	ExpiresIn time.Duration
	IP        string
	UserAgent string
}

// Notifier delivers signup codes, best effort
type Notifier interface {
	SendSignupCode(ctx context.Context, msg SignupCode) error
}

package application

import (
	"context"
	"errors"
	"expvar"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/notes-api/internal/domain/entity"
	repo "github.com/oksasatya/notes-api/internal/domain/repository"
	"github.com/oksasatya/notes-api/pkg/helpers"
	"github.com/oksasatya/notes-api/pkg/validation"
)

var authStats = expvar.NewMap("auth")

type AuthService struct {
	Users    repo.UserRepository
	Pending  repo.PendingRegistrationRepository
	Notifier Notifier
	JWT      *helpers.JWTManager
	Logger   *logrus.Logger

	OTPTTL           time.Duration
	SignupSessionTTL time.Duration
	SigninSessionTTL time.Duration

	now     func() time.Time
	genCode func() (string, error)
}

// AuthTTLs groups the lifetimes the auth flow needs
type AuthTTLs struct {
	OTP           time.Duration
	SignupSession time.Duration
	SigninSession time.Duration
}

func NewAuthService(users repo.UserRepository, pending repo.PendingRegistrationRepository, notifier Notifier, jwt *helpers.JWTManager, logger *logrus.Logger, ttls AuthTTLs) *AuthService {
	return &AuthService{
		Users:            users,
		Pending:          pending,
		Notifier:         notifier,
		JWT:              jwt,
		Logger:           logger,
		OTPTTL:           ttls.OTP,
		SignupSessionTTL: ttls.SignupSession,
		SigninSessionTTL: ttls.SigninSession,
		now:              time.Now,
		genCode:          helpers.GenOTPCode,
	}
}

type SignupInput struct {
	Name      string `json:"name" binding:"required,min=3"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,signuppwd"`
	IP        string `json:"-"`
	UserAgent string `json:"-"`
}

type SignupResult struct {
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
}

type VerifyInput struct {
	Email string `json:"email" binding:"required"`
	OTP   string `json:"otp" binding:"required"`
}

type SigninInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Session is a freshly issued token and the user it is bound to
type Session struct {
	Token     string               `json:"token"`
	ExpiresAt time.Time            `json:"expires_at"`
	User      entity.PublicProfile `json:"user"`
}

// RequestSignup validates the input, stores a pending registration with a
// fresh code and sends the code to the address. A delivery failure is
// reported as *DeliveryError and leaves the pending registration in place.
func (s *AuthService) RequestSignup(ctx context.Context, in SignupInput) (*SignupResult, error) {
	if err := validation.Struct(in); err != nil {
		return nil, &ValidationError{Fields: validation.ToDetails(err)}
	}
	authStats.Add("signup_requests", 1)

	exists, err := s.Users.ExistsByEmail(ctx, in.Email)
	if err != nil {
		return nil, fmt.Errorf("lookup email: %w", err)
	}
	if exists {
		return nil, ErrEmailExists
	}

	hash, err := helpers.HashPassword(in.Password)
	if errors.Is(err, helpers.ErrPasswordTooLong) {
		return nil, newValidationError("password", "must be at most 72 bytes")
	}
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	code, err := s.genCode()
	if err != nil {
		return nil, fmt.Errorf("generate otp: %w", err)
	}

	expiresAt := s.now().Add(s.OTPTTL)
	pending := &entity.PendingRegistration{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Code:         code,
		ExpiresAt:    expiresAt,
	}
	if err := s.Pending.Save(ctx, pending, s.OTPTTL); err != nil {
		return nil, fmt.Errorf("store pending registration: %w", err)
	}

	err = s.Notifier.SendSignupCode(ctx, SignupCode{
		Name:      in.Name,
		Email:     in.Email,
		Code:      code,
		ExpiresIn: s.OTPTTL,
		IP:        in.IP,
		UserAgent: in.UserAgent,
	})
	if err != nil {
		authStats.Add("signup_delivery_failures", 1)
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("email", in.Email).Warn("signup code delivery failed")
		}
		return nil, &DeliveryError{Err: err}
	}

	return &SignupResult{Email: in.Email, ExpiresAt: expiresAt}, nil
}

// VerifyOTP consumes a pending registration: on a matching code the user is
// created, the pending value removed and a session issued. Codes are single use.
func (s *AuthService) VerifyOTP(ctx context.Context, in VerifyInput) (*Session, error) {
	if in.Email == "" {
		return nil, newValidationError("email", "is required")
	}
	if in.OTP == "" {
		return nil, newValidationError("otp", "is required")
	}

	pending, err := s.Pending.Get(ctx, in.Email)
	if errors.Is(err, repo.ErrNotFound) {
		authStats.Add("verify_failures", 1)
		return nil, ErrInvalidOrExpiredCode
	}
	if err != nil {
		return nil, fmt.Errorf("load pending registration: %w", err)
	}
	if !helpers.OTPEqual(pending.Code, in.OTP) {
		authStats.Add("verify_failures", 1)
		return nil, ErrInvalidOrExpiredCode
	}
	if !pending.HasProfile() || pending.Email != in.Email {
		return nil, ErrRegistrationMissing
	}

	u := &entity.User{Name: pending.Name, Email: pending.Email, PasswordHash: pending.PasswordHash}
	if err := s.Users.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrEmailTaken) {
			s.discardPending(ctx, in.Email)
			return nil, ErrEmailExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	s.discardPending(ctx, in.Email)
	authStats.Add("signups_completed", 1)

	return s.issue(u, s.SignupSessionTTL)
}

// SignIn checks credentials and issues a long lived session.
// Not found and wrong password are reported separately, which reveals whether
// an account exists.
func (s *AuthService) SignIn(ctx context.Context, in SigninInput) (*Session, error) {
	if err := validation.Struct(in); err != nil {
		return nil, &ValidationError{Fields: validation.ToDetails(err)}
	}
	u, err := s.Users.GetByEmail(ctx, in.Email)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if !helpers.CompareHashAndPassword(u.PasswordHash, in.Password) {
		authStats.Add("signin_failures", 1)
		return nil, ErrInvalidCredentials
	}
	authStats.Add("signins", 1)
	return s.issue(u, s.SigninSessionTTL)
}

func (s *AuthService) issue(u *entity.User, ttl time.Duration) (*Session, error) {
	tok, exp, err := s.JWT.Issue(u.ID, ttl)
	if err != nil {
		return nil, fmt.Errorf("issue session: %w", err)
	}
	return &Session{Token: tok, ExpiresAt: exp, User: u.Public()}, nil
}

// discardPending never fails the caller; the TTL removes leftovers anyway.
func (s *AuthService) discardPending(ctx context.Context, email string) {
	if err := s.Pending.Delete(context.WithoutCancel(ctx), email); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("email", email).Warn("delete pending registration failed")
	}
}

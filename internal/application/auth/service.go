package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/game-admin-api/internal/application/otp"
	"github.com/game-admin-api/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

// PlayerStore is the slice of player persistence the auth flows need.
type PlayerStore interface {
	GetByEmail(ctx context.Context, email string) (*domain.Player, error)
	Create(ctx context.Context, p *domain.Player) error
	UpdatePassword(ctx context.Context, playerID int64, hash string) error
}

// Mailer delivers a plain-text message.
type Mailer interface {
	SendEmail(ctx context.Context, to, subject, body string) error
}

// TokenSigner issues access tokens.
type TokenSigner interface {
	Sign(playerID int64, email, role string) (string, error)
}

type Service interface {
	Register(ctx context.Context, req domain.RegisterRequest) (*domain.Player, error)
	Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResult, error)
	// AdminLogin is Login restricted to the Admin role.
	AdminLogin(ctx context.Context, req domain.LoginRequest) (*domain.LoginResult, error)
	RequestPasswordReset(ctx context.Context, req domain.PasswordResetRequest) error
	ConfirmPasswordReset(ctx context.Context, req domain.PasswordResetConfirm) error
	ChangePassword(ctx context.Context, playerID int64, newPassword string) error
}

type service struct {
	players     PlayerStore
	otps        otp.Service
	mailer      Mailer
	signer      TokenSigner
	otpLifetime time.Duration
}

func NewService(players PlayerStore, otps otp.Service, mailer Mailer, signer TokenSigner, otpLifetime time.Duration) Service {
	return &service{
		players:     players,
		otps:        otps,
		mailer:      mailer,
		signer:      signer,
		otpLifetime: otpLifetime,
	}
}

func (s *service) Register(ctx context.Context, req domain.RegisterRequest) (*domain.Player, error) {
	email := normalizeEmail(req.Email)
	if _, err := s.players.GetByEmail(ctx, email); err == nil {
		return nil, fmt.Errorf("email already registered: %w", domain.ErrConflict)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, err
	}
	p := &domain.Player{
		EmailAccount:  email,
		LoginPassword: hash,
		Role:          domain.RolePlayer,
	}
	if err := s.players.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResult, error) {
	p, err := s.players.GetByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("invalid email or password: %w", domain.ErrUnauthorized)
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(p.LoginPassword), []byte(req.Password)); err != nil {
		return nil, fmt.Errorf("invalid email or password: %w", domain.ErrUnauthorized)
	}
	token, err := s.signer.Sign(p.PlayerID, p.EmailAccount, p.Role)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}
	return &domain.LoginResult{Token: token, PlayerID: p.PlayerID, Role: p.Role}, nil
}

func (s *service) AdminLogin(ctx context.Context, req domain.LoginRequest) (*domain.LoginResult, error) {
	res, err := s.Login(ctx, req)
	if err != nil {
		return nil, err
	}
	if res.Role != domain.RoleAdmin {
		return nil, fmt.Errorf("admin role required: %w", domain.ErrForbidden)
	}
	return res, nil
}

func (s *service) RequestPasswordReset(ctx context.Context, req domain.PasswordResetRequest) error {
	email := normalizeEmail(req.Email)
	if _, err := s.players.GetByEmail(ctx, email); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("no account for this email: %w", domain.ErrNotFound)
		}
		return err
	}
	code, err := s.otps.Issue(ctx, email, s.otpLifetime)
	if err != nil {
		return err
	}
	body := fmt.Sprintf("Your password reset code is %s. It expires in %s.", code, s.otpLifetime)
	if err := s.mailer.SendEmail(ctx, email, "Password reset code", body); err != nil {
		slog.ErrorContext(ctx, "otp mail delivery failed", "email", email, "err", err)
		return fmt.Errorf("send reset code: %v: %w", err, domain.ErrDelivery)
	}
	return nil
}

func (s *service) ConfirmPasswordReset(ctx context.Context, req domain.PasswordResetConfirm) error {
	email := normalizeEmail(req.Email)
	p, err := s.players.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("no account for this email: %w", domain.ErrNotFound)
		}
		return err
	}
	ok, err := s.otps.Validate(ctx, email, req.OTP)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("invalid or expired code: %w", domain.ErrConflict)
	}
	return s.ChangePassword(ctx, p.PlayerID, req.NewPassword)
}

func (s *service) ChangePassword(ctx context.Context, playerID int64, newPassword string) error {
	hash, err := HashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.players.UpdatePassword(ctx, playerID, hash)
}

// HashPassword returns the bcrypt hash stored in players.login_password.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

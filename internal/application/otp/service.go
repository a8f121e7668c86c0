package otp

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/game-admin-api/internal/domain"
)

const (
	codeMin = 100000
	codeMax = 999999
)

// Entry is a stored one-time code.
type Entry struct {
	Code      string
	ExpiresAt time.Time
}

// Expired reports whether the entry is no longer valid at now.
func (e Entry) Expired(now time.Time) bool { return !now.Before(e.ExpiresAt) }

// Store persists OTP entries keyed by normalized identity.
// Put replaces any existing entry for the key. Consume atomically removes the
// entry and returns true only when it exists, is unexpired at now and its code
// equals code. A mismatch leaves the entry in place; an expired entry may be
// dropped.
type Store interface {
	Put(ctx context.Context, key string, e Entry) error
	Consume(ctx context.Context, key, code string, now time.Time) (bool, error)
}

// Service issues and validates single-use codes.
type Service interface {
	Issue(ctx context.Context, key string, lifetime time.Duration) (string, error)
	Validate(ctx context.Context, key, code string) (bool, error)
}

type service struct {
	store Store
	now   func() time.Time
	gen   func() (string, error)
}

// Option customises a Service.
type Option func(*service)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option { return func(s *service) { s.now = now } }

// WithGenerator overrides the code source.
func WithGenerator(gen func() (string, error)) Option { return func(s *service) { s.gen = gen } }

func NewService(store Store, opts ...Option) Service {
	s := &service{store: store, now: time.Now, gen: GenerateCode}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *service) Issue(ctx context.Context, key string, lifetime time.Duration) (string, error) {
	k := NormalizeKey(key)
	if k == "" {
		return "", fmt.Errorf("otp key is required: %w", domain.ErrBadRequest)
	}
	if lifetime <= 0 {
		return "", fmt.Errorf("otp lifetime must be positive: %w", domain.ErrBadRequest)
	}
	code, err := s.gen()
	if err != nil {
		return "", err
	}
	if err := s.store.Put(ctx, k, Entry{Code: code, ExpiresAt: s.now().Add(lifetime)}); err != nil {
		return "", fmt.Errorf("store otp: %w", err)
	}
	return code, nil
}

func (s *service) Validate(ctx context.Context, key, code string) (bool, error) {
	k := NormalizeKey(key)
	if k == "" || code == "" {
		return false, nil
	}
	ok, err := s.store.Consume(ctx, k, code, s.now())
	if err != nil {
		return false, fmt.Errorf("consume otp: %w", err)
	}
	return ok, nil
}

// NormalizeKey trims and lower-cases an identity so "A@x.io" and "a@x.io"
// address the same entry.
func NormalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

// GenerateCode draws a 6-digit code uniformly from [100000, 999999].
func GenerateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(codeMax-codeMin+1))
	if err != nil {
		return "", fmt.Errorf("generate otp: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+codeMin), nil
}

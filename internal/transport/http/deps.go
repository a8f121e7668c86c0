package http

import (
	"context"
	"io"

	"github.com/game-admin-api/internal/application/audit"
	"github.com/game-admin-api/internal/application/otp"
	jwtinfra "github.com/game-admin-api/internal/infrastructure/jwt"
	appmiddleware "github.com/game-admin-api/internal/transport/http/middleware"
	"github.com/jmoiron/sqlx"
)

// ObjectStore is the minimal interface the router requires from an object storage backend.
type ObjectStore interface {
	Upload(ctx context.Context, key string, r io.Reader, contentType string) (string, error)
}

// Mailer is the minimal interface the router requires from a mail backend.
type Mailer interface {
	SendEmail(ctx context.Context, to, subject, body string) error
}

// Deps holds all infrastructure dependencies for the router. OTPStore and
// AuditSink are chosen in main from OTP_BACKEND and AUDIT_SINK.
type Deps struct {
	DB          *sqlx.DB
	OTPStore    otp.Store
	AuditSink   audit.Sink
	Objects     ObjectStore
	Mailer      Mailer
	JWTProvider *jwtinfra.Provider
	// RateLimiter guards the credential endpoints; a default is built when nil.
	RateLimiter *appmiddleware.RateLimiter
}

package mailer

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/game-admin-api/internal/config"
	"github.com/game-admin-api/internal/infrastructure/awsconf"
)

// Sender delivers a plain-text email.
type Sender interface {
	SendEmail(ctx context.Context, to, subject, body string) error
}

// New returns the sender selected by cfg.MailProvider.
func New(ctx context.Context, cfg *config.Config) (Sender, error) {
	switch cfg.MailProvider {
	case "smtp", "":
		return NewSMTP(cfg), nil
	case "ses":
		awsCfg, err := awsconf.Load(ctx, cfg, cfg.SESRegion)
		if err != nil {
			return nil, err
		}
		return NewSES(ses.NewFromConfig(awsCfg), cfg.MailFrom), nil
	default:
		return nil, fmt.Errorf("unknown mail provider %q", cfg.MailProvider)
	}
}

package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/game-admin-api/internal/application/auth"
	"github.com/game-admin-api/internal/domain"
)

// PlayerHooks normalise the email, default the role and hash a supplied
// password. A password is mandatory on create and optional on update.
func PlayerHooks() []Option[domain.Player] {
	return []Option[domain.Player]{
		BeforeCreate(func(_ context.Context, p *domain.Player) error {
			if p.Password == "" {
				return fmt.Errorf("password is required: %w", domain.ErrBadRequest)
			}
			if p.Role == "" {
				p.Role = domain.RolePlayer
			}
			return preparePlayer(p)
		}),
		BeforeUpdate(func(_ context.Context, p *domain.Player) error {
			return preparePlayer(p)
		}),
	}
}

func preparePlayer(p *domain.Player) error {
	p.EmailAccount = strings.ToLower(strings.TrimSpace(p.EmailAccount))
	if p.Password == "" {
		return nil
	}
	hash, err := auth.HashPassword(p.Password)
	if err != nil {
		return err
	}
	p.LoginPassword = hash
	p.Password = ""
	return nil
}

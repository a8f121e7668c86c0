package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/game-admin-api/internal/domain"
	"github.com/jmoiron/sqlx"
)

// PlayerRepo is the players table plus the lookups used by authentication.
type PlayerRepo struct {
	*Table[domain.Player, *domain.Player]
	db *sqlx.DB
}

func NewPlayerRepo(db *sqlx.DB) *PlayerRepo {
	return &PlayerRepo{Table: NewTable[domain.Player](db, PlayersSpec), db: db}
}

func (r *PlayerRepo) GetByEmail(ctx context.Context, email string) (*domain.Player, error) {
	var p domain.Player
	const q = `SELECT player_id, email_account, login_password, role, experience_points
		FROM players WHERE lower(email_account) = lower($1)`
	if err := r.db.GetContext(ctx, &p, q, strings.TrimSpace(email)); err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r *PlayerRepo) Create(ctx context.Context, p *domain.Player) error {
	return r.Insert(ctx, p)
}

func (r *PlayerRepo) UpdatePassword(ctx context.Context, playerID int64, hash string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE players SET login_password = $1 WHERE player_id = $2`, hash, playerID)
	if err != nil {
		return translate(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("player %d: %w", playerID, domain.ErrNotFound)
	}
	return nil
}

package postgres

import (
	"context"
	"fmt"

	"github.com/game-admin-api/internal/domain"
	"github.com/jmoiron/sqlx"
)

// ItemRepo is the item sales sheet with image bookkeeping.
type ItemRepo struct {
	*Table[domain.Item, *domain.Item]
	db *sqlx.DB
}

func NewItemRepo(db *sqlx.DB) *ItemRepo {
	return &ItemRepo{Table: NewTable[domain.Item](db, ItemsSpec), db: db}
}

func (r *ItemRepo) SetImageURL(ctx context.Context, id int64, url string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE item_sales_sheet SET image_url = $1 WHERE item_sheet_id = $2`, url, id)
	if err != nil {
		return translate(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("item %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

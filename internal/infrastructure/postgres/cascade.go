package postgres

import (
	"context"
	"fmt"

	"github.com/game-admin-api/internal/application/cascade"
	"github.com/jmoiron/sqlx"
)

// CascadeStore runs guarded deletes inside a single transaction. Table and
// column names come from the cascade registry, never from requests.
type CascadeStore struct {
	db *sqlx.DB
}

func NewCascadeStore(db *sqlx.DB) *CascadeStore {
	return &CascadeStore{db: db}
}

func (s *CascadeStore) WithinTx(ctx context.Context, fn func(tx cascade.Tx) error) (err error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = fn(&cascadeTx{tx: tx}); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return translateDelete(err)
	}
	return nil
}

type cascadeTx struct {
	tx *sqlx.Tx
}

func (c *cascadeTx) LockEntity(ctx context.Context, k cascade.Kind, id int64) (string, error) {
	var label string
	q := fmt.Sprintf("SELECT %s::text FROM %s WHERE %s = $1 FOR UPDATE", k.LabelColumn, k.Table, k.Key)
	if err := c.tx.GetContext(ctx, &label, q, id); err != nil {
		return "", translate(err)
	}
	return label, nil
}

func (c *cascadeTx) CountPath(ctx context.Context, path []cascade.Dependent, id int64) (int64, error) {
	last := path[len(path)-1]
	var n int64
	q := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s", last.Table, pathFilter(path))
	if err := c.tx.GetContext(ctx, &n, q, id); err != nil {
		return 0, err
	}
	return n, nil
}

func (c *cascadeTx) RemovePath(ctx context.Context, path []cascade.Dependent, id int64) (int64, error) {
	last := path[len(path)-1]
	q := fmt.Sprintf("DELETE FROM %s WHERE %s", last.Table, pathFilter(path))
	res, err := c.tx.ExecContext(ctx, q, id)
	if err != nil {
		return 0, translateDelete(err)
	}
	return res.RowsAffected()
}

func (c *cascadeTx) RemoveEntity(ctx context.Context, k cascade.Kind, id int64) error {
	q := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", k.Table, k.Key)
	if _, err := c.tx.ExecContext(ctx, q, id); err != nil {
		return translateDelete(err)
	}
	return nil
}

// pathFilter builds the WHERE clause selecting the rows of the last dependent
// in path that hang off the root row bound to $1.
func pathFilter(path []cascade.Dependent) string {
	cond := fmt.Sprintf("%s = $1", path[0].ForeignKey)
	for i := 1; i < len(path); i++ {
		parent := path[i-1]
		cond = fmt.Sprintf("%s IN (SELECT %s FROM %s WHERE %s)", path[i].ForeignKey, parent.Key, parent.Table, cond)
	}
	return cond
}

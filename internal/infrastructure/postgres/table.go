package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/game-admin-api/internal/domain"
	"github.com/jmoiron/sqlx"
)

// TableSpec describes how an entity maps onto its table. Columns are the
// writable columns, excluding the serial key. UpdateExpr overrides the
// default "col = :col" assignment for individual columns.
type TableSpec struct {
	Name       string
	Key        string
	Columns    []string
	OrderBy    string
	UpdateExpr map[string]string
}

// Table is a generic CRUD gateway for one entity table.
type Table[T any, PT interface {
	*T
	domain.Entity
}] struct {
	db   *sqlx.DB
	spec TableSpec

	selectSQL string
	insertSQL string
	updateSQL string
}

func NewTable[T any, PT interface {
	*T
	domain.Entity
}](db *sqlx.DB, spec TableSpec) *Table[T, PT] {
	if spec.OrderBy == "" {
		spec.OrderBy = spec.Key
	}
	cols := strings.Join(spec.Columns, ", ")

	named := make([]string, len(spec.Columns))
	sets := make([]string, len(spec.Columns))
	for i, c := range spec.Columns {
		named[i] = ":" + c
		if expr, ok := spec.UpdateExpr[c]; ok {
			sets[i] = fmt.Sprintf("%s = %s", c, expr)
		} else {
			sets[i] = fmt.Sprintf("%s = :%s", c, c)
		}
	}

	return &Table[T, PT]{
		db:        db,
		spec:      spec,
		selectSQL: fmt.Sprintf("SELECT %s, %s FROM %s", spec.Key, cols, spec.Name),
		insertSQL: fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s", spec.Name, cols, strings.Join(named, ", "), spec.Key),
		updateSQL: fmt.Sprintf("UPDATE %s SET %s WHERE %s = :%s", spec.Name, strings.Join(sets, ", "), spec.Key, spec.Key),
	}
}

func (t *Table[T, PT]) List(ctx context.Context) ([]T, error) {
	out := []T{}
	q := fmt.Sprintf("%s ORDER BY %s", t.selectSQL, t.spec.OrderBy)
	if err := t.db.SelectContext(ctx, &out, q); err != nil {
		return nil, fmt.Errorf("list %s: %w", t.spec.Name, err)
	}
	return out, nil
}

func (t *Table[T, PT]) Get(ctx context.Context, id int64) (*T, error) {
	var rec T
	q := fmt.Sprintf("%s WHERE %s = $1", t.selectSQL, t.spec.Key)
	if err := t.db.GetContext(ctx, &rec, q, id); err != nil {
		return nil, translate(err)
	}
	return &rec, nil
}

func (t *Table[T, PT]) Insert(ctx context.Context, rec *T) error {
	rows, err := t.db.NamedQueryContext(ctx, t.insertSQL, rec)
	if err != nil {
		return translate(err)
	}
	defer rows.Close()
	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return translate(err)
		}
		return fmt.Errorf("insert %s returned no key", t.spec.Name)
	}
	var id int64
	if err := rows.Scan(&id); err != nil {
		return fmt.Errorf("scan %s key: %w", t.spec.Name, err)
	}
	PT(rec).SetKey(id)
	return nil
}

func (t *Table[T, PT]) Update(ctx context.Context, rec *T) error {
	res, err := t.db.NamedExecContext(ctx, t.updateSQL, rec)
	if err != nil {
		return translate(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%s %d: %w", t.spec.Name, PT(rec).Key(), domain.ErrNotFound)
	}
	return nil
}

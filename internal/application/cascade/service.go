package cascade

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/game-admin-api/internal/domain"
)

// Store opens the transaction a delete runs in. fn's error rolls it back.
type Store interface {
	WithinTx(ctx context.Context, fn func(tx Tx) error) error
}

// Tx is the unit of work for one guarded delete. A path lists dependents from
// the one referencing the root entity down to the collection being addressed.
type Tx interface {
	// LockEntity locks the root row for the rest of the transaction and
	// returns its label. A missing row yields domain.ErrNotFound.
	LockEntity(ctx context.Context, k Kind, id int64) (string, error)
	CountPath(ctx context.Context, path []Dependent, id int64) (int64, error)
	RemovePath(ctx context.Context, path []Dependent, id int64) (int64, error)
	RemoveEntity(ctx context.Context, k Kind, id int64) error
}

// Recorder receives the audit entry written after a committed delete.
type Recorder interface {
	Record(ctx context.Context, action, entity, description string)
}

// Blocker is a dependent collection that still has rows.
type Blocker struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// ConflictError is returned when dependents exist and force was not set.
// It unwraps to domain.ErrConflict.
type ConflictError struct {
	Noun     string
	Label    string
	Blocking []Blocker
}

func (e *ConflictError) Error() string {
	parts := make([]string, len(e.Blocking))
	for i, b := range e.Blocking {
		parts[i] = fmt.Sprintf("%s (%d)", b.Name, b.Count)
	}
	return fmt.Sprintf("%s '%s' still has related %s; confirm with force=true to delete it together with its related data",
		e.Noun, e.Label, strings.Join(parts, ", "))
}

func (e *ConflictError) Unwrap() error { return domain.ErrConflict }

// RequiresConfirmation is always true: the caller may retry with force.
func (e *ConflictError) RequiresConfirmation() bool { return true }

type Service interface {
	Delete(ctx context.Context, kind string, id int64, force bool) error
}

type service struct {
	store  Store
	audit  Recorder
	lookup func(string) (Kind, bool)
}

func NewService(store Store, audit Recorder) Service {
	return &service{store: store, audit: audit, lookup: Lookup}
}

func (s *service) Delete(ctx context.Context, kind string, id int64, force bool) error {
	k, ok := s.lookup(kind)
	if !ok {
		return fmt.Errorf("unknown entity kind %q: %w", kind, domain.ErrNotFound)
	}

	var label string
	removed := map[string]int64{}
	err := s.store.WithinTx(ctx, func(tx Tx) error {
		l, err := tx.LockEntity(ctx, k, id)
		if err != nil {
			return err
		}
		label = l

		var blocking []Blocker
		for _, d := range k.Dependents {
			n, err := tx.CountPath(ctx, []Dependent{d}, id)
			if err != nil {
				return fmt.Errorf("count %s: %w", d.Name, err)
			}
			if n > 0 {
				blocking = append(blocking, Blocker{Name: d.Name, Count: n})
			}
		}
		if len(blocking) > 0 && !force {
			return &ConflictError{Noun: k.Noun, Label: label, Blocking: blocking}
		}

		for _, d := range k.Dependents {
			if err := removeTree(ctx, tx, []Dependent{d}, id, removed); err != nil {
				return err
			}
		}
		return tx.RemoveEntity(ctx, k, id)
	})
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "entity deleted", "kind", k.Name, "id", id, "force", force, "removed", removed)
	s.audit.Record(ctx, domain.AuditDelete, k.Entity, fmt.Sprintf("Deleted %s: %s", k.Noun, label))
	return nil
}

// removeTree deletes the deepest collections first so no row is removed while
// something still references it.
func removeTree(ctx context.Context, tx Tx, path []Dependent, id int64, removed map[string]int64) error {
	last := path[len(path)-1]
	for _, c := range last.Children {
		child := append(append([]Dependent(nil), path...), c)
		if err := removeTree(ctx, tx, child, id, removed); err != nil {
			return err
		}
	}
	n, err := tx.RemovePath(ctx, path, id)
	if err != nil {
		return fmt.Errorf("remove %s: %w", last.Name, err)
	}
	removed[last.Table] += n
	return nil
}

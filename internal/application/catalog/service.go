// Package catalog implements admin CRUD for every game entity with one generic
// service. Deletes go through the guarded cascade.
package catalog

import (
	"context"
	"fmt"

	"github.com/game-admin-api/internal/application/cascade"
	"github.com/game-admin-api/internal/domain"
	"github.com/game-admin-api/internal/pkg/validate"
)

// Repository is the persistence contract for one entity table.
type Repository[T any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id int64) (*T, error)
	// Insert stores rec and writes the assigned key back into it.
	Insert(ctx context.Context, rec *T) error
	// Update returns domain.ErrNotFound when no row has rec's key.
	Update(ctx context.Context, rec *T) error
}

type Deleter interface {
	Delete(ctx context.Context, kind string, id int64, force bool) error
}

type Recorder interface {
	Record(ctx context.Context, action, entity, description string)
}

// Hook runs after validation and before the record is written.
type Hook[T any] func(ctx context.Context, rec *T) error

// Service manages one entity kind. PT is the pointer type carrying the
// domain.Entity methods.
type Service[T any, PT interface {
	*T
	domain.Entity
}] struct {
	kind         cascade.Kind
	repo         Repository[T]
	deleter      Deleter
	audit        Recorder
	beforeCreate Hook[T]
	beforeUpdate Hook[T]
}

// Option customises a Service.
type Option[T any] func(*options[T])

type options[T any] struct {
	beforeCreate Hook[T]
	beforeUpdate Hook[T]
}

func BeforeCreate[T any](h Hook[T]) Option[T] { return func(o *options[T]) { o.beforeCreate = h } }
func BeforeUpdate[T any](h Hook[T]) Option[T] { return func(o *options[T]) { o.beforeUpdate = h } }

// NewService panics when kind is not a registered cascade kind.
func NewService[T any, PT interface {
	*T
	domain.Entity
}](kind string, repo Repository[T], deleter Deleter, audit Recorder, opts ...Option[T]) *Service[T, PT] {
	k, ok := cascade.Lookup(kind)
	if !ok {
		panic("catalog: unknown entity kind " + kind)
	}
	var o options[T]
	for _, opt := range opts {
		opt(&o)
	}
	return &Service[T, PT]{
		kind:         k,
		repo:         repo,
		deleter:      deleter,
		audit:        audit,
		beforeCreate: o.beforeCreate,
		beforeUpdate: o.beforeUpdate,
	}
}

func (s *Service[T, PT]) List(ctx context.Context) ([]T, error) {
	return s.repo.List(ctx)
}

func (s *Service[T, PT]) Get(ctx context.Context, id int64) (*T, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service[T, PT]) Create(ctx context.Context, rec *T) error {
	if err := validate.Struct(rec); err != nil {
		return fmt.Errorf("%s: %w", err.Error(), domain.ErrBadRequest)
	}
	PT(rec).SetKey(0)
	if s.beforeCreate != nil {
		if err := s.beforeCreate(ctx, rec); err != nil {
			return err
		}
	}
	if err := s.repo.Insert(ctx, rec); err != nil {
		return err
	}
	s.audit.Record(ctx, domain.AuditCreate, s.kind.Entity, fmt.Sprintf("Created %s: %s", s.kind.Noun, PT(rec).Label()))
	return nil
}

func (s *Service[T, PT]) Update(ctx context.Context, id int64, rec *T) error {
	if k := PT(rec).Key(); k != 0 && k != id {
		return fmt.Errorf("body id %d does not match path id %d: %w", k, id, domain.ErrBadRequest)
	}
	if err := validate.Struct(rec); err != nil {
		return fmt.Errorf("%s: %w", err.Error(), domain.ErrBadRequest)
	}
	PT(rec).SetKey(id)
	if s.beforeUpdate != nil {
		if err := s.beforeUpdate(ctx, rec); err != nil {
			return err
		}
	}
	if err := s.repo.Update(ctx, rec); err != nil {
		return err
	}
	s.audit.Record(ctx, domain.AuditUpdate, s.kind.Entity, fmt.Sprintf("Updated %s: %s", s.kind.Noun, PT(rec).Label()))
	return nil
}

func (s *Service[T, PT]) Delete(ctx context.Context, id int64, force bool) error {
	return s.deleter.Delete(ctx, s.kind.Name, id, force)
}

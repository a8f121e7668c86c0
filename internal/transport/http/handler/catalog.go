package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/game-admin-api/internal/domain"
	"github.com/game-admin-api/internal/pkg/validate"
	"github.com/go-chi/chi/v5"
)

// CatalogService is the admin CRUD surface for one entity kind.
type CatalogService[T any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id int64) (*T, error)
	Create(ctx context.Context, rec *T) error
	Update(ctx context.Context, id int64, rec *T) error
	Delete(ctx context.Context, id int64, force bool) error
}

// CatalogHandler exposes a CatalogService under one collection path.
type CatalogHandler[T any, PT interface {
	*T
	domain.Entity
}] struct {
	svc CatalogService[T]
}

func NewCatalogHandler[T any, PT interface {
	*T
	domain.Entity
}](svc CatalogService[T]) *CatalogHandler[T, PT] {
	return &CatalogHandler[T, PT]{svc: svc}
}

// Routes mounts list/get/create/update/delete on r.
func (h *CatalogHandler[T, PT]) Routes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
}

func (h *CatalogHandler[T, PT]) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.List(r.Context())
	if err != nil {
		httpError(w, r, err)
		return
	}
	writeList(w, items)
}

func (h *CatalogHandler[T, PT]) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	rec, err := h.svc.Get(r.Context(), id)
	if err != nil {
		httpError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (h *CatalogHandler[T, PT]) Create(w http.ResponseWriter, r *http.Request) {
	var rec T
	if !decodeJSON(w, r, &rec) {
		return
	}
	if err := validate.Struct(&rec); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if err := h.svc.Create(r.Context(), &rec); err != nil {
		httpError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, CreatedEnvelope{ID: PT(&rec).Key(), Message: "created"})
}

func (h *CatalogHandler[T, PT]) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var rec T
	if !decodeJSON(w, r, &rec) {
		return
	}
	if err := validate.Struct(&rec); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if err := h.svc.Update(r.Context(), id, &rec); err != nil {
		httpError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Delete removes the record. With force=true related data goes with it;
// otherwise existing dependents produce a 409 asking for confirmation.
func (h *CatalogHandler[T, PT]) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	force := false
	if v := r.URL.Query().Get("force"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid force flag")
			return
		}
		force = b
	}
	if err := h.svc.Delete(r.Context(), id, force); err != nil {
		httpError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

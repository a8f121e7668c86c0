package handler

import (
	"math"
	"net/http"

	"github.com/game-admin-api/internal/application/gamedata"
	"github.com/game-admin-api/internal/domain"
	"github.com/game-admin-api/internal/pkg/validate"
	"github.com/go-chi/chi/v5"
)

const defaultMinWeaponValue = 100

// GameHandler serves the read-mostly queries used by signed-in players.
type GameHandler struct {
	svc gamedata.Service
}

func NewGameHandler(svc gamedata.Service) *GameHandler {
	return &GameHandler{svc: svc}
}

func (h *GameHandler) Routes(r chi.Router) {
	r.Get("/resources", h.Resources)
	r.Get("/item-types", h.ItemTypes)
	r.Get("/items/search", h.SearchItems)
	r.Get("/items/{id}", h.Item)
	r.Post("/items", h.AddItem)
	r.Get("/modes/{mode}/players", h.PlayersByMode)
	r.Get("/weapons", h.Weapons)
	r.Get("/players/{id}/purchasable-items", h.PurchasableItems)
	r.Get("/players/{id}/transactions", h.PlayerTransactions)
	r.Put("/players/{id}/password", h.ChangePassword)
	r.Get("/stats/top-selling-items", h.TopSellingItems)
	r.Get("/stats/purchase-counts", h.PurchaseCounts)
}

func (h *GameHandler) Resources(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.Resources(r.Context())
	if err != nil {
		httpError(w, r, err)
		return
	}
	writeList(w, out)
}

func (h *GameHandler) ItemTypes(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.ItemTypes(r.Context())
	if err != nil {
		httpError(w, r, err)
		return
	}
	writeList(w, out)
}

func (h *GameHandler) Item(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	item, err := h.svc.Item(r.Context(), id)
	if err != nil {
		httpError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *GameHandler) PlayersByMode(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.PlayersByMode(r.Context(), chi.URLParam(r, "mode"))
	if err != nil {
		httpError(w, r, err)
		return
	}
	writeList(w, out)
}

func (h *GameHandler) Weapons(w http.ResponseWriter, r *http.Request) {
	minValue, err := queryInt64(r, "min_value", defaultMinWeaponValue)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid min_value")
		return
	}
	out, err := h.svc.Weapons(r.Context(), minValue)
	if err != nil {
		httpError(w, r, err)
		return
	}
	writeList(w, out)
}

func (h *GameHandler) PurchasableItems(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	out, err := h.svc.PurchasableItems(r.Context(), id)
	if err != nil {
		httpError(w, r, err)
		return
	}
	writeList(w, out)
}

// SearchItems matches q against item names; max_value is exclusive and
// unbounded when omitted.
func (h *GameHandler) SearchItems(w http.ResponseWriter, r *http.Request) {
	below, err := queryInt64(r, "max_value", math.MaxInt64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid max_value")
		return
	}
	out, err := h.svc.SearchItems(r.Context(), r.URL.Query().Get("q"), below)
	if err != nil {
		httpError(w, r, err)
		return
	}
	writeList(w, out)
}

func (h *GameHandler) PlayerTransactions(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	out, err := h.svc.PlayerTransactions(r.Context(), id)
	if err != nil {
		httpError(w, r, err)
		return
	}
	writeList(w, out)
}

func (h *GameHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var item domain.Item
	if !decodeJSON(w, r, &item) {
		return
	}
	if err := validate.Struct(&item); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if err := h.svc.AddItem(r.Context(), &item); err != nil {
		httpError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, CreatedEnvelope{ID: item.ItemSheetID, Message: "item added"})
}

func (h *GameHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req domain.ChangePasswordRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if err := h.svc.ChangePassword(r.Context(), id, req.NewPassword); err != nil {
		httpError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *GameHandler) TopSellingItems(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.TopSellingItems(r.Context())
	if err != nil {
		httpError(w, r, err)
		return
	}
	writeList(w, out)
}

func (h *GameHandler) PurchaseCounts(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.PurchaseCounts(r.Context())
	if err != nil {
		httpError(w, r, err)
		return
	}
	writeList(w, out)
}

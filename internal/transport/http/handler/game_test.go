package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"testing"

	"github.com/game-admin-api/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockGameSvc struct{ mock.Mock }

func (m *mockGameSvc) Resources(ctx context.Context) ([]domain.Resource, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]domain.Resource)
	return out, args.Error(1)
}

func (m *mockGameSvc) ItemTypes(ctx context.Context) ([]domain.ItemType, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]domain.ItemType)
	return out, args.Error(1)
}

func (m *mockGameSvc) Item(ctx context.Context, id int64) (*domain.ItemWithType, error) {
	args := m.Called(ctx, id)
	if it, _ := args.Get(0).(*domain.ItemWithType); it != nil {
		return it, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockGameSvc) PlayersByMode(ctx context.Context, modeName string) ([]domain.Player, error) {
	args := m.Called(ctx, modeName)
	out, _ := args.Get(0).([]domain.Player)
	return out, args.Error(1)
}

func (m *mockGameSvc) Weapons(ctx context.Context, minValue int64) ([]domain.ItemWithType, error) {
	args := m.Called(ctx, minValue)
	out, _ := args.Get(0).([]domain.ItemWithType)
	return out, args.Error(1)
}

func (m *mockGameSvc) PurchasableItems(ctx context.Context, playerID int64) ([]domain.Item, error) {
	args := m.Called(ctx, playerID)
	out, _ := args.Get(0).([]domain.Item)
	return out, args.Error(1)
}

func (m *mockGameSvc) SearchItems(ctx context.Context, q string, below int64) ([]domain.Item, error) {
	args := m.Called(ctx, q, below)
	out, _ := args.Get(0).([]domain.Item)
	return out, args.Error(1)
}

func (m *mockGameSvc) PlayerTransactions(ctx context.Context, playerID int64) ([]domain.TransactionDetail, error) {
	args := m.Called(ctx, playerID)
	out, _ := args.Get(0).([]domain.TransactionDetail)
	return out, args.Error(1)
}

func (m *mockGameSvc) AddItem(ctx context.Context, item *domain.Item) error {
	return m.Called(ctx, item).Error(0)
}

func (m *mockGameSvc) ChangePassword(ctx context.Context, playerID int64, newPassword string) error {
	return m.Called(ctx, playerID, newPassword).Error(0)
}

func (m *mockGameSvc) TopSellingItems(ctx context.Context) ([]domain.ItemSales, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]domain.ItemSales)
	return out, args.Error(1)
}

func (m *mockGameSvc) PurchaseCounts(ctx context.Context) ([]domain.PlayerPurchases, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]domain.PlayerPurchases)
	return out, args.Error(1)
}

func gameRouter(svc *mockGameSvc) http.Handler {
	r := chi.NewRouter()
	NewGameHandler(svc).Routes(r)
	return r
}

func TestGameResources_EmptyIs404(t *testing.T) {
	svc := &mockGameSvc{}
	svc.On("Resources", mock.Anything).Return(nil, fmt.Errorf("no resources found: %w", domain.ErrNotFound))

	rr := serve(gameRouter(svc), http.MethodGet, "/resources", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "no resources found")
}

func TestGameWeapons_DefaultMinValue(t *testing.T) {
	svc := &mockGameSvc{}
	svc.On("Weapons", mock.Anything, int64(100)).Return([]domain.ItemWithType{
		{Item: domain.Item{ItemSheetID: 1, ItemVersionName: "Sword", PurchaseValue: 150}, ItemTypeName: "Weapon"},
	}, nil)

	rr := serve(gameRouter(svc), http.MethodGet, "/weapons", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp ListEnvelope[domain.ItemWithType]
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, 1, resp.Count)
	assert.Equal(t, "Sword", resp.Data[0].ItemVersionName)
	svc.AssertExpectations(t)
}

func TestGameWeapons_InvalidMinValue(t *testing.T) {
	rr := serve(gameRouter(&mockGameSvc{}), http.MethodGet, "/weapons?min_value=lots", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGameSearch_PassesBounds(t *testing.T) {
	svc := &mockGameSvc{}
	svc.On("SearchItems", mock.Anything, "sword", int64(500)).Return([]domain.Item{{ItemSheetID: 2}}, nil)

	rr := serve(gameRouter(svc), http.MethodGet, "/items/search?q=sword&max_value=500", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	svc.AssertExpectations(t)
}

func TestGameSearch_UnboundedWhenMaxMissing(t *testing.T) {
	svc := &mockGameSvc{}
	svc.On("SearchItems", mock.Anything, "axe", int64(math.MaxInt64)).Return([]domain.Item{{ItemSheetID: 2}}, nil)

	rr := serve(gameRouter(svc), http.MethodGet, "/items/search?q=axe", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	svc.AssertExpectations(t)
}

func TestGameItem_RouteDoesNotShadowSearch(t *testing.T) {
	svc := &mockGameSvc{}
	svc.On("Item", mock.Anything, int64(7)).
		Return(&domain.ItemWithType{Item: domain.Item{ItemSheetID: 7}, ItemTypeName: "Armor"}, nil)

	rr := serve(gameRouter(svc), http.MethodGet, "/items/7", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Armor")
}

func TestGamePlayersByMode(t *testing.T) {
	svc := &mockGameSvc{}
	svc.On("PlayersByMode", mock.Anything, "Arena").Return([]domain.Player{{PlayerID: 1, EmailAccount: "a@x.io"}}, nil)

	rr := serve(gameRouter(svc), http.MethodGet, "/modes/Arena/players", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.NotContains(t, rr.Body.String(), "login_password")
}

func TestGameAddItem_UnknownTypeIs400(t *testing.T) {
	svc := &mockGameSvc{}
	svc.On("AddItem", mock.Anything, mock.Anything).Return(fmt.Errorf("item type: %w", domain.ErrBadRequest))

	body, _ := json.Marshal(domain.Item{ItemTypeID: 99, ItemVersionName: "Ghost blade"})
	rr := serve(gameRouter(svc), http.MethodPost, "/items", body)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGameAddItem_Created(t *testing.T) {
	svc := &mockGameSvc{}
	svc.On("AddItem", mock.Anything, mock.AnythingOfType("*domain.Item")).
		Run(func(args mock.Arguments) { args.Get(1).(*domain.Item).ItemSheetID = 17 }).
		Return(nil)

	body, _ := json.Marshal(domain.Item{ItemTypeID: 1, ItemVersionName: "Bow", PurchaseValue: 30})
	rr := serve(gameRouter(svc), http.MethodPost, "/items", body)

	assert.Equal(t, http.StatusCreated, rr.Code)
	var resp CreatedEnvelope
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, int64(17), resp.ID)
}

func TestGameChangePassword(t *testing.T) {
	svc := &mockGameSvc{}
	svc.On("ChangePassword", mock.Anything, int64(4), "newpass").Return(nil)

	body, _ := json.Marshal(domain.ChangePasswordRequest{NewPassword: "newpass"})
	rr := serve(gameRouter(svc), http.MethodPut, "/players/4/password", body)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	svc.AssertExpectations(t)
}

func TestGameChangePassword_OtherPlayerForbidden(t *testing.T) {
	svc := &mockGameSvc{}
	svc.On("ChangePassword", mock.Anything, int64(4), "newpass").Return(domain.ErrForbidden)

	body, _ := json.Marshal(domain.ChangePasswordRequest{NewPassword: "newpass"})
	rr := serve(gameRouter(svc), http.MethodPut, "/players/4/password", body)
	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestGameStats(t *testing.T) {
	svc := &mockGameSvc{}
	svc.On("TopSellingItems", mock.Anything).Return([]domain.ItemSales{{ItemSheetID: 1, PurchaseCount: 9}}, nil)
	svc.On("PurchaseCounts", mock.Anything).Return([]domain.PlayerPurchases{}, nil)
	h := gameRouter(svc)

	rr := serve(h, http.MethodGet, "/stats/top-selling-items", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"purchase_count":9`)

	rr = serve(h, http.MethodGet, "/stats/purchase-counts", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"data":[],"count":0}`, rr.Body.String())
}

package gamedata

import (
	"context"
	"fmt"
	"strings"

	"github.com/game-admin-api/internal/domain"
	"github.com/game-admin-api/internal/pkg/principal"
)

const topSellingLimit = 10

// Store runs the read-side queries behind the player-facing endpoints.
type Store interface {
	Resources(ctx context.Context) ([]domain.Resource, error)
	ItemTypes(ctx context.Context) ([]domain.ItemType, error)
	Item(ctx context.Context, id int64) (*domain.ItemWithType, error)
	PlayersByMode(ctx context.Context, modeName string) ([]domain.Player, error)
	ItemsOfTypeAbove(ctx context.Context, typeName string, minValue int64) ([]domain.ItemWithType, error)
	PlayerExperience(ctx context.Context, playerID int64) (int64, error)
	ItemsUpTo(ctx context.Context, maxValue int64) ([]domain.Item, error)
	SearchItems(ctx context.Context, q string, below int64) ([]domain.Item, error)
	PlayerTransactions(ctx context.Context, playerID int64) ([]domain.TransactionDetail, error)
	TopSellingItems(ctx context.Context, limit int) ([]domain.ItemSales, error)
	PurchaseCounts(ctx context.Context) ([]domain.PlayerPurchases, error)
}

// ItemCreator adds an item with validation and auditing.
type ItemCreator interface {
	Create(ctx context.Context, rec *domain.Item) error
}

type PasswordChanger interface {
	ChangePassword(ctx context.Context, playerID int64, newPassword string) error
}

type Service interface {
	Resources(ctx context.Context) ([]domain.Resource, error)
	ItemTypes(ctx context.Context) ([]domain.ItemType, error)
	Item(ctx context.Context, id int64) (*domain.ItemWithType, error)
	PlayersByMode(ctx context.Context, modeName string) ([]domain.Player, error)
	Weapons(ctx context.Context, minValue int64) ([]domain.ItemWithType, error)
	PurchasableItems(ctx context.Context, playerID int64) ([]domain.Item, error)
	SearchItems(ctx context.Context, q string, below int64) ([]domain.Item, error)
	PlayerTransactions(ctx context.Context, playerID int64) ([]domain.TransactionDetail, error)
	AddItem(ctx context.Context, item *domain.Item) error
	ChangePassword(ctx context.Context, playerID int64, newPassword string) error
	TopSellingItems(ctx context.Context) ([]domain.ItemSales, error)
	PurchaseCounts(ctx context.Context) ([]domain.PlayerPurchases, error)
}

type service struct {
	store      Store
	items      ItemCreator
	passwords  PasswordChanger
	weaponType string
}

func NewService(store Store, items ItemCreator, passwords PasswordChanger, weaponType string) Service {
	return &service{store: store, items: items, passwords: passwords, weaponType: weaponType}
}

func (s *service) Resources(ctx context.Context) ([]domain.Resource, error) {
	out, err := s.store.Resources(ctx)
	return nonEmpty(out, err, "no resources found")
}

func (s *service) ItemTypes(ctx context.Context) ([]domain.ItemType, error) {
	return s.store.ItemTypes(ctx)
}

func (s *service) Item(ctx context.Context, id int64) (*domain.ItemWithType, error) {
	return s.store.Item(ctx, id)
}

func (s *service) PlayersByMode(ctx context.Context, modeName string) ([]domain.Player, error) {
	modeName = strings.TrimSpace(modeName)
	if modeName == "" {
		return nil, fmt.Errorf("mode name is required: %w", domain.ErrBadRequest)
	}
	out, err := s.store.PlayersByMode(ctx, modeName)
	return nonEmpty(out, err, fmt.Sprintf("no players found for mode %q", modeName))
}

func (s *service) Weapons(ctx context.Context, minValue int64) ([]domain.ItemWithType, error) {
	out, err := s.store.ItemsOfTypeAbove(ctx, s.weaponType, minValue)
	return nonEmpty(out, err, fmt.Sprintf("no weapons worth more than %d", minValue))
}

func (s *service) PurchasableItems(ctx context.Context, playerID int64) ([]domain.Item, error) {
	exp, err := s.store.PlayerExperience(ctx, playerID)
	if err != nil {
		return nil, err
	}
	out, err := s.store.ItemsUpTo(ctx, exp)
	return nonEmpty(out, err, "no items affordable with the player's experience points")
}

func (s *service) SearchItems(ctx context.Context, q string, below int64) ([]domain.Item, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return nil, fmt.Errorf("search term is required: %w", domain.ErrBadRequest)
	}
	out, err := s.store.SearchItems(ctx, q, below)
	return nonEmpty(out, err, fmt.Sprintf("no items matching %q below %d", q, below))
}

func (s *service) PlayerTransactions(ctx context.Context, playerID int64) ([]domain.TransactionDetail, error) {
	out, err := s.store.PlayerTransactions(ctx, playerID)
	return nonEmpty(out, err, "no transactions found for this player")
}

func (s *service) AddItem(ctx context.Context, item *domain.Item) error {
	return s.items.Create(ctx, item)
}

// ChangePassword is allowed for the player themself or an admin.
func (s *service) ChangePassword(ctx context.Context, playerID int64, newPassword string) error {
	p, ok := principal.FromContext(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if p.PlayerID != playerID && p.Role != domain.RoleAdmin {
		return fmt.Errorf("cannot change another player's password: %w", domain.ErrForbidden)
	}
	return s.passwords.ChangePassword(ctx, playerID, newPassword)
}

func (s *service) TopSellingItems(ctx context.Context) ([]domain.ItemSales, error) {
	return s.store.TopSellingItems(ctx, topSellingLimit)
}

func (s *service) PurchaseCounts(ctx context.Context) ([]domain.PlayerPurchases, error) {
	return s.store.PurchaseCounts(ctx)
}

func nonEmpty[T any](out []T, err error, msg string) ([]T, error) {
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%s: %w", msg, domain.ErrNotFound)
	}
	return out, nil
}

package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/game-admin-api/internal/domain"
	"github.com/jmoiron/sqlx"
)

// GameData answers the read-only queries used by the game client.
type GameData struct {
	db *sqlx.DB
}

func NewGameData(db *sqlx.DB) *GameData {
	return &GameData{db: db}
}

const itemColumns = `i.item_sheet_id, i.item_type_id, i.item_version_name, i.purchase_value, i.image_url`

func (g *GameData) Resources(ctx context.Context) ([]domain.Resource, error) {
	out := []domain.Resource{}
	err := g.db.SelectContext(ctx, &out,
		`SELECT resource_id, resource_name, description FROM resources ORDER BY resource_id`)
	return out, err
}

func (g *GameData) ItemTypes(ctx context.Context) ([]domain.ItemType, error) {
	out := []domain.ItemType{}
	err := g.db.SelectContext(ctx, &out,
		`SELECT item_type_id, item_type_name FROM item_types ORDER BY item_type_name`)
	return out, err
}

func (g *GameData) Item(ctx context.Context, id int64) (*domain.ItemWithType, error) {
	var out domain.ItemWithType
	q := `SELECT ` + itemColumns + `, t.item_type_name
		FROM item_sales_sheet i JOIN item_types t ON t.item_type_id = i.item_type_id
		WHERE i.item_sheet_id = $1`
	if err := g.db.GetContext(ctx, &out, q, id); err != nil {
		return nil, translate(err)
	}
	return &out, nil
}

func (g *GameData) PlayersByMode(ctx context.Context, modeName string) ([]domain.Player, error) {
	out := []domain.Player{}
	const q = `SELECT DISTINCT p.player_id, p.email_account, p.role, p.experience_points
		FROM players p
		JOIN play_histories h ON h.player_id = p.player_id
		JOIN game_modes m ON m.mode_id = h.mode_id
		WHERE lower(m.mode_name) = lower($1)
		ORDER BY p.player_id`
	err := g.db.SelectContext(ctx, &out, q, modeName)
	return out, err
}

func (g *GameData) ItemsOfTypeAbove(ctx context.Context, typeName string, minValue int64) ([]domain.ItemWithType, error) {
	out := []domain.ItemWithType{}
	q := `SELECT ` + itemColumns + `, t.item_type_name
		FROM item_sales_sheet i JOIN item_types t ON t.item_type_id = i.item_type_id
		WHERE t.item_type_name = $1 AND i.purchase_value > $2
		ORDER BY i.purchase_value DESC, i.item_sheet_id`
	err := g.db.SelectContext(ctx, &out, q, typeName, minValue)
	return out, err
}

func (g *GameData) PlayerExperience(ctx context.Context, playerID int64) (int64, error) {
	var exp int64
	err := g.db.GetContext(ctx, &exp, `SELECT experience_points FROM players WHERE player_id = $1`, playerID)
	if err != nil {
		return 0, fmt.Errorf("player %d: %w", playerID, translate(err))
	}
	return exp, nil
}

func (g *GameData) ItemsUpTo(ctx context.Context, maxValue int64) ([]domain.Item, error) {
	out := []domain.Item{}
	q := `SELECT ` + itemColumns + ` FROM item_sales_sheet i
		WHERE i.purchase_value <= $1 ORDER BY i.purchase_value, i.item_sheet_id`
	err := g.db.SelectContext(ctx, &out, q, maxValue)
	return out, err
}

func (g *GameData) SearchItems(ctx context.Context, term string, below int64) ([]domain.Item, error) {
	out := []domain.Item{}
	q := `SELECT ` + itemColumns + ` FROM item_sales_sheet i
		WHERE i.item_version_name ILIKE '%' || $1 || '%' AND i.purchase_value < $2
		ORDER BY i.item_version_name`
	err := g.db.SelectContext(ctx, &out, q, escapeLike(term), below)
	return out, err
}

func (g *GameData) PlayerTransactions(ctx context.Context, playerID int64) ([]domain.TransactionDetail, error) {
	out := []domain.TransactionDetail{}
	err := g.db.SelectContext(ctx, &out, transactionDetailSQL+`
		WHERE tr.player_id = $1
		ORDER BY tr.transaction_time DESC, tr.transaction_id DESC`, playerID)
	return out, err
}

func (g *GameData) TopSellingItems(ctx context.Context, limit int) ([]domain.ItemSales, error) {
	out := []domain.ItemSales{}
	const q = `SELECT i.item_sheet_id, i.item_version_name, COUNT(tr.transaction_id) AS purchase_count
		FROM item_sales_sheet i
		JOIN transactions tr ON tr.item_sheet_id = i.item_sheet_id
		GROUP BY i.item_sheet_id, i.item_version_name
		ORDER BY purchase_count DESC, i.item_sheet_id
		LIMIT $1`
	err := g.db.SelectContext(ctx, &out, q, limit)
	return out, err
}

func (g *GameData) PurchaseCounts(ctx context.Context) ([]domain.PlayerPurchases, error) {
	out := []domain.PlayerPurchases{}
	const q = `SELECT p.player_id, p.email_account, COUNT(tr.transaction_id) AS purchase_count
		FROM players p
		LEFT JOIN transactions tr ON tr.player_id = p.player_id
		GROUP BY p.player_id, p.email_account
		ORDER BY purchase_count DESC, p.player_id`
	err := g.db.SelectContext(ctx, &out, q)
	return out, err
}

const transactionDetailSQL = `SELECT tr.transaction_id, tr.player_id, tr.item_sheet_id, tr.vehicle_id,
		tr.transaction_time, tr.transaction_value, tr.transaction_type,
		i.item_version_name AS item_name, v.vehicle_name, p.email_account AS player_email
	FROM transactions tr
	JOIN players p ON p.player_id = tr.player_id
	LEFT JOIN item_sales_sheet i ON i.item_sheet_id = tr.item_sheet_id
	LEFT JOIN vehicles v ON v.vehicle_id = tr.vehicle_id`

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes term match literally inside a LIKE pattern.
func escapeLike(term string) string {
	return likeEscaper.Replace(term)
}

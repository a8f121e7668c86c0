package postgres

import (
	"context"

	"github.com/game-admin-api/internal/domain"
	"github.com/jmoiron/sqlx"
)

// Reports aggregates activity for the admin dashboard.
type Reports struct {
	db *sqlx.DB
}

func NewReports(db *sqlx.DB) *Reports {
	return &Reports{db: db}
}

func (r *Reports) Totals(ctx context.Context) (domain.Totals, error) {
	var t domain.Totals
	const q = `SELECT
		(SELECT COUNT(*) FROM players) AS total_players,
		(SELECT COUNT(*) FROM item_sales_sheet) AS total_items,
		(SELECT COALESCE(SUM(transaction_value), 0)::bigint FROM transactions) AS total_revenue,
		(SELECT COUNT(*) FROM play_histories) AS total_play_sessions,
		(SELECT COUNT(*) FROM transactions) AS total_transactions`
	err := r.db.GetContext(ctx, &t, q)
	return t, err
}

func (r *Reports) RecentTransactions(ctx context.Context, limit int) ([]domain.TransactionDetail, error) {
	out := []domain.TransactionDetail{}
	err := r.db.SelectContext(ctx, &out, transactionDetailSQL+`
		ORDER BY tr.transaction_time DESC, tr.transaction_id DESC LIMIT $1`, limit)
	return out, err
}

func (r *Reports) RecentPlayHistories(ctx context.Context, limit int) ([]domain.PlayHistory, error) {
	out := []domain.PlayHistory{}
	const q = `SELECT h.play_history_id, h.player_id, h.mode_id, h.start_time,
			p.email_account AS player_email, m.mode_name
		FROM play_histories h
		JOIN players p ON p.player_id = h.player_id
		JOIN game_modes m ON m.mode_id = h.mode_id
		ORDER BY h.start_time DESC, h.play_history_id DESC LIMIT $1`
	err := r.db.SelectContext(ctx, &out, q, limit)
	return out, err
}

func (r *Reports) RecentGatherings(ctx context.Context, limit int) ([]domain.ResourceGathering, error) {
	out := []domain.ResourceGathering{}
	const q = `SELECT g.gathering_id, g.player_id, g.resource_id, g.quantity, g.gathering_time,
			p.email_account AS player_email, r.resource_name
		FROM resource_gatherings g
		JOIN players p ON p.player_id = g.player_id
		JOIN resources r ON r.resource_id = g.resource_id
		ORDER BY g.gathering_time DESC, g.gathering_id DESC LIMIT $1`
	err := r.db.SelectContext(ctx, &out, q, limit)
	return out, err
}

func (r *Reports) RecentPlayerQuests(ctx context.Context, limit int) ([]domain.PlayerQuest, error) {
	out := []domain.PlayerQuest{}
	const q = `SELECT pq.player_quest_id, pq.player_id, pq.quest_id, pq.completion_time,
			p.email_account AS player_email, q.quest_name
		FROM player_quests pq
		JOIN players p ON p.player_id = pq.player_id
		JOIN quests q ON q.quest_id = pq.quest_id
		ORDER BY pq.completion_time DESC NULLS LAST, pq.player_quest_id DESC LIMIT $1`
	err := r.db.SelectContext(ctx, &out, q, limit)
	return out, err
}

func (r *Reports) TopMonsterKills(ctx context.Context, limit int) ([]domain.MonsterKill, error) {
	out := []domain.MonsterKill{}
	const q = `SELECT k.kill_id, k.player_id, k.monster_id, k.quantity, k.kill_time,
			p.email_account AS player_email, m.monster_name
		FROM monster_kills k
		JOIN players p ON p.player_id = k.player_id
		JOIN monsters m ON m.monster_id = k.monster_id
		ORDER BY k.quantity DESC, k.kill_id LIMIT $1`
	err := r.db.SelectContext(ctx, &out, q, limit)
	return out, err
}

package report

import (
	"context"

	"github.com/game-admin-api/internal/domain"
)

const (
	dashboardAuditLimit = 20
	recentLimit         = 10
)

type Dashboard struct {
	domain.Totals
	RecentAudit []domain.AuditLog `json:"recent_audit"`
}

type Reports struct {
	TotalTransactions  int64                      `json:"total_transactions"`
	TotalPlaySessions  int64                      `json:"total_play_sessions"`
	RecentTransactions []domain.TransactionDetail `json:"recent_transactions"`
	RecentPlays        []domain.PlayHistory       `json:"recent_play_histories"`
	RecentGatherings   []domain.ResourceGathering `json:"recent_resource_gatherings"`
	RecentQuests       []domain.PlayerQuest       `json:"recent_player_quests"`
	TopKills           []domain.MonsterKill       `json:"top_monster_kills"`
}

type Store interface {
	Totals(ctx context.Context) (domain.Totals, error)
	RecentTransactions(ctx context.Context, limit int) ([]domain.TransactionDetail, error)
	RecentPlayHistories(ctx context.Context, limit int) ([]domain.PlayHistory, error)
	RecentGatherings(ctx context.Context, limit int) ([]domain.ResourceGathering, error)
	RecentPlayerQuests(ctx context.Context, limit int) ([]domain.PlayerQuest, error)
	TopMonsterKills(ctx context.Context, limit int) ([]domain.MonsterKill, error)
}

type AuditReader interface {
	Recent(ctx context.Context, limit int) ([]domain.AuditLog, error)
}

type Service interface {
	Dashboard(ctx context.Context) (*Dashboard, error)
	Reports(ctx context.Context) (*Reports, error)
	AuditLog(ctx context.Context, limit int) ([]domain.AuditLog, error)
}

type service struct {
	store Store
	audit AuditReader
}

func NewService(store Store, audit AuditReader) Service {
	return &service{store: store, audit: audit}
}

func (s *service) Dashboard(ctx context.Context) (*Dashboard, error) {
	t, err := s.store.Totals(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := s.audit.Recent(ctx, dashboardAuditLimit)
	if err != nil {
		return nil, err
	}
	return &Dashboard{Totals: t, RecentAudit: recent}, nil
}

func (s *service) Reports(ctx context.Context) (*Reports, error) {
	t, err := s.store.Totals(ctx)
	if err != nil {
		return nil, err
	}
	r := &Reports{TotalTransactions: t.Transactions, TotalPlaySessions: t.PlaySessions}
	if r.RecentTransactions, err = s.store.RecentTransactions(ctx, recentLimit); err != nil {
		return nil, err
	}
	if r.RecentPlays, err = s.store.RecentPlayHistories(ctx, recentLimit); err != nil {
		return nil, err
	}
	if r.RecentGatherings, err = s.store.RecentGatherings(ctx, recentLimit); err != nil {
		return nil, err
	}
	if r.RecentQuests, err = s.store.RecentPlayerQuests(ctx, recentLimit); err != nil {
		return nil, err
	}
	if r.TopKills, err = s.store.TopMonsterKills(ctx, recentLimit); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *service) AuditLog(ctx context.Context, limit int) ([]domain.AuditLog, error) {
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	return s.audit.Recent(ctx, limit)
}

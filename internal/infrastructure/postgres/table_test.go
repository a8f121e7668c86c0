package postgres

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/game-admin-api/internal/domain"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = mockDB.Close()
	})
	// "pgx" selects $n bind vars for named queries.
	return sqlx.NewDb(mockDB, "pgx"), mock
}

func TestTable_InsertWritesKeyBack(t *testing.T) {
	db, mock := newMock(t)
	quests := NewTable[domain.Quest](db, QuestsSpec)

	mock.ExpectQuery(`INSERT INTO quests \(quest_name, description, reward_exp\) VALUES \(\$1, \$2, \$3\) RETURNING quest_id`).
		WithArgs("Dragon Slayer", "slay it", int64(500)).
		WillReturnRows(sqlmock.NewRows([]string{"quest_id"}).AddRow(7))

	q := &domain.Quest{QuestName: "Dragon Slayer", Description: "slay it", RewardExp: 500}
	require.NoError(t, quests.Insert(context.Background(), q))
	assert.Equal(t, int64(7), q.QuestID)
}

func TestTable_InsertUniqueViolationIsConflict(t *testing.T) {
	db, mock := newMock(t)
	modes := NewTable[domain.GameMode](db, GameModesSpec)

	mock.ExpectQuery(`INSERT INTO game_modes`).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "game_modes_mode_name_key"})

	err := modes.Insert(context.Background(), &domain.GameMode{ModeName: "Arena"})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestTable_InsertUnknownParentIsBadRequest(t *testing.T) {
	db, mock := newMock(t)
	items := NewTable[domain.Item](db, ItemsSpec)

	mock.ExpectQuery(`INSERT INTO item_sales_sheet`).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation})

	err := items.Insert(context.Background(), &domain.Item{ItemTypeID: 99, ItemVersionName: "Sword"})
	assert.ErrorIs(t, err, domain.ErrBadRequest)
}

func TestTable_GetMissingIsNotFound(t *testing.T) {
	db, mock := newMock(t)
	monsters := NewTable[domain.Monster](db, MonstersSpec)

	mock.ExpectQuery(`SELECT monster_id, monster_name, exp_reward FROM monsters WHERE monster_id = \$1`).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"monster_id", "monster_name", "exp_reward"}))

	_, err := monsters.Get(context.Background(), 3)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTable_ListEmptyIsNotNil(t *testing.T) {
	db, mock := newMock(t)
	types := NewTable[domain.ItemType](db, ItemTypesSpec)

	mock.ExpectQuery(`SELECT item_type_id, item_type_name FROM item_types ORDER BY item_type_name`).
		WillReturnRows(sqlmock.NewRows([]string{"item_type_id", "item_type_name"}))

	out, err := types.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestTable_UpdateMissingRowIsNotFound(t *testing.T) {
	db, mock := newMock(t)
	vehicles := NewTable[domain.Vehicle](db, VehiclesSpec)

	mock.ExpectExec(`UPDATE vehicles SET vehicle_name = \$1, description = \$2, purchase_value = \$3 WHERE vehicle_id = \$4`).
		WithArgs("Cart", "", int64(10), int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := vehicles.Update(context.Background(), &domain.Vehicle{VehicleID: 4, VehicleName: "Cart", PurchaseValue: 10})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPlayersSpec_UpdateKeepsEmptyPasswordAndRole(t *testing.T) {
	players := NewTable[domain.Player](nil, PlayersSpec)

	assert.Contains(t, players.updateSQL, "login_password = COALESCE(NULLIF(:login_password, ''), login_password)")
	assert.Contains(t, players.updateSQL, "role = COALESCE(NULLIF(:role, ''), role)")
	assert.Contains(t, players.updateSQL, "WHERE player_id = :player_id")
}

func TestPlayerRepo_UpdatePassword(t *testing.T) {
	db, mock := newMock(t)
	repo := NewPlayerRepo(db)

	mock.ExpectExec(`UPDATE players SET login_password = \$1 WHERE player_id = \$2`).
		WithArgs("hash", int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE players SET login_password`).
		WithArgs("hash", int64(10)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.UpdatePassword(context.Background(), 9, "hash"))
	assert.ErrorIs(t, repo.UpdatePassword(context.Background(), 10, "hash"), domain.ErrNotFound)
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `50\% off\_sale \\o/`, escapeLike(`50% off_sale \o/`))
}

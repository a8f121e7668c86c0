package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/game-admin-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// --- mocks ---

type mockRepo[T any] struct{ mock.Mock }

func (m *mockRepo[T]) List(ctx context.Context) ([]T, error) {
	args := m.Called(ctx)
	return args.Get(0).([]T), args.Error(1)
}
func (m *mockRepo[T]) Get(ctx context.Context, id int64) (*T, error) {
	args := m.Called(ctx, id)
	if v, _ := args.Get(0).(*T); v != nil {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockRepo[T]) Insert(ctx context.Context, rec *T) error {
	return m.Called(ctx, rec).Error(0)
}
func (m *mockRepo[T]) Update(ctx context.Context, rec *T) error {
	return m.Called(ctx, rec).Error(0)
}

type mockDeleter struct{ mock.Mock }

func (m *mockDeleter) Delete(ctx context.Context, kind string, id int64, force bool) error {
	return m.Called(ctx, kind, id, force).Error(0)
}

type mockRecorder struct{ mock.Mock }

func (m *mockRecorder) Record(ctx context.Context, action, entity, description string) {
	m.Called(ctx, action, entity, description)
}

// --- tests ---

func TestCreate_AssignsKeyAndAudits(t *testing.T) {
	repo := &mockRepo[domain.Quest]{}
	repo.On("Insert", mock.Anything, mock.AnythingOfType("*domain.Quest")).
		Run(func(args mock.Arguments) { args.Get(1).(*domain.Quest).QuestID = 42 }).
		Return(nil)
	rec := &mockRecorder{}
	rec.On("Record", mock.Anything, domain.AuditCreate, "Quest", "Created quest: Slay the dragon").Return()

	svc := NewService[domain.Quest, *domain.Quest]("quest", repo, &mockDeleter{}, rec)
	q := &domain.Quest{QuestID: 99, QuestName: "Slay the dragon", RewardExp: 50}
	require.NoError(t, svc.Create(context.Background(), q))
	assert.Equal(t, int64(42), q.QuestID)
	rec.AssertExpectations(t)
}

func TestCreate_ValidationFailureDoesNotWrite(t *testing.T) {
	repo := &mockRepo[domain.Item]{}
	rec := &mockRecorder{}
	svc := NewService[domain.Item, *domain.Item]("item", repo, &mockDeleter{}, rec)

	err := svc.Create(context.Background(), &domain.Item{ItemTypeID: 1, ItemVersionName: "Sword", PurchaseValue: -1})
	assert.True(t, errors.Is(err, domain.ErrBadRequest))
	repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	rec.AssertNotCalled(t, "Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCreate_RepoConflictIsNotAudited(t *testing.T) {
	repo := &mockRepo[domain.GameMode]{}
	repo.On("Insert", mock.Anything, mock.Anything).Return(domain.ErrConflict)
	rec := &mockRecorder{}
	svc := NewService[domain.GameMode, *domain.GameMode]("game-mode", repo, &mockDeleter{}, rec)

	err := svc.Create(context.Background(), &domain.GameMode{ModeName: "Arena"})
	assert.True(t, errors.Is(err, domain.ErrConflict))
	rec.AssertNotCalled(t, "Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdate_IDMismatch(t *testing.T) {
	repo := &mockRepo[domain.Vehicle]{}
	svc := NewService[domain.Vehicle, *domain.Vehicle]("vehicle", repo, &mockDeleter{}, &mockRecorder{})

	err := svc.Update(context.Background(), 3, &domain.Vehicle{VehicleID: 4, VehicleName: "Cart"})
	assert.True(t, errors.Is(err, domain.ErrBadRequest))
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdate_UsesPathIDAndAudits(t *testing.T) {
	repo := &mockRepo[domain.Vehicle]{}
	repo.On("Update", mock.Anything, mock.MatchedBy(func(v *domain.Vehicle) bool { return v.VehicleID == 3 })).Return(nil)
	rec := &mockRecorder{}
	rec.On("Record", mock.Anything, domain.AuditUpdate, "Vehicle", "Updated vehicle: Cart").Return()
	svc := NewService[domain.Vehicle, *domain.Vehicle]("vehicle", repo, &mockDeleter{}, rec)

	require.NoError(t, svc.Update(context.Background(), 3, &domain.Vehicle{VehicleName: "Cart"}))
	rec.AssertExpectations(t)
}

func TestUpdate_NotFound(t *testing.T) {
	repo := &mockRepo[domain.Monster]{}
	repo.On("Update", mock.Anything, mock.Anything).Return(domain.ErrNotFound)
	rec := &mockRecorder{}
	svc := NewService[domain.Monster, *domain.Monster]("monster", repo, &mockDeleter{}, rec)

	err := svc.Update(context.Background(), 8, &domain.Monster{MonsterName: "Slime"})
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	rec.AssertNotCalled(t, "Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDelete_DelegatesWithKind(t *testing.T) {
	del := &mockDeleter{}
	del.On("Delete", mock.Anything, "item-type", int64(5), true).Return(nil)
	svc := NewService[domain.ItemType, *domain.ItemType]("item-type", &mockRepo[domain.ItemType]{}, del, &mockRecorder{})

	require.NoError(t, svc.Delete(context.Background(), 5, true))
	del.AssertExpectations(t)
}

func TestNewService_UnknownKindPanics(t *testing.T) {
	assert.Panics(t, func() {
		NewService[domain.Quest, *domain.Quest]("dragon", &mockRepo[domain.Quest]{}, &mockDeleter{}, &mockRecorder{})
	})
}

func TestPlayerHooks_CreateHashesAndDefaultsRole(t *testing.T) {
	repo := &mockRepo[domain.Player]{}
	repo.On("Insert", mock.Anything, mock.MatchedBy(func(p *domain.Player) bool {
		return p.EmailAccount == "mixed@x.io" && p.Role == domain.RolePlayer && p.Password == "" &&
			bcrypt.CompareHashAndPassword([]byte(p.LoginPassword), []byte("hunter2")) == nil
	})).Return(nil)
	rec := &mockRecorder{}
	rec.On("Record", mock.Anything, domain.AuditCreate, "Player", "Created player: mixed@x.io").Return()

	svc := NewService[domain.Player, *domain.Player]("player", repo, &mockDeleter{}, rec, PlayerHooks()...)
	require.NoError(t, svc.Create(context.Background(), &domain.Player{EmailAccount: "Mixed@X.io", Password: "hunter2"}))
	repo.AssertExpectations(t)
}

func TestPlayerHooks_CreateRequiresPassword(t *testing.T) {
	repo := &mockRepo[domain.Player]{}
	svc := NewService[domain.Player, *domain.Player]("player", repo, &mockDeleter{}, &mockRecorder{}, PlayerHooks()...)

	err := svc.Create(context.Background(), &domain.Player{EmailAccount: "a@x.io"})
	assert.True(t, errors.Is(err, domain.ErrBadRequest))
}

func TestPlayerHooks_UpdateWithoutPasswordKeepsHashEmpty(t *testing.T) {
	repo := &mockRepo[domain.Player]{}
	repo.On("Update", mock.Anything, mock.MatchedBy(func(p *domain.Player) bool {
		return p.PlayerID == 2 && p.LoginPassword == ""
	})).Return(nil)
	rec := &mockRecorder{}
	rec.On("Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return()

	svc := NewService[domain.Player, *domain.Player]("player", repo, &mockDeleter{}, rec, PlayerHooks()...)
	require.NoError(t, svc.Update(context.Background(), 2, &domain.Player{EmailAccount: "a@x.io", ExperiencePoints: 10}))
	repo.AssertExpectations(t)
}

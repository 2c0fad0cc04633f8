//go:build unit

package queries_test

import (
	"context"
	"testing"

	"ordering-service/internal/infra/db"
	"ordering-service/internal/usecase/queries"
	"ordering-service/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type readOnlyUoW struct {
	readOnlyCalls int
}

func (u *readOnlyUoW) Within(_ context.Context, _ func(ctx context.Context, tx shared.Tx) error) error {
	panic("queries must not open a write transaction")
}

func (u *readOnlyUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	u.readOnlyCalls++
	return fn(ctx, nil)
}

type stubViewRepo struct {
	view      *queries.OrderView
	items     []*queries.OrderListItem
	gotLimit  int32
	gotViewID uuid.UUID
}

func (r *stubViewRepo) FindByID(_ context.Context, id uuid.UUID) (*queries.OrderView, error) {
	r.gotViewID = id
	return r.view, nil
}

func (r *stubViewRepo) FindByBuyerID(_ context.Context, _ uuid.UUID, limit int32) ([]*queries.OrderListItem, error) {
	r.gotLimit = limit
	return r.items, nil
}

func setup() (*readOnlyUoW, *stubViewRepo, queries.OrderQueries) {
	uow := &readOnlyUoW{}
	repo := &stubViewRepo{}
	q := queries.NewOrderQueries(uow, func(db.DBTX) queries.OrderViewRepo { return repo })
	return uow, repo, q
}

func TestGetByID(t *testing.T) {
	t.Run("runs inside a read-only transaction", func(t *testing.T) {
		uow, repo, q := setup()
		id := uuid.New()
		repo.view = &queries.OrderView{ID: id, Status: "submitted"}

		view, err := q.GetByID(context.Background(), id)
		require.NoError(t, err)

		assert.Equal(t, repo.view, view)
		assert.Equal(t, id, repo.gotViewID)
		assert.Equal(t, 1, uow.readOnlyCalls)
	})
}

func TestListByBuyer(t *testing.T) {
	t.Run("applies the default limit", func(t *testing.T) {
		uow, repo, q := setup()
		repo.items = []*queries.OrderListItem{{ID: uuid.New()}}

		items, err := q.ListByBuyer(context.Background(), uuid.New(), 0)
		require.NoError(t, err)

		assert.Equal(t, repo.items, items)
		assert.Equal(t, int32(50), repo.gotLimit)
		assert.Equal(t, 1, uow.readOnlyCalls)
	})

	t.Run("keeps an explicit limit", func(t *testing.T) {
		_, repo, q := setup()

		_, err := q.ListByBuyer(context.Background(), uuid.New(), 5)
		require.NoError(t, err)

		assert.Equal(t, int32(5), repo.gotLimit)
	})
}

package cart

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockRepository struct {
	m       sync.Mutex
	saved   map[string][]LineItem
	saveErr error
	loadErr error
	saves   int
}

func newMockRepository() *mockRepository {
	return &mockRepository{saved: make(map[string][]LineItem)}
}

func (m *mockRepository) SaveCart(_ context.Context, sessionID string, items []LineItem) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved[sessionID] = items
	m.saves++
	return nil
}

func (m *mockRepository) LoadCart(_ context.Context, sessionID string) ([]LineItem, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.saved[sessionID], nil
}

func (m *mockRepository) DeleteCart(_ context.Context, sessionID string) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	delete(m.saved, sessionID)
	return nil
}

func sofa(qty int) NewItem {
	return NewItem{ProductID: "P1", Title: "Teak Sofa", UnitPrice: 1000, Quantity: qty}
}

func TestAddItemMergesSameVariant(t *testing.T) {
	ctx := context.Background()
	store := NewStore("s1", newMockRepository())

	_, err := store.AddItem(ctx, sofa(2))
	require.NoError(t, err)
	_, err = store.AddItem(ctx, sofa(3))
	require.NoError(t, err)

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
	assert.Equal(t, 5, store.ItemCount())
}

func TestAddItemDifferentVariantIsNewLine(t *testing.T) {
	ctx := context.Background()
	store := NewStore("s1", newMockRepository())

	_, err := store.AddItem(ctx, sofa(2))
	require.NoError(t, err)

	red := sofa(3)
	red.Color = "red"
	_, err = store.AddItem(ctx, red)
	require.NoError(t, err)

	items := store.Items()
	require.Len(t, items, 2)
	assert.Equal(t, int64(5000), store.Subtotal())
	assert.Equal(t, int64(0), store.ShippingCost()) // exactly at threshold
	assert.Equal(t, int64(5000), store.Total())
}

func TestAddItemFirstWriteWinsOnPrice(t *testing.T) {
	ctx := context.Background()
	store := NewStore("s1", newMockRepository())

	first := sofa(1)
	first.OriginalPrice = 1200
	_, err := store.AddItem(ctx, first)
	require.NoError(t, err)

	// Same variant re-added at a different price: stored prices stay.
	second := sofa(1)
	second.UnitPrice = 900
	second.OriginalPrice = 0
	_, err = store.AddItem(ctx, second)
	require.NoError(t, err)

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, int64(1000), items[0].UnitPrice)
	assert.Equal(t, int64(1200), items[0].OriginalPrice)
}

func TestAddItemDefaultsQuantityToOne(t *testing.T) {
	store := NewStore("s1", newMockRepository())
	line, err := store.AddItem(context.Background(), sofa(0))
	require.NoError(t, err)
	assert.Equal(t, 1, line.Quantity)
}

func TestAddItemKeepsAddedAtOnMerge(t *testing.T) {
	ctx := context.Background()
	store := NewStore("s1", newMockRepository())

	first, err := store.AddItem(ctx, sofa(1))
	require.NoError(t, err)
	merged, err := store.AddItem(ctx, sofa(1))
	require.NoError(t, err)
	assert.Equal(t, first.AddedAt, merged.AddedAt)
}

func TestAddItemInvalid(t *testing.T) {
	ctx := context.Background()
	repo := newMockRepository()
	store := NewStore("s1", repo)

	tests := []struct {
		name string
		item NewItem
	}{
		{"missing product id", NewItem{UnitPrice: 100, Quantity: 1}},
		{"zero unit price", NewItem{ProductID: "P1", Quantity: 1}},
		{"negative unit price", NewItem{ProductID: "P1", UnitPrice: -5, Quantity: 1}},
		{"negative quantity", NewItem{ProductID: "P1", UnitPrice: 100, Quantity: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := store.AddItem(ctx, tt.item)
			assert.ErrorIs(t, err, ErrInvalidLineItem)
		})
	}

	// No mutation, no persistence call.
	assert.Empty(t, store.Items())
	assert.Zero(t, repo.saves)
}

func TestUpdateQuantity(t *testing.T) {
	ctx := context.Background()
	store := NewStore("s1", newMockRepository())

	line, err := store.AddItem(ctx, sofa(2))
	require.NoError(t, err)

	require.NoError(t, store.UpdateQuantity(ctx, line.VariantID, 7))
	assert.Equal(t, 7, store.QuantityOf("P1", "", ""))

	// Zero or negative removes the line item entirely.
	require.NoError(t, store.UpdateQuantity(ctx, line.VariantID, 0))
	assert.Empty(t, store.Items())
	assert.False(t, store.Contains("P1", "", ""))
}

func TestUpdateQuantityAbsentVariantIsNoop(t *testing.T) {
	store := NewStore("s1", newMockRepository())
	assert.NoError(t, store.UpdateQuantity(context.Background(), "nope--", 3))
}

func TestRemoveItemAbsentIsNoop(t *testing.T) {
	store := NewStore("s1", newMockRepository())
	assert.NoError(t, store.RemoveItem(context.Background(), "nope--"))
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	repo := newMockRepository()
	store := NewStore("s1", repo)

	_, err := store.AddItem(ctx, sofa(2))
	require.NoError(t, err)
	require.NoError(t, store.Clear(ctx))

	assert.Empty(t, store.Items())
	assert.Zero(t, store.ItemCount())
	assert.Equal(t, int64(0), store.Subtotal())
	assert.Empty(t, repo.saved["s1"])
}

func TestDerivedTotalsWithSavings(t *testing.T) {
	ctx := context.Background()
	store := NewStore("s1", newMockRepository())

	discounted := NewItem{ProductID: "P2", UnitPrice: 1500, OriginalPrice: 2000, Quantity: 2}
	_, err := store.AddItem(ctx, discounted)
	require.NoError(t, err)

	assert.Equal(t, int64(3000), store.Subtotal())
	assert.Equal(t, int64(1000), store.Savings())
	assert.Equal(t, int64(200), store.ShippingCost())
	assert.Equal(t, int64(2200), store.Total())
}

func TestPersistenceFailureKeepsInMemoryState(t *testing.T) {
	ctx := context.Background()
	repo := newMockRepository()
	repo.saveErr = errors.New("disk full")
	store := NewStore("s1", repo)

	_, err := store.AddItem(ctx, sofa(2))

	var perr *PersistenceError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "save", perr.Op)

	// The in-memory cart remains authoritative for the session.
	assert.Equal(t, 2, store.ItemCount())
}

func TestRehydrate(t *testing.T) {
	ctx := context.Background()
	repo := newMockRepository()

	first := NewStore("s1", repo)
	_, err := first.AddItem(ctx, sofa(4))
	require.NoError(t, err)

	second := NewStore("s1", repo)
	require.NoError(t, second.Rehydrate(ctx))
	assert.Equal(t, 4, second.QuantityOf("P1", "", ""))
}

func TestRehydrateFailure(t *testing.T) {
	repo := newMockRepository()
	repo.loadErr = errors.New("db down")
	store := NewStore("s1", repo)

	var perr *PersistenceError
	require.ErrorAs(t, store.Rehydrate(context.Background()), &perr)
	assert.Equal(t, "load", perr.Op)
}

func TestManagerReturnsSameStorePerSession(t *testing.T) {
	ctx := context.Background()
	m := NewManager(newMockRepository())

	a, err := m.Store(ctx, "s1")
	require.NoError(t, err)
	b, err := m.Store(ctx, "s1")
	require.NoError(t, err)
	assert.Same(t, a, b)

	other, err := m.Store(ctx, "s2")
	require.NoError(t, err)
	assert.NotSame(t, a, other)
}

func TestManagerRehydratesOnFirstUse(t *testing.T) {
	ctx := context.Background()
	repo := newMockRepository()

	seed := NewStore("s1", repo)
	_, err := seed.AddItem(ctx, sofa(2))
	require.NoError(t, err)

	m := NewManager(repo)
	store, err := m.Store(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 2, store.ItemCount())
}

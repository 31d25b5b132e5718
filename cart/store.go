package cart

import (
	"context"
	"sync"
	"time"

	"github.com/VersaiAcademy/ShriFurnitureVillage/pricing"
)

// Store owns the line items of one session's cart. Every mutation is
// written through to the Repository synchronously; a failed write is
// reported as a *PersistenceError but the in-memory mutation stands.
//
// A session is a single logical actor, but nothing stops a browser from
// firing overlapping requests, so mutations are serialized with a mutex.
// Writes to the durable slot happen under the same lock, which keeps the
// last persisted state equal to the latest in-memory state.
type Store struct {
	sessionID string
	repo      Repository

	mu    sync.Mutex
	items []LineItem // insertion order preserved for display
	now   func() time.Time
}

func NewStore(sessionID string, repo Repository) *Store {
	return &Store{
		sessionID: sessionID,
		repo:      repo,
		now:       time.Now,
	}
}

// Rehydrate replaces the in-memory state with the durable slot's
// contents. Called once when a session's store is first constructed.
func (s *Store) Rehydrate(ctx context.Context) error {
	items, err := s.repo.LoadCart(ctx, s.sessionID)
	if err != nil {
		return &PersistenceError{Op: "load", Err: err}
	}
	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
	return nil
}

// AddItem merges the request into an existing line item when the variant
// is already in the cart, otherwise appends a new one. On a merge the
// stored prices win; re-adding a variant never changes them.
func (s *Store) AddItem(ctx context.Context, item NewItem) (LineItem, error) {
	if err := item.validate(); err != nil {
		return LineItem{}, err
	}
	qty := item.Quantity
	if qty == 0 {
		qty = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	variantID := ResolveVariantID(item.ProductID, item.Color, item.Size)
	for i := range s.items {
		if s.items[i].VariantID == variantID {
			s.items[i].Quantity += qty
			return s.items[i], s.persist(ctx)
		}
	}

	line := LineItem{
		VariantID:     variantID,
		ProductID:     item.ProductID,
		Title:         item.Title,
		Image:         item.Image,
		UnitPrice:     item.UnitPrice,
		OriginalPrice: item.OriginalPrice,
		Color:         item.Color,
		Size:          item.Size,
		Quantity:      qty,
		AddedAt:       s.now(),
	}
	s.items = append(s.items, line)
	return line, s.persist(ctx)
}

// RemoveItem deletes the line item with the given variant id. Removing an
// absent variant is a no-op, not an error.
func (s *Store) RemoveItem(ctx context.Context, variantID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].VariantID == variantID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return s.persist(ctx)
		}
	}
	return nil
}

// UpdateQuantity sets the quantity of a line item. A quantity of zero or
// less removes the item; the cart never holds a non-positive quantity.
func (s *Store) UpdateQuantity(ctx context.Context, variantID string, quantity int) error {
	if quantity <= 0 {
		return s.RemoveItem(ctx, variantID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].VariantID == variantID {
			s.items[i].Quantity = quantity
			return s.persist(ctx)
		}
	}
	return nil
}

// Clear empties the cart and persists the empty state.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	if err := s.repo.DeleteCart(ctx, s.sessionID); err != nil {
		return &PersistenceError{Op: "save", Err: err}
	}
	return nil
}

// Items returns a copy of the cart's line items in display order. Callers
// may hold on to the copy; later cart mutations will not touch it.
func (s *Store) Items() []LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]LineItem, len(s.items))
	copy(out, s.items)
	return out
}

// ItemCount is the sum of quantities across all line items.
func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}

// Contains reports whether the given variant is in the cart, using the
// same key derivation as AddItem.
func (s *Store) Contains(productID, color, size string) bool {
	return s.QuantityOf(productID, color, size) > 0
}

// QuantityOf returns the quantity of the given variant, or 0 when it is
// not in the cart.
func (s *Store) QuantityOf(productID, color, size string) int {
	variantID := ResolveVariantID(productID, color, size)
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.items {
		if item.VariantID == variantID {
			return item.Quantity
		}
	}
	return 0
}

// Derived totals. Always recomputed from current state, never cached.

func (s *Store) Subtotal() int64 {
	return pricing.Subtotal(s.pricingLines())
}

func (s *Store) Savings() int64 {
	return pricing.Savings(s.pricingLines())
}

func (s *Store) ShippingCost() int64 {
	return pricing.ShippingCost(pricing.Subtotal(s.pricingLines()))
}

func (s *Store) Total() int64 {
	return pricing.Total(s.pricingLines())
}

func (s *Store) pricingLines() []pricing.Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines := make([]pricing.Line, len(s.items))
	for i, item := range s.items {
		lines[i] = pricing.Line{
			UnitPrice:     item.UnitPrice,
			OriginalPrice: item.OriginalPrice,
			Quantity:      item.Quantity,
		}
	}
	return lines
}

// persist writes the full cart state through to the durable slot. Called
// with s.mu held.
func (s *Store) persist(ctx context.Context) error {
	items := make([]LineItem, len(s.items))
	copy(items, s.items)
	if err := s.repo.SaveCart(ctx, s.sessionID, items); err != nil {
		return &PersistenceError{Op: "save", Err: err}
	}
	return nil
}

package cart

import "context"

// Repository is the durable slot a session's cart is written through to.
// SaveCart replaces the whole slot; LoadCart returns an empty slice for a
// session that has never saved.
type Repository interface {
	SaveCart(ctx context.Context, sessionID string, items []LineItem) error
	LoadCart(ctx context.Context, sessionID string) ([]LineItem, error)
	DeleteCart(ctx context.Context, sessionID string) error
}

package storeclient

import (
	"context"
	"sync"

	"shopfront/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// WishlistManager is the wishlist counterpart of CartManager: session
// snapshot while signed out, server wishlist once a token is set. No
// quantities, and adding a product twice is a no-op.
type WishlistManager struct {
	client  *Client
	session *Session
	logger  zerolog.Logger

	mu      sync.RWMutex
	remote  []model.WishlistItem
	lastErr error
}

// NewWishlistManager creates a wishlist manager over the given client
// and session.
func NewWishlistManager(client *Client, session *Session, logger zerolog.Logger) *WishlistManager {
	return &WishlistManager{
		client:  client,
		session: session,
		logger:  logger.With().Str("component", "wishlist-manager").Logger(),
	}
}

func (m *WishlistManager) remoteMode() bool {
	return m.client.Token() != ""
}

// Products returns the wishlisted products.
func (m *WishlistManager) Products() []model.Product {
	if m.remoteMode() {
		m.mu.RLock()
		defer m.mu.RUnlock()
		products := make([]model.Product, 0, len(m.remote))
		for i := range m.remote {
			if m.remote[i].Product != nil {
				products = append(products, *m.remote[i].Product)
			}
		}
		return products
	}

	return m.session.LocalWishlist()
}

// Has reports whether the product is wishlisted.
func (m *WishlistManager) Has(productID uuid.UUID) bool {
	for _, p := range m.Products() {
		if p.ID == productID {
			return true
		}
	}
	return false
}

// LastError returns the most recent remote failure, or nil.
func (m *WishlistManager) LastError() error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lastErr
}

// Refresh re-fetches the server wishlist. In local mode it is a no-op.
func (m *WishlistManager) Refresh(ctx context.Context) error {
	if !m.remoteMode() {
		return nil
	}

	items, err := m.client.FetchWishlist(ctx)
	if err != nil {
		m.fail(err)
		return err
	}

	m.mu.Lock()
	m.remote = items
	m.lastErr = nil
	m.mu.Unlock()
	return nil
}

// Add puts a product on the wishlist; adding it again is a no-op.
func (m *WishlistManager) Add(ctx context.Context, product model.Product) error {
	if m.remoteMode() {
		if err := m.client.AddWishlistItem(ctx, product.ID); err != nil {
			m.fail(err)
			return err
		}
		return m.Refresh(ctx)
	}

	if m.session.HasLocalWishlistProduct(product.ID) {
		return nil
	}
	return m.session.SetLocalWishlist(append(m.session.LocalWishlist(), product))
}

// Remove takes a product off the wishlist; removing an absent product
// is not an error.
func (m *WishlistManager) Remove(ctx context.Context, productID uuid.UUID) error {
	if m.remoteMode() {
		if err := m.client.RemoveWishlistItem(ctx, productID); err != nil {
			m.fail(err)
			return err
		}
		return m.Refresh(ctx)
	}

	local := m.session.LocalWishlist()
	kept := local[:0]
	for _, p := range local {
		if p.ID != productID {
			kept = append(kept, p)
		}
	}
	return m.session.SetLocalWishlist(kept)
}

// OnLogin switches to remote mode: the server wishlist replaces the
// local one.
func (m *WishlistManager) OnLogin(ctx context.Context) error {
	if err := m.session.SetLocalWishlist(nil); err != nil {
		m.logger.Warn().Err(err).Msg("failed to drop local wishlist")
	}
	return m.Refresh(ctx)
}

// OnLogout switches back to local mode with an empty wishlist.
func (m *WishlistManager) OnLogout() {
	m.mu.Lock()
	m.remote = nil
	m.lastErr = nil
	m.mu.Unlock()
}

func (m *WishlistManager) fail(err error) {
	m.logger.Debug().Err(err).Msg("wishlist call failed")
	m.mu.Lock()
	m.lastErr = err
	m.mu.Unlock()
}

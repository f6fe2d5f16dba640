package storeclient

import (
	"context"
	"sync"

	"shopfront/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// CartManager presents one cart API over two backing stores: the
// session snapshot while signed out (local mode) and the server cart
// once a token is set (remote mode). Remote mutations are issued and
// the authoritative state re-fetched; there is no optimistic update.
// A failed remote call leaves the cached state untouched.
type CartManager struct {
	client  *Client
	session *Session
	logger  zerolog.Logger

	mu      sync.RWMutex
	remote  []model.CartItem
	lastErr error
}

// NewCartManager creates a cart manager over the given client and session.
func NewCartManager(client *Client, session *Session, logger zerolog.Logger) *CartManager {
	return &CartManager{
		client:  client,
		session: session,
		logger:  logger.With().Str("component", "cart-manager").Logger(),
	}
}

// remoteMode reports whether the cart is backed by the server.
func (m *CartManager) remoteMode() bool {
	return m.client.Token() != ""
}

// Items returns the current cart entries.
func (m *CartManager) Items() []model.CartItem {
	if m.remoteMode() {
		m.mu.RLock()
		defer m.mu.RUnlock()
		return append([]model.CartItem(nil), m.remote...)
	}

	local := m.session.LocalCart()
	items := make([]model.CartItem, 0, len(local))
	for i := range local {
		product := local[i].Product
		items = append(items, model.CartItem{
			ProductID: product.ID,
			Quantity:  local[i].Quantity,
			Product:   &product,
		})
	}
	return items
}

// Total returns the cart total using discounted unit prices.
func (m *CartManager) Total() float64 {
	return model.CartTotal(m.Items())
}

// Count returns the summed quantity across entries.
func (m *CartManager) Count() int {
	var count int
	for _, item := range m.Items() {
		count += item.Quantity
	}
	return count
}

// LastError returns the most recent remote failure, or nil.
func (m *CartManager) LastError() error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lastErr
}

// Refresh re-fetches the server cart. In local mode it is a no-op.
func (m *CartManager) Refresh(ctx context.Context) error {
	if !m.remoteMode() {
		return nil
	}

	cart, err := m.client.FetchCart(ctx)
	if err != nil {
		m.fail(err)
		return err
	}

	m.mu.Lock()
	m.remote = cart.Items
	m.lastErr = nil
	m.mu.Unlock()
	return nil
}

// Add puts a product in the cart. Adding a product already present
// increments its quantity; the cart never holds two entries for one
// product.
func (m *CartManager) Add(ctx context.Context, product model.Product, quantity int) error {
	if quantity < 1 {
		return model.ErrInvalidQuantity
	}

	if m.remoteMode() {
		if err := m.client.AddCartItem(ctx, product.ID, quantity); err != nil {
			m.fail(err)
			return err
		}
		return m.Refresh(ctx)
	}

	local := m.session.LocalCart()
	found := false
	for i := range local {
		if local[i].Product.ID == product.ID {
			local[i].Quantity += quantity
			found = true
			break
		}
	}
	if !found {
		local = append(local, LocalCartItem{Product: product, Quantity: quantity})
	}
	return m.session.SetLocalCart(local)
}

// UpdateQuantity replaces an entry's quantity. A quantity below 1
// removes the entry instead.
func (m *CartManager) UpdateQuantity(ctx context.Context, productID uuid.UUID, quantity int) error {
	if quantity < 1 {
		return m.Remove(ctx, productID)
	}

	if m.remoteMode() {
		if err := m.client.UpdateCartItem(ctx, productID, quantity); err != nil {
			m.fail(err)
			return err
		}
		return m.Refresh(ctx)
	}

	local := m.session.LocalCart()
	for i := range local {
		if local[i].Product.ID == productID {
			local[i].Quantity = quantity
			return m.session.SetLocalCart(local)
		}
	}
	return nil
}

// Remove deletes an entry; removing an absent entry is not an error.
func (m *CartManager) Remove(ctx context.Context, productID uuid.UUID) error {
	if m.remoteMode() {
		if err := m.client.RemoveCartItem(ctx, productID); err != nil {
			m.fail(err)
			return err
		}
		return m.Refresh(ctx)
	}

	local := m.session.LocalCart()
	kept := local[:0]
	for _, item := range local {
		if item.Product.ID != productID {
			kept = append(kept, item)
		}
	}
	return m.session.SetLocalCart(kept)
}

// Clear empties the cart.
func (m *CartManager) Clear(ctx context.Context) error {
	if m.remoteMode() {
		if err := m.client.ClearCart(ctx); err != nil {
			m.fail(err)
			return err
		}
		m.mu.Lock()
		m.remote = nil
		m.mu.Unlock()
		return nil
	}

	return m.session.SetLocalCart(nil)
}

// OnLogin switches to remote mode: the server cart replaces whatever
// was in the local one, which is discarded rather than merged.
func (m *CartManager) OnLogin(ctx context.Context) error {
	if err := m.session.SetLocalCart(nil); err != nil {
		m.logger.Warn().Err(err).Msg("failed to drop local cart")
	}
	return m.Refresh(ctx)
}

// OnLogout switches back to local mode with an empty cart.
func (m *CartManager) OnLogout() {
	m.mu.Lock()
	m.remote = nil
	m.lastErr = nil
	m.mu.Unlock()
}

func (m *CartManager) fail(err error) {
	m.logger.Debug().Err(err).Msg("cart call failed")
	m.mu.Lock()
	m.lastErr = err
	m.mu.Unlock()
}

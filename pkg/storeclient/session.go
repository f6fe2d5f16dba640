package storeclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"shopfront/internal/model"

	"github.com/google/uuid"
)

// LocalCartItem is a cart entry kept in the session snapshot while
// signed out. The product is captured at add time so the cart can be
// rendered without refetching.
type LocalCartItem struct {
	Product  model.Product `json:"product"`
	Quantity int           `json:"quantity"`
}

// snapshot is the persisted session state.
type snapshot struct {
	Token     string           `json:"token,omitempty"`
	Language  string           `json:"language,omitempty"`
	Cart      []LocalCartItem  `json:"cart,omitempty"`
	Wishlist  []model.Product  `json:"wishlist,omitempty"`
	Languages []model.Language `json:"languages,omitempty"`
}

// Session owns the persisted client state: the auth token, the local
// cart and wishlist used while signed out, and the chosen language.
// State is written through to a JSON file on every mutation.
type Session struct {
	path string

	mu   sync.RWMutex
	data snapshot
}

// OpenSession loads the session snapshot at path, creating an empty
// session when the file does not exist yet.
func OpenSession(path string) (*Session, error) {
	s := &Session{path: path}

	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}
	if err := json.Unmarshal(raw, &s.data); err != nil {
		// A corrupt snapshot is discarded rather than wedging startup.
		s.data = snapshot{}
	}
	return s, nil
}

// save writes the snapshot to disk. Callers hold the lock.
func (s *Session) save() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create session directory: %w", err)
		}
	}
	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return nil
}

// Token returns the persisted auth token, or "".
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Token
}

// SetToken persists the auth token. An empty token signs the session out.
func (s *Session) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Token = token
	return s.save()
}

// Language returns the persisted language choice, or "".
func (s *Session) Language() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Language
}

// SetLanguage persists the language choice.
func (s *Session) SetLanguage(language string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Language = language
	return s.save()
}

// CachedLanguages returns the last fetched language list.
func (s *Session) CachedLanguages() []model.Language {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Language(nil), s.data.Languages...)
}

// SetCachedLanguages persists the language list for offline starts.
func (s *Session) SetCachedLanguages(languages []model.Language) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Languages = append([]model.Language(nil), languages...)
	return s.save()
}

// LocalCart returns a copy of the signed-out cart.
func (s *Session) LocalCart() []LocalCartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]LocalCartItem(nil), s.data.Cart...)
}

// SetLocalCart replaces the signed-out cart.
func (s *Session) SetLocalCart(items []LocalCartItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Cart = append([]LocalCartItem(nil), items...)
	return s.save()
}

// LocalWishlist returns a copy of the signed-out wishlist.
func (s *Session) LocalWishlist() []model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Product(nil), s.data.Wishlist...)
}

// SetLocalWishlist replaces the signed-out wishlist.
func (s *Session) SetLocalWishlist(products []model.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Wishlist = append([]model.Product(nil), products...)
	return s.save()
}

// HasLocalWishlistProduct reports whether the product is on the
// signed-out wishlist.
func (s *Session) HasLocalWishlistProduct(productID uuid.UUID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.data.Wishlist {
		if p.ID == productID {
			return true
		}
	}
	return false
}

// Clear wipes the whole snapshot, including the persisted file.
func (s *Session) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = snapshot{}
	return s.save()
}

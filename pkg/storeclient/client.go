// Package storeclient is a Go client for the shopfront REST API. It
// carries the storefront-side behaviour: session persistence, the auth
// gate, cart and wishlist managers that work both signed-out (local)
// and signed-in (remote), translation resolution and debounced search.
package storeclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"shopfront/internal/i18n"
	"shopfront/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ErrUnauthorized is returned when the server rejects the bearer token.
var ErrUnauthorized = errors.New("storeclient: unauthorized")

// Client is a REST client for the shopfront API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger

	mu    sync.RWMutex
	token string
}

// NewClient creates a client for the API at baseURL.
func NewClient(baseURL string, logger zerolog.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		logger:     logger.With().Str("component", "store-client").Logger(),
	}
}

// SetToken sets the bearer token sent with subsequent requests. An
// empty token clears it.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// Token returns the current bearer token, or "" when signed out.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// apiError is the error body shape returned by the server.
type apiError struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// do performs a request and decodes the JSON response into out when
// out is non-nil.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	if resp.StatusCode >= 400 {
		var apiErr apiError
		if decodeErr := json.NewDecoder(resp.Body).Decode(&apiErr); decodeErr == nil && apiErr.Error.Message != "" {
			return fmt.Errorf("%s %s: %s", method, path, apiErr.Error.Message)
		}
		return fmt.Errorf("%s %s: %s", method, path, http.StatusText(resp.StatusCode))
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// ProductQuery filters a product listing.
type ProductQuery struct {
	CategoryID *uuid.UUID
	Query      string
	Featured   bool
	SortNewest bool
	Limit      int
	Offset     int
}

func (q ProductQuery) encode() string {
	values := url.Values{}
	if q.CategoryID != nil {
		values.Set("category", q.CategoryID.String())
	}
	if q.Query != "" {
		values.Set("q", q.Query)
	}
	if q.Featured {
		values.Set("featured", "true")
	}
	if q.SortNewest {
		values.Set("sort", "newest")
	}
	if q.Limit > 0 {
		values.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Offset > 0 {
		values.Set("offset", strconv.Itoa(q.Offset))
	}
	if len(values) == 0 {
		return ""
	}
	return "?" + values.Encode()
}

// Products lists products matching the query.
func (c *Client) Products(ctx context.Context, query ProductQuery) ([]model.Product, error) {
	var products []model.Product
	if err := c.do(ctx, http.MethodGet, "/api/products"+query.encode(), nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Product fetches one product.
func (c *Client) Product(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	var product model.Product
	if err := c.do(ctx, http.MethodGet, "/api/products/"+id.String(), nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// RelatedProducts fetches products sharing the given product's category.
func (c *Client) RelatedProducts(ctx context.Context, id uuid.UUID, limit int) ([]model.Product, error) {
	path := "/api/products/" + id.String() + "/related"
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}
	var products []model.Product
	if err := c.do(ctx, http.MethodGet, path, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Categories lists all categories.
func (c *Client) Categories(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	if err := c.do(ctx, http.MethodGet, "/api/categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// Languages lists the supported languages.
func (c *Client) Languages(ctx context.Context) ([]model.Language, error) {
	var languages []model.Language
	if err := c.do(ctx, http.MethodGet, "/api/languages", nil, &languages); err != nil {
		return nil, err
	}
	return languages, nil
}

// TranslationBundle fetches the nested translation mapping for a language.
func (c *Client) TranslationBundle(ctx context.Context, language string) (i18n.Bundle, error) {
	var bundle i18n.Bundle
	if err := c.do(ctx, http.MethodGet, "/api/translations/"+url.PathEscape(language), nil, &bundle); err != nil {
		return nil, err
	}
	return bundle, nil
}

// Register creates an account and returns the session token.
func (c *Client) Register(ctx context.Context, req model.RegisterRequest) (*model.AuthResponse, error) {
	var resp model.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Login exchanges credentials for a session token.
func (c *Client) Login(ctx context.Context, req model.LoginRequest) (*model.AuthResponse, error) {
	var resp model.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Me returns the user behind the current token.
func (c *Client) Me(ctx context.Context) (*model.User, error) {
	var user model.User
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Logout asks the server to revoke the current token.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/api/auth/logout", nil, nil)
}

// CartResponse mirrors the server cart payload.
type CartResponse struct {
	Items []model.CartItem `json:"items"`
	Total float64          `json:"total"`
}

// FetchCart retrieves the server-side cart.
func (c *Client) FetchCart(ctx context.Context) (*CartResponse, error) {
	var cart CartResponse
	if err := c.do(ctx, http.MethodGet, "/api/cart", nil, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

// AddCartItem adds a product to the server-side cart.
func (c *Client) AddCartItem(ctx context.Context, productID uuid.UUID, quantity int) error {
	return c.do(ctx, http.MethodPost, "/api/cart/items", model.AddToCartRequest{
		ProductID: productID,
		Quantity:  quantity,
	}, nil)
}

// UpdateCartItem replaces a cart entry's quantity on the server.
func (c *Client) UpdateCartItem(ctx context.Context, productID uuid.UUID, quantity int) error {
	return c.do(ctx, http.MethodPut, "/api/cart/items/"+productID.String(), model.UpdateCartItemRequest{
		Quantity: quantity,
	}, nil)
}

// RemoveCartItem removes a product from the server-side cart.
func (c *Client) RemoveCartItem(ctx context.Context, productID uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/api/cart/items/"+productID.String(), nil, nil)
}

// ClearCart empties the server-side cart.
func (c *Client) ClearCart(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/api/cart", nil, nil)
}

// FetchWishlist retrieves the server-side wishlist.
func (c *Client) FetchWishlist(ctx context.Context) ([]model.WishlistItem, error) {
	var items []model.WishlistItem
	if err := c.do(ctx, http.MethodGet, "/api/wishlist", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// AddWishlistItem adds a product to the server-side wishlist.
func (c *Client) AddWishlistItem(ctx context.Context, productID uuid.UUID) error {
	return c.do(ctx, http.MethodPost, "/api/wishlist/items", model.AddToWishlistRequest{
		ProductID: productID,
	}, nil)
}

// RemoveWishlistItem removes a product from the server-side wishlist.
func (c *Client) RemoveWishlistItem(ctx context.Context, productID uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/api/wishlist/items/"+productID.String(), nil, nil)
}

// CreateOrder places an order from the given items.
func (c *Client) CreateOrder(ctx context.Context, req model.OrderRequest) (*model.Order, error) {
	var order model.Order
	if err := c.do(ctx, http.MethodPost, "/api/orders", req, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// Orders lists the caller's orders, newest first.
func (c *Client) Orders(ctx context.Context, limit, offset int) ([]model.Order, error) {
	values := url.Values{}
	if limit > 0 {
		values.Set("limit", strconv.Itoa(limit))
	}
	if offset > 0 {
		values.Set("offset", strconv.Itoa(offset))
	}
	path := "/api/orders"
	if len(values) > 0 {
		path += "?" + values.Encode()
	}
	var orders []model.Order
	if err := c.do(ctx, http.MethodGet, path, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// Order fetches one of the caller's orders.
func (c *Client) Order(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	var order model.Order
	if err := c.do(ctx, http.MethodGet, "/api/orders/"+id.String(), nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

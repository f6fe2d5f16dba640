package storeclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"shopfront/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWishlistManager_LocalAddTwiceIsNoOp(t *testing.T) {
	ctx := context.Background()
	session := newTestSession(t)
	client := NewClient("http://unused", zerolog.Nop())
	wishlist := NewWishlistManager(client, session, zerolog.Nop())

	lamp := testProduct("Lamp", 10.00, 0)

	require.NoError(t, wishlist.Add(ctx, lamp))
	require.NoError(t, wishlist.Add(ctx, lamp))

	products := wishlist.Products()
	require.Len(t, products, 1)
	assert.Equal(t, "Lamp", products[0].Name)
	assert.True(t, wishlist.Has(lamp.ID))
}

func TestWishlistManager_LocalRemoveAbsentIsNotAnError(t *testing.T) {
	ctx := context.Background()
	session := newTestSession(t)
	client := NewClient("http://unused", zerolog.Nop())
	wishlist := NewWishlistManager(client, session, zerolog.Nop())

	require.NoError(t, wishlist.Remove(ctx, uuid.New()))

	lamp := testProduct("Lamp", 10.00, 0)
	require.NoError(t, wishlist.Add(ctx, lamp))
	require.NoError(t, wishlist.Remove(ctx, lamp.ID))
	assert.Empty(t, wishlist.Products())
	assert.False(t, wishlist.Has(lamp.ID))
}

func TestWishlistManager_LocalWishlistSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session.json")

	session, err := OpenSession(path)
	require.NoError(t, err)
	client := NewClient("http://unused", zerolog.Nop())
	wishlist := NewWishlistManager(client, session, zerolog.Nop())
	require.NoError(t, wishlist.Add(ctx, testProduct("Lamp", 10.00, 0)))

	reopened, err := OpenSession(path)
	require.NoError(t, err)
	wishlist2 := NewWishlistManager(client, reopened, zerolog.Nop())

	products := wishlist2.Products()
	require.Len(t, products, 1)
	assert.Equal(t, "Lamp", products[0].Name)
}

func TestWishlistManager_LoginReplacesLocalWishlist(t *testing.T) {
	ctx := context.Background()

	serverProduct := testProduct("Server Chair", 50.00, 0)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/wishlist", r.URL.Path)
		require.Equal(t, "Bearer server-token", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode([]model.WishlistItem{{
			ID:        uuid.New(),
			ProductID: serverProduct.ID,
			Product:   &serverProduct,
		}})
	}))
	defer server.Close()

	session := newTestSession(t)
	client := NewClient(server.URL, zerolog.Nop())
	wishlist := NewWishlistManager(client, session, zerolog.Nop())

	// Wishlist a product while signed out.
	require.NoError(t, wishlist.Add(ctx, testProduct("Local Lamp", 10.00, 0)))
	require.Len(t, wishlist.Products(), 1)

	// Sign in: the server wishlist replaces the local one, nothing merges.
	client.SetToken("server-token")
	require.NoError(t, wishlist.OnLogin(ctx))

	products := wishlist.Products()
	require.Len(t, products, 1)
	assert.Equal(t, "Server Chair", products[0].Name)
	assert.Empty(t, session.LocalWishlist())
}

func TestWishlistManager_RemoteFailureLeavesStateUntouched(t *testing.T) {
	ctx := context.Background()

	product := testProduct("Chair", 20.00, 0)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error": {"code": "INTERNAL_ERROR", "message": "boom"}}`))
			return
		}
		json.NewEncoder(w).Encode([]model.WishlistItem{{
			ID:        uuid.New(),
			ProductID: product.ID,
			Product:   &product,
		}})
	}))
	defer server.Close()

	session := newTestSession(t)
	client := NewClient(server.URL, zerolog.Nop())
	client.SetToken("token")
	wishlist := NewWishlistManager(client, session, zerolog.Nop())

	require.NoError(t, wishlist.Refresh(ctx))
	require.Len(t, wishlist.Products(), 1)

	err := wishlist.Add(ctx, testProduct("Lamp", 10.00, 0))

	require.Error(t, err)
	assert.Len(t, wishlist.Products(), 1)
	assert.Error(t, wishlist.LastError())
}

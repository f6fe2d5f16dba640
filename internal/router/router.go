package router

import (
	"net/http"

	"shopfront/internal/handler"
	"shopfront/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// Handlers bundles the HTTP handlers wired into the route tree.
type Handlers struct {
	Auth        *handler.AuthHandler
	Product     *handler.ProductHandler
	Category    *handler.CategoryHandler
	Cart        *handler.CartHandler
	Wishlist    *handler.WishlistHandler
	Order       *handler.OrderHandler
	User        *handler.UserHandler
	Translation *handler.TranslationHandler
	Stats       *handler.StatsHandler
}

// New creates the HTTP router with all routes and middleware configured.
// Public routes serve the storefront; /api/cart, /api/wishlist and
// /api/orders require a bearer token; /api/admin additionally requires
// the admin role.
func New(h Handlers, verifier middleware.TokenVerifier, logger zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	r.Route("/api", func(r chi.Router) {
		// Public storefront routes
		r.Post("/auth/register", h.Auth.Register)
		r.Post("/auth/login", h.Auth.Login)
		r.Post("/auth/logout", h.Auth.Logout)

		r.Get("/products", h.Product.List)
		r.Get("/products/{id}", h.Product.GetByID)
		r.Get("/products/{id}/related", h.Product.Related)

		r.Get("/categories", h.Category.List)
		r.Get("/categories/{id}", h.Category.GetByID)

		r.Get("/languages", h.Translation.Languages)
		r.Get("/translations/{language}", h.Translation.Bundle)

		// Authenticated customer routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth(verifier, logger))

			r.Get("/auth/me", h.Auth.Me)

			r.Get("/cart", h.Cart.Get)
			r.Delete("/cart", h.Cart.Clear)
			r.Post("/cart/items", h.Cart.Add)
			r.Put("/cart/items/{id}", h.Cart.UpdateQuantity)
			r.Delete("/cart/items/{id}", h.Cart.Remove)

			r.Get("/wishlist", h.Wishlist.Get)
			r.Delete("/wishlist", h.Wishlist.Clear)
			r.Post("/wishlist/items", h.Wishlist.Add)
			r.Delete("/wishlist/items/{id}", h.Wishlist.Remove)

			r.Post("/orders", h.Order.Create)
			r.Get("/orders", h.Order.ListMine)
			r.Get("/orders/{id}", h.Order.GetByID)
			r.Get("/orders/{id}/status-options", h.Order.StatusOptions)
		})

		// Admin routes
		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.RequireAuth(verifier, logger))
			r.Use(middleware.RequireAdmin(logger))

			r.Get("/stats", h.Stats.Dashboard)

			r.Post("/products", h.Product.Create)
			r.Put("/products/{id}", h.Product.Update)
			r.Delete("/products/{id}", h.Product.Delete)

			r.Post("/categories", h.Category.Create)
			r.Put("/categories/{id}", h.Category.Update)
			r.Delete("/categories/{id}", h.Category.Delete)

			r.Get("/orders", h.Order.ListAll)
			r.Patch("/orders/{id}/status", h.Order.UpdateStatus)
			r.Patch("/orders/{id}/payment-status", h.Order.UpdatePaymentStatus)

			r.Get("/users", h.User.List)
			r.Get("/users/{id}", h.User.GetDetail)
			r.Patch("/users/{id}/status", h.User.UpdateStatus)

			r.Get("/translations", h.Translation.List)
			r.Put("/translations", h.Translation.Upsert)
			r.Delete("/translations/{id}", h.Translation.Delete)
		})
	})

	return r
}

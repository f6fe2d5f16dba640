// Command seed loads a demo catalogue into the database: categories,
// products, an admin account and a handful of translations. Running it
// twice is safe; existing rows are left alone.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"shopfront/internal/auth"
	"shopfront/internal/config"
	"shopfront/internal/database"
	"shopfront/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("seeding demo data")

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := database.RunMigrations(cfg.Database, logger); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	if err := seedAdmin(ctx, pool, logger); err != nil {
		return err
	}
	if err := seedCatalogue(ctx, pool, logger); err != nil {
		return err
	}
	if err := seedTranslations(ctx, pool, logger); err != nil {
		return err
	}

	logger.Info().Msg("seed completed")
	return nil
}

// seedAdmin creates the demo admin account unless one already exists.
func seedAdmin(ctx context.Context, pool *pgxpool.Pool, logger zerolog.Logger) error {
	const email = "admin@shopfront.local"

	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		password = "changeme123"
		logger.Warn().Msg("SEED_ADMIN_PASSWORD not set, using the default demo password")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	tag, err := pool.Exec(ctx,
		`INSERT INTO users (id, name, email, password_hash, role, status)
		 VALUES ($1, 'Store Admin', $2, $3, $4, $5)
		 ON CONFLICT (email) DO NOTHING`,
		uuid.New(), email, hash, model.RoleAdmin, model.UserStatusActive,
	)
	if err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}
	if tag.RowsAffected() > 0 {
		logger.Info().Str("email", email).Msg("admin account created")
	}
	return nil
}

type demoProduct struct {
	name        string
	description string
	price       float64
	discount    int
	category    string
	featured    bool
}

// seedCatalogue inserts the demo categories and products. The catalogue
// is keyed by name so re-running the command does not duplicate rows.
func seedCatalogue(ctx context.Context, pool *pgxpool.Pool, logger zerolog.Logger) error {
	categories := map[string]string{
		"Furniture":   "Desks, chairs and shelving",
		"Lighting":    "Lamps and fixtures",
		"Kitchen":     "Cookware and tableware",
		"Electronics": "Small home electronics",
	}

	categoryIDs := make(map[string]uuid.UUID, len(categories))
	for name, description := range categories {
		var id uuid.UUID
		err := pool.QueryRow(ctx, "SELECT id FROM categories WHERE name = $1", name).Scan(&id)
		if err != nil {
			id = uuid.New()
			_, err = pool.Exec(ctx,
				"INSERT INTO categories (id, name, description) VALUES ($1, $2, $3)",
				id, name, description,
			)
			if err != nil {
				return fmt.Errorf("failed to seed category %s: %w", name, err)
			}
		}
		categoryIDs[name] = id
	}

	products := []demoProduct{
		{"Walnut Desk", "Solid walnut writing desk, 120cm", 249.99, 0, "Furniture", true},
		{"Oak Bookshelf", "Five-shelf oak bookcase", 189.00, 10, "Furniture", false},
		{"Ergonomic Chair", "Mesh-back office chair with lumbar support", 329.00, 15, "Furniture", true},
		{"Brass Floor Lamp", "Adjustable reading lamp, warm white", 89.50, 0, "Lighting", false},
		{"Ceramic Pendant Light", "Hand-glazed pendant, E27 fitting", 64.00, 20, "Lighting", false},
		{"Cast Iron Skillet", "28cm pre-seasoned skillet", 39.99, 0, "Kitchen", true},
		{"Stoneware Dinner Set", "16-piece set for four", 74.50, 5, "Kitchen", false},
		{"Pour-Over Kettle", "Gooseneck kettle, 1 litre", 44.00, 0, "Kitchen", false},
		{"Bluetooth Speaker", "Portable speaker, 12h battery", 59.99, 25, "Electronics", true},
		{"Smart Plug Duo", "Two app-controlled plugs", 24.99, 0, "Electronics", false},
	}

	seeded := 0
	for _, p := range products {
		var exists bool
		err := pool.QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM products WHERE name = $1)", p.name).Scan(&exists)
		if err != nil {
			return fmt.Errorf("failed to check product %s: %w", p.name, err)
		}
		if exists {
			continue
		}

		categoryID := categoryIDs[p.category]
		_, err = pool.Exec(ctx,
			`INSERT INTO products (id, name, description, price, discount, category_id, in_stock, featured)
			 VALUES ($1, $2, $3, $4, $5, $6, TRUE, $7)`,
			uuid.New(), p.name, p.description, p.price, p.discount, categoryID, p.featured,
		)
		if err != nil {
			return fmt.Errorf("failed to seed product %s: %w", p.name, err)
		}
		seeded++
	}

	logger.Info().Int("products", seeded).Msg("catalogue seeded")
	return nil
}

// seedTranslations inserts a starter set of interface strings for the
// languages the migration ships with.
func seedTranslations(ctx context.Context, pool *pgxpool.Pool, logger zerolog.Logger) error {
	entries := map[string]map[string]string{
		"en": {
			"nav.home":     "Home",
			"nav.cart":     "Cart",
			"nav.wishlist": "Wishlist",
			"nav.orders":   "Orders",
		},
		"ur": {
			"nav.home": "گھر",
			"nav.cart": "ٹوکری",
		},
		"fr": {
			"nav.home": "Accueil",
			"nav.cart": "Panier",
		},
	}

	for language, pairs := range entries {
		for key, value := range pairs {
			_, err := pool.Exec(ctx,
				`INSERT INTO translations (id, language, key, value, updated_at)
				 VALUES ($1, $2, $3, $4, NOW())
				 ON CONFLICT (language, key) DO NOTHING`,
				uuid.New(), language, key, value,
			)
			if err != nil {
				return fmt.Errorf("failed to seed translation %s/%s: %w", language, key, err)
			}
		}
	}

	logger.Info().Msg("translations seeded")
	return nil
}

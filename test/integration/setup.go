package integration

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"shopfront/internal/model"

	"github.com/golang-migrate/migrate/v4"
	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDB represents a test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	ConnStr   string
}

// SetupTestDB creates a PostgreSQL test container, applies the real
// migrations and returns a connection pool.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	applyMigrations(t, connStr)

	poolConfig, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		t.Fatalf("failed to parse connection string: %v", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	if err := pool.Ping(ctx); err != nil {
		t.Fatalf("failed to ping database: %v", err)
	}

	t.Cleanup(func() {
		pool.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: postgresContainer,
		Pool:      pool,
		ConnStr:   connStr,
	}
}

// applyMigrations runs the real migration files against the container.
func applyMigrations(t *testing.T, connStr string) {
	t.Helper()

	db, err := sql.Open("pgx", connStr)
	if err != nil {
		t.Fatalf("failed to open database for migrations: %v", err)
	}
	defer db.Close()

	driver, err := migratepgx.WithInstance(db, &migratepgx.Config{})
	if err != nil {
		t.Fatalf("failed to create migration driver: %v", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://../../migrations", "testdb", driver)
	if err != nil {
		t.Fatalf("failed to create migrate instance: %v", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		t.Fatalf("failed to run migrations: %v", err)
	}
}

// TestCatalog holds the IDs of the seeded demo rows.
type TestCatalog struct {
	CategoryID uuid.UUID
	Products   []model.Product
}

// SeedCatalog inserts a category and a handful of products.
func SeedCatalog(t *testing.T, pool *pgxpool.Pool) TestCatalog {
	t.Helper()

	ctx := context.Background()

	categoryID := uuid.New()
	_, err := pool.Exec(ctx,
		"INSERT INTO categories (id, name, description) VALUES ($1, $2, $3)",
		categoryID, "Test Category", "Seeded for integration tests",
	)
	if err != nil {
		t.Fatalf("failed to seed category: %v", err)
	}

	products := []model.Product{
		{ID: uuid.New(), Name: "Test Product 1", Price: 10.00, Discount: 0, CategoryID: &categoryID, InStock: true},
		{ID: uuid.New(), Name: "Test Product 2", Price: 20.00, Discount: 10, CategoryID: &categoryID, InStock: true},
		{ID: uuid.New(), Name: "Test Product 3", Price: 30.00, Discount: 0, CategoryID: &categoryID, InStock: true, Featured: true},
		{ID: uuid.New(), Name: "Test Product 4", Price: 40.00, Discount: 25, CategoryID: &categoryID, InStock: false},
		{ID: uuid.New(), Name: "Test Product 5", Price: 50.00, Discount: 0, InStock: true},
	}

	for _, p := range products {
		_, err := pool.Exec(ctx,
			`INSERT INTO products (id, name, description, price, discount, category_id, in_stock, featured)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			p.ID, p.Name, p.Description, p.Price, p.Discount, p.CategoryID, p.InStock, p.Featured,
		)
		if err != nil {
			t.Fatalf("failed to seed product %s: %v", p.Name, err)
		}
	}

	return TestCatalog{CategoryID: categoryID, Products: products}
}

// CleanupDB clears all data tables. The languages table keeps its
// migration seed.
func CleanupDB(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	tables := []string{
		"order_items", "orders",
		"cart_items", "wishlist_items",
		"translations",
		"users",
		"products", "categories",
	}
	for _, table := range tables {
		_, err := pool.Exec(ctx, fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}
}

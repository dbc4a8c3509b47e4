package repository

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/sangkips/ventes-dashboard/internal/config"
	"github.com/sangkips/ventes-dashboard/internal/domain/entity"
	"github.com/sangkips/ventes-dashboard/internal/infrastructure/database"
	"github.com/sangkips/ventes-dashboard/pkg/apperror"
	"github.com/sangkips/ventes-dashboard/pkg/logger"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// Use a unique in-memory database per test to avoid cross-test collisions.
	db, err := database.Open(&config.DatabaseConfig{
		Driver: "sqlite",
		Path:   "file:" + t.Name() + "?mode=memory&cache=shared",
	}, logger.Discard())
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func strPtr(s string) *string { return &s }

func TestSaleListJoinsProductAndClient(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	products := NewProductRepository(db)
	clients := NewClientRepository(db)
	sales := NewSaleRepository(db)

	p := &entity.Product{Name: "Stylo", Category: "Papeterie", UnitPrice: decimal.RequireFromString("10.00")}
	if err := products.Create(ctx, p); err != nil {
		t.Fatalf("create product: %v", err)
	}
	c := &entity.Client{Name: "Alice", Email: strPtr("alice@example.com")}
	if err := clients.Create(ctx, c); err != nil {
		t.Fatalf("create client: %v", err)
	}

	day := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	withClient := &entity.Sale{SaleDate: day, ProductID: p.ID, ClientID: &c.ID, Quantity: 3, Amount: decimal.NewFromInt(30)}
	anonymous := &entity.Sale{SaleDate: day, ProductID: p.ID, Quantity: 1, Amount: decimal.NewFromInt(10)}
	for _, s := range []*entity.Sale{withClient, anonymous} {
		if err := sales.Create(ctx, s); err != nil {
			t.Fatalf("create sale: %v", err)
		}
	}

	rows, err := sales.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}

	first := rows[0]
	if first.Product != "Stylo" || first.Category != "Papeterie" {
		t.Fatalf("unexpected product columns: %+v", first)
	}
	if first.Client == nil || *first.Client != "Alice" {
		t.Fatalf("expected client Alice, got %v", first.Client)
	}
	if first.Quantity != 3 || !first.Amount.Equal(decimal.NewFromInt(30)) {
		t.Fatalf("expected quantity 3 and amount 30, got %d / %s", first.Quantity, first.Amount)
	}
	if !strings.Contains(first.SaleDate, "2024-01-05") {
		t.Fatalf("unexpected sale date %q", first.SaleDate)
	}
	if rows[1].Client != nil {
		t.Fatalf("expected no client on anonymous sale, got %q", *rows[1].Client)
	}
}

func TestGetByIDReturnsNilWhenMissing(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	product, err := NewProductRepository(db).GetByID(ctx, 42)
	if err != nil || product != nil {
		t.Fatalf("expected (nil, nil), got (%v, %v)", product, err)
	}
	client, err := NewClientRepository(db).GetByID(ctx, 42)
	if err != nil || client != nil {
		t.Fatalf("expected (nil, nil), got (%v, %v)", client, err)
	}
}

func TestListProductsAndClientsInInsertOrder(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	products := NewProductRepository(db)
	clients := NewClientRepository(db)

	for _, name := range []string{"A", "B", "C"} {
		if err := products.Create(ctx, &entity.Product{Name: name, Category: "X", UnitPrice: decimal.NewFromInt(1)}); err != nil {
			t.Fatalf("create product: %v", err)
		}
		if err := clients.Create(ctx, &entity.Client{Name: name}); err != nil {
			t.Fatalf("create client: %v", err)
		}
	}

	ps, err := products.List(ctx)
	if err != nil {
		t.Fatalf("list products: %v", err)
	}
	cs, err := clients.List(ctx)
	if err != nil {
		t.Fatalf("list clients: %v", err)
	}
	if len(ps) != 3 || ps[0].Name != "A" || ps[2].Name != "C" {
		t.Fatalf("unexpected products: %+v", ps)
	}
	if len(cs) != 3 || cs[1].Name != "B" || cs[1].Email != nil {
		t.Fatalf("unexpected clients: %+v", cs)
	}
}

func TestStoreFailureIsReportedAsStoreError(t *testing.T) {
	db := setupTestDB(t)
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.Close()

	_, err = NewSaleRepository(db).List(context.Background())
	if !apperror.IsKind(err, apperror.KindStore) {
		t.Fatalf("expected store error, got %v", err)
	}
}

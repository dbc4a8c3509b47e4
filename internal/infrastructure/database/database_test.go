package database

import (
	"testing"
	"time"

	"github.com/sangkips/ventes-dashboard/internal/config"
	"github.com/sangkips/ventes-dashboard/internal/domain/entity"
	"github.com/sangkips/ventes-dashboard/pkg/logger"
	"github.com/shopspring/decimal"
)

func openTestDB(t *testing.T) *config.DatabaseConfig {
	t.Helper()
	return &config.DatabaseConfig{
		Driver: "sqlite",
		Path:   "file:" + t.Name() + "?mode=memory&cache=shared",
	}
}

func TestAutoMigrateIsIdempotent(t *testing.T) {
	db, err := Open(openTestDB(t), logger.Discard())
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	for i := 0; i < 2; i++ {
		if err := AutoMigrate(db); err != nil {
			t.Fatalf("migrate run %d: %v", i+1, err)
		}
	}

	for _, table := range []string{"clients", "produits", "ventes"} {
		if !db.Migrator().HasTable(table) {
			t.Fatalf("expected table %s", table)
		}
	}
}

func TestForeignKeysAreEnforced(t *testing.T) {
	db, err := Open(openTestDB(t), logger.Discard())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	sale := entity.Sale{
		SaleDate:  time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		ProductID: 999,
		Quantity:  1,
		Amount:    decimal.NewFromInt(10),
	}
	if err := db.Create(&sale).Error; err == nil {
		t.Fatalf("expected foreign key violation for unknown product")
	}
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	_, err := Open(&config.DatabaseConfig{Driver: "oracle"}, logger.Discard())
	if err == nil {
		t.Fatalf("expected error for unsupported driver")
	}
}

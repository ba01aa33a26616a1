package repo

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Skotchmaster/inventory_service/internal/models"
)

func newTestRepo(t *testing.T) *GormRepo {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
	}

	if err := db.AutoMigrate(&models.Product{}, &models.Order{}, &models.OrderItem{}); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}

	return &GormRepo{DB: db}
}

func createTestProduct(t *testing.T, r *GormRepo, name string, amountLeft int) *models.Product {
	t.Helper()

	product := &models.Product{
		Name:        name,
		Description: "test_description",
		Price:       decimal.NewFromInt(10),
		AmountLeft:  amountLeft,
	}
	require.NoError(t, r.CreateProduct(context.Background(), product))
	return product
}

package service

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Skotchmaster/inventory_service/internal/domain"
	"github.com/Skotchmaster/inventory_service/internal/models"
	"github.com/Skotchmaster/inventory_service/internal/repo"
	"github.com/Skotchmaster/inventory_service/internal/transport"
)

func newTestServices(t *testing.T) (*ProductService, *OrderService) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
	}

	if err := db.AutoMigrate(&models.Product{}, &models.Order{}, &models.OrderItem{}); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}

	r := &repo.GormRepo{DB: db}
	return &ProductService{Repo: r}, &OrderService{Repo: r}
}

func productRequest(name string, amountLeft int) transport.ProductRequest {
	return transport.ProductRequest{
		Name:        name,
		Description: "test_description",
		Price:       decimal.NewFromInt(10),
		AmountLeft:  amountLeft,
	}
}

func TestCreateProductValidation(t *testing.T) {
	products, _ := newTestServices(t)
	ctx := context.Background()

	_, err := products.CreateProduct(ctx, productRequest("ab", 1))
	require.ErrorIs(t, err, domain.ErrValidation)

	req := productRequest("negative_amount", -1)
	_, err = products.CreateProduct(ctx, req)
	require.ErrorIs(t, err, domain.ErrValidation)

	req = productRequest("free_product", 1)
	req.Price = decimal.Zero
	_, err = products.CreateProduct(ctx, req)
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestCreateProductNameConflict(t *testing.T) {
	products, _ := newTestServices(t)
	ctx := context.Background()

	first, err := products.CreateProduct(ctx, productRequest("same_name", 3))
	require.NoError(t, err)

	_, err = products.CreateProduct(ctx, productRequest("same_name", 5))
	require.ErrorIs(t, err, domain.ErrConflict)
	require.ErrorContains(t, err, "already exists")

	// the first product is unaffected
	reloaded, err := products.GetProduct(ctx, first.ID)
	require.NoError(t, err)
	require.Equal(t, "same_name", reloaded.Name)
	require.Equal(t, 3, reloaded.AmountLeft)
}

func TestUpdateProductKeepsOwnName(t *testing.T) {
	products, _ := newTestServices(t)
	ctx := context.Background()

	created, err := products.CreateProduct(ctx, productRequest("stable_name", 3))
	require.NoError(t, err)

	req := productRequest("stable_name", 8)
	updated, err := products.UpdateProduct(ctx, created.ID, req)
	require.NoError(t, err)
	require.Equal(t, 8, updated.AmountLeft)
}

func TestUpdateProductNameConflict(t *testing.T) {
	products, _ := newTestServices(t)
	ctx := context.Background()

	_, err := products.CreateProduct(ctx, productRequest("original_name", 1))
	require.NoError(t, err)

	second, err := products.CreateProduct(ctx, productRequest("other_name", 1))
	require.NoError(t, err)

	_, err = products.UpdateProduct(ctx, second.ID, productRequest("original_name", 1))
	require.ErrorIs(t, err, domain.ErrConflict)
}

func TestUpdateProductNotFound(t *testing.T) {
	products, _ := newTestServices(t)

	_, err := products.UpdateProduct(context.Background(), 99, productRequest("ghost_product", 1))
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPlaceOrderRoundTrip(t *testing.T) {
	products, orders := newTestServices(t)
	ctx := context.Background()

	created, err := products.CreateProduct(ctx, productRequest("round_trip_product", 2))
	require.NoError(t, err)

	placed, err := orders.PlaceOrder(ctx, transport.CreateOrderRequest{
		Status:   "In Progress",
		Products: map[uint]int{created.ID: 2},
	})
	require.NoError(t, err)
	require.Equal(t, domain.StatusInProgress, placed.Status)
	require.Equal(t, map[uint]int{created.ID: 2}, placed.Products)

	read, err := orders.GetOrder(ctx, placed.ID)
	require.NoError(t, err)
	require.Equal(t, map[uint]int{created.ID: 2}, read.Products)

	reloaded, err := products.GetProduct(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, 0, reloaded.AmountLeft)
}

func TestPlaceOrderRejectsUnknownStatus(t *testing.T) {
	_, orders := newTestServices(t)

	_, err := orders.PlaceOrder(context.Background(), transport.CreateOrderRequest{Status: "cancelled"})
	require.ErrorIs(t, err, domain.ErrValidation)
	require.ErrorContains(t, err, "cancelled")
}

func TestUpdateOrderStatusRejectsUnknownValue(t *testing.T) {
	_, orders := newTestServices(t)
	ctx := context.Background()

	placed, err := orders.PlaceOrder(ctx, transport.CreateOrderRequest{Status: domain.StatusInProgress})
	require.NoError(t, err)

	_, err = orders.UpdateOrderStatus(ctx, placed.ID, "on hold")
	require.ErrorIs(t, err, domain.ErrValidation)

	// stored status is unchanged
	read, err := orders.GetOrder(ctx, placed.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusInProgress, read.Status)
}

func TestUpdateOrderStatusAllowedValue(t *testing.T) {
	_, orders := newTestServices(t)
	ctx := context.Background()

	placed, err := orders.PlaceOrder(ctx, transport.CreateOrderRequest{Status: domain.StatusInProgress})
	require.NoError(t, err)

	updated, err := orders.UpdateOrderStatus(ctx, placed.ID, "Shipped")
	require.NoError(t, err)
	require.Equal(t, domain.StatusShipped, updated.Status)
}

func TestDeleteOrderNotFound(t *testing.T) {
	_, orders := newTestServices(t)

	require.ErrorIs(t, orders.DeleteOrder(context.Background(), 99), domain.ErrNotFound)
}

package repo

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestListProductsAscending(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	createTestProduct(t, r, "b_product", 1)
	createTestProduct(t, r, "a_product", 2)

	items, err := r.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Less(t, items[0].ID, items[1].ID)
}

func TestGetProductNotFound(t *testing.T) {
	r := newTestRepo(t)

	_, err := r.GetProduct(context.Background(), 99)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestNameTaken(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	product := createTestProduct(t, r, "taken_name", 1)

	taken, err := r.NameTaken(ctx, "taken_name", 0)
	require.NoError(t, err)
	require.True(t, taken)

	taken, err = r.NameTaken(ctx, "free_name", 0)
	require.NoError(t, err)
	require.False(t, taken)

	// a product keeping its own name on update is not a conflict
	taken, err = r.NameTaken(ctx, "taken_name", product.ID)
	require.NoError(t, err)
	require.False(t, taken)
}

func TestSaveProductReplacesFields(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	product := createTestProduct(t, r, "old_name", 1)
	product.Name = "new_name"
	product.Price = decimal.RequireFromString("19.99")
	product.AmountLeft = 7
	require.NoError(t, r.SaveProduct(ctx, product))

	reloaded, err := r.GetProduct(ctx, product.ID)
	require.NoError(t, err)
	require.Equal(t, "new_name", reloaded.Name)
	require.True(t, reloaded.Price.Equal(decimal.RequireFromString("19.99")))
	require.Equal(t, 7, reloaded.AmountLeft)
}

func TestDeleteProductNotFound(t *testing.T) {
	r := newTestRepo(t)

	require.ErrorIs(t, r.DeleteProduct(context.Background(), 99), gorm.ErrRecordNotFound)
}

package service

import (
	"errors"
	"sync"
	"testing"

	"storefront-service/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckoutSuccess(t *testing.T) {
	db := setupTestDB(t)
	product := createProduct(t, db, "Product A", 1000, 5)
	createCartItem(t, db, 1, product.ID, 2)

	order, err := Checkout(db, 1)
	require.NoError(t, err)

	assert.Equal(t, uint(1), order.UserID)
	assert.Equal(t, 2000, order.Total)
	assert.Equal(t, model.OrderStatusPlaced, order.Status)

	// Stock decremented
	var reloaded model.Product
	require.NoError(t, db.First(&reloaded, product.ID).Error)
	assert.Equal(t, 3, reloaded.Stock)

	// Cart emptied
	var cartCount int64
	db.Model(&model.CartItem{}).Where("user_id = ?", 1).Count(&cartCount)
	assert.Zero(t, cartCount)

	// One order item with the snapshot price
	var items []model.OrderItem
	require.NoError(t, db.Where("order_id = ?", order.ID).Find(&items).Error)
	require.Len(t, items, 1)
	assert.Equal(t, product.ID, items[0].ProductID)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 1000, items[0].Price)
}

func TestCheckoutEmptyCart(t *testing.T) {
	db := setupTestDB(t)

	_, err := Checkout(db, 1)
	require.ErrorIs(t, err, ErrEmptyCart)

	var orderCount int64
	db.Model(&model.Order{}).Count(&orderCount)
	assert.Zero(t, orderCount)
}

func TestCheckoutInsufficientStockIsAllOrNothing(t *testing.T) {
	db := setupTestDB(t)
	productA := createProduct(t, db, "Product A", 1000, 2)
	productB := createProduct(t, db, "Product B", 500, 0)
	createCartItem(t, db, 1, productA.ID, 2)
	createCartItem(t, db, 1, productB.ID, 1)

	_, err := Checkout(db, 1)

	var stockErr *InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, "Product B", stockErr.ProductName)

	// No partial decrement: product A keeps its stock
	var reloaded model.Product
	require.NoError(t, db.First(&reloaded, productA.ID).Error)
	assert.Equal(t, 2, reloaded.Stock)

	// No order, no order items, cart untouched
	var orderCount, itemCount, cartCount int64
	db.Model(&model.Order{}).Count(&orderCount)
	db.Model(&model.OrderItem{}).Count(&itemCount)
	db.Model(&model.CartItem{}).Where("user_id = ?", 1).Count(&cartCount)
	assert.Zero(t, orderCount)
	assert.Zero(t, itemCount)
	assert.Equal(t, int64(2), cartCount)
}

func TestCheckoutPriceSnapshotIsStable(t *testing.T) {
	db := setupTestDB(t)
	product := createProduct(t, db, "Product A", 1000, 5)
	createCartItem(t, db, 1, product.ID, 1)

	order, err := Checkout(db, 1)
	require.NoError(t, err)

	// Raise the catalog price after the order is placed
	require.NoError(t, db.Model(&model.Product{}).Where("id = ?", product.ID).Update("price", 9999).Error)

	var item model.OrderItem
	require.NoError(t, db.Where("order_id = ?", order.ID).First(&item).Error)
	assert.Equal(t, 1000, item.Price)
	assert.Equal(t, 1000, order.Total)
}

func TestCheckoutMultipleLinesTotal(t *testing.T) {
	db := setupTestDB(t)
	productA := createProduct(t, db, "Product A", 3900, 10)
	productB := createProduct(t, db, "Product B", 7900, 10)
	createCartItem(t, db, 1, productA.ID, 3)
	createCartItem(t, db, 1, productB.ID, 1)

	order, err := Checkout(db, 1)
	require.NoError(t, err)
	assert.Equal(t, 3900*3+7900, order.Total)
	require.Len(t, order.Items, 2)
}

func TestCheckoutDoesNotTouchOtherUsersCart(t *testing.T) {
	db := setupTestDB(t)
	product := createProduct(t, db, "Product A", 1000, 10)
	createCartItem(t, db, 1, product.ID, 1)
	createCartItem(t, db, 2, product.ID, 4)

	_, err := Checkout(db, 1)
	require.NoError(t, err)

	var otherCart int64
	db.Model(&model.CartItem{}).Where("user_id = ?", 2).Count(&otherCart)
	assert.Equal(t, int64(1), otherCart)
}

func TestConcurrentCheckoutNeverOversells(t *testing.T) {
	db := setupTestDB(t)
	product := createProduct(t, db, "Last One", 1000, 1)
	createCartItem(t, db, 1, product.ID, 1)
	createCartItem(t, db, 2, product.ID, 1)

	var wg sync.WaitGroup
	results := make([]error, 2)
	for i, userID := range []uint{1, 2} {
		wg.Add(1)
		go func(i int, userID uint) {
			defer wg.Done()
			_, err := Checkout(db, userID)
			results[i] = err
		}(i, userID)
	}
	wg.Wait()

	// Exactly one checkout wins the last unit
	var stockErrs, successes int
	for _, err := range results {
		var stockErr *InsufficientStockError
		switch {
		case err == nil:
			successes++
		case errors.As(err, &stockErr):
			stockErrs++
		default:
			t.Fatalf("unexpected checkout error: %v", err)
		}
	}
	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, stockErrs)

	var reloaded model.Product
	require.NoError(t, db.First(&reloaded, product.ID).Error)
	assert.Equal(t, 0, reloaded.Stock)

	var orderCount int64
	db.Model(&model.Order{}).Count(&orderCount)
	assert.Equal(t, int64(1), orderCount)
}

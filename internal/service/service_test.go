package service

import (
	"testing"

	"storefront-service/internal/model"
	"storefront-service/pkg/database"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// setupTestDB opens an in-memory SQLite database with the full schema.
// The pool is capped at one connection because each in-memory connection
// would otherwise see its own empty database.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func createProduct(t *testing.T, db *gorm.DB, name string, price, stock int) model.Product {
	t.Helper()
	product := model.Product{
		Name:     name,
		Price:    price,
		Stock:    stock,
		Category: "Tシャツ",
	}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func createCartItem(t *testing.T, db *gorm.DB, userID, productID uint, quantity int) model.CartItem {
	t.Helper()
	item := model.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
	}
	require.NoError(t, db.Create(&item).Error)
	return item
}

package handler

import (
	"net/http"
	"testing"

	"storefront-service/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProductValidation(t *testing.T) {
	setupHandlerDB(t)

	cases := []struct {
		name string
		body string
	}{
		{"missing name", `{"price":1000,"stock":5}`},
		{"negative price", `{"name":"A","price":-1,"stock":5}`},
		{"negative stock", `{"name":"A","price":1000,"stock":-1}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := newJSONContext(t, http.MethodPost, "/api/admin/products", tc.body, 1)
			require.NoError(t, CreateProduct(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestCreateProduct(t *testing.T) {
	db := setupHandlerDB(t)

	c, rec := newJSONContext(t, http.MethodPost, "/api/admin/products",
		`{"name":"ベーシックTシャツ","price":3900,"stock":50,"category":"Tシャツ","is_new":true}`, 1)
	require.NoError(t, CreateProduct(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var product model.Product
	require.NoError(t, db.Where("name = ?", "ベーシックTシャツ").First(&product).Error)
	assert.Equal(t, 3900, product.Price)
	assert.Equal(t, 50, product.Stock)
	assert.True(t, product.IsNew)
}

func TestDeleteProductNotFound(t *testing.T) {
	setupHandlerDB(t)

	e := newEchoWithParam(t, http.MethodDelete, "/api/admin/products/999", "999")
	require.NoError(t, DeleteProduct(e.ctx))
	assert.Equal(t, http.StatusNotFound, e.rec.Code)
}

func TestDeleteProduct(t *testing.T) {
	db := setupHandlerDB(t)
	product := seedProduct(t, db, "Product A", 1000, 5)

	e := newEchoWithParam(t, http.MethodDelete, "/api/admin/products/1", "1")
	require.NoError(t, DeleteProduct(e.ctx))
	assert.Equal(t, http.StatusNoContent, e.rec.Code)

	var count int64
	db.Model(&model.Product{}).Where("id = ?", product.ID).Count(&count)
	assert.Zero(t, count)
}

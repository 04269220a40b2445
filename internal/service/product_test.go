package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"khalti-storefront-demo/internal/apperr"
	"khalti-storefront-demo/internal/model"
)

func product(id int64, title, category, price string) model.Product {
	return model.Product{
		ID:       id,
		Title:    title,
		Category: category,
		Price:    decimal.RequireFromString(price),
	}
}

func testCatalog() *mockCatalogClient {
	return &mockCatalogClient{
		products: []model.Product{
			product(1, "Fjallraven Backpack", "men's clothing", "109.95"),
			product(2, "Mens Casual T-Shirt", "men's clothing", "22.30"),
			product(3, "Gold Petite Micropave", "jewelery", "168.00"),
		},
		byCategory: map[string][]model.Product{
			"jewelery": {product(3, "Gold Petite Micropave", "jewelery", "168.00")},
		},
		categories: []string{"men's clothing", "jewelery"},
	}
}

func TestListFiltersBySearch(t *testing.T) {
	svc := NewProductService(testCatalog())

	products, err := svc.List(context.Background(), ProductQuery{Search: "shirt"})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, int64(2), products[0].ID)
}

func TestListSortsByPrice(t *testing.T) {
	svc := NewProductService(testCatalog())

	asc, err := svc.List(context.Background(), ProductQuery{Sort: SortPriceAsc})
	require.NoError(t, err)
	require.Len(t, asc, 3)
	assert.Equal(t, int64(2), asc[0].ID)
	assert.Equal(t, int64(3), asc[2].ID)

	desc, err := svc.List(context.Background(), ProductQuery{Sort: SortPriceDesc})
	require.NoError(t, err)
	assert.Equal(t, int64(3), desc[0].ID)
}

func TestListCategoryAllMeansNoFilter(t *testing.T) {
	svc := NewProductService(testCatalog())

	all, err := svc.List(context.Background(), ProductQuery{Category: "all"})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	jewelery, err := svc.List(context.Background(), ProductQuery{Category: "jewelery"})
	require.NoError(t, err)
	require.Len(t, jewelery, 1)
	assert.Equal(t, int64(3), jewelery[0].ID)
}

func TestListSurfacesNetworkError(t *testing.T) {
	svc := NewProductService(&mockCatalogClient{
		err: &apperr.NetworkError{Op: "catalog get /products"},
	})

	_, err := svc.List(context.Background(), ProductQuery{})
	var networkErr *apperr.NetworkError
	assert.ErrorAs(t, err, &networkErr)
}

func TestCategoriesArePrefixedWithAll(t *testing.T) {
	svc := NewProductService(testCatalog())

	categories, err := svc.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"all", "men's clothing", "jewelery"}, categories)
}

package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"khalti-storefront-demo/internal/client"
	"khalti-storefront-demo/internal/model"
)

const (
	SortDefault   = "default"
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
)

// ProductQuery narrows the upstream catalog the same way the storefront's
// browse page does: substring search, category filter, price sort.
type ProductQuery struct {
	Search   string
	Sort     string
	Category string
}

type ProductService interface {
	List(ctx context.Context, query ProductQuery) ([]model.Product, error)
	Categories(ctx context.Context) ([]string, error)
}

type productServiceImpl struct {
	catalog client.CatalogClient
}

func NewProductService(catalog client.CatalogClient) ProductService {
	return &productServiceImpl{
		catalog: catalog,
	}
}

func (s *productServiceImpl) List(ctx context.Context, query ProductQuery) ([]model.Product, error) {
	var (
		products []model.Product
		err      error
	)
	if query.Category == "" || query.Category == "all" {
		products, err = s.catalog.Products(ctx)
	} else {
		products, err = s.catalog.ProductsByCategory(ctx, query.Category)
	}
	if err != nil {
		return nil, fmt.Errorf("fetch products: %w", err)
	}

	if search := strings.ToLower(strings.TrimSpace(query.Search)); search != "" {
		filtered := products[:0]
		for _, p := range products {
			if strings.Contains(strings.ToLower(p.Title), search) {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}

	switch query.Sort {
	case SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price.LessThan(products[j].Price)
		})
	case SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[j].Price.LessThan(products[i].Price)
		})
	}

	return products, nil
}

// Categories prefixes the upstream list with "all", the pseudo-category the
// browse page uses to mean no filter.
func (s *productServiceImpl) Categories(ctx context.Context) ([]string, error) {
	categories, err := s.catalog.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch categories: %w", err)
	}
	return append([]string{"all"}, categories...), nil
}

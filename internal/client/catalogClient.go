package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"khalti-storefront-demo/internal/apperr"
	"khalti-storefront-demo/internal/config"
	"khalti-storefront-demo/internal/model"
)

type CatalogClient interface {
	Products(ctx context.Context) ([]model.Product, error)
	ProductsByCategory(ctx context.Context, category string) ([]model.Product, error)
	Categories(ctx context.Context) ([]string, error)
}

type catalogClientImpl struct {
	httpClient *http.Client
	baseURL    string
}

func NewCatalogClient(catalogCfg *config.Catalog) CatalogClient {
	return &catalogClientImpl{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL: catalogCfg.BaseURL,
	}
}

func (c *catalogClientImpl) Products(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	if err := c.getJSON(ctx, "/products", &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *catalogClientImpl) ProductsByCategory(ctx context.Context, category string) ([]model.Product, error) {
	var products []model.Product
	path := "/products/category/" + url.PathEscape(category)
	if err := c.getJSON(ctx, path, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *catalogClientImpl) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := c.getJSON(ctx, "/products/categories", &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *catalogClientImpl) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("http new request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &apperr.NetworkError{Op: "catalog get " + path, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &apperr.NetworkError{
			Op:  "catalog get " + path,
			Err: fmt.Errorf("unexpected status %d", resp.StatusCode),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &apperr.NetworkError{Op: "decode catalog response", Err: err}
	}

	return nil
}

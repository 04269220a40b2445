package service

import (
	"context"
	"sync"

	"khalti-storefront-demo/internal/model"
	"khalti-storefront-demo/internal/repository"
)

type mockCheckpointRepo struct {
	mu      sync.Mutex
	saved   map[string]*model.CheckoutCheckpoint
	saveErr error
	loadErr error
}

func newMockCheckpointRepo() *mockCheckpointRepo {
	return &mockCheckpointRepo{
		saved: make(map[string]*model.CheckoutCheckpoint),
	}
}

func (m *mockCheckpointRepo) Save(_ context.Context, sessionID string, cp *model.CheckoutCheckpoint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved[sessionID] = cp
	return nil
}

func (m *mockCheckpointRepo) Load(_ context.Context, sessionID string) (*model.CheckoutCheckpoint, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	cp, ok := m.saved[sessionID]
	if !ok {
		return nil, repository.ErrNoCheckpoint
	}
	return cp, nil
}

func (m *mockCheckpointRepo) Clear(_ context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.saved, sessionID)
	return nil
}

func (m *mockCheckpointRepo) get(sessionID string) *model.CheckoutCheckpoint {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saved[sessionID]
}

type mockCatalogClient struct {
	products   []model.Product
	byCategory map[string][]model.Product
	categories []string
	err        error
}

func (m *mockCatalogClient) Products(context.Context) ([]model.Product, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.products, nil
}

func (m *mockCatalogClient) ProductsByCategory(_ context.Context, category string) ([]model.Product, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.byCategory[category], nil
}

func (m *mockCatalogClient) Categories(context.Context) ([]string, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.categories, nil
}

type mockIdentityClient struct {
	err error
}

func (m *mockIdentityClient) SignUp(_ context.Context, email, _ string) (*model.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &model.User{Email: email}, nil
}

func (m *mockIdentityClient) SignIn(_ context.Context, email, _ string) (*model.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &model.User{Email: email}, nil
}

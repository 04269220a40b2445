package service

import (
	"context"

	"khalti-storefront-demo/internal/apperr"
	"khalti-storefront-demo/internal/dto"
	"khalti-storefront-demo/internal/model"
	"khalti-storefront-demo/internal/store"
)

type CartService interface {
	Get(ctx context.Context, sessionID string) *dto.CartResponse
	Add(ctx context.Context, sessionID string, req *dto.AddItemRequest) (*dto.CartResponse, error)
	SetQuantity(ctx context.Context, sessionID string, productID int64, quantity int) *dto.CartResponse
	Remove(ctx context.Context, sessionID string, productID int64) *dto.CartResponse
}

type cartServiceImpl struct {
	carts store.CartStore
}

func NewCartService(carts store.CartStore) CartService {
	return &cartServiceImpl{
		carts: carts,
	}
}

func (s *cartServiceImpl) Get(ctx context.Context, sessionID string) *dto.CartResponse {
	return cartResponse(s.carts.Get(sessionID))
}

func (s *cartServiceImpl) Add(ctx context.Context, sessionID string, req *dto.AddItemRequest) (*dto.CartResponse, error) {
	if req.ProductID <= 0 {
		return nil, &apperr.ValidationError{Field: "product_id", Reason: "must be positive"}
	}
	if req.Price.IsNegative() {
		return nil, &apperr.ValidationError{Field: "price", Reason: "must not be negative"}
	}

	s.carts.Add(sessionID, model.LineItem{
		ProductID: req.ProductID,
		Title:     req.Title,
		Price:     req.Price,
		Quantity:  req.Quantity,
	})

	return cartResponse(s.carts.Get(sessionID)), nil
}

func (s *cartServiceImpl) SetQuantity(ctx context.Context, sessionID string, productID int64, quantity int) *dto.CartResponse {
	s.carts.SetQuantity(sessionID, productID, quantity)
	return cartResponse(s.carts.Get(sessionID))
}

func (s *cartServiceImpl) Remove(ctx context.Context, sessionID string, productID int64) *dto.CartResponse {
	s.carts.Remove(sessionID, productID)
	return cartResponse(s.carts.Get(sessionID))
}

func cartResponse(cart model.Cart) *dto.CartResponse {
	return &dto.CartResponse{
		Items: cart.Items,
		Total: cart.Total(),
		Count: cart.Count(),
	}
}

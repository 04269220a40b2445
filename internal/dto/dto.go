package dto

import (
	"github.com/shopspring/decimal"

	"khalti-storefront-demo/internal/model"
)

type AddItemRequest struct {
	ProductID int64           `json:"product_id"`
	Title     string          `json:"title"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
}

type SetQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type CartResponse struct {
	Items []model.LineItem `json:"items"`
	Total decimal.Decimal  `json:"total"`
	Count int              `json:"count"`
}

type CheckoutResponse struct {
	OrderID     string `json:"order_id"`
	RedirectURL string `json:"redirect_url"`
}

type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Email string `json:"email"`
	Token string `json:"token"`
}

type ReconcileResponse struct {
	Status            string `json:"status"`
	Reason            string `json:"reason,omitempty"`
	TransactionID     string `json:"transaction_id,omitempty"`
	AmountPaisa       int64  `json:"amount_paisa,omitempty"`
	Amount            string `json:"amount,omitempty"`
	PurchaseOrderID   string `json:"purchase_order_id,omitempty"`
	PurchaseOrderName string `json:"purchase_order_name,omitempty"`
}

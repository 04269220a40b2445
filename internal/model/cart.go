package model

import "github.com/shopspring/decimal"

// LineItem is one cart entry. Unique by ProductID within a cart;
// Quantity is always >= 1 (zero-quantity entries are deleted, never stored).
type LineItem struct {
	ProductID int64           `json:"product_id"`
	Title     string          `json:"title"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
}

func (li LineItem) Subtotal() decimal.Decimal {
	return li.Price.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// Cart is a snapshot of a session's cart. Order of Items is not significant.
type Cart struct {
	Items []LineItem `json:"items"`
}

// Total is recomputed on demand; nothing caches it.
func (c Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, li := range c.Items {
		total = total.Add(li.Subtotal())
	}
	return total
}

// Count sums quantities across all entries.
func (c Cart) Count() int {
	count := 0
	for _, li := range c.Items {
		count += li.Quantity
	}
	return count
}

// CheckoutCheckpoint is written to durable storage immediately before the
// shopper is redirected to the hosted payment page, and is what the return
// reconciler compares the redirect against.
type CheckoutCheckpoint struct {
	OrderID string
	Items   []LineItem
	Total   decimal.Decimal
}

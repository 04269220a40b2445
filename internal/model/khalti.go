package model

// ReturnStatusCompleted is the transaction status Khalti reports on a
// successful payment.
const ReturnStatusCompleted = "Completed"

// PaymentReturnParams are the fields the hosted payment page appends to the
// return redirect. They arrive on a browser-controlled URL, not a
// server-verified channel, and are not trusted data.
type PaymentReturnParams struct {
	Status            string `json:"status"`
	TransactionID     string `json:"txn_id"`
	AmountPaisa       int64  `json:"amount"`
	PurchaseOrderID   string `json:"purchase_order_id"`
	Mobile            string `json:"mobile,omitempty"`
	PurchaseOrderName string `json:"purchase_order_name,omitempty"`
	PaymentIndex      string `json:"pidx,omitempty"`
}

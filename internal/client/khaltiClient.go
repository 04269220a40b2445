package client

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"khalti-storefront-demo/internal/config"
	"khalti-storefront-demo/internal/model"
	"khalti-storefront-demo/internal/money"
)

type KhaltiClient interface {
	BuildCheckoutURL(req *CheckoutRequest) (string, error)
	ParseReturnParams(query url.Values) (*model.PaymentReturnParams, error)
}

type khaltiClientImpl struct {
	checkoutBaseURL string
	publicKey       string
}

// CheckoutRequest is everything the hosted payment page needs, encoded into
// the redirect URL's query string. Amounts are already in paisa.
type CheckoutRequest struct {
	AmountPaisa       int64
	PurchaseOrderID   string
	PurchaseOrderName string
	ReturnURL         string
	WebsiteURL        string
	Customer          *model.User
	Items             []model.LineItem
}

type productDetail struct {
	Identity   string `json:"identity"`
	Name       string `json:"name"`
	UnitPrice  int64  `json:"unit_price"`
	Quantity   int    `json:"quantity"`
	TotalPrice int64  `json:"total_price"`
}

func NewKhaltiClient(khaltiCfg *config.Khalti) KhaltiClient {
	return &khaltiClientImpl{
		checkoutBaseURL: khaltiCfg.CheckoutURL,
		publicKey:       khaltiCfg.PublicKey,
	}
}

func (c *khaltiClientImpl) BuildCheckoutURL(req *CheckoutRequest) (string, error) {
	u, err := url.Parse(c.checkoutBaseURL)
	if err != nil {
		return "", fmt.Errorf("parse checkout base url: %w", err)
	}

	q := u.Query()
	q.Set("public_key", c.publicKey)
	q.Set("amount", strconv.FormatInt(req.AmountPaisa, 10))
	q.Set("purchase_order_id", req.PurchaseOrderID)
	q.Set("purchase_order_name", req.PurchaseOrderName)
	q.Set("return_url", req.ReturnURL)
	q.Set("website_url", req.WebsiteURL)

	if req.Customer != nil {
		info, err := json.Marshal(map[string]string{"email": req.Customer.Email})
		if err != nil {
			return "", fmt.Errorf("marshal customer info: %w", err)
		}
		q.Set("customer_info", string(info))
	}

	if len(req.Items) > 0 {
		details := make([]productDetail, len(req.Items))
		for i, item := range req.Items {
			unitPaisa := money.ToMinorUnits(item.Price)
			details[i] = productDetail{
				Identity:   strconv.FormatInt(item.ProductID, 10),
				Name:       item.Title,
				UnitPrice:  unitPaisa,
				Quantity:   item.Quantity,
				TotalPrice: unitPaisa * int64(item.Quantity),
			}
		}
		blob, err := json.Marshal(details)
		if err != nil {
			return "", fmt.Errorf("marshal product details: %w", err)
		}
		q.Set("product_details", string(blob))
	}

	u.RawQuery = q.Encode()
	return u.String(), nil
}

func (c *khaltiClientImpl) ParseReturnParams(query url.Values) (*model.PaymentReturnParams, error) {
	params := &model.PaymentReturnParams{
		Status:            query.Get("status"),
		TransactionID:     query.Get("txnId"),
		PurchaseOrderID:   query.Get("purchase_order_id"),
		Mobile:            query.Get("mobile"),
		PurchaseOrderName: query.Get("purchase_order_name"),
		PaymentIndex:      query.Get("pidx"),
	}

	if params.Status == "" {
		return nil, fmt.Errorf("missing status")
	}
	if params.TransactionID == "" {
		return nil, fmt.Errorf("missing txnId")
	}
	if params.PurchaseOrderID == "" {
		return nil, fmt.Errorf("missing purchase_order_id")
	}

	rawAmount := query.Get("amount")
	if rawAmount == "" {
		return nil, fmt.Errorf("missing amount")
	}
	amount, err := strconv.ParseInt(rawAmount, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parse amount %q: %w", rawAmount, err)
	}
	params.AmountPaisa = amount

	return params, nil
}

package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"khalti-storefront-demo/internal/client"
	"khalti-storefront-demo/internal/config"
	"khalti-storefront-demo/internal/dto"
	"khalti-storefront-demo/internal/model"
	"khalti-storefront-demo/internal/repository"
	"khalti-storefront-demo/internal/service"
	"khalti-storefront-demo/internal/store"
)

type checkoutEnv struct {
	checkout *CheckoutHandler
	payment  *PaymentHandler
	carts    store.CartStore
	echo     *echo.Echo
}

func newCheckoutEnv(t *testing.T) *checkoutEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&model.StorageEntry{}))

	khalti := client.NewKhaltiClient(&config.Khalti{
		CheckoutURL: "https://pay.khalti.com/",
		PublicKey:   "pk",
	})
	checkpoints := repository.NewCheckpointRepository(repository.NewStorageRepository(db))
	carts := store.NewMemoryCartStore()
	carts.Add("sess", model.LineItem{
		ProductID: 1, Title: "Backpack",
		Price: decimal.RequireFromString("10.00"), Quantity: 2,
	})
	carts.Add("sess", model.LineItem{
		ProductID: 2, Title: "T-Shirt",
		Price: decimal.RequireFromString("5.50"), Quantity: 1,
	})

	checkoutService := service.NewCheckoutService(carts, checkpoints, khalti,
		"http://localhost:8080", "E-Commerce Purchase")
	reconcileService := service.NewReconcileService(khalti, checkpoints, carts)

	return &checkoutEnv{
		checkout: NewCheckoutHandler(checkoutService),
		payment:  NewPaymentHandler(reconcileService),
		carts:    carts,
		echo:     echo.New(),
	}
}

func (env *checkoutEnv) do(t *testing.T, method, target string, h echo.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	c := env.echo.NewContext(req, rec)
	c.Set("session_id", "sess")
	require.NoError(t, h(c))
	return rec
}

func TestCheckoutThenReturnRoundTrip(t *testing.T) {
	env := newCheckoutEnv(t)

	rec := env.do(t, http.MethodPost, "/api/checkout", env.checkout.Initiate)
	require.Equal(t, http.StatusOK, rec.Code)

	var initResp dto.CheckoutResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &initResp))
	require.NotEmpty(t, initResp.RedirectURL)

	q := url.Values{}
	q.Set("status", "Completed")
	q.Set("txnId", "txn-9")
	q.Set("amount", "2550")
	q.Set("purchase_order_id", initResp.OrderID)

	rec = env.do(t, http.MethodGet, "/api/payment/return?"+q.Encode(), env.payment.Return)
	require.Equal(t, http.StatusOK, rec.Code)

	var returnResp dto.ReconcileResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &returnResp))
	assert.Equal(t, "VERIFIED", returnResp.Status)
	assert.Equal(t, "txn-9", returnResp.TransactionID)
	assert.Equal(t, "25.50", returnResp.Amount)
	assert.Empty(t, env.carts.Get("sess").Items)
}

func TestReturnWithTamperedAmountFails(t *testing.T) {
	env := newCheckoutEnv(t)

	rec := env.do(t, http.MethodPost, "/api/checkout", env.checkout.Initiate)
	var initResp dto.CheckoutResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &initResp))

	q := url.Values{}
	q.Set("status", "Completed")
	q.Set("txnId", "txn-9")
	q.Set("amount", "2551")
	q.Set("purchase_order_id", initResp.OrderID)

	rec = env.do(t, http.MethodGet, "/api/payment/return?"+q.Encode(), env.payment.Return)
	require.Equal(t, http.StatusOK, rec.Code)

	var returnResp dto.ReconcileResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &returnResp))
	assert.Equal(t, "FAILED", returnResp.Status)
	assert.Equal(t, "MISMATCH", returnResp.Reason)
	assert.NotEmpty(t, env.carts.Get("sess").Items, "failed payment must not clear the cart")
}

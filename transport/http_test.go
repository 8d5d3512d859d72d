package transport_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/muhammadheryan/stock-allocation/cmd/config"
	"github.com/muhammadheryan/stock-allocation/constant"
	inventorymocks "github.com/muhammadheryan/stock-allocation/mocks/application/inventory"
	ordermocks "github.com/muhammadheryan/stock-allocation/mocks/application/order"
	"github.com/muhammadheryan/stock-allocation/model"
	"github.com/muhammadheryan/stock-allocation/transport"
	cerr "github.com/muhammadheryan/stock-allocation/utils/errors"
	"github.com/muhammadheryan/stock-allocation/utils/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	orderID   = "0b0e6a8c-3f1d-4c55-9d0e-6b1f7f0e9a01"
	productID = "5d4f1c2a-7e3b-4a9c-8f61-2c0d9e8b7a12"
	apiKey    = "secret"
)

type fields struct {
	orderApp     *ordermocks.OrderApp
	inventoryApp *inventorymocks.InventoryApp
}

func TestRestHandler(t *testing.T) {
	logger.Replace(zap.NewNop())

	tests := []struct {
		name       string
		method     string
		target     string
		body       string
		header     map[string]string
		mockCall   func(f fields)
		wantStatus int
		wantCode   string
		check      func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name:   "create order with force accept",
			method: http.MethodPost,
			target: "/orders?force_accept=true",
			body:   `{"items":[{"product_id":"` + productID + `","quantity":3}]}`,
			mockCall: func(f fields) {
				f.orderApp.On("CreateOrder", mock.Anything, &model.OrderRequest{
					Items:       []model.OrderItemRequest{{ProductID: productID, Quantity: 3}},
					ForceAccept: true,
				}).Return(&model.OrderResponse{OrderID: orderID, Status: constant.OrderStatusPending}, nil).Once()
			},
			wantStatus: http.StatusCreated,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var got model.OrderResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
				assert.Equal(t, orderID, got.OrderID)
			},
		},
		{
			name:       "create order rejects malformed json",
			method:     http.MethodPost,
			target:     "/orders",
			body:       `{"items":`,
			wantStatus: http.StatusBadRequest,
			wantCode:   constant.ErrorTypeCode[constant.ErrInvalidRequest],
		},
		{
			name:       "create order rejects non-positive quantity",
			method:     http.MethodPost,
			target:     "/orders",
			body:       `{"items":[{"product_id":"` + productID + `","quantity":0}]}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   constant.ErrorTypeCode[constant.ErrInvalidRequest],
		},
		{
			name:       "create order rejects bad force flag",
			method:     http.MethodPost,
			target:     "/orders?force_accept=maybe",
			body:       `{"items":[]}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   constant.ErrorTypeCode[constant.ErrInvalidRequest],
		},
		{
			name:   "insufficient stock carries the shortfall",
			method: http.MethodPost,
			target: "/orders",
			body:   `{"items":[{"product_id":"` + productID + `","quantity":9}]}`,
			mockCall: func(f fields) {
				f.orderApp.On("CreateOrder", mock.Anything, mock.Anything).
					Return(nil, cerr.SetCustomErrorWithDetails(constant.ErrInsufficientStock, []model.Shortfall{{ProductID: productID, Quantity: 4}})).Once()
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   constant.ErrorTypeCode[constant.ErrInsufficientStock],
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var got struct {
					Details []model.Shortfall `json:"details"`
				}
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
				assert.Equal(t, []model.Shortfall{{ProductID: productID, Quantity: 4}}, got.Details)
			},
		},
		{
			name:   "lock timeout asks the client to retry",
			method: http.MethodPost,
			target: "/orders",
			body:   `{"items":[{"product_id":"` + productID + `","quantity":1}]}`,
			mockCall: func(f fields) {
				f.orderApp.On("CreateOrder", mock.Anything, mock.Anything).Return(nil, cerr.SetCustomError(constant.ErrLockTimeout)).Once()
			},
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   constant.ErrorTypeCode[constant.ErrLockTimeout],
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, "1", rec.Header().Get("Retry-After"))
			},
		},
		{
			name:   "get order",
			method: http.MethodGet,
			target: "/orders/" + orderID,
			mockCall: func(f fields) {
				f.orderApp.On("GetOrder", mock.Anything, orderID).
					Return(&model.OrderView{OrderDetail: model.OrderDetail{ID: orderID}}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "get order rejects a non-uuid id",
			method:     http.MethodGet,
			target:     "/orders/42",
			wantStatus: http.StatusBadRequest,
			wantCode:   constant.ErrorTypeCode[constant.ErrInvalidRequest],
		},
		{
			name:   "public cancel is never forced",
			method: http.MethodPost,
			target: "/orders/" + orderID + "/cancel?force=true",
			mockCall: func(f fields) {
				f.orderApp.On("CancelOrder", mock.Anything, &model.CancelOrderRequest{OrderID: orderID}).Return(nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "public cancel of an in-flight order",
			method: http.MethodPost,
			target: "/orders/" + orderID + "/cancel",
			mockCall: func(f fields) {
				f.orderApp.On("CancelOrder", mock.Anything, mock.Anything).Return(cerr.SetCustomError(constant.ErrOrderNotCancellable)).Once()
			},
			wantStatus: http.StatusConflict,
			wantCode:   constant.ErrorTypeCode[constant.ErrOrderNotCancellable],
		},
		{
			name:       "internal cancel requires the api key",
			method:     http.MethodPost,
			target:     "/internal/v1/orders/" + orderID + "/cancel?force=true",
			header:     map[string]string{"Authorization": "Bearer wrong"},
			wantStatus: http.StatusUnauthorized,
			wantCode:   constant.ErrorTypeCode[constant.ErrUnauthorize],
		},
		{
			name:   "internal force cancel",
			method: http.MethodPost,
			target: "/internal/v1/orders/" + orderID + "/cancel?force=true",
			header: map[string]string{"Authorization": "Bearer " + apiKey},
			mockCall: func(f fields) {
				f.orderApp.On("CancelOrder", mock.Anything, &model.CancelOrderRequest{OrderID: orderID, ForceCancel: true}).Return(nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "patch ledger status",
			method: http.MethodPatch,
			target: "/reservations/" + orderID,
			body:   `{"status":"PICKING"}`,
			mockCall: func(f fields) {
				f.orderApp.On("PatchLedgerStatus", mock.Anything, orderID, constant.OrderStatusPicking).
					Return(&model.Ledger{ID: orderID, Status: constant.OrderStatusPicking}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "patch ledger status rejects unknown status",
			method:     http.MethodPatch,
			target:     "/reservations/" + orderID,
			body:       `{"status":"LOST"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   constant.ErrorTypeCode[constant.ErrInvalidRequest],
		},
		{
			name:   "create product",
			method: http.MethodPost,
			target: "/products",
			body:   `{"id":"` + productID + `"}`,
			mockCall: func(f fields) {
				f.inventoryApp.On("CreateProduct", mock.Anything, &model.CreateProductRequest{ID: productID}).
					Return(&model.Product{ID: productID}, nil).Once()
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:   "disable product",
			method: http.MethodPatch,
			target: "/products/" + productID,
			body:   `{"disabled":true}`,
			mockCall: func(f fields) {
				f.inventoryApp.On("SetProductDisabled", mock.Anything, productID, mock.MatchedBy(func(req *model.UpdateProductRequest) bool {
					return req.Disabled != nil && *req.Disabled
				})).Return(&model.Product{ID: productID, Disabled: true}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "list batch locations",
			method: http.MethodGet,
			target: "/products/" + productID + "/locations",
			mockCall: func(f fields) {
				f.inventoryApp.On("ListBatchLocations", mock.Anything, productID).
					Return(&model.ProductLocationsResponse{ProductID: productID}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "register batch for unknown product",
			method: http.MethodPost,
			target: "/batches",
			body:   `{"product_id":"` + productID + `"}`,
			mockCall: func(f fields) {
				f.inventoryApp.On("RegisterBatch", mock.Anything, mock.Anything).Return(nil, cerr.SetCustomError(constant.ErrNotFound)).Once()
			},
			wantStatus: http.StatusNotFound,
			wantCode:   constant.ErrorTypeCode[constant.ErrNotFound],
		},
		{
			name:   "receive stock",
			method: http.MethodPost,
			target: "/slots/receive",
			body:   `{"row":1,"column":2,"location_id":"WH-A","batch_id":"` + productID + `","quantity":-3}`,
			mockCall: func(f fields) {
				f.inventoryApp.On("ReceiveStock", mock.Anything, &model.ReceiveStockRequest{
					SlotAddress: model.SlotAddress{Row: 1, Column: 2, LocationID: "WH-A"},
					BatchID:     productID,
					Quantity:    -3,
				}).Return(&model.ReceiveStockResponse{}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "metrics",
			method:     http.MethodGet,
			target:     "/metrics",
			wantStatus: http.StatusOK,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Contains(t, rec.Body.String(), "go_goroutines")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := fields{
				orderApp:     ordermocks.NewOrderApp(t),
				inventoryApp: inventorymocks.NewInventoryApp(t),
			}
			if tt.mockCall != nil {
				tt.mockCall(f)
			}

			cfg := &config.Config{Auth: config.AuthConfig{InternalAPIKey: apiKey}}
			handler := transport.NewTransport(cfg, f.orderApp, f.inventoryApp)

			req := httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			for k, v := range tt.header {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			if tt.wantCode != "" {
				var got transport.ErrorResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
				assert.Equal(t, tt.wantCode, got.Code)
			}
			if tt.check != nil {
				tt.check(t, rec)
			}
		})
	}
}

package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	inventoryapp "github.com/muhammadheryan/stock-allocation/application/inventory"
	orderapp "github.com/muhammadheryan/stock-allocation/application/order"
	"github.com/muhammadheryan/stock-allocation/cmd/config"
	"github.com/muhammadheryan/stock-allocation/constant"
	"github.com/muhammadheryan/stock-allocation/model"
	"github.com/muhammadheryan/stock-allocation/utils/errors"
	"github.com/muhammadheryan/stock-allocation/utils/metrics"
	validatorx "github.com/muhammadheryan/stock-allocation/utils/validator"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	OrderApp     orderapp.OrderApp
	InventoryApp inventoryapp.InventoryApp
}

func NewTransport(cfg *config.Config, OrderApp orderapp.OrderApp, InventoryApp inventoryapp.InventoryApp) http.Handler {
	mux := mux.NewRouter()

	rh := &RestHandler{
		OrderApp:     OrderApp,
		InventoryApp: InventoryApp,
	}

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)
	mux.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)

	// orders
	mux.HandleFunc("/orders", rh.CreateOrder).Methods(http.MethodPost)
	mux.HandleFunc("/orders/{id}", rh.GetOrder).Methods(http.MethodGet)
	mux.HandleFunc("/orders/{id}/cancel", rh.CancelOrder).Methods(http.MethodPost)
	mux.HandleFunc("/reservations/{id}", rh.PatchLedgerStatus).Methods(http.MethodPatch)

	// inventory
	mux.HandleFunc("/products", rh.CreateProduct).Methods(http.MethodPost)
	mux.HandleFunc("/products/{id}", rh.UpdateProduct).Methods(http.MethodPatch)
	mux.HandleFunc("/products/{id}/locations", rh.ListBatchLocations).Methods(http.MethodGet)
	mux.HandleFunc("/batches", rh.RegisterBatch).Methods(http.MethodPost)
	mux.HandleFunc("/slots/receive", rh.ReceiveStock).Methods(http.MethodPost)

	// internal routes
	internal := mux.PathPrefix("/internal/v1").Subrouter()
	internal.Use(InternalMiddleware(cfg.Auth.InternalAPIKey))
	internal.HandleFunc("/orders/{id}/cancel", rh.ForceCancelOrder).Methods(http.MethodPost)

	// middleware
	mux.Use(LoggingMiddleware())

	return mux
}

// pathID returns the {id} route variable when it is a UUID.
func pathID(r *http.Request) (string, bool) {
	id := mux.Vars(r)["id"]
	if err := validatorx.ValidateVar(id, "required,uuid"); err != nil {
		return "", false
	}
	return id, true
}

// queryBool parses an optional boolean query parameter; absent means false.
func queryBool(r *http.Request, key string) (bool, bool) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return false, true
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}

// decode reads a JSON body into req and validates it.
func decode(r *http.Request, req interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if err := validatorx.ValidateStruct(req); err != nil {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}
	return nil
}

// CreateOrder handler
// @Summary Create order
// @Description Allocate stock for every item and reserve it. With force_accept the order is accepted even when stock is short.
// @Tags Orders
// @Accept json
// @Produce json
// @Param force_accept query bool false "Accept the order despite a shortfall"
// @Param request body model.OrderRequest true "Order Request"
// @Success 201 {object} model.OrderResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /orders [post]
func (s *RestHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	force, ok := queryBool(r, "force_accept")
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.OrderRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	req.ForceAccept = force

	res, err := s.OrderApp.CreateOrder(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, res)
}

// GetOrder handler
// @Summary Get order
// @Description Order with its items and route-ordered reservation ledgers
// @Tags Orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} model.OrderView
// @Failure 404 {object} ErrorResponse
// @Router /orders/{id} [get]
func (s *RestHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.OrderApp.GetOrder(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// CancelOrder handler
// @Summary Cancel order
// @Description Reverse every reservation of an order that is not yet being picked
// @Tags Orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} model.CancelOrderResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /orders/{id}/cancel [post]
func (s *RestHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	s.cancelOrder(w, r, false)
}

// ForceCancelOrder handler
// @Summary Cancel order (internal)
// @Description Cancel an order; with force=true orders already being picked or shipped are cancelled too
// @Tags Internal
// @Produce json
// @Security InternalKey
// @Param id path string true "Order ID"
// @Param force query bool false "Cancel in-flight orders"
// @Success 200 {object} model.CancelOrderResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /internal/v1/orders/{id}/cancel [post]
func (s *RestHandler) ForceCancelOrder(w http.ResponseWriter, r *http.Request) {
	force, ok := queryBool(r, "force")
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	s.cancelOrder(w, r, force)
}

func (s *RestHandler) cancelOrder(w http.ResponseWriter, r *http.Request, force bool) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.OrderApp.CancelOrder(r.Context(), &model.CancelOrderRequest{OrderID: id, ForceCancel: force}); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, model.CancelOrderResponse{OrderID: id, Status: constant.OrderStatusCancelled})
}

// PatchLedgerStatus handler
// @Summary Advance a reservation ledger
// @Description Move a ledger one step along PENDING, PICKING, READY_FOR_TRANSIT, IN_TRANSIT, DELIVERED
// @Tags Orders
// @Accept json
// @Produce json
// @Param id path string true "Ledger ID"
// @Param request body model.PatchLedgerStatusRequest true "Status"
// @Success 200 {object} model.Ledger
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /reservations/{id} [patch]
func (s *RestHandler) PatchLedgerStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.PatchLedgerStatusRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.OrderApp.PatchLedgerStatus(r.Context(), id, req.Status)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// CreateProduct handler
// @Summary Create product
// @Tags Inventory
// @Accept json
// @Produce json
// @Param request body model.CreateProductRequest true "Product"
// @Success 201 {object} model.Product
// @Failure 400 {object} ErrorResponse
// @Router /products [post]
func (s *RestHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req model.CreateProductRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.InventoryApp.CreateProduct(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, res)
}

// UpdateProduct handler
// @Summary Enable or disable a product
// @Tags Inventory
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param request body model.UpdateProductRequest true "Product"
// @Success 200 {object} model.Product
// @Failure 404 {object} ErrorResponse
// @Router /products/{id} [patch]
func (s *RestHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.UpdateProductRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.InventoryApp.SetProductDisabled(r.Context(), id, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ListBatchLocations handler
// @Summary Batch locations of a product
// @Description Batches in FIFO order with the slots holding each
// @Tags Inventory
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} model.ProductLocationsResponse
// @Failure 404 {object} ErrorResponse
// @Router /products/{id}/locations [get]
func (s *RestHandler) ListBatchLocations(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.InventoryApp.ListBatchLocations(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// RegisterBatch handler
// @Summary Register batch
// @Tags Inventory
// @Accept json
// @Produce json
// @Param request body model.RegisterBatchRequest true "Batch"
// @Success 201 {object} model.Batch
// @Failure 404 {object} ErrorResponse
// @Router /batches [post]
func (s *RestHandler) RegisterBatch(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterBatchRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.InventoryApp.RegisterBatch(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, res)
}

// ReceiveStock handler
// @Summary Receive or adjust stock at a slot
// @Description Adds a signed quantity to a batch at the addressed slot, creating the slot if needed
// @Tags Inventory
// @Accept json
// @Produce json
// @Param request body model.ReceiveStockRequest true "Stock movement"
// @Success 200 {object} model.ReceiveStockResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /slots/receive [post]
func (s *RestHandler) ReceiveStock(w http.ResponseWriter, r *http.Request) {
	var req model.ReceiveStockRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.InventoryApp.ReceiveStock(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

package order

import (
	"context"
	stderrors "errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/muhammadheryan/stock-allocation/application/allocation"
	"github.com/muhammadheryan/stock-allocation/cmd/config"
	"github.com/muhammadheryan/stock-allocation/constant"
	"github.com/muhammadheryan/stock-allocation/model"
	orderrepo "github.com/muhammadheryan/stock-allocation/repository/order"
	redisrepo "github.com/muhammadheryan/stock-allocation/repository/redis"
	reservationrepo "github.com/muhammadheryan/stock-allocation/repository/reservation"
	slotrepo "github.com/muhammadheryan/stock-allocation/repository/slot"
	txrepo "github.com/muhammadheryan/stock-allocation/repository/tx"
	"github.com/muhammadheryan/stock-allocation/thirdparty/rabbitmq"
	"github.com/muhammadheryan/stock-allocation/utils/errors"
	"github.com/muhammadheryan/stock-allocation/utils/logger"
	"github.com/muhammadheryan/stock-allocation/utils/metrics"
	"go.uber.org/zap"
)

type OrderApp interface {
	CreateOrder(ctx context.Context, req *model.OrderRequest) (*model.OrderResponse, error)
	GetOrder(ctx context.Context, orderID string) (*model.OrderView, error)
	CancelOrder(ctx context.Context, req *model.CancelOrderRequest) error
	PatchLedgerStatus(ctx context.Context, ledgerID string, status constant.OrderStatus) (*model.Ledger, error)
}

type orderAppImpl struct {
	config          *config.Config
	txRepo          txrepo.TxRepository
	orderRepo       orderrepo.OrderRepository
	reservationRepo reservationrepo.ReservationRepository
	redisRepo       redisrepo.Repository
	allocator       allocation.Allocator
	compensator     allocation.Compensator
	publisher       rabbitmq.EventPublisher
}

func NewOrderApp(
	config *config.Config,
	txRepo txrepo.TxRepository,
	orderRepo orderrepo.OrderRepository,
	reservationRepo reservationrepo.ReservationRepository,
	redisRepo redisrepo.Repository,
	allocator allocation.Allocator,
	compensator allocation.Compensator,
	publisher rabbitmq.EventPublisher,
) OrderApp {
	return &orderAppImpl{
		config:          config,
		txRepo:          txRepo,
		orderRepo:       orderRepo,
		reservationRepo: reservationRepo,
		redisRepo:       redisRepo,
		allocator:       allocator,
		compensator:     compensator,
		publisher:       publisher,
	}
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// mergeItems sums duplicate product lines, keeping first-seen order.
func mergeItems(items []model.OrderItemRequest) []model.OrderItemRequest {
	idx := make(map[string]int, len(items))
	out := make([]model.OrderItemRequest, 0, len(items))
	for _, it := range items {
		if i, ok := idx[it.ProductID]; ok {
			out[i].Quantity += it.Quantity
			continue
		}
		idx[it.ProductID] = len(out)
		out = append(out, it)
	}
	return out
}

func (s *orderAppImpl) CreateOrder(ctx context.Context, req *model.OrderRequest) (*model.OrderResponse, error) {
	if len(req.Items) == 0 {
		metrics.AllocationsTotal.WithLabelValues("rejected").Inc()
		return nil, errors.SetCustomError(constant.ErrEmptyOrder)
	}
	for _, it := range req.Items {
		if it.Quantity <= 0 {
			return nil, errors.SetCustomError(constant.ErrInvalidRequest)
		}
	}

	start := time.Now()
	defer func() {
		metrics.AllocationDuration.Observe(time.Since(start).Seconds())
	}()

	items := mergeItems(req.Items)
	attempts := s.config.Allocation.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	for attempt := 1; ; attempt++ {
		resp, ledgers, err := s.createOrderTx(ctx, items, req.ForceAccept)
		if err == nil {
			s.publishCreated(ctx, resp, ledgers)
			return resp, nil
		}

		if stderrors.Is(err, slotrepo.ErrReservationConflict) {
			if attempt < attempts {
				metrics.AllocationRetries.Inc()
				logger.Info("[CreateOrder] reservation conflict, retrying", zap.Int("attempt", attempt))
				continue
			}
			logger.Error("[CreateOrder] reservation conflict, attempts exhausted", zap.Int("attempts", attempts))
			metrics.AllocationsTotal.WithLabelValues("lock_timeout").Inc()
			return nil, errors.SetCustomError(constant.ErrLockTimeout)
		}

		if errors.IsType(err, constant.ErrInsufficientStock) || errors.IsType(err, constant.ErrEmptyOrder) {
			metrics.AllocationsTotal.WithLabelValues("rejected").Inc()
		} else {
			metrics.AllocationsTotal.WithLabelValues("error").Inc()
		}
		return nil, err
	}
}

// createOrderTx runs one allocation attempt. A raw slot.ErrReservationConflict is returned
// unchanged so the caller can retry; every other error is already typed.
func (s *orderAppImpl) createOrderTx(ctx context.Context, items []model.OrderItemRequest, force bool) (*model.OrderResponse, []model.Ledger, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[CreateOrder] begin tx", zap.String("error", err.Error()))
		return nil, nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	if err := s.txRepo.SetLockTimeoutTx(ctx, tx, s.config.Allocation.LockTimeout); err != nil {
		logger.Error("[CreateOrder] set lock timeout", zap.String("error", err.Error()))
		return nil, nil, errors.SetCustomError(constant.ErrInternal)
	}

	alloc, err := s.allocator.Allocate(ctx, tx, items, force)
	if err != nil {
		var ce errors.CustomError
		switch {
		case stderrors.As(err, &ce):
			return nil, nil, ce
		case stderrors.Is(err, slotrepo.ErrReservationConflict):
			return nil, nil, err
		case txrepo.IsLockTimeout(err):
			logger.Error("[CreateOrder] lock wait timed out", zap.String("error", err.Error()))
			return nil, nil, errors.SetCustomError(constant.ErrLockTimeout)
		}
		logger.Error("[CreateOrder] allocate", zap.String("error", err.Error()))
		return nil, nil, errors.SetCustomError(constant.ErrInternal)
	}

	createdAt := now()
	orderID := uuid.NewString()
	if err := s.orderRepo.InsertOrderTx(ctx, tx, &model.InsertOrderTxItem{
		ID:            orderID,
		Status:        constant.OrderStatusPending,
		ForceAccepted: len(alloc.Shortfall) > 0,
		CreatedAt:     createdAt,
	}); err != nil {
		return nil, nil, txError("CreateOrder", "insert order", err)
	}

	if err := s.orderRepo.InsertOrderItemsTx(ctx, tx, orderID, items); err != nil {
		return nil, nil, txError("CreateOrder", "insert items", err)
	}

	ledgers := s.buildLedgers(orderID, alloc.Picks, createdAt)
	for i := range ledgers {
		if err := s.reservationRepo.InsertLedgerTx(ctx, tx, &ledgers[i]); err != nil {
			return nil, nil, txError("CreateOrder", "insert ledger", err)
		}
		if err := s.reservationRepo.InsertLedgerEntriesTx(ctx, tx, ledgers[i].ID, ledgers[i].Entries); err != nil {
			return nil, nil, txError("CreateOrder", "insert ledger entries", err)
		}
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		return nil, nil, txError("CreateOrder", "commit tx", err)
	}
	committed = true

	resp := &model.OrderResponse{
		OrderID:       orderID,
		Status:        constant.OrderStatusPending,
		LedgerEntries: make([]model.LedgerEntry, 0, len(alloc.Picks)),
		Shortfall:     alloc.Shortfall,
	}
	for _, l := range ledgers {
		if resp.LedgerID == "" {
			resp.LedgerID = l.ID
		}
		resp.LedgerEntries = append(resp.LedgerEntries, l.Entries...)
	}
	return resp, ledgers, nil
}

// buildLedgers splits picks into one route-ordered ledger per location. Unlocated picks
// belong to the default location's ledger.
func (s *orderAppImpl) buildLedgers(orderID string, picks []model.Pick, createdAt time.Time) []model.Ledger {
	groups := make(map[string][]model.Pick)
	for _, p := range picks {
		loc := p.LocationID
		if !p.Located() || loc == "" {
			loc = s.config.Allocation.DefaultLocationID
		}
		groups[loc] = append(groups[loc], p)
	}

	locations := make([]string, 0, len(groups))
	for loc := range groups {
		locations = append(locations, loc)
	}
	sort.Strings(locations)

	ledgers := make([]model.Ledger, 0, len(locations))
	for _, loc := range locations {
		ledgers = append(ledgers, model.Ledger{
			ID:         uuid.NewString(),
			OrderID:    orderID,
			LocationID: loc,
			Status:     constant.OrderStatusPending,
			CreatedAt:  createdAt,
			Entries:    allocation.LedgerEntries(allocation.Sequence(groups[loc])),
		})
	}
	return ledgers
}

func (s *orderAppImpl) publishCreated(ctx context.Context, resp *model.OrderResponse, ledgers []model.Ledger) {
	var short int64
	for _, sf := range resp.Shortfall {
		short += sf.Quantity
	}
	metrics.ShortfallUnits.Add(float64(short))
	if len(resp.Shortfall) > 0 {
		metrics.AllocationsTotal.WithLabelValues("force_accepted").Inc()
	} else {
		metrics.AllocationsTotal.WithLabelValues("accepted").Inc()
	}

	if s.publisher == nil {
		return
	}
	msg := rabbitmq.OrderCreatedMessage{
		OrderID:       resp.OrderID,
		Status:        string(resp.Status),
		ForceAccepted: len(resp.Shortfall) > 0,
		Shortfall:     resp.Shortfall,
		CreatedAt:     now(),
	}
	for _, l := range ledgers {
		msg.LedgerIDs = append(msg.LedgerIDs, l.ID)
	}
	if err := s.publisher.Publish(ctx, rabbitmq.RoutingKeyOrderCreated, msg); err != nil {
		logger.Error("[CreateOrder] publish order created", zap.String("error", err.Error()))
	}
}

func (s *orderAppImpl) GetOrder(ctx context.Context, orderID string) (*model.OrderView, error) {
	detail, err := s.orderRepo.GetOrderDetail(ctx, orderID)
	if err != nil {
		logger.Error("[GetOrder] get order detail", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if detail == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	items, err := s.orderRepo.GetOrderItems(ctx, orderID)
	if err != nil {
		logger.Error("[GetOrder] get order items", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	ledgers, err := s.reservationRepo.ListLedgersWithEntries(ctx, orderID)
	if err != nil {
		logger.Error("[GetOrder] list ledgers", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.OrderView{OrderDetail: *detail, Items: items, Ledgers: ledgers}, nil
}

// lockOrder takes the per-order Redis lock. The returned func releases it.
func (s *orderAppImpl) lockOrder(ctx context.Context, op, orderID string) (func(), error) {
	key := "order:lock:" + orderID
	token := uuid.NewString()
	ok, err := s.redisRepo.AcquireLock(ctx, key, token, s.config.Redis.LockTTL)
	if err != nil {
		logger.Error("["+op+"] acquire order lock", zap.String("order_id", orderID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if !ok {
		logger.Info("["+op+"] order is locked by another request", zap.String("order_id", orderID))
		return nil, errors.SetCustomError(constant.ErrLockTimeout)
	}
	return func() {
		if err := s.redisRepo.ReleaseLock(context.WithoutCancel(ctx), key, token); err != nil {
			logger.Error("["+op+"] release order lock", zap.String("order_id", orderID), zap.String("error", err.Error()))
		}
	}, nil
}

func txError(op, what string, err error) error {
	if txrepo.IsLockTimeout(err) {
		logger.Error("["+op+"] lock wait timed out", zap.String("step", what), zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrLockTimeout)
	}
	logger.Error("["+op+"] "+what, zap.String("error", err.Error()))
	return errors.SetCustomError(constant.ErrInternal)
}

func (s *orderAppImpl) CancelOrder(ctx context.Context, req *model.CancelOrderRequest) error {
	release, err := s.lockOrder(ctx, "CancelOrder", req.OrderID)
	if err != nil {
		return err
	}
	defer release()

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[CancelOrder] begin tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	if err := s.txRepo.SetLockTimeoutTx(ctx, tx, s.config.Allocation.LockTimeout); err != nil {
		return txError("CancelOrder", "set lock timeout", err)
	}

	orderDetail, err := s.orderRepo.GetOrderDetailTx(ctx, tx, req.OrderID)
	if err != nil {
		return txError("CancelOrder", "get order detail", err)
	}
	if orderDetail == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if orderDetail.Status.Terminal() {
		metrics.CancellationsTotal.WithLabelValues("rejected").Inc()
		return errors.SetCustomError(constant.ErrInvalidOrderStatus)
	}

	ledgers, err := s.reservationRepo.ListLedgersByOrderTx(ctx, tx, req.OrderID)
	if err != nil {
		return txError("CancelOrder", "list ledgers", err)
	}

	inFlight := orderDetail.Status.InFlight()
	for _, l := range ledgers {
		inFlight = inFlight || l.Status.InFlight()
	}
	if inFlight {
		if !req.ForceCancel {
			metrics.CancellationsTotal.WithLabelValues("rejected").Inc()
			return errors.SetCustomError(constant.ErrOrderNotCancellable)
		}
		logger.Warn("[CancelOrder] force cancelling in-flight order",
			zap.String("order_id", req.OrderID),
			zap.String("status", string(orderDetail.Status)))
	}

	reversed := 0
	missing := make([]model.LedgerEntry, 0)
	for _, l := range ledgers {
		if l.Status == constant.OrderStatusCancelled {
			continue
		}
		entries, err := s.reservationRepo.GetLedgerEntriesTx(ctx, tx, l.ID)
		if err != nil {
			return txError("CancelOrder", "get ledger entries", err)
		}
		m, err := s.compensator.Reverse(ctx, tx, entries)
		if err != nil {
			return txError("CancelOrder", "reverse reservations", err)
		}
		missing = append(missing, m...)
		reversed += len(entries)

		if err := s.reservationRepo.UpdateLedgerStatusTx(ctx, tx, l.ID, constant.OrderStatusCancelled); err != nil {
			return txError("CancelOrder", "update ledger status", err)
		}
	}

	if err := s.orderRepo.UpdateOrderStatusTx(ctx, tx, req.OrderID, constant.OrderStatusCancelled); err != nil {
		return txError("CancelOrder", "update status", err)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		return txError("CancelOrder", "commit tx", err)
	}
	committed = true

	if req.ForceCancel && inFlight {
		metrics.CancellationsTotal.WithLabelValues("forced").Inc()
	} else {
		metrics.CancellationsTotal.WithLabelValues("cancelled").Inc()
	}
	s.publishCancelled(ctx, orderDetail, req.ForceCancel && inFlight, reversed, missing)
	return nil
}

func (s *orderAppImpl) publishCancelled(ctx context.Context, detail *model.OrderDetail, forced bool, reversed int, missing []model.LedgerEntry) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, rabbitmq.RoutingKeyOrderCancelled, rabbitmq.OrderCancelledMessage{
		OrderID:        detail.ID,
		Forced:         forced,
		ReversedPicks:  reversed,
		SlotMissing:    len(missing),
		CancelledAt:    now(),
		PreviousStatus: string(detail.Status),
	}); err != nil {
		logger.Error("[CancelOrder] publish order cancelled", zap.String("error", err.Error()))
	}

	for _, e := range missing {
		msg := rabbitmq.SlotMissingMessage{
			OrderID:   detail.ID,
			LedgerID:  e.LedgerID,
			ProductID: e.ProductID,
			Quantity:  e.Quantity,
		}
		if e.SlotID != nil {
			msg.SlotID = *e.SlotID
		}
		if e.BatchID != nil {
			msg.BatchID = *e.BatchID
		}
		if err := s.publisher.Publish(ctx, rabbitmq.RoutingKeySlotMissing, msg); err != nil {
			logger.Error("[CancelOrder] publish slot missing", zap.String("error", err.Error()))
		}
	}
}

// PatchLedgerStatus moves one ledger a single step forward. The order adopts the status
// once every one of its ledgers reports it.
func (s *orderAppImpl) PatchLedgerStatus(ctx context.Context, ledgerID string, status constant.OrderStatus) (*model.Ledger, error) {
	if !status.Valid() {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if status == constant.OrderStatusCancelled {
		return nil, errors.SetCustomError(constant.ErrInvalidStatusTransition)
	}

	ledger, err := s.reservationRepo.GetLedger(ctx, ledgerID)
	if err != nil {
		logger.Error("[PatchLedgerStatus] get ledger", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if ledger == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	release, err := s.lockOrder(ctx, "PatchLedgerStatus", ledger.OrderID)
	if err != nil {
		return nil, err
	}
	defer release()

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[PatchLedgerStatus] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	if err := s.txRepo.SetLockTimeoutTx(ctx, tx, s.config.Allocation.LockTimeout); err != nil {
		return nil, txError("PatchLedgerStatus", "set lock timeout", err)
	}

	// order row first, then its ledgers, the same order CancelOrder locks in
	orderDetail, err := s.orderRepo.GetOrderDetailTx(ctx, tx, ledger.OrderID)
	if err != nil {
		return nil, txError("PatchLedgerStatus", "get order detail", err)
	}
	if orderDetail == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	ledgers, err := s.reservationRepo.ListLedgersByOrderTx(ctx, tx, ledger.OrderID)
	if err != nil {
		return nil, txError("PatchLedgerStatus", "list ledgers", err)
	}

	var current *model.Ledger
	for i := range ledgers {
		if ledgers[i].ID == ledgerID {
			current = &ledgers[i]
		}
	}
	if current == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	if !current.Status.CanAdvanceTo(status) {
		return nil, errors.SetCustomError(constant.ErrInvalidStatusTransition)
	}

	if err := s.reservationRepo.UpdateLedgerStatusTx(ctx, tx, ledgerID, status); err != nil {
		return nil, txError("PatchLedgerStatus", "update ledger status", err)
	}
	current.Status = status

	allSame := true
	for _, l := range ledgers {
		allSame = allSame && l.Status == status
	}
	if allSame && orderDetail.Status != status {
		if err := s.orderRepo.UpdateOrderStatusTx(ctx, tx, ledger.OrderID, status); err != nil {
			return nil, txError("PatchLedgerStatus", "update order status", err)
		}
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		return nil, txError("PatchLedgerStatus", "commit tx", err)
	}
	committed = true
	return current, nil
}

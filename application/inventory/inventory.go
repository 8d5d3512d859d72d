package inventory

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/google/uuid"
	"github.com/muhammadheryan/stock-allocation/cmd/config"
	"github.com/muhammadheryan/stock-allocation/constant"
	"github.com/muhammadheryan/stock-allocation/model"
	batchrepo "github.com/muhammadheryan/stock-allocation/repository/batch"
	productrepo "github.com/muhammadheryan/stock-allocation/repository/product"
	slotrepo "github.com/muhammadheryan/stock-allocation/repository/slot"
	txrepo "github.com/muhammadheryan/stock-allocation/repository/tx"
	"github.com/muhammadheryan/stock-allocation/utils/errors"
	"github.com/muhammadheryan/stock-allocation/utils/logger"
	"go.uber.org/zap"
)

type InventoryApp interface {
	CreateProduct(ctx context.Context, req *model.CreateProductRequest) (*model.Product, error)
	SetProductDisabled(ctx context.Context, productID string, req *model.UpdateProductRequest) (*model.Product, error)
	RegisterBatch(ctx context.Context, req *model.RegisterBatchRequest) (*model.Batch, error)
	ReceiveStock(ctx context.Context, req *model.ReceiveStockRequest) (*model.ReceiveStockResponse, error)
	ListBatchLocations(ctx context.Context, productID string) (*model.ProductLocationsResponse, error)
}

type inventoryAppImpl struct {
	config      *config.Config
	txRepo      txrepo.TxRepository
	productRepo productrepo.ProductRepository
	batchRepo   batchrepo.BatchRepository
	slotRepo    slotrepo.SlotRepository
}

func NewInventoryApp(
	config *config.Config,
	txRepo txrepo.TxRepository,
	productRepo productrepo.ProductRepository,
	batchRepo batchrepo.BatchRepository,
	slotRepo slotrepo.SlotRepository,
) InventoryApp {
	return &inventoryAppImpl{
		config:      config,
		txRepo:      txRepo,
		productRepo: productRepo,
		batchRepo:   batchRepo,
		slotRepo:    slotRepo,
	}
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

func (s *inventoryAppImpl) CreateProduct(ctx context.Context, req *model.CreateProductRequest) (*model.Product, error) {
	id := req.ID
	if id == "" {
		id = uuid.NewString()
	}

	existing, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[CreateProduct] error productRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existing != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	p := &model.Product{ID: id, CreatedAt: now()}
	if err := s.productRepo.Insert(ctx, p); err != nil {
		logger.Error("[CreateProduct] error productRepo.Insert", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return p, nil
}

func (s *inventoryAppImpl) SetProductDisabled(ctx context.Context, productID string, req *model.UpdateProductRequest) (*model.Product, error) {
	if req.Disabled == nil {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	found, err := s.productRepo.SetDisabled(ctx, productID, *req.Disabled)
	if err != nil {
		logger.Error("[SetProductDisabled] error productRepo.SetDisabled", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if !found {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	p, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		logger.Error("[SetProductDisabled] error productRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if p == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return p, nil
}

func (s *inventoryAppImpl) RegisterBatch(ctx context.Context, req *model.RegisterBatchRequest) (*model.Batch, error) {
	p, err := s.productRepo.GetByID(ctx, req.ProductID)
	if err != nil {
		logger.Error("[RegisterBatch] error productRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if p == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	createdAt := now()
	if req.CreatedAt != nil {
		createdAt = req.CreatedAt.UTC().Truncate(time.Microsecond)
	}

	b := &model.Batch{ID: uuid.NewString(), ProductID: req.ProductID, CreatedAt: createdAt}
	if err := s.batchRepo.Insert(ctx, b); err != nil {
		logger.Error("[RegisterBatch] error batchRepo.Insert", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return b, nil
}

// ReceiveStock applies a signed quantity to a batch's position in the slot at the given
// address, creating the slot and position as needed. A position left at zero/zero is removed.
func (s *inventoryAppImpl) ReceiveStock(ctx context.Context, req *model.ReceiveStockRequest) (*model.ReceiveStockResponse, error) {
	if req.Quantity == 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[ReceiveStock] error begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	if err := s.txRepo.SetLockTimeoutTx(ctx, tx, s.config.Allocation.LockTimeout); err != nil {
		return nil, txError("set lock timeout", err)
	}

	batch, err := s.batchRepo.GetByIDTx(ctx, tx, req.BatchID)
	if err != nil {
		return nil, txError("get batch", err)
	}
	if batch == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	slot, err := s.slotRepo.GetSlotByAddressTx(ctx, tx, req.SlotAddress, true)
	if err != nil {
		return nil, txError("get slot", err)
	}
	if slot == nil {
		slot = &model.Slot{
			ID:         uuid.NewString(),
			Row:        req.Row,
			Column:     req.Column,
			LocationID: req.LocationID,
		}
		if err := s.slotRepo.InsertSlotTx(ctx, tx, slot); err != nil {
			return nil, txError("insert slot", err)
		}
	}

	if i := slot.EntryIndex(req.BatchID); i >= 0 {
		entry := slot.Entries[i]
		if entry.OnHand+req.Quantity < 0 || entry.Promised+req.Quantity < 0 {
			return nil, errors.SetCustomError(constant.ErrNegativeStock)
		}
		if err := s.slotRepo.AdjustEntryTx(ctx, tx, entry.ID, req.Quantity); err != nil {
			if stderrors.Is(err, slotrepo.ErrNegativeQuantity) {
				return nil, errors.SetCustomError(constant.ErrNegativeStock)
			}
			return nil, txError("adjust entry", err)
		}
		if entry.OnHand+req.Quantity == 0 && entry.Promised+req.Quantity == 0 {
			if err := s.slotRepo.DeleteEntryTx(ctx, tx, entry.ID); err != nil {
				return nil, txError("delete entry", err)
			}
		}
	} else {
		if req.Quantity < 0 {
			return nil, errors.SetCustomError(constant.ErrNegativeStock)
		}
		if err := s.slotRepo.AppendEntryTx(ctx, tx, &model.SlotEntry{
			ID:       uuid.NewString(),
			SlotID:   slot.ID,
			BatchID:  req.BatchID,
			OnHand:   req.Quantity,
			Promised: req.Quantity,
		}); err != nil {
			return nil, txError("append entry", err)
		}
	}

	updated, err := s.slotRepo.GetSlotTx(ctx, tx, slot.ID, false)
	if err != nil {
		return nil, txError("reload slot", err)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		return nil, txError("commit tx", err)
	}
	committed = true

	return &model.ReceiveStockResponse{Slot: *updated}, nil
}

func txError(what string, err error) error {
	if txrepo.IsLockTimeout(err) {
		logger.Error("[ReceiveStock] lock wait timed out", zap.String("step", what), zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrLockTimeout)
	}
	logger.Error("[ReceiveStock] error "+what, zap.String("error", err.Error()))
	return errors.SetCustomError(constant.ErrInternal)
}

func (s *inventoryAppImpl) ListBatchLocations(ctx context.Context, productID string) (*model.ProductLocationsResponse, error) {
	p, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		logger.Error("[ListBatchLocations] error productRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if p == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	batches, err := s.batchRepo.ListByProduct(ctx, productID)
	if err != nil {
		logger.Error("[ListBatchLocations] error batchRepo.ListByProduct", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	resp := &model.ProductLocationsResponse{
		ProductID: productID,
		Batches:   make([]model.BatchLocations, 0, len(batches)),
	}
	if len(batches) == 0 {
		return resp, nil
	}

	ids := make([]string, 0, len(batches))
	for _, b := range batches {
		ids = append(ids, b.ID)
	}
	slots, err := s.slotRepo.FindEntriesByBatches(ctx, ids)
	if err != nil {
		logger.Error("[ListBatchLocations] error slotRepo.FindEntriesByBatches", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	locations := make(map[string][]model.BatchLocation, len(batches))
	for _, sl := range slots {
		for _, e := range sl.Entries {
			locations[e.BatchID] = append(locations[e.BatchID], model.BatchLocation{
				SlotID:     sl.ID,
				Row:        sl.Row,
				Column:     sl.Column,
				LocationID: sl.LocationID,
				OnHand:     e.OnHand,
				Promised:   e.Promised,
			})
		}
	}

	for i, b := range batches {
		locs := locations[b.ID]
		if locs == nil {
			locs = []model.BatchLocation{}
		}
		resp.Batches = append(resp.Batches, model.BatchLocations{
			BatchID:   b.ID,
			CreatedAt: b.CreatedAt,
			Index:     i,
			Locations: locs,
		})
	}
	return resp, nil
}

package order_test

import (
	"context"
	stderrors "errors"
	"sync"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/stock-allocation/application/allocation"
	apporder "github.com/muhammadheryan/stock-allocation/application/order"
	"github.com/muhammadheryan/stock-allocation/cmd/config"
	"github.com/muhammadheryan/stock-allocation/constant"
	"github.com/muhammadheryan/stock-allocation/model"
	batchrepo "github.com/muhammadheryan/stock-allocation/repository/batch"
	orderrepo "github.com/muhammadheryan/stock-allocation/repository/order"
	redisrepo "github.com/muhammadheryan/stock-allocation/repository/redis"
	reservationrepo "github.com/muhammadheryan/stock-allocation/repository/reservation"
	slotrepo "github.com/muhammadheryan/stock-allocation/repository/slot"
	"github.com/muhammadheryan/stock-allocation/repository/testdb"
	txrepo "github.com/muhammadheryan/stock-allocation/repository/tx"
	cerr "github.com/muhammadheryan/stock-allocation/utils/errors"
	"github.com/muhammadheryan/stock-allocation/utils/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

type inventory struct {
	product       string
	old, mid, new string
	slotA         string
	slotB         string
	slotC         string
}

// seed stores three batches: the oldest at WH-A with 80 free, the middle one at WH-B with
// 100 free and the newest at WH-C with 50 free.
func seed(t *testing.T, db *sqlx.DB) inventory {
	inv := inventory{product: testdb.Product(t, db)}
	inv.old = testdb.Batch(t, db, inv.product, epoch)
	inv.mid = testdb.Batch(t, db, inv.product, epoch.AddDate(0, 0, 1))
	inv.new = testdb.Batch(t, db, inv.product, epoch.AddDate(0, 0, 2))
	inv.slotA = testdb.Slot(t, db, 1, 1, "WH-A")
	inv.slotB = testdb.Slot(t, db, 1, 3, "WH-B")
	inv.slotC = testdb.Slot(t, db, 2, 1, "WH-C")
	testdb.Entry(t, db, inv.slotA, inv.old, 100, 80)
	testdb.Entry(t, db, inv.slotB, inv.mid, 100, 100)
	testdb.Entry(t, db, inv.slotC, inv.new, 100, 50)
	return inv
}

func newSQLOrderApp(db *sqlx.DB, lastResort bool) apporder.OrderApp {
	cfg := &config.Config{
		Redis: config.RedisConfig{LockTTL: time.Minute},
		Allocation: config.AllocationConfig{
			LockTimeout:       time.Second,
			MaxAttempts:       3,
			LastResortWave:    lastResort,
			DefaultLocationID: "WH-DEFAULT",
		},
	}
	slotRepo := slotrepo.NewSlotRepository(db)
	return apporder.NewOrderApp(
		cfg,
		txrepo.NewTxRepository(db),
		orderrepo.NewOrderRepository(db),
		reservationrepo.NewReservationRepository(db),
		redisrepo.NewRepository(),
		allocation.NewAllocator(batchrepo.NewBatchRepository(db), slotRepo, allocation.Options{LastResortWave: lastResort}),
		allocation.NewCompensator(slotRepo),
		nil,
	)
}

func ledgerAt(t *testing.T, ledgers []model.Ledger, location string) model.Ledger {
	t.Helper()
	for _, l := range ledgers {
		if l.LocationID == location {
			return l
		}
	}
	t.Fatalf("no ledger at %s", location)
	return model.Ledger{}
}

func TestOrderApp_Lifecycle(t *testing.T) {
	logger.Replace(zap.NewNop())
	ctx := context.Background()
	db := testdb.New(t)
	app := newSQLOrderApp(db, false)

	t.Run("cancel restores every promised counter", func(t *testing.T) {
		testdb.Reset(t, db)
		inv := seed(t, db)
		before := testdb.Promised(t, db)

		resp, err := app.CreateOrder(ctx, &model.OrderRequest{Items: []model.OrderItemRequest{{ProductID: inv.product, Quantity: 120}}})
		require.NoError(t, err)
		assert.Empty(t, resp.Shortfall)
		assert.Len(t, resp.LedgerEntries, 2)

		after := testdb.Promised(t, db)
		assert.Equal(t, int64(0), after[testdb.Key(inv.slotA, inv.old)])
		assert.Equal(t, int64(60), after[testdb.Key(inv.slotB, inv.mid)])
		assert.Equal(t, int64(50), after[testdb.Key(inv.slotC, inv.new)])
		for _, onHand := range testdb.OnHand(t, db) {
			assert.Equal(t, int64(100), onHand)
		}

		view, err := app.GetOrder(ctx, resp.OrderID)
		require.NoError(t, err)
		require.Len(t, view.Ledgers, 2)
		assert.Equal(t, int64(80), ledgerAt(t, view.Ledgers, "WH-A").Entries[0].Quantity)
		assert.Equal(t, int64(40), ledgerAt(t, view.Ledgers, "WH-B").Entries[0].Quantity)

		require.NoError(t, app.CancelOrder(ctx, &model.CancelOrderRequest{OrderID: resp.OrderID}))
		assert.Equal(t, before, testdb.Promised(t, db))

		view, err = app.GetOrder(ctx, resp.OrderID)
		require.NoError(t, err)
		assert.Equal(t, constant.OrderStatusCancelled, view.Status)
		for _, l := range view.Ledgers {
			assert.Equal(t, constant.OrderStatusCancelled, l.Status)
		}

		err = app.CancelOrder(ctx, &model.CancelOrderRequest{OrderID: resp.OrderID})
		assert.True(t, cerr.IsType(err, constant.ErrInvalidOrderStatus))
		assert.Equal(t, before, testdb.Promised(t, db))
	})

	t.Run("rejected order leaves no trace", func(t *testing.T) {
		testdb.Reset(t, db)
		inv := seed(t, db)
		before := testdb.Promised(t, db)

		_, err := app.CreateOrder(ctx, &model.OrderRequest{Items: []model.OrderItemRequest{{ProductID: inv.product, Quantity: 181}}})
		require.True(t, cerr.IsType(err, constant.ErrInsufficientStock))
		assert.Equal(t, before, testdb.Promised(t, db))

		var n int
		require.NoError(t, db.Get(&n, `SELECT COUNT(*) FROM orders`))
		assert.Zero(t, n)
	})

	t.Run("newest batch is held back", func(t *testing.T) {
		testdb.Reset(t, db)
		inv := seed(t, db)

		_, err := app.CreateOrder(ctx, &model.OrderRequest{Items: []model.OrderItemRequest{{ProductID: inv.product, Quantity: 180}}})
		require.NoError(t, err)

		_, err = app.CreateOrder(ctx, &model.OrderRequest{Items: []model.OrderItemRequest{{ProductID: inv.product, Quantity: 1}}})
		require.True(t, cerr.IsType(err, constant.ErrInsufficientStock))
		assert.Equal(t, int64(50), testdb.Promised(t, db)[testdb.Key(inv.slotC, inv.new)])
	})

	t.Run("two batches only offer the oldest", func(t *testing.T) {
		testdb.Reset(t, db)
		product := testdb.Product(t, db)
		old := testdb.Batch(t, db, product, epoch)
		newest := testdb.Batch(t, db, product, epoch.AddDate(0, 0, 1))
		slotA := testdb.Slot(t, db, 1, 1, "WH-A")
		slotB := testdb.Slot(t, db, 1, 3, "WH-B")
		testdb.Entry(t, db, slotA, old, 100, 80)
		testdb.Entry(t, db, slotB, newest, 100, 100)
		before := testdb.Promised(t, db)

		_, err := app.CreateOrder(ctx, &model.OrderRequest{Items: []model.OrderItemRequest{{ProductID: product, Quantity: 100}}})
		require.True(t, cerr.IsType(err, constant.ErrInsufficientStock))
		var ce cerr.CustomError
		require.True(t, stderrors.As(err, &ce))
		assert.Equal(t, []model.Shortfall{{ProductID: product, Quantity: 20}}, ce.Details())
		assert.Equal(t, before, testdb.Promised(t, db))
	})

	t.Run("force accepted shortfall goes to the default ledger", func(t *testing.T) {
		testdb.Reset(t, db)
		inv := seed(t, db)
		before := testdb.Promised(t, db)

		resp, err := app.CreateOrder(ctx, &model.OrderRequest{
			Items:       []model.OrderItemRequest{{ProductID: inv.product, Quantity: 500}},
			ForceAccept: true,
		})
		require.NoError(t, err)
		assert.Equal(t, []model.Shortfall{{ProductID: inv.product, Quantity: 320}}, resp.Shortfall)

		view, err := app.GetOrder(ctx, resp.OrderID)
		require.NoError(t, err)
		assert.True(t, view.ForceAccepted)
		def := ledgerAt(t, view.Ledgers, "WH-DEFAULT")
		require.Len(t, def.Entries, 1)
		assert.Nil(t, def.Entries[0].SlotID)
		assert.Equal(t, int64(320), def.Entries[0].Quantity)

		require.NoError(t, app.CancelOrder(ctx, &model.CancelOrderRequest{OrderID: resp.OrderID}))
		assert.Equal(t, before, testdb.Promised(t, db))
	})

	t.Run("picking blocks cancel until forced", func(t *testing.T) {
		testdb.Reset(t, db)
		inv := seed(t, db)
		before := testdb.Promised(t, db)

		resp, err := app.CreateOrder(ctx, &model.OrderRequest{Items: []model.OrderItemRequest{{ProductID: inv.product, Quantity: 90}}})
		require.NoError(t, err)
		view, err := app.GetOrder(ctx, resp.OrderID)
		require.NoError(t, err)
		a := ledgerAt(t, view.Ledgers, "WH-A")
		b := ledgerAt(t, view.Ledgers, "WH-B")

		got, err := app.PatchLedgerStatus(ctx, a.ID, constant.OrderStatusPicking)
		require.NoError(t, err)
		assert.Equal(t, constant.OrderStatusPicking, got.Status)

		view, err = app.GetOrder(ctx, resp.OrderID)
		require.NoError(t, err)
		assert.Equal(t, constant.OrderStatusPending, view.Status)

		_, err = app.PatchLedgerStatus(ctx, a.ID, constant.OrderStatusInTransit)
		assert.True(t, cerr.IsType(err, constant.ErrInvalidStatusTransition))

		err = app.CancelOrder(ctx, &model.CancelOrderRequest{OrderID: resp.OrderID})
		assert.True(t, cerr.IsType(err, constant.ErrOrderNotCancellable))

		_, err = app.PatchLedgerStatus(ctx, b.ID, constant.OrderStatusPicking)
		require.NoError(t, err)
		view, err = app.GetOrder(ctx, resp.OrderID)
		require.NoError(t, err)
		assert.Equal(t, constant.OrderStatusPicking, view.Status)

		require.NoError(t, app.CancelOrder(ctx, &model.CancelOrderRequest{OrderID: resp.OrderID, ForceCancel: true}))
		assert.Equal(t, before, testdb.Promised(t, db))
	})

	t.Run("reversal re-creates a batch that left its slot", func(t *testing.T) {
		testdb.Reset(t, db)
		inv := seed(t, db)

		resp, err := app.CreateOrder(ctx, &model.OrderRequest{Items: []model.OrderItemRequest{{ProductID: inv.product, Quantity: 30}}})
		require.NoError(t, err)

		_, err = db.Exec(`DELETE FROM slot_entries WHERE slot_id = ? AND batch_id = ?`, inv.slotA, inv.old)
		require.NoError(t, err)

		require.NoError(t, app.CancelOrder(ctx, &model.CancelOrderRequest{OrderID: resp.OrderID}))
		assert.Equal(t, int64(30), testdb.Promised(t, db)[testdb.Key(inv.slotA, inv.old)])
		assert.Equal(t, int64(0), testdb.OnHand(t, db)[testdb.Key(inv.slotA, inv.old)])
	})
}

func TestOrderApp_LastResortWave(t *testing.T) {
	logger.Replace(zap.NewNop())
	ctx := context.Background()
	db := testdb.New(t)
	app := newSQLOrderApp(db, true)
	inv := seed(t, db)

	resp, err := app.CreateOrder(ctx, &model.OrderRequest{Items: []model.OrderItemRequest{{ProductID: inv.product, Quantity: 200}}})
	require.NoError(t, err)
	assert.Empty(t, resp.Shortfall)

	promised := testdb.Promised(t, db)
	assert.Equal(t, int64(0), promised[testdb.Key(inv.slotA, inv.old)])
	assert.Equal(t, int64(0), promised[testdb.Key(inv.slotB, inv.mid)])
	assert.Equal(t, int64(30), promised[testdb.Key(inv.slotC, inv.new)])

	view, err := app.GetOrder(ctx, resp.OrderID)
	require.NoError(t, err)
	require.Len(t, view.Ledgers, 3)
	assert.Equal(t, int64(20), ledgerAt(t, view.Ledgers, "WH-C").Entries[0].Quantity)

	_, err = app.CreateOrder(ctx, &model.OrderRequest{Items: []model.OrderItemRequest{{ProductID: inv.product, Quantity: 31}}})
	assert.True(t, cerr.IsType(err, constant.ErrInsufficientStock))
}

func TestOrderApp_ConcurrentCreateOrder(t *testing.T) {
	logger.Replace(zap.NewNop())
	ctx := context.Background()
	db := testdb.NewFile(t, 8)
	app := newSQLOrderApp(db, false)

	product := testdb.Product(t, db)
	batch := testdb.Batch(t, db, product, epoch)
	slot := testdb.Slot(t, db, 1, 1, "WH-A")
	testdb.Entry(t, db, slot, batch, 100, 100)

	const workers, qty = 20, 10
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		accepted int
		failures []error
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := app.CreateOrder(ctx, &model.OrderRequest{Items: []model.OrderItemRequest{{ProductID: product, Quantity: qty}}})
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failures = append(failures, err)
				return
			}
			accepted++
		}()
	}
	wg.Wait()

	for _, err := range failures {
		assert.True(t, cerr.IsType(err, constant.ErrInsufficientStock) || cerr.IsType(err, constant.ErrLockTimeout), err.Error())
	}
	assert.NotZero(t, accepted)

	var reserved int64
	require.NoError(t, db.Get(&reserved, `SELECT COALESCE(SUM(quantity), 0) FROM reservation_ledger_entries`))
	assert.Equal(t, int64(accepted*qty), reserved)

	promised := testdb.Promised(t, db)[testdb.Key(slot, batch)]
	assert.GreaterOrEqual(t, promised, int64(0))
	assert.Equal(t, int64(100), promised+reserved)
}

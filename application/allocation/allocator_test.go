package allocation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/stock-allocation/constant"
	"github.com/muhammadheryan/stock-allocation/model"
	batchrepo "github.com/muhammadheryan/stock-allocation/repository/batch"
	slotrepo "github.com/muhammadheryan/stock-allocation/repository/slot"
	"github.com/muhammadheryan/stock-allocation/repository/testdb"
	cerr "github.com/muhammadheryan/stock-allocation/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func newAllocator(db *sqlx.DB, opts Options) Allocator {
	return NewAllocator(batchrepo.NewBatchRepository(db), slotrepo.NewSlotRepository(db), opts)
}

// allocate runs one allocation in its own transaction, committing only on success.
func allocate(t require.TestingT, db *sqlx.DB, a Allocator, items []model.OrderItemRequest, force bool) (*model.Allocation, error) {
	tx, err := db.Beginx()
	require.NoError(t, err)
	res, err := a.Allocate(context.Background(), tx, items, force)
	if err != nil {
		require.NoError(t, tx.Rollback())
		return nil, err
	}
	require.NoError(t, tx.Commit())
	return res, nil
}

func batchOf(p model.Pick) string {
	if p.BatchID == nil {
		return ""
	}
	return *p.BatchID
}

func TestAllocate_ScenarioOldestBatchDrainedFirst(t *testing.T) {
	db := testdb.New(t)
	p := testdb.Product(t, db)
	var batches [4]string
	for i := range batches {
		batches[i] = testdb.Batch(t, db, p, epoch.Add(time.Duration(i)*time.Hour))
	}
	s1 := testdb.Slot(t, db, 1, 1, "WH-A")
	s2 := testdb.Slot(t, db, 1, 2, "WH-A")
	for _, s := range []string{s1, s2} {
		for _, b := range batches {
			testdb.Entry(t, db, s, b, 100, 100)
		}
	}

	res, err := allocate(t, db, newAllocator(db, Options{LastResortWave: true}), []model.OrderItemRequest{{ProductID: p, Quantity: 250}}, false)
	require.NoError(t, err)

	require.Len(t, res.Picks, 3)
	assert.Empty(t, res.Shortfall)
	assert.Equal(t, batches[0], batchOf(res.Picks[0]))
	assert.Equal(t, int64(100), res.Picks[0].Quantity)
	assert.Equal(t, batches[0], batchOf(res.Picks[1]))
	assert.Equal(t, int64(100), res.Picks[1].Quantity)
	assert.Equal(t, batches[1], batchOf(res.Picks[2]))
	assert.Equal(t, int64(50), res.Picks[2].Quantity)

	promised := testdb.Promised(t, db)
	assert.Equal(t, int64(0), promised[testdb.Key(s1, batches[0])])
	assert.Equal(t, int64(0), promised[testdb.Key(s2, batches[0])])
	assert.Equal(t, int64(150), promised[testdb.Key(s1, batches[1])]+promised[testdb.Key(s2, batches[1])])
	for _, s := range []string{s1, s2} {
		assert.Equal(t, int64(100), promised[testdb.Key(s, batches[2])])
		assert.Equal(t, int64(100), promised[testdb.Key(s, batches[3])])
	}

	onHand := testdb.OnHand(t, db)
	for k, v := range onHand {
		assert.Equal(t, int64(100), v, k)
	}
}

func TestAllocate_FIFO(t *testing.T) {
	tests := []struct {
		name          string
		opts          Options
		force         bool
		wantErr       bool
		wantOld       int64
		wantNew       int64
		wantShortfall []int64
	}{
		{name: "last resort wave drains oldest before newest", opts: Options{LastResortWave: true}, wantOld: 0, wantNew: 50},
		{name: "without last resort wave newest is never touched", opts: Options{}, wantErr: true, wantOld: 100, wantNew: 100},
		{name: "force accept without last resort wave leaves unlocated remainder", opts: Options{}, force: true, wantOld: 0, wantNew: 100, wantShortfall: []int64{50}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := testdb.New(t)
			p := testdb.Product(t, db)
			oldest := testdb.Batch(t, db, p, epoch)
			newest := testdb.Batch(t, db, p, epoch.Add(24*time.Hour))
			// newest sits on the lower row so route order cannot be mistaken for FIFO order
			sOld := testdb.Slot(t, db, 5, 1, "WH-A")
			sNew := testdb.Slot(t, db, 1, 1, "WH-A")
			testdb.Entry(t, db, sOld, oldest, 100, 100)
			testdb.Entry(t, db, sNew, newest, 100, 100)

			res, err := allocate(t, db, newAllocator(db, tt.opts), []model.OrderItemRequest{{ProductID: p, Quantity: 150}}, tt.force)
			if tt.wantErr {
				require.Error(t, err)
				var ce cerr.CustomError
				require.True(t, errors.As(err, &ce))
				assert.Equal(t, constant.ErrInsufficientStock, ce.Type())
				assert.Equal(t, []model.Shortfall{{ProductID: p, Quantity: 50}}, ce.Details())
			} else {
				require.NoError(t, err)
				assert.Equal(t, oldest, batchOf(res.Picks[0]))
				assert.Equal(t, int64(100), res.Picks[0].Quantity)
				var short []int64
				for _, s := range res.Shortfall {
					short = append(short, s.Quantity)
				}
				assert.Equal(t, tt.wantShortfall, short)
			}

			promised := testdb.Promised(t, db)
			assert.Equal(t, tt.wantOld, promised[testdb.Key(sOld, oldest)])
			assert.Equal(t, tt.wantNew, promised[testdb.Key(sNew, newest)])
		})
	}
}

func TestAllocate_ForceAcceptAppendsUnlocatedPicks(t *testing.T) {
	db := testdb.New(t)
	p := testdb.Product(t, db)
	b := testdb.Batch(t, db, p, epoch)
	s := testdb.Slot(t, db, 2, 3, "WH-A")
	testdb.Entry(t, db, s, b, 40, 40)
	unknown := uuid.NewString()

	res, err := allocate(t, db, newAllocator(db, Options{LastResortWave: true}), []model.OrderItemRequest{
		{ProductID: p, Quantity: 70},
		{ProductID: unknown, Quantity: 5},
	}, true)
	require.NoError(t, err)

	require.Len(t, res.Picks, 3)
	assert.True(t, res.Picks[0].Located())
	assert.Equal(t, "WH-A", res.Picks[0].LocationID)
	assert.Equal(t, model.Pick{ProductID: p, Quantity: 30}, res.Picks[1])
	assert.Equal(t, model.Pick{ProductID: unknown, Quantity: 5}, res.Picks[2])
	assert.Equal(t, []model.Shortfall{{ProductID: p, Quantity: 30}, {ProductID: unknown, Quantity: 5}}, res.Shortfall)
	assert.Equal(t, int64(0), testdb.Promised(t, db)[testdb.Key(s, b)])
}

func TestAllocate_Rejections(t *testing.T) {
	db := testdb.New(t)
	p := testdb.Product(t, db)
	disabled := testdb.Product(t, db)
	b := testdb.Batch(t, db, p, epoch)
	bd := testdb.Batch(t, db, disabled, epoch)
	s := testdb.Slot(t, db, 1, 1, "WH-A")
	testdb.Entry(t, db, s, b, 100, 100)
	testdb.Entry(t, db, s, bd, 100, 100)
	testdb.DisableProduct(t, db, disabled)
	before := testdb.Promised(t, db)

	tests := []struct {
		name          string
		items         []model.OrderItemRequest
		errCode       constant.ErrorType
		wantShortfall []model.Shortfall
	}{
		{
			name:    "empty order",
			items:   nil,
			errCode: constant.ErrEmptyOrder,
		},
		{
			name:          "partial reservations are rolled back",
			items:         []model.OrderItemRequest{{ProductID: p, Quantity: 60}, {ProductID: p, Quantity: 60}},
			errCode:       constant.ErrInsufficientStock,
			wantShortfall: []model.Shortfall{{ProductID: p, Quantity: 20}},
		},
		{
			name:          "disabled product is a full shortfall",
			items:         []model.OrderItemRequest{{ProductID: p, Quantity: 10}, {ProductID: disabled, Quantity: 10}},
			errCode:       constant.ErrInsufficientStock,
			wantShortfall: []model.Shortfall{{ProductID: disabled, Quantity: 10}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := allocate(t, db, newAllocator(db, Options{LastResortWave: true}), tt.items, false)
			require.Error(t, err)
			var ce cerr.CustomError
			require.True(t, errors.As(err, &ce))
			assert.Equal(t, tt.errCode, ce.Type())
			if tt.wantShortfall != nil {
				assert.Equal(t, tt.wantShortfall, ce.Details())
			}
			assert.Equal(t, before, testdb.Promised(t, db))
		})
	}
}

func TestAllocate_SkipsFullyPromisedEntries(t *testing.T) {
	db := testdb.New(t)
	p := testdb.Product(t, db)
	b := testdb.Batch(t, db, p, epoch)
	committed := testdb.Slot(t, db, 1, 1, "WH-A")
	open := testdb.Slot(t, db, 1, 2, "WH-A")
	testdb.Entry(t, db, committed, b, 25, 0)
	testdb.Entry(t, db, open, b, 25, 25)

	res, err := allocate(t, db, newAllocator(db, Options{}), []model.OrderItemRequest{{ProductID: p, Quantity: 10}}, false)
	require.NoError(t, err)
	require.Len(t, res.Picks, 1)
	assert.Equal(t, open, *res.Picks[0].SlotID)
	assert.Equal(t, int64(10), res.Picks[0].Quantity)
}

func TestAllocate_ConservationProperty(t *testing.T) {
	db := testdb.New(t)
	alloc := newAllocator(db, Options{LastResortWave: true})
	comp := NewCompensator(slotrepo.NewSlotRepository(db))
	ctx := context.Background()

	rapid.Check(t, func(rt *rapid.T) {
		testdb.Reset(rt, db)

		nSlots := rapid.IntRange(1, 4).Draw(rt, "slots")
		slots := make([]string, nSlots)
		for i := range slots {
			slots[i] = testdb.Slot(rt, db, i/2+1, i%2+1, "WH-A")
		}
		products := make([]string, rapid.IntRange(1, 3).Draw(rt, "products"))
		for i := range products {
			products[i] = testdb.Product(rt, db)
			nBatches := rapid.IntRange(1, 4).Draw(rt, "batches")
			for j := 0; j < nBatches; j++ {
				b := testdb.Batch(rt, db, products[i], epoch.Add(time.Duration(j)*time.Hour))
				for _, s := range slots {
					if rapid.Bool().Draw(rt, "stocked") {
						q := rapid.Int64Range(0, 60).Draw(rt, "promised")
						testdb.Entry(rt, db, s, b, q+rapid.Int64Range(0, 5).Draw(rt, "committed"), q)
					}
				}
			}
		}
		before := testdb.Promised(rt, db)

		var placed [][]model.LedgerEntry
		nOrders := rapid.IntRange(1, 4).Draw(rt, "orders")
		for o := 0; o < nOrders; o++ {
			var items []model.OrderItemRequest
			for _, p := range products {
				if rapid.Bool().Draw(rt, "ordered") {
					items = append(items, model.OrderItemRequest{ProductID: p, Quantity: rapid.Int64Range(1, 150).Draw(rt, "qty")})
				}
			}
			if len(items) == 0 {
				continue
			}
			res, err := allocate(rt, db, alloc, items, rapid.Bool().Draw(rt, "force"))
			if err != nil {
				require.True(rt, cerr.IsType(err, constant.ErrInsufficientStock), err)
				continue
			}
			placed = append(placed, LedgerEntries(Sequence(res.Picks)))
		}

		for k, v := range testdb.Promised(rt, db) {
			require.GreaterOrEqual(rt, v, int64(0), k)
		}

		idx := make([]int, len(placed))
		for i := range idx {
			idx[i] = i
		}
		for _, i := range rapid.Permutation(idx).Draw(rt, "cancel order") {
			tx, err := db.Beginx()
			require.NoError(rt, err)
			missing, err := comp.Reverse(ctx, tx, placed[i])
			require.NoError(rt, err)
			require.Empty(rt, missing)
			require.NoError(rt, tx.Commit())
		}

		require.Equal(rt, before, testdb.Promised(rt, db))
	})
}

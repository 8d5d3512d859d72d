package rabbitmq

import (
	"context"
	"errors"
	"testing"

	"github.com/muhammadheryan/stock-allocation/constant"
	"github.com/muhammadheryan/stock-allocation/model"
	cerr "github.com/muhammadheryan/stock-allocation/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type patcherMock struct {
	mock.Mock
}

func (m *patcherMock) PatchLedgerStatus(ctx context.Context, ledgerID string, status constant.OrderStatus) (*model.Ledger, error) {
	args := m.Called(ctx, ledgerID, status)
	l, _ := args.Get(0).(*model.Ledger)
	return l, args.Error(1)
}

func TestConsumer_handle(t *testing.T) {
	body := []byte(`{"ledger_id":"l-1","status":"PICKING"}`)

	tests := []struct {
		name     string
		body     []byte
		mockCall func(m *patcherMock)
		want     outcome
	}{
		{
			name: "applied",
			body: body,
			mockCall: func(m *patcherMock) {
				m.On("PatchLedgerStatus", mock.Anything, "l-1", constant.OrderStatusPicking).
					Return(&model.Ledger{ID: "l-1", Status: constant.OrderStatusPicking}, nil).Once()
			},
			want: ack,
		},
		{
			name: "malformed body is dropped",
			body: []byte(`{`),
			want: ack,
		},
		{
			name: "invalid transition is dropped",
			body: body,
			mockCall: func(m *patcherMock) {
				m.On("PatchLedgerStatus", mock.Anything, "l-1", constant.OrderStatusPicking).
					Return(nil, cerr.SetCustomError(constant.ErrInvalidStatusTransition)).Once()
			},
			want: ack,
		},
		{
			name: "lock timeout is requeued",
			body: body,
			mockCall: func(m *patcherMock) {
				m.On("PatchLedgerStatus", mock.Anything, "l-1", constant.OrderStatusPicking).
					Return(nil, cerr.SetCustomError(constant.ErrLockTimeout)).Once()
			},
			want: requeue,
		},
		{
			name: "internal error is requeued",
			body: body,
			mockCall: func(m *patcherMock) {
				m.On("PatchLedgerStatus", mock.Anything, "l-1", constant.OrderStatusPicking).
					Return(nil, errors.New("connection reset")).Once()
			},
			want: requeue,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &patcherMock{}
			if tt.mockCall != nil {
				tt.mockCall(m)
			}
			c := &Consumer{patcher: m}
			assert.Equal(t, tt.want, c.handle(context.Background(), tt.body))
			m.AssertExpectations(t)
		})
	}
}

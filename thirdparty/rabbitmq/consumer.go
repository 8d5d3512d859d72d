package rabbitmq

import (
	"context"
	"encoding/json"
	stderrors "errors"

	"github.com/muhammadheryan/stock-allocation/constant"
	"github.com/muhammadheryan/stock-allocation/model"
	"github.com/muhammadheryan/stock-allocation/utils/errors"
	"github.com/muhammadheryan/stock-allocation/utils/logger"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// StatusPatcher applies a picker status update to a reservation ledger.
type StatusPatcher interface {
	PatchLedgerStatus(ctx context.Context, ledgerID string, status constant.OrderStatus) (*model.Ledger, error)
}

type Consumer struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
	queue   string
	patcher StatusPatcher
}

func NewConsumer(url, exchange, queue string, patcher StatusPatcher) (*Consumer, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	if err := declareExchange(channel, exchange); err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}

	// Declare the queue
	_, err = channel.QueueDeclare(
		queue,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}

	// Bind queue to exchange
	err = channel.QueueBind(
		queue,
		RoutingKeyLedgerStatusPatch,
		exchange,
		false,
		nil,
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}

	return &Consumer{
		conn:    conn,
		channel: channel,
		queue:   queue,
		patcher: patcher,
	}, nil
}

func (c *Consumer) Start(ctx context.Context) error {
	// Set QoS to 1 - process one message at a time
	err := c.channel.Qos(1, 0, false)
	if err != nil {
		return err
	}

	msgs, err := c.channel.Consume(
		c.queue,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				switch c.handle(ctx, msg.Body) {
				case ack:
					_ = msg.Ack(false)
				case requeue:
					_ = msg.Nack(false, true)
				}
			}
		}
	}()

	return nil
}

type outcome int

const (
	ack outcome = iota
	requeue
)

// handle applies one status message. Messages that can never succeed are acknowledged
// and dropped; transient failures are requeued.
func (c *Consumer) handle(ctx context.Context, body []byte) outcome {
	var m LedgerStatusMessage
	if err := json.Unmarshal(body, &m); err != nil {
		logger.Error("[LedgerStatusConsumer] unmarshal message", zap.String("error", err.Error()))
		return ack
	}

	if _, err := c.patcher.PatchLedgerStatus(ctx, m.LedgerID, m.Status); err != nil {
		var ce errors.CustomError
		if stderrors.As(err, &ce) && !ce.Retryable() && ce.Type() != constant.ErrInternal {
			logger.Warn("[LedgerStatusConsumer] status rejected",
				zap.String("ledger_id", m.LedgerID),
				zap.String("status", string(m.Status)),
				zap.String("error", err.Error()))
			return ack
		}
		logger.Error("[LedgerStatusConsumer] patch status",
			zap.String("ledger_id", m.LedgerID),
			zap.String("error", err.Error()))
		return requeue
	}

	logger.Info("[LedgerStatusConsumer] status applied",
		zap.String("ledger_id", m.LedgerID),
		zap.String("status", string(m.Status)))
	return ack
}

func (c *Consumer) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
	return nil
}

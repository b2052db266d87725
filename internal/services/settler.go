package services

//go:generate mockgen -source=settler.go -destination=settler_mock_test.go -package=services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-currency-swap/internal/logger"
	"github.com/sbilibin2017/gw-currency-swap/internal/models"
	"github.com/segmentio/kafka-go"
)

// DefaultSettlementDelay is how long the simulated settlement takes.
const DefaultSettlementDelay = 2 * time.Second

// SimulatedSettler pretends to settle a swap by waiting a fixed delay.
type SimulatedSettler struct {
	delay time.Duration
}

// NewSimulatedSettler creates a settler that succeeds after delay.
func NewSimulatedSettler(delay time.Duration) *SimulatedSettler {
	return &SimulatedSettler{delay: delay}
}

// Settle waits for the delay or until ctx is done.
func (s *SimulatedSettler) Settle(ctx context.Context, holder string, preview models.SwapPreview) error {
	t := time.NewTimer(s.delay)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		logger.Log.Infow("simulated settlement done",
			"holder", holder,
			"from", preview.Source.Symbol,
			"to", preview.Target.Symbol,
			"amount", preview.SourceAmount,
		)
		return nil
	}
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// KafkaSettler hands confirmed swaps to the settlement backend through Kafka.
type KafkaSettler struct {
	writer KafkaWriter
	now    func() time.Time
}

// NewKafkaSettler creates a settler publishing to writer.
func NewKafkaSettler(writer KafkaWriter) *KafkaSettler {
	return &KafkaSettler{writer: writer, now: time.Now}
}

// Settle publishes the swap transaction; a failed write is a failed settlement.
func (s *KafkaSettler) Settle(ctx context.Context, holder string, preview models.SwapPreview) error {
	txn := models.SwapTransaction{
		TransactionID: uuid.NewString(),
		Timestamp:     s.now().Unix(),
		Holder:        holder,
		SourceSymbol:  preview.Source.Symbol,
		TargetSymbol:  preview.Target.Symbol,
		SourceAmount:  preview.SourceAmount,
		TargetAmount:  preview.TargetAmountText,
		Rate:          preview.ExchangeRate,
		Operation:     "swap",
	}

	data, err := json.Marshal(txn)
	if err != nil {
		logger.Log.Errorw("failed to marshal swap transaction", "transaction_id", txn.TransactionID, "error", err)
		return err
	}

	msg := kafka.Message{
		Key:   []byte(txn.TransactionID),
		Value: data,
	}
	if err := s.writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish swap transaction", "transaction_id", txn.TransactionID, "error", err)
		return fmt.Errorf("publish swap transaction: %w", err)
	}

	logger.Log.Infow("swap transaction published",
		"transaction_id", txn.TransactionID,
		"holder", holder,
		"amount", txn.SourceAmount,
	)
	return nil
}

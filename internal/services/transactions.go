package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/vkravets/budget-cloud/internal/logger"
	"github.com/vkravets/budget-cloud/internal/models"
)

var (
	// ErrInvalidTransaction is returned when a transaction creation request fails validation.
	ErrInvalidTransaction = errors.New("invalid transaction")
)

// dateLayout is the wire format for transaction dates.
const dateLayout = "2006-01-02"

// TransactionReader defines transaction read operations used by services.
type TransactionReader interface {
	List(ctx context.Context, accountID *int64) ([]models.Transaction, error) // Returns transactions, optionally filtered by account
}

// TransactionWriter defines transaction write operations used by services.
type TransactionWriter interface {
	Save(ctx context.Context, accountID int64, amount float64, description, category *string, transactionDate time.Time) (int64, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// TransactionService handles transaction operations and Kafka publishing.
type TransactionService struct {
	readRepo    TransactionReader
	writeRepo   TransactionWriter
	kafkaWriter KafkaWriter
}

// NewTransactionService creates a new TransactionService. kafkaWriter may
// be nil; publishing is then skipped.
func NewTransactionService(readRepo TransactionReader, writeRepo TransactionWriter, kafkaWriter KafkaWriter) *TransactionService {
	return &TransactionService{
		readRepo:    readRepo,
		writeRepo:   writeRepo,
		kafkaWriter: kafkaWriter,
	}
}

// List returns transactions, optionally restricted to one account.
func (s *TransactionService) List(ctx context.Context, accountID *int64) ([]models.Transaction, error) {
	transactions, err := s.readRepo.List(ctx, accountID)
	if err != nil {
		logger.Log.Errorw("failed to list transactions", "error", err)
		return nil, err
	}
	return transactions, nil
}

// Create validates and stores a new transaction, publishes the event, and
// returns the transaction identifier. A publishing failure is logged but
// does not fail the creation.
func (s *TransactionService) Create(ctx context.Context, req models.TransactionCreateRequest) (int64, error) {
	if req.AccountID <= 0 {
		return 0, fmt.Errorf("%w: account_id is required", ErrInvalidTransaction)
	}
	transactionDate, err := time.Parse(dateLayout, req.TransactionDate)
	if err != nil {
		return 0, fmt.Errorf("%w: transaction_date must be YYYY-MM-DD", ErrInvalidTransaction)
	}

	id, err := s.writeRepo.Save(ctx, req.AccountID, req.Amount, req.Description, req.Category, transactionDate)
	if err != nil {
		logger.Log.Errorw("failed to save transaction", "account_id", req.AccountID, "error", err)
		return 0, err
	}

	event := models.TransactionEvent{
		EventID:         uuid.NewString(),
		TransactionID:   id,
		AccountID:       req.AccountID,
		Amount:          req.Amount,
		TransactionDate: req.TransactionDate,
		Timestamp:       time.Now().Unix(),
	}
	if req.Category != nil {
		event.Category = *req.Category
	}
	s.publishTransaction(ctx, event)

	return id, nil
}

// publishTransaction publishes a transaction event to Kafka.
func (s *TransactionService) publishTransaction(ctx context.Context, event models.TransactionEvent) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal transaction event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish transaction event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Transaction event published to Kafka", "event_id", event.EventID, "amount", event.Amount)
	}
}

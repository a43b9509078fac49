package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vkravets/budget-cloud/internal/models"
)

func TestTransactionService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockTransactionReader(ctrl)
	svc := NewTransactionService(reader, nil, nil)

	expected := []models.Transaction{{ID: 1, AccountID: 2, Amount: -42.50}}
	reader.EXPECT().List(gomock.Any(), gomock.Nil()).Return(expected, nil)

	transactions, err := svc.List(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, expected, transactions)
}

func TestTransactionService_List_Filtered(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockTransactionReader(ctrl)
	svc := NewTransactionService(reader, nil, nil)

	accountID := int64(2)
	reader.EXPECT().List(gomock.Any(), &accountID).Return([]models.Transaction{}, nil)

	_, err := svc.List(context.Background(), &accountID)
	assert.NoError(t, err)
}

func TestTransactionService_Create_PublishesEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := NewMockTransactionWriter(ctrl)
	kafkaWriter := NewMockKafkaWriter(ctrl)
	svc := NewTransactionService(nil, writer, kafkaWriter)

	category := "groceries"
	expectedDate := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	writer.EXPECT().
		Save(gomock.Any(), int64(2), -42.50, gomock.Nil(), &category, expectedDate).
		Return(int64(10), nil)

	kafkaWriter.EXPECT().
		WriteMessages(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, msgs ...kafka.Message) error {
			require.Len(t, msgs, 1)

			var event models.TransactionEvent
			require.NoError(t, json.Unmarshal(msgs[0].Value, &event))
			assert.Equal(t, string(msgs[0].Key), event.EventID)
			assert.NotEmpty(t, event.EventID)
			assert.Equal(t, int64(10), event.TransactionID)
			assert.Equal(t, int64(2), event.AccountID)
			assert.Equal(t, -42.50, event.Amount)
			assert.Equal(t, "groceries", event.Category)
			assert.Equal(t, "2026-08-01", event.TransactionDate)
			return nil
		})

	id, err := svc.Create(context.Background(), models.TransactionCreateRequest{
		AccountID:       2,
		Amount:          -42.50,
		Category:        &category,
		TransactionDate: "2026-08-01",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), id)
}

func TestTransactionService_Create_NilKafkaWriterSkipsPublishing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := NewMockTransactionWriter(ctrl)
	svc := NewTransactionService(nil, writer, nil)

	writer.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(int64(1), nil)

	id, err := svc.Create(context.Background(), models.TransactionCreateRequest{
		AccountID:       1,
		Amount:          10,
		TransactionDate: "2026-08-01",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
}

func TestTransactionService_Create_PublishFailureDoesNotFailCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := NewMockTransactionWriter(ctrl)
	kafkaWriter := NewMockKafkaWriter(ctrl)
	svc := NewTransactionService(nil, writer, kafkaWriter)

	writer.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(int64(5), nil)
	kafkaWriter.EXPECT().
		WriteMessages(gomock.Any(), gomock.Any()).
		Return(errors.New("broker down"))

	id, err := svc.Create(context.Background(), models.TransactionCreateRequest{
		AccountID:       1,
		Amount:          10,
		TransactionDate: "2026-08-01",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), id)
}

func TestTransactionService_Create_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewTransactionService(nil, NewMockTransactionWriter(ctrl), nil)

	tests := []struct {
		name string
		req  models.TransactionCreateRequest
	}{
		{"missing account", models.TransactionCreateRequest{Amount: 10, TransactionDate: "2026-08-01"}},
		{"missing date", models.TransactionCreateRequest{AccountID: 1, Amount: 10}},
		{"bad date format", models.TransactionCreateRequest{AccountID: 1, Amount: 10, TransactionDate: "08/01/2026"}},
		{"impossible date", models.TransactionCreateRequest{AccountID: 1, Amount: 10, TransactionDate: "2026-13-45"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidTransaction)
		})
	}
}

func TestTransactionService_Create_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := NewMockTransactionWriter(ctrl)
	svc := NewTransactionService(nil, writer, nil)

	writer.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(int64(0), errors.New("fk violation"))

	_, err := svc.Create(context.Background(), models.TransactionCreateRequest{
		AccountID:       7,
		Amount:          10,
		TransactionDate: "2026-08-01",
	})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidTransaction)
}

package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/vkravets/budget-cloud/internal/logger"
	"github.com/vkravets/budget-cloud/internal/models"
	"github.com/vkravets/budget-cloud/internal/services"
)

// TransactionLister defines the interface that the service must implement.
type TransactionLister interface {
	List(ctx context.Context, accountID *int64) ([]models.Transaction, error)
}

// TransactionCreator defines the interface that the service must implement.
type TransactionCreator interface {
	Create(ctx context.Context, req models.TransactionCreateRequest) (int64, error)
}

// NewListTransactionsHandler returns an HTTP handler for listing
// transactions, optionally filtered by account.
// @Summary List transactions
// @Description Returns transactions newest first, optionally for one account
// @Tags transactions
// @Produce json
// @Param account_id query int false "Restrict to one account"
// @Success 200 {object} models.TransactionListResponse "Transactions"
// @Failure 400 {object} models.ErrorResponse "Invalid account_id"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /transactions [get]
func NewListTransactionsHandler(svc TransactionLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var accountID *int64
		if raw := r.URL.Query().Get("account_id"); raw != "" {
			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || id <= 0 {
				w.WriteHeader(http.StatusBadRequest)
				_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: "account_id must be a positive integer"})
				return
			}
			accountID = &id
		}

		transactions, err := svc.List(r.Context(), accountID)
		if err != nil {
			logger.Log.Errorw("failed to list transactions", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(models.TransactionListResponse{Transactions: transactions})
	}
}

// NewCreateTransactionHandler returns an HTTP handler for creating a transaction.
// @Summary Create transaction
// @Description Stores a new transaction and returns its identifier
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body models.TransactionCreateRequest true "Transaction"
// @Success 201 {object} models.TransactionCreateResponse "Created transaction"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /transactions [post]
func NewCreateTransactionHandler(svc TransactionCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.TransactionCreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: "Invalid request body"})
			return
		}

		id, err := svc.Create(r.Context(), req)
		if err != nil {
			if errors.Is(err, services.ErrInvalidTransaction) {
				w.WriteHeader(http.StatusBadRequest)
				_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: err.Error()})
				return
			}
			logger.Log.Errorw("failed to create transaction", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(models.TransactionCreateResponse{
			ID:      id,
			Message: "Transaction created successfully",
		})
	}
}

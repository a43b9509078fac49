package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vkravets/budget-cloud/internal/logger"
	"github.com/vkravets/budget-cloud/internal/models"
	"github.com/vkravets/budget-cloud/internal/services"
)

// BankLister defines the interface that the service must implement.
type BankLister interface {
	List(ctx context.Context) ([]models.Bank, error)
}

// BankCreator defines the interface that the service must implement.
type BankCreator interface {
	Create(ctx context.Context, req models.BankCreateRequest) (int64, error)
}

// NewListBanksHandler returns an HTTP handler for listing banks.
// @Summary List banks
// @Description Returns all banks ordered by name
// @Tags banks
// @Produce json
// @Success 200 {object} models.BankListResponse "Banks"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /banks [get]
func NewListBanksHandler(svc BankLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		banks, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list banks", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(models.BankListResponse{Banks: banks})
	}
}

// NewCreateBankHandler returns an HTTP handler for creating a bank.
// @Summary Create bank
// @Description Stores a new bank and returns its identifier
// @Tags banks
// @Accept json
// @Produce json
// @Param request body models.BankCreateRequest true "Bank"
// @Success 201 {object} models.BankCreateResponse "Created bank"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /banks [post]
func NewCreateBankHandler(svc BankCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.BankCreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: "Invalid request body"})
			return
		}

		id, err := svc.Create(r.Context(), req)
		if err != nil {
			if errors.Is(err, services.ErrInvalidBank) {
				w.WriteHeader(http.StatusBadRequest)
				_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: err.Error()})
				return
			}
			logger.Log.Errorw("failed to create bank", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(models.BankCreateResponse{
			ID:      id,
			Message: "Bank created successfully",
		})
	}
}

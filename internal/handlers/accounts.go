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

// AccountLister defines the interface that the service must implement.
type AccountLister interface {
	List(ctx context.Context) ([]models.Account, error)
}

// AccountCreator defines the interface that the service must implement.
type AccountCreator interface {
	Create(ctx context.Context, req models.AccountCreateRequest) (int64, error)
}

// NewListAccountsHandler returns an HTTP handler for listing accounts.
// @Summary List accounts
// @Description Returns all accounts joined with their bank names
// @Tags accounts
// @Produce json
// @Success 200 {object} models.AccountListResponse "Accounts"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /accounts [get]
func NewListAccountsHandler(svc AccountLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accounts, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list accounts", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(models.AccountListResponse{Accounts: accounts})
	}
}

// NewCreateAccountHandler returns an HTTP handler for creating an account.
// @Summary Create account
// @Description Stores a new account and returns its identifier
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body models.AccountCreateRequest true "Account"
// @Success 201 {object} models.AccountCreateResponse "Created account"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /accounts [post]
func NewCreateAccountHandler(svc AccountCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.AccountCreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: "Invalid request body"})
			return
		}

		id, err := svc.Create(r.Context(), req)
		if err != nil {
			if errors.Is(err, services.ErrInvalidAccount) {
				w.WriteHeader(http.StatusBadRequest)
				_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: err.Error()})
				return
			}
			logger.Log.Errorw("failed to create account", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(models.AccountCreateResponse{
			ID:      id,
			Message: "Account created successfully",
		})
	}
}

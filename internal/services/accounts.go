package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/vkravets/budget-cloud/internal/logger"
	"github.com/vkravets/budget-cloud/internal/models"
)

var (
	// ErrInvalidAccount is returned when an account creation request fails validation.
	ErrInvalidAccount = errors.New("invalid account")
)

// AccountReader defines account read operations used by services.
type AccountReader interface {
	List(ctx context.Context) ([]models.Account, error) // Returns all accounts with bank names
}

// AccountWriter defines account write operations used by services.
type AccountWriter interface {
	Save(ctx context.Context, req models.AccountCreateRequest) (int64, error) // Inserts an account, returns its id
}

// AccountService handles account listing and creation.
type AccountService struct {
	readRepo  AccountReader
	writeRepo AccountWriter
}

// NewAccountService creates a new AccountService.
func NewAccountService(readRepo AccountReader, writeRepo AccountWriter) *AccountService {
	return &AccountService{readRepo: readRepo, writeRepo: writeRepo}
}

// List returns all accounts joined with their bank names.
func (s *AccountService) List(ctx context.Context) ([]models.Account, error) {
	accounts, err := s.readRepo.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list accounts", "error", err)
		return nil, err
	}
	return accounts, nil
}

// Create validates and stores a new account, returning its identifier.
func (s *AccountService) Create(ctx context.Context, req models.AccountCreateRequest) (int64, error) {
	if req.BankID <= 0 {
		return 0, fmt.Errorf("%w: bank_id is required", ErrInvalidAccount)
	}
	if strings.TrimSpace(req.AccountName) == "" {
		return 0, fmt.Errorf("%w: account_name is required", ErrInvalidAccount)
	}
	currency, ok := normalizeCurrency(req.Currency)
	if !ok {
		return 0, fmt.Errorf("%w: currency must be a 3-letter code", ErrInvalidAccount)
	}
	req.AccountName = strings.TrimSpace(req.AccountName)
	req.Currency = currency

	id, err := s.writeRepo.Save(ctx, req)
	if err != nil {
		logger.Log.Errorw("failed to save account", "bank_id", req.BankID, "account_name", req.AccountName, "error", err)
		return 0, err
	}
	return id, nil
}

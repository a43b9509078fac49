package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/vkravets/budget-cloud/internal/logger"
	"github.com/vkravets/budget-cloud/internal/models"
)

var (
	// ErrInvalidBank is returned when a bank creation request fails validation.
	ErrInvalidBank = errors.New("invalid bank")
)

// BankReader defines bank read operations used by services.
type BankReader interface {
	List(ctx context.Context) ([]models.Bank, error) // Returns all banks ordered by name
}

// BankWriter defines bank write operations used by services.
type BankWriter interface {
	Save(ctx context.Context, name, country, currency string) (int64, error) // Inserts a bank, returns its id
}

// BankService handles bank listing and creation.
type BankService struct {
	readRepo  BankReader
	writeRepo BankWriter
}

// NewBankService creates a new BankService.
func NewBankService(readRepo BankReader, writeRepo BankWriter) *BankService {
	return &BankService{readRepo: readRepo, writeRepo: writeRepo}
}

// List returns all banks.
func (s *BankService) List(ctx context.Context) ([]models.Bank, error) {
	banks, err := s.readRepo.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list banks", "error", err)
		return nil, err
	}
	return banks, nil
}

// Create validates and stores a new bank, returning its identifier.
func (s *BankService) Create(ctx context.Context, req models.BankCreateRequest) (int64, error) {
	if strings.TrimSpace(req.Name) == "" {
		return 0, fmt.Errorf("%w: name is required", ErrInvalidBank)
	}
	if strings.TrimSpace(req.Country) == "" {
		return 0, fmt.Errorf("%w: country is required", ErrInvalidBank)
	}
	currency, ok := normalizeCurrency(req.Currency)
	if !ok {
		return 0, fmt.Errorf("%w: currency must be a 3-letter code", ErrInvalidBank)
	}

	id, err := s.writeRepo.Save(ctx, strings.TrimSpace(req.Name), strings.TrimSpace(req.Country), currency)
	if err != nil {
		logger.Log.Errorw("failed to save bank", "name", req.Name, "error", err)
		return 0, err
	}
	return id, nil
}

// normalizeCurrency upper-cases a currency code and reports whether it is
// a plausible ISO 4217 code (exactly three letters).
func normalizeCurrency(code string) (string, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != 3 {
		return "", false
	}
	for _, r := range code {
		if !unicode.IsUpper(r) {
			return "", false
		}
	}
	return code, true
}

package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/vkravets/budget-cloud/internal/logger"
	"github.com/vkravets/budget-cloud/internal/models"
)

// BankReadRepository handles bank read operations
type BankReadRepository struct {
	db *sqlx.DB
}

func NewBankReadRepository(db *sqlx.DB) *BankReadRepository {
	return &BankReadRepository{db: db}
}

// List retrieves all banks ordered by name.
func (r *BankReadRepository) List(ctx context.Context) ([]models.Bank, error) {
	const query = `
		SELECT id, name, country, currency, created_at
		FROM banks
		ORDER BY name
	`

	banks := []models.Bank{}
	err := r.db.SelectContext(ctx, &banks, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(banks),
		"error", err,
	)

	return banks, err
}

// BankWriteRepository handles bank write operations
type BankWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewBankWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *BankWriteRepository {
	return &BankWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a bank and returns its generated identifier.
func (r *BankWriteRepository) Save(ctx context.Context, name, country, currency string) (int64, error) {
	const query = `
		INSERT INTO banks (name, country, currency, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id
	`

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	var id int64
	err := sqlx.GetContext(ctx, executor, &id, query, name, country, currency)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{name, country, currency},
		"result", id,
		"error", err,
	)

	return id, err
}

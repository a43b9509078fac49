package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/vkravets/budget-cloud/internal/logger"
	"github.com/vkravets/budget-cloud/internal/models"
)

// AccountReadRepository handles account read operations
type AccountReadRepository struct {
	db *sqlx.DB
}

func NewAccountReadRepository(db *sqlx.DB) *AccountReadRepository {
	return &AccountReadRepository{db: db}
}

// List retrieves all accounts joined with their bank's name, ordered by
// account name.
func (r *AccountReadRepository) List(ctx context.Context) ([]models.Account, error) {
	const query = `
		SELECT a.id, a.bank_id, b.name AS bank_name,
		       a.account_name, a.account_number, a.balance,
		       a.currency, a.is_active, a.created_at
		FROM accounts a
		JOIN banks b ON a.bank_id = b.id
		ORDER BY a.account_name
	`

	accounts := []models.Account{}
	err := r.db.SelectContext(ctx, &accounts, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(accounts),
		"error", err,
	)

	return accounts, err
}

// AccountWriteRepository handles account write operations
type AccountWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewAccountWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *AccountWriteRepository {
	return &AccountWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts an account and returns its generated identifier.
func (r *AccountWriteRepository) Save(ctx context.Context, req models.AccountCreateRequest) (int64, error) {
	const query = `
		INSERT INTO accounts (bank_id, account_name, account_number, balance, currency, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, TRUE, NOW())
		RETURNING id
	`

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	var id int64
	err := sqlx.GetContext(ctx, executor, &id, query,
		req.BankID, req.AccountName, req.AccountNumber, req.Balance, req.Currency)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{req.BankID, req.AccountName, req.Balance, req.Currency},
		"result", id,
		"error", err,
	)

	return id, err
}

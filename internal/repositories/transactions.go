package repositories

import (
	"context"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/vkravets/budget-cloud/internal/logger"
	"github.com/vkravets/budget-cloud/internal/models"
)

// TransactionReadRepository handles transaction read operations
type TransactionReadRepository struct {
	db *sqlx.DB
}

func NewTransactionReadRepository(db *sqlx.DB) *TransactionReadRepository {
	return &TransactionReadRepository{db: db}
}

// List retrieves transactions joined with account and bank names, newest
// first. A non-nil accountID restricts the listing to one account.
func (r *TransactionReadRepository) List(ctx context.Context, accountID *int64) ([]models.Transaction, error) {
	query := `
		SELECT t.id, t.account_id, a.account_name, b.name AS bank_name,
		       t.amount, t.description, t.category, t.transaction_date, t.created_at
		FROM transactions t
		JOIN accounts a ON t.account_id = a.id
		JOIN banks b ON a.bank_id = b.id
	`
	args := []any{}
	if accountID != nil {
		query += ` WHERE t.account_id = $1`
		args = append(args, *accountID)
	}
	query += ` ORDER BY t.transaction_date DESC`

	transactions := []models.Transaction{}
	err := r.db.SelectContext(ctx, &transactions, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", len(transactions),
		"error", err,
	)

	return transactions, err
}

// TransactionWriteRepository handles transaction write operations
type TransactionWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewTransactionWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *TransactionWriteRepository {
	return &TransactionWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a transaction and returns its generated identifier.
func (r *TransactionWriteRepository) Save(
	ctx context.Context,
	accountID int64,
	amount float64,
	description, category *string,
	transactionDate time.Time,
) (int64, error) {
	const query = `
		INSERT INTO transactions (account_id, amount, description, category, transaction_date, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
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
		accountID, amount, description, category, transactionDate)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{accountID, amount, transactionDate},
		"result", id,
		"error", err,
	)

	return id, err
}

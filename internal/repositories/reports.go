package repositories

import (
	"context"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/vkravets/budget-cloud/internal/logger"
	"github.com/vkravets/budget-cloud/internal/models"
)

// ReportRepository runs the aggregate queries backing reports and stats.
type ReportRepository struct {
	db *sqlx.DB
}

func NewReportRepository(db *sqlx.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// BalanceReport aggregates active account balances per bank and currency,
// largest totals first.
func (r *ReportRepository) BalanceReport(ctx context.Context) ([]models.BalanceReportRow, error) {
	const query = `
		SELECT b.name AS bank_name,
		       a.currency,
		       SUM(a.balance) AS total_balance,
		       COUNT(a.id) AS account_count
		FROM accounts a
		JOIN banks b ON a.bank_id = b.id
		WHERE a.is_active = TRUE
		GROUP BY b.name, a.currency
		ORDER BY total_balance DESC
	`

	rows := []models.BalanceReportRow{}
	err := r.db.SelectContext(ctx, &rows, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(rows),
		"error", err,
	)

	return rows, err
}

// TransactionsReport lists transactions with account and bank context,
// optionally restricted to an inclusive date range.
func (r *ReportRepository) TransactionsReport(ctx context.Context, start, end *time.Time) ([]models.Transaction, error) {
	query := `
		SELECT t.id, t.account_id, a.account_name, b.name AS bank_name,
		       t.amount, t.description, t.category, t.transaction_date, t.created_at
		FROM transactions t
		JOIN accounts a ON t.account_id = a.id
		JOIN banks b ON a.bank_id = b.id
	`
	args := []any{}
	if start != nil && end != nil {
		query += ` WHERE t.transaction_date BETWEEN $1 AND $2`
		args = append(args, *start, *end)
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

// Categories lists distinct transaction categories with their counts,
// most used first.
func (r *ReportRepository) Categories(ctx context.Context) ([]models.CategoryCount, error) {
	const query = `
		SELECT category, COUNT(*) AS transaction_count
		FROM transactions
		WHERE category IS NOT NULL
		GROUP BY category
		ORDER BY transaction_count DESC
	`

	categories := []models.CategoryCount{}
	err := r.db.SelectContext(ctx, &categories, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(categories),
		"error", err,
	)

	return categories, err
}

// TransactionCount returns the total number of stored transactions.
func (r *ReportRepository) TransactionCount(ctx context.Context) (int, error) {
	const query = `SELECT COUNT(*) FROM transactions`

	var count int
	err := r.db.GetContext(ctx, &count, query)

	logger.Log.Infow(
		"query", query,
		"result", count,
		"error", err,
	)

	return count, err
}

// BalanceByCurrency aggregates active account balances per currency.
func (r *ReportRepository) BalanceByCurrency(ctx context.Context) ([]models.CurrencyTotal, error) {
	const query = `
		SELECT currency,
		       SUM(balance) AS total_balance,
		       COUNT(*) AS account_count
		FROM accounts
		WHERE is_active = TRUE
		GROUP BY currency
	`

	totals := []models.CurrencyTotal{}
	err := r.db.SelectContext(ctx, &totals, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(totals),
		"error", err,
	)

	return totals, err
}

// TopCategories lists the most used categories, capped at limit.
func (r *ReportRepository) TopCategories(ctx context.Context, limit int) ([]models.CategoryCount, error) {
	const query = `
		SELECT category, COUNT(*) AS transaction_count
		FROM transactions
		WHERE category IS NOT NULL
		GROUP BY category
		ORDER BY transaction_count DESC
		LIMIT $1
	`

	categories := []models.CategoryCount{}
	err := r.db.SelectContext(ctx, &categories, query, limit)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{limit},
		"result", len(categories),
		"error", err,
	)

	return categories, err
}

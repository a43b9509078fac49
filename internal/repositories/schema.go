package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/vkravets/budget-cloud/internal/logger"
)

// schemaStatements create the budget tables and seed the starter banks.
// Everything is idempotent so EnsureSchema can run on every start.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS banks (
		id SERIAL PRIMARY KEY,
		name VARCHAR(100) NOT NULL UNIQUE,
		country VARCHAR(50) NOT NULL,
		currency VARCHAR(3) NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS accounts (
		id SERIAL PRIMARY KEY,
		bank_id INTEGER NOT NULL REFERENCES banks(id),
		account_name VARCHAR(100) NOT NULL,
		account_number VARCHAR(50),
		balance DECIMAL(15,2) NOT NULL DEFAULT 0.00,
		currency VARCHAR(3) NOT NULL,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS transactions (
		id SERIAL PRIMARY KEY,
		account_id INTEGER NOT NULL REFERENCES accounts(id),
		amount DECIMAL(15,2) NOT NULL,
		description TEXT,
		category VARCHAR(50),
		transaction_date DATE NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	)`,
	`INSERT INTO banks (name, country, currency) VALUES
		('RBC', 'Canada', 'CAD'),
		('BMO', 'Canada', 'CAD'),
		('PrivatBank', 'Ukraine', 'UAH'),
		('Revolut', 'Europe', 'EUR')
	ON CONFLICT (name) DO NOTHING`,
}

// EnsureSchema creates the tables and seed data if they do not exist.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			logger.Log.Errorw("schema statement failed", "error", err)
			return err
		}
	}
	logger.Log.Info("database schema ensured")
	return nil
}

package models

import "time"

// Account represents a bank account joined with its bank's name.
type Account struct {
	ID            int64     `json:"id" db:"id"`
	BankID        int64     `json:"bank_id" db:"bank_id"`
	BankName      string    `json:"bank_name" db:"bank_name"`
	AccountName   string    `json:"account_name" db:"account_name"`
	AccountNumber *string   `json:"account_number" db:"account_number"`
	Balance       float64   `json:"balance" db:"balance"`
	Currency      string    `json:"currency" db:"currency"`
	IsActive      bool      `json:"is_active" db:"is_active"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// AccountCreateRequest represents the JSON body for creating an account
// swagger:model AccountCreateRequest
type AccountCreateRequest struct {
	// Identifier of the owning bank
	// required: true
	BankID int64 `json:"bank_id"`

	// Display name of the account
	// required: true
	// default: Chequing
	AccountName string `json:"account_name"`

	// Account number, optional
	AccountNumber *string `json:"account_number"`

	// Opening balance
	// default: 0.0
	Balance float64 `json:"balance"`

	// Currency code (ISO 4217)
	// required: true
	// default: CAD
	Currency string `json:"currency"`
}

// AccountListResponse represents a successful account listing
// swagger:model AccountListResponse
type AccountListResponse struct {
	Accounts []Account `json:"accounts"`
}

// AccountCreateResponse represents a successful account creation
// swagger:model AccountCreateResponse
type AccountCreateResponse struct {
	// Identifier of the created account
	ID int64 `json:"id"`

	// Success message
	// default: Account created successfully
	Message string `json:"message"`
}

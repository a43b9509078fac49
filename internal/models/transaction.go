package models

import "time"

// Transaction represents a transaction joined with account and bank names.
type Transaction struct {
	ID              int64     `json:"id" db:"id"`
	AccountID       int64     `json:"account_id" db:"account_id"`
	AccountName     string    `json:"account_name" db:"account_name"`
	BankName        string    `json:"bank_name" db:"bank_name"`
	Amount          float64   `json:"amount" db:"amount"`
	Description     *string   `json:"description" db:"description"`
	Category        *string   `json:"category" db:"category"`
	TransactionDate time.Time `json:"transaction_date" db:"transaction_date"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}

// TransactionCreateRequest represents the JSON body for creating a transaction
// swagger:model TransactionCreateRequest
type TransactionCreateRequest struct {
	// Identifier of the account the transaction belongs to
	// required: true
	AccountID int64 `json:"account_id"`

	// Transaction amount; negative for spending
	// required: true
	// default: -42.50
	Amount float64 `json:"amount"`

	// Free-text description, optional
	Description *string `json:"description"`

	// Category, optional
	// default: groceries
	Category *string `json:"category"`

	// Transaction date in YYYY-MM-DD form
	// required: true
	// default: 2025-08-01
	TransactionDate string `json:"transaction_date"`
}

// TransactionListResponse represents a successful transaction listing
// swagger:model TransactionListResponse
type TransactionListResponse struct {
	Transactions []Transaction `json:"transactions"`
}

// TransactionCreateResponse represents a successful transaction creation
// swagger:model TransactionCreateResponse
type TransactionCreateResponse struct {
	// Identifier of the created transaction
	ID int64 `json:"id"`

	// Success message
	// default: Transaction created successfully
	Message string `json:"message"`
}

// TransactionEvent is the message published to Kafka when a transaction
// is recorded.
type TransactionEvent struct {
	EventID         string  `json:"event_id"`         // EventID is a unique identifier for the event.
	TransactionID   int64   `json:"transaction_id"`   // TransactionID is the identifier of the stored transaction.
	AccountID       int64   `json:"account_id"`       // AccountID is the account the transaction belongs to.
	Amount          float64 `json:"amount"`           // Amount is the monetary value of the transaction.
	Category        string  `json:"category"`         // Category is the transaction category, empty when unset.
	TransactionDate string  `json:"transaction_date"` // TransactionDate is the YYYY-MM-DD transaction date.
	Timestamp       int64   `json:"timestamp"`        // Timestamp is the Unix timestamp when the event was emitted.
}

package models

import "time"

// Bank represents a bank record.
type Bank struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Country   string    `json:"country" db:"country"`
	Currency  string    `json:"currency" db:"currency"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// BankCreateRequest represents the JSON body for creating a bank
// swagger:model BankCreateRequest
type BankCreateRequest struct {
	// Bank name
	// required: true
	// default: RBC
	Name string `json:"name"`

	// Country the bank operates in
	// required: true
	// default: Canada
	Country string `json:"country"`

	// Default currency code (ISO 4217)
	// required: true
	// default: CAD
	Currency string `json:"currency"`
}

// BankListResponse represents a successful bank listing
// swagger:model BankListResponse
type BankListResponse struct {
	Banks []Bank `json:"banks"`
}

// BankCreateResponse represents a successful bank creation
// swagger:model BankCreateResponse
type BankCreateResponse struct {
	// Identifier of the created bank
	ID int64 `json:"id"`

	// Success message
	// default: Bank created successfully
	Message string `json:"message"`
}

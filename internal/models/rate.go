package models

// RatesResponse represents the current exchange-rate table
// swagger:model RatesResponse
type RatesResponse struct {
	// Base currency the rates pivot through
	// default: USD
	Base string `json:"base"`

	// Currency code to rate mapping
	Rates map[string]float64 `json:"rates"`
}

// ConvertResponse represents a successful currency conversion
// swagger:model ConvertResponse
type ConvertResponse struct {
	Amount float64 `json:"amount"`
	From   string  `json:"from"`
	To     string  `json:"to"`

	// Converted value, unrounded
	Result float64 `json:"result"`

	// Symbol-prefixed two-decimal rendering of Result
	// default: $135.00
	Display string `json:"display"`
}

// ErrorResponse represents an error response body
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

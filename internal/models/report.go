package models

// BalanceReportRow aggregates active account balances per bank and currency.
type BalanceReportRow struct {
	BankName     string  `json:"bank_name" db:"bank_name"`
	Currency     string  `json:"currency" db:"currency"`
	TotalBalance float64 `json:"total_balance" db:"total_balance"`
	AccountCount int     `json:"account_count" db:"account_count"`

	// ConvertedTotal is TotalBalance expressed in the report's base
	// currency; nil when the currency cannot be converted.
	ConvertedTotal *float64 `json:"converted_total,omitempty"`

	// ConvertedDisplay is the formatted converted total, or "unavailable"
	// when the currency is absent from the rate table.
	ConvertedDisplay string `json:"converted_display,omitempty"`
}

// BalanceReportResponse represents the balance report
// swagger:model BalanceReportResponse
type BalanceReportResponse struct {
	// Currency the converted totals are expressed in
	BaseCurrency string `json:"base_currency"`

	BalanceReport []BalanceReportRow `json:"balance_report"`
}

// TransactionsReportResponse represents the transactions report
// swagger:model TransactionsReportResponse
type TransactionsReportResponse struct {
	TransactionsReport []Transaction `json:"transactions_report"`
}

// CategoryCount is a category with its transaction count.
type CategoryCount struct {
	Category         string `json:"category" db:"category"`
	TransactionCount int    `json:"transaction_count" db:"transaction_count"`
}

// CategoryListResponse represents the category listing
// swagger:model CategoryListResponse
type CategoryListResponse struct {
	Categories []CategoryCount `json:"categories"`
}

// CurrencyTotal aggregates active account balances per currency.
type CurrencyTotal struct {
	Currency     string  `json:"currency" db:"currency"`
	TotalBalance float64 `json:"total_balance" db:"total_balance"`
	AccountCount int     `json:"account_count" db:"account_count"`

	ConvertedTotal   *float64 `json:"converted_total,omitempty"`
	ConvertedDisplay string   `json:"converted_display,omitempty"`
}

// SummaryStatsResponse represents overall statistics
// swagger:model SummaryStatsResponse
type SummaryStatsResponse struct {
	TotalTransactions int             `json:"total_transactions"`
	BaseCurrency      string          `json:"base_currency"`
	BalanceByCurrency []CurrencyTotal `json:"balance_by_currency"`
	TopCategories     []CategoryCount `json:"top_categories"`
}

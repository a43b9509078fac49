package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/vkravets/budget-cloud/internal/logger"
	"github.com/vkravets/budget-cloud/internal/models"
)

// dateLayout is the wire format for report date-range parameters.
const dateLayout = "2006-01-02"

// BalanceReporter defines the interface that the service must implement.
type BalanceReporter interface {
	BalanceReport(ctx context.Context) (*models.BalanceReportResponse, error)
}

// TransactionsReporter defines the interface that the service must implement.
type TransactionsReporter interface {
	TransactionsReport(ctx context.Context, start, end *time.Time) ([]models.Transaction, error)
}

// CategoryLister defines the interface that the service must implement.
type CategoryLister interface {
	Categories(ctx context.Context) ([]models.CategoryCount, error)
}

// Summarizer defines the interface that the service must implement.
type Summarizer interface {
	Summary(ctx context.Context) (*models.SummaryStatsResponse, error)
}

// NewBalanceReportHandler returns an HTTP handler for the balance report.
// @Summary Balance report
// @Description Aggregates active balances per bank and currency with converted totals
// @Tags reports
// @Produce json
// @Success 200 {object} models.BalanceReportResponse "Balance report"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /reports/balance [get]
func NewBalanceReportHandler(svc BalanceReporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := svc.BalanceReport(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to build balance report", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(report)
	}
}

// NewTransactionsReportHandler returns an HTTP handler for the
// transactions report, optionally bounded by a date range.
// @Summary Transactions report
// @Description Lists transactions with account and bank context, optionally within a date range
// @Tags reports
// @Produce json
// @Param start_date query string false "Inclusive start date (YYYY-MM-DD)"
// @Param end_date query string false "Inclusive end date (YYYY-MM-DD)"
// @Success 200 {object} models.TransactionsReportResponse "Transactions report"
// @Failure 400 {object} models.ErrorResponse "Invalid date range"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /reports/transactions [get]
func NewTransactionsReportHandler(svc TransactionsReporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var start, end *time.Time
		if raw := r.URL.Query().Get("start_date"); raw != "" {
			t, err := time.Parse(dateLayout, raw)
			if err != nil {
				w.WriteHeader(http.StatusBadRequest)
				_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: "start_date must be YYYY-MM-DD"})
				return
			}
			start = &t
		}
		if raw := r.URL.Query().Get("end_date"); raw != "" {
			t, err := time.Parse(dateLayout, raw)
			if err != nil {
				w.WriteHeader(http.StatusBadRequest)
				_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: "end_date must be YYYY-MM-DD"})
				return
			}
			end = &t
		}

		transactions, err := svc.TransactionsReport(r.Context(), start, end)
		if err != nil {
			logger.Log.Errorw("failed to build transactions report", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(models.TransactionsReportResponse{TransactionsReport: transactions})
	}
}

// NewListCategoriesHandler returns an HTTP handler for the category listing.
// @Summary List categories
// @Description Returns distinct transaction categories with their counts
// @Tags reports
// @Produce json
// @Success 200 {object} models.CategoryListResponse "Categories"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /categories [get]
func NewListCategoriesHandler(svc CategoryLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := svc.Categories(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list categories", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(models.CategoryListResponse{Categories: categories})
	}
}

// NewSummaryStatsHandler returns an HTTP handler for the summary statistics.
// @Summary Summary statistics
// @Description Returns transaction count, balances per currency, and top categories
// @Tags reports
// @Produce json
// @Success 200 {object} models.SummaryStatsResponse "Summary statistics"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /stats/summary [get]
func NewSummaryStatsHandler(svc Summarizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := svc.Summary(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to build summary stats", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(summary)
	}
}

package services

import (
	"context"
	"errors"
	"time"

	"github.com/vkravets/budget-cloud/internal/converter"
	"github.com/vkravets/budget-cloud/internal/logger"
	"github.com/vkravets/budget-cloud/internal/models"
)

// unavailableDisplay is the sentinel shown for totals that cannot be
// expressed in the base currency. Missing rates are a normal result.
const unavailableDisplay = "unavailable"

// topCategoriesLimit caps the summary's category listing.
const topCategoriesLimit = 5

// ReportReader defines the aggregate queries used by the report service.
type ReportReader interface {
	BalanceReport(ctx context.Context) ([]models.BalanceReportRow, error)
	TransactionsReport(ctx context.Context, start, end *time.Time) ([]models.Transaction, error)
	Categories(ctx context.Context) ([]models.CategoryCount, error)
	TransactionCount(ctx context.Context) (int, error)
	BalanceByCurrency(ctx context.Context) ([]models.CurrencyTotal, error)
	TopCategories(ctx context.Context, limit int) ([]models.CategoryCount, error)
}

// AmountConverter converts amounts between currencies through a base
// currency pivot.
type AmountConverter interface {
	Base() string
	Convert(amount float64, from, to string) (float64, error)
}

// ReportService produces balance and transaction reports with totals
// converted to the base currency.
type ReportService struct {
	repo ReportReader
	conv AmountConverter
}

// NewReportService creates a new ReportService.
func NewReportService(repo ReportReader, conv AmountConverter) *ReportService {
	return &ReportService{repo: repo, conv: conv}
}

// BalanceReport aggregates balances per bank and currency and annotates
// each row with the total converted to the base currency.
func (s *ReportService) BalanceReport(ctx context.Context) (*models.BalanceReportResponse, error) {
	rows, err := s.repo.BalanceReport(ctx)
	if err != nil {
		logger.Log.Errorw("failed to build balance report", "error", err)
		return nil, err
	}

	for i := range rows {
		rows[i].ConvertedTotal, rows[i].ConvertedDisplay = s.convertTotal(rows[i].TotalBalance, rows[i].Currency)
	}

	return &models.BalanceReportResponse{
		BaseCurrency:  s.conv.Base(),
		BalanceReport: rows,
	}, nil
}

// TransactionsReport lists transactions, optionally within an inclusive
// date range.
func (s *ReportService) TransactionsReport(ctx context.Context, start, end *time.Time) ([]models.Transaction, error) {
	transactions, err := s.repo.TransactionsReport(ctx, start, end)
	if err != nil {
		logger.Log.Errorw("failed to build transactions report", "error", err)
		return nil, err
	}
	return transactions, nil
}

// Categories lists distinct transaction categories with counts.
func (s *ReportService) Categories(ctx context.Context) ([]models.CategoryCount, error) {
	categories, err := s.repo.Categories(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list categories", "error", err)
		return nil, err
	}
	return categories, nil
}

// Summary builds the overall statistics: transaction count, balances per
// currency with converted totals, and the top categories.
func (s *ReportService) Summary(ctx context.Context) (*models.SummaryStatsResponse, error) {
	count, err := s.repo.TransactionCount(ctx)
	if err != nil {
		logger.Log.Errorw("failed to count transactions", "error", err)
		return nil, err
	}

	totals, err := s.repo.BalanceByCurrency(ctx)
	if err != nil {
		logger.Log.Errorw("failed to aggregate balances by currency", "error", err)
		return nil, err
	}
	for i := range totals {
		totals[i].ConvertedTotal, totals[i].ConvertedDisplay = s.convertTotal(totals[i].TotalBalance, totals[i].Currency)
	}

	top, err := s.repo.TopCategories(ctx, topCategoriesLimit)
	if err != nil {
		logger.Log.Errorw("failed to list top categories", "error", err)
		return nil, err
	}

	return &models.SummaryStatsResponse{
		TotalTransactions: count,
		BaseCurrency:      s.conv.Base(),
		BalanceByCurrency: totals,
		TopCategories:     top,
	}, nil
}

// convertTotal expresses total in the base currency. An unconvertible
// currency yields a nil total and the "unavailable" sentinel.
func (s *ReportService) convertTotal(total float64, currency string) (*float64, string) {
	converted, err := s.conv.Convert(total, currency, s.conv.Base())
	if err != nil {
		if !errors.Is(err, converter.ErrNotConvertible) {
			logger.Log.Errorw("conversion failed", "currency", currency, "error", err)
		}
		return nil, unavailableDisplay
	}
	return &converted, converter.Format(converted, s.conv.Base())
}

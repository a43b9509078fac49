package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vkravets/budget-cloud/internal/converter"
	"github.com/vkravets/budget-cloud/internal/models"
)

func newReportConverter(t *testing.T) *converter.Converter {
	t.Helper()
	conv, err := converter.New(converter.BaseCurrency, converter.DefaultTable(), nil)
	require.NoError(t, err)
	return conv
}

func TestReportService_BalanceReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockReportReader(ctrl)
	svc := NewReportService(repo, newReportConverter(t))

	repo.EXPECT().BalanceReport(gomock.Any()).Return([]models.BalanceReportRow{
		{BankName: "RBC", Currency: "CAD", TotalBalance: 135, AccountCount: 2},
		{BankName: "Mystery", Currency: "XXX", TotalBalance: 50, AccountCount: 1},
	}, nil)

	report, err := svc.BalanceReport(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "USD", report.BaseCurrency)
	require.Len(t, report.BalanceReport, 2)

	cad := report.BalanceReport[0]
	require.NotNil(t, cad.ConvertedTotal)
	assert.InDelta(t, 100, *cad.ConvertedTotal, 1e-9)
	assert.Equal(t, "$100.00", cad.ConvertedDisplay)

	unknown := report.BalanceReport[1]
	assert.Nil(t, unknown.ConvertedTotal)
	assert.Equal(t, "unavailable", unknown.ConvertedDisplay)
}

func TestReportService_BalanceReport_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockReportReader(ctrl)
	svc := NewReportService(repo, newReportConverter(t))

	repo.EXPECT().BalanceReport(gomock.Any()).Return(nil, errors.New("db down"))

	_, err := svc.BalanceReport(context.Background())
	assert.Error(t, err)
}

func TestReportService_TransactionsReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockReportReader(ctrl)
	svc := NewReportService(repo, newReportConverter(t))

	start := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 7, 31, 0, 0, 0, 0, time.UTC)
	expected := []models.Transaction{{ID: 1, Amount: -10}}

	repo.EXPECT().TransactionsReport(gomock.Any(), &start, &end).Return(expected, nil)

	transactions, err := svc.TransactionsReport(context.Background(), &start, &end)
	require.NoError(t, err)
	assert.Equal(t, expected, transactions)
}

func TestReportService_Categories(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockReportReader(ctrl)
	svc := NewReportService(repo, newReportConverter(t))

	expected := []models.CategoryCount{{Category: "food", TransactionCount: 3}}
	repo.EXPECT().Categories(gomock.Any()).Return(expected, nil)

	categories, err := svc.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, expected, categories)
}

func TestReportService_Summary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockReportReader(ctrl)
	svc := NewReportService(repo, newReportConverter(t))

	repo.EXPECT().TransactionCount(gomock.Any()).Return(4, nil)
	repo.EXPECT().BalanceByCurrency(gomock.Any()).Return([]models.CurrencyTotal{
		{Currency: "USD", TotalBalance: 1000, AccountCount: 1},
		{Currency: "CAD", TotalBalance: 135, AccountCount: 2},
	}, nil)
	repo.EXPECT().TopCategories(gomock.Any(), topCategoriesLimit).Return([]models.CategoryCount{
		{Category: "food", TransactionCount: 2},
	}, nil)

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4, summary.TotalTransactions)
	assert.Equal(t, "USD", summary.BaseCurrency)
	require.Len(t, summary.BalanceByCurrency, 2)

	usd := summary.BalanceByCurrency[0]
	require.NotNil(t, usd.ConvertedTotal)
	assert.Equal(t, 1000.0, *usd.ConvertedTotal)

	cad := summary.BalanceByCurrency[1]
	require.NotNil(t, cad.ConvertedTotal)
	assert.InDelta(t, 100, *cad.ConvertedTotal, 1e-9)
	assert.Equal(t, "$100.00", cad.ConvertedDisplay)

	require.Len(t, summary.TopCategories, 1)
	assert.Equal(t, "food", summary.TopCategories[0].Category)
}

func TestReportService_Summary_CountError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockReportReader(ctrl)
	svc := NewReportService(repo, newReportConverter(t))

	repo.EXPECT().TransactionCount(gomock.Any()).Return(0, errors.New("db down"))

	_, err := svc.Summary(context.Background())
	assert.Error(t, err)
}

func TestReportService_ConvertTotal_NonRateError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	conv := NewMockAmountConverter(ctrl)
	repo := NewMockReportReader(ctrl)
	svc := NewReportService(repo, conv)

	conv.EXPECT().Base().Return("USD").AnyTimes()
	conv.EXPECT().Convert(50.0, "CAD", "USD").Return(0.0, errors.New("unexpected"))

	repo.EXPECT().BalanceReport(gomock.Any()).Return([]models.BalanceReportRow{
		{BankName: "RBC", Currency: "CAD", TotalBalance: 50},
	}, nil)

	report, err := svc.BalanceReport(context.Background())
	require.NoError(t, err)
	assert.Nil(t, report.BalanceReport[0].ConvertedTotal)
	assert.Equal(t, "unavailable", report.BalanceReport[0].ConvertedDisplay)
}

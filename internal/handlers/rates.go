package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/vkravets/budget-cloud/internal/converter"
	"github.com/vkravets/budget-cloud/internal/models"
)

// RateConverter defines the interface that the converter must implement.
type RateConverter interface {
	Base() string
	Rates() converter.Table
	Convert(amount float64, from, to string) (float64, error)
}

// NewGetRatesHandler returns an HTTP handler for the current rate table.
// @Summary Get exchange rates
// @Description Returns the current exchange-rate table pivoted through the base currency
// @Tags rates
// @Produce json
// @Success 200 {object} models.RatesResponse "Exchange rates"
// @Router /rates [get]
func NewGetRatesHandler(conv RateConverter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := models.RatesResponse{
			Base:  conv.Base(),
			Rates: conv.Rates(),
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(resp)
	}
}

// NewConvertHandler returns an HTTP handler for ad-hoc conversions.
// @Summary Convert an amount
// @Description Converts an amount between two currencies through the base currency pivot
// @Tags rates
// @Produce json
// @Param amount query number true "Amount to convert"
// @Param from query string true "Source currency code"
// @Param to query string true "Target currency code"
// @Success 200 {object} models.ConvertResponse "Conversion result"
// @Failure 400 {object} models.ErrorResponse "Invalid parameters"
// @Failure 422 {object} models.ErrorResponse "Currency not convertible"
// @Router /convert [get]
func NewConvertHandler(conv RateConverter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		amount, err := strconv.ParseFloat(q.Get("amount"), 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: "amount must be a number"})
			return
		}
		from, to := q.Get("from"), q.Get("to")
		if from == "" || to == "" {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: "from and to are required"})
			return
		}

		result, err := conv.Convert(amount, from, to)
		if err != nil {
			if errors.Is(err, converter.ErrNotConvertible) {
				w.WriteHeader(http.StatusUnprocessableEntity)
				_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: err.Error()})
				return
			}
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: "Internal server error"})
			return
		}

		resp := models.ConvertResponse{
			Amount:  amount,
			From:    from,
			To:      to,
			Result:  result,
			Display: converter.Format(result, to),
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(resp)
	}
}

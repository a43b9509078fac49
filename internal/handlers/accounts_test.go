package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vkravets/budget-cloud/internal/models"
	"github.com/vkravets/budget-cloud/internal/services"
)

func TestListAccountsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLister := NewMockAccountLister(ctrl)

	tests := []struct {
		name           string
		setupMocks     func()
		expectedStatus int
	}{
		{
			name: "successful listing",
			setupMocks: func() {
				mockLister.EXPECT().List(gomock.Any()).Return([]models.Account{
					{ID: 1, BankName: "RBC", AccountName: "Chequing", Currency: "CAD"},
				}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "repository failure",
			setupMocks: func() {
				mockLister.EXPECT().List(gomock.Any()).Return(nil, errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMocks()

			handler := NewListAccountsHandler(mockLister)
			req := httptest.NewRequest(http.MethodGet, "/accounts", nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)
			assert.Equal(t, tt.expectedStatus, rr.Code)

			if tt.expectedStatus == http.StatusOK {
				var resp models.AccountListResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				require.Len(t, resp.Accounts, 1)
				assert.Equal(t, "RBC", resp.Accounts[0].BankName)
			}
		})
	}
}

func TestCreateAccountHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCreator := NewMockAccountCreator(ctrl)

	tests := []struct {
		name           string
		body           string
		setupMocks     func()
		expectedStatus int
	}{
		{
			name: "successful creation",
			body: `{"bank_id":1,"account_name":"Chequing","balance":250.5,"currency":"CAD"}`,
			setupMocks: func() {
				mockCreator.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(3), nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "malformed body",
			body:           `not json`,
			setupMocks:     func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "validation failure",
			body: `{"bank_id":0,"account_name":"Chequing","currency":"CAD"}`,
			setupMocks: func() {
				mockCreator.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(int64(0), fmt.Errorf("%w: bank_id is required", services.ErrInvalidAccount))
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "repository failure",
			body: `{"bank_id":1,"account_name":"Chequing","currency":"CAD"}`,
			setupMocks: func() {
				mockCreator.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(int64(0), errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMocks()

			handler := NewCreateAccountHandler(mockCreator)
			req := httptest.NewRequest(http.MethodPost, "/accounts", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)
			assert.Equal(t, tt.expectedStatus, rr.Code)
		})
	}
}

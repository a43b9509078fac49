package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vkravets/budget-cloud/internal/view"
)

func TestUIHandler_ActiveTab(t *testing.T) {
	handler := NewUIHandler(view.NewRoutes(""))

	tests := []struct {
		name     string
		target   string
		expected string
	}{
		{"root serves default view", "/", "dashboard"},
		{"view path serves its tab", "/banks", "banks"},
		{"nested path resolves by prefix", "/banks/42", "banks"},
		{"unknown path serves default view", "/no/such/path", "dashboard"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			require.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))

			body := rr.Body.String()
			assert.Contains(t, body, `data-view="`+tt.expected+`"`)
			assert.Contains(t, body, `aria-current="page"`)
		})
	}
}

func TestUIHandler_LinksIncludeBasePath(t *testing.T) {
	handler := NewUIHandler(view.NewRoutes("/app"))

	req := httptest.NewRequest(http.MethodGet, "/app/reports", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, `href="/app/reports"`)
	assert.Contains(t, body, `href="/app/banks"`)
	assert.Contains(t, body, `data-view="reports"`)
}

func TestUIHandler_EveryViewRendersItsOwnTab(t *testing.T) {
	routes := view.NewRoutes("")
	handler := NewUIHandler(routes)

	for _, v := range view.All() {
		req := httptest.NewRequest(http.MethodGet, routes.PathFor(v), nil)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `data-view="`+string(v)+`"`, "view %s", v)
	}
}

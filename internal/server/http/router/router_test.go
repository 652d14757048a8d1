package router

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/orderflow/orderflow/internal/test"
)

func TestSetupRegistersRoutes(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	engine := Setup(test.FacadeStub{}, test.HealthCheckerStub{}, logger)

	cases := []struct {
		method string
		path   string
		code   int
	}{
		{http.MethodGet, "/api/health", http.StatusOK},
		{http.MethodGet, "/api/catalog", http.StatusOK},
		{http.MethodGet, "/api/orders", http.StatusOK},
		{http.MethodGet, "/api/orders/missing", http.StatusNotFound},
		{http.MethodGet, "/api/orders/missing/invoice", http.StatusNotFound},
		{http.MethodGet, "/api/orders/missing/draft", http.StatusNotFound},
		{http.MethodPost, "/api/orders", http.StatusBadRequest},
		{http.MethodPost, "/api/items/autofill", http.StatusBadRequest},
		{http.MethodDelete, "/api/orders", http.StatusNotFound},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		recorder := httptest.NewRecorder()
		engine.ServeHTTP(recorder, req)
		if recorder.Code != tc.code {
			t.Fatalf("%s %s: expected %d, got %d", tc.method, tc.path, tc.code, recorder.Code)
		}
	}
}

func TestResponsesAreGzipped(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	engine := Setup(test.FacadeStub{}, test.HealthCheckerStub{}, logger)

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, req)

	if recorder.Header().Get("Content-Encoding") != "gzip" {
		t.Fatalf("expected gzip encoding, got %q", recorder.Header().Get("Content-Encoding"))
	}
}

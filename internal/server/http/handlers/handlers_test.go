package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/orderflow/orderflow/internal/domain/errors"
	"github.com/orderflow/orderflow/internal/domain/model"
	"github.com/orderflow/orderflow/internal/server/http/dto"
	"github.com/orderflow/orderflow/internal/test"
	"github.com/orderflow/orderflow/internal/usecase"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func newOrderRouter(facade OrderFacade) *gin.Engine {
	router := gin.New()
	handler := NewOrderHandler(facade)
	router.POST("/api/orders", handler.Submit)
	router.GET("/api/orders", handler.List)
	router.GET("/api/orders/:id", handler.Get)
	return router
}

func validSubmitBody() string {
	return `{
		"date": "2024-05-01",
		"store_name": "Main Street Store",
		"tax_id": "12345678",
		"address": "1 Main Street",
		"email": "store@example.com",
		"items": [{"name": "Widget", "quantity": 2, "price": 10}]
	}`
}

func TestSubmitCreatesOrder(t *testing.T) {
	var gotForm usecase.OrderForm
	var gotItems []model.OrderItem
	facade := test.FacadeStub{
		SubmitOrderFn: func(_ context.Context, form usecase.OrderForm, items []model.OrderItem) (*model.Order, []usecase.Violation, error) {
			gotForm = form
			gotItems = items
			order := test.SampleOrder()
			return &order, nil, nil
		},
	}
	router := newOrderRouter(facade)

	resp := performRequest(router, http.MethodPost, "/api/orders", validSubmitBody())
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}

	if gotForm.StoreName != "Main Street Store" || gotForm.Date != "2024-05-01" {
		t.Fatalf("form not passed through: %+v", gotForm)
	}
	if len(gotItems) != 1 || gotItems[0].Name != "Widget" || gotItems[0].Quantity != 2 {
		t.Fatalf("items not passed through: %+v", gotItems)
	}

	var body dto.OrderResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.ID != test.SampleOrder().ID {
		t.Fatalf("unexpected order id %s", body.ID)
	}
}

func TestSubmitRejectsMalformedPayload(t *testing.T) {
	router := newOrderRouter(test.FacadeStub{})

	cases := []struct {
		name string
		body string
	}{
		{"not json", "not json"},
		{"no items", `{"date":"2024-05-01","store_name":"S","address":"A","email":"a@b.c","items":[]}`},
		{"bad email", `{"date":"2024-05-01","store_name":"S","address":"A","email":"nope","items":[{"name":"W","quantity":1}]}`},
		{"zero quantity", `{"date":"2024-05-01","store_name":"S","address":"A","email":"a@b.c","items":[{"name":"W","quantity":0}]}`},
		{"missing store", `{"date":"2024-05-01","address":"A","email":"a@b.c","items":[{"name":"W","quantity":1}]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := performRequest(router, http.MethodPost, "/api/orders", tc.body)
			if resp.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", resp.Code)
			}
		})
	}
}

func TestSubmitReturnsViolations(t *testing.T) {
	facade := test.FacadeStub{
		SubmitOrderFn: func(context.Context, usecase.OrderForm, []model.OrderItem) (*model.Order, []usecase.Violation, error) {
			return nil, []usecase.Violation{{Index: 0, Name: "Widget"}}, nil
		},
	}
	router := newOrderRouter(facade)

	resp := performRequest(router, http.MethodPost, "/api/orders", validSubmitBody())
	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", resp.Code)
	}

	var body dto.SubmitRejectedResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(body.Violations) != 1 {
		t.Fatalf("expected 1 violation, got %d", len(body.Violations))
	}
	if body.Violations[0].Message == "" {
		t.Fatal("expected violation message")
	}
}

func TestSubmitMapsDomainErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"empty order", domainErrors.ErrEmptyOrder, http.StatusBadRequest},
		{"missing field", domainErrors.ErrMissingField, http.StatusBadRequest},
		{"invalid date", domainErrors.ErrInvalidDate, http.StatusBadRequest},
		{"storage failure", errors.New("db down"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			facade := test.FacadeStub{
				SubmitOrderFn: func(context.Context, usecase.OrderForm, []model.OrderItem) (*model.Order, []usecase.Violation, error) {
					return nil, nil, tc.err
				},
			}
			resp := performRequest(newOrderRouter(facade), http.MethodPost, "/api/orders", validSubmitBody())
			if resp.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, resp.Code)
			}
		})
	}
}

func TestListReturnsHistory(t *testing.T) {
	router := newOrderRouter(test.FacadeStub{})

	resp := performRequest(router, http.MethodGet, "/api/orders", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var body []dto.OrderResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(body) != 1 {
		t.Fatalf("expected 1 order, got %d", len(body))
	}
}

func TestListReturnsEmptyArray(t *testing.T) {
	facade := test.FacadeStub{
		OrderHistoryFn: func(context.Context) ([]model.Order, error) { return nil, nil },
	}
	resp := performRequest(newOrderRouter(facade), http.MethodGet, "/api/orders", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if strings.TrimSpace(resp.Body.String()) != "[]" {
		t.Fatalf("expected empty array, got %s", resp.Body.String())
	}
}

func TestGetReturnsOrder(t *testing.T) {
	order := test.SampleOrder()
	facade := test.FacadeStub{
		OrderFn: func(_ context.Context, id string) (*model.Order, error) {
			if id != order.ID {
				return nil, domainErrors.ErrNotFound
			}
			return &order, nil
		},
	}
	router := newOrderRouter(facade)

	resp := performRequest(router, http.MethodGet, "/api/orders/"+order.ID, "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	resp = performRequest(router, http.MethodGet, "/api/orders/missing", "")
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestInvoiceDocumentsEndpoint(t *testing.T) {
	order := test.SampleOrder()
	engine := usecase.NewInvoiceUseCase(usecase.DefaultLayoutOptions())
	facade := test.FacadeStub{
		InvoiceDocumentsFn: func(_ context.Context, id string) ([]model.InvoiceDocument, error) {
			if id != order.ID {
				return nil, domainErrors.ErrNotFound
			}
			return engine.Documents(order), nil
		},
	}
	router := gin.New()
	handler := NewInvoiceHandler(facade)
	router.GET("/api/orders/:id/invoice", handler.Documents)

	resp := performRequest(router, http.MethodGet, "/api/orders/"+order.ID+"/invoice", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var body dto.InvoiceResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.OrderID != order.ID {
		t.Fatalf("unexpected order id %s", body.OrderID)
	}
	if len(body.Documents) != 2 {
		t.Fatalf("expected both copies, got %d", len(body.Documents))
	}
	if len(body.Documents[0].Rows) != 5 {
		t.Fatalf("expected padded rows, got %d", len(body.Documents[0].Rows))
	}

	resp = performRequest(router, http.MethodGet, "/api/orders/missing/invoice", "")
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestDraftEndpoint(t *testing.T) {
	facade := test.FacadeStub{
		EmailDraftFn: func(_ context.Context, id string) (model.EmailDraft, string, error) {
			if id != "known" {
				return model.EmailDraft{}, "", domainErrors.ErrNotFound
			}
			return model.EmailDraft{Subject: "S", Body: "B"}, "mailto:store@example.com?subject=S", nil
		},
	}
	router := gin.New()
	handler := NewDraftHandler(facade)
	router.GET("/api/orders/:id/draft", handler.Draft)

	resp := performRequest(router, http.MethodGet, "/api/orders/known/draft", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var body dto.DraftResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.Subject != "S" || body.Body != "B" || body.Mailto == "" {
		t.Fatalf("unexpected draft response %+v", body)
	}

	resp = performRequest(router, http.MethodGet, "/api/orders/missing/draft", "")
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestCatalogListEndpoint(t *testing.T) {
	facade := test.FacadeStub{
		CatalogFn: func(context.Context) []model.Product { return test.SampleCatalog() },
	}
	router := gin.New()
	handler := NewCatalogHandler(facade)
	router.GET("/api/catalog", handler.List)

	resp := performRequest(router, http.MethodGet, "/api/catalog", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var body []dto.ProductResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(body) != len(test.SampleCatalog()) {
		t.Fatalf("unexpected catalog size %d", len(body))
	}
}

func TestCatalogListEmptyWhenUnavailable(t *testing.T) {
	router := gin.New()
	handler := NewCatalogHandler(test.FacadeStub{})
	router.GET("/api/catalog", handler.List)

	resp := performRequest(router, http.MethodGet, "/api/catalog", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if strings.TrimSpace(resp.Body.String()) != "[]" {
		t.Fatalf("expected empty array, got %s", resp.Body.String())
	}
}

func TestAutofillEndpoint(t *testing.T) {
	facade := test.FacadeStub{
		AutofillItemFn: func(_ context.Context, item model.OrderItem) model.OrderItem {
			item.Unit = "pcs"
			item.Price = 10
			item.Amount = item.Quantity * item.Price
			return item
		},
	}
	router := gin.New()
	handler := NewCatalogHandler(facade)
	router.POST("/api/items/autofill", handler.Autofill)

	resp := performRequest(router, http.MethodPost, "/api/items/autofill", `{"name":"Widget","quantity":3}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var body dto.OrderItemResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.Unit != "pcs" || body.Price != 10 || body.Amount != 30 {
		t.Fatalf("unexpected autofill response %+v", body)
	}

	resp = performRequest(router, http.MethodPost, "/api/items/autofill", `{"quantity":3}`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing name, got %d", resp.Code)
	}
}

func TestHealthEndpoint(t *testing.T) {
	router := gin.New()
	router.GET("/api/health", NewHealthHandler(test.HealthCheckerStub{}).Check)

	resp := performRequest(router, http.MethodGet, "/api/health", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	router = gin.New()
	router.GET("/api/health", NewHealthHandler(test.HealthCheckerStub{Err: errors.New("db down")}).Check)

	resp = performRequest(router, http.MethodGet, "/api/health", "")
	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", resp.Code)
	}
}

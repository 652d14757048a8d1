package maildraft

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/orderflow/orderflow/internal/domain/model"
	"github.com/orderflow/orderflow/internal/pkg/money"
)

// ErrDraftUnavailable signals that no draft service is configured.
var ErrDraftUnavailable = errors.New("draft service unavailable")

// Client generates a notification email draft for a submitted order.
type Client interface {
	Draft(ctx context.Context, order model.Order) (model.EmailDraft, error)
}

// HTTPClient asks an external text service for the draft.
type HTTPClient struct {
	endpoint   *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

type itemPayload struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

type request struct {
	StoreName   string        `json:"store_name"`
	Date        string        `json:"date"`
	TotalAmount float64       `json:"total_amount"`
	Items       []itemPayload `json:"items"`
}

type response struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// NewHTTPClient creates HTTP draft client with default timeout.
func NewHTTPClient(rawURL string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse draft service url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("draft service url must be absolute")
	}
	return &HTTPClient{
		endpoint: parsed,
		logger:   logger,
		httpClient: &http.Client{
			Timeout: 20 * time.Second,
		},
	}, nil
}

// Draft requests subject and body from the text service. Any failure is
// returned to the caller, which substitutes the deterministic Fallback.
func (c *HTTPClient) Draft(ctx context.Context, order model.Order) (model.EmailDraft, error) {
	items := make([]itemPayload, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, itemPayload{Name: item.Name, Quantity: item.Quantity, Unit: item.Unit})
	}
	payload, err := json.Marshal(request{
		StoreName:   order.StoreName,
		Date:        order.Date,
		TotalAmount: order.TotalAmount,
		Items:       items,
	})
	if err != nil {
		return model.EmailDraft{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint.String(), bytes.NewReader(payload))
	if err != nil {
		return model.EmailDraft{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return model.EmailDraft{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("draft request failed", slog.Int("status", resp.StatusCode), slog.String("body", string(body)))
		return model.EmailDraft{}, fmt.Errorf("draft service error: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return model.EmailDraft{}, err
	}
	var data response
	if err := json.Unmarshal(body, &data); err != nil {
		return model.EmailDraft{}, err
	}
	if data.Subject == "" || data.Body == "" {
		return model.EmailDraft{}, fmt.Errorf("draft service returned empty draft")
	}
	return model.EmailDraft{Subject: data.Subject, Body: data.Body}, nil
}

// Fallback builds the deterministic local draft used whenever the
// external service fails or is not configured.
func Fallback(order model.Order) model.EmailDraft {
	return model.EmailDraft{
		Subject: fmt.Sprintf("[Shipment Notice] %s - %s", order.StoreName, order.Date),
		Body:    fmt.Sprintf("Hello, attached is your order summary. Total: %s.", money.Format(order.TotalAmount)),
	}
}

// MailtoURL renders the draft as a mailto link for the notification email.
func MailtoURL(order model.Order, draft model.EmailDraft) string {
	query := url.Values{}
	query.Set("subject", draft.Subject)
	query.Set("body", draft.Body)
	return fmt.Sprintf("mailto:%s?%s", order.Email, query.Encode())
}

// Disabled is the client used when no draft service is configured.
type Disabled struct{}

// Draft always reports the service as unavailable.
func (Disabled) Draft(context.Context, model.Order) (model.EmailDraft, error) {
	return model.EmailDraft{}, ErrDraftUnavailable
}

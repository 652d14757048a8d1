package sheets

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
	"strconv"
	"strings"
	"time"

	"github.com/orderflow/orderflow/internal/domain/model"
)

// ErrSyncDisabled signals that no spreadsheet webhook is configured.
var ErrSyncDisabled = errors.New("sheet sync disabled")

// Client forwards submitted orders to the external spreadsheet sink.
type Client interface {
	Send(ctx context.Context, order model.Order) error
}

// HTTPClient posts a flat order record to a webhook, fire and forget.
type HTTPClient struct {
	endpoint   *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

// record is the flat projection the spreadsheet sink accepts.
type record struct {
	OrderID     string  `json:"order_id"`
	Date        string  `json:"date"`
	StoreName   string  `json:"store_name"`
	TaxID       string  `json:"tax_id"`
	Address     string  `json:"address"`
	TotalAmount float64 `json:"total_amount"`
	Remarks     string  `json:"remarks"`
	Items       string  `json:"items"`
}

// NewHTTPClient creates HTTP sheet sync client with default timeout.
func NewHTTPClient(rawURL string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse sheet webhook url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("sheet webhook url must be absolute")
	}
	return &HTTPClient{
		endpoint: parsed,
		logger:   logger,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}, nil
}

// Send posts the order record. The response is opaque by contract: the
// body is drained and the status ignored, only transport failures count.
func (c *HTTPClient) Send(ctx context.Context, order model.Order) error {
	payload, err := json.Marshal(record{
		OrderID:     order.ID,
		Date:        order.Date,
		StoreName:   order.StoreName,
		TaxID:       order.TaxID,
		Address:     order.Address,
		TotalAmount: order.TotalAmount,
		Remarks:     order.Remarks,
		Items:       FlattenItems(order.Items),
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint.String(), bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	c.logger.Info("order synced to sheet", slog.String("order", order.ID), slog.Int("status", resp.StatusCode))
	return nil
}

// FlattenItems serializes lines as "name x quantity unit" joined by commas.
func FlattenItems(items []model.OrderItem) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		qty := strconv.FormatFloat(item.Quantity, 'f', -1, 64)
		parts = append(parts, fmt.Sprintf("%s x %s %s", item.Name, qty, item.Unit))
	}
	return strings.Join(parts, ", ")
}

// Disabled is the client used when no webhook is configured.
type Disabled struct{}

// Send always reports that sync is switched off.
func (Disabled) Send(context.Context, model.Order) error {
	return ErrSyncDisabled
}

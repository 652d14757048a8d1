package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/orderflow/orderflow/internal/domain/model"
)

// Client exposes the external product catalog.
type Client interface {
	Fetch(ctx context.Context) ([]model.Product, error)
}

// HTTPClient fetches the catalog from a remote JSON endpoint.
type HTTPClient struct {
	endpoint   *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

// productPayload mirrors one catalog entry on the wire.
type productPayload struct {
	Name  string  `json:"name"`
	Unit  string  `json:"unit"`
	Price float64 `json:"price"`
}

// NewHTTPClient creates HTTP catalog client with default timeout.
func NewHTTPClient(rawURL string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse catalog url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("catalog url must be absolute")
	}
	return &HTTPClient{
		endpoint: parsed,
		logger:   logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// Fetch retrieves the product list. A response that is not a JSON array,
// or not a success status, means "no catalog available" and is not an
// error: catalog-backed validation simply switches off.
func (c *HTTPClient) Fetch(ctx context.Context) ([]model.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("catalog fetch returned non-ok status", slog.Int("status", resp.StatusCode))
		return nil, nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var payload []productPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		c.logger.Warn("catalog payload is not a product array", slog.String("error", err.Error()))
		return nil, nil
	}

	products := make([]model.Product, 0, len(payload))
	for _, p := range payload {
		products = append(products, model.Product{Name: p.Name, Unit: p.Unit, Price: p.Price})
	}
	return products, nil
}

// Disabled is the client used when no catalog source is configured.
// It reports an empty catalog, which turns off deviation checks.
type Disabled struct{}

// Fetch always reports no catalog.
func (Disabled) Fetch(context.Context) ([]model.Product, error) {
	return nil, nil
}

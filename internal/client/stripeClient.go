package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"soulseer-admin/internal/config"
)

type StripeClient interface {
	CreateProduct(ctx context.Context, name, description string) (string, error)
	CreatePrice(ctx context.Context, productID string, unitAmount int64, currency string) (string, error)
}

type stripeClientImpl struct {
	httpClient *http.Client
	baseApiURL string
	secretKey  string
}

func NewStripeClient(stripeCfg *config.Stripe) StripeClient {
	return &stripeClientImpl{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseApiURL: stripeCfg.BaseApiURL,
		secretKey:  stripeCfg.SecretKey,
	}
}

// CreateProduct registers a catalog product and returns the Stripe product id.
func (c *stripeClientImpl) CreateProduct(ctx context.Context, name, description string) (string, error) {
	form := url.Values{}
	form.Set("name", name)
	form.Set("description", description)

	result, err := c.postForm(ctx, "/v1/products", form)
	if err != nil {
		return "", fmt.Errorf("stripe create product: %w", err)
	}

	return result.ID, nil
}

// CreatePrice attaches a price to an existing product. unitAmount is in minor
// currency units (cents).
func (c *stripeClientImpl) CreatePrice(ctx context.Context, productID string, unitAmount int64, currency string) (string, error) {
	form := url.Values{}
	form.Set("product", productID)
	form.Set("unit_amount", strconv.FormatInt(unitAmount, 10))
	form.Set("currency", currency)

	result, err := c.postForm(ctx, "/v1/prices", form)
	if err != nil {
		return "", fmt.Errorf("stripe create price: %w", err)
	}

	return result.ID, nil
}

type stripeObject struct {
	ID string `json:"id"`
}

func (c *stripeClientImpl) postForm(ctx context.Context, path string, form url.Values) (*stripeObject, error) {
	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseApiURL+path,
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return nil, fmt.Errorf("http new request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("stripe error %d: %s", resp.StatusCode, string(b))
	}

	var result stripeObject
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode stripe response: %w", err)
	}

	return &result, nil
}

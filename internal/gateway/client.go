package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"fundingtrail/internal/config"
)

// Charger is the interface for the remote payment processor.
type Charger interface {
	Charge(ctx context.Context, req ChargeRequest) (*ChargeResult, error)
}

// ChargeRequest contains the customer details and amount for one charge.
// Amount is in minor currency units (cents).
type ChargeRequest struct {
	Name        string
	Phone       string
	Email       string
	Country     string
	Amount      int64
	Currency    string
	Description string
}

// ChargeResult is the gateway's response to a completed checkout call.
// Status is reported by the processor and treated as opaque here.
type ChargeResult struct {
	Status        string `json:"status"`
	TransactionID string `json:"transaction_id"`
}

// Error describes a failed gateway call: transport failure, timeout,
// authentication failure, or a non-2xx response.
type Error struct {
	Reason string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("gateway: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("gateway: %s", e.Reason)
}

func (e *Error) Unwrap() error { return e.Err }

// customerDetails is the nested customer block of the checkout payload.
type customerDetails struct {
	Phone   string `json:"phone"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Country string `json:"country"`
}

// checkoutPayload is the wire format expected by the processor's
// checkout endpoint.
type checkoutPayload struct {
	CustomerDetails        customerDetails `json:"customer_details"`
	InvoiceCurrency        string          `json:"invoice_currency"`
	Amount                 int64           `json:"amount"`
	TransactionDescription string          `json:"transaction_description"`
}

// Client calls the payment processor's HTTP API using Basic auth built
// from the API key/secret pair.
type Client struct {
	baseURL    string
	apiKey     string
	apiSecret  string
	httpClient *http.Client
}

// NewClient creates a gateway client from configuration. The HTTP client
// timeout bounds every charge attempt; the workflow adds no timeout of
// its own.
func NewClient(cfg config.GatewayConfig) *Client {
	return &Client{
		baseURL:   cfg.BaseURL,
		apiKey:    cfg.APIKey,
		apiSecret: cfg.APISecret,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// Charge sends a single checkout request to the processor. It makes
// exactly one attempt; callers needing retry must wrap this client.
func (c *Client) Charge(ctx context.Context, req ChargeRequest) (*ChargeResult, error) {
	payload := checkoutPayload{
		CustomerDetails: customerDetails{
			Phone:   req.Phone,
			Name:    req.Name,
			Email:   req.Email,
			Country: req.Country,
		},
		InvoiceCurrency:        req.Currency,
		Amount:                 req.Amount,
		TransactionDescription: req.Description,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, &Error{Reason: "encode checkout payload", Err: err}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/checkout", bytes.NewReader(body))
	if err != nil {
		return nil, &Error{Reason: "build checkout request", Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.SetBasicAuth(c.apiKey, c.apiSecret)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &Error{Reason: "checkout request failed", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &Error{Reason: fmt.Sprintf("checkout rejected with status %d: %s", resp.StatusCode, bytes.TrimSpace(msg))}
	}

	var result ChargeResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, &Error{Reason: "decode checkout response", Err: err}
	}
	return &result, nil
}

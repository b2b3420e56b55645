package infra

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// DIANPayload is sent by the worker pool to the DIAN sidecar, which handles
// the UBL signing and web-service session against DIAN and returns the CUFE.
type DIANPayload struct {
	IssuerNIT   string  `json:"issuer_nit"`
	ClientNIT   string  `json:"client_nit"`
	ClientName  string  `json:"client_name"`
	NetAmount   float64 `json:"net_amount"`
	IVAAmount   float64 `json:"iva_amount"`
	TotalAmount float64 `json:"total_amount"`
	QuotationID string  `json:"quotation_id"`
}

// DIANResponse is returned by the sidecar after the DIAN round trip.
type DIANResponse struct {
	CUFE         string `json:"cufe"`
	IssuedAt     string `json:"issued_at"` // ISO 8601
	Result       string `json:"result"`    // "A" (accepted) | "R" (rejected)
	Observations []struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"observations"`
}

// DIANClient delegates electronic invoicing to the sidecar over HTTP.
// The decoupling isolates DIAN outages from the core backend.
type DIANClient struct {
	sidecarURL string
	httpClient *http.Client
}

func NewDIANClient(sidecarURL string) *DIANClient {
	return &DIANClient{
		sidecarURL: sidecarURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Issue sends a POST to the sidecar and returns the CUFE response.
func (c *DIANClient) Issue(ctx context.Context, payload DIANPayload) (*DIANResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("dian: marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.sidecarURL+"/issue", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("dian: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("dian: sidecar unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("dian: sidecar returned %d", resp.StatusCode)
	}

	var result DIANResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("dian: decode response: %w", err)
	}
	return &result, nil
}

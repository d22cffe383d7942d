package securepay

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/Imadeveloperrr/backend-test-v1/internal/crypto"
	"github.com/Imadeveloperrr/backend-test-v1/internal/model"
	"github.com/Imadeveloperrr/backend-test-v1/internal/services"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const chargePath = "/api/v1/pay/credit-card"

// Client talks to the SecurePay processor. Outbound payloads are sealed with
// the shared API key through the crypto codec; the key also rides the API-KEY
// header for caller authentication.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewClient() (*Client, error) {
	key := os.Getenv("SECUREPAY_API_KEY")
	if key == "" {
		return nil, errors.New("SECUREPAY_API_KEY not set")
	}
	base := os.Getenv("SECUREPAY_BASE_URL")
	if base == "" {
		return nil, errors.New("SECUREPAY_BASE_URL not set")
	}
	return NewClientWith(base, key, &http.Client{Timeout: 5 * time.Second}), nil
}

func NewClientWith(baseURL, apiKey string, hc *http.Client) *Client {
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), apiKey: apiKey, client: hc}
}

// SecurePay handles the even half of the partner space.
func (c *Client) Supports(partnerID int64) bool {
	return partnerID%2 == 0
}

type chargeRequest struct {
	CardNumber  string `json:"cardNumber"`
	Amount      int64  `json:"amount"`
	ProductName string `json:"productName"`
	Ref         string `json:"ref"`
}

type chargeResponse struct {
	ApprovalCode    string `json:"approvalCode"`
	ApprovedAt      string `json:"approvedAt"`
	MaskedCardLast4 string `json:"maskedCardLast4"`
	Amount          int64  `json:"amount"`
	Status          string `json:"status"`
}

func (c *Client) Authorize(ctx context.Context, req services.AuthorizationRequest) (*services.AuthorizationResult, error) {
	payload, err := json.Marshal(chargeRequest{
		CardNumber:  surrogatePAN(req.CardBin, req.CardLast4),
		Amount:      req.Amount,
		ProductName: req.ProductName,
		Ref:         uuid.NewString(),
	})
	if err != nil {
		return nil, err
	}

	enc, err := crypto.Encrypt(payload, c.apiKey)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(map[string]string{"enc": enc})
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+chargePath, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("API-KEY", c.apiKey)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrProcessorUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s", model.ErrProcessorUnavailable, resp.Status)
	}

	var out chargeResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrProcessorUnavailable, err)
	}
	if out.ApprovalCode == "" && out.Status == "" {
		return nil, fmt.Errorf("%w: empty response body", model.ErrProcessorUnavailable)
	}

	approvedAt, err := time.Parse(time.RFC3339, out.ApprovedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: bad approvedAt %q", model.ErrProcessorUnavailable, out.ApprovedAt)
	}
	status, err := model.ParsePaymentStatus(out.Status)
	if err != nil {
		return nil, fmt.Errorf("%w: status %q", model.ErrProcessorUnavailable, out.Status)
	}

	return &services.AuthorizationResult{
		ApprovalCode:    out.ApprovalCode,
		ApprovedAt:      approvedAt,
		Status:          status,
		MaskedCardLast4: out.MaskedCardLast4,
	}, nil
}

// surrogatePAN builds a 16-digit stand-in from the stored bin and last four
// digits. The real PAN never enters this service.
func surrogatePAN(bin, last4 string) string {
	pad := 16 - len(bin) - len(last4)
	if pad < 0 {
		pad = 0
	}
	return bin + strings.Repeat("0", pad) + last4
}

package midtrans

import (
	"context"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Imadeveloperrr/backend-test-v1/internal/model"
	"github.com/Imadeveloperrr/backend-test-v1/internal/services"

	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/coreapi"
)

// Midtrans reports transaction times in Western Indonesian Time.
var wib = time.FixedZone("WIB", 7*60*60)

// Processor routes authorizations for an allow-listed partner set through the
// Midtrans Core API and maps the charge response into the normalized result.
type Processor struct {
	core     *coreapi.Client
	partners map[int64]bool
}

// NewProcessor reads MIDTRANS_SERVER_KEY, MIDTRANS_CLIENT_KEY (card
// tokenization) and MIDTRANS_PARTNER_IDS (comma separated partner ids this
// processor claims).
func NewProcessor() *Processor {
	var client coreapi.Client
	client.New(os.Getenv("MIDTRANS_SERVER_KEY"), midtrans.Sandbox)
	client.ClientKey = os.Getenv("MIDTRANS_CLIENT_KEY")

	partners := map[int64]bool{}
	for _, tok := range strings.Split(os.Getenv("MIDTRANS_PARTNER_IDS"), ",") {
		if id, err := strconv.ParseInt(strings.TrimSpace(tok), 10, 64); err == nil {
			partners[id] = true
		}
	}
	return &Processor{core: &client, partners: partners}
}

func (p *Processor) Supports(partnerID int64) bool {
	return p.partners[partnerID]
}

func (p *Processor) Authorize(ctx context.Context, req services.AuthorizationRequest) (*services.AuthorizationResult, error) {
	p.core.Options.SetContext(ctx)

	expiry := time.Now().AddDate(3, 0, 0)
	token, tokenErr := p.core.CardToken(cardNumber(req.CardBin, req.CardLast4), int(expiry.Month()), expiry.Year(), "123", p.core.ClientKey)
	if tokenErr != nil {
		return nil, fmt.Errorf("%w: card token: %v", model.ErrAuthorizationFailed, tokenErr)
	}

	ref := fmt.Sprintf("PARTNER-%d-%s", req.PartnerID, uuid.NewString())

	resp, chargeErr := p.core.ChargeTransaction(&coreapi.ChargeReq{
		PaymentType: coreapi.PaymentTypeCreditCard,
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  ref,
			GrossAmt: req.Amount,
		},
		CreditCard: &coreapi.CreditCardDetails{
			TokenID: token.TokenID,
		},
	})
	if chargeErr != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrAuthorizationFailed, chargeErr)
	}
	if resp == nil {
		return nil, model.ErrProcessorUnavailable
	}

	approvedAt := time.Now()
	if t, ok := parseTransactionTime(resp.TransactionTime); ok {
		approvedAt = t
	}

	status := model.StatusRejected
	switch resp.TransactionStatus {
	case "capture", "settlement":
		status = model.StatusApproved
	case "cancel", "expire":
		status = model.StatusCanceled
	}

	last4 := req.CardLast4
	if n := len(resp.MaskedCard); n >= 4 {
		last4 = resp.MaskedCard[n-4:]
	}

	return &services.AuthorizationResult{
		ApprovalCode:    resp.ApprovalCode,
		ApprovedAt:      approvedAt,
		Status:          status,
		MaskedCardLast4: last4,
	}, nil
}

// parseTransactionTime reads Midtrans's zone-less "2006-01-02 15:04:05"
// timestamps, anchored in WIB.
func parseTransactionTime(s string) (time.Time, bool) {
	t, err := time.ParseInLocation("2006-01-02 15:04:05", s, wib)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// cardNumber builds the 16-digit surrogate sent for sandbox tokenization;
// the real PAN never enters this service.
func cardNumber(bin, last4 string) string {
	pad := 16 - len(bin) - len(last4)
	if pad < 0 {
		pad = 0
	}
	return bin + strings.Repeat("0", pad) + last4
}

// VerifySignature checks the SHA-512 signature Midtrans attaches to its
// notification callbacks.
func VerifySignature(
	orderID string,
	statusCode string,
	grossAmount string,
	signature string,
	serverKey string,
) bool {
	raw := orderID + statusCode + grossAmount + serverKey
	hash := sha512.Sum512([]byte(raw))
	expected := hex.EncodeToString(hash[:])

	return expected == signature
}

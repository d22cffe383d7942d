package services

import (
	"context"
	"time"

	"github.com/Imadeveloperrr/backend-test-v1/internal/model"
)

// ProcessorClient is one outbound payment-gateway integration. Supports
// reports whether the client can authorize for the given partner; the
// orchestrator routes each command to the first client that does.
type ProcessorClient interface {
	Supports(partnerID int64) bool
	Authorize(ctx context.Context, req AuthorizationRequest) (*AuthorizationResult, error)
}

type AuthorizationRequest struct {
	PartnerID   int64
	Amount      int64
	CardBin     string
	CardLast4   string
	ProductName string
}

// AuthorizationResult is the normalized outcome every processor client maps
// its own response into.
type AuthorizationResult struct {
	ApprovalCode    string
	ApprovedAt      time.Time
	Status          model.PaymentStatus
	MaskedCardLast4 string
}

// PartnerStore reads partner and fee-policy reference data. Both are owned by
// partner management; this service never writes them.
type PartnerStore interface {
	// FindPartner returns nil, nil when the partner does not exist.
	FindPartner(ctx context.Context, id int64) (*model.Partner, error)
	// FindEffectivePolicy returns the policy with the latest effectiveFrom not
	// after the given instant, or nil, nil when none applies yet.
	FindEffectivePolicy(ctx context.Context, partnerID int64, at time.Time) (*model.FeePolicy, error)
	ListPartners(ctx context.Context) ([]model.Partner, error)
	ListPolicies(ctx context.Context, partnerID int64) ([]model.FeePolicy, error)
}

type PaymentFilter struct {
	PartnerID *int64
	Status    *model.PaymentStatus
	From      *time.Time
	To        *time.Time
}

// PaymentQuery extends the filter with the keyset anchor of the previous
// page. The store probes one row past Limit to decide HasNext.
type PaymentQuery struct {
	PaymentFilter
	CursorCreatedAt *time.Time
	CursorID        *int64
	Limit           int
}

// PaymentPage carries at most Limit rows plus the keyset of the last row in
// the page, from which the next cursor is built.
type PaymentPage struct {
	Items               []model.Payment
	HasNext             bool
	NextCursorCreatedAt time.Time
	NextCursorID        int64
}

type PaymentStore interface {
	// Save persists a new payment and returns it with the store-assigned
	// identity and timestamps filled in.
	Save(ctx context.Context, p *model.Payment) (*model.Payment, error)
	FindBy(ctx context.Context, q PaymentQuery) (*PaymentPage, error)
	// Summary aggregates over the filter alone; it must never see a cursor.
	Summary(ctx context.Context, f PaymentFilter) (*model.PaymentSummary, error)
}

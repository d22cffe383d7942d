package services

import (
	"context"
	"time"

	"github.com/Imadeveloperrr/backend-test-v1/internal/model"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// PaymentQueryService serves filtered, cursor-paginated listings over the
// payment ledger. Sort order is fixed at (createdAt DESC, paymentId DESC) so
// the cursor stays stable under concurrent inserts.
type PaymentQueryService struct {
	Payments PaymentStore
}

func NewPaymentQueryService(payments PaymentStore) *PaymentQueryService {
	return &PaymentQueryService{Payments: payments}
}

type PaymentListQuery struct {
	PartnerID *int64
	Status    string
	From      *time.Time
	To        *time.Time
	Cursor    string
	Limit     int
}

type PaymentListing struct {
	Items      []model.Payment      `json:"items"`
	Summary    model.PaymentSummary `json:"summary"`
	HasNext    bool                 `json:"hasNext"`
	NextCursor *string              `json:"nextCursor"`
}

// List returns one page plus a summary over the whole filtered set. An
// unparseable cursor degrades to the first page; an unknown status is
// rejected with model.ErrInvalidStatus.
func (s *PaymentQueryService) List(ctx context.Context, q PaymentListQuery) (*PaymentListing, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	filter := PaymentFilter{PartnerID: q.PartnerID, From: q.From, To: q.To}
	if q.Status != "" {
		status, err := model.ParsePaymentStatus(q.Status)
		if err != nil {
			return nil, err
		}
		filter.Status = &status
	}

	query := PaymentQuery{PaymentFilter: filter, Limit: limit}
	if q.Cursor != "" {
		if at, id, ok := DecodeCursor(q.Cursor); ok {
			query.CursorCreatedAt = &at
			query.CursorID = &id
		}
	}

	page, err := s.Payments.FindBy(ctx, query)
	if err != nil {
		return nil, err
	}

	// The summary deliberately ignores the cursor: totals always cover the
	// full filtered set, not the current page.
	summary, err := s.Payments.Summary(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := page.Items
	if items == nil {
		// An empty page still serializes as "items": [].
		items = []model.Payment{}
	}

	listing := &PaymentListing{
		Items:   items,
		Summary: *summary,
		HasNext: page.HasNext,
	}
	if page.HasNext {
		cursor := EncodeCursor(page.NextCursorCreatedAt, page.NextCursorID)
		listing.NextCursor = &cursor
	}
	return listing, nil
}

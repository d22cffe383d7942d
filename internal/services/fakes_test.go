package services

import (
	"context"
	"sort"
	"time"

	"github.com/Imadeveloperrr/backend-test-v1/internal/model"
)

type fakePartnerStore struct {
	partners map[int64]model.Partner
	policies []model.FeePolicy
}

func (f *fakePartnerStore) FindPartner(ctx context.Context, id int64) (*model.Partner, error) {
	p, ok := f.partners[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (f *fakePartnerStore) FindEffectivePolicy(ctx context.Context, partnerID int64, at time.Time) (*model.FeePolicy, error) {
	var best *model.FeePolicy
	for i := range f.policies {
		p := &f.policies[i]
		if p.PartnerID != partnerID || p.EffectiveFrom.After(at) {
			continue
		}
		if best == nil || p.EffectiveFrom.After(best.EffectiveFrom) {
			best = p
		}
	}
	return best, nil
}

func (f *fakePartnerStore) ListPartners(ctx context.Context) ([]model.Partner, error) {
	var list []model.Partner
	for _, p := range f.partners {
		list = append(list, p)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].PartnerID < list[j].PartnerID })
	return list, nil
}

func (f *fakePartnerStore) ListPolicies(ctx context.Context, partnerID int64) ([]model.FeePolicy, error) {
	var list []model.FeePolicy
	for _, p := range f.policies {
		if p.PartnerID == partnerID {
			list = append(list, p)
		}
	}
	return list, nil
}

type fakeProcessor struct {
	supports func(int64) bool
	result   *AuthorizationResult
	err      error
	calls    int
}

func (f *fakeProcessor) Supports(partnerID int64) bool {
	return f.supports(partnerID)
}

func (f *fakeProcessor) Authorize(ctx context.Context, req AuthorizationRequest) (*AuthorizationResult, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

// fakePaymentStore keeps rows in memory and mirrors the real repository's
// keyset semantics: fixed (createdAt DESC, id DESC) order, cursor exclusion,
// limit+1 probe.
type fakePaymentStore struct {
	nextID int64
	clock  time.Time
	rows   []model.Payment
}

func (f *fakePaymentStore) Save(ctx context.Context, p *model.Payment) (*model.Payment, error) {
	f.nextID++
	p.PaymentID = f.nextID
	if p.CreatedAt.IsZero() {
		f.clock = f.clock.Add(time.Millisecond)
		p.CreatedAt = f.clock
	}
	// Ledger timestamps are millisecond precision, same as the cursor.
	p.CreatedAt = p.CreatedAt.Truncate(time.Millisecond)
	p.UpdatedAt = p.CreatedAt
	f.rows = append(f.rows, *p)
	return p, nil
}

func (f *fakePaymentStore) FindBy(ctx context.Context, q PaymentQuery) (*PaymentPage, error) {
	matched := f.filtered(q.PaymentFilter)
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].PaymentID > matched[j].PaymentID
	})

	if q.CursorCreatedAt != nil && q.CursorID != nil {
		var after []model.Payment
		for _, p := range matched {
			if p.CreatedAt.Before(*q.CursorCreatedAt) ||
				(p.CreatedAt.Equal(*q.CursorCreatedAt) && p.PaymentID < *q.CursorID) {
				after = append(after, p)
			}
		}
		matched = after
	}

	page := &PaymentPage{}
	if len(matched) > q.Limit {
		page.HasNext = true
		matched = matched[:q.Limit]
	}
	page.Items = matched
	if n := len(matched); n > 0 {
		page.NextCursorCreatedAt = matched[n-1].CreatedAt
		page.NextCursorID = matched[n-1].PaymentID
	}
	return page, nil
}

func (f *fakePaymentStore) Summary(ctx context.Context, filter PaymentFilter) (*model.PaymentSummary, error) {
	s := &model.PaymentSummary{}
	for _, p := range f.filtered(filter) {
		s.Count++
		s.TotalAmount += p.Amount
		s.TotalNetAmount += p.NetAmount
	}
	return s, nil
}

func (f *fakePaymentStore) filtered(filter PaymentFilter) []model.Payment {
	var out []model.Payment
	for _, p := range f.rows {
		if filter.PartnerID != nil && p.PartnerID != *filter.PartnerID {
			continue
		}
		if filter.Status != nil && p.Status != *filter.Status {
			continue
		}
		if filter.From != nil && p.CreatedAt.Before(*filter.From) {
			continue
		}
		if filter.To != nil && p.CreatedAt.After(*filter.To) {
			continue
		}
		out = append(out, p)
	}
	return out
}

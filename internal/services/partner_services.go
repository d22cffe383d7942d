package services

import (
	"context"

	"github.com/Imadeveloperrr/backend-test-v1/internal/model"
)

// PartnerService exposes read-only partner reference data; writes belong to
// partner management, not this service.
type PartnerService struct {
	Partners PartnerStore
}

func NewPartnerService(partners PartnerStore) *PartnerService {
	return &PartnerService{Partners: partners}
}

func (s *PartnerService) GetPartner(ctx context.Context, id int64) (*model.Partner, error) {
	partner, err := s.Partners.FindPartner(ctx, id)
	if err != nil {
		return nil, err
	}
	if partner == nil {
		return nil, model.ErrPartnerNotFound
	}
	return partner, nil
}

func (s *PartnerService) ListPartners(ctx context.Context) ([]model.Partner, error) {
	return s.Partners.ListPartners(ctx)
}

func (s *PartnerService) ListPolicies(ctx context.Context, partnerID int64) ([]model.FeePolicy, error) {
	partner, err := s.Partners.FindPartner(ctx, partnerID)
	if err != nil {
		return nil, err
	}
	if partner == nil {
		return nil, model.ErrPartnerNotFound
	}
	return s.Partners.ListPolicies(ctx, partnerID)
}

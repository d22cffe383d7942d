package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/Imadeveloperrr/backend-test-v1/internal/model"

	"github.com/shopspring/decimal"
)

type PaymentService struct {
	Partners   PartnerStore
	Payments   PaymentStore
	Processors []ProcessorClient
}

func NewPaymentService(
	partners PartnerStore,
	payments PaymentStore,
	processors ...ProcessorClient,
) *PaymentService {
	return &PaymentService{
		Partners:   partners,
		Payments:   payments,
		Processors: processors,
	}
}

type PaymentCommand struct {
	PartnerID   int64
	Amount      int64
	CardBin     string
	CardLast4   string
	ProductName string
}

// Pay runs one authorization end to end: partner gate, processor selection,
// authorization, fee resolution at the processor-reported instant, then a
// single persist. Every step is a hard gate; nothing is written on failure.
func (s *PaymentService) Pay(ctx context.Context, cmd PaymentCommand) (*model.Payment, error) {
	partner, err := s.Partners.FindPartner(ctx, cmd.PartnerID)
	if err != nil {
		return nil, err
	}
	if partner == nil {
		return nil, model.ErrPartnerNotFound
	}
	if !partner.Active {
		return nil, model.ErrPartnerInactive
	}

	var client ProcessorClient
	for _, p := range s.Processors {
		if p.Supports(cmd.PartnerID) {
			client = p
			break
		}
	}
	if client == nil {
		return nil, model.ErrNoCapableProcessor
	}

	result, err := client.Authorize(ctx, AuthorizationRequest{
		PartnerID:   cmd.PartnerID,
		Amount:      cmd.Amount,
		CardBin:     cmd.CardBin,
		CardLast4:   cmd.CardLast4,
		ProductName: cmd.ProductName,
	})
	if err != nil {
		if errors.Is(err, model.ErrProcessorUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", model.ErrAuthorizationFailed, err)
	}

	// Fee policy is resolved at the authorization instant the processor
	// reported, not at "now".
	policy, err := s.Partners.FindEffectivePolicy(ctx, cmd.PartnerID, result.ApprovedAt)
	if err != nil {
		return nil, err
	}
	if policy == nil {
		return nil, model.ErrNoFeePolicy
	}

	fee := feeAmount(cmd.Amount, policy)

	saved, err := s.Payments.Save(ctx, &model.Payment{
		PartnerID:      cmd.PartnerID,
		Amount:         cmd.Amount,
		AppliedFeeRate: policy.Percentage,
		FeeAmount:      fee,
		NetAmount:      cmd.Amount - fee,
		CardBin:        cmd.CardBin,
		CardLast4:      cmd.CardLast4,
		ApprovalCode:   result.ApprovalCode,
		ApprovedAt:     result.ApprovedAt,
		Status:         result.Status,
		ProductName:    cmd.ProductName,
	})
	if err != nil {
		return nil, err
	}

	log.Printf("[payment] settled partner=%d amount=%d fee=%d status=%s approval=%s",
		saved.PartnerID, saved.Amount, saved.FeeAmount, saved.Status, saved.ApprovalCode)

	return saved, nil
}

// feeAmount computes round_half_up(amount * percentage) + fixedFee in minor
// units. decimal.Round rounds half away from zero, which is the required
// behavior for positive amounts.
func feeAmount(amount int64, p *model.FeePolicy) int64 {
	pct := decimal.NewFromInt(amount).Mul(p.Percentage)
	return pct.Round(0).IntPart() + p.FixedFee
}

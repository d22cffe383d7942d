package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	StatusApproved PaymentStatus = "APPROVED"
	StatusRejected PaymentStatus = "REJECTED"
	StatusCanceled PaymentStatus = "CANCELED"
)

// ParsePaymentStatus validates an inbound status string against the closed
// status set.
func ParsePaymentStatus(s string) (PaymentStatus, error) {
	switch st := PaymentStatus(s); st {
	case StatusApproved, StatusRejected, StatusCanceled:
		return st, nil
	}
	return "", ErrInvalidStatus
}

// Payment is the settled ledger row. Only cardBin and cardLast4 are ever
// stored, never a full card number. Rows are written once and never mutated.
type Payment struct {
	PaymentID      int64           `db:"paymentid" json:"paymentId"`
	PartnerID      int64           `db:"partnerid" json:"partnerId"`
	Amount         int64           `db:"amount" json:"amount"`
	AppliedFeeRate decimal.Decimal `db:"appliedfeerate" json:"appliedFeeRate"`
	FeeAmount      int64           `db:"feeamount" json:"feeAmount"`
	NetAmount      int64           `db:"netamount" json:"netAmount"`
	CardBin        string          `db:"cardbin" json:"cardBin"`
	CardLast4      string          `db:"cardlast4" json:"cardLast4"`
	ApprovalCode   string          `db:"approvalcode" json:"approvalCode"`
	ApprovedAt     time.Time       `db:"approvedat" json:"approvedAt"`
	Status         PaymentStatus   `db:"status" json:"status"`
	ProductName    string          `db:"productname" json:"productName"`
	CreatedAt      time.Time       `db:"createdat" json:"createdAt"`
	UpdatedAt      time.Time       `db:"updatedat" json:"updatedAt"`
}

// PaymentSummary aggregates the full filtered set, independent of the page
// being served.
type PaymentSummary struct {
	Count          int64 `json:"count"`
	TotalAmount    int64 `json:"totalAmount"`
	TotalNetAmount int64 `json:"totalNetAmount"`
}

package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Partner struct {
	PartnerID   int64  `db:"partnerid" json:"partnerId"`
	PartnerName string `db:"partnername" json:"partnerName"`
	Active      bool   `db:"active" json:"active"`
}

// FeePolicy is append-only reference data: a new row supersedes older ones
// from its EffectiveFrom onward, existing rows are never edited.
type FeePolicy struct {
	PolicyID      int64           `db:"policyid" json:"policyId"`
	PartnerID     int64           `db:"partnerid" json:"partnerId"`
	EffectiveFrom time.Time       `db:"effectivefrom" json:"effectiveFrom"`
	Percentage    decimal.Decimal `db:"percentage" json:"percentage"`
	FixedFee      int64           `db:"fixedfee" json:"fixedFee"`
}

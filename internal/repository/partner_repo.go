package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Imadeveloperrr/backend-test-v1/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PartnerRepository struct {
	DB *pgxpool.Pool
}

func NewPartnerRepository(db *pgxpool.Pool) *PartnerRepository {
	return &PartnerRepository{DB: db}
}

func (r *PartnerRepository) FindPartner(ctx context.Context, id int64) (*model.Partner, error) {
	var p model.Partner

	q := `
		SELECT partnerid, partnername, active
		FROM partners
		WHERE partnerid=$1
	`
	err := r.DB.QueryRow(ctx, q, id).Scan(&p.PartnerID, &p.PartnerName, &p.Active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// FindEffectivePolicy picks the policy row governing the given instant: the
// latest effectivefrom at or before it.
func (r *PartnerRepository) FindEffectivePolicy(
	ctx context.Context,
	partnerID int64,
	at time.Time,
) (*model.FeePolicy, error) {

	q := `
		SELECT policyid, partnerid, effectivefrom, percentage::text, fixedfee
		FROM fee_policies
		WHERE partnerid=$1 AND effectivefrom <= $2
		ORDER BY effectivefrom DESC
		LIMIT 1
	`
	policy, err := scanPolicy(r.DB.QueryRow(ctx, q, partnerID, at))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return policy, nil
}

func (r *PartnerRepository) ListPartners(ctx context.Context) ([]model.Partner, error) {
	q := `SELECT partnerid, partnername, active FROM partners ORDER BY partnerid`
	rows, err := r.DB.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []model.Partner
	for rows.Next() {
		var p model.Partner
		if err := rows.Scan(&p.PartnerID, &p.PartnerName, &p.Active); err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func (r *PartnerRepository) ListPolicies(ctx context.Context, partnerID int64) ([]model.FeePolicy, error) {
	q := `
		SELECT policyid, partnerid, effectivefrom, percentage::text, fixedfee
		FROM fee_policies
		WHERE partnerid=$1
		ORDER BY effectivefrom
	`
	rows, err := r.DB.Query(ctx, q, partnerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []model.FeePolicy
	for rows.Next() {
		policy, err := scanPolicy(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *policy)
	}
	return list, rows.Err()
}

// percentage travels as text so numeric precision survives the scan exactly.
func scanPolicy(row pgx.Row) (*model.FeePolicy, error) {
	var (
		p   model.FeePolicy
		pct string
	)
	if err := row.Scan(&p.PolicyID, &p.PartnerID, &p.EffectiveFrom, &pct, &p.FixedFee); err != nil {
		return nil, err
	}
	rate, err := decimal.NewFromString(pct)
	if err != nil {
		return nil, err
	}
	p.Percentage = rate
	return &p, nil
}

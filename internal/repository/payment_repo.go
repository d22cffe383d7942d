package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/Imadeveloperrr/backend-test-v1/internal/model"
	"github.com/Imadeveloperrr/backend-test-v1/internal/services"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PaymentRepository struct {
	DB *pgxpool.Pool
}

func NewPaymentRepository(db *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{DB: db}
}

func (r *PaymentRepository) Save(ctx context.Context, p *model.Payment) (*model.Payment, error) {
	q := `
		INSERT INTO payments
			(partnerid, amount, appliedfeerate, feeamount, netamount,
			 cardbin, cardlast4, approvalcode, approvedat, status, productname,
			 createdat, updatedat)
		VALUES
			($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
		RETURNING paymentid, createdat, updatedat
	`
	err := r.DB.QueryRow(
		ctx, q,
		p.PartnerID, p.Amount, p.AppliedFeeRate.String(), p.FeeAmount, p.NetAmount,
		p.CardBin, p.CardLast4, p.ApprovalCode, p.ApprovedAt, p.Status, p.ProductName,
	).Scan(&p.PaymentID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// FindBy scans the ledger keyset-style: rows strictly after the cursor tuple
// in (createdat DESC, paymentid DESC) order, probing one row past the limit
// to decide whether another page exists.
func (r *PaymentRepository) FindBy(ctx context.Context, q services.PaymentQuery) (*services.PaymentPage, error) {
	where, args := filterClauses(q.PaymentFilter)
	if q.CursorCreatedAt != nil && q.CursorID != nil {
		args = append(args, *q.CursorCreatedAt, *q.CursorID)
		where = append(where, fmt.Sprintf("(createdat, paymentid) < ($%d, $%d)", len(args)-1, len(args)))
	}

	sql := `
		SELECT paymentid, partnerid, amount, appliedfeerate::text, feeamount, netamount,
		       cardbin, cardlast4, approvalcode, approvedat, status, productname,
		       createdat, updatedat
		FROM payments
	`
	if len(where) > 0 {
		sql += " WHERE " + strings.Join(where, " AND ")
	}
	args = append(args, q.Limit+1)
	sql += fmt.Sprintf(" ORDER BY createdat DESC, paymentid DESC LIMIT $%d", len(args))

	rows, err := r.DB.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	page := &services.PaymentPage{}
	if len(items) > q.Limit {
		// The probe row proves a next page; it is not part of this one.
		page.HasNext = true
		items = items[:q.Limit]
	}
	page.Items = items
	if n := len(items); n > 0 {
		page.NextCursorCreatedAt = items[n-1].CreatedAt
		page.NextCursorID = items[n-1].PaymentID
	}
	return page, nil
}

func (r *PaymentRepository) Summary(ctx context.Context, f services.PaymentFilter) (*model.PaymentSummary, error) {
	where, args := filterClauses(f)

	sql := `
		SELECT COUNT(*), COALESCE(SUM(amount), 0), COALESCE(SUM(netamount), 0)
		FROM payments
	`
	if len(where) > 0 {
		sql += " WHERE " + strings.Join(where, " AND ")
	}

	var s model.PaymentSummary
	if err := r.DB.QueryRow(ctx, sql, args...).Scan(&s.Count, &s.TotalAmount, &s.TotalNetAmount); err != nil {
		return nil, err
	}
	return &s, nil
}

func filterClauses(f services.PaymentFilter) ([]string, []any) {
	var (
		where []string
		args  []any
	)
	if f.PartnerID != nil {
		args = append(args, *f.PartnerID)
		where = append(where, fmt.Sprintf("partnerid=$%d", len(args)))
	}
	if f.Status != nil {
		args = append(args, *f.Status)
		where = append(where, fmt.Sprintf("status=$%d", len(args)))
	}
	if f.From != nil {
		args = append(args, *f.From)
		where = append(where, fmt.Sprintf("createdat >= $%d", len(args)))
	}
	if f.To != nil {
		args = append(args, *f.To)
		where = append(where, fmt.Sprintf("createdat <= $%d", len(args)))
	}
	return where, args
}

func scanPayment(row pgx.Row) (*model.Payment, error) {
	var (
		p    model.Payment
		rate string
	)
	err := row.Scan(
		&p.PaymentID, &p.PartnerID, &p.Amount, &rate, &p.FeeAmount, &p.NetAmount,
		&p.CardBin, &p.CardLast4, &p.ApprovalCode, &p.ApprovedAt, &p.Status, &p.ProductName,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	applied, err := decimal.NewFromString(rate)
	if err != nil {
		return nil, err
	}
	p.AppliedFeeRate = applied
	return &p, nil
}

package repository

import (
	"context"
	"fmt"

	"request-market/internal/infra"
	"request-market/internal/infra/db"

	"github.com/google/uuid"
)

// PaymentLedger records pending transactions locally before handing them to
// the external provider's async flow. The provider settles through the
// confirm endpoint using the reference returned here.
type PaymentLedger struct {
	db db.DBTX
}

func NewPaymentLedger(dbtx db.DBTX) *PaymentLedger {
	return &PaymentLedger{db: dbtx}
}

func (l *PaymentLedger) CreateTransaction(ctx context.Context, requestID uuid.UUID, amount float64, currency string) (string, error) {
	ref := fmt.Sprintf("ub_%s", uuid.New())
	_, err := l.db.Exec(ctx, `
		INSERT INTO payment_transactions (reference, request_id, amount, currency, status, created_at)
		VALUES ($1, $2, $3, $4, 'pending', now())`,
		ref, requestID, amount, currency,
	)
	if err != nil {
		return "", infra.WrapRepoErr("failed to record payment transaction", err)
	}
	return ref, nil
}

func (l *PaymentLedger) SettleTransaction(ctx context.Context, ref string, requestID uuid.UUID) error {
	tag, err := l.db.Exec(ctx, `
		UPDATE payment_transactions
		SET status = 'paid', settled_at = now()
		WHERE reference = $1 AND request_id = $2 AND status = 'pending'`,
		ref, requestID,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to settle payment transaction", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("payment transaction is not pending", nil, infra.KindNotFound)
	}
	return nil
}

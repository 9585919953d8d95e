package db

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	// necessary import to wire up the postgres driver
	_ "github.com/lib/pq"

	"bizcore/models"
)

type PostgresPaymentsRepository struct {
	db     *sqlx.DB
	schema string
}

// DBPayment represents the database schema for the payments table
type DBPayment struct {
	ID        string          `db:"id"`
	ClientID  string          `db:"client_id"`
	Amount    decimal.Decimal `db:"amount"`
	Currency  string          `db:"currency"`
	Status    string          `db:"status"`
	CreatedAt time.Time       `db:"created_at"`
}

// Column names for payments table
var paymentsColumns = []string{
	"id",
	"client_id",
	"amount",
	"currency",
	"status",
	"created_at",
}

func NewPostgresPaymentsRepository(db *sqlx.DB, schema string) *PostgresPaymentsRepository {
	return &PostgresPaymentsRepository{db: db, schema: schema}
}

func dbPaymentToModel(dbPayment *DBPayment) models.Payment {
	return models.Payment{
		ID:        dbPayment.ID,
		ClientID:  dbPayment.ClientID,
		Amount:    dbPayment.Amount,
		Currency:  dbPayment.Currency,
		Status:    dbPayment.Status,
		CreatedAt: dbPayment.CreatedAt,
	}
}

// SumPaymentsSince totals completed payments created at or after the given
// instant. COALESCE keeps the sum at zero for an empty window.
func (r *PostgresPaymentsRepository) SumPaymentsSince(
	ctx context.Context,
	since time.Time,
) (decimal.Decimal, error) {
	query := fmt.Sprintf(`
		SELECT COALESCE(SUM(amount), 0)
		FROM %s.payments
		WHERE created_at >= $1 AND status = 'completed'`, r.schema)

	var total decimal.Decimal
	if err := r.db.GetContext(ctx, &total, query, since); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum payments: %w", err)
	}

	return total, nil
}

// CountPaymentsSince counts completed payments created at or after the given
// instant
func (r *PostgresPaymentsRepository) CountPaymentsSince(ctx context.Context, since time.Time) (int, error) {
	query := fmt.Sprintf(`
		SELECT COUNT(*)
		FROM %s.payments
		WHERE created_at >= $1 AND status = 'completed'`, r.schema)

	var count int
	if err := r.db.GetContext(ctx, &count, query, since); err != nil {
		return 0, fmt.Errorf("failed to count payments: %w", err)
	}

	return count, nil
}

// ListRecentPayments returns up to limit payments created at or after the
// given instant, most recent first
func (r *PostgresPaymentsRepository) ListRecentPayments(
	ctx context.Context,
	since time.Time,
	limit int,
) ([]models.Payment, error) {
	columnsStr := strings.Join(paymentsColumns, ", ")
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s.payments
		WHERE created_at >= $1
		ORDER BY created_at DESC
		LIMIT $2`, columnsStr, r.schema)

	var dbPayments []DBPayment
	if err := r.db.SelectContext(ctx, &dbPayments, query, since, limit); err != nil {
		return nil, fmt.Errorf("failed to list recent payments: %w", err)
	}

	payments := make([]models.Payment, 0, len(dbPayments))
	for i := range dbPayments {
		payments = append(payments, dbPaymentToModel(&dbPayments[i]))
	}

	return payments, nil
}

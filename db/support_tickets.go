package db

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	// necessary import to wire up the postgres driver
	_ "github.com/lib/pq"

	"bizcore/models"
)

type PostgresSupportTicketsRepository struct {
	db     *sqlx.DB
	schema string
}

// DBSupportTicket represents the database schema for the support_tickets table
type DBSupportTicket struct {
	ID        string    `db:"id"`
	ClientID  string    `db:"client_id"`
	Subject   string    `db:"subject"`
	Status    string    `db:"status"`
	Priority  string    `db:"priority"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Column names for support_tickets table
var supportTicketsColumns = []string{
	"id",
	"client_id",
	"subject",
	"status",
	"priority",
	"created_at",
	"updated_at",
}

func NewPostgresSupportTicketsRepository(db *sqlx.DB, schema string) *PostgresSupportTicketsRepository {
	return &PostgresSupportTicketsRepository{db: db, schema: schema}
}

func dbSupportTicketToModel(dbTicket *DBSupportTicket) models.SupportTicket {
	return models.SupportTicket{
		ID:        dbTicket.ID,
		ClientID:  dbTicket.ClientID,
		Subject:   dbTicket.Subject,
		Status:    dbTicket.Status,
		Priority:  dbTicket.Priority,
		CreatedAt: dbTicket.CreatedAt,
		UpdatedAt: dbTicket.UpdatedAt,
	}
}

// CountTicketsSince counts tickets created at or after the given instant
func (r *PostgresSupportTicketsRepository) CountTicketsSince(ctx context.Context, since time.Time) (int, error) {
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s.support_tickets WHERE created_at >= $1`, r.schema)

	var count int
	if err := r.db.GetContext(ctx, &count, query, since); err != nil {
		return 0, fmt.Errorf("failed to count support tickets: %w", err)
	}

	return count, nil
}

// CountOpenTickets counts tickets currently in the open status, regardless
// of age - an old unresolved ticket is still open work
func (r *PostgresSupportTicketsRepository) CountOpenTickets(ctx context.Context) (int, error) {
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s.support_tickets WHERE status = 'open'`, r.schema)

	var count int
	if err := r.db.GetContext(ctx, &count, query); err != nil {
		return 0, fmt.Errorf("failed to count open tickets: %w", err)
	}

	return count, nil
}

// CountTicketsByStatusSince returns a status -> count tally for tickets
// created at or after the given instant
func (r *PostgresSupportTicketsRepository) CountTicketsByStatusSince(
	ctx context.Context,
	since time.Time,
) (map[string]int, error) {
	query := fmt.Sprintf(`
		SELECT status, COUNT(*) AS total
		FROM %s.support_tickets
		WHERE created_at >= $1
		GROUP BY status`, r.schema)

	rows := []struct {
		Status string `db:"status"`
		Total  int    `db:"total"`
	}{}
	if err := r.db.SelectContext(ctx, &rows, query, since); err != nil {
		return nil, fmt.Errorf("failed to count tickets by status: %w", err)
	}

	tally := make(map[string]int, len(rows))
	for _, row := range rows {
		tally[row.Status] = row.Total
	}

	return tally, nil
}

// ListRecentTickets returns up to limit tickets created at or after the
// given instant, most recent first
func (r *PostgresSupportTicketsRepository) ListRecentTickets(
	ctx context.Context,
	since time.Time,
	limit int,
) ([]models.SupportTicket, error) {
	columnsStr := strings.Join(supportTicketsColumns, ", ")
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s.support_tickets
		WHERE created_at >= $1
		ORDER BY created_at DESC
		LIMIT $2`, columnsStr, r.schema)

	var dbTickets []DBSupportTicket
	if err := r.db.SelectContext(ctx, &dbTickets, query, since, limit); err != nil {
		return nil, fmt.Errorf("failed to list recent tickets: %w", err)
	}

	tickets := make([]models.SupportTicket, 0, len(dbTickets))
	for i := range dbTickets {
		tickets = append(tickets, dbSupportTicketToModel(&dbTickets[i]))
	}

	return tickets, nil
}

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

type PostgresLeadsRepository struct {
	db     *sqlx.DB
	schema string
}

// DBLead represents the database schema for the leads table
type DBLead struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Company   string    `db:"company"`
	Stage     string    `db:"stage"`
	Source    string    `db:"source"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Column names for leads table
var leadsColumns = []string{
	"id",
	"name",
	"company",
	"stage",
	"source",
	"created_at",
	"updated_at",
}

func NewPostgresLeadsRepository(db *sqlx.DB, schema string) *PostgresLeadsRepository {
	return &PostgresLeadsRepository{db: db, schema: schema}
}

func dbLeadToModel(dbLead *DBLead) models.Lead {
	return models.Lead{
		ID:        dbLead.ID,
		Name:      dbLead.Name,
		Company:   dbLead.Company,
		Stage:     dbLead.Stage,
		Source:    dbLead.Source,
		CreatedAt: dbLead.CreatedAt,
		UpdatedAt: dbLead.UpdatedAt,
	}
}

// CountLeadsSince counts leads created at or after the given instant
func (r *PostgresLeadsRepository) CountLeadsSince(ctx context.Context, since time.Time) (int, error) {
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s.leads WHERE created_at >= $1`, r.schema)

	var count int
	if err := r.db.GetContext(ctx, &count, query, since); err != nil {
		return 0, fmt.Errorf("failed to count leads: %w", err)
	}

	return count, nil
}

// CountLeadsByStageSince returns a stage -> count tally for leads created at
// or after the given instant
func (r *PostgresLeadsRepository) CountLeadsByStageSince(
	ctx context.Context,
	since time.Time,
) (map[string]int, error) {
	query := fmt.Sprintf(`
		SELECT stage, COUNT(*) AS total
		FROM %s.leads
		WHERE created_at >= $1
		GROUP BY stage`, r.schema)

	rows := []struct {
		Stage string `db:"stage"`
		Total int    `db:"total"`
	}{}
	if err := r.db.SelectContext(ctx, &rows, query, since); err != nil {
		return nil, fmt.Errorf("failed to count leads by stage: %w", err)
	}

	tally := make(map[string]int, len(rows))
	for _, row := range rows {
		tally[row.Stage] = row.Total
	}

	return tally, nil
}

// ListRecentLeads returns up to limit leads created at or after the given
// instant, most recent first
func (r *PostgresLeadsRepository) ListRecentLeads(
	ctx context.Context,
	since time.Time,
	limit int,
) ([]models.Lead, error) {
	columnsStr := strings.Join(leadsColumns, ", ")
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s.leads
		WHERE created_at >= $1
		ORDER BY created_at DESC
		LIMIT $2`, columnsStr, r.schema)

	var dbLeads []DBLead
	if err := r.db.SelectContext(ctx, &dbLeads, query, since, limit); err != nil {
		return nil, fmt.Errorf("failed to list recent leads: %w", err)
	}

	leads := make([]models.Lead, 0, len(dbLeads))
	for i := range dbLeads {
		leads = append(leads, dbLeadToModel(&dbLeads[i]))
	}

	return leads, nil
}

// UpdateLeadStageByName moves every lead whose name or company matches the
// given name (case-insensitive, partial) to the given stage and returns how
// many rows changed.
func (r *PostgresLeadsRepository) UpdateLeadStageByName(
	ctx context.Context,
	name, stage string,
) (int, error) {
	query := fmt.Sprintf(`
		UPDATE %s.leads
		SET stage = $1, updated_at = NOW()
		WHERE name ILIKE $2 OR company ILIKE $2`, r.schema)

	result, err := r.db.ExecContext(ctx, query, stage, "%"+name+"%")
	if err != nil {
		return 0, fmt.Errorf("failed to update lead stage: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return int(affected), nil
}

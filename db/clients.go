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

type PostgresClientsRepository struct {
	db     *sqlx.DB
	schema string
}

// DBClient represents the database schema for the clients table
type DBClient struct {
	ID          string    `db:"id"`
	CompanyName string    `db:"company_name"`
	ContactName string    `db:"contact_name"`
	Email       string    `db:"email"`
	Status      string    `db:"status"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// Column names for clients table
var clientsColumns = []string{
	"id",
	"company_name",
	"contact_name",
	"email",
	"status",
	"created_at",
	"updated_at",
}

func NewPostgresClientsRepository(db *sqlx.DB, schema string) *PostgresClientsRepository {
	return &PostgresClientsRepository{db: db, schema: schema}
}

func dbClientToModel(dbClient *DBClient) models.Client {
	return models.Client{
		ID:          dbClient.ID,
		CompanyName: dbClient.CompanyName,
		ContactName: dbClient.ContactName,
		Email:       dbClient.Email,
		Status:      dbClient.Status,
		CreatedAt:   dbClient.CreatedAt,
		UpdatedAt:   dbClient.UpdatedAt,
	}
}

// SearchClientsByName performs a case-insensitive partial match over the
// company name and the primary contact name, returning at most limit matches
func (r *PostgresClientsRepository) SearchClientsByName(
	ctx context.Context,
	name string,
	limit int,
) ([]models.Client, error) {
	columnsStr := strings.Join(clientsColumns, ", ")
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s.clients
		WHERE company_name ILIKE $1 OR contact_name ILIKE $1
		ORDER BY updated_at DESC
		LIMIT $2`, columnsStr, r.schema)

	var dbClients []DBClient
	if err := r.db.SelectContext(ctx, &dbClients, query, "%"+name+"%", limit); err != nil {
		return nil, fmt.Errorf("failed to search clients: %w", err)
	}

	result := make([]models.Client, 0, len(dbClients))
	for i := range dbClients {
		result = append(result, dbClientToModel(&dbClients[i]))
	}

	return result, nil
}

// CountClientsSince counts clients created at or after the given instant
func (r *PostgresClientsRepository) CountClientsSince(ctx context.Context, since time.Time) (int, error) {
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s.clients WHERE created_at >= $1`, r.schema)

	var count int
	if err := r.db.GetContext(ctx, &count, query, since); err != nil {
		return 0, fmt.Errorf("failed to count clients: %w", err)
	}

	return count, nil
}

package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sonofaryeetey/tailorflow/internal/model"
)

var (
	clientHandler = slog.NewTextHandler(os.Stdout, nil).WithAttrs([]slog.Attr{slog.String("repository", "client")})
	clientLogger  = slog.New(clientHandler)
)

type ClientRepository struct {
	pool *pgxpool.Pool
}

func NewClientRepo(pool *pgxpool.Pool) *ClientRepository {
	return &ClientRepository{pool: pool}
}

// CreateClient inserts the client and returns it with the store-assigned
// creation timestamp.
func (c *ClientRepository) CreateClient(ctx context.Context, client model.Client) (model.Client, error) {
	row := c.pool.QueryRow(ctx,
		`INSERT INTO clients (id, full_name, phone, location) VALUES ($1, $2, $3, $4) RETURNING created_at`,
		client.ID, client.FullName, client.Phone, client.Location)

	if err := row.Scan(&client.CreatedAt); err != nil {
		clientLogger.Error("error inserting client", slog.String("error", err.Error()))
		return model.Client{}, fmt.Errorf("error inserting client: %w", err)
	}
	return client, nil
}

func (c *ClientRepository) GetClientByID(ctx context.Context, id string) (*model.Client, error) {
	var client model.Client
	row := c.pool.QueryRow(ctx,
		`SELECT id, full_name, phone, location, created_at FROM clients WHERE id = $1`, id)

	err := row.Scan(&client.ID, &client.FullName, &client.Phone, &client.Location, &client.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		clientLogger.Error("error querying client", slog.String("id", id), slog.String("error", err.Error()))
		return nil, fmt.Errorf("error querying client: %w", err)
	}
	return &client, nil
}

// ListClients returns every client ordered by full name, the way the client
// list view presents them.
func (c *ClientRepository) ListClients(ctx context.Context) ([]model.Client, error) {
	rows, err := c.pool.Query(ctx,
		`SELECT id, full_name, phone, location, created_at FROM clients ORDER BY full_name`)
	if err != nil {
		clientLogger.Error("error listing clients", slog.String("error", err.Error()))
		return nil, fmt.Errorf("error listing clients: %w", err)
	}
	defer rows.Close()

	clients := make([]model.Client, 0)
	for rows.Next() {
		var client model.Client
		if err := rows.Scan(&client.ID, &client.FullName, &client.Phone, &client.Location, &client.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning client row: %w", err)
		}
		clients = append(clients, client)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating client rows: %w", err)
	}
	return clients, nil
}

func (c *ClientRepository) DeleteClient(ctx context.Context, id string) error {
	tag, err := c.pool.Exec(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		clientLogger.Error("error deleting client", slog.String("id", id), slog.String("error", err.Error()))
		return fmt.Errorf("error deleting client: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

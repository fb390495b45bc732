package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sonofaryeetey/tailorflow/internal/model"
)

var (
	itemHandler = slog.NewTextHandler(os.Stdout, nil).WithAttrs([]slog.Attr{slog.String("repository", "item")})
	itemLogger  = slog.New(itemHandler)
)

// ItemMeasurementColumns lists the measurement columns of the items table in
// the same order as model.Measurements.Values.
var ItemMeasurementColumns = []string{
	"bust", "chest", "shoulder", "arm_hole", "sleeve_length", "sleeve_width", "collar", "neckline",
	"waist", "skirt_waist", "trouser_waist", "hip", "seat", "crotch", "bottom", "cuff",
	"shirt_length", "blouse_length", "skirt_length", "trouser_length", "shorts_length", "jacket_length", "kaftan_dress_length",
	"dress", "jumpsuit",
}

var itemSelectColumns = "id, client_id, " + strings.Join(ItemMeasurementColumns, ", ") + ", extra_details, image_url, created_at"

type ItemRepository struct {
	pool *pgxpool.Pool
}

func NewItemRepo(pool *pgxpool.Pool) *ItemRepository {
	return &ItemRepository{pool: pool}
}

// InsertItems persists all items in a single multi-row INSERT, so the batch is
// all-or-nothing at the statement level.
func (r *ItemRepository) InsertItems(ctx context.Context, items []model.Item) error {
	if len(items) == 0 {
		return nil
	}

	cols := append([]string{"id", "client_id"}, ItemMeasurementColumns...)
	cols = append(cols, "extra_details", "image_url")

	var sb strings.Builder
	sb.WriteString("INSERT INTO items (")
	sb.WriteString(strings.Join(cols, ", "))
	sb.WriteString(") VALUES ")

	args := make([]any, 0, len(items)*len(cols))
	for i, it := range items {
		placeholders := make([]string, 0, len(cols))
		for range cols {
			placeholders = append(placeholders, fmt.Sprintf("$%d", len(args)+len(placeholders)+1))
		}
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("(" + strings.Join(placeholders, ", ") + ")")

		args = append(args, it.ID, it.ClientID)
		for _, v := range it.Measurements.Values() {
			args = append(args, v)
		}
		args = append(args, it.ExtraDetails, it.ImageURL)
	}

	if _, err := r.pool.Exec(ctx, sb.String(), args...); err != nil {
		itemLogger.Error("error batch inserting items", slog.Int("count", len(items)), slog.String("error", err.Error()))
		return fmt.Errorf("error inserting items: %w", err)
	}
	return nil
}

// ListItemsByClient returns the client's items, newest first.
func (r *ItemRepository) ListItemsByClient(ctx context.Context, clientID string) ([]model.Item, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+itemSelectColumns+` FROM items WHERE client_id = $1 ORDER BY created_at DESC`, clientID)
	if err != nil {
		itemLogger.Error("error listing items", slog.String("clientId", clientID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("error listing items: %w", err)
	}
	defer rows.Close()

	items := make([]model.Item, 0)
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating item rows: %w", err)
	}
	return items, nil
}

func (r *ItemRepository) GetItemByID(ctx context.Context, id string) (*model.Item, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+itemSelectColumns+` FROM items WHERE id = $1`, id)

	it, err := scanItem(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		itemLogger.Error("error querying item", slog.String("id", id), slog.String("error", err.Error()))
		return nil, err
	}
	return &it, nil
}

// UpdateItem replaces every writable field of the item row.
func (r *ItemRepository) UpdateItem(ctx context.Context, item model.Item) (model.Item, error) {
	assignments := make([]string, 0, len(ItemMeasurementColumns)+2)
	args := make([]any, 0, len(ItemMeasurementColumns)+3)
	for _, col := range ItemMeasurementColumns {
		assignments = append(assignments, fmt.Sprintf("%s = $%d", col, len(args)+1))
		args = append(args, nil) // replaced below
	}
	for i, v := range item.Measurements.Values() {
		args[i] = v
	}
	assignments = append(assignments, fmt.Sprintf("extra_details = $%d", len(args)+1))
	args = append(args, item.ExtraDetails)
	assignments = append(assignments, fmt.Sprintf("image_url = $%d", len(args)+1))
	args = append(args, item.ImageURL)
	args = append(args, item.ID)

	query := fmt.Sprintf(`UPDATE items SET %s WHERE id = $%d RETURNING client_id, created_at`,
		strings.Join(assignments, ", "), len(args))

	row := r.pool.QueryRow(ctx, query, args...)
	err := row.Scan(&item.ClientID, &item.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Item{}, ErrNotFound
	}
	if err != nil {
		itemLogger.Error("error updating item", slog.String("id", item.ID), slog.String("error", err.Error()))
		return model.Item{}, fmt.Errorf("error updating item: %w", err)
	}
	return item, nil
}

func (r *ItemRepository) DeleteItem(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		itemLogger.Error("error deleting item", slog.String("id", id), slog.String("error", err.Error()))
		return fmt.Errorf("error deleting item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteItemsByClient removes every item owned by the client. The client
// delete cascade is a service-level policy, so this runs before the client row
// itself is removed.
func (r *ItemRepository) DeleteItemsByClient(ctx context.Context, clientID string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM items WHERE client_id = $1`, clientID); err != nil {
		itemLogger.Error("error deleting client items", slog.String("clientId", clientID), slog.String("error", err.Error()))
		return fmt.Errorf("error deleting client items: %w", err)
	}
	return nil
}

func scanItem(row pgx.Row) (model.Item, error) {
	var it model.Item
	fields := []any{&it.ID, &it.ClientID}
	fields = append(fields, measurementPtrs(&it.Measurements)...)
	fields = append(fields, &it.ExtraDetails, &it.ImageURL, &it.CreatedAt)
	if err := row.Scan(fields...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Item{}, err
		}
		return model.Item{}, fmt.Errorf("error scanning item row: %w", err)
	}
	return it, nil
}

// measurementPtrs mirrors model.Measurements.Values but yields scan targets.
// Keep the order in lockstep with ItemMeasurementColumns.
func measurementPtrs(m *model.Measurements) []any {
	return []any{
		&m.Bust, &m.Chest, &m.Shoulder, &m.ArmHole, &m.SleeveLength, &m.SleeveWidth, &m.Collar, &m.Neckline,
		&m.Waist, &m.SkirtWaist, &m.TrouserWaist, &m.Hip, &m.Seat, &m.Crotch, &m.Bottom, &m.Cuff,
		&m.ShirtLength, &m.BlouseLength, &m.SkirtLength, &m.TrouserLength, &m.ShortsLength, &m.JacketLength, &m.KaftanDressLength,
		&m.Dress, &m.Jumpsuit,
	}
}

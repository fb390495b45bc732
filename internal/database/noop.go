package database

import (
	"context"

	"github.com/sonofaryeetey/tailorflow/internal/model"
)

// The no-op gateway stands in when DATABASE_URL is absent so the server can
// still start. Reads behave as an empty store; writes fail with
// ErrUnconfigured.

type NoopClientRepository struct{}

func NewNoopClientRepo() *NoopClientRepository { return &NoopClientRepository{} }

func (*NoopClientRepository) CreateClient(ctx context.Context, client model.Client) (model.Client, error) {
	return model.Client{}, ErrUnconfigured
}

func (*NoopClientRepository) GetClientByID(ctx context.Context, id string) (*model.Client, error) {
	return nil, ErrNotFound
}

func (*NoopClientRepository) ListClients(ctx context.Context) ([]model.Client, error) {
	return []model.Client{}, nil
}

func (*NoopClientRepository) DeleteClient(ctx context.Context, id string) error {
	return ErrUnconfigured
}

type NoopItemRepository struct{}

func NewNoopItemRepo() *NoopItemRepository { return &NoopItemRepository{} }

func (*NoopItemRepository) InsertItems(ctx context.Context, items []model.Item) error {
	return ErrUnconfigured
}

func (*NoopItemRepository) ListItemsByClient(ctx context.Context, clientID string) ([]model.Item, error) {
	return []model.Item{}, nil
}

func (*NoopItemRepository) GetItemByID(ctx context.Context, id string) (*model.Item, error) {
	return nil, ErrNotFound
}

func (*NoopItemRepository) UpdateItem(ctx context.Context, item model.Item) (model.Item, error) {
	return model.Item{}, ErrUnconfigured
}

func (*NoopItemRepository) DeleteItem(ctx context.Context, id string) error {
	return ErrUnconfigured
}

func (*NoopItemRepository) DeleteItemsByClient(ctx context.Context, clientID string) error {
	return ErrUnconfigured
}

package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sonofaryeetey/tailorflow/internal/dto"
	"github.com/sonofaryeetey/tailorflow/internal/model"
)

// ClientRepository is the persistence contract the client flows depend on.
// Satisfied by database.ClientRepository and the no-op fallback.
type ClientRepository interface {
	CreateClient(ctx context.Context, client model.Client) (model.Client, error)
	GetClientByID(ctx context.Context, id string) (*model.Client, error)
	ListClients(ctx context.Context) ([]model.Client, error)
	DeleteClient(ctx context.Context, id string) error
}

type ClientService struct {
	store ClientRepository
	items ItemRepository
}

func NewClientSvc(store ClientRepository, items ItemRepository) *ClientService {
	return &ClientService{store: store, items: items}
}

func (c *ClientService) ListClients(ctx context.Context) ([]dto.ClientDto, error) {
	clients, err := c.store.ListClients(ctx)
	if err != nil {
		return nil, err
	}
	dtos := make([]dto.ClientDto, 0, len(clients))
	for _, client := range clients {
		dtos = append(dtos, dto.NewClientDto(client))
	}
	return dtos, nil
}

func (c *ClientService) GetClient(ctx context.Context, id string) (dto.ClientDto, error) {
	client, err := c.store.GetClientByID(ctx, id)
	if err != nil {
		return dto.ClientDto{}, err
	}
	return dto.NewClientDto(*client), nil
}

func (c *ClientService) CreateClient(ctx context.Context, create dto.CreateClient) (dto.ClientDto, error) {
	client := model.NewClient(create.FullName, create.Phone, create.Location)
	created, err := c.store.CreateClient(ctx, *client)
	if err != nil {
		return dto.ClientDto{}, err
	}
	return dto.NewClientDto(created), nil
}

// DeleteClient removes the client and all of their items. The cascade is a
// policy of this service, not a database constraint: items go first so a
// failure never leaves items pointing at a missing client.
func (c *ClientService) DeleteClient(ctx context.Context, id string) error {
	if err := c.items.DeleteItemsByClient(ctx, id); err != nil {
		return fmt.Errorf("error cascading item delete: %w", err)
	}
	if err := c.store.DeleteClient(ctx, id); err != nil {
		return err
	}
	clientLogger.Info("client deleted", slog.String("id", id))
	return nil
}

package service

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/sonofaryeetey/tailorflow/internal/dto"
	"github.com/sonofaryeetey/tailorflow/internal/imaging"
	"github.com/sonofaryeetey/tailorflow/internal/model"
	"github.com/sonofaryeetey/tailorflow/internal/objectstore"
)

// ItemRepository is the persistence contract for garment orders.
type ItemRepository interface {
	InsertItems(ctx context.Context, items []model.Item) error
	ListItemsByClient(ctx context.Context, clientID string) ([]model.Item, error)
	GetItemByID(ctx context.Context, id string) (*model.Item, error)
	UpdateItem(ctx context.Context, item model.Item) (model.Item, error)
	DeleteItem(ctx context.Context, id string) error
	DeleteItemsByClient(ctx context.Context, clientID string) error
}

type ItemService struct {
	store   ItemRepository
	objects objectstore.Store
}

func NewItemSvc(store ItemRepository, objects objectstore.Store) *ItemService {
	return &ItemService{store: store, objects: objects}
}

func (s *ItemService) ListByClient(ctx context.Context, clientID string) ([]dto.ItemDto, error) {
	items, err := s.store.ListItemsByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}
	return dto.NewItemDtoList(items), nil
}

func (s *ItemService) GetItem(ctx context.Context, id string) (dto.ItemDto, error) {
	item, err := s.store.GetItemByID(ctx, id)
	if err != nil {
		return dto.ItemDto{}, err
	}
	return dto.NewItemDto(*item), nil
}

// UpdateItem replaces the item's fields. When a new photo is supplied it is
// uploaded first under an edit-suffixed key and the upload failure aborts the
// whole edit; without a new photo the previously stored URL is kept.
func (s *ItemService) UpdateItem(ctx context.Context, id string, fields dto.ItemFields, photo *imaging.Result) (dto.ItemDto, error) {
	existing, err := s.store.GetItemByID(ctx, id)
	if err != nil {
		return dto.ItemDto{}, err
	}

	imageURL := existing.ImageURL
	if photo != nil {
		key := editObjectKey(existing.ClientID)
		url, err := s.objects.Put(ctx, key, bytes.NewReader(photo.Data), photo.ContentType)
		if err != nil {
			itemLogger.Error("image upload failed", slog.String("key", key), slog.String("error", err.Error()))
			return dto.ItemDto{}, fmt.Errorf("error uploading image: %w", err)
		}
		imageURL = &url
	}

	updated, err := s.store.UpdateItem(ctx, model.Item{
		ID:           id,
		ClientID:     existing.ClientID,
		Measurements: fields.Measurements,
		ExtraDetails: fields.ExtraDetails,
		ImageURL:     imageURL,
		CreatedAt:    existing.CreatedAt,
	})
	if err != nil {
		return dto.ItemDto{}, err
	}
	itemLogger.Info("item updated", slog.String("id", id))
	return dto.NewItemDto(updated), nil
}

func (s *ItemService) DeleteItem(ctx context.Context, id string) error {
	return s.store.DeleteItem(ctx, id)
}

// Object keys follow {clientId}/{epochMillis}-{suffix} for intake uploads and
// {clientId}/{epochMillis}-edit-{suffix} for edit-time replacements; the
// random suffix avoids collisions within the same millisecond.
func newObjectKey(clientID string) string {
	return fmt.Sprintf("%s/%d-%s", clientID, time.Now().UnixMilli(), randomSuffix())
}

func editObjectKey(clientID string) string {
	return fmt.Sprintf("%s/%d-edit-%s", clientID, time.Now().UnixMilli(), randomSuffix())
}

const suffixAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

func randomSuffix() string {
	b := make([]byte, 6)
	for i := range b {
		b[i] = suffixAlphabet[rand.Intn(len(suffixAlphabet))]
	}
	return string(b)
}

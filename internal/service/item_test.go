package service

import (
	"context"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sonofaryeetey/tailorflow/internal/database"
	"github.com/sonofaryeetey/tailorflow/internal/dto"
	"github.com/sonofaryeetey/tailorflow/internal/imaging"
	"github.com/sonofaryeetey/tailorflow/internal/model"
	"github.com/sonofaryeetey/tailorflow/internal/objectstore"
)

func seedItem(t *testing.T, items *fakeItemRepo, clientID string, imageURL *string) model.Item {
	t.Helper()
	item := *model.NewItem(clientID, model.Measurements{Chest: str("40")}, str("two buttons"), imageURL)
	require.NoError(t, items.InsertItems(context.Background(), []model.Item{item}))
	return item
}

func TestItemServiceUpdateFields(t *testing.T) {
	ctx := context.Background()
	items := newFakeItemRepo()
	svc := NewItemSvc(items, objectstore.NewMemory())

	existing := seedItem(t, items, "client-1", str("https://cdn/old.jpg"))

	updated, err := svc.UpdateItem(ctx, existing.ID, dto.ItemFields{
		Measurements: model.Measurements{Chest: str("42"), Shoulder: str("18")},
		ExtraDetails: str("three buttons"),
	}, nil)
	require.NoError(t, err)
	require.Equal(t, "42", *updated.Chest)
	require.Equal(t, "18", *updated.Shoulder)
	require.Equal(t, "three buttons", *updated.ExtraDetails)
	require.Equal(t, "https://cdn/old.jpg", *updated.ImageURL, "no new photo keeps the stored URL")

	t.Run("unset fields clear", func(t *testing.T) {
		updated, err := svc.UpdateItem(ctx, existing.ID, dto.ItemFields{
			Measurements: model.Measurements{Waist: str("32")},
		}, nil)
		require.NoError(t, err)
		require.Nil(t, updated.Chest, "fields absent from the edit are cleared")
		require.Equal(t, "32", *updated.Waist)
	})
}

func TestItemServiceUpdateWithPhoto(t *testing.T) {
	ctx := context.Background()
	items := newFakeItemRepo()
	store := objectstore.NewMemory()
	svc := NewItemSvc(items, store)

	existing := seedItem(t, items, "client-1", nil)

	photo := &imaging.Result{Data: []byte("jpeg bytes"), ContentType: "image/jpeg"}
	updated, err := svc.UpdateItem(ctx, existing.ID, dto.ItemFields{
		Measurements: model.Measurements{Chest: str("41")},
	}, photo)
	require.NoError(t, err)
	require.NotNil(t, updated.ImageURL)
	require.True(t, strings.HasPrefix(*updated.ImageURL, "mem://client-1/"))

	keyPattern := regexp.MustCompile(`^client-1/\d+-edit-[0-9a-z]{6}$`)
	keys := store.Keys()
	require.Len(t, keys, 1)
	require.Regexp(t, keyPattern, keys[0], "edit uploads carry the edit marker in the key")
}

func TestItemServiceUpdatePhotoUploadFails(t *testing.T) {
	ctx := context.Background()
	items := newFakeItemRepo()
	svc := NewItemSvc(items, &flakyStore{failUntil: 1})

	existing := seedItem(t, items, "client-1", str("https://cdn/old.jpg"))

	photo := &imaging.Result{Data: []byte("jpeg bytes"), ContentType: "image/jpeg"}
	_, err := svc.UpdateItem(ctx, existing.ID, dto.ItemFields{}, photo)
	require.ErrorIs(t, err, errUploadRefused, "an edit-time upload failure aborts the edit")

	kept, err := svc.GetItem(ctx, existing.ID)
	require.NoError(t, err)
	require.Equal(t, "two buttons", *kept.ExtraDetails, "the item is unchanged after the failed edit")
	require.Equal(t, "https://cdn/old.jpg", *kept.ImageURL)
}

func TestItemServiceDelete(t *testing.T) {
	ctx := context.Background()
	items := newFakeItemRepo()
	svc := NewItemSvc(items, objectstore.NewMemory())

	existing := seedItem(t, items, "client-1", nil)

	require.NoError(t, svc.DeleteItem(ctx, existing.ID))
	_, err := svc.GetItem(ctx, existing.ID)
	require.ErrorIs(t, err, database.ErrNotFound)
	require.ErrorIs(t, svc.DeleteItem(ctx, existing.ID), database.ErrNotFound)
}

package service

import (
	"context"
	"errors"
	"io"
	"sort"
	"sync"

	"github.com/sonofaryeetey/tailorflow/internal/database"
	"github.com/sonofaryeetey/tailorflow/internal/model"
)

// fakeClientRepo is an in-memory ClientRepository for the service tests.
type fakeClientRepo struct {
	mu          sync.Mutex
	clients     map[string]model.Client
	createErr   error
	createCalls int
	onCreate    func()
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{clients: make(map[string]model.Client)}
}

func (f *fakeClientRepo) CreateClient(ctx context.Context, client model.Client) (model.Client, error) {
	if f.onCreate != nil {
		f.onCreate()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createCalls++
	if f.createErr != nil {
		return model.Client{}, f.createErr
	}
	f.clients[client.ID] = client
	return client, nil
}

func (f *fakeClientRepo) GetClientByID(ctx context.Context, id string) (*model.Client, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	client, ok := f.clients[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	return &client, nil
}

func (f *fakeClientRepo) ListClients(ctx context.Context) ([]model.Client, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]model.Client, 0, len(f.clients))
	for _, c := range f.clients {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FullName < out[j].FullName })
	return out, nil
}

func (f *fakeClientRepo) DeleteClient(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.clients[id]; !ok {
		return database.ErrNotFound
	}
	delete(f.clients, id)
	return nil
}

// fakeItemRepo records every batch insert so tests can assert how many
// statements a save produced.
type fakeItemRepo struct {
	mu        sync.Mutex
	items     map[string]model.Item
	batches   [][]model.Item
	insertErr error
	updateErr error
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{items: make(map[string]model.Item)}
}

func (f *fakeItemRepo) InsertItems(ctx context.Context, items []model.Item) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.insertErr != nil {
		return f.insertErr
	}
	f.batches = append(f.batches, items)
	for _, it := range items {
		f.items[it.ID] = it
	}
	return nil
}

func (f *fakeItemRepo) ListItemsByClient(ctx context.Context, clientID string) ([]model.Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]model.Item, 0)
	for _, it := range f.items {
		if it.ClientID == clientID {
			out = append(out, it)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeItemRepo) GetItemByID(ctx context.Context, id string) (*model.Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	it, ok := f.items[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	return &it, nil
}

func (f *fakeItemRepo) UpdateItem(ctx context.Context, item model.Item) (model.Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateErr != nil {
		return model.Item{}, f.updateErr
	}
	existing, ok := f.items[item.ID]
	if !ok {
		return model.Item{}, database.ErrNotFound
	}
	item.ClientID = existing.ClientID
	item.CreatedAt = existing.CreatedAt
	f.items[item.ID] = item
	return item, nil
}

func (f *fakeItemRepo) DeleteItem(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[id]; !ok {
		return database.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

func (f *fakeItemRepo) DeleteItemsByClient(ctx context.Context, clientID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, it := range f.items {
		if it.ClientID == clientID {
			delete(f.items, id)
		}
	}
	return nil
}

var errUploadRefused = errors.New("upload refused")

// flakyStore fails the first failUntil uploads and stores the rest.
type flakyStore struct {
	mu        sync.Mutex
	calls     int
	failUntil int
	keys      []string
}

func (s *flakyStore) Put(ctx context.Context, key string, r io.Reader, contentType string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.calls <= s.failUntil {
		return "", errUploadRefused
	}
	s.keys = append(s.keys, key)
	return "mem://" + key, nil
}

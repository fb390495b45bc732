package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/sonofaryeetey/tailorflow/internal/controller"
	"github.com/sonofaryeetey/tailorflow/internal/database"
	"github.com/sonofaryeetey/tailorflow/internal/model"
	"github.com/sonofaryeetey/tailorflow/internal/objectstore"
	"github.com/sonofaryeetey/tailorflow/internal/service"
)

type memClientRepo struct {
	mu      sync.Mutex
	clients map[string]model.Client
}

func (m *memClientRepo) CreateClient(ctx context.Context, client model.Client) (model.Client, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clients[client.ID] = client
	return client, nil
}

func (m *memClientRepo) GetClientByID(ctx context.Context, id string) (*model.Client, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	client, ok := m.clients[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	return &client, nil
}

func (m *memClientRepo) ListClients(ctx context.Context) ([]model.Client, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.Client, 0, len(m.clients))
	for _, c := range m.clients {
		out = append(out, c)
	}
	return out, nil
}

func (m *memClientRepo) DeleteClient(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.clients[id]; !ok {
		return database.ErrNotFound
	}
	delete(m.clients, id)
	return nil
}

type memItemRepo struct {
	mu    sync.Mutex
	items map[string]model.Item
}

func (m *memItemRepo) InsertItems(ctx context.Context, items []model.Item) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, it := range items {
		m.items[it.ID] = it
	}
	return nil
}

func (m *memItemRepo) ListItemsByClient(ctx context.Context, clientID string) ([]model.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.Item, 0)
	for _, it := range m.items {
		if it.ClientID == clientID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (m *memItemRepo) GetItemByID(ctx context.Context, id string) (*model.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	it, ok := m.items[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	return &it, nil
}

func (m *memItemRepo) UpdateItem(ctx context.Context, item model.Item) (model.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[item.ID]; !ok {
		return model.Item{}, database.ErrNotFound
	}
	m.items[item.ID] = item
	return item, nil
}

func (m *memItemRepo) DeleteItem(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[id]; !ok {
		return database.ErrNotFound
	}
	delete(m.items, id)
	return nil
}

func (m *memItemRepo) DeleteItemsByClient(ctx context.Context, clientID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, it := range m.items {
		if it.ClientID == clientID {
			delete(m.items, id)
		}
	}
	return nil
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	clientRepo := &memClientRepo{clients: make(map[string]model.Client)}
	itemRepo := &memItemRepo{items: make(map[string]model.Item)}
	objects := objectstore.NewMemory()

	clientSvc := service.NewClientSvc(clientRepo, itemRepo)
	itemSvc := service.NewItemSvc(itemRepo, objects)
	intakeSvc := service.NewIntakeSvc(clientRepo, itemRepo, objects, time.Hour)

	return InitRoutes(Controllers{
		Client: controller.NewClientController(clientSvc, itemSvc),
		Item:   controller.NewItemController(itemSvc),
		Intake: controller.NewIntakeController(intakeSvc),
	})
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var decoded map[string]any
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))
	}
	return w, decoded
}

func TestHealthz(t *testing.T) {
	r := newTestRouter(t)
	w, body := doJSON(t, r, http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "ok", body["status"])
}

func TestMetricsEndpoint(t *testing.T) {
	r := newTestRouter(t)

	// at least one counted request so the counter family is exported
	w0, _ := doJSON(t, r, http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, w0.Code)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "tailorflow_http_requests_total")
}

func TestCreateClientValidation(t *testing.T) {
	r := newTestRouter(t)

	t.Run("missing fields", func(t *testing.T) {
		w, body := doJSON(t, r, http.MethodPost, "/clients", `{}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Len(t, body["errors"], 3)
	})

	t.Run("blank full name", func(t *testing.T) {
		w, body := doJSON(t, r, http.MethodPost, "/clients",
			`{"full_name":"   ","phone":"024","location":"Osu"}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
		errs := body["errors"].([]any)
		require.Len(t, errs, 1)
		msg := errs[0].(map[string]any)["message"].(string)
		require.Equal(t, "This field may not be blank", msg)
	})

	t.Run("valid payload", func(t *testing.T) {
		w, body := doJSON(t, r, http.MethodPost, "/clients",
			`{"full_name":"Jane Doe","phone":"0241234567","location":"Osu"}`)
		require.Equal(t, http.StatusCreated, w.Code)
		require.NotEmpty(t, body["id"])
		require.Equal(t, "Jane Doe", body["full_name"])
	})
}

func TestIntakeBadClientID(t *testing.T) {
	r := newTestRouter(t)
	w, _ := doJSON(t, r, http.MethodPost, "/intake", `{"client_id":"not-a-uuid"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestIntakeUnknownSession(t *testing.T) {
	r := newTestRouter(t)
	w, _ := doJSON(t, r, http.MethodGet, "/intake/ghost", "")
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestIntakeFlowOverHTTP(t *testing.T) {
	r := newTestRouter(t)

	w, session := doJSON(t, r, http.MethodPost, "/intake", "")
	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, "collecting_client", session["state"])
	id := session["id"].(string)

	w, _ = doJSON(t, r, http.MethodPut, "/intake/"+id+"/client",
		`{"full_name":"  ","phone":"024","location":"Osu"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w, session = doJSON(t, r, http.MethodPut, "/intake/"+id+"/client",
		`{"full_name":"Jane Doe","phone":"0241234567","location":"Osu"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "collecting_items", session["state"])

	w, session = doJSON(t, r, http.MethodPut, "/intake/"+id+"/draft",
		`{"chest":"40","sleeve_length":"24","extra_details":"gold buttons"}`)
	require.Equal(t, http.StatusOK, w.Code)
	draft := session["draft"].(map[string]any)
	require.Equal(t, "40", draft["chest"])

	w, session = doJSON(t, r, http.MethodPost, "/intake/"+id+"/items", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, session["items"], 1)

	w, session = doJSON(t, r, http.MethodPost, "/intake/"+id+"/review", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "reviewing", session["state"])

	// out-of-order transition while reviewing
	w, _ = doJSON(t, r, http.MethodPut, "/intake/"+id+"/draft", `{"chest":"41"}`)
	require.Equal(t, http.StatusConflict, w.Code)

	w, result := doJSON(t, r, http.MethodPost, "/intake/"+id+"/save", "")
	require.Equal(t, http.StatusOK, w.Code)
	clientID := result["client_id"].(string)
	require.NotEmpty(t, clientID)
	require.EqualValues(t, 1, result["item_count"])

	w, _ = doJSON(t, r, http.MethodGet, "/intake/"+id, "")
	require.Equal(t, http.StatusNotFound, w.Code, "the session is gone after saving")

	w, list := doJSON(t, r, http.MethodGet, "/clients", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.EqualValues(t, 1, list["count"])

	w, detail := doJSON(t, r, http.MethodGet, "/clients/"+clientID, "")
	require.Equal(t, http.StatusOK, w.Code)
	client := detail["client"].(map[string]any)
	require.Equal(t, "Jane Doe", client["full_name"])
	items := detail["items"].([]any)
	require.Len(t, items, 1)
	item := items[0].(map[string]any)
	require.Equal(t, "40", item["chest"])
	require.Equal(t, "gold buttons", item["extra_details"])

	w, deleted := doJSON(t, r, http.MethodDelete, "/clients/"+clientID, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, clientID, deleted["id"])

	w, _ = doJSON(t, r, http.MethodGet, "/clients/"+clientID, "")
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestAbandonIntakeOverHTTP(t *testing.T) {
	r := newTestRouter(t)

	w, session := doJSON(t, r, http.MethodPost, "/intake", "")
	require.Equal(t, http.StatusCreated, w.Code)
	id := session["id"].(string)

	w, _ = doJSON(t, r, http.MethodDelete, "/intake/"+id, "")
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = doJSON(t, r, http.MethodDelete, "/intake/"+id, "")
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestUnknownItem(t *testing.T) {
	r := newTestRouter(t)

	w, _ := doJSON(t, r, http.MethodGet, "/items/ghost", "")
	require.Equal(t, http.StatusNotFound, w.Code)

	w, _ = doJSON(t, r, http.MethodDelete, "/items/ghost", "")
	require.Equal(t, http.StatusNotFound, w.Code)
}

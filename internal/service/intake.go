package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sonofaryeetey/tailorflow/internal/dto"
	"github.com/sonofaryeetey/tailorflow/internal/imaging"
	"github.com/sonofaryeetey/tailorflow/internal/model"
	"github.com/sonofaryeetey/tailorflow/internal/objectstore"
)

// State is the wizard position of an intake session.
type State int

const (
	StateCollectingClient State = iota + 1
	StateCollectingItems
	StateReviewing
)

func (s State) String() string {
	switch s {
	case StateCollectingClient:
		return "collecting_client"
	case StateCollectingItems:
		return "collecting_items"
	case StateReviewing:
		return "reviewing"
	default:
		return "unknown"
	}
}

var (
	ErrSessionNotFound   = errors.New("intake session not found")
	ErrInvalidTransition = errors.New("operation not allowed in current state")
	ErrSaveInFlight      = errors.New("save already in progress")
)

// itemDraft pairs the form fields with the processed (not yet uploaded) photo.
type itemDraft struct {
	fields dto.ItemFields
	image  *imaging.Result
}

type intakeSession struct {
	mu      sync.Mutex
	id      string
	state   State
	client  dto.ClientDraft
	items   []itemDraft
	draft   itemDraft
	saving  bool
	touched time.Time
}

// IntakeService owns every in-progress wizard session. Session state lives
// only in memory: it is discarded on abandon, on expiry or when the process
// exits, exactly like the unsaved form state it replaces.
type IntakeService struct {
	clients ClientRepository
	items   ItemRepository
	objects objectstore.Store
	ttl     time.Duration

	mu       sync.Mutex
	sessions map[string]*intakeSession
}

func NewIntakeSvc(clients ClientRepository, items ItemRepository, objects objectstore.Store, ttl time.Duration) *IntakeService {
	return &IntakeService{
		clients:  clients,
		items:    items,
		objects:  objects,
		ttl:      ttl,
		sessions: make(map[string]*intakeSession),
	}
}

// Start opens a session. With a client id the client step is skipped: the
// client is loaded from the store and the wizard begins at the items step.
func (s *IntakeService) Start(ctx context.Context, clientID string) (dto.IntakeSessionDto, error) {
	sess := &intakeSession{
		id:      uuid.New().String(),
		state:   StateCollectingClient,
		touched: time.Now(),
	}

	if clientID != "" {
		client, err := s.clients.GetClientByID(ctx, clientID)
		if err != nil {
			return dto.IntakeSessionDto{}, err
		}
		sess.client = dto.ClientDraft{
			ID:       client.ID,
			FullName: client.FullName,
			Phone:    client.Phone,
			Location: client.Location,
		}
		sess.state = StateCollectingItems
	}

	s.mu.Lock()
	s.sessions[sess.id] = sess
	s.mu.Unlock()

	intakeLogger.Info("session started", slog.String("id", sess.id), slog.String("state", sess.state.String()))
	return snapshot(sess), nil
}

func (s *IntakeService) Get(id string) (dto.IntakeSessionDto, error) {
	sess, err := s.session(id)
	if err != nil {
		return dto.IntakeSessionDto{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return snapshot(sess), nil
}

// SubmitClient stores the validated client fields and moves to the items step.
// Nothing is persisted yet.
func (s *IntakeService) SubmitClient(id string, client dto.CreateClient) (dto.IntakeSessionDto, error) {
	sess, err := s.session(id)
	if err != nil {
		return dto.IntakeSessionDto{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.state != StateCollectingClient {
		return dto.IntakeSessionDto{}, fmt.Errorf("%w: submit client in %s", ErrInvalidTransition, sess.state)
	}

	sess.client = dto.ClientDraft{
		FullName: client.FullName,
		Phone:    client.Phone,
		Location: client.Location,
	}
	sess.state = StateCollectingItems
	sess.touched = time.Now()
	return snapshot(sess), nil
}

// UpdateDraft replaces the in-progress item fields. The attached image, if
// any, is kept: the form sends fields and photo through separate calls.
func (s *IntakeService) UpdateDraft(id string, fields dto.ItemFields) (dto.IntakeSessionDto, error) {
	sess, err := s.session(id)
	if err != nil {
		return dto.IntakeSessionDto{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.state != StateCollectingItems {
		return dto.IntakeSessionDto{}, fmt.Errorf("%w: update draft in %s", ErrInvalidTransition, sess.state)
	}

	sess.draft.fields = fields
	sess.touched = time.Now()
	return snapshot(sess), nil
}

// AttachImage runs the raw photo through the compression pipeline and holds
// the result on the current draft. A pipeline failure leaves whatever image
// was attached before untouched and never aborts the wizard.
func (s *IntakeService) AttachImage(id string, raw []byte) (dto.IntakeSessionDto, error) {
	sess, err := s.session(id)
	if err != nil {
		return dto.IntakeSessionDto{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.state != StateCollectingItems {
		return dto.IntakeSessionDto{}, fmt.Errorf("%w: attach image in %s", ErrInvalidTransition, sess.state)
	}

	result, err := imaging.Process(raw)
	if err != nil {
		intakeLogger.Error("image compression failed", slog.String("session", id), slog.String("error", err.Error()))
		return dto.IntakeSessionDto{}, err
	}

	sess.draft.image = result
	sess.touched = time.Now()
	return snapshot(sess), nil
}

// AddItem appends the current draft to the accumulated list and resets the
// form to a blank draft ("add & another").
func (s *IntakeService) AddItem(id string) (dto.IntakeSessionDto, error) {
	sess, err := s.session(id)
	if err != nil {
		return dto.IntakeSessionDto{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.state != StateCollectingItems {
		return dto.IntakeSessionDto{}, fmt.Errorf("%w: add item in %s", ErrInvalidTransition, sess.state)
	}

	sess.items = append(sess.items, sess.draft)
	sess.draft = itemDraft{}
	sess.touched = time.Now()
	return snapshot(sess), nil
}

// Review moves to the review step. A draft with any non-empty field or an
// attached image is appended first so unsaved input is not silently lost; a
// fully empty draft appends nothing.
func (s *IntakeService) Review(id string) (dto.IntakeSessionDto, error) {
	sess, err := s.session(id)
	if err != nil {
		return dto.IntakeSessionDto{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.state != StateCollectingItems {
		return dto.IntakeSessionDto{}, fmt.Errorf("%w: review in %s", ErrInvalidTransition, sess.state)
	}

	if sess.draft.fields.HasData() || sess.draft.image != nil {
		sess.items = append(sess.items, sess.draft)
	}
	sess.draft = itemDraft{}
	sess.state = StateReviewing
	sess.touched = time.Now()
	return snapshot(sess), nil
}

func (s *IntakeService) Back(id string) (dto.IntakeSessionDto, error) {
	sess, err := s.session(id)
	if err != nil {
		return dto.IntakeSessionDto{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.state != StateReviewing {
		return dto.IntakeSessionDto{}, fmt.Errorf("%w: back in %s", ErrInvalidTransition, sess.state)
	}

	sess.state = StateCollectingItems
	sess.touched = time.Now()
	return snapshot(sess), nil
}

// Save is the terminal transition. It runs three sequential steps:
//
//  1. insert the client record unless the session already has a client id —
//     any error here aborts the whole save;
//  2. upload each draft's photo under {clientId}/{epochMillis}-{suffix} —
//     an upload failure degrades that one item to a null image URL;
//  3. batch-insert every item in one statement — an error here is fatal and
//     leaves the created client and uploaded photos in place (documented
//     partial-failure semantics, no compensation).
//
// Only one Save may run per session; concurrent calls get ErrSaveInFlight.
// On failure the session stays in Reviewing so the user can retry.
func (s *IntakeService) Save(ctx context.Context, id string) (dto.SaveResult, error) {
	sess, err := s.session(id)
	if err != nil {
		return dto.SaveResult{}, err
	}

	sess.mu.Lock()
	if sess.state != StateReviewing {
		sess.mu.Unlock()
		return dto.SaveResult{}, fmt.Errorf("%w: save in %s", ErrInvalidTransition, sess.state)
	}
	if sess.saving {
		sess.mu.Unlock()
		return dto.SaveResult{}, ErrSaveInFlight
	}
	sess.saving = true
	client := sess.client
	drafts := make([]itemDraft, len(sess.items))
	copy(drafts, sess.items)
	sess.mu.Unlock()

	result, err := s.persist(ctx, client, drafts)

	sess.mu.Lock()
	sess.saving = false
	sess.touched = time.Now()
	sess.mu.Unlock()

	if err != nil {
		return dto.SaveResult{}, err
	}

	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()

	intakeLogger.Info("session saved",
		slog.String("session", id),
		slog.String("clientId", result.ClientID),
		slog.Int("items", result.ItemCount),
		slog.Int("images", result.ImageCount))
	return result, nil
}

func (s *IntakeService) persist(ctx context.Context, client dto.ClientDraft, drafts []itemDraft) (dto.SaveResult, error) {
	clientID := client.ID
	if clientID == "" {
		created, err := s.clients.CreateClient(ctx, *model.NewClient(client.FullName, client.Phone, client.Location))
		if err != nil {
			intakeLogger.Error("client insert failed", slog.String("error", err.Error()))
			return dto.SaveResult{}, fmt.Errorf("error creating client: %w", err)
		}
		clientID = created.ID
	}

	uploaded := 0
	items := make([]model.Item, 0, len(drafts))
	for _, d := range drafts {
		var imageURL *string
		if d.image != nil {
			key := newObjectKey(clientID)
			url, err := s.objects.Put(ctx, key, bytes.NewReader(d.image.Data), d.image.ContentType)
			if err != nil {
				// A failed upload degrades this item to "no image"; the save
				// keeps going for the rest of the batch.
				intakeLogger.Error("image upload failed", slog.String("key", key), slog.String("error", err.Error()))
			} else {
				imageURL = &url
				uploaded++
			}
		}
		items = append(items, *model.NewItem(clientID, d.fields.Measurements, normalizeNotes(d.fields.ExtraDetails), imageURL))
	}

	if err := s.items.InsertItems(ctx, items); err != nil {
		intakeLogger.Error("item batch insert failed", slog.String("clientId", clientID), slog.String("error", err.Error()))
		return dto.SaveResult{}, fmt.Errorf("error inserting items: %w", err)
	}

	return dto.SaveResult{ClientID: clientID, ItemCount: len(items), ImageCount: uploaded}, nil
}

// Abandon discards the session and everything it accumulated.
func (s *IntakeService) Abandon(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(s.sessions, id)
	return nil
}

// Sweep drops sessions idle for longer than the TTL and reports how many were
// removed. StartSweeper runs it periodically.
func (s *IntakeService) Sweep(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, sess := range s.sessions {
		sess.mu.Lock()
		expired := s.ttl > 0 && now.Sub(sess.touched) > s.ttl && !sess.saving
		sess.mu.Unlock()
		if expired {
			delete(s.sessions, id)
			removed++
		}
	}
	if removed > 0 {
		intakeLogger.Info("expired intake sessions removed", slog.Int("count", removed))
	}
	return removed
}

func (s *IntakeService) StartSweeper(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				s.Sweep(now)
			}
		}
	}()
}

func (s *IntakeService) session(id string) (*intakeSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// snapshot renders the session for the API. Callers must hold the session
// mutex (Start is the exception: its session is not shared yet).
func snapshot(sess *intakeSession) dto.IntakeSessionDto {
	out := dto.IntakeSessionDto{
		ID:    sess.id,
		State: sess.state.String(),
		Items: make([]dto.ItemDraftDto, 0, len(sess.items)),
	}
	if sess.client.FullName != "" || sess.client.ID != "" {
		client := sess.client
		out.Client = &client
	}
	for _, d := range sess.items {
		out.Items = append(out.Items, draftDto(d))
	}
	if sess.state == StateCollectingItems {
		current := draftDto(sess.draft)
		out.Draft = &current
	}
	return out
}

func draftDto(d itemDraft) dto.ItemDraftDto {
	out := dto.ItemDraftDto{ItemFields: d.fields, HasImage: d.image != nil}
	if d.image != nil {
		out.ImagePreview = d.image.PreviewDataURL
	}
	return out
}

func normalizeNotes(notes *string) *string {
	if notes == nil || strings.TrimSpace(*notes) == "" {
		return nil
	}
	return notes
}

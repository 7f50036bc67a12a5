package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"lumen/internal/models/db_models"
	"lumen/internal/repositories"
	"lumen/pkg/gateway"
)

// In-memory doubles for the repository and collaborator interfaces. They
// mirror the conditional-update semantics of the real gorm implementations
// so the services' invariants can be exercised without a database.

type fakeAccountStore struct {
	mu       sync.Mutex
	accounts map[uuid.UUID]*db_models.Account
}

func newFakeAccountStore() *fakeAccountStore {
	return &fakeAccountStore{accounts: make(map[uuid.UUID]*db_models.Account)}
}

func (f *fakeAccountStore) seed(name string, balance int64) uuid.UUID {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := uuid.New()
	f.accounts[id] = &db_models.Account{
		BaseModel:     db_models.BaseModel{ID: id},
		Name:          name,
		Email:         name + "@example.com",
		CreditBalance: balance,
	}
	return id
}

func (f *fakeAccountStore) balance(id uuid.UUID) int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.accounts[id].CreditBalance
}

func (f *fakeAccountStore) Insert(ctx context.Context, account *db_models.Account) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	stored := *account
	f.accounts[account.ID] = &stored
	return nil
}

func (f *fakeAccountStore) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.accounts {
		if a.Email == email {
			copy := *a
			return &copy, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountStore) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.accounts[id]
	if !ok {
		return nil, nil
	}
	copy := *a
	return &copy, nil
}

func (f *fakeAccountStore) AddCredits(ctx context.Context, id uuid.UUID, delta int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.accounts[id]
	if !ok {
		return fmt.Errorf("account %s not found", id)
	}
	a.CreditBalance += delta
	return nil
}

func (f *fakeAccountStore) DebitCredits(ctx context.Context, id uuid.UUID, cost int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.accounts[id]
	if !ok || a.CreditBalance < cost {
		return false, nil
	}
	a.CreditBalance -= cost
	return true, nil
}

type fakeLedger struct {
	mu       sync.Mutex
	txns     map[uuid.UUID]*db_models.Transaction
	accounts *fakeAccountStore
}

func newFakeLedger(accounts *fakeAccountStore) *fakeLedger {
	return &fakeLedger{
		txns:     make(map[uuid.UUID]*db_models.Transaction),
		accounts: accounts,
	}
}

func (f *fakeLedger) get(id uuid.UUID) db_models.Transaction {
	f.mu.Lock()
	defer f.mu.Unlock()
	return *f.txns[id]
}

func (f *fakeLedger) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.txns)
}

func (f *fakeLedger) Insert(ctx context.Context, txn *db_models.Transaction) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if txn.ID == uuid.Nil {
		txn.ID = uuid.New()
	}
	stored := *txn
	f.txns[txn.ID] = &stored
	return nil
}

func (f *fakeLedger) FindBySessionID(ctx context.Context, sessionID string) (*db_models.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, t := range f.txns {
		if t.ProviderSessionID == sessionID {
			copy := *t
			return &copy, nil
		}
	}
	return nil, nil
}

func (f *fakeLedger) AttachSession(ctx context.Context, id uuid.UUID, provider, sessionID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.txns[id]
	if !ok {
		return fmt.Errorf("transaction %s not found", id)
	}
	t.Provider = provider
	t.ProviderSessionID = sessionID
	return nil
}

func (f *fakeLedger) MarkFailed(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if t, ok := f.txns[id]; ok {
		t.Status = db_models.TxnStatusFailed
	}
	return nil
}

func (f *fakeLedger) Settle(ctx context.Context, txn *db_models.Transaction) (bool, error) {
	f.mu.Lock()
	t, ok := f.txns[txn.ID]
	if !ok || t.Status != db_models.TxnStatusPending {
		f.mu.Unlock()
		return false, nil
	}
	t.Status = db_models.TxnStatusSettled
	f.mu.Unlock()
	return true, f.accounts.AddCredits(ctx, txn.AccountID, txn.Credits)
}

func (f *fakeLedger) MarkAbandoned(ctx context.Context, id uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.txns[id]
	if !ok || t.Status != db_models.TxnStatusPending {
		return false, nil
	}
	t.Status = db_models.TxnStatusAbandoned
	return true, nil
}

func (f *fakeLedger) ListExpiredPending(ctx context.Context, now int64, limit int) ([]db_models.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []db_models.Transaction
	for _, t := range f.txns {
		if t.Status == db_models.TxnStatusPending && t.ExpiresAt < now {
			out = append(out, *t)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

type fakeChatStore struct {
	mu       sync.Mutex
	chats    map[uuid.UUID]*db_models.Chat
	messages []db_models.Message
}

func newFakeChatStore() *fakeChatStore {
	return &fakeChatStore{chats: make(map[uuid.UUID]*db_models.Chat)}
}

func (f *fakeChatStore) messageCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.messages)
}

func (f *fakeChatStore) Insert(ctx context.Context, chat *db_models.Chat) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if chat.ID == uuid.Nil {
		chat.ID = uuid.New()
	}
	stored := *chat
	f.chats[chat.ID] = &stored
	return nil
}

func (f *fakeChatStore) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.Chat, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []db_models.Chat
	for _, c := range f.chats {
		if c.AccountID == accountID {
			chat := *c
			for _, m := range f.messages {
				if m.ChatID == c.ID {
					chat.Messages = append(chat.Messages, m)
				}
			}
			out = append(out, chat)
		}
	}
	return out, nil
}

func (f *fakeChatStore) FindByIDForAccount(ctx context.Context, chatID, accountID uuid.UUID) (*db_models.Chat, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.chats[chatID]
	if !ok || c.AccountID != accountID {
		return nil, nil
	}
	copy := *c
	return &copy, nil
}

func (f *fakeChatStore) Delete(ctx context.Context, chatID, accountID uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.chats[chatID]
	if !ok || c.AccountID != accountID {
		return false, nil
	}
	delete(f.chats, chatID)
	return true, nil
}

func (f *fakeChatStore) AppendMessage(ctx context.Context, message *db_models.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if message.ID == uuid.Nil {
		message.ID = uuid.New()
	}
	f.messages = append(f.messages, *message)
	return nil
}

func (f *fakeChatStore) PublishedImages(ctx context.Context) ([]repositories.PublishedImage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []repositories.PublishedImage
	for _, m := range f.messages {
		if m.IsImage && m.IsPublished {
			author := ""
			if c, ok := f.chats[m.ChatID]; ok {
				author = c.AuthorName
			}
			out = append(out, repositories.PublishedImage{
				ImageURL:   m.Content,
				AuthorName: author,
				CreatedAt:  m.CreatedAt,
			})
		}
	}
	return out, nil
}

type fakeWebhookBody struct {
	Type      string `json:"type"`
	SessionID string `json:"session_id"`
}

type fakeGateway struct {
	mu        sync.Mutex
	sessions  map[string]gateway.SessionStatus
	nextID    int
	createErr error
	created   []gateway.CreateSessionParams
	validSig  string
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		sessions: make(map[string]gateway.SessionStatus),
		validSig: "t=123,v1=valid",
	}
}

func (f *fakeGateway) markPaid(sessionID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sessions[sessionID] = gateway.StatusPaid
}

func (f *fakeGateway) Provider() string { return "fake" }

func (f *fakeGateway) CreateSession(ctx context.Context, params gateway.CreateSessionParams) (*gateway.CheckoutSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.nextID++
	id := fmt.Sprintf("cs_test_%d", f.nextID)
	f.sessions[id] = gateway.StatusUnpaid
	f.created = append(f.created, params)
	return &gateway.CheckoutSession{ID: id, URL: "https://pay.example/" + id}, nil
}

func (f *fakeGateway) FetchSessionStatus(ctx context.Context, sessionID string) (gateway.SessionStatus, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	status, ok := f.sessions[sessionID]
	if !ok {
		return gateway.StatusUnpaid, fmt.Errorf("unknown session %s", sessionID)
	}
	return status, nil
}

func (f *fakeGateway) VerifyWebhook(payload []byte, signature string) (*gateway.WebhookEvent, error) {
	if signature != f.validSig {
		return nil, gateway.ErrInvalidSignature
	}
	var body fakeWebhookBody
	if err := json.Unmarshal(payload, &body); err != nil {
		return nil, err
	}
	evt := &gateway.WebhookEvent{Type: body.Type}
	if body.Type == "checkout.session.completed" {
		evt.SessionID = body.SessionID
	}
	return evt, nil
}

type fakeTextClient struct {
	mu    sync.Mutex
	reply string
	err   error
	calls int
}

func (f *fakeTextClient) GenerateReply(ctx context.Context, prompt string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func (f *fakeTextClient) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type fakeImageClient struct {
	mu    sync.Mutex
	data  []byte
	err   error
	calls int
}

func (f *fakeImageClient) GenerateImage(ctx context.Context, prompt string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.data, nil
}

func (f *fakeImageClient) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

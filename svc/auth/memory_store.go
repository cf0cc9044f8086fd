package auth

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// MemoryStore is an in-process CredentialStore. IDs are ObjectID hex
// strings so they look the same as those from MongoStore.
type MemoryStore struct {
	mu      sync.RWMutex
	byID    map[string]memoryRecord
	byEmail map[string]string
}

type memoryRecord struct {
	principal Principal
	hash      string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byID:    make(map[string]memoryRecord),
		byEmail: make(map[string]string),
	}
}

func (m *MemoryStore) Create(_ context.Context, p *Principal, hash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.byEmail[p.Email]; ok {
		return ErrEmailAlreadyExists
	}
	p.ID = bson.NewObjectID().Hex()
	m.byID[p.ID] = memoryRecord{principal: clonePrincipal(p), hash: hash}
	m.byEmail[p.Email] = p.ID
	return nil
}

func (m *MemoryStore) GetByID(_ context.Context, id string) (*Principal, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.byID[id]
	if !ok {
		return nil, ErrPrincipalNotFound
	}
	p := clonePrincipal(&rec.principal)
	return &p, nil
}

func (m *MemoryStore) GetCredentialsByEmail(_ context.Context, email string) (*Principal, string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.byEmail[email]
	if !ok {
		return nil, "", ErrPrincipalNotFound
	}
	rec := m.byID[id]
	p := clonePrincipal(&rec.principal)
	return &p, rec.hash, nil
}

func clonePrincipal(p *Principal) Principal {
	c := *p
	if p.Vehicle != nil {
		v := *p.Vehicle
		c.Vehicle = &v
	}
	if p.SocketID != nil {
		id := *p.SocketID
		c.SocketID = &id
	}
	return c
}

// MemoryRevocationStore keeps revoked tokens in a map and drops expired
// entries on write.
type MemoryRevocationStore struct {
	mu     sync.Mutex
	tokens map[string]time.Time
	now    func() time.Time
}

func NewMemoryRevocationStore() *MemoryRevocationStore {
	return &MemoryRevocationStore{tokens: make(map[string]time.Time), now: time.Now}
}

func (m *MemoryRevocationStore) Revoke(_ context.Context, token string, expiresAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	for t, exp := range m.tokens {
		if !exp.After(now) {
			delete(m.tokens, t)
		}
	}
	if expiresAt.After(now) {
		m.tokens[token] = expiresAt
	}
	return nil
}

func (m *MemoryRevocationStore) IsRevoked(_ context.Context, token string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	exp, ok := m.tokens[token]
	return ok && exp.After(m.now()), nil
}

// Len reports the number of stored records, expired ones included.
func (m *MemoryRevocationStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.tokens)
}

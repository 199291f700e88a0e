package client

import (
	"strconv"
	"sync"

	"github.com/tbowo/careline/internal/models"
)

// KeyValueStore is the local storage facility the client caches its session
// in. Implementations are expected to be cheap; values are small strings.
type KeyValueStore interface {
	Get(key string) (string, bool)
	Set(key string, value string)
	Delete(key string)
}

const (
	sessionTokenKey  = "careline_token"
	sessionRoleKey   = "careline_role"
	sessionFamilyKey = "careline_family_id"
)

// MemoryStore is the in-process KeyValueStore used by tests and by embedders
// that have no durable storage.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: map[string]string{}}
}

func (store *MemoryStore) Get(key string) (string, bool) {
	store.mu.RLock()
	defer store.mu.RUnlock()
	value, ok := store.values[key]
	return value, ok
}

func (store *MemoryStore) Set(key string, value string) {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.values[key] = value
}

func (store *MemoryStore) Delete(key string) {
	store.mu.Lock()
	defer store.mu.Unlock()
	delete(store.values, key)
}

// Session wraps the key-value store with the three facts the client keeps
// between activations: access token, role and family id.
type Session struct {
	store KeyValueStore
}

func NewSession(store KeyValueStore) *Session {
	return &Session{store: store}
}

func (session *Session) Token() string {
	token, _ := session.store.Get(sessionTokenKey)
	return token
}

func (session *Session) SetToken(token string) {
	session.store.Set(sessionTokenKey, token)
}

func (session *Session) Role() models.Role {
	raw, _ := session.store.Get(sessionRoleKey)
	return models.Role(raw)
}

func (session *Session) SetRole(role models.Role) {
	session.store.Set(sessionRoleKey, string(role))
}

func (session *Session) FamilyID() (uint, bool) {
	raw, ok := session.store.Get(sessionFamilyKey)
	if !ok {
		return 0, false
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func (session *Session) SetFamilyID(familyID uint) {
	session.store.Set(sessionFamilyKey, strconv.FormatUint(uint64(familyID), 10))
}

// Clear drops everything. Called on the AuthExpired path so the next
// activation lands on the unauthenticated entry point.
func (session *Session) Clear() {
	session.store.Delete(sessionTokenKey)
	session.store.Delete(sessionRoleKey)
	session.store.Delete(sessionFamilyKey)
}

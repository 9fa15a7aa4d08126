package document

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Record is a named, timestamped document held by a Store.
type Record struct {
	ID        string
	Name      string
	Data      []byte
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Summary is a lightweight Record reference for listing.
type Summary struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Store persists serialized graph documents by name.
type Store interface {
	Save(name string, data []byte) (string, error)
	Update(id, name string, data []byte) error
	Load(id string) (*Record, error)
	Delete(id string) error
	List() []Summary
}

// InMemoryStore implements Store over a mutex-guarded map, the natural
// persistence layer for a host that wants to keep several graph documents
// around without reaching outside the module for file or network I/O.
type InMemoryStore struct {
	mu      sync.RWMutex
	records map[string]*Record
}

// NewInMemoryStore returns an empty InMemoryStore.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{records: make(map[string]*Record)}
}

// Save stores data under a freshly generated ID and returns it.
func (s *InMemoryStore) Save(name string, data []byte) (string, error) {
	if name == "" {
		return "", ErrEmptyName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.New().String()
	now := time.Now()
	s.records[id] = &Record{
		ID:        id,
		Name:      name,
		Data:      append([]byte(nil), data...),
		CreatedAt: now,
		UpdatedAt: now,
	}
	return id, nil
}

// Update overwrites an existing record's name and data.
func (s *InMemoryStore) Update(id, name string, data []byte) error {
	if name == "" {
		return ErrEmptyName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[id]
	if !ok {
		return ErrDocumentNotFound
	}
	rec.Name = name
	rec.Data = append([]byte(nil), data...)
	rec.UpdatedAt = time.Now()
	return nil
}

// Load returns a copy of the record stored under id.
func (s *InMemoryStore) Load(id string) (*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[id]
	if !ok {
		return nil, ErrDocumentNotFound
	}
	cp := *rec
	cp.Data = append([]byte(nil), rec.Data...)
	return &cp, nil
}

// Delete removes a record by id.
func (s *InMemoryStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[id]; !ok {
		return ErrDocumentNotFound
	}
	delete(s.records, id)
	return nil
}

// List returns summaries of every stored record.
func (s *InMemoryStore) List() []Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Summary, 0, len(s.records))
	for _, rec := range s.records {
		out = append(out, Summary{ID: rec.ID, Name: rec.Name, CreatedAt: rec.CreatedAt, UpdatedAt: rec.UpdatedAt})
	}
	return out
}

// Package memstore реализует хранилище снимков коллекции участников в памяти процесса.
// Используется как запасной вариант по умолчанию и в тестах; данные живут до перезапуска.
package memstore

import (
	"context"
	"sync"

	"github.com/gymtrack/gymtrack/internal/models"
)

// Store держит последний сохранённый снимок коллекции.
type Store struct {
	mu      sync.Mutex
	members []models.Member
}

// New создает пустое хранилище.
func New() *Store {
	return &Store{}
}

// LoadMembers возвращает копию последнего снимка.
func (s *Store) LoadMembers(_ context.Context) ([]models.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.members == nil {
		return nil, nil
	}
	result := make([]models.Member, len(s.members))
	copy(result, s.members)
	return result, nil
}

// SaveMembers запоминает копию переданной коллекции.
func (s *Store) SaveMembers(_ context.Context, members []models.Member) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.members = make([]models.Member, len(members))
	copy(s.members, members)
	return nil
}

// Package favorites holds the session-scoped set of favorited product ids.
// It never touches the network and never persists: the set starts empty at
// process start and dies with the process. Ids are not validated against live
// products, so a deleted product's id may linger until toggled off.
package favorites

import (
	"sort"
	"sync"

	"github.com/storefront-labs/admin-console/internal/core/ports"
)

type Store struct {
	mu  sync.RWMutex
	ids map[string]struct{}
}

func NewStore() *Store {
	return &Store{ids: make(map[string]struct{})}
}

// Toggle adds the id if absent, removes it if present. Returns true when the
// id is a favorite after the call.
func (s *Store) Toggle(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.ids[productID]; ok {
		delete(s.ids, productID)
		return false
	}
	s.ids[productID] = struct{}{}
	return true
}

func (s *Store) Contains(productID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.ids[productID]
	return ok
}

// List returns the favorited ids as a sorted copy.
func (s *Store) List() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.ids)
}

var _ ports.Favorites = (*Store)(nil)

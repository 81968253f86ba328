// Package repo is used for performing database repository operations.
package repo

import (
	"database/sql"

	"ytcli/internal/interfaces"
)

// Store holds the sub-stores sharing one database.
type Store struct {
	historyStore *HistoryStore
}

// InitStores injects the database into the store methods.
func InitStores(db *sql.DB) *Store {
	return &Store{
		historyStore: GetHistoryStore(db),
	}
}

// HistoryStore with pointer receiver.
func (s *Store) HistoryStore() interfaces.HistoryStore {
	return s.historyStore
}

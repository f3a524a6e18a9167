// Package repositories is the data access layer. Every store interaction
// goes through an injected repository, never an ambient database handle.
package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository   *UserRepository
	RecordRepository *RecordRepository
	TokenRepository  *TokenRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:   NewUserRepository(db),
		RecordRepository: NewRecordRepository(db),
		TokenRepository:  NewTokenRepository(db),
	}
}

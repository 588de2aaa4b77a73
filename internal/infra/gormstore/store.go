// Package gormstore is the durable store, PostgreSQL in production and
// in-process SQLite for conformance tests. Repository semantics match
// memstore: KindNotFound on misses, KindDuplicateKey on unique violations,
// and Mutate as a read-modify-write inside one transaction.
package gormstore

import (
	"errors"
	"fmt"

	gosqlite "github.com/glebarez/go-sqlite"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"hoteltrack/internal/infra"
)

const (
	pgUniqueViolationCode = "23505"
	sqliteConstraintCode  = 19
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Migrate creates or updates the schema for every table.
func (s *Store) Migrate() error {
	return s.db.AutoMigrate(AllModels()...)
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolationCode
	}
	var sqliteErr *gosqlite.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code()&0xFF == sqliteConstraintCode
	}
	return false
}

func mapWriteErr(err error, subject string) error {
	if isUniqueViolation(err) {
		return infra.WrapRepoErr(infra.KindDuplicateKey, subject+" already exists", err)
	}
	return infra.WrapRepoErr(infra.KindDBFailure, "write "+subject, err)
}

func mapReadErr(err error, subject string) error {
	return infra.WrapRepoErr(infra.KindDBFailure, "query "+subject, err)
}

func mapFindErr(err error, subject string, id int64) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return infra.NewRepoErr(infra.KindNotFound, fmt.Sprintf("%s %d not found", subject, id))
	}
	return infra.WrapRepoErr(infra.KindDBFailure, "find "+subject, err)
}

func mapLookupErr(err error, subject, key string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return infra.NewRepoErr(infra.KindNotFound, fmt.Sprintf("%s %q not found", subject, key))
	}
	return infra.WrapRepoErr(infra.KindDBFailure, "find "+subject, err)
}

// Package store is the single gateway between handlers and the database.
// Callers pass constant statement text and bound arguments; values are never
// spliced into SQL.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const mysqlDuplicateEntry = 1062

var ErrDuplicate = errors.New("duplicate key")

type Store struct {
	db      *gorm.DB
	timeout time.Duration
}

// New wraps a pooled connection. Every statement is bounded by timeout; a
// non-positive timeout leaves the caller's context as is.
func New(db *gorm.DB, timeout time.Duration) *Store {
	return &Store{db: db, timeout: timeout}
}

// Select runs a query and scans all rows into dest, a pointer to a slice or struct.
func (s *Store) Select(ctx context.Context, dest any, query string, args ...any) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	if err := s.db.WithContext(ctx).Raw(query, args...).Scan(dest).Error; err != nil {
		return translate(err)
	}
	return nil
}

// Exec runs a statement and reports the number of rows it matched.
func (s *Store) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	res := s.db.WithContext(ctx).Exec(query, args...)
	if res.Error != nil {
		return 0, translate(res.Error)
	}
	return res.RowsAffected, nil
}

// Insert writes row and fills in its generated primary key.
func (s *Store) Insert(ctx context.Context, row any) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	if err := s.db.WithContext(ctx).Create(row).Error; err != nil {
		return translate(err)
	}
	return nil
}

// Upsert inserts row, or overwrites every non-key column of the row that
// already holds the same key, in one statement.
func (s *Store) Upsert(ctx context.Context, row any, key string) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: key}}, UpdateAll: true}).
		Create(row).Error
	if err != nil {
		return translate(err)
	}
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return sqlDB.PingContext(ctx)
}

func (s *Store) SQLDB() (*sql.DB, error) {
	return s.db.DB()
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *Store) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

func translate(err error) error {
	if IsDuplicate(err) {
		return fmt.Errorf("%w: %v", ErrDuplicate, err)
	}
	return err
}

func IsDuplicate(err error) bool {
	if errors.Is(err, ErrDuplicate) || errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var myErr *mysql.MySQLError
	return errors.As(err, &myErr) && myErr.Number == mysqlDuplicateEntry
}

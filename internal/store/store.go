package store

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
)

// ErrNotFound is returned by id lookups and updates that match no row.
var ErrNotFound = errors.New("record not found")

// Store bundles the per-entity repositories over a single database
// handle.
type Store struct {
	db *sql.DB

	Properties  *PropertyRepository
	Tenants     *TenantRepository
	Leases      *LeaseRepository
	Payments    *PaymentRepository
	Maintenance *MaintenanceRepository
}

// Open connects to PostgreSQL and verifies the connection.
func Open(dsn string) (*Store, error) {
	config, err := pgx.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}

	db := stdlib.OpenDB(*config)
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{
		db:          db,
		Properties:  &PropertyRepository{db: db},
		Tenants:     &TenantRepository{db: db},
		Leases:      &LeaseRepository{db: db},
		Payments:    &PaymentRepository{db: db},
		Maintenance: &MaintenanceRepository{db: db},
	}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

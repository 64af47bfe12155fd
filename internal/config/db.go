package config

import (
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// DriverFor maps a STORE_BACKEND name to its database/sql driver.
func DriverFor(backend string) (string, error) {
	switch backend {
	case "mysql":
		return "mysql", nil
	case "postgres":
		return "pgx", nil
	case "sqlite":
		return "sqlite", nil
	default:
		return "", fmt.Errorf("backend %q is not a sql backend", backend)
	}
}

func InitDB(s Settings) (*sqlx.DB, error) {
	driver, err := DriverFor(s.StoreBackend)
	if err != nil {
		return nil, err
	}
	if s.DBDSN == "" {
		return nil, fmt.Errorf("DB_DSN is required for %s", s.StoreBackend)
	}

	db, err := sqlx.Connect(driver, s.DBDSN)
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", s.StoreBackend, err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)
	if driver == "sqlite" {
		// one writer at a time
		db.SetMaxOpenConns(1)
	}
	return db, nil
}

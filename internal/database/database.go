// Package database centralises sqlx connection helpers for the remote
// portfolio backend.  The driver is go-sql-driver/mysql, which also covers
// MariaDB and anything speaking the MySQL wire protocol.
//
// Open pings before returning so boot fails fast on a bad DSN; the store
// layer treats that failure as "remote unavailable" and runs file-only.
package database

import (
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
)

// Open returns a *sqlx.DB with a small pool: the backend stores one row,
// so a handful of connections is plenty.
func Open(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

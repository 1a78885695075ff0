package database

import (
	"database/sql"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/mattn/go-sqlite3"
)

// sqliteUnicodeDriver is go-sqlite3 with lower() replaced by a Unicode-aware
// version. The built-in only folds ASCII, so "CAFÉ" would become "cafÉ" in
// the lower(word) index and never match a lookup for "café".
const sqliteUnicodeDriver = "sqlite3_unicode"

func init() {
	sql.Register(sqliteUnicodeDriver, &sqlite3.SQLiteDriver{
		ConnectHook: func(conn *sqlite3.SQLiteConn) error {
			return conn.RegisterFunc("lower", strings.ToLower, true)
		},
	})
	sqlx.BindDriver(sqliteUnicodeDriver, sqlx.QUESTION)
}

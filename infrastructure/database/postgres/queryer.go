package postgres

import (
	"database/sql"
)

// Queryer é satisfeito tanto por *sql.DB (via Connection) quanto por *sql.Tx,
// permitindo que os repositórios executem as mesmas queries dentro ou fora de
// uma transação.
type Queryer interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}

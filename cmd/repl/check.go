package main

import (
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/bawdo/fluentsql/models"
	"github.com/bawdo/fluentsql/strategies"
)

// cmdCheck renders the current statement with positional markers and
// prepares it against an in-memory SQLite database, so typos in table or
// column usage surface before the SQL leaves the REPL.
func (s *Session) cmdCheck() error {
	provider, err := s.render(strategies.Positional())
	if err != nil {
		return err
	}

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return fmt.Errorf("open check database: %w", err)
	}
	defer func() { _ = db.Close() }()

	for _, name := range s.tableOrder {
		if _, err := db.Exec(createTableDDL(s.tables[name])); err != nil {
			return fmt.Errorf("create check table %s: %w", name, err)
		}
	}

	stmt, err := db.Prepare(provider.Statement())
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}
	_ = stmt.Close()
	_, _ = fmt.Fprintf(s.out, "  OK: %s\n", provider.Statement())
	return nil
}

// createTableDDL builds a SQLite create-table statement for a registered
// table. Column types are approximated by SQLite affinities, which is enough
// for prepare-time checking.
func createTableDDL(rt *replTable) string {
	cols := make([]string, len(rt.columns))
	for i, c := range rt.columns {
		cols[i] = c + " " + sqliteAffinity(rt.types[c])
	}
	if len(cols) == 0 {
		cols = []string{"id integer"}
	}
	return "create table " + rt.table.FullName() + " (" + strings.Join(cols, ", ") + ")"
}

func sqliteAffinity(jt models.JDBCType) string {
	switch jt {
	case models.Integer, models.Bigint, models.Smallint, models.Boolean:
		return "integer"
	case models.Decimal, models.Double:
		return "real"
	default:
		return "text"
	}
}

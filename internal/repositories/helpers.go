package repositories

import (
	"database/sql"
	"strings"

	intconfig "staffdesk/internal/config"
	"staffdesk/internal/domain"
	"staffdesk/internal/query"

	"github.com/go-sql-driver/mysql"
)

func defaultDB(db *sql.DB) *sql.DB {
	if db != nil {
		return db
	}
	return intconfig.DB
}

// dupKeyConflict maps a MySQL duplicate-key violation (errno 1062) onto a
// domain conflict so unique columns surface as 409 instead of 500.
func dupKeyConflict(err error, resource string) error {
	if me, ok := err.(*mysql.MySQLError); ok && me.Number == 1062 {
		return domain.ConflictError{Resource: resource, Msg: "duplicate entry", Err: err}
	}
	return err
}

// likeClause builds an OR of LIKE matches across columns for the free-text
// search term.
func likeClause(columns []string, term string) (string, []any) {
	term = strings.TrimSpace(term)
	if term == "" || len(columns) == 0 {
		return "", nil
	}
	parts := make([]string, 0, len(columns))
	args := make([]any, 0, len(columns))
	like := "%" + term + "%"
	for _, col := range columns {
		parts = append(parts, col+" LIKE ?")
		args = append(args, like)
	}
	return "(" + strings.Join(parts, " OR ") + ")", args
}

// orderClause maps a requested sort onto a whitelisted column. Anything
// outside the whitelist falls back to id DESC.
func orderClause(p query.ListParams, whitelist map[string]string) string {
	col, ok := whitelist[p.SortBy]
	if !ok {
		return " ORDER BY id DESC "
	}
	dir := "ASC"
	if p.SortDir == "desc" {
		dir = "DESC"
	}
	return " ORDER BY " + col + " " + dir + " "
}

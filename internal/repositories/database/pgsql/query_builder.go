package pgsql

import (
	"fmt"
	"strings"

	"github.com/SscSPs/debt_ledger_app/internal/core/domain"
)

// whereBuilder collects AND-ed conditions and numbers their placeholders.
type whereBuilder struct {
	clauses []string
	args    []any
}

// add appends cond, replacing its single '?' with the next positional placeholder.
func (w *whereBuilder) add(cond string, arg any) {
	w.args = append(w.args, arg)
	w.clauses = append(w.clauses, strings.Replace(cond, "?", fmt.Sprintf("$%d", len(w.args)), 1))
}

func (w *whereBuilder) addRaw(cond string) {
	w.clauses = append(w.clauses, cond)
}

func (w *whereBuilder) String() string {
	if len(w.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.clauses, " AND ")
}

// pageClause renders ORDER BY, LIMIT and OFFSET, appending the limit and offset to args.
// page.SortBy must already be a whitelisted column; tiebreak keeps the order stable.
func (w *whereBuilder) pageClause(page domain.PageRequest, tiebreak string) string {
	dir := "ASC"
	if page.SortDir == domain.SortDesc {
		dir = "DESC"
	}
	order := fmt.Sprintf(" ORDER BY %s %s", page.SortBy, dir)
	if page.SortBy != tiebreak {
		order += fmt.Sprintf(", %s %s", tiebreak, dir)
	}
	args := len(w.args)
	w.args = append(w.args, page.Size, page.Offset())
	return order + fmt.Sprintf(" LIMIT $%d OFFSET $%d", args+1, args+2)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern builds a substring pattern for LIKE ... ESCAPE '\' with the wildcards in s matched literally.
func likePattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

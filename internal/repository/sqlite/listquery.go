package sqlite

import (
	"strings"

	"github.com/sakif/maintainer-match/internal/repository"
)

// listSortColumns is the allow-list for dynamically built ORDER BY clauses.
// The sort column is the one piece of a list query that cannot be a bound
// parameter, so anything outside this set silently falls back to created_at.
var listSortColumns = map[string]bool{
	"created_at": true,
	"updated_at": true,
	"name":       true,
}

// listQuery accumulates the conjunctive filter predicates for a list endpoint
// and renders them into a matched pair of statements: the page fetch and the
// row count. Both are rendered from the same predicates and args, which is
// what keeps totalPages consistent with the returned page.
//
// Filter VALUES only ever travel through args as bound parameters. The only
// string-composed pieces are the static skeleton, the predicate fragments
// (fixed at the call sites below), and the allow-listed sort clause.
type listQuery struct {
	table   string
	columns string
	where   []string
	args    []any
}

func newListQuery(table, columns string) *listQuery {
	return &listQuery{table: table, columns: columns}
}

// filter adds one predicate. cond must contain exactly one placeholder.
func (q *listQuery) filter(cond string, arg any) {
	q.where = append(q.where, cond)
	q.args = append(q.args, arg)
}

// filterList adds a substring predicate against a JSON-serialized list
// column. The value is wrapped in escaped quotes so `Java` does not match a
// stored `JavaScript` entry; the wrapped value is still a bound parameter.
func (q *listQuery) filterList(column, value string) {
	q.filter(column+` LIKE ?`, `%"`+value+`"%`)
}

// filterBool adds an equality predicate against a 0/1 flag column.
func (q *listQuery) filterBool(column string, value bool) {
	flag := 0
	if value {
		flag = 1
	}
	q.filter(column+` = ?`, flag)
}

func (q *listQuery) whereClause() string {
	if len(q.where) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(q.where, " AND ")
}

// pageSQL renders the filtered, sorted, paginated row fetch.
func (q *listQuery) pageSQL(opts repository.ListOptions) (string, []any) {
	var b strings.Builder
	b.WriteString("SELECT ")
	b.WriteString(q.columns)
	b.WriteString(" FROM ")
	b.WriteString(q.table)
	b.WriteString(q.whereClause())
	b.WriteString(" ORDER BY ")
	b.WriteString(sortColumn(opts.SortBy))
	b.WriteString(" ")
	b.WriteString(sortDirection(opts.Order))
	b.WriteString(" LIMIT ? OFFSET ?")

	args := make([]any, 0, len(q.args)+2)
	args = append(args, q.args...)
	args = append(args, opts.Limit, opts.Offset())
	return b.String(), args
}

// countSQL renders the row count under the identical predicates.
func (q *listQuery) countSQL() (string, []any) {
	args := make([]any, len(q.args))
	copy(args, q.args)
	return "SELECT COUNT(*) FROM " + q.table + q.whereClause(), args
}

// sortColumn clamps the requested sort column to the allow-list.
func sortColumn(requested string) string {
	if listSortColumns[requested] {
		return requested
	}
	return "created_at"
}

// sortDirection normalizes the requested direction to exactly ASC or DESC.
// Only a case-insensitive "asc" sorts ascending; everything else is DESC.
func sortDirection(requested string) string {
	if strings.EqualFold(requested, "ASC") {
		return "ASC"
	}
	return "DESC"
}

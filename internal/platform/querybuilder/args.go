package querybuilder

import (
	"strconv"
	"strings"
)

// argList accumulates bind values and hands out the matching $n
// placeholders in order.
type argList struct {
	values []any
}

func (a *argList) bind(v any) string {
	a.values = append(a.values, v)
	return "$" + strconv.Itoa(len(a.values))
}

// bindExpr replaces each ? in expr with the next placeholder. Extra ? marks
// are left as is.
func (a *argList) bindExpr(expr string, exprArgs []any) string {
	if len(exprArgs) == 0 {
		return expr
	}

	var out strings.Builder
	out.Grow(len(expr) + 2*len(exprArgs))
	next := 0
	for i := 0; i < len(expr); i++ {
		if expr[i] != '?' || next >= len(exprArgs) {
			out.WriteByte(expr[i])
			continue
		}
		out.WriteString(a.bind(exprArgs[next]))
		next++
	}
	return out.String()
}

// sqlWriter is a strings.Builder with the clause helpers every statement
// shares.
type sqlWriter struct {
	strings.Builder
	args argList
}

func (w *sqlWriter) list(prefix string, parts []string) {
	if len(parts) == 0 {
		return
	}
	w.WriteString(prefix)
	w.WriteString(strings.Join(parts, ", "))
}

func (w *sqlWriter) where(conditions []Condition) {
	for i, c := range conditions {
		if i == 0 {
			w.WriteString(" WHERE ")
		} else {
			w.WriteString(" AND ")
		}
		c.writeSQL(w)
	}
}

func (w *sqlWriter) positive(keyword string, n int) {
	if n > 0 {
		w.WriteString(keyword)
		w.WriteString(strconv.Itoa(n))
	}
}

func (w *sqlWriter) suffix(sql string) {
	if sql != "" {
		w.WriteByte(' ')
		w.WriteString(sql)
	}
}

func (w *sqlWriter) result() (string, []any, error) {
	args := w.args.values
	if args == nil {
		args = []any{}
	}
	return w.String(), args, nil
}

package querybuilder

// Condition is one AND-ed term of a WHERE clause.
type Condition interface {
	writeSQL(w *sqlWriter)
}

type conditionFunc func(w *sqlWriter)

func (f conditionFunc) writeSQL(w *sqlWriter) { f(w) }

func Eq(column string, value any) Condition {
	return conditionFunc(func(w *sqlWriter) {
		w.WriteString(column)
		w.WriteString(" = ")
		w.WriteString(w.args.bind(value))
	})
}

// In matches nothing for an empty value list.
func In(column string, values []any) Condition {
	return conditionFunc(func(w *sqlWriter) {
		if len(values) == 0 {
			w.WriteString("1=0")
			return
		}
		w.WriteString(column)
		w.WriteString(" IN (")
		for i, v := range values {
			if i > 0 {
				w.WriteString(", ")
			}
			w.WriteString(w.args.bind(v))
		}
		w.WriteByte(')')
	})
}

func IsNull(column string) Condition {
	return conditionFunc(func(w *sqlWriter) {
		w.WriteString(column)
		w.WriteString(" IS NULL")
	})
}

// Expr is raw SQL with ? marks bound to args in order.
func Expr(expr string, args ...any) Condition {
	return conditionFunc(func(w *sqlWriter) {
		w.WriteString(w.args.bindExpr(expr, args))
	})
}

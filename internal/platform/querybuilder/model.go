package querybuilder

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
)

// modelColumn maps one exported struct field to its db column. omitEmpty
// columns are left out of the insert when the field holds its zero value, so
// the column default applies.
type modelColumn struct {
	index     int
	name      string
	omitEmpty bool
}

var modelPlans sync.Map // reflect.Type -> []modelColumn

// InsertModel builds an INSERT from the `db` tags of model. Supported tag
// options: `db:"col"`, `db:"col,omitempty"` and `db:"-"`.
func InsertModel(table string, model any, suffix string) (string, []any, error) {
	cols, vals, err := columnsAndValuesFromModel(model)
	if err != nil {
		return "", nil, err
	}
	return InsertInto(table).
		Columns(cols...).
		Values(vals...).
		Suffix(suffix).
		ToSQL()
}

// ExcludedAssignments renders "col = EXCLUDED.col" pairs for an
// ON CONFLICT DO UPDATE clause.
func ExcludedAssignments(cols ...string) string {
	parts := make([]string, 0, len(cols))
	for _, col := range cols {
		col = strings.TrimSpace(col)
		if col == "" {
			continue
		}
		parts = append(parts, col+" = EXCLUDED."+col)
	}
	return strings.Join(parts, ", ")
}

func columnsAndValuesFromModel(model any) ([]string, []any, error) {
	value := reflect.ValueOf(model)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return nil, nil, fmt.Errorf("model cannot be nil")
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return nil, nil, fmt.Errorf("model must be struct, got %s", value.Kind())
	}

	plan := planFor(value.Type())
	cols := make([]string, 0, len(plan))
	vals := make([]any, 0, len(plan))
	for _, col := range plan {
		field := value.Field(col.index)
		if col.omitEmpty && field.IsZero() {
			continue
		}
		cols = append(cols, col.name)
		vals = append(vals, field.Interface())
	}

	if len(cols) == 0 {
		return nil, nil, fmt.Errorf("model %s has no db columns", value.Type().Name())
	}
	return cols, vals, nil
}

func planFor(typ reflect.Type) []modelColumn {
	if cached, ok := modelPlans.Load(typ); ok {
		return cached.([]modelColumn)
	}

	plan := make([]modelColumn, 0, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		name, opts, _ := strings.Cut(field.Tag.Get("db"), ",")
		name = strings.TrimSpace(name)
		if name == "" || name == "-" {
			continue
		}
		plan = append(plan, modelColumn{
			index:     i,
			name:      name,
			omitEmpty: strings.Contains(opts, "omitempty"),
		})
	}

	actual, _ := modelPlans.LoadOrStore(typ, plan)
	return actual.([]modelColumn)
}

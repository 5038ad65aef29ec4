package querybuilder

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
)

type upsertConfig struct {
	coalesce  []string
	returning []string
}

type UpsertOption func(*upsertConfig)

// CoalesceExisting keeps the stored value of columns when the incoming one
// is NULL.
func CoalesceExisting(columns ...string) UpsertOption {
	return func(c *upsertConfig) {
		c.coalesce = append(c.coalesce, columns...)
	}
}

func Returning(columns ...string) UpsertOption {
	return func(c *upsertConfig) {
		c.returning = append(c.returning, columns...)
	}
}

// UpsertModel renders a single row INSERT from the db tags of model. On a
// conflict over the target columns every other column is overwritten with
// the incoming value, so repeating the call with identical data is a no-op.
func UpsertModel(table string, model any, conflict []string, opts ...UpsertOption) (string, []any, error) {
	if strings.TrimSpace(table) == "" {
		return "", nil, fmt.Errorf("upsert table is required")
	}
	if len(conflict) == 0 {
		return "", nil, fmt.Errorf("upsert conflict target is required")
	}

	cols, vals, err := columnsAndValues(model)
	if err != nil {
		return "", nil, err
	}
	for _, col := range conflict {
		if !slices.Contains(cols, col) {
			return "", nil, fmt.Errorf("conflict column %q is not part of the model", col)
		}
	}

	cfg := upsertConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	w := &sqlWriter{}
	w.write("INSERT INTO ", table, " (", strings.Join(cols, ", "), ") VALUES (")
	for i, v := range vals {
		if i > 0 {
			w.write(", ")
		}
		w.bind(v)
	}
	w.write(") ON CONFLICT (", strings.Join(conflict, ", "), ")")

	updates := make([]string, 0, len(cols))
	for _, col := range cols {
		if slices.Contains(conflict, col) {
			continue
		}
		if slices.Contains(cfg.coalesce, col) {
			updates = append(updates, fmt.Sprintf("%s = COALESCE(EXCLUDED.%s, %s.%s)", col, col, table, col))
			continue
		}
		updates = append(updates, fmt.Sprintf("%s = EXCLUDED.%s", col, col))
	}
	if len(updates) == 0 {
		w.write(" DO NOTHING")
	} else {
		w.write(" DO UPDATE SET ", strings.Join(updates, ", "))
	}
	if len(cfg.returning) > 0 {
		w.write(" RETURNING ", strings.Join(cfg.returning, ", "))
	}

	return w.result()
}

// columnsAndValues reads exported fields tagged with db in declaration
// order.
func columnsAndValues(model any) ([]string, []any, error) {
	value := reflect.ValueOf(model)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return nil, nil, fmt.Errorf("model cannot be nil")
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return nil, nil, fmt.Errorf("model must be struct")
	}

	typ := value.Type()
	cols := make([]string, 0, typ.NumField())
	vals := make([]any, 0, typ.NumField())
	for i := range typ.NumField() {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		col, _, _ := strings.Cut(field.Tag.Get("db"), ",")
		col = strings.TrimSpace(col)
		if col == "" || col == "-" {
			continue
		}
		cols = append(cols, col)
		vals = append(vals, value.Field(i).Interface())
	}

	if len(cols) == 0 {
		return nil, nil, fmt.Errorf("model has no db columns")
	}
	return cols, vals, nil
}

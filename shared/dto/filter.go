package dto

import (
	"fmt"
	"maps"
	"reflect"
	"strings"
)

const (
	FilterOperatorEq    = "eq"
	FilterOperatorIn    = "in"
	FilterOperatorBlank = "blank"
)

const (
	FilterGroupOperatorAnd = "AND"
	FilterGroupOperatorOr  = "OR"
)

type Filter struct {
	ArgName  string
	Field    string
	Value    any
	Operator string `validate:"required,oneof=eq in blank"`
	Table    string
}

func (f *Filter) GetWhereClause() (string, map[string]any) {
	args := map[string]any{}

	column := f.Field
	if f.Table != "" {
		column = fmt.Sprintf("%s.%s", f.Table, f.Field)
	}

	argName := f.ArgName
	if argName == "" {
		argName = f.Field
	}

	switch f.Operator {
	case FilterOperatorEq:
		args[argName] = f.Value

		return fmt.Sprintf("%s = :%s", column, argName), args
	case FilterOperatorBlank:
		args[argName] = ""

		return fmt.Sprintf("(%s IS NULL OR %s = :%s)", column, column, argName), args
	case FilterOperatorIn:
		val := reflect.ValueOf(f.Value)

		if val.Kind() != reflect.Array && val.Kind() != reflect.Slice {
			return "", args
		}

		// IN () is a syntax error in postgres
		if val.Len() == 0 {
			return "FALSE", args
		}

		named := make([]string, val.Len())

		for idx := range val.Len() {
			args[fmt.Sprintf("%s_%d", argName, idx)] = val.Index(idx).Interface()

			named[idx] = fmt.Sprintf(":%s_%d", argName, idx)
		}

		return fmt.Sprintf("%s IN (%s)", column, strings.Join(named, ", ")), args
	default:
		return "", args
	}
}

type FilterGroup struct {
	Filters  []any
	Operator string
}

// GetWhereClause joins the group's filters; an unset Operator means AND.
func (f *FilterGroup) GetWhereClause() (string, map[string]any) {
	args := map[string]any{}
	whereClause := []string{}

	for _, filter := range f.Filters {
		var (
			where string
			arg   map[string]any
		)

		switch fill := filter.(type) {
		case Filter:
			where, arg = fill.GetWhereClause()
		case FilterGroup:
			where, arg = fill.GetWhereClause()
		}

		if where == "" {
			continue
		}

		whereClause = append(whereClause, where)

		maps.Copy(args, arg)
	}

	if len(whereClause) == 0 {
		return "", args
	}

	operator := f.Operator
	if operator == "" {
		operator = FilterGroupOperatorAnd
	}

	return fmt.Sprintf("(%s)", strings.Join(whereClause, " "+operator+" ")), args
}

// EqualFilters builds an AND group with one equality filter per set
// `db`-tagged field of data. Pointers are dereferenced so the bound values are
// plain strings. A non-nil pointer to an empty value matches NULL or empty
// columns; other zero values are unset and skipped.
func EqualFilters(data any, table string) FilterGroup {
	group := FilterGroup{Operator: FilterGroupOperatorAnd}

	val := reflect.Indirect(reflect.ValueOf(data))
	if val.Kind() != reflect.Struct {
		return group
	}

	typ := val.Type()

	for index := range val.NumField() {
		column := typ.Field(index).Tag.Get("db")
		if column == "" || column == "-" {
			continue
		}

		raw := val.Field(index)
		field := reflect.Indirect(raw)

		if !field.IsValid() {
			continue
		}

		if field.IsZero() {
			if raw.Kind() == reflect.Pointer && field.Kind() == reflect.String {
				group.Filters = append(group.Filters, Filter{
					Field:    column,
					Operator: FilterOperatorBlank,
					Table:    table,
				})
			}

			continue
		}

		group.Filters = append(group.Filters, Filter{
			Field:    column,
			Value:    field.Interface(),
			Operator: FilterOperatorEq,
			Table:    table,
		})
	}

	return group
}

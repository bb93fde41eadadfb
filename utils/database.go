package utils

import (
	"reflect"
)

// ColumnList builds the list of column names of a dbmodel struct from its "db"
// tags, in declaration order.
func ColumnList[T any]() []string {
	var dbModel T
	t := reflect.TypeOf(dbModel)

	columns := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		tag, ok := t.Field(i).Tag.Lookup("db")
		if !ok || tag == "-" {
			continue
		}
		columns = append(columns, tag)
	}
	return columns
}

package repositories

import (
	"fmt"

	"github.com/dmirchev92/server-maystorfix-sub007/pure_utils"
)

func columnsNames(tablename string, fields []string) []string {
	return pure_utils.Map(fields, func(f string) string {
		return fmt.Sprintf("%s.%s", tablename, f)
	})
}

package engine

import (
	"github.com/xwb1989/sqlparser"

	"github.com/leapstack-labs/sqlecto/pkg/dialect"
)

// validates reports whether output for d can be checked by a grammar.
func validates(d *dialect.Dialect) bool {
	return d.Name == "mysql"
}

// validateStatement parses a MySQL statement.
func validateStatement(sql string) error {
	_, err := sqlparser.Parse(sql)
	return err
}

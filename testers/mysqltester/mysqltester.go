// Package mysqltester registers the MySQL backend tester. Importing it (for
// side effects) makes tck.tester=mysql available.
package mysqltester

import (
	_ "github.com/go-sql-driver/mysql" // registers the mysql driver

	"github.com/olapgo/driver-test-harness/framework/harness"
	"github.com/olapgo/driver-test-harness/testers/sqltester"
)

// Name is the tck.tester value selecting this backend.
const Name = "mysql"

func init() { //nolint:gochecknoinits
	harness.Register(Name, sqltester.NewConstructor(sqltester.Options{
		DriverNames: []string{"mysql"},
		URLPrefix:   "mysql://",
		DefaultURL:  "mysql://root@localhost:3306/tck",
		Flavor:      harness.FlavorMySQL,
	}))
}

// Package mssqltester registers the SQL Server backend tester. Importing it
// (for side effects) makes tck.tester=sqlserver available.
package mssqltester

import (
	_ "github.com/denisenkom/go-mssqldb" // registers the sqlserver driver

	"github.com/olapgo/driver-test-harness/framework/harness"
	"github.com/olapgo/driver-test-harness/testers/sqltester"
)

// Name is the tck.tester value selecting this backend.
const Name = "sqlserver"

func init() { //nolint:gochecknoinits
	harness.Register(Name, sqltester.NewConstructor(sqltester.Options{
		DriverNames: []string{"sqlserver", "mssql"},
		URLPrefix:   "sqlserver://",
		DefaultURL:  "sqlserver://sa@localhost:1433/tck",
		Flavor:      harness.FlavorSQLServer,
	}))
}

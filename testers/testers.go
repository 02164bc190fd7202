// Package testers registers every bundled backend tester. Test binaries
// import it once for its side effects:
//
//	import _ "github.com/olapgo/driver-test-harness/testers"
package testers

import (
	_ "github.com/olapgo/driver-test-harness/testers/consultester"
	_ "github.com/olapgo/driver-test-harness/testers/dynamotester"
	_ "github.com/olapgo/driver-test-harness/testers/mssqltester"
	_ "github.com/olapgo/driver-test-harness/testers/mysqltester"
	_ "github.com/olapgo/driver-test-harness/testers/redistester"
)

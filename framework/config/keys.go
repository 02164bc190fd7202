package config

// Keys recognized by the harness. Any other key found in the environment or
// in a properties file is carried through the Settings unused.
const (
	// KeyTester names the registered Tester implementation used to reach the
	// backend under test. When unset, the built-in remote tester is used.
	KeyTester = "tck.tester"

	// KeyConnectURL is the connect URL handed to the Tester; its value is
	// what Tester.URL reports.
	KeyConnectURL = "tck.connect.url"

	// KeyCatalogURL is the catalog location for the remote gateway tester.
	KeyCatalogURL = "tck.catalog.url"

	// KeyRemoteURL, KeyRemoteUsername and KeyRemotePassword configure the
	// remote gateway tester.
	KeyRemoteURL      = "tck.remote.url"
	KeyRemoteUsername = "tck.remote.username"
	KeyRemotePassword = "tck.remote.password"

	// KeyUsername and KeyPassword are the credentials used by the
	// CreateConnectionWithUserPassword path of the SQL testers.
	KeyUsername = "tck.username"
	KeyPassword = "tck.password"

	// KeyWrapper selects the decorator placed around the Tester. Empty or
	// absent means no decoration; "pooling" interposes a connection pool.
	// Any other value is a fatal configuration error.
	KeyWrapper = "tck.wrapper"

	// KeySuppressions is the path of an optional YAML exclude list of test
	// names that are expected to fail for particular backend flavors.
	KeySuppressions = "tck.suppressions"
)

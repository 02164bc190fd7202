// Package harness holds the core of the driver TCK: the test context, the
// Tester capability contract that every backend implementation satisfies, and
// the optional connection-pooling decorator. The same test suite runs against
// any backend by pointing tck.tester at a registered implementation.
package harness

import "context"

// Connection is the handle a Tester gives out for reaching the backend under
// test. Callers own the handle and must Close it on every exit path.
type Connection interface {
	// Ping verifies the backend is reachable.
	Ping(ctx context.Context) error

	// Close releases the handle. For pooled handles this returns the
	// connection to the pool rather than closing the backend resource.
	Close() error
}

// NativeConnector is implemented by direct (undecorated) connections to
// expose the backend-native client object for capability probing. Pooled
// handles intentionally do not implement it; use Unwrap with the Tester's
// reported Wrapper to reach the native object through any decoration.
type NativeConnector interface {
	NativeConnection() any
}

// Flavor identifies the family of backend a Tester connects to. It lets the
// suite disable tests or expect different results where backend capabilities
// differ.
type Flavor int

const (
	FlavorRemote Flavor = iota
	FlavorMySQL
	FlavorSQLServer
	FlavorRedis
	FlavorDynamoDB
	FlavorConsul
)

func (f Flavor) String() string {
	switch f {
	case FlavorRemote:
		return "remote"
	case FlavorMySQL:
		return "mysql"
	case FlavorSQLServer:
		return "sqlserver"
	case FlavorRedis:
		return "redis"
	case FlavorDynamoDB:
		return "dynamodb"
	case FlavorConsul:
		return "consul"
	default:
		return "unknown"
	}
}

// Tester abstracts the information about a specific backend implementation
// needed by the test suite, so the same suite can be pointed at any
// conforming driver. Implementations register themselves with Register and
// must expose a constructor taking exactly one *TestContext; that constructor
// is the sole extension point for plugging in new backends.
type Tester interface {
	// TestContext returns the context that owns this tester.
	TestContext() *TestContext

	// CreateConnection opens a connection to the backend under test.
	CreateConnection(ctx context.Context) (Connection, error)

	// CreateConnectionWithUserPassword opens a connection using explicitly
	// configured credentials rather than whatever the connect URL carries.
	CreateConnectionWithUserPassword(ctx context.Context) (Connection, error)

	// DriverURLPrefix returns the URL prefix recognized by this backend's
	// driver, for example "mysql://".
	DriverURLPrefix() string

	// DriverName returns the name the backend's driver is registered under.
	DriverName() string

	// URL returns the connect URL of the backend under test.
	URL() string

	// Flavor reports which backend family this tester drives.
	Flavor() Flavor

	// Wrapper describes the decoration, if any, around connections from this
	// tester. The reported value must always match the decoration actually
	// applied; Unwrap relies on it.
	Wrapper() Wrapper
}

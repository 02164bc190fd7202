package harness

import (
	"strings"

	"github.com/pkg/errors"
)

// Wrapper enumerates the decorations that can be placed around a Tester's
// connections. The tck.wrapper setting selects one.
type Wrapper int

const (
	// WrapperNone means connections are handed out undecorated.
	WrapperNone Wrapper = iota

	// WrapperPooling means connections are drawn from a connection pool.
	WrapperPooling
)

func (w Wrapper) String() string {
	switch w {
	case WrapperNone:
		return "none"
	case WrapperPooling:
		return "pooling"
	default:
		return "unknown"
	}
}

// ParseWrapper maps a configuration value to a Wrapper. Empty means no
// decoration. An unrecognized value is a fatal configuration error, raised
// here so that misconfiguration surfaces before any connection attempt.
func ParseWrapper(value string) (Wrapper, error) {
	switch strings.ToLower(value) {
	case "":
		return WrapperNone, nil
	case "pooling":
		return WrapperPooling, nil
	default:
		return WrapperNone, errors.Errorf("unknown wrapper value '%s'", value)
	}
}

// Unwrapping is keyed on the Wrapper tag rather than being a property of the
// connection object, because pooled handles are decorators with no public
// marker of their origin. Each variant has its own entry in the table.
var unwrapFns = map[Wrapper]func(Connection) (any, error){ //nolint:gochecknoglobals
	WrapperNone:    unwrapDirect,
	WrapperPooling: unwrapPooled,
}

// Unwrap recovers the backend-native connection object from a handle obtained
// through a Tester whose Wrapper reports w. For WrapperNone this is the
// identity path through NativeConnector; for WrapperPooling the pool's
// innermost delegate is taken first. Statement-level handles are created from
// the native connection after unwrapping.
func Unwrap(w Wrapper, conn Connection) (any, error) {
	fn, ok := unwrapFns[w]
	if !ok {
		return nil, errors.Errorf("no unwrap strategy for wrapper %s", w)
	}
	return fn(conn)
}

func unwrapDirect(conn Connection) (any, error) {
	nc, ok := conn.(NativeConnector)
	if !ok {
		return nil, errors.Errorf("connection of type %T does not expose a native connection", conn)
	}
	return nc.NativeConnection(), nil
}

func unwrapPooled(conn Connection) (any, error) {
	pc, ok := conn.(*pooledConn)
	if !ok {
		return nil, errors.Errorf("connection of type %T did not come from a connection pool", conn)
	}
	return unwrapDirect(pc.innermost())
}

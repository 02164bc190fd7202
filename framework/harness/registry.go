package harness

import (
	"fmt"
	"sync"
)

// Constructor builds a Tester bound to the given context. Every backend
// implementation exposes exactly this signature; it is how new backends plug
// into the harness without modifying the core.
type Constructor func(*TestContext) (Tester, error)

var testersMu sync.RWMutex                       //nolint:gochecknoglobals
var testers = make(map[string]Constructor)       //nolint:gochecknoglobals

// Register makes a Tester implementation available under the given name, to
// be selected by the tck.tester setting. It follows the database/sql.Register
// contract: registering twice under one name, or registering a nil
// constructor, panics.
func Register(name string, ctor Constructor) {
	testersMu.Lock()
	defer testersMu.Unlock()
	if ctor == nil {
		panic("harness: Register constructor is nil")
	}
	if _, dup := testers[name]; dup {
		panic(fmt.Sprintf("harness: Register called twice for tester %q", name))
	}
	testers[name] = ctor
}

func lookupTester(name string) (Constructor, bool) {
	testersMu.RLock()
	defer testersMu.RUnlock()
	ctor, ok := testers[name]
	return ctor, ok
}

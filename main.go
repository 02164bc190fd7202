package main

import (
	"context"
	_ "embed" // this is required in order for go:embed to work
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/olapgo/driver-test-harness/framework/config"
	"github.com/olapgo/driver-test-harness/framework/harness"
	_ "github.com/olapgo/driver-test-harness/testers"
)

//go:embed VERSION
var versionString string // comes from the VERSION file which we update for each release

func main() {
	fmt.Printf("driver-test-harness v%s\n", strings.TrimSpace(versionString))

	var params commandParams
	if !params.Read(os.Args) {
		os.Exit(1)
	}

	if err := run(params); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run resolves the configuration for the requested directory, constructs the
// configured tester, and verifies the backend answers a ping. It is a
// preflight for driver test runs: the same resolution and construction path
// the suite itself uses, without running any tests.
func run(params commandParams) error {
	settings, err := config.Resolve(params.dir)
	if err != nil {
		return err
	}

	tc, err := harness.NewWithSettings(settings)
	if err != nil {
		return err
	}
	defer func() { _ = tc.Close() }()

	tester := tc.Tester()
	fmt.Printf("tester: %s (flavor %s, wrapper %s)\n",
		tester.DriverName(), tester.Flavor(), tester.Wrapper())
	fmt.Printf("connect URL: %s\n", tester.URL())

	ctx, cancel := context.WithTimeout(context.Background(), params.timeout)
	defer cancel()

	var conn harness.Connection
	if params.asUser {
		conn, err = tester.CreateConnectionWithUserPassword(ctx)
	} else {
		conn, err = tester.CreateConnection(ctx)
	}
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close() }()

	if err := conn.Ping(ctx); err != nil {
		return errors.Wrap(err, "backend did not answer ping")
	}
	fmt.Println("backend is reachable")
	return nil
}

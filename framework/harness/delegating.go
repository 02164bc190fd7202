package harness

import "context"

// DelegatingTester forwards every Tester method to a wrapped tester.
// Decorators embed it and override only the methods whose behavior they
// change, which keeps the decorator chain linear and explicit.
type DelegatingTester struct {
	Inner Tester
}

func (d DelegatingTester) TestContext() *TestContext { return d.Inner.TestContext() }

func (d DelegatingTester) CreateConnection(ctx context.Context) (Connection, error) {
	return d.Inner.CreateConnection(ctx)
}

func (d DelegatingTester) CreateConnectionWithUserPassword(ctx context.Context) (Connection, error) {
	return d.Inner.CreateConnectionWithUserPassword(ctx)
}

func (d DelegatingTester) DriverURLPrefix() string { return d.Inner.DriverURLPrefix() }

func (d DelegatingTester) DriverName() string { return d.Inner.DriverName() }

func (d DelegatingTester) URL() string { return d.Inner.URL() }

func (d DelegatingTester) Flavor() Flavor { return d.Inner.Flavor() }

func (d DelegatingTester) Wrapper() Wrapper { return d.Inner.Wrapper() }

// unwrapTester lets TestContext.Close walk the decorator chain.
func (d DelegatingTester) unwrapTester() Tester { return d.Inner }

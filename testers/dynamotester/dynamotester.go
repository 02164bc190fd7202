// Package dynamotester registers the DynamoDB backend tester. Importing it
// (for side effects) makes tck.tester=dynamodb available.
package dynamotester

import (
	"context"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/pkg/errors"

	"github.com/olapgo/driver-test-harness/framework/config"
	"github.com/olapgo/driver-test-harness/framework/harness"
)

// Name is the tck.tester value selecting this backend.
const Name = "dynamodb"

// The defaults target DynamoDB Local; real AWS endpoints come from
// tck.connect.url and the usual AWS environment variables.
const (
	defaultURL    = "http://localhost:8000"
	defaultRegion = "us-east-1"

	// DynamoDB Local accepts any non-empty credentials.
	localAccessKey = "dummy"
)

func init() { //nolint:gochecknoinits
	harness.Register(Name, New)
}

type tester struct {
	tc  *harness.TestContext
	url string
}

// New builds the DynamoDB tester. The connect URL is the service endpoint.
func New(tc *harness.TestContext) (harness.Tester, error) {
	return &tester{
		tc:  tc,
		url: tc.SettingDefault(config.KeyConnectURL, defaultURL),
	}, nil
}

func (t *tester) TestContext() *harness.TestContext { return t.tc }

func (t *tester) CreateConnection(ctx context.Context) (harness.Connection, error) {
	return t.connect(credentials.NewStaticCredentials(localAccessKey, localAccessKey, ""))
}

func (t *tester) CreateConnectionWithUserPassword(ctx context.Context) (harness.Connection, error) {
	user, _ := t.tc.Setting(config.KeyUsername)
	password, _ := t.tc.Setting(config.KeyPassword)
	return t.connect(credentials.NewStaticCredentials(user, password, ""))
}

func (t *tester) connect(creds *credentials.Credentials) (harness.Connection, error) {
	sess, err := session.NewSession(aws.NewConfig().
		WithEndpoint(t.url).
		WithRegion(defaultRegion).
		WithCredentials(creds).
		WithMaxRetries(0))
	if err != nil {
		return nil, errors.Wrap(err, "creating AWS session")
	}
	return &dynamoConn{client: dynamodb.New(sess)}, nil
}

func (t *tester) DriverURLPrefix() string { return "http://" }

func (t *tester) DriverName() string { return "dynamodb" }

func (t *tester) URL() string { return t.url }

func (t *tester) Flavor() harness.Flavor { return harness.FlavorDynamoDB }

func (t *tester) Wrapper() harness.Wrapper { return harness.WrapperNone }

type dynamoConn struct {
	client *dynamodb.DynamoDB
}

// Ping issues the cheapest call that proves the endpoint answers.
func (c *dynamoConn) Ping(ctx context.Context) error {
	_, err := c.client.ListTablesWithContext(ctx, &dynamodb.ListTablesInput{
		Limit: aws.Int64(1),
	})
	return err
}

// Close is a no-op; the SDK client holds no resources of its own.
func (c *dynamoConn) Close() error { return nil }

func (c *dynamoConn) NativeConnection() any { return c.client }

// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finance-tracker/expense-tracker/config"
	infradb "github.com/finance-tracker/expense-tracker/internal/infra/db"
	"github.com/finance-tracker/expense-tracker/internal/infra/dependency"
	"github.com/finance-tracker/expense-tracker/test/integration/mock"
)

// testContext holds the state of one scenario.
type testContext struct {
	uri      string
	client   *http.Client
	headers  map[string]string
	response *response

	db       *mock.Db
	apiMock  *mock.ApiMock
	injector *dependency.Injector

	currentCategoryID uuid.UUID
	lastExpenseID     uuid.UUID
}

type response struct {
	status  int
	headers http.Header
	body    any
}

var (
	suiteOnce   sync.Once
	testServer  *httptest.Server
	testInj     *dependency.Injector
	testDB      *mock.Db
	testAPIMock *mock.ApiMock
)

// startSuite builds one application instance shared by every scenario.
// Outbound e-mail goes to the API mock; rate limiting counts in miniredis.
func startSuite() {
	suiteOnce.Do(func() {
		gin.SetMode(gin.TestMode)

		testAPIMock = mock.NewApiServer()
		testAPIMock.Start()

		_ = os.Setenv("ENV", "integration")
		_ = os.Setenv("RESEND_API_KEY", "re_integration")
		_ = os.Setenv("RESEND_BASE_URL", testAPIMock.GetUrl())
		_ = os.Setenv("RESEND_FROM_EMAIL", "reports@expense-tracker.test")
		_ = os.Setenv("GEMINI_API_KEY", "")
		_ = os.Setenv("REPORT_RECIPIENT_EMAIL", "")
		_ = os.Setenv("RATE_LIMIT_MAX_REQUESTS", "20")
		_ = os.Setenv("RATE_LIMIT_WINDOW", "1m")

		testDB = mock.NewDb(infradb.Models()...)

		cfg := config.Load()
		inj, err := dependency.NewInjector(cfg, testDB.DbConn, mock.NewRedis())
		if err != nil {
			panic(fmt.Sprintf("failed to wire application: %v", err))
		}
		testInj = inj
		testServer = httptest.NewServer(inj.Router.Setup("test"))
	})
}

// InitializeTestSuite releases shared resources after the run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.AfterSuite(func() {
		if testServer != nil {
			testServer.Close()
		}
		if testAPIMock != nil {
			testAPIMock.Close()
		}
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	startSuite()

	test := &testContext{
		uri:      testServer.URL,
		client:   &http.Client{Timeout: 10 * time.Second},
		db:       testDB,
		apiMock:  testAPIMock,
		injector: testInj,
	}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, test.before()
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// Data setup steps
	ctx.Given(`^the predefined categories exist$`, test.thePredefinedCategoriesExist)
	ctx.Given(`^a category exists with name "([^"]*)" and color "([^"]*)"$`, test.aCategoryExistsWithNameAndColor)
	ctx.Given(`^the following expenses exist:$`, test.theFollowingExpensesExist)
	ctx.Given(`^an expense of "([^"]*)" on "([^"]*)" references a missing category$`, test.anExpenseReferencesAMissingCategory)
	ctx.Given(`^the income for (\d+)/(\d+) is "([^"]*)"$`, test.theIncomeIs)

	// External service steps
	ctx.Given(`^the email provider accepts messages$`, test.theEmailProviderAcceptsMessages)
	ctx.Given(`^the email provider fails with status (\d+)$`, test.theEmailProviderFailsWithStatus)
	ctx.When(`^the email worker processes the queue$`, test.theEmailWorkerProcessesTheQueue)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)
	ctx.When(`^I send (\d+) "([^"]*)" requests to "([^"]*)" with body:$`, test.iSendRequestsToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Then(`^the response field "([^"]*)" should be null$`, test.theResponseFieldShouldBeNull)
	ctx.Then(`^the response field "([^"]*)" should have (\d+) items?$`, test.theResponseFieldShouldHaveItems)
	ctx.Then(`^the response header "([^"]*)" should be "([^"]*)"$`, test.theResponseHeaderShouldBe)
	ctx.Then(`^the response header "([^"]*)" should contain "([^"]*)"$`, test.theResponseHeaderShouldContain)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)

	// External service assertion steps
	ctx.Then(`^the email provider should have received (\d+) messages?$`, test.theEmailProviderShouldHaveReceivedMessages)
	ctx.Then(`^the email provider message (\d+) field "([^"]*)" should be "([^"]*)"$`, test.theEmailProviderMessageFieldShouldBe)
	ctx.Then(`^the rate limit counter should be stored in redis$`, test.theRateLimitCounterShouldBeStoredInRedis)
}

func (t *testContext) before() error {
	t.headers = make(map[string]string)
	t.response = nil
	t.currentCategoryID = uuid.Nil
	t.lastExpenseID = uuid.Nil

	t.apiMock.Reset()
	if err := mock.ClearRedis(mock.NewRedis()); err != nil {
		return err
	}
	return t.db.ClearDB()
}

func (t *testContext) theAPIServerIsRunning() error {
	resp, err := t.client.Get(t.uri + "/health")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check answered %d", resp.StatusCode)
	}
	return nil
}

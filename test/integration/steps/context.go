// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/budget-control/backend/config"
	"github.com/budget-control/backend/internal/infra/dependency"
	"github.com/budget-control/backend/internal/integration/persistence/model"
	"github.com/budget-control/backend/test/integration/mock"
)

// Login attempts allowed per client and window in every scenario.
const (
	loginMaxAttempts = 3
	loginWindow      = time.Minute
)

type testContext struct {
	uri      string
	headers  map[string]string
	client   *http.Client
	response *response
	db       *mock.Db

	lastID  uuid.UUID
	userID  uuid.UUID
	groupID uuid.UUID
}

type response struct {
	status  int
	headers http.Header
	body    any
}

var (
	serverInit sync.Once
	server     *httptest.Server
	serverErr  error
)

// InitializeTestSuite sets up resources shared by every scenario.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})

	ctx.AfterSuite(func() {
		if server != nil {
			server.Close()
		}
	})
}

// InitializeScenario resets the state and registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	test := &testContext{
		client: &http.Client{Timeout: 10 * time.Second},
		db:     mock.NewDb(mock.ModelsByTable(model.All()...)),
	}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, test.before()
	})

	// Background steps
	ctx.Step(`^the API server is running$`, test.theAPIServerIsRunning)

	// Data setup steps
	ctx.Step(`^a user exists with email "([^"]*)" and password "([^"]*)"$`, test.aUserExistsWithEmailAndPassword)

	// Header steps
	ctx.Step(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Step(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Step(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Step(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Step(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Step(`^the response header "([^"]*)" should be "([^"]*)"$`, test.theResponseHeaderShouldBe)
	ctx.Step(`^the response should be a list of (\d+) items$`, test.theResponseShouldBeAListOfItems)

	// Database assertion steps
	ctx.Step(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Step(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
}

func (t *testContext) before() error {
	t.headers = make(map[string]string)
	t.response = nil
	t.lastID = uuid.Nil
	t.userID = uuid.Nil
	t.groupID = uuid.Nil

	if err := t.db.ClearDB(); err != nil {
		return err
	}
	return mock.ClearRedis(mock.NewRedis())
}

func (t *testContext) startServer() error {
	serverInit.Do(func() {
		cfg := &config.Config{
			Server: config.ServerConfig{Environment: "test"},
			RateLimit: config.RateLimitConfig{
				MaxAttempts: loginMaxAttempts,
				Window:      loginWindow,
			},
			Security: config.SecurityConfig{BcryptCost: bcrypt.MinCost},
		}

		injector := dependency.NewInjector(context.Background(), cfg, t.db.DbConn, mock.NewRedis(), func() bool {
			return t.db.DbConn != nil
		})

		engine, err := injector.Router.Setup(cfg.Server.Environment)
		if err != nil {
			serverErr = err
			return
		}
		server = httptest.NewServer(engine)
	})
	if serverErr != nil {
		return serverErr
	}

	t.uri = server.URL
	return nil
}

// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/finapple/backend/config"
	"github.com/finapple/backend/internal/infra/cache"
	"github.com/finapple/backend/internal/infra/dependency"
	"github.com/finapple/backend/internal/integration/persistence/model"
	"github.com/finapple/backend/test/integration/mock"
)

const (
	testJWTSecret     = "test-jwt-secret-key-for-testing-purposes"
	testOwnerEmail    = "owner@finapple.test"
	testOwnerPassword = "correct-horse-battery"
)

// TestContext holds the test state for each scenario.
type TestContext struct {
	// HTTP
	server       *httptest.Server
	response     *http.Response
	responseBody []byte

	// Request building
	requestHeaders map[string]string

	// Auth
	accessToken  string
	refreshToken string

	// Storage
	db    *mock.Db
	redis *cache.Client

	cfg *config.Config
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
		mock.NewDb(model.AllModels()...)
		mock.NewRedis()
	})

	ctx.AfterSuite(func() {
		mock.NewRedis().Close()
	})
}

func testConfig() *config.Config {
	cfg := config.Load()
	cfg.Server.Environment = "test"
	cfg.JWT.Secret = testJWTSecret
	cfg.Owner = config.OwnerConfig{
		ID:         "owner",
		Email:      testOwnerEmail,
		Name:       "Test Owner",
		Password:   testOwnerPassword,
		BcryptCost: bcrypt.MinCost,
	}
	cfg.Redis.URL = mock.RedisURL()
	cfg.Email.ResendAPIKey = ""
	cfg.Advisor.GeminiAPIKey = ""
	cfg.SeedDemoData = false
	return cfg
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc := &TestContext{
			requestHeaders: make(map[string]string),
			cfg:            testConfig(),
			db:             mock.NewDb(model.AllModels()...),
		}

		if err := tc.db.ClearDB(); err != nil {
			return ctx, err
		}
		mock.ClearRedis()

		redisClient, err := cache.NewRedisConnection(&tc.cfg.Redis)
		if err != nil {
			return ctx, fmt.Errorf("failed to connect to test redis: %w", err)
		}
		tc.redis = redisClient

		injector, err := dependency.NewInjector(tc.cfg, tc.db.DbConn, redisClient)
		if err != nil {
			return ctx, fmt.Errorf("failed to wire dependencies: %w", err)
		}
		tc.server = httptest.NewServer(injector.Router.Setup(tc.cfg.Server.Environment))

		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		tc := GetTestContext(ctx)
		if tc == nil {
			return ctx, nil
		}
		if tc.server != nil {
			tc.server.Close()
		}
		if tc.redis != nil {
			_ = tc.redis.Close()
		}
		return ctx, nil
	})

	registerAPISteps(ctx)
	registerResponseSteps(ctx)
	registerStorageSteps(ctx)
}

// registerAPISteps registers HTTP request steps.
func registerAPISteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the API server is running$`, theAPIServerIsRunning)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, iSendARequestToWithBody)
	ctx.Step(`^I set header "([^"]*)" to "([^"]*)"$`, iSetHeaderTo)
	ctx.Step(`^I am authenticated$`, iAmAuthenticated)
	ctx.Step(`^I log in with email "([^"]*)" and password "([^"]*)"$`, iLogInWith)
	ctx.Step(`^I refresh my session$`, iRefreshMySession)
	ctx.Step(`^I log out$`, iLogOut)
}

// registerResponseSteps registers response validation steps.
func registerResponseSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the response status should be (\d+)$`, theResponseStatusShouldBe)
	ctx.Step(`^the response should be JSON$`, theResponseShouldBeJSON)
	ctx.Step(`^the response should contain "([^"]*)"$`, theResponseShouldContain)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, theResponseFieldShouldExist)
	ctx.Step(`^the response field "([^"]*)" should have (\d+) items?$`, theResponseFieldShouldHaveItems)
	ctx.Step(`^the response should match json:$`, theResponseShouldMatchJSON)
}

// registerStorageSteps registers database assertions.
func registerStorageSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the db should contain (\d+) rows? in the "([^"]*)" table$`, theDbShouldContainRowsInTheTable)
}

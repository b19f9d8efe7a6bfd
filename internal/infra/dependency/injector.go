// Package dependency provides dependency injection for the application.
package dependency

import (
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"github.com/finapple/backend/config"
	"github.com/finapple/backend/internal/application/adapter"
	"github.com/finapple/backend/internal/application/usecase/advice"
	"github.com/finapple/backend/internal/application/usecase/auth"
	"github.com/finapple/backend/internal/application/usecase/budget"
	"github.com/finapple/backend/internal/application/usecase/dashboard"
	"github.com/finapple/backend/internal/application/usecase/envelope"
	"github.com/finapple/backend/internal/application/usecase/investment"
	"github.com/finapple/backend/internal/application/usecase/seed"
	"github.com/finapple/backend/internal/application/usecase/settings"
	"github.com/finapple/backend/internal/application/usecase/transaction"
	"github.com/finapple/backend/internal/application/usecase/wallet"
	"github.com/finapple/backend/internal/infra/cache"
	"github.com/finapple/backend/internal/infra/server/router"
	"github.com/finapple/backend/internal/integration/adapters"
	"github.com/finapple/backend/internal/integration/email"
	"github.com/finapple/backend/internal/integration/email/templates"
	"github.com/finapple/backend/internal/integration/entrypoint/controller"
	"github.com/finapple/backend/internal/integration/entrypoint/middleware"
	"github.com/finapple/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config       *config.Config
	DB           *gorm.DB
	Router       *router.Router
	SnapshotRepo adapter.SnapshotRepository
	TokenRepo    persistence.TokenRepository
	// EmailWorker is nil when no email provider is configured.
	EmailWorker *email.Worker
	Seed        *seed.SeedDemoDataUseCase
}

// NewInjector creates a new dependency injector with all dependencies wired.
// redisClient may be nil, in which case login attempts are counted in memory.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *cache.Client) (*Injector, error) {
	// Create repositories
	snapshotRepo := persistence.NewSnapshotRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	emailQueueRepo := persistence.NewEmailQueueRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService(cfg.Owner.BcryptCost)
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)

	owner, err := resolveOwner(cfg.Owner, passwordService)
	if err != nil {
		return nil, err
	}

	var (
		emailService adapter.EmailService
		emailWorker  *email.Worker
	)
	if cfg.Email.ResendAPIKey != "" && owner.Email != "" {
		renderer, err := templates.NewRenderer()
		if err != nil {
			return nil, fmt.Errorf("failed to load email templates: %w", err)
		}
		emailService = email.NewService(emailQueueRepo, email.Recipient{Email: owner.Email, Name: owner.Name}, cfg.Email.AppBaseURL)
		if cfg.Email.WorkerEnabled {
			sender := email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
			emailWorker = email.NewWorker(emailQueueRepo, sender, renderer, email.WorkerConfig{
				PollInterval:    cfg.Email.PollInterval,
				BatchSize:       cfg.Email.BatchSize,
				CleanupInterval: cfg.Email.CleanupInterval,
				RetentionDays:   cfg.Email.RetentionDays,
			})
		}
	} else {
		slog.Info("Budget alert emails disabled", "reason", "RESEND_API_KEY or OWNER_EMAIL not set")
	}

	var remoteAdvisor adapter.Advisor
	if cfg.Advisor.GeminiAPIKey != "" {
		remoteAdvisor = adapters.NewGeminiAdvisor(cfg.Advisor.GeminiAPIKey, cfg.Advisor.Model)
	}

	// Create auth use cases
	loginUseCase := auth.NewLoginUserUseCase(owner, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)

	// Create controllers
	controllers := router.Controllers{
		Health: newHealthController(snapshotRepo, redisClient),
		Auth:   controller.NewAuthController(loginUseCase, refreshTokenUseCase, logoutUseCase),
		Wallet: controller.NewWalletController(
			wallet.NewListWalletsUseCase(snapshotRepo),
			wallet.NewCreateWalletUseCase(snapshotRepo),
			wallet.NewUpdateWalletUseCase(snapshotRepo),
			wallet.NewDeleteWalletUseCase(snapshotRepo),
		),
		Budget: controller.NewBudgetController(
			budget.NewListBudgetsUseCase(snapshotRepo),
			budget.NewCreateBudgetUseCase(snapshotRepo),
			budget.NewUpdateBudgetUseCase(snapshotRepo),
			budget.NewDeleteBudgetUseCase(snapshotRepo),
		),
		Envelope: controller.NewEnvelopeController(
			envelope.NewListEnvelopesUseCase(snapshotRepo),
			envelope.NewGetEnvelopeUseCase(snapshotRepo),
			envelope.NewCreateEnvelopeUseCase(snapshotRepo),
			envelope.NewUpdateEnvelopeUseCase(snapshotRepo),
			envelope.NewDeleteEnvelopeUseCase(snapshotRepo),
		),
		Investment: controller.NewInvestmentController(
			investment.NewListInvestmentsUseCase(snapshotRepo),
			investment.NewCreateInvestmentUseCase(snapshotRepo),
			investment.NewUpdateInvestmentUseCase(snapshotRepo),
			investment.NewDeleteInvestmentUseCase(snapshotRepo),
			investment.NewGetPayoutsUseCase(snapshotRepo),
			investment.NewGetPortfolioUseCase(snapshotRepo),
			investment.NewGetTypeDetailsUseCase(snapshotRepo),
		),
		Transaction: controller.NewTransactionController(
			transaction.NewListTransactionsUseCase(snapshotRepo),
			transaction.NewCreateTransactionUseCase(snapshotRepo, emailService),
			transaction.NewUpdateTransactionUseCase(snapshotRepo, emailService),
			transaction.NewDeleteTransactionUseCase(snapshotRepo),
		),
		Settings: controller.NewSettingsController(
			settings.NewGetSettingsUseCase(snapshotRepo),
			settings.NewUpdateSettingsUseCase(snapshotRepo),
			settings.NewChangeCategoryUseCase(snapshotRepo),
			settings.NewChangeCurrencyUseCase(snapshotRepo),
		),
		Dashboard: controller.NewDashboardController(
			dashboard.NewGetDashboardUseCase(snapshotRepo),
			advice.NewGetAdviceUseCase(snapshotRepo, remoteAdvisor, adapters.NewLocalAdvisor(), cfg.Advisor.Timeout),
		),
	}

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	maxAttempts := 5
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		maxAttempts = 1000
	}
	var store middleware.RateLimitStore = middleware.NewMemoryRateLimitStore()
	if redisClient != nil {
		store = middleware.NewRedisRateLimitStore(redisClient.Redis())
	}
	loginRateLimiter := middleware.NewRateLimiterWithStore(store, maxAttempts, time.Minute)
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	return &Injector{
		Config:       cfg,
		DB:           db,
		Router:       router.NewRouter(controllers, loginRateLimiter, authMiddleware),
		SnapshotRepo: snapshotRepo,
		TokenRepo:    tokenRepo,
		EmailWorker:  emailWorker,
		Seed:         seed.NewSeedDemoDataUseCase(snapshotRepo),
	}, nil
}

// resolveOwner builds the owner account, hashing a plain password when no hash is configured.
func resolveOwner(cfg config.OwnerConfig, passwordService adapter.PasswordService) (auth.Owner, error) {
	owner := auth.Owner{
		ID:           cfg.ID,
		Email:        cfg.Email,
		Name:         cfg.Name,
		PasswordHash: cfg.PasswordHash,
	}
	if owner.PasswordHash == "" && cfg.Password != "" {
		hash, err := passwordService.HashPassword(cfg.Password)
		if err != nil {
			return auth.Owner{}, fmt.Errorf("failed to hash owner password: %w", err)
		}
		owner.PasswordHash = hash
	}
	if !owner.IsConfigured() {
		slog.Warn("Owner account is not configured, login is disabled")
	}
	return owner, nil
}

func newHealthController(store controller.Pinger, redisClient *cache.Client) *controller.HealthController {
	if redisClient == nil {
		return controller.NewHealthController(store, nil)
	}
	return controller.NewHealthController(store, redisClient)
}

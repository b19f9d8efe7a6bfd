package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/finapple/backend/internal/application/adapter"
	"github.com/finapple/backend/internal/application/usecase/advice"
	"github.com/finapple/backend/internal/application/usecase/auth"
	"github.com/finapple/backend/internal/application/usecase/dashboard"
	"github.com/finapple/backend/internal/application/usecase/investment"
	"github.com/finapple/backend/internal/application/usecase/seed"
	"github.com/finapple/backend/internal/application/usecase/settings"
	"github.com/finapple/backend/internal/application/usecase/transaction"
	"github.com/finapple/backend/internal/application/usecase/wallet"
	"github.com/finapple/backend/internal/integration/adapters"
	"github.com/finapple/backend/internal/integration/entrypoint/dto"
	"github.com/finapple/backend/internal/integration/persistence"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestEngine(t *testing.T) (*gin.Engine, adapter.SnapshotRepository) {
	t.Helper()
	repo := persistence.NewMemorySnapshotRepository(seed.DemoSnapshot())

	wallets := NewWalletController(
		wallet.NewListWalletsUseCase(repo),
		wallet.NewCreateWalletUseCase(repo),
		wallet.NewUpdateWalletUseCase(repo),
		wallet.NewDeleteWalletUseCase(repo),
	)
	transactions := NewTransactionController(
		transaction.NewListTransactionsUseCase(repo),
		transaction.NewCreateTransactionUseCase(repo, nil),
		transaction.NewUpdateTransactionUseCase(repo, nil),
		transaction.NewDeleteTransactionUseCase(repo),
	)
	investments := NewInvestmentController(
		investment.NewListInvestmentsUseCase(repo),
		investment.NewCreateInvestmentUseCase(repo),
		investment.NewUpdateInvestmentUseCase(repo),
		investment.NewDeleteInvestmentUseCase(repo),
		investment.NewGetPayoutsUseCase(repo),
		investment.NewGetPortfolioUseCase(repo),
		investment.NewGetTypeDetailsUseCase(repo),
	)
	settingsController := NewSettingsController(
		settings.NewGetSettingsUseCase(repo),
		settings.NewUpdateSettingsUseCase(repo),
		settings.NewChangeCategoryUseCase(repo),
		settings.NewChangeCurrencyUseCase(repo),
	)
	dashboardController := NewDashboardController(
		dashboard.NewGetDashboardUseCase(repo),
		advice.NewGetAdviceUseCase(repo, nil, adapters.NewLocalAdvisor(), 0),
	)
	authController := NewAuthController(
		auth.NewLoginUserUseCase(auth.Owner{}, nil, nil),
		auth.NewRefreshTokenUseCase(nil),
		auth.NewLogoutUserUseCase(nil),
	)

	engine := gin.New()
	engine.GET("/health", NewHealthController(repo, nil).Check)
	engine.POST("/auth/login", authController.Login)
	engine.POST("/auth/logout", authController.Logout)
	engine.GET("/wallets", wallets.List)
	engine.POST("/wallets", wallets.Create)
	engine.DELETE("/wallets/:id", wallets.Delete)
	engine.GET("/transactions", transactions.List)
	engine.POST("/transactions", transactions.Create)
	engine.PUT("/transactions/:id", transactions.Update)
	engine.DELETE("/transactions/:id", transactions.Delete)
	engine.POST("/investments", investments.Create)
	engine.GET("/investments/payouts", investments.Payouts)
	engine.GET("/investments/portfolio", investments.Portfolio)
	engine.GET("/investments/types/:type", investments.TypeDetails)
	engine.PATCH("/settings", settingsController.Update)
	engine.POST("/settings/categories/:kind", settingsController.AddCategory)
	engine.POST("/settings/currencies", settingsController.AddCurrency)
	engine.GET("/dashboard", dashboardController.Get)
	engine.GET("/advice", dashboardController.Advice)
	return engine, repo
}

func do(engine *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("failed to decode %q: %v", w.Body.String(), err)
	}
	return out
}

func TestTransactionController(t *testing.T) {
	engine, _ := newTestEngine(t)

	t.Run("create applies the ledger", func(t *testing.T) {
		w := do(engine, http.MethodPost, "/transactions",
			`{"id":"t9","type":"EXPENSE","amount":"500","currency":"UAH","wallet_id":"1","budget_id":"b1","category":"Food","date":"2024-03-25"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		resp := decode[dto.TransactionMutationResponse](t, w)
		if resp.Transaction.Date != "2024-03-25" || len(resp.Warnings) != 0 {
			t.Errorf("unexpected response: %+v", resp)
		}

		wallets := decode[dto.WalletListResponse](t, do(engine, http.MethodGet, "/wallets", ""))
		for _, wl := range wallets.Wallets {
			if wl.ID == "1" && !wl.Balance.Equal(decimal.NewFromInt(49500)) {
				t.Errorf("expected wallet 1 at 49500, got %s", wl.Balance)
			}
		}
	})

	t.Run("unknown wallet becomes a warning", func(t *testing.T) {
		w := do(engine, http.MethodPost, "/transactions",
			`{"type":"INCOME","amount":"100","currency":"UAH","wallet_id":"ghost","category":"Gift"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		resp := decode[dto.TransactionMutationResponse](t, w)
		if len(resp.Warnings) != 1 || resp.Warnings[0].ID != "ghost" {
			t.Errorf("expected one warning for ghost, got %+v", resp.Warnings)
		}
	})

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		status int
		code   string
	}{
		{"invalid type", http.MethodPost, "/transactions", `{"type":"GIFT","amount":"1","wallet_id":"1"}`, http.StatusBadRequest, "LDG-010001"},
		{"invalid date", http.MethodPost, "/transactions", `{"type":"EXPENSE","amount":"1","wallet_id":"1","date":"25/03/2024"}`, http.StatusBadRequest, "LDG-010002"},
		{"missing wallet", http.MethodPost, "/transactions", `{"type":"EXPENSE","amount":"1"}`, http.StatusBadRequest, "LDG-010004"},
		{"duplicate id", http.MethodPost, "/transactions", `{"id":"t1","type":"EXPENSE","amount":"1","wallet_id":"1"}`, http.StatusConflict, "LDG-030001"},
		{"update unknown", http.MethodPut, "/transactions/nope", `{"type":"EXPENSE","amount":"1","wallet_id":"1"}`, http.StatusNotFound, "LDG-020001"},
		{"missing type", http.MethodPost, "/transactions", `{"amount":"1"}`, http.StatusBadRequest, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(engine, tt.method, tt.path, tt.body)
			if w.Code != tt.status {
				t.Fatalf("expected %d, got %d: %s", tt.status, w.Code, w.Body.String())
			}
			if resp := decode[dto.ErrorResponse](t, w); resp.Code != tt.code {
				t.Errorf("expected code %q, got %q", tt.code, resp.Code)
			}
		})
	}

	t.Run("delete unknown is a no-op", func(t *testing.T) {
		w := do(engine, http.MethodDelete, "/transactions/nope", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if decode[dto.TransactionDeleteResponse](t, w).Deleted {
			t.Error("expected deleted=false")
		}
	})

	t.Run("list filters and limits", func(t *testing.T) {
		w := do(engine, http.MethodGet, "/transactions?type=EXPENSE&limit=1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		resp := decode[dto.TransactionListResponse](t, w)
		if len(resp.Transactions) != 1 || resp.Total < 2 {
			t.Errorf("unexpected list: %+v", resp)
		}
		for _, tx := range resp.Transactions {
			if tx.Type != "EXPENSE" {
				t.Errorf("unexpected type %s", tx.Type)
			}
		}

		if w := do(engine, http.MethodGet, "/transactions?limit=-1", ""); w.Code != http.StatusBadRequest {
			t.Errorf("expected 400 for a negative limit, got %d", w.Code)
		}
	})
}

func TestWalletController(t *testing.T) {
	engine, _ := newTestEngine(t)

	w := do(engine, http.MethodPost, "/wallets", `{"id":"1","name":"Again","balance":"0","currency":"UAH"}`)
	if w.Code != http.StatusConflict {
		t.Errorf("expected 409 for a duplicate id, got %d", w.Code)
	}

	w = do(engine, http.MethodPost, "/wallets", `{"name":"Savings","balance":"10","currency":"$"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if created := decode[dto.WalletResponse](t, w); created.Currency != "USD" || created.ID == "" {
		t.Errorf("unexpected wallet: %+v", created)
	}

	w = do(engine, http.MethodDelete, "/wallets/nope", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
	if resp := decode[dto.ErrorResponse](t, w); resp.Code != "LDG-020002" {
		t.Errorf("unexpected code %q", resp.Code)
	}

	if w := do(engine, http.MethodDelete, "/wallets/3", ""); w.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", w.Code)
	}
}

func TestInvestmentController(t *testing.T) {
	engine, _ := newTestEngine(t)

	w := do(engine, http.MethodPost, "/investments",
		`{"id":"gold","type":"Gold","name":"Bar","amount":"1000","currency":"USD","purchase_date":"2024-01-01","term_date":"soon","payout_frequency":"annual"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for a bad term date, got %d", w.Code)
	}

	w = do(engine, http.MethodPost, "/investments",
		`{"id":"gold","type":"Gold","name":"Bar","amount":"1000","currency":"USD","purchase_date":"2024-01-01","term_date":"perpetual","interest_rate":"0","payout_frequency":"end-of-term"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if inv := decode[dto.InvestmentResponse](t, w); inv.TermDate != "perpetual" || inv.InterestType != "simple" {
		t.Errorf("unexpected investment: %+v", inv)
	}

	w = do(engine, http.MethodPost, "/investments",
		`{"type":"Gold","name":"Coin","currency":"USD","purchase_date":"2024-01-01","payout_frequency":"monthly"}`)
	if resp := decode[dto.ErrorResponse](t, w); w.Code != http.StatusBadRequest || resp.Code != "INV-010001" {
		t.Errorf("expected INV-010001, got %d %q", w.Code, resp.Code)
	}

	payouts := decode[dto.PayoutListResponse](t, do(engine, http.MethodGet, "/investments/payouts?limit=2", ""))
	if len(payouts.Payouts) != 2 || payouts.Payouts[0].Date > payouts.Payouts[1].Date {
		t.Errorf("expected two ascending payouts, got %+v", payouts.Payouts)
	}

	portfolio := decode[dto.PortfolioResponse](t, do(engine, http.MethodGet, "/investments/portfolio", ""))
	sum := decimal.Zero
	for _, g := range portfolio.Groups {
		sum = sum.Add(g.USDValue)
	}
	if !portfolio.TotalUSD.Sub(sum).Abs().LessThan(decimal.NewFromFloat(0.05)) {
		t.Errorf("expected group values to add up to %s, got %s", portfolio.TotalUSD, sum)
	}

	details := decode[dto.TypeDetailsResponse](t, do(engine, http.MethodGet, "/investments/types/Gold", ""))
	if len(details.Investments) != 1 || len(details.Payouts) != 0 {
		t.Errorf("unexpected Gold details: %+v", details)
	}
}

func TestSettingsController(t *testing.T) {
	engine, _ := newTestEngine(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		status int
		code   string
	}{
		{"invalid theme", http.MethodPatch, "/settings", `{"theme":"sepia"}`, http.StatusBadRequest, "SET-010003"},
		{"unknown kind", http.MethodPost, "/settings/categories/savings", `{"name":"x"}`, http.StatusBadRequest, "SET-010002"},
		{"blank name", http.MethodPost, "/settings/categories/expense", `{"name":"   "}`, http.StatusBadRequest, "SET-010001"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(engine, tt.method, tt.path, tt.body)
			if w.Code != tt.status {
				t.Fatalf("expected %d, got %d: %s", tt.status, w.Code, w.Body.String())
			}
			if resp := decode[dto.ErrorResponse](t, w); resp.Code != tt.code {
				t.Errorf("expected code %q, got %q", tt.code, resp.Code)
			}
		})
	}

	w := do(engine, http.MethodPatch, "/settings", `{"theme":"dark","language":"ua"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if s := decode[dto.SettingsResponse](t, w); s.Theme != "dark" || s.Language != "ua" || len(s.AccentColors) == 0 {
		t.Errorf("unexpected settings: %+v", s)
	}

	s := decode[dto.SettingsResponse](t, do(engine, http.MethodPost, "/settings/currencies", `{"code":"PLN"}`))
	if s.Currencies[len(s.Currencies)-1] != "PLN" {
		t.Errorf("expected PLN appended, got %v", s.Currencies)
	}
}

func TestDashboardAndHealth(t *testing.T) {
	engine, _ := newTestEngine(t)

	w := do(engine, http.MethodGet, "/dashboard", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if d := decode[dto.DashboardResponse](t, w); !d.USDHoldings.Equal(decimal.NewFromInt(1200)) || len(d.RecentTransactions) == 0 {
		t.Errorf("unexpected dashboard: %+v", d)
	}

	if a := decode[dto.AdviceResponse](t, do(engine, http.MethodGet, "/advice", "")); a.Source != advice.SourceLocal || a.Tip == "" {
		t.Errorf("expected a local tip, got %+v", a)
	}

	if h := decode[HealthResponse](t, do(engine, http.MethodGet, "/health", "")); h.Database != "connected" {
		t.Errorf("expected connected store, got %+v", h)
	}
}

func TestAuthController(t *testing.T) {
	engine, _ := newTestEngine(t)

	w := do(engine, http.MethodPost, "/auth/login", `{"email":"not-an-email"}`)
	if resp := decode[dto.ErrorResponse](t, w); w.Code != http.StatusBadRequest || resp.Code != "AUTH-020004" {
		t.Errorf("expected 400 AUTH-020004, got %d %q", w.Code, resp.Code)
	}

	w = do(engine, http.MethodPost, "/auth/login", `{"email":"owner@finapple.app","password":"secret"}`)
	if resp := decode[dto.ErrorResponse](t, w); w.Code != http.StatusServiceUnavailable || resp.Code != "AUTH-020002" {
		t.Errorf("expected 503 AUTH-020002, got %d %q", w.Code, resp.Code)
	}

	if w := do(engine, http.MethodPost, "/auth/logout", ""); w.Code != http.StatusOK {
		t.Errorf("expected logout to succeed, got %d", w.Code)
	}
}

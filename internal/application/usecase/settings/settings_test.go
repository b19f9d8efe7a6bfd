package settings

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/finapple/backend/internal/domain/entity"
	domainerror "github.com/finapple/backend/internal/domain/error"
	"github.com/finapple/backend/internal/integration/persistence"
)

func TestChangeCategoryUseCase(t *testing.T) {
	ctx := context.Background()
	repo := persistence.NewMemorySnapshotRepository(nil)
	uc := NewChangeCategoryUseCase(repo)

	out, err := uc.Execute(ctx, ChangeCategoryInput{Action: ActionAdd, Kind: entity.CategoryKindExpense, Name: "Pets"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Contains(out.Settings.Categories.Expense, "Pets") {
		t.Errorf("expected Pets in %v", out.Settings.Categories.Expense)
	}

	again, err := uc.Execute(ctx, ChangeCategoryInput{Action: ActionAdd, Kind: entity.CategoryKindExpense, Name: "Pets"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(again.Settings.Categories.Expense) != len(out.Settings.Categories.Expense) {
		t.Error("expected adding a duplicate to be a no-op")
	}

	removed, err := uc.Execute(ctx, ChangeCategoryInput{Action: ActionRemove, Kind: entity.CategoryKindExpense, Name: "Food"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if slices.Contains(removed.Settings.Categories.Expense, "Food") {
		t.Error("expected Food to be removed")
	}

	tests := []struct {
		name     string
		input    ChangeCategoryInput
		expected domainerror.SettingsErrorCode
	}{
		{"blank name", ChangeCategoryInput{Action: ActionAdd, Kind: entity.CategoryKindIncome, Name: "  "}, domainerror.ErrCodeBlankSettingsItem},
		{"unknown kind", ChangeCategoryInput{Action: ActionAdd, Kind: "savings", Name: "x"}, domainerror.ErrCodeUnknownCategoryKind},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(ctx, tt.input)
			var settingsErr *domainerror.SettingsError
			if !errors.As(err, &settingsErr) {
				t.Fatalf("expected SettingsError, got %v", err)
			}
			if settingsErr.Code != tt.expected {
				t.Errorf("expected code %s, got %s", tt.expected, settingsErr.Code)
			}
		})
	}
}

func TestChangeCurrencyUseCase(t *testing.T) {
	ctx := context.Background()
	repo := persistence.NewMemorySnapshotRepository(nil)
	uc := NewChangeCurrencyUseCase(repo)

	out, err := uc.Execute(ctx, ChangeCurrencyInput{Action: ActionAdd, Code: "PLN"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Equal(out.Settings.Currencies, []string{"UAH", "USD", "EUR", "PLN"}) {
		t.Errorf("unexpected currencies: %v", out.Settings.Currencies)
	}

	out, err = uc.Execute(ctx, ChangeCurrencyInput{Action: ActionRemove, Code: "€"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if slices.Contains(out.Settings.Currencies, "EUR") {
		t.Error("expected EUR to be removed by its symbol")
	}

	if _, err := uc.Execute(ctx, ChangeCurrencyInput{Action: ActionAdd, Code: ""}); !errors.Is(err, domainerror.ErrBlankSettingsItem) {
		t.Errorf("expected ErrBlankSettingsItem, got %v", err)
	}
}

func TestUpdateSettingsUseCase(t *testing.T) {
	ctx := context.Background()
	repo := persistence.NewMemorySnapshotRepository(nil)
	uc := NewUpdateSettingsUseCase(repo)

	dark := entity.ThemeDark
	color := entity.AccentColors[2]
	out, err := uc.Execute(ctx, UpdateSettingsInput{Theme: &dark, AccentColor: &color})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Settings.Theme != entity.ThemeDark || out.Settings.AccentColor != color {
		t.Errorf("unexpected settings: %+v", out.Settings)
	}
	if out.Settings.Language != entity.LanguageEnglish {
		t.Errorf("expected language untouched, got %s", out.Settings.Language)
	}

	got, err := NewGetSettingsUseCase(repo).Execute(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Settings.Theme != entity.ThemeDark || len(got.AccentColors) != len(entity.AccentColors) {
		t.Errorf("unexpected read back: %+v", got)
	}

	t.Run("invalid values", func(t *testing.T) {
		sepia := entity.Theme("sepia")
		if _, err := uc.Execute(ctx, UpdateSettingsInput{Theme: &sepia}); !errors.Is(err, domainerror.ErrInvalidTheme) {
			t.Errorf("expected ErrInvalidTheme, got %v", err)
		}
		fr := entity.Language("fr")
		if _, err := uc.Execute(ctx, UpdateSettingsInput{Language: &fr}); !errors.Is(err, domainerror.ErrInvalidLanguage) {
			t.Errorf("expected ErrInvalidLanguage, got %v", err)
		}
	})
}

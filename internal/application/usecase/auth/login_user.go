package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/finapple/backend/internal/application/adapter"
	domainerror "github.com/finapple/backend/internal/domain/error"
)

// LoginUserInput represents the input for owner login.
type LoginUserInput struct {
	Email      string
	Password   string
	RememberMe bool
}

// LoginUserOutput represents the output of owner login.
type LoginUserOutput struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
	Owner        Owner
}

// LoginUserUseCase handles owner login logic.
type LoginUserUseCase struct {
	owner           Owner
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
}

// NewLoginUserUseCase creates a new LoginUserUseCase instance.
func NewLoginUserUseCase(
	owner Owner,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
) *LoginUserUseCase {
	return &LoginUserUseCase{
		owner:           owner,
		passwordService: passwordService,
		tokenService:    tokenService,
	}
}

// Execute performs the owner login.
func (uc *LoginUserUseCase) Execute(ctx context.Context, input LoginUserInput) (*LoginUserOutput, error) {
	if !uc.owner.IsConfigured() {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeOwnerNotConfigured,
			"owner account is not configured",
			domainerror.ErrOwnerNotConfigured,
		)
	}

	// Same error for unknown email and wrong password
	invalid := domainerror.NewAuthError(
		domainerror.ErrCodeInvalidCredentials,
		"invalid email or password",
		domainerror.ErrInvalidCredentials,
	)
	if !strings.EqualFold(strings.TrimSpace(input.Email), uc.owner.Email) {
		return nil, invalid
	}
	if err := uc.passwordService.VerifyPassword(uc.owner.PasswordHash, input.Password); err != nil {
		slog.Warn("Failed login attempt", "email", uc.owner.Email)
		return nil, invalid
	}

	tokenPair, err := uc.tokenService.GenerateTokenPair(ctx, uc.owner.ID, uc.owner.Email, input.RememberMe)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	return &LoginUserOutput{
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		ExpiresIn:    int64(tokenPair.ExpiresIn.Seconds()),
		Owner:        uc.owner,
	}, nil
}

package auth

import (
	"context"
	"log/slog"

	"github.com/finapple/backend/internal/application/adapter"
)

// LogoutUserInput represents the input for owner logout.
type LogoutUserInput struct {
	RefreshToken string
}

// LogoutUserUseCase handles owner logout logic.
type LogoutUserUseCase struct {
	tokenService adapter.TokenService
}

// NewLogoutUserUseCase creates a new LogoutUserUseCase instance.
func NewLogoutUserUseCase(tokenService adapter.TokenService) *LogoutUserUseCase {
	return &LogoutUserUseCase{
		tokenService: tokenService,
	}
}

// Execute performs the owner logout by invalidating the refresh token.
// Logging out twice is not an error.
func (uc *LogoutUserUseCase) Execute(ctx context.Context, input LogoutUserInput) error {
	if err := uc.tokenService.InvalidateRefreshToken(ctx, input.RefreshToken); err != nil {
		slog.Warn("Failed to invalidate refresh token", "error", err)
	}
	return nil
}

// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerror "github.com/finapple/backend/internal/domain/error"
	"github.com/finapple/backend/internal/integration/entrypoint/dto"
)

// handleDomainError maps coded domain errors to HTTP responses.
func handleDomainError(ctx *gin.Context, err error) {
	var (
		ledgerErr     *domainerror.LedgerError
		investmentErr *domainerror.InvestmentError
		settingsErr   *domainerror.SettingsError
		authErr       *domainerror.AuthError
	)

	switch {
	case errors.As(err, &ledgerErr):
		ctx.JSON(getStatusCodeForLedgerError(ledgerErr.Code), dto.ErrorResponse{
			Error: ledgerErr.Message,
			Code:  string(ledgerErr.Code),
		})
	case errors.As(err, &investmentErr):
		ctx.JSON(getStatusCodeForInvestmentError(investmentErr.Code), dto.ErrorResponse{
			Error: investmentErr.Message,
			Code:  string(investmentErr.Code),
		})
	case errors.As(err, &settingsErr):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: settingsErr.Message,
			Code:  string(settingsErr.Code),
		})
	case errors.As(err, &authErr):
		ctx.JSON(getStatusCodeForAuthError(authErr.Code), dto.ErrorResponse{
			Error: authErr.Message,
			Code:  string(authErr.Code),
		})
	case errors.Is(err, domainerror.ErrSnapshotCorrupted):
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Stored data could not be read",
		})
	default:
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
	}
}

func getStatusCodeForLedgerError(code domainerror.LedgerErrorCode) int {
	switch code {
	case domainerror.ErrCodeTransactionNotFound,
		domainerror.ErrCodeWalletNotFound,
		domainerror.ErrCodeBudgetNotFound,
		domainerror.ErrCodeEnvelopeNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeDuplicateID:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidMultiplier:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

func getStatusCodeForInvestmentError(code domainerror.InvestmentErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvestmentNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeDuplicateInvestment:
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

func getStatusCodeForAuthError(code domainerror.AuthErrorCode) int {
	switch code {
	case domainerror.ErrCodeMissingFields:
		return http.StatusBadRequest
	case domainerror.ErrCodeInvalidCredentials,
		domainerror.ErrCodeInvalidToken,
		domainerror.ErrCodeExpiredToken,
		domainerror.ErrCodeMissingToken:
		return http.StatusUnauthorized
	case domainerror.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	case domainerror.ErrCodeOwnerNotConfigured:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func invalidBody(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error:   "Invalid request body",
		Details: map[string]string{"reason": err.Error()},
	})
}

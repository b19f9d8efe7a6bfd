package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/finapple/backend/internal/application/usecase/investment"
	domainerror "github.com/finapple/backend/internal/domain/error"
	"github.com/finapple/backend/internal/domain/portfolio"
	"github.com/finapple/backend/internal/integration/entrypoint/dto"
)

// InvestmentController handles investment, payout calendar and portfolio endpoints.
type InvestmentController struct {
	listUseCase        *investment.ListInvestmentsUseCase
	createUseCase      *investment.CreateInvestmentUseCase
	updateUseCase      *investment.UpdateInvestmentUseCase
	deleteUseCase      *investment.DeleteInvestmentUseCase
	payoutsUseCase     *investment.GetPayoutsUseCase
	portfolioUseCase   *investment.GetPortfolioUseCase
	typeDetailsUseCase *investment.GetTypeDetailsUseCase
}

// NewInvestmentController creates a new investment controller instance.
func NewInvestmentController(
	listUseCase *investment.ListInvestmentsUseCase,
	createUseCase *investment.CreateInvestmentUseCase,
	updateUseCase *investment.UpdateInvestmentUseCase,
	deleteUseCase *investment.DeleteInvestmentUseCase,
	payoutsUseCase *investment.GetPayoutsUseCase,
	portfolioUseCase *investment.GetPortfolioUseCase,
	typeDetailsUseCase *investment.GetTypeDetailsUseCase,
) *InvestmentController {
	return &InvestmentController{
		listUseCase:        listUseCase,
		createUseCase:      createUseCase,
		updateUseCase:      updateUseCase,
		deleteUseCase:      deleteUseCase,
		payoutsUseCase:     payoutsUseCase,
		portfolioUseCase:   portfolioUseCase,
		typeDetailsUseCase: typeDetailsUseCase,
	}
}

// List handles GET /investments requests.
func (c *InvestmentController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"investments": dto.ToInvestmentResponses(output.Investments)})
}

// Create handles POST /investments requests.
func (c *InvestmentController) Create(ctx *gin.Context) {
	req, input, ok := bindInvestment(ctx)
	if !ok {
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), investment.CreateInvestmentInput{
		ID:              req.ID,
		InvestmentInput: input,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToInvestmentResponse(output.Investment))
}

// Update handles PUT /investments/:id requests.
func (c *InvestmentController) Update(ctx *gin.Context) {
	_, input, ok := bindInvestment(ctx)
	if !ok {
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), investment.UpdateInvestmentInput{
		ID:              ctx.Param("id"),
		InvestmentInput: input,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInvestmentResponse(output.Investment))
}

// Delete handles DELETE /investments/:id requests.
func (c *InvestmentController) Delete(ctx *gin.Context) {
	err := c.deleteUseCase.Execute(ctx.Request.Context(), investment.DeleteInvestmentInput{ID: ctx.Param("id")})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Payouts handles GET /investments/payouts requests.
// Returns the next ?limit events (default 5) or the whole schedule with ?all=true.
func (c *InvestmentController) Payouts(ctx *gin.Context) {
	input := investment.GetPayoutsInput{
		Limit: portfolio.DefaultPayoutCalendarSize,
		All:   ctx.Query("all") == "true",
	}
	if raw := ctx.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "limit must be a non-negative integer",
			})
			return
		}
		input.Limit = limit
	}

	output, err := c.payoutsUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.PayoutListResponse{Payouts: dto.ToPayoutEventResponses(output.Events)})
}

// Portfolio handles GET /investments/portfolio requests.
func (c *InvestmentController) Portfolio(ctx *gin.Context) {
	output, err := c.portfolioUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPortfolioResponse(output))
}

// TypeDetails handles GET /investments/types/:type requests.
func (c *InvestmentController) TypeDetails(ctx *gin.Context) {
	output, err := c.typeDetailsUseCase.Execute(ctx.Request.Context(), investment.GetTypeDetailsInput{
		Type: ctx.Param("type"),
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTypeDetailsResponse(output))
}

func bindInvestment(ctx *gin.Context) (dto.InvestmentRequest, investment.InvestmentInput, bool) {
	var req dto.InvestmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		invalidBody(ctx, err)
		return req, investment.InvestmentInput{}, false
	}

	input, err := req.ToInput()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "dates must be formatted as YYYY-MM-DD or \"perpetual\" for the term",
			Code:  string(domainerror.ErrCodeInvalidTermDate),
		})
		return req, investment.InvestmentInput{}, false
	}
	return req, input, true
}

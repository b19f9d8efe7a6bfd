package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finapple/backend/internal/application/usecase/settings"
	"github.com/finapple/backend/internal/domain/entity"
	"github.com/finapple/backend/internal/integration/entrypoint/dto"
)

// SettingsController handles the settings record, category lists and currencies.
type SettingsController struct {
	getUseCase      *settings.GetSettingsUseCase
	updateUseCase   *settings.UpdateSettingsUseCase
	categoryUseCase *settings.ChangeCategoryUseCase
	currencyUseCase *settings.ChangeCurrencyUseCase
}

// NewSettingsController creates a new settings controller instance.
func NewSettingsController(
	getUseCase *settings.GetSettingsUseCase,
	updateUseCase *settings.UpdateSettingsUseCase,
	categoryUseCase *settings.ChangeCategoryUseCase,
	currencyUseCase *settings.ChangeCurrencyUseCase,
) *SettingsController {
	return &SettingsController{
		getUseCase:      getUseCase,
		updateUseCase:   updateUseCase,
		categoryUseCase: categoryUseCase,
		currencyUseCase: currencyUseCase,
	}
}

// Get handles GET /settings requests.
func (c *SettingsController) Get(ctx *gin.Context) {
	output, err := c.getUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSettingsResponse(output.Settings))
}

// Update handles PATCH /settings requests.
func (c *SettingsController) Update(ctx *gin.Context) {
	var req dto.UpdateSettingsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		invalidBody(ctx, err)
		return
	}

	input := settings.UpdateSettingsInput{AccentColor: req.AccentColor}
	if req.Theme != nil {
		theme := entity.Theme(*req.Theme)
		input.Theme = &theme
	}
	if req.Language != nil {
		language := entity.Language(*req.Language)
		input.Language = &language
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSettingsResponse(output.Settings))
}

// AddCategory handles POST /settings/categories/:kind requests.
func (c *SettingsController) AddCategory(ctx *gin.Context) {
	var req dto.CategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		invalidBody(ctx, err)
		return
	}

	c.changeCategory(ctx, settings.ChangeCategoryInput{
		Action: settings.ActionAdd,
		Kind:   entity.CategoryKind(ctx.Param("kind")),
		Name:   req.Name,
	})
}

// RemoveCategory handles DELETE /settings/categories/:kind/:name requests.
func (c *SettingsController) RemoveCategory(ctx *gin.Context) {
	c.changeCategory(ctx, settings.ChangeCategoryInput{
		Action: settings.ActionRemove,
		Kind:   entity.CategoryKind(ctx.Param("kind")),
		Name:   ctx.Param("name"),
	})
}

// AddCurrency handles POST /settings/currencies requests.
func (c *SettingsController) AddCurrency(ctx *gin.Context) {
	var req dto.CurrencyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		invalidBody(ctx, err)
		return
	}

	c.changeCurrency(ctx, settings.ChangeCurrencyInput{Action: settings.ActionAdd, Code: req.Code})
}

// RemoveCurrency handles DELETE /settings/currencies/:code requests.
func (c *SettingsController) RemoveCurrency(ctx *gin.Context) {
	c.changeCurrency(ctx, settings.ChangeCurrencyInput{Action: settings.ActionRemove, Code: ctx.Param("code")})
}

func (c *SettingsController) changeCategory(ctx *gin.Context, input settings.ChangeCategoryInput) {
	output, err := c.categoryUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToSettingsResponse(output.Settings))
}

func (c *SettingsController) changeCurrency(ctx *gin.Context, input settings.ChangeCurrencyInput) {
	output, err := c.currencyUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToSettingsResponse(output.Settings))
}

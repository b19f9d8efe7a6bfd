package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finapple/backend/internal/application/usecase/envelope"
	"github.com/finapple/backend/internal/integration/entrypoint/dto"
)

// EnvelopeController handles savings envelope endpoints.
type EnvelopeController struct {
	listUseCase   *envelope.ListEnvelopesUseCase
	getUseCase    *envelope.GetEnvelopeUseCase
	createUseCase *envelope.CreateEnvelopeUseCase
	updateUseCase *envelope.UpdateEnvelopeUseCase
	deleteUseCase *envelope.DeleteEnvelopeUseCase
}

// NewEnvelopeController creates a new envelope controller instance.
func NewEnvelopeController(
	listUseCase *envelope.ListEnvelopesUseCase,
	getUseCase *envelope.GetEnvelopeUseCase,
	createUseCase *envelope.CreateEnvelopeUseCase,
	updateUseCase *envelope.UpdateEnvelopeUseCase,
	deleteUseCase *envelope.DeleteEnvelopeUseCase,
) *EnvelopeController {
	return &EnvelopeController{
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /envelopes requests.
func (c *EnvelopeController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"envelopes": dto.ToEnvelopeResponses(output.Envelopes)})
}

// Get handles GET /envelopes/:id requests.
func (c *EnvelopeController) Get(ctx *gin.Context) {
	output, err := c.getUseCase.Execute(ctx.Request.Context(), envelope.GetEnvelopeInput{ID: ctx.Param("id")})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEnvelopeDetailsResponse(output))
}

// Create handles POST /envelopes requests.
func (c *EnvelopeController) Create(ctx *gin.Context) {
	var req dto.EnvelopeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		invalidBody(ctx, err)
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), envelope.CreateEnvelopeInput{
		ID:            req.ID,
		EnvelopeInput: req.ToInput(),
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToEnvelopeResponse(output.Envelope))
}

// Update handles PUT /envelopes/:id requests.
func (c *EnvelopeController) Update(ctx *gin.Context) {
	var req dto.EnvelopeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		invalidBody(ctx, err)
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), envelope.UpdateEnvelopeInput{
		ID:            ctx.Param("id"),
		EnvelopeInput: req.ToInput(),
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEnvelopeResponse(output.Envelope))
}

// Delete handles DELETE /envelopes/:id requests.
func (c *EnvelopeController) Delete(ctx *gin.Context) {
	err := c.deleteUseCase.Execute(ctx.Request.Context(), envelope.DeleteEnvelopeInput{ID: ctx.Param("id")})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/goat-farm/backend/internal/application/usecase/goat"
	"github.com/goat-farm/backend/internal/domain/entity"
	domainerror "github.com/goat-farm/backend/internal/domain/error"
	"github.com/goat-farm/backend/internal/integration/entrypoint/dto"
)

// GoatController handles goat registry endpoints.
type GoatController struct {
	listUseCase   *goat.ListGoatsUseCase
	getUseCase    *goat.GetGoatUseCase
	createUseCase *goat.CreateGoatUseCase
	updateUseCase *goat.UpdateGoatUseCase
	deleteUseCase *goat.DeleteGoatUseCase
}

// NewGoatController creates a new goat controller instance.
func NewGoatController(
	listUseCase *goat.ListGoatsUseCase,
	getUseCase *goat.GetGoatUseCase,
	createUseCase *goat.CreateGoatUseCase,
	updateUseCase *goat.UpdateGoatUseCase,
	deleteUseCase *goat.DeleteGoatUseCase,
) *GoatController {
	return &GoatController{
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /goats requests.
func (c *GoatController) List(ctx *gin.Context) {
	input := goat.ListGoatsInput{
		Status: ctx.Query("status"),
	}

	if pageStr := ctx.Query("page"); pageStr != "" {
		if page, err := strconv.Atoi(pageStr); err == nil {
			input.Page = page
		}
	}
	if limitStr := ctx.Query("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil {
			input.Limit = limit
		}
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleGoatError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoatListResponse(output))
}

// Get handles GET /goats/:id requests.
func (c *GoatController) Get(ctx *gin.Context) {
	goatID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid goat ID format",
		})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), goat.GetGoatInput{ID: goatID})
	if err != nil {
		c.handleGoatError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoatDetailResponse(output))
}

// Create handles POST /goats requests.
func (c *GoatController) Create(ctx *gin.Context) {
	var req dto.CreateGoatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := goat.CreateGoatInput{
		TagNumber: req.TagNumber,
		Breed:     req.Breed,
		Sex:       entity.GoatSex(req.Sex),
		Status:    entity.GoatStatus(req.Status),
		Notes:     req.Notes,
	}

	var ok bool
	if input.BirthDate, ok = c.parseOptionalDate(ctx, req.BirthDate, "birth_date"); !ok {
		return
	}
	if input.PurchaseDate, ok = c.parseOptionalDate(ctx, req.PurchaseDate, "purchase_date"); !ok {
		return
	}
	if req.Weight != nil {
		weight := decimal.NewFromFloat(*req.Weight)
		input.Weight = &weight
	}
	if req.PurchasePrice != nil {
		price := decimal.NewFromFloat(*req.PurchasePrice)
		input.PurchasePrice = &price
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleGoatError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToGoatResponse(output.Goat))
}

// Update handles PUT /goats/:id requests.
func (c *GoatController) Update(ctx *gin.Context) {
	goatID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid goat ID format",
		})
		return
	}

	var req dto.UpdateGoatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := goat.UpdateGoatInput{
		ID:        goatID,
		TagNumber: req.TagNumber,
		Breed:     req.Breed,
		Sex:       entity.GoatSex(req.Sex),
		Status:    entity.GoatStatus(req.Status),
		Notes:     req.Notes,
	}

	var ok bool
	if input.BirthDate, ok = c.parseOptionalDate(ctx, req.BirthDate, "birth_date"); !ok {
		return
	}
	if input.PurchaseDate, ok = c.parseOptionalDate(ctx, req.PurchaseDate, "purchase_date"); !ok {
		return
	}
	if req.Weight != nil {
		weight := decimal.NewFromFloat(*req.Weight)
		input.Weight = &weight
	}
	if req.PurchasePrice != nil {
		price := decimal.NewFromFloat(*req.PurchasePrice)
		input.PurchasePrice = &price
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleGoatError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoatResponse(output.Goat))
}

// Delete handles DELETE /goats/:id requests.
func (c *GoatController) Delete(ctx *gin.Context) {
	goatID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid goat ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), goat.DeleteGoatInput{ID: goatID}); err != nil {
		c.handleGoatError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// parseOptionalDate parses an optional YYYY-MM-DD field, writing a 400
// response and returning ok=false when the value is malformed.
func (c *GoatController) parseOptionalDate(ctx *gin.Context, value *string, field string) (*time.Time, bool) {
	if value == nil || *value == "" {
		return nil, true
	}

	parsed, err := time.Parse("2006-01-02", *value)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid " + field + " format. Use YYYY-MM-DD",
		})
		return nil, false
	}
	parsed = parsed.UTC()
	return &parsed, true
}

// handleGoatError handles goat errors and returns appropriate HTTP responses.
func (c *GoatController) handleGoatError(ctx *gin.Context, err error) {
	var goatErr *domainerror.GoatError
	if errors.As(err, &goatErr) {
		statusCode := c.getStatusCodeForGoatError(goatErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: goatErr.Message,
			Code:  string(goatErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForGoatError maps goat error codes to HTTP status codes.
func (c *GoatController) getStatusCodeForGoatError(code domainerror.GoatErrorCode) int {
	switch code {
	case domainerror.ErrCodeGoatNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeDuplicateTagNumber:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidGoatStatus,
		domainerror.ErrCodeInvalidGoatSex,
		domainerror.ErrCodeBirthDateInFuture,
		domainerror.ErrCodePurchaseDateInFuture,
		domainerror.ErrCodeNegativeWeight,
		domainerror.ErrCodeNegativePurchasePrice,
		domainerror.ErrCodeMissingTagNumber,
		domainerror.ErrCodeMissingBreed:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

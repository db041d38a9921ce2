package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"devboost/internal/model"
	"devboost/internal/service"
)

// AIHandler exposes the code-assist endpoints.
type AIHandler struct {
	assist service.CodeAssistService
}

// NewAIHandler creates a new AI handler.
func NewAIHandler(assist service.CodeAssistService) *AIHandler {
	return &AIHandler{assist: assist}
}

// CodeRequest carries the source code to work on.
type CodeRequest struct {
	Code string `json:"code"`
}

// TestsResponse holds generated test code.
type TestsResponse struct {
	Tests string `json:"tests"`
}

// DocsResponse holds generated documentation.
type DocsResponse struct {
	Documentation string `json:"documentation"`
}

// ReviewResponse holds validated review findings.
type ReviewResponse struct {
	Issues []model.ReviewIssue `json:"issues"`
}

// GenerateTests godoc
// @Summary Generate unit tests for a code snippet
// @Tags ai
// @Accept json
// @Produce json
// @Security CookieAuth
// @Param request body CodeRequest true "Source code"
// @Success 200 {object} TestsResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /ai/generate-tests [post]
func (h *AIHandler) GenerateTests(c echo.Context) error {
	var req CodeRequest
	if err := c.Bind(&req); err != nil {
		return validationError(msgInvalidBody)
	}

	tests, err := h.assist.GenerateTests(c.Request().Context(), req.Code)
	if err != nil {
		return errorResponse(err, "Failed to generate tests")
	}
	return c.JSON(http.StatusOK, TestsResponse{Tests: tests})
}

// GenerateDocs godoc
// @Summary Generate documentation comments for a code snippet
// @Tags ai
// @Accept json
// @Produce json
// @Security CookieAuth
// @Param request body CodeRequest true "Source code"
// @Success 200 {object} DocsResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /ai/generate-docs [post]
func (h *AIHandler) GenerateDocs(c echo.Context) error {
	var req CodeRequest
	if err := c.Bind(&req); err != nil {
		return validationError(msgInvalidBody)
	}

	docs, err := h.assist.GenerateDocs(c.Request().Context(), req.Code)
	if err != nil {
		return errorResponse(err, "Failed to generate documentation")
	}
	return c.JSON(http.StatusOK, DocsResponse{Documentation: docs})
}

// ReviewCode godoc
// @Summary Review a code snippet
// @Tags ai
// @Accept json
// @Produce json
// @Security CookieAuth
// @Param request body CodeRequest true "Source code"
// @Success 200 {object} ReviewResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /ai/review-code [post]
func (h *AIHandler) ReviewCode(c echo.Context) error {
	var req CodeRequest
	if err := c.Bind(&req); err != nil {
		return validationError(msgInvalidBody)
	}

	issues, err := h.assist.ReviewCode(c.Request().Context(), req.Code)
	if err != nil {
		return errorResponse(err, "Failed to review code")
	}
	return c.JSON(http.StatusOK, ReviewResponse{Issues: issues})
}

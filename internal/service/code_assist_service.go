package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"devboost/internal/config"
	apperrors "devboost/internal/errors"
	"devboost/internal/llm"
	"devboost/internal/model"
)

// Endpoint names used in logs.
const (
	EndpointGenerateTests = "generate-tests"
	EndpointGenerateDocs  = "generate-docs"
	EndpointReviewCode    = "review-code"
)

// ErrCodeRequired is returned when the submitted code is empty or whitespace.
var ErrCodeRequired = apperrors.Reason(apperrors.ErrValidation, "Code is required")

// CodeAssistService proxies source code to the generation backend.
type CodeAssistService interface {
	GenerateTests(ctx context.Context, code string) (string, error)
	GenerateDocs(ctx context.Context, code string) (string, error)
	ReviewCode(ctx context.Context, code string) ([]model.ReviewIssue, error)
}

type codeAssistService struct {
	backend  llm.Backend
	settings config.AIConfig
	validate *validator.Validate
	logger   *zap.Logger
}

// NewCodeAssistService creates the AI proxy service. Every call uses the
// output budget, temperature and timeout from settings.
func NewCodeAssistService(backend llm.Backend, settings config.AIConfig, logger *zap.Logger) CodeAssistService {
	return &codeAssistService{
		backend:  backend,
		settings: settings,
		validate: validator.New(),
		logger:   logger,
	}
}

func (s *codeAssistService) GenerateTests(ctx context.Context, code string) (string, error) {
	return s.generateText(ctx, EndpointGenerateTests, testsPrompt, code)
}

func (s *codeAssistService) GenerateDocs(ctx context.Context, code string) (string, error) {
	return s.generateText(ctx, EndpointGenerateDocs, docsPrompt, code)
}

// ReviewCode returns only issues that pass schema validation. Any deviation
// fails the whole call.
func (s *codeAssistService) ReviewCode(ctx context.Context, code string) ([]model.ReviewIssue, error) {
	if strings.TrimSpace(code) == "" {
		return nil, ErrCodeRequired
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	raw, err := s.backend.GenerateObject(ctx, s.request(reviewPrompt, code), reviewSchema)
	if err != nil {
		return nil, s.upstreamFailure(EndpointReviewCode, err)
	}

	issues, err := s.decodeReview(raw)
	if err != nil {
		return nil, s.upstreamFailure(EndpointReviewCode, err)
	}
	return issues, nil
}

func (s *codeAssistService) generateText(ctx context.Context, endpoint, template, code string) (string, error) {
	if strings.TrimSpace(code) == "" {
		return "", ErrCodeRequired
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	text, err := s.backend.GenerateText(ctx, s.request(template, code))
	if err != nil {
		return "", s.upstreamFailure(endpoint, err)
	}
	return text, nil
}

func (s *codeAssistService) request(template, code string) llm.Request {
	return llm.Request{
		Prompt:          renderPrompt(template, code),
		MaxOutputTokens: s.settings.MaxOutputTokens,
		Temperature:     s.settings.Temperature,
	}
}

func (s *codeAssistService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.settings.RequestTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.settings.RequestTimeout)
}

func (s *codeAssistService) upstreamFailure(endpoint string, err error) error {
	s.logger.Error("generation failed", zap.String("endpoint", endpoint), zap.Error(err))
	return fmt.Errorf("%s: %w: %w", endpoint, apperrors.ErrUpstream, err)
}

// reviewResult mirrors the review schema. Pointer fields tell a missing key
// apart from an empty string.
type reviewResult struct {
	Issues []reviewIssue `json:"issues" validate:"required,dive"`
}

type reviewIssue struct {
	Severity   *string `json:"severity" validate:"required,oneof=critical warning info"`
	Category   *string `json:"category" validate:"required"`
	Message    *string `json:"message" validate:"required"`
	Suggestion *string `json:"suggestion" validate:"required"`
}

func (s *codeAssistService) decodeReview(raw []byte) ([]model.ReviewIssue, error) {
	var result reviewResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("decode review: %w", err)
	}
	if err := s.validate.Struct(result); err != nil {
		return nil, fmt.Errorf("validate review: %w", err)
	}

	issues := make([]model.ReviewIssue, 0, len(result.Issues))
	for _, issue := range result.Issues {
		issues = append(issues, model.ReviewIssue{
			Severity:   model.Severity(*issue.Severity),
			Category:   *issue.Category,
			Message:    *issue.Message,
			Suggestion: *issue.Suggestion,
		})
	}
	return issues, nil
}

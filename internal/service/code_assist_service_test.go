package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"devboost/internal/config"
	apperrors "devboost/internal/errors"
	"devboost/internal/llm"
	"devboost/internal/model"
)

var testAISettings = config.AIConfig{MaxOutputTokens: 2000, Temperature: 0.3, RequestTimeout: time.Minute}

const sampleCode = "function add(a, b) { return a + b }"

func newTestCodeAssist(backend llm.Backend) (CodeAssistService, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.InfoLevel)
	return NewCodeAssistService(backend, testAISettings, zap.New(core)), logs
}

func TestCodeAssist_RejectsEmptyCode(t *testing.T) {
	backend := new(MockBackend)
	svc, _ := newTestCodeAssist(backend)
	ctx := context.Background()

	for _, code := range []string{"", "   ", "\n\t"} {
		_, err := svc.GenerateTests(ctx, code)
		assert.Equal(t, ErrCodeRequired, err)
		_, err = svc.GenerateDocs(ctx, code)
		assert.Equal(t, ErrCodeRequired, err)
		_, err = svc.ReviewCode(ctx, code)
		assert.Equal(t, ErrCodeRequired, err)
	}

	backend.AssertNotCalled(t, "GenerateText", mock.Anything, mock.Anything)
	backend.AssertNotCalled(t, "GenerateObject", mock.Anything, mock.Anything, mock.Anything)
}

func TestCodeAssist_GenerateTextPassesThrough(t *testing.T) {
	backend := new(MockBackend)
	backend.On("GenerateText", mock.MatchedBy(func(ctx context.Context) bool {
		_, ok := ctx.Deadline()
		return ok
	}), mock.MatchedBy(func(req llm.Request) bool {
		return req.MaxOutputTokens == 2000 && req.Temperature == 0.3 &&
			strings.Contains(req.Prompt, "```\n"+sampleCode+"\n```")
	})).Return("  it('adds', () => {})\n", nil)
	svc, _ := newTestCodeAssist(backend)

	tests, err := svc.GenerateTests(context.Background(), sampleCode)
	require.NoError(t, err)
	assert.Equal(t, "  it('adds', () => {})\n", tests, "returned verbatim")

	docs, err := svc.GenerateDocs(context.Background(), sampleCode)
	require.NoError(t, err)
	assert.Equal(t, tests, docs)

	backend.AssertNumberOfCalls(t, "GenerateText", 2)
}

func TestCodeAssist_UpstreamFailureIsLoggedAndWrapped(t *testing.T) {
	backend := new(MockBackend)
	backend.On("GenerateText", mock.Anything, mock.Anything).Return("", errors.New("status 502: secret upstream detail"))
	svc, logs := newTestCodeAssist(backend)

	_, err := svc.GenerateDocs(context.Background(), sampleCode)

	require.ErrorIs(t, err, apperrors.ErrUpstream)
	httpErr := apperrors.MapErrorToHTTP(err, "Failed to generate documentation")
	assert.Equal(t, "Failed to generate documentation", httpErr.Message)

	entries := logs.FilterField(zap.String("endpoint", EndpointGenerateDocs)).All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	assert.Contains(t, entries[0].ContextMap()["error"], "secret upstream detail")
}

func TestCodeAssist_ReviewCode(t *testing.T) {
	backend := new(MockBackend)
	backend.On("GenerateObject", mock.Anything, mock.Anything, reviewSchema).Return([]byte(`{"issues":[
		{"severity":"critical","category":"Security","message":"eval on input","suggestion":"remove eval"},
		{"severity":"info","category":"","message":"fine","suggestion":"none"}
	]}`), nil)
	svc, _ := newTestCodeAssist(backend)

	issues, err := svc.ReviewCode(context.Background(), sampleCode)

	require.NoError(t, err)
	assert.Equal(t, []model.ReviewIssue{
		{Severity: model.SeverityCritical, Category: "Security", Message: "eval on input", Suggestion: "remove eval"},
		{Severity: model.SeverityInfo, Category: "", Message: "fine", Suggestion: "none"},
	}, issues)
}

func TestCodeAssist_ReviewCodeEmptyIssues(t *testing.T) {
	backend := new(MockBackend)
	backend.On("GenerateObject", mock.Anything, mock.Anything, mock.Anything).Return([]byte(`{"issues":[]}`), nil)
	svc, _ := newTestCodeAssist(backend)

	issues, err := svc.ReviewCode(context.Background(), sampleCode)

	require.NoError(t, err)
	assert.NotNil(t, issues)
	assert.Empty(t, issues)
}

func TestCodeAssist_ReviewCodeRejectsNonConformingOutput(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `I found no issues`},
		{"missing issues", `{}`},
		{"null issues", `{"issues":null}`},
		{"issues not array", `{"issues":"none"}`},
		{"unknown severity", `{"issues":[{"severity":"minor","category":"c","message":"m","suggestion":"s"}]}`},
		{"missing suggestion", `{"issues":[{"severity":"info","category":"c","message":"m"}]}`},
		{"non-string message", `{"issues":[{"severity":"info","category":"c","message":3,"suggestion":"s"}]}`},
		{"null element", `{"issues":[null]}`},
		{"top-level array", `[{"severity":"info","category":"c","message":"m","suggestion":"s"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := new(MockBackend)
			backend.On("GenerateObject", mock.Anything, mock.Anything, mock.Anything).Return([]byte(tt.raw), nil)
			svc, logs := newTestCodeAssist(backend)

			issues, err := svc.ReviewCode(context.Background(), sampleCode)

			assert.Nil(t, issues, "no partial data")
			assert.ErrorIs(t, err, apperrors.ErrUpstream)
			assert.Equal(t, 1, logs.FilterField(zap.String("endpoint", EndpointReviewCode)).Len())
		})
	}
}

func TestCodeAssist_ReviewCodeBackendError(t *testing.T) {
	backend := new(MockBackend)
	backend.On("GenerateObject", mock.Anything, mock.Anything, mock.Anything).Return(nil, llm.ErrEmptyResponse)
	svc, _ := newTestCodeAssist(backend)

	_, err := svc.ReviewCode(context.Background(), sampleCode)

	assert.ErrorIs(t, err, apperrors.ErrUpstream)
	assert.ErrorIs(t, err, llm.ErrEmptyResponse)
}

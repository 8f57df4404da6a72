package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/leofalp/deckgen/core/orchestrator"
	"github.com/leofalp/deckgen/internal/utils"
	"github.com/leofalp/deckgen/providers/ai"
)

// LogLevel controls how much detail the logging middleware emits per request.
type LogLevel int

const (
	// LogLevelMinimal logs only the model name, slot index, total duration, and
	// token counts. Use this when you want lightweight audit trails without noise.
	LogLevelMinimal LogLevel = iota

	// LogLevelStandard logs everything in Minimal plus the topic and finish
	// reason. This is the recommended default for most applications.
	LogLevelStandard

	// LogLevelVerbose logs everything in Standard plus the outgoing prompt and
	// the full response content, each truncated to 500 characters.
	//
	// WARNING: DO NOT use LogLevelVerbose in production. It will log raw prompt
	// and response text, which may contain sensitive user data, secrets, or PII.
	// It is intended solely for local debugging and development.
	LogLevelVerbose
)

// truncateLen is the maximum content length included in verbose log output.
const truncateLen = 500

// NewLoggingMiddleware creates a Middleware that emits structured slog log
// entries before and after every provider call.
//
// The logger parameter must not be nil. Use slog.Default() if you have not
// configured a custom logger.
func NewLoggingMiddleware(logger *slog.Logger, level LogLevel) orchestrator.Middleware {
	return func(next orchestrator.GenerateFunc) orchestrator.GenerateFunc {
		return func(ctx context.Context, request ai.ContentRequest) (*ai.ContentResponse, error) {
			logger.InfoContext(ctx, "content request",
				buildRequestAttrs(request, level)...,
			)

			start := time.Now()
			response, err := next(ctx, request)
			elapsed := time.Since(start)

			if err != nil {
				logger.ErrorContext(ctx, "content request failed",
					slog.String("model", request.Model),
					slog.Int("slot", request.Slot.Index),
					slog.Duration("duration", elapsed),
					slog.String("error", err.Error()),
				)
				return nil, err
			}

			logger.InfoContext(ctx, "content request completed",
				buildResponseAttrs(request, response, elapsed, level)...,
			)

			return response, nil
		}
	}
}

// buildRequestAttrs returns slog attributes for an outgoing content request,
// expanding detail according to the requested verbosity level.
func buildRequestAttrs(request ai.ContentRequest, level LogLevel) []any {
	attrs := []any{
		slog.String("model", request.Model),
		slog.Int("slot", request.Slot.Index),
	}

	if level >= LogLevelStandard {
		attrs = append(attrs, slog.String("topic", request.Slot.Topic))
	}

	if level >= LogLevelVerbose && request.Prompt != "" {
		attrs = append(attrs,
			slog.String("prompt", utils.TruncateString(request.Prompt, truncateLen)),
		)
	}

	return attrs
}

// buildResponseAttrs returns slog attributes for a completed content response,
// expanding detail according to the requested verbosity level.
func buildResponseAttrs(request ai.ContentRequest, response *ai.ContentResponse, elapsed time.Duration, level LogLevel) []any {
	attrs := []any{
		slog.String("model", response.Model),
		slog.Int("slot", request.Slot.Index),
		slog.Duration("duration", elapsed),
	}

	if response.Usage != nil {
		attrs = append(attrs,
			slog.Int("prompt_tokens", response.Usage.PromptTokens),
			slog.Int("completion_tokens", response.Usage.CompletionTokens),
			slog.Int("total_tokens", response.Usage.TotalTokens),
		)
	}

	if level >= LogLevelStandard && response.FinishReason != "" {
		attrs = append(attrs, slog.String("finish_reason", response.FinishReason))
	}

	if level >= LogLevelVerbose && response.Content != "" {
		attrs = append(attrs,
			slog.String("response_content", utils.TruncateString(response.Content, truncateLen)),
		)
	}

	return attrs
}

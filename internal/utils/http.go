package utils

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/leofalp/deckgen/providers/observability"
)

// StatusError reports a non-2xx HTTP response. Providers classify the failure
// (unavailable, timeout, rejected) from the StatusCode; the body is kept for
// diagnostics only.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("non-2xx status %d: %s", e.StatusCode, TruncateString(e.Body, DefaultMaxStringLength))
}

// DoPostSync POSTs body as JSON to url and decodes the response into
// OutputStruct. It is the single HTTP path shared by the hosted providers:
// bearer auth when apiKey is set, span events when the context carries one,
// and a [*StatusError] for any non-2xx response so callers can classify by
// status code. Context cancellation and deadlines propagate through the
// request unchanged.
func DoPostSync[OutputStruct any](ctx context.Context, client *http.Client, url string, apiKey string, body any) (*http.Response, *OutputStruct, error) {
	span := observability.SpanFromContext(ctx)

	httpClient := client
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, nil, fmt.Errorf("error marshaling body: %w", err)
	}

	if span != nil {
		span.AddEvent("http.request.prepared",
			observability.String(observability.AttrHTTPMethod, "POST"),
			observability.String(observability.AttrHTTPURL, url),
			observability.Int(observability.AttrHTTPRequestBodySize, len(payload)),
		)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, nil, fmt.Errorf("error creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+apiKey)
	}

	start := time.Now()
	res, err := httpClient.Do(req)
	elapsed := time.Since(start)

	if err != nil {
		if span != nil {
			span.AddEvent("http.request.error",
				observability.Error(err),
				observability.Duration("http.request.duration", elapsed),
			)
		}
		return res, nil, fmt.Errorf("error sending request: %w", err)
	}
	defer func() {
		// A close failure must not mask the primary result.
		if closeErr := res.Body.Close(); closeErr != nil {
			slog.Warn("failed to close response body", "error", closeErr.Error(), "url", url)
		}
	}()

	responseBody, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("error reading response body: %w", err)
	}

	if span != nil {
		span.AddEvent("http.response.received",
			observability.Int(observability.AttrHTTPStatusCode, res.StatusCode),
			observability.Int(observability.AttrHTTPResponseBodySize, len(responseBody)),
			observability.Duration("http.request.duration", elapsed),
		)
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return res, nil, &StatusError{StatusCode: res.StatusCode, Body: string(responseBody)}
	}

	var decoded OutputStruct
	if err = json.Unmarshal(responseBody, &decoded); err != nil {
		return res, nil, fmt.Errorf("error unmarshaling provider response body (status %d): %w\nResponse preview: %s", res.StatusCode, err, TruncateString(string(responseBody), DefaultMaxStringLength))
	}

	return res, &decoded, nil
}

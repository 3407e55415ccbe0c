package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// maxRetryDelay caps the exponential backoff between retries.
const maxRetryDelay = 30 * time.Second

// getJSON performs a GET request and decodes the JSON body into out.
// Transport errors and 5xx responses are retried with exponential
// backoff; other non-200 responses fail immediately.
func getJSON(ctx context.Context, client *http.Client, log *zap.Logger, endpoint string, maxRetries int, backoff time.Duration, out interface{}) error {
	var lastErr error
	delay := backoff

	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
				delay *= 2
				if delay > maxRetryDelay {
					delay = maxRetryDelay
				}
			}
			log.Warn("Retrying Open-Meteo request",
				zap.String("url", endpoint),
				zap.Int("attempt", attempt),
				zap.Error(lastErr),
			)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Accept", "application/json")

		resp, err := client.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("request failed: %w", err)
			continue
		}

		if resp.StatusCode >= 500 {
			body, _ := io.ReadAll(resp.Body)
			resp.Body.Close()
			lastErr = fmt.Errorf("server error: status %d: %s", resp.StatusCode, bodySnippet(body))
			continue
		}

		if resp.StatusCode != http.StatusOK {
			body, _ := io.ReadAll(resp.Body)
			resp.Body.Close()
			return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, bodySnippet(body))
		}

		err = json.NewDecoder(resp.Body).Decode(out)
		resp.Body.Close()
		if err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
		return nil
	}

	return fmt.Errorf("max retries exceeded: %w", lastErr)
}

func bodySnippet(body []byte) string {
	const max = 200
	if len(body) > max {
		body = body[:max]
	}
	return string(body)
}

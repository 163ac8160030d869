package llm

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"resume-builder-backend/internal/shared/telemetry"
)

const retryBaseDelay = 300 * time.Millisecond

type retryingClient struct {
	base Client
}

// WithRetry wraps a client so timeouts and transport failures are retried once
// with a short backoff. Validation-stage failures never reach this wrapper;
// a model that ignored the schema will not do better on a blind retry.
func WithRetry(base Client) Client {
	if base == nil {
		return nil
	}
	return retryingClient{base: base}
}

func (r retryingClient) Invoke(ctx context.Context, instruction Instruction) (json.RawMessage, error) {
	resp, err := r.base.Invoke(ctx, instruction)
	if err == nil || !shouldRetry(err) {
		return resp, err
	}

	telemetry.Warn("llm.retry", map[string]any{"attempt": 1, "err": err.Error()})
	select {
	case <-time.After(retryBaseDelay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	return r.base.Invoke(ctx, instruction)
}

func shouldRetry(err error) bool {
	if errors.Is(err, ErrTimeout) {
		return true
	}
	var gatewayErr *GatewayError
	return errors.As(err, &gatewayErr)
}

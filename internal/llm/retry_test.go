package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

type scriptedClient struct {
	calls int
	errs  []error
	resp  json.RawMessage
}

func (s *scriptedClient) Invoke(ctx context.Context, instruction Instruction) (json.RawMessage, error) {
	idx := s.calls
	s.calls++
	if idx < len(s.errs) && s.errs[idx] != nil {
		return nil, s.errs[idx]
	}
	return s.resp, nil
}

func TestWithRetryRecoversFromTimeout(t *testing.T) {
	base := &scriptedClient{
		errs: []error{ErrTimeout},
		resp: json.RawMessage(`{"ok":true}`),
	}

	resp, err := WithRetry(base).Invoke(context.Background(), Instruction{})
	if err != nil {
		t.Fatalf("Invoke: %v", err)
	}
	if base.calls != 2 {
		t.Fatalf("expected 2 attempts, got %d", base.calls)
	}
	if string(resp) != `{"ok":true}` {
		t.Fatalf("unexpected response %s", resp)
	}
}

func TestWithRetryRecoversFromGatewayError(t *testing.T) {
	base := &scriptedClient{
		errs: []error{&GatewayError{Upstream: "http status 502"}},
		resp: json.RawMessage(`{}`),
	}

	if _, err := WithRetry(base).Invoke(context.Background(), Instruction{}); err != nil {
		t.Fatalf("Invoke: %v", err)
	}
	if base.calls != 2 {
		t.Fatalf("expected 2 attempts, got %d", base.calls)
	}
}

func TestWithRetrySingleRetryOnly(t *testing.T) {
	base := &scriptedClient{
		errs: []error{ErrTimeout, ErrTimeout},
	}

	_, err := WithRetry(base).Invoke(context.Background(), Instruction{})
	if !errors.Is(err, ErrTimeout) {
		t.Fatalf("expected timeout after retries exhausted, got %v", err)
	}
	if base.calls != 2 {
		t.Fatalf("expected exactly 2 attempts, got %d", base.calls)
	}
}

func TestWithRetryDoesNotRetryOtherErrors(t *testing.T) {
	permanent := errors.New("schema violation at skills")
	base := &scriptedClient{errs: []error{permanent}}

	_, err := WithRetry(base).Invoke(context.Background(), Instruction{})
	if !errors.Is(err, permanent) {
		t.Fatalf("expected original error, got %v", err)
	}
	if base.calls != 1 {
		t.Fatalf("expected 1 attempt, got %d", base.calls)
	}
}

func TestWithRetryHonorsCancelledContext(t *testing.T) {
	base := &scriptedClient{errs: []error{ErrTimeout, ErrTimeout}}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := WithRetry(base).Invoke(ctx, Instruction{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context cancellation between attempts, got %v", err)
	}
	if base.calls != 1 {
		t.Fatalf("expected no second attempt after cancel, got %d", base.calls)
	}
}

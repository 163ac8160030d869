package llm

import (
	"errors"
	"fmt"
)

// ErrTimeout indicates the model call exceeded the caller's deadline.
var ErrTimeout = errors.New("ai gateway timeout")

// GatewayError carries a transport, quota, or model failure. The upstream
// message is kept for logs; callers must not echo it verbatim to end users.
type GatewayError struct {
	Upstream string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("ai gateway error: %s", e.Upstream)
}

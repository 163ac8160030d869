package llm

import (
	"context"
	"encoding/json"
)

// Instruction is a prompt payload for a single structured-output model call.
type Instruction struct {
	System string
	User   string
}

// Client abstracts the generative model behind the pipeline. Implementations
// must request structured output: the reply is exactly one JSON object with no
// surrounding prose. The call is synchronous and single attempt; retry policy
// belongs to callers.
type Client interface {
	Invoke(ctx context.Context, instruction Instruction) (json.RawMessage, error)
}

package ports

import "context"

// AIGateway forwards a prompt to an external language model and returns the
// reply text. Synchronous; no retry, no streaming, no caching. Timeouts are
// whatever the underlying HTTP call enforces.
type AIGateway interface {
	Ask(ctx context.Context, prompt string) (string, error)
}

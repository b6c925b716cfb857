package domain

import "errors"

// AI gateway failure modes. Both surface as upstream (5xx-class) errors to
// the client; configuration problems are distinguishable in logs.
var ErrAINotConfigured = errors.New("ai gateway not configured")
var ErrAIUpstream = errors.New("ai upstream failure")

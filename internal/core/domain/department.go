package domain

import (
	"errors"
	"strings"
	"time"
)

var ErrDepartmentNotFound = errors.New("department not found")
var ErrHeadNotAssigned = errors.New("no head assigned")

// Department groups users and questionnaires. A department owns its users and
// questionnaires: deleting it cascades to both (and transitively to responses).
type Department struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// NormalizeDepartmentName produces the canonical form used for uniqueness
// comparison: surrounding whitespace trimmed, case folded. The stored display
// name keeps the caller's casing (trimmed).
func NormalizeDepartmentName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
